package repositories

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/constants"
)

const technicianJoinedFields = `
	tech.id, tech.user_id, tech.team_id, tech.specialization, tech.status,
	tech.created_at, tech.updated_at, p.id, p.full_name, p.email`

type TechnicianRepositoryInterface interface {
	GetTechnicians(ctx context.Context) ([]entities.Technician, error)
	GetTechniciansByTeam(ctx context.Context, teamID uuid.UUID) ([]entities.Technician, error)
	FindTechnicianByUser(ctx context.Context, userID uuid.UUID) (*entities.Technician, error)
	CreateForUser(ctx context.Context, userID uuid.UUID) (*entities.Technician, error)
	UpdateTechnician(ctx context.Context, id uuid.UUID, payload dto.UpdateTechnicianDTO) error
}

type TechnicianRepository struct {
	storage *pgxpool.Pool
}

func NewTechnicianRepository(storage *pgxpool.Pool) TechnicianRepositoryInterface {
	return &TechnicianRepository{storage: storage}
}

func scanTechnician(row pgx.Row) (*entities.Technician, error) {
	var t entities.Technician
	var p entities.ShortProfile
	var profileID *uuid.UUID
	var email *string

	err := row.Scan(
		&t.ID, &t.UserID, &t.TeamID, &t.Specialization, &t.Status,
		&t.CreatedAt, &t.UpdatedAt, &profileID, &p.FullName, &email,
	)
	if err != nil {
		return nil, err
	}

	if profileID != nil {
		p.ID = *profileID
		if email != nil {
			p.Email = *email
		}
		t.Profile = &p
	}
	return &t, nil
}

func (r *TechnicianRepository) getMany(ctx context.Context, query string, args ...any) ([]entities.Technician, error) {
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]entities.Technician, 0)
	for rows.Next() {
		t, err := scanTechnician(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *t)
	}
	return list, rows.Err()
}

func (r *TechnicianRepository) GetTechnicians(ctx context.Context) ([]entities.Technician, error) {
	return r.getMany(ctx, `
		SELECT `+technicianJoinedFields+`
		FROM technicians tech
			LEFT JOIN profiles p ON p.id = tech.user_id
		ORDER BY tech.created_at
	`)
}

func (r *TechnicianRepository) GetTechniciansByTeam(ctx context.Context, teamID uuid.UUID) ([]entities.Technician, error) {
	return r.getMany(ctx, `
		SELECT `+technicianJoinedFields+`
		FROM technicians tech
			LEFT JOIN profiles p ON p.id = tech.user_id
		WHERE tech.team_id = $1
		ORDER BY tech.created_at
	`, teamID)
}

func (r *TechnicianRepository) FindTechnicianByUser(ctx context.Context, userID uuid.UUID) (*entities.Technician, error) {
	t, err := scanTechnician(r.storage.QueryRow(ctx, `
		SELECT `+technicianJoinedFields+`
		FROM technicians tech
			LEFT JOIN profiles p ON p.id = tech.user_id
		WHERE tech.user_id = $1
	`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

// CreateForUser backs the lazy self-assignment flow: a technician row appears
// the first time a user takes a request.
func (r *TechnicianRepository) CreateForUser(ctx context.Context, userID uuid.UUID) (*entities.Technician, error) {
	var id uuid.UUID
	err := r.storage.QueryRow(ctx, `
		INSERT INTO technicians (user_id, status)
		VALUES ($1, $2)
		RETURNING id
	`, userID, constants.TechnicianStatusAvailable).Scan(&id)
	if err != nil {
		return nil, err
	}
	return r.FindTechnicianByUser(ctx, userID)
}

func (r *TechnicianRepository) UpdateTechnician(ctx context.Context, id uuid.UUID, payload dto.UpdateTechnicianDTO) error {
	builder := sq.Update("technicians").Set("updated_at", sq.Expr("now()")).Where(sq.Eq{"id": id})
	if payload.TeamID != nil {
		builder = builder.Set("team_id", *payload.TeamID)
	}
	if payload.Specialization.Valid {
		builder = builder.Set("specialization", payload.Specialization)
	}
	if payload.Status != nil {
		builder = builder.Set("status", *payload.Status)
	}

	query, args, err := builder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return err
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
