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
)

type TeamRepositoryInterface interface {
	GetTeams(ctx context.Context) ([]entities.Team, error)
	FindTeam(ctx context.Context, id uuid.UUID) (*entities.Team, error)
	CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*entities.Team, error)
	UpdateTeam(ctx context.Context, id uuid.UUID, payload dto.UpdateTeamDTO) error
	DeleteTeam(ctx context.Context, id uuid.UUID) error
}

type TeamRepository struct {
	storage *pgxpool.Pool
}

func NewTeamRepository(storage *pgxpool.Pool) TeamRepositoryInterface {
	return &TeamRepository{storage: storage}
}

func (r *TeamRepository) GetTeams(ctx context.Context) ([]entities.Team, error) {
	rows, err := r.storage.Query(ctx,
		"SELECT id, name, description, color, created_at, updated_at FROM teams ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]entities.Team, 0)
	for rows.Next() {
		var t entities.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.Color, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (r *TeamRepository) FindTeam(ctx context.Context, id uuid.UUID) (*entities.Team, error) {
	var t entities.Team
	err := r.storage.QueryRow(ctx,
		"SELECT id, name, description, color, created_at, updated_at FROM teams WHERE id = $1", id).
		Scan(&t.ID, &t.Name, &t.Description, &t.Color, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TeamRepository) CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*entities.Team, error) {
	color := payload.Color
	if color == "" {
		color = "#6366f1"
	}

	var t entities.Team
	err := r.storage.QueryRow(ctx, `
		INSERT INTO teams (name, description, color)
		VALUES ($1, $2, $3)
		RETURNING id, name, description, color, created_at, updated_at
	`, payload.Name, payload.Description, color).
		Scan(&t.ID, &t.Name, &t.Description, &t.Color, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TeamRepository) UpdateTeam(ctx context.Context, id uuid.UUID, payload dto.UpdateTeamDTO) error {
	builder := sq.Update("teams").Set("updated_at", sq.Expr("now()")).Where(sq.Eq{"id": id})
	if payload.Name != nil {
		builder = builder.Set("name", *payload.Name)
	}
	if payload.Description.Valid {
		builder = builder.Set("description", payload.Description)
	}
	if payload.Color != nil {
		builder = builder.Set("color", *payload.Color)
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

func (r *TeamRepository) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM teams WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
