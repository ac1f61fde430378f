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

const workCenterFields = "id, name, location, description, capacity, status, created_at, updated_at"

type WorkCenterRepositoryInterface interface {
	GetWorkCenters(ctx context.Context, onlyActive bool) ([]entities.WorkCenter, error)
	FindWorkCenter(ctx context.Context, id uuid.UUID) (*entities.WorkCenter, error)
	CreateWorkCenter(ctx context.Context, payload dto.CreateWorkCenterDTO) (*entities.WorkCenter, error)
	UpdateWorkCenter(ctx context.Context, id uuid.UUID, payload dto.UpdateWorkCenterDTO) error
	DeleteWorkCenter(ctx context.Context, id uuid.UUID) error
}

type WorkCenterRepository struct {
	storage *pgxpool.Pool
}

func NewWorkCenterRepository(storage *pgxpool.Pool) WorkCenterRepositoryInterface {
	return &WorkCenterRepository{storage: storage}
}

func scanWorkCenter(row pgx.Row) (*entities.WorkCenter, error) {
	var w entities.WorkCenter
	err := row.Scan(&w.ID, &w.Name, &w.Location, &w.Description, &w.Capacity, &w.Status, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WorkCenterRepository) GetWorkCenters(ctx context.Context, onlyActive bool) ([]entities.WorkCenter, error) {
	query := "SELECT " + workCenterFields + " FROM work_centers"
	if onlyActive {
		query += " WHERE status = 'Active'"
	}
	query += " ORDER BY name"

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]entities.WorkCenter, 0)
	for rows.Next() {
		w, err := scanWorkCenter(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *w)
	}
	return list, rows.Err()
}

func (r *WorkCenterRepository) FindWorkCenter(ctx context.Context, id uuid.UUID) (*entities.WorkCenter, error) {
	w, err := scanWorkCenter(r.storage.QueryRow(ctx,
		"SELECT "+workCenterFields+" FROM work_centers WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return w, nil
}

func (r *WorkCenterRepository) CreateWorkCenter(ctx context.Context, payload dto.CreateWorkCenterDTO) (*entities.WorkCenter, error) {
	status := payload.Status
	if status == "" {
		status = constants.WorkCenterStatusActive
	}

	w, err := scanWorkCenter(r.storage.QueryRow(ctx, `
		INSERT INTO work_centers (name, location, description, capacity, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+workCenterFields,
		payload.Name, payload.Location, payload.Description, payload.Capacity, status))
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (r *WorkCenterRepository) UpdateWorkCenter(ctx context.Context, id uuid.UUID, payload dto.UpdateWorkCenterDTO) error {
	builder := sq.Update("work_centers").Set("updated_at", sq.Expr("now()")).Where(sq.Eq{"id": id})
	if payload.Name != nil {
		builder = builder.Set("name", *payload.Name)
	}
	if payload.Location.Valid {
		builder = builder.Set("location", payload.Location)
	}
	if payload.Description.Valid {
		builder = builder.Set("description", payload.Description)
	}
	if payload.Capacity != nil {
		builder = builder.Set("capacity", *payload.Capacity)
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

func (r *WorkCenterRepository) DeleteWorkCenter(ctx context.Context, id uuid.UUID) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM work_centers WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
