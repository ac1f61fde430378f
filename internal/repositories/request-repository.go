package repositories

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	db "gearguard/internal/infrastructure/bd"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"
)

const requestJoinedFields = `
	r.id, r.request_number, r.subject, r.description, r.equipment_id, r.team_id,
	r.assigned_technician_id, r.work_center_id, r.type, r.status, r.priority,
	r.scheduled_date, r.started_at, r.completed_at, r.estimated_hours,
	r.actual_hours, r.cost, r.created_by, r.created_at, r.updated_at,
	e.name, e.serial_number,
	t.name, t.color,
	tech.user_id, p.full_name,
	wc.name, wc.location`

const requestJoins = `
	FROM maintenance_requests r
		LEFT JOIN equipment e ON e.id = r.equipment_id
		LEFT JOIN teams t ON t.id = r.team_id
		LEFT JOIN technicians tech ON tech.id = r.assigned_technician_id
		LEFT JOIN profiles p ON p.id = tech.user_id
		LEFT JOIN work_centers wc ON wc.id = r.work_center_id`

var requestFilterMap = map[string]string{
	"status":                 "r.status",
	"type":                   "r.type",
	"priority":               "r.priority",
	"team_id":                "r.team_id",
	"equipment_id":           "r.equipment_id",
	"assigned_technician_id": "r.assigned_technician_id",
	"work_center_id":         "r.work_center_id",
	"created_by":             "r.created_by",
	"created_at":             "r.created_at",
	"scheduled_date":         "r.scheduled_date",
	"search":                 "r.subject",
}

type RequestRepositoryInterface interface {
	GetRequests(ctx context.Context, filter types.Filter) ([]entities.MaintenanceRequest, uint64, error)
	FindRequest(ctx context.Context, id uuid.UUID) (*entities.MaintenanceRequest, error)
	CreateRequest(ctx context.Context, createdBy uuid.UUID, payload dto.CreateRequestDTO) (*entities.MaintenanceRequest, error)
	UpdateRequest(ctx context.Context, id uuid.UUID, payload dto.UpdateRequestDTO) error
	DeleteRequest(ctx context.Context, id uuid.UUID) error
	GetScheduled(ctx context.Context, from, to *time.Time) ([]entities.MaintenanceRequest, error)
	GetAnalyticsRows(ctx context.Context) ([]entities.AnalyticsRow, error)
	UpdateStatus(ctx context.Context, q Querier, id uuid.UUID, status string) error
	AssignTechnician(ctx context.Context, id, technicianID uuid.UUID) error
	Complete(ctx context.Context, id uuid.UUID, actualHours float64, notes null.String) error
}

type RequestRepository struct {
	storage *pgxpool.Pool
}

func NewRequestRepository(storage *pgxpool.Pool) RequestRepositoryInterface {
	return &RequestRepository{storage: storage}
}

func scanRequestRow(row pgx.Row) (*entities.MaintenanceRequest, error) {
	var r entities.MaintenanceRequest
	var equipmentName, equipmentSerial null.String
	var teamName, teamColor null.String
	var techUserID *uuid.UUID
	var techFullName null.String
	var wcName, wcLocation null.String

	err := row.Scan(
		&r.ID, &r.RequestNumber, &r.Subject, &r.Description, &r.EquipmentID, &r.TeamID,
		&r.AssignedTechnicianID, &r.WorkCenterID, &r.Type, &r.Status, &r.Priority,
		&r.ScheduledDate, &r.StartedAt, &r.CompletedAt, &r.EstimatedHours,
		&r.ActualHours, &r.Cost, &r.CreatedBy, &r.CreatedAt, &r.UpdatedAt,
		&equipmentName, &equipmentSerial,
		&teamName, &teamColor,
		&techUserID, &techFullName,
		&wcName, &wcLocation,
	)
	if err != nil {
		return nil, err
	}

	if r.EquipmentID != nil && equipmentName.Valid {
		r.Equipment = &entities.ShortEquipment{
			ID:           *r.EquipmentID,
			Name:         equipmentName.String,
			SerialNumber: equipmentSerial.String,
		}
	}
	if r.TeamID != nil && teamName.Valid {
		r.Team = &entities.ShortTeam{ID: *r.TeamID, Name: teamName.String, Color: teamColor.String}
	}
	if r.AssignedTechnicianID != nil {
		r.Technician = &entities.ShortTechnician{
			ID:       *r.AssignedTechnicianID,
			UserID:   techUserID,
			FullName: techFullName,
		}
	}
	if r.WorkCenterID != nil && wcName.Valid {
		r.WorkCenter = &entities.ShortWorkCenter{
			ID:       *r.WorkCenterID,
			Name:     wcName.String,
			Location: wcLocation,
		}
	}
	return &r, nil
}

func (r *RequestRepository) queryMany(ctx context.Context, query string, args ...any) ([]entities.MaintenanceRequest, error) {
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]entities.MaintenanceRequest, 0)
	for rows.Next() {
		req, err := scanRequestRow(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *req)
	}
	return list, rows.Err()
}

func (r *RequestRepository) GetRequests(ctx context.Context, filter types.Filter) ([]entities.MaintenanceRequest, uint64, error) {
	base := sq.Select(requestJoinedFields).
		From("maintenance_requests r").
		LeftJoin("equipment e ON e.id = r.equipment_id").
		LeftJoin("teams t ON t.id = r.team_id").
		LeftJoin("technicians tech ON tech.id = r.assigned_technician_id").
		LeftJoin("profiles p ON p.id = tech.user_id").
		LeftJoin("work_centers wc ON wc.id = r.work_center_id")
	base = db.ApplyListParams(base, filter, requestFilterMap)
	if len(filter.Sort) == 0 {
		base = base.OrderBy("r.created_at DESC")
	}

	query, args, err := base.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, 0, err
	}

	list, err := r.queryMany(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}

	countBuilder := db.ApplyListParams(
		sq.Select("COUNT(*)").From("maintenance_requests r"),
		types.Filter{Filter: filter.Filter, Search: filter.Search},
		requestFilterMap,
	)
	countQuery, countArgs, err := countBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *RequestRepository) FindRequest(ctx context.Context, id uuid.UUID) (*entities.MaintenanceRequest, error) {
	query := "SELECT " + requestJoinedFields + requestJoins + " WHERE r.id = $1"
	req, err := scanRequestRow(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return req, nil
}

func (r *RequestRepository) CreateRequest(ctx context.Context, createdBy uuid.UUID, payload dto.CreateRequestDTO) (*entities.MaintenanceRequest, error) {
	status := payload.Status
	if status == "" {
		status = constants.RequestStatusNew
	}
	priority := payload.Priority
	if priority == "" {
		priority = constants.PriorityMedium
	}

	var id uuid.UUID
	err := r.storage.QueryRow(ctx, `
		INSERT INTO maintenance_requests
			(request_number, subject, description, equipment_id, team_id, work_center_id,
			 type, status, priority, scheduled_date, estimated_hours, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`,
		payload.RequestNumber,
		payload.Subject,
		payload.Description,
		payload.EquipmentID,
		payload.TeamID,
		payload.WorkCenterID,
		payload.Type,
		status,
		priority,
		payload.ScheduledDate,
		payload.EstimatedHours,
		createdBy,
	).Scan(&id)
	if err != nil {
		return nil, err
	}

	return r.FindRequest(ctx, id)
}

func (r *RequestRepository) UpdateRequest(ctx context.Context, id uuid.UUID, payload dto.UpdateRequestDTO) error {
	builder := sq.Update("maintenance_requests").Set("updated_at", sq.Expr("now()")).Where(sq.Eq{"id": id})
	if payload.Subject != nil {
		builder = builder.Set("subject", *payload.Subject)
	}
	if payload.Description.Valid {
		builder = builder.Set("description", payload.Description)
	}
	if payload.EquipmentID != nil {
		builder = builder.Set("equipment_id", *payload.EquipmentID)
	}
	if payload.TeamID != nil {
		builder = builder.Set("team_id", *payload.TeamID)
	}
	if payload.TechnicianID != nil {
		builder = builder.Set("assigned_technician_id", *payload.TechnicianID)
	}
	if payload.WorkCenterID != nil {
		builder = builder.Set("work_center_id", *payload.WorkCenterID)
	}
	if payload.Type != nil {
		builder = builder.Set("type", *payload.Type)
	}
	if payload.Priority != nil {
		builder = builder.Set("priority", *payload.Priority)
	}
	if payload.Status != nil {
		builder = builder.Set("status", *payload.Status)
	}
	if payload.ScheduledDate.Valid {
		builder = builder.Set("scheduled_date", payload.ScheduledDate)
	}
	if payload.EstimatedHours.Valid {
		builder = builder.Set("estimated_hours", payload.EstimatedHours)
	}
	if payload.ActualHours.Valid {
		builder = builder.Set("actual_hours", payload.ActualHours)
	}
	if payload.Cost.Valid {
		builder = builder.Set("cost", payload.Cost)
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

func (r *RequestRepository) DeleteRequest(ctx context.Context, id uuid.UUID) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM maintenance_requests WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// GetScheduled returns requests with a scheduled date inside the optional
// bounds, ascending, for the calendar view.
func (r *RequestRepository) GetScheduled(ctx context.Context, from, to *time.Time) ([]entities.MaintenanceRequest, error) {
	base := sq.Select(requestJoinedFields).
		From("maintenance_requests r").
		LeftJoin("equipment e ON e.id = r.equipment_id").
		LeftJoin("teams t ON t.id = r.team_id").
		LeftJoin("technicians tech ON tech.id = r.assigned_technician_id").
		LeftJoin("profiles p ON p.id = tech.user_id").
		LeftJoin("work_centers wc ON wc.id = r.work_center_id").
		Where("r.scheduled_date IS NOT NULL").
		OrderBy("r.scheduled_date ASC")
	if from != nil {
		base = base.Where(sq.GtOrEq{"r.scheduled_date": *from})
	}
	if to != nil {
		base = base.Where(sq.LtOrEq{"r.scheduled_date": *to})
	}

	query, args, err := base.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, err
	}
	return r.queryMany(ctx, query, args...)
}

// GetAnalyticsRows fetches the single flat snapshot the reporting aggregator
// works from. Grouping happens in memory, not in SQL.
func (r *RequestRepository) GetAnalyticsRows(ctx context.Context) ([]entities.AnalyticsRow, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT r.status, r.type, r.created_at, r.completed_at, r.actual_hours, t.name
		FROM maintenance_requests r
			LEFT JOIN teams t ON t.id = r.team_id
		ORDER BY r.created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]entities.AnalyticsRow, 0)
	for rows.Next() {
		var row entities.AnalyticsRow
		if err := rows.Scan(&row.Status, &row.Type, &row.CreatedAt, &row.CompletedAt, &row.ActualHours, &row.TeamName); err != nil {
			return nil, err
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// UpdateStatus takes a Querier so a board move can share a transaction with
// the equipment scrap write.
func (r *RequestRepository) UpdateStatus(ctx context.Context, q Querier, id uuid.UUID, status string) error {
	if q == nil {
		q = r.storage
	}
	result, err := q.Exec(ctx,
		"UPDATE maintenance_requests SET status = $1, updated_at = now() WHERE id = $2", status, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *RequestRepository) AssignTechnician(ctx context.Context, id, technicianID uuid.UUID) error {
	result, err := r.storage.Exec(ctx, `
		UPDATE maintenance_requests
		SET assigned_technician_id = $1,
		    status = $2,
		    started_at = now(),
		    updated_at = now()
		WHERE id = $3
	`, technicianID, constants.RequestStatusInProgress, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *RequestRepository) Complete(ctx context.Context, id uuid.UUID, actualHours float64, notes null.String) error {
	result, err := r.storage.Exec(ctx, `
		UPDATE maintenance_requests
		SET status = $1,
		    actual_hours = $2,
		    completed_at = now(),
		    description = COALESCE($3, description),
		    updated_at = now()
		WHERE id = $4
	`, constants.RequestStatusRepaired, actualHours, notes, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
