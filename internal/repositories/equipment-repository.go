package repositories

import (
	"context"
	"errors"

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

const equipmentJoinedFields = `
	e.id, e.name, e.serial_number, e.category_id, e.team_id, e.status,
	e.location, e.department, e.assigned_to, e.purchase_date, e.warranty_expiry_date,
	e.notes, e.created_by, e.created_at, e.updated_at,
	c.name, t.name, t.color`

var equipmentFilterMap = map[string]string{
	"status":      "e.status",
	"category_id": "e.category_id",
	"team_id":     "e.team_id",
	"department":  "e.department",
	"created_at":  "e.created_at",
	"name":        "e.name",
	"search":      "e.name",
}

type EquipmentRepositoryInterface interface {
	GetEquipment(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error)
	FindEquipment(ctx context.Context, id uuid.UUID) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, createdBy uuid.UUID, payload dto.CreateEquipmentDTO) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id uuid.UUID, payload dto.UpdateEquipmentDTO) error
	DeleteEquipment(ctx context.Context, id uuid.UUID) error
	UpdateStatus(ctx context.Context, q Querier, id uuid.UUID, status string) error
	GetCategories(ctx context.Context) ([]entities.EquipmentCategory, error)
	CreateCategory(ctx context.Context, payload dto.CreateEquipmentCategoryDTO) (*entities.EquipmentCategory, error)
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage}
}

func scanEquipmentRow(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	var categoryName, teamName, teamColor null.String

	err := row.Scan(
		&e.ID, &e.Name, &e.SerialNumber, &e.CategoryID, &e.TeamID, &e.Status,
		&e.Location, &e.Department, &e.AssignedTo, &e.PurchaseDate, &e.WarrantyDate,
		&e.Notes, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
		&categoryName, &teamName, &teamColor,
	)
	if err != nil {
		return nil, err
	}

	if e.CategoryID != nil && categoryName.Valid {
		e.Category = &entities.ShortCategory{ID: *e.CategoryID, Name: categoryName.String}
	}
	if e.TeamID != nil && teamName.Valid {
		e.Team = &entities.ShortTeam{ID: *e.TeamID, Name: teamName.String, Color: teamColor.String}
	}
	return &e, nil
}

func (r *EquipmentRepository) GetEquipment(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	base := sq.Select(equipmentJoinedFields).
		From("equipment e").
		LeftJoin("equipment_categories c ON c.id = e.category_id").
		LeftJoin("teams t ON t.id = e.team_id")
	base = db.ApplyListParams(base, filter, equipmentFilterMap)
	if len(filter.Sort) == 0 {
		base = base.OrderBy("e.created_at DESC")
	}

	query, args, err := base.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := make([]entities.Equipment, 0)
	for rows.Next() {
		e, err := scanEquipmentRow(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countBuilder := db.ApplyListParams(
		sq.Select("COUNT(*)").From("equipment e"),
		types.Filter{Filter: filter.Filter, Search: filter.Search},
		equipmentFilterMap,
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

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uuid.UUID) (*entities.Equipment, error) {
	query := `
		SELECT ` + equipmentJoinedFields + `
		FROM equipment e
			LEFT JOIN equipment_categories c ON c.id = e.category_id
			LEFT JOIN teams t ON t.id = e.team_id
		WHERE e.id = $1
	`
	e, err := scanEquipmentRow(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, createdBy uuid.UUID, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	status := payload.Status
	if status == "" {
		status = constants.EquipmentStatusActive
	}

	var id uuid.UUID
	err := r.storage.QueryRow(ctx, `
		INSERT INTO equipment
			(name, serial_number, category_id, team_id, status, location, department,
			 assigned_to, purchase_date, warranty_expiry_date, notes, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`,
		payload.Name,
		payload.SerialNumber,
		payload.CategoryID,
		payload.TeamID,
		status,
		payload.Location,
		payload.Department,
		payload.AssignedTo,
		payload.PurchaseDate,
		payload.WarrantyDate,
		payload.Notes,
		createdBy,
	).Scan(&id)
	if err != nil {
		return nil, err
	}

	return r.FindEquipment(ctx, id)
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id uuid.UUID, payload dto.UpdateEquipmentDTO) error {
	builder := sq.Update("equipment").Set("updated_at", sq.Expr("now()")).Where(sq.Eq{"id": id})
	if payload.Name != nil {
		builder = builder.Set("name", *payload.Name)
	}
	if payload.SerialNumber != nil {
		builder = builder.Set("serial_number", *payload.SerialNumber)
	}
	if payload.CategoryID != nil {
		builder = builder.Set("category_id", *payload.CategoryID)
	}
	if payload.TeamID != nil {
		builder = builder.Set("team_id", *payload.TeamID)
	}
	if payload.Status != nil {
		builder = builder.Set("status", *payload.Status)
	}
	if payload.Location.Valid {
		builder = builder.Set("location", payload.Location)
	}
	if payload.Department.Valid {
		builder = builder.Set("department", payload.Department)
	}
	if payload.AssignedTo.Valid {
		builder = builder.Set("assigned_to", payload.AssignedTo)
	}
	if payload.PurchaseDate.Valid {
		builder = builder.Set("purchase_date", payload.PurchaseDate)
	}
	if payload.WarrantyDate.Valid {
		builder = builder.Set("warranty_expiry_date", payload.WarrantyDate)
	}
	if payload.Notes.Valid {
		builder = builder.Set("notes", payload.Notes)
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

func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id uuid.UUID) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM equipment WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateStatus takes a Querier so the board's scrap cascade can run it inside
// the same transaction as the request-status write.
func (r *EquipmentRepository) UpdateStatus(ctx context.Context, q Querier, id uuid.UUID, status string) error {
	if q == nil {
		q = r.storage
	}
	result, err := q.Exec(ctx,
		"UPDATE equipment SET status = $1, updated_at = now() WHERE id = $2", status, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) GetCategories(ctx context.Context) ([]entities.EquipmentCategory, error) {
	rows, err := r.storage.Query(ctx,
		"SELECT id, name, description, created_at FROM equipment_categories ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]entities.EquipmentCategory, 0)
	for rows.Next() {
		var c entities.EquipmentCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *EquipmentRepository) CreateCategory(ctx context.Context, payload dto.CreateEquipmentCategoryDTO) (*entities.EquipmentCategory, error) {
	var c entities.EquipmentCategory
	err := r.storage.QueryRow(ctx, `
		INSERT INTO equipment_categories (name, description)
		VALUES ($1, $2)
		RETURNING id, name, description, created_at
	`, payload.Name, payload.Description).
		Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
