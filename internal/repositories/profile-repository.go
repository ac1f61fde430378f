package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/google/uuid"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
)

const profileFields = "id, email, full_name, role, department, avatar_url, password_hash, created_at, updated_at"

type ProfileRepositoryInterface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Profile, error)
	FindByEmail(ctx context.Context, email string) (*entities.Profile, error)
	Create(ctx context.Context, profile *entities.Profile) error
	Update(ctx context.Context, id uuid.UUID, payload dto.UpdateProfileDTO) error
	UpdateAvatarURL(ctx context.Context, id uuid.UUID, avatarURL string) error
}

type ProfileRepository struct {
	storage *pgxpool.Pool
}

func NewProfileRepository(storage *pgxpool.Pool) ProfileRepositoryInterface {
	return &ProfileRepository{storage: storage}
}

func scanProfile(row pgx.Row) (*entities.Profile, error) {
	var p entities.Profile
	err := row.Scan(
		&p.ID,
		&p.Email,
		&p.FullName,
		&p.Role,
		&p.Department,
		&p.AvatarURL,
		&p.PasswordHash,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Profile, error) {
	query := "SELECT " + profileFields + " FROM profiles WHERE id = $1"
	return scanProfile(r.storage.QueryRow(ctx, query, id))
}

func (r *ProfileRepository) FindByEmail(ctx context.Context, email string) (*entities.Profile, error) {
	query := "SELECT " + profileFields + " FROM profiles WHERE lower(email) = lower($1)"
	return scanProfile(r.storage.QueryRow(ctx, query, email))
}

func (r *ProfileRepository) Create(ctx context.Context, profile *entities.Profile) error {
	query := `
		INSERT INTO profiles (id, email, full_name, role, department, avatar_url, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`
	return r.storage.QueryRow(ctx, query,
		profile.ID,
		profile.Email,
		profile.FullName,
		profile.Role,
		profile.Department,
		profile.AvatarURL,
		profile.PasswordHash,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
}

func (r *ProfileRepository) Update(ctx context.Context, id uuid.UUID, payload dto.UpdateProfileDTO) error {
	query := `
		UPDATE profiles
		SET full_name  = COALESCE($1, full_name),
		    department = COALESCE($2, department),
		    avatar_url = COALESCE($3, avatar_url),
		    updated_at = now()
		WHERE id = $4
	`
	result, err := r.storage.Exec(ctx, query, payload.FullName, payload.Department, payload.AvatarURL, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ProfileRepository) UpdateAvatarURL(ctx context.Context, id uuid.UUID, avatarURL string) error {
	result, err := r.storage.Exec(ctx,
		"UPDATE profiles SET avatar_url = $1, updated_at = now() WHERE id = $2", avatarURL, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
