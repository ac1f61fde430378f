package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
)

const notificationFields = "id, user_id, title, message, type, read, link, created_at"

type NotificationRepositoryInterface interface {
	GetForUser(ctx context.Context, userID uuid.UUID, limit int) ([]entities.Notification, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (uint64, error)
	Create(ctx context.Context, q Querier, payload dto.CreateNotificationDTO) (*entities.Notification, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type NotificationRepository struct {
	storage *pgxpool.Pool
}

func NewNotificationRepository(storage *pgxpool.Pool) NotificationRepositoryInterface {
	return &NotificationRepository{storage: storage}
}

func (r *NotificationRepository) GetForUser(ctx context.Context, userID uuid.UUID, limit int) ([]entities.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.storage.Query(ctx,
		"SELECT "+notificationFields+" FROM notifications WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2",
		userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]entities.Notification, 0)
	for rows.Next() {
		var n entities.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.Read, &n.Link, &n.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (uint64, error) {
	var count uint64
	err := r.storage.QueryRow(ctx,
		"SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read = false", userID).Scan(&count)
	return count, err
}

// Create takes a Querier so scrap-cascade notifications can ride the board
// move transaction. Pass nil outside a transaction.
func (r *NotificationRepository) Create(ctx context.Context, q Querier, payload dto.CreateNotificationDTO) (*entities.Notification, error) {
	if q == nil {
		q = r.storage
	}
	var n entities.Notification
	err := q.QueryRow(ctx, `
		INSERT INTO notifications (user_id, title, message, type, link)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+notificationFields,
		payload.UserID, payload.Title, payload.Message, payload.Type, payload.Link,
	).Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.Read, &n.Link, &n.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	result, err := r.storage.Exec(ctx,
		"UPDATE notifications SET read = true WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	_, err := r.storage.Exec(ctx,
		"UPDATE notifications SET read = true WHERE user_id = $1 AND read = false", userID)
	return err
}

func (r *NotificationRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result, err := r.storage.Exec(ctx,
		"DELETE FROM notifications WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
