package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/constants"
	"gearguard/pkg/websocket"
)

type NotificationServiceInterface interface {
	GetForUser(ctx context.Context, userID uuid.UUID) ([]entities.Notification, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (uint64, error)
	Notify(ctx context.Context, payload dto.CreateNotificationDTO) (*entities.Notification, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type NotificationService struct {
	notifications repositories.NotificationRepositoryInterface
	hub           *websocket.Hub
	logger        *zap.Logger
}

func NewNotificationService(
	notifications repositories.NotificationRepositoryInterface,
	hub *websocket.Hub,
	logger *zap.Logger,
) NotificationServiceInterface {
	return &NotificationService{notifications: notifications, hub: hub, logger: logger}
}

func (s *NotificationService) GetForUser(ctx context.Context, userID uuid.UUID) ([]entities.Notification, error) {
	return s.notifications.GetForUser(ctx, userID, 50)
}

func (s *NotificationService) CountUnread(ctx context.Context, userID uuid.UUID) (uint64, error) {
	return s.notifications.CountUnread(ctx, userID)
}

// Notify persists the notification and pushes it to the user's open sockets.
// A delivery failure is logged, not returned: the row is already stored.
func (s *NotificationService) Notify(ctx context.Context, payload dto.CreateNotificationDTO) (*entities.Notification, error) {
	if payload.Type == "" {
		payload.Type = constants.NotificationInfo
	}

	notification, err := s.notifications.Create(ctx, nil, payload)
	if err != nil {
		return nil, err
	}

	if s.hub != nil {
		if err := s.hub.SendToUser(payload.UserID, notification, websocket.TypeNotification); err != nil {
			s.logger.Warn("failed to push notification",
				zap.String("userID", payload.UserID.String()),
				zap.Error(err),
			)
		}
	}
	return notification, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	return s.notifications.MarkRead(ctx, userID, id)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return s.notifications.MarkAllRead(ctx, userID)
}

func (s *NotificationService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.notifications.Delete(ctx, userID, id)
}
