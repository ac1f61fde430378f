package listeners

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/events"
	"gearguard/pkg/constants"
)

type stubNotificationService struct {
	sent []dto.CreateNotificationDTO
}

func (s *stubNotificationService) GetForUser(ctx context.Context, userID uuid.UUID) ([]entities.Notification, error) {
	return nil, nil
}

func (s *stubNotificationService) CountUnread(ctx context.Context, userID uuid.UUID) (uint64, error) {
	return 0, nil
}

func (s *stubNotificationService) Notify(ctx context.Context, payload dto.CreateNotificationDTO) (*entities.Notification, error) {
	s.sent = append(s.sent, payload)
	return &entities.Notification{ID: uuid.New(), UserID: payload.UserID}, nil
}

func (s *stubNotificationService) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	return nil
}

func (s *stubNotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return nil
}

func (s *stubNotificationService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return nil
}

func TestScrapMoveNotifiesMover(t *testing.T) {
	notifications := &stubNotificationService{}
	listener := NewNotificationListener(notifications, zap.NewNop())

	mover := uuid.New()
	author := uuid.New()
	err := listener.OnRequestMoved(context.Background(), events.RequestMoved{
		Request: &entities.MaintenanceRequest{
			ID:            uuid.New(),
			RequestNumber: "REQ-1700000000000",
			CreatedBy:     &author,
			Equipment:     &entities.ShortEquipment{ID: uuid.New(), Name: "CNC Mill 01"},
		},
		FromStatus:        constants.RequestStatusInProgress,
		ToStatus:          constants.RequestStatusScrap,
		EquipmentScrapped: true,
		MovedBy:           mover,
	})
	require.NoError(t, err)

	require.Len(t, notifications.sent, 1)
	sent := notifications.sent[0]
	assert.Equal(t, mover, sent.UserID)
	assert.Equal(t, "Equipment Scrapped", sent.Title)
	assert.Equal(t, constants.NotificationWarning, sent.Type)
	assert.Contains(t, sent.Message, "CNC Mill 01")
}

func TestOrdinaryMoveStaysQuiet(t *testing.T) {
	notifications := &stubNotificationService{}
	listener := NewNotificationListener(notifications, zap.NewNop())

	author := uuid.New()
	err := listener.OnRequestMoved(context.Background(), events.RequestMoved{
		Request:    &entities.MaintenanceRequest{ID: uuid.New(), CreatedBy: &author},
		FromStatus: constants.RequestStatusNew,
		ToStatus:   constants.RequestStatusInProgress,
	})
	require.NoError(t, err)
	assert.Empty(t, notifications.sent)
}

func TestSelfAssignmentStaysQuiet(t *testing.T) {
	notifications := &stubNotificationService{}
	listener := NewNotificationListener(notifications, zap.NewNop())

	author := uuid.New()
	err := listener.OnRequestAssigned(context.Background(), events.RequestAssigned{
		Request: &entities.MaintenanceRequest{ID: uuid.New(), CreatedBy: &author},
		UserID:  author,
	})
	require.NoError(t, err)
	assert.Empty(t, notifications.sent)
}

func TestAssignmentByAnotherNotifiesAuthor(t *testing.T) {
	notifications := &stubNotificationService{}
	listener := NewNotificationListener(notifications, zap.NewNop())

	author := uuid.New()
	err := listener.OnRequestAssigned(context.Background(), events.RequestAssigned{
		Request: &entities.MaintenanceRequest{
			ID:            uuid.New(),
			RequestNumber: "REQ-1700000000001",
			CreatedBy:     &author,
		},
		UserID: uuid.New(),
	})
	require.NoError(t, err)

	require.Len(t, notifications.sent, 1)
	assert.Equal(t, author, notifications.sent[0].UserID)
	assert.Equal(t, "Request Assigned", notifications.sent[0].Title)
}
