package listeners

import (
	"context"
	"fmt"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/events"
	"gearguard/internal/services"
	"gearguard/pkg/constants"
	"gearguard/pkg/eventbus"
)

// NotificationListener turns request lifecycle events into stored, pushed
// notifications for the request's author.
type NotificationListener struct {
	notifications services.NotificationServiceInterface
	logger        *zap.Logger
}

func NewNotificationListener(notifications services.NotificationServiceInterface, logger *zap.Logger) *NotificationListener {
	return &NotificationListener{notifications: notifications, logger: logger}
}

func (l *NotificationListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.RequestMovedName, l.OnRequestMoved)
	bus.Subscribe(events.RequestAssignedName, l.OnRequestAssigned)
	bus.Subscribe(events.RequestCompletedName, l.OnRequestCompleted)
}

func (l *NotificationListener) OnRequestMoved(ctx context.Context, event eventbus.Event) error {
	moved, ok := event.(events.RequestMoved)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", event.Name())
	}
	if !moved.EquipmentScrapped {
		return nil
	}

	equipmentName := "equipment"
	if moved.Request.Equipment != nil {
		equipmentName = moved.Request.Equipment.Name
	}

	_, err := l.notifications.Notify(ctx, dto.CreateNotificationDTO{
		UserID:  moved.MovedBy,
		Title:   "Equipment Scrapped",
		Message: fmt.Sprintf("%s was scrapped along with request %s", equipmentName, moved.Request.RequestNumber),
		Type:    constants.NotificationWarning,
		Link:    null.StringFrom("/requests/" + moved.Request.ID.String()),
	})
	return err
}

func (l *NotificationListener) OnRequestAssigned(ctx context.Context, event eventbus.Event) error {
	assigned, ok := event.(events.RequestAssigned)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", event.Name())
	}
	// Self-assignment needs no notice to the one who did it.
	if assigned.Request.CreatedBy == nil || *assigned.Request.CreatedBy == assigned.UserID {
		return nil
	}

	_, err := l.notifications.Notify(ctx, dto.CreateNotificationDTO{
		UserID:  *assigned.Request.CreatedBy,
		Title:   "Request Assigned",
		Message: fmt.Sprintf("Request %s is now being worked on", assigned.Request.RequestNumber),
		Type:    constants.NotificationInfo,
		Link:    null.StringFrom("/requests/" + assigned.Request.ID.String()),
	})
	return err
}

func (l *NotificationListener) OnRequestCompleted(ctx context.Context, event eventbus.Event) error {
	completed, ok := event.(events.RequestCompleted)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", event.Name())
	}
	if completed.Request.CreatedBy == nil || *completed.Request.CreatedBy == completed.CompletedBy {
		return nil
	}

	_, err := l.notifications.Notify(ctx, dto.CreateNotificationDTO{
		UserID:  *completed.Request.CreatedBy,
		Title:   "Request Completed",
		Message: fmt.Sprintf("Request %s was repaired", completed.Request.RequestNumber),
		Type:    constants.NotificationSuccess,
		Link:    null.StringFrom("/requests/" + completed.Request.ID.String()),
	})
	return err
}
