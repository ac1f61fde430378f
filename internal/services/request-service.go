package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/events"
	"gearguard/internal/repositories"
	"gearguard/pkg/eventbus"
	"gearguard/pkg/types"
)

type RequestServiceInterface interface {
	GetRequests(ctx context.Context, filter types.Filter) ([]entities.MaintenanceRequest, uint64, error)
	FindRequest(ctx context.Context, id uuid.UUID) (*entities.MaintenanceRequest, error)
	CreateRequest(ctx context.Context, createdBy uuid.UUID, payload dto.CreateRequestDTO) (*entities.MaintenanceRequest, error)
	UpdateRequest(ctx context.Context, id uuid.UUID, payload dto.UpdateRequestDTO) (*entities.MaintenanceRequest, error)
	DeleteRequest(ctx context.Context, id uuid.UUID) error
	GetScheduled(ctx context.Context, from, to *time.Time) ([]entities.MaintenanceRequest, error)
	AssignToMe(ctx context.Context, userID, requestID uuid.UUID) (*entities.MaintenanceRequest, error)
	Complete(ctx context.Context, userID, requestID uuid.UUID, payload dto.CompleteRequestDTO) (*entities.MaintenanceRequest, error)
}

type RequestService struct {
	requests    repositories.RequestRepositoryInterface
	technicians TechnicianServiceInterface
	cache       repositories.CacheRepositoryInterface
	bus         *eventbus.Bus
	feed        ChangeFeedInterface
	logger      *zap.Logger
}

func NewRequestService(
	requests repositories.RequestRepositoryInterface,
	technicians TechnicianServiceInterface,
	cache repositories.CacheRepositoryInterface,
	bus *eventbus.Bus,
	feed ChangeFeedInterface,
	logger *zap.Logger,
) RequestServiceInterface {
	return &RequestService{
		requests:    requests,
		technicians: technicians,
		cache:       cache,
		bus:         bus,
		feed:        feed,
		logger:      logger,
	}
}

// NewRequestNumber builds the human-facing ticket number. Millisecond
// resolution keeps numbers unique in practice; the column is unique-indexed
// as the backstop.
func NewRequestNumber() string {
	return fmt.Sprintf("REQ-%d", time.Now().UnixMilli())
}

func (s *RequestService) GetRequests(ctx context.Context, filter types.Filter) ([]entities.MaintenanceRequest, uint64, error) {
	return s.requests.GetRequests(ctx, filter)
}

func (s *RequestService) FindRequest(ctx context.Context, id uuid.UUID) (*entities.MaintenanceRequest, error) {
	return s.requests.FindRequest(ctx, id)
}

func (s *RequestService) CreateRequest(ctx context.Context, createdBy uuid.UUID, payload dto.CreateRequestDTO) (*entities.MaintenanceRequest, error) {
	if payload.RequestNumber == "" {
		payload.RequestNumber = NewRequestNumber()
	}

	request, err := s.requests.CreateRequest(ctx, createdBy, payload)
	if err != nil {
		return nil, err
	}

	s.afterWrite(ctx, "INSERT")
	s.bus.Publish(ctx, events.RequestCreated{Request: request, CreatedBy: createdBy})
	return request, nil
}

func (s *RequestService) UpdateRequest(ctx context.Context, id uuid.UUID, payload dto.UpdateRequestDTO) (*entities.MaintenanceRequest, error) {
	if err := s.requests.UpdateRequest(ctx, id, payload); err != nil {
		return nil, err
	}
	s.afterWrite(ctx, "UPDATE")
	return s.requests.FindRequest(ctx, id)
}

func (s *RequestService) DeleteRequest(ctx context.Context, id uuid.UUID) error {
	if err := s.requests.DeleteRequest(ctx, id); err != nil {
		return err
	}
	s.afterWrite(ctx, "DELETE")
	return nil
}

func (s *RequestService) GetScheduled(ctx context.Context, from, to *time.Time) ([]entities.MaintenanceRequest, error) {
	return s.requests.GetScheduled(ctx, from, to)
}

// AssignToMe puts the calling user on the request, creating their technician
// record first if they never had one, and starts the work.
func (s *RequestService) AssignToMe(ctx context.Context, userID, requestID uuid.UUID) (*entities.MaintenanceRequest, error) {
	technician, err := s.technicians.EnsureForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.requests.AssignTechnician(ctx, requestID, technician.ID); err != nil {
		return nil, err
	}

	request, err := s.requests.FindRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	s.afterWrite(ctx, "UPDATE")
	s.bus.Publish(ctx, events.RequestAssigned{
		Request:      request,
		TechnicianID: technician.ID,
		UserID:       userID,
	})
	return request, nil
}

func (s *RequestService) Complete(ctx context.Context, userID, requestID uuid.UUID, payload dto.CompleteRequestDTO) (*entities.MaintenanceRequest, error) {
	if err := s.requests.Complete(ctx, requestID, payload.ActualHours, payload.Notes); err != nil {
		return nil, err
	}

	request, err := s.requests.FindRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	s.afterWrite(ctx, "UPDATE")
	s.bus.Publish(ctx, events.RequestCompleted{Request: request, CompletedBy: userID})
	return request, nil
}

// afterWrite fans the change out to websocket subscribers and drops the
// cached analytics snapshot so the next report reflects the write.
func (s *RequestService) afterWrite(ctx context.Context, event string) {
	s.feed.TableChanged("maintenance_requests", event)
	if s.cache != nil {
		if err := s.cache.InvalidateAnalytics(ctx); err != nil {
			s.logger.Warn("failed to invalidate analytics cache", zap.Error(err))
		}
	}
}
