package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
)

type WorkCenterServiceInterface interface {
	GetWorkCenters(ctx context.Context, onlyActive bool) ([]entities.WorkCenter, error)
	FindWorkCenter(ctx context.Context, id uuid.UUID) (*entities.WorkCenter, error)
	CreateWorkCenter(ctx context.Context, payload dto.CreateWorkCenterDTO) (*entities.WorkCenter, error)
	UpdateWorkCenter(ctx context.Context, id uuid.UUID, payload dto.UpdateWorkCenterDTO) (*entities.WorkCenter, error)
	DeleteWorkCenter(ctx context.Context, id uuid.UUID) error
}

type WorkCenterService struct {
	workCenters repositories.WorkCenterRepositoryInterface
	feed        ChangeFeedInterface
	logger      *zap.Logger
}

func NewWorkCenterService(
	workCenters repositories.WorkCenterRepositoryInterface,
	feed ChangeFeedInterface,
	logger *zap.Logger,
) WorkCenterServiceInterface {
	return &WorkCenterService{workCenters: workCenters, feed: feed, logger: logger}
}

func (s *WorkCenterService) GetWorkCenters(ctx context.Context, onlyActive bool) ([]entities.WorkCenter, error) {
	return s.workCenters.GetWorkCenters(ctx, onlyActive)
}

func (s *WorkCenterService) FindWorkCenter(ctx context.Context, id uuid.UUID) (*entities.WorkCenter, error) {
	return s.workCenters.FindWorkCenter(ctx, id)
}

func (s *WorkCenterService) CreateWorkCenter(ctx context.Context, payload dto.CreateWorkCenterDTO) (*entities.WorkCenter, error) {
	workCenter, err := s.workCenters.CreateWorkCenter(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.feed.TableChanged("work_centers", "INSERT")
	return workCenter, nil
}

func (s *WorkCenterService) UpdateWorkCenter(ctx context.Context, id uuid.UUID, payload dto.UpdateWorkCenterDTO) (*entities.WorkCenter, error) {
	if err := s.workCenters.UpdateWorkCenter(ctx, id, payload); err != nil {
		return nil, err
	}
	s.feed.TableChanged("work_centers", "UPDATE")
	return s.workCenters.FindWorkCenter(ctx, id)
}

func (s *WorkCenterService) DeleteWorkCenter(ctx context.Context, id uuid.UUID) error {
	if err := s.workCenters.DeleteWorkCenter(ctx, id); err != nil {
		return err
	}
	s.feed.TableChanged("work_centers", "DELETE")
	return nil
}
