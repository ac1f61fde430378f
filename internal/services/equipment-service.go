package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/types"
)

type EquipmentServiceInterface interface {
	GetEquipment(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error)
	FindEquipment(ctx context.Context, id uuid.UUID) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, createdBy uuid.UUID, payload dto.CreateEquipmentDTO) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id uuid.UUID, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id uuid.UUID) error
	GetCategories(ctx context.Context) ([]entities.EquipmentCategory, error)
	CreateCategory(ctx context.Context, payload dto.CreateEquipmentCategoryDTO) (*entities.EquipmentCategory, error)
}

type EquipmentService struct {
	equipment repositories.EquipmentRepositoryInterface
	feed      ChangeFeedInterface
	logger    *zap.Logger
}

func NewEquipmentService(
	equipment repositories.EquipmentRepositoryInterface,
	feed ChangeFeedInterface,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{equipment: equipment, feed: feed, logger: logger}
}

func (s *EquipmentService) GetEquipment(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	return s.equipment.GetEquipment(ctx, filter)
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id uuid.UUID) (*entities.Equipment, error) {
	return s.equipment.FindEquipment(ctx, id)
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, createdBy uuid.UUID, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	equipment, err := s.equipment.CreateEquipment(ctx, createdBy, payload)
	if err != nil {
		return nil, err
	}
	s.feed.TableChanged("equipment", "INSERT")
	return equipment, nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uuid.UUID, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	if err := s.equipment.UpdateEquipment(ctx, id, payload); err != nil {
		return nil, err
	}
	s.feed.TableChanged("equipment", "UPDATE")
	return s.equipment.FindEquipment(ctx, id)
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, id uuid.UUID) error {
	if err := s.equipment.DeleteEquipment(ctx, id); err != nil {
		return err
	}
	s.feed.TableChanged("equipment", "DELETE")
	return nil
}

func (s *EquipmentService) GetCategories(ctx context.Context) ([]entities.EquipmentCategory, error) {
	return s.equipment.GetCategories(ctx)
}

func (s *EquipmentService) CreateCategory(ctx context.Context, payload dto.CreateEquipmentCategoryDTO) (*entities.EquipmentCategory, error) {
	category, err := s.equipment.CreateCategory(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.feed.TableChanged("equipment_categories", "INSERT")
	return category, nil
}
