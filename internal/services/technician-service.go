package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
)

type TechnicianServiceInterface interface {
	GetTechnicians(ctx context.Context) ([]entities.Technician, error)
	GetTechniciansByTeam(ctx context.Context, teamID uuid.UUID) ([]entities.Technician, error)
	UpdateTechnician(ctx context.Context, id uuid.UUID, payload dto.UpdateTechnicianDTO) error
	EnsureForUser(ctx context.Context, userID uuid.UUID) (*entities.Technician, error)
}

type TechnicianService struct {
	technicians repositories.TechnicianRepositoryInterface
	feed        ChangeFeedInterface
	logger      *zap.Logger
}

func NewTechnicianService(
	technicians repositories.TechnicianRepositoryInterface,
	feed ChangeFeedInterface,
	logger *zap.Logger,
) TechnicianServiceInterface {
	return &TechnicianService{technicians: technicians, feed: feed, logger: logger}
}

func (s *TechnicianService) GetTechnicians(ctx context.Context) ([]entities.Technician, error) {
	return s.technicians.GetTechnicians(ctx)
}

func (s *TechnicianService) GetTechniciansByTeam(ctx context.Context, teamID uuid.UUID) ([]entities.Technician, error) {
	return s.technicians.GetTechniciansByTeam(ctx, teamID)
}

func (s *TechnicianService) UpdateTechnician(ctx context.Context, id uuid.UUID, payload dto.UpdateTechnicianDTO) error {
	if err := s.technicians.UpdateTechnician(ctx, id, payload); err != nil {
		return err
	}
	s.feed.TableChanged("technicians", "UPDATE")
	return nil
}

// EnsureForUser returns the user's technician record, creating one on the
// fly the first time the user takes an assignment.
func (s *TechnicianService) EnsureForUser(ctx context.Context, userID uuid.UUID) (*entities.Technician, error) {
	technician, err := s.technicians.FindTechnicianByUser(ctx, userID)
	if err == nil {
		return technician, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	technician, err = s.technicians.CreateForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.feed.TableChanged("technicians", "INSERT")
	return technician, nil
}
