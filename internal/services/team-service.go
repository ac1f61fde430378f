package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
)

type TeamServiceInterface interface {
	GetTeams(ctx context.Context) ([]entities.Team, error)
	FindTeam(ctx context.Context, id uuid.UUID) (*entities.Team, error)
	CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*entities.Team, error)
	UpdateTeam(ctx context.Context, id uuid.UUID, payload dto.UpdateTeamDTO) (*entities.Team, error)
	DeleteTeam(ctx context.Context, id uuid.UUID) error
}

type TeamService struct {
	teams  repositories.TeamRepositoryInterface
	feed   ChangeFeedInterface
	logger *zap.Logger
}

func NewTeamService(
	teams repositories.TeamRepositoryInterface,
	feed ChangeFeedInterface,
	logger *zap.Logger,
) TeamServiceInterface {
	return &TeamService{teams: teams, feed: feed, logger: logger}
}

func (s *TeamService) GetTeams(ctx context.Context) ([]entities.Team, error) {
	return s.teams.GetTeams(ctx)
}

func (s *TeamService) FindTeam(ctx context.Context, id uuid.UUID) (*entities.Team, error) {
	return s.teams.FindTeam(ctx, id)
}

func (s *TeamService) CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*entities.Team, error) {
	team, err := s.teams.CreateTeam(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.feed.TableChanged("teams", "INSERT")
	return team, nil
}

func (s *TeamService) UpdateTeam(ctx context.Context, id uuid.UUID, payload dto.UpdateTeamDTO) (*entities.Team, error) {
	if err := s.teams.UpdateTeam(ctx, id, payload); err != nil {
		return nil, err
	}
	s.feed.TableChanged("teams", "UPDATE")
	return s.teams.FindTeam(ctx, id)
}

func (s *TeamService) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	if err := s.teams.DeleteTeam(ctx, id); err != nil {
		return err
	}
	s.feed.TableChanged("teams", "DELETE")
	return nil
}
