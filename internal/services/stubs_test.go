package services

import (
	"context"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"
)

func errNotFoundForTest() error { return apperrors.ErrNotFound }

// stubRequestRepo keeps requests in memory and records status writes.
type stubRequestRepo struct {
	requests      map[uuid.UUID]*entities.MaintenanceRequest
	statusWrites  []string
	failOnUpdate  error
	analyticsRows []entities.AnalyticsRow
}

func newStubRequestRepo(requests ...*entities.MaintenanceRequest) *stubRequestRepo {
	repo := &stubRequestRepo{requests: make(map[uuid.UUID]*entities.MaintenanceRequest)}
	for _, r := range requests {
		repo.requests[r.ID] = r
	}
	return repo
}

func (s *stubRequestRepo) GetRequests(ctx context.Context, filter types.Filter) ([]entities.MaintenanceRequest, uint64, error) {
	list := make([]entities.MaintenanceRequest, 0, len(s.requests))
	for _, r := range s.requests {
		list = append(list, *r)
	}
	return list, uint64(len(list)), nil
}

func (s *stubRequestRepo) FindRequest(ctx context.Context, id uuid.UUID) (*entities.MaintenanceRequest, error) {
	r, ok := s.requests[id]
	if !ok {
		return nil, errNotFoundForTest()
	}
	copied := *r
	return &copied, nil
}

func (s *stubRequestRepo) CreateRequest(ctx context.Context, createdBy uuid.UUID, payload dto.CreateRequestDTO) (*entities.MaintenanceRequest, error) {
	r := &entities.MaintenanceRequest{
		ID:            uuid.New(),
		RequestNumber: payload.RequestNumber,
		Subject:       payload.Subject,
		Type:          payload.Type,
		Status:        payload.Status,
		Priority:      payload.Priority,
		CreatedBy:     &createdBy,
	}
	s.requests[r.ID] = r
	return r, nil
}

func (s *stubRequestRepo) UpdateRequest(ctx context.Context, id uuid.UUID, payload dto.UpdateRequestDTO) error {
	return nil
}

func (s *stubRequestRepo) DeleteRequest(ctx context.Context, id uuid.UUID) error {
	delete(s.requests, id)
	return nil
}

func (s *stubRequestRepo) GetScheduled(ctx context.Context, from, to *time.Time) ([]entities.MaintenanceRequest, error) {
	return nil, nil
}

func (s *stubRequestRepo) GetAnalyticsRows(ctx context.Context) ([]entities.AnalyticsRow, error) {
	return s.analyticsRows, nil
}

func (s *stubRequestRepo) UpdateStatus(ctx context.Context, q repositories.Querier, id uuid.UUID, status string) error {
	if s.failOnUpdate != nil {
		return s.failOnUpdate
	}
	r, ok := s.requests[id]
	if !ok {
		return errNotFoundForTest()
	}
	r.Status = status
	s.statusWrites = append(s.statusWrites, status)
	return nil
}

func (s *stubRequestRepo) AssignTechnician(ctx context.Context, id, technicianID uuid.UUID) error {
	r, ok := s.requests[id]
	if !ok {
		return errNotFoundForTest()
	}
	r.AssignedTechnicianID = &technicianID
	r.Status = "In Progress"
	return nil
}

func (s *stubRequestRepo) Complete(ctx context.Context, id uuid.UUID, actualHours float64, notes null.String) error {
	r, ok := s.requests[id]
	if !ok {
		return errNotFoundForTest()
	}
	r.Status = "Repaired"
	r.ActualHours = null.Float64From(actualHours)
	return nil
}

// stubEquipmentRepo records status writes only; nothing else is exercised by
// the board flow.
type stubEquipmentRepo struct {
	statusWrites map[uuid.UUID]string
	failOnUpdate error
}

func newStubEquipmentRepo() *stubEquipmentRepo {
	return &stubEquipmentRepo{statusWrites: make(map[uuid.UUID]string)}
}

func (s *stubEquipmentRepo) GetEquipment(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	return nil, 0, nil
}

func (s *stubEquipmentRepo) FindEquipment(ctx context.Context, id uuid.UUID) (*entities.Equipment, error) {
	return nil, errNotFoundForTest()
}

func (s *stubEquipmentRepo) CreateEquipment(ctx context.Context, createdBy uuid.UUID, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	return nil, nil
}

func (s *stubEquipmentRepo) UpdateEquipment(ctx context.Context, id uuid.UUID, payload dto.UpdateEquipmentDTO) error {
	return nil
}

func (s *stubEquipmentRepo) DeleteEquipment(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (s *stubEquipmentRepo) UpdateStatus(ctx context.Context, q repositories.Querier, id uuid.UUID, status string) error {
	if s.failOnUpdate != nil {
		return s.failOnUpdate
	}
	s.statusWrites[id] = status
	return nil
}

func (s *stubEquipmentRepo) GetCategories(ctx context.Context) ([]entities.EquipmentCategory, error) {
	return nil, nil
}

func (s *stubEquipmentRepo) CreateCategory(ctx context.Context, payload dto.CreateEquipmentCategoryDTO) (*entities.EquipmentCategory, error) {
	return nil, nil
}

// stubTxRunner runs the function directly; commit/rollback behavior is the
// repository layer's concern, not the service's.
type stubTxRunner struct {
	calls int
}

func (s *stubTxRunner) Run(ctx context.Context, fn func(q repositories.Querier) error) error {
	s.calls++
	return fn(nil)
}

type stubFeed struct {
	changes []string
}

func (s *stubFeed) TableChanged(table, event string) {
	s.changes = append(s.changes, table+":"+event)
}

// stubTechnicianService satisfies the lazy-creation path.
type stubTechnicianService struct {
	byUser  map[uuid.UUID]*entities.Technician
	created int
}

func newStubTechnicianService() *stubTechnicianService {
	return &stubTechnicianService{byUser: make(map[uuid.UUID]*entities.Technician)}
}

func (s *stubTechnicianService) GetTechnicians(ctx context.Context) ([]entities.Technician, error) {
	return nil, nil
}

func (s *stubTechnicianService) GetTechniciansByTeam(ctx context.Context, teamID uuid.UUID) ([]entities.Technician, error) {
	return nil, nil
}

func (s *stubTechnicianService) UpdateTechnician(ctx context.Context, id uuid.UUID, payload dto.UpdateTechnicianDTO) error {
	return nil
}

func (s *stubTechnicianService) EnsureForUser(ctx context.Context, userID uuid.UUID) (*entities.Technician, error) {
	if t, ok := s.byUser[userID]; ok {
		return t, nil
	}
	t := &entities.Technician{ID: uuid.New(), UserID: &userID}
	s.byUser[userID] = t
	s.created++
	return t, nil
}
