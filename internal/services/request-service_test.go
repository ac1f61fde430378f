package services

import (
	"context"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/pkg/constants"
	"gearguard/pkg/eventbus"
)

func newRequestFixture(requests ...*entities.MaintenanceRequest) (RequestServiceInterface, *stubRequestRepo, *stubTechnicianService) {
	requestRepo := newStubRequestRepo(requests...)
	technicians := newStubTechnicianService()
	logger := zap.NewNop()
	svc := NewRequestService(requestRepo, technicians, nil, eventbus.New(logger), &stubFeed{}, logger)
	return svc, requestRepo, technicians
}

func TestNewRequestNumberFormat(t *testing.T) {
	number := NewRequestNumber()
	assert.Regexp(t, regexp.MustCompile(`^REQ-\d{13,}$`), number)
}

func TestCreateRequestGeneratesNumber(t *testing.T) {
	svc, _, _ := newRequestFixture()

	request, err := svc.CreateRequest(context.Background(), uuid.New(), dto.CreateRequestDTO{
		Subject: "Spindle vibrates under load",
		Type:    constants.RequestTypeCorrective,
	})
	require.NoError(t, err)
	assert.Regexp(t, `^REQ-\d+$`, request.RequestNumber)
}

func TestAssignToMeCreatesTechnicianOnce(t *testing.T) {
	userID := uuid.New()
	first := &entities.MaintenanceRequest{ID: uuid.New(), Status: constants.RequestStatusNew}
	second := &entities.MaintenanceRequest{ID: uuid.New(), Status: constants.RequestStatusNew}
	svc, _, technicians := newRequestFixture(first, second)

	res, err := svc.AssignToMe(context.Background(), userID, first.ID)
	require.NoError(t, err)
	require.NotNil(t, res.AssignedTechnicianID)
	assert.Equal(t, constants.RequestStatusInProgress, res.Status)
	assert.Equal(t, 1, technicians.created)

	// second assignment reuses the existing technician record
	res2, err := svc.AssignToMe(context.Background(), userID, second.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, technicians.created)
	assert.Equal(t, *res.AssignedTechnicianID, *res2.AssignedTechnicianID)
}

func TestCompleteRecordsHours(t *testing.T) {
	request := &entities.MaintenanceRequest{ID: uuid.New(), Status: constants.RequestStatusInProgress}
	svc, _, _ := newRequestFixture(request)

	res, err := svc.Complete(context.Background(), uuid.New(), request.ID, dto.CompleteRequestDTO{ActualHours: 3.5})
	require.NoError(t, err)
	assert.Equal(t, constants.RequestStatusRepaired, res.Status)
	assert.Equal(t, 3.5, res.ActualHours.Float64)
}
