package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/events"
	"gearguard/pkg/constants"
	"gearguard/pkg/eventbus"
)

func newBoardFixture(requests ...*entities.MaintenanceRequest) (*BoardService, *stubRequestRepo, *stubEquipmentRepo, *stubTxRunner, *stubFeed) {
	requestRepo := newStubRequestRepo(requests...)
	equipmentRepo := newStubEquipmentRepo()
	tx := &stubTxRunner{}
	feed := &stubFeed{}
	logger := zap.NewNop()
	svc := NewBoardService(requestRepo, equipmentRepo, tx, nil, eventbus.New(logger), feed, logger).(*BoardService)
	return svc, requestRepo, equipmentRepo, tx, feed
}

func TestMoveRequestScrapCascade(t *testing.T) {
	equipmentID := uuid.New()
	createdBy := uuid.New()
	request := &entities.MaintenanceRequest{
		ID:          uuid.New(),
		Status:      constants.RequestStatusInProgress,
		EquipmentID: &equipmentID,
		CreatedBy:   &createdBy,
	}
	svc, requestRepo, equipmentRepo, tx, _ := newBoardFixture(request)

	res, err := svc.MoveRequest(context.Background(), createdBy, dto.MoveRequestDTO{
		RequestID: request.ID,
		ToStatus:  constants.RequestStatusScrap,
	})
	require.NoError(t, err)

	assert.Equal(t, constants.RequestStatusInProgress, res.FromStatus)
	assert.Equal(t, constants.RequestStatusScrap, res.ToStatus)
	assert.True(t, res.EquipmentScrapped)
	assert.Equal(t, constants.RequestStatusScrap, res.Request.Status)

	// both writes ran inside one transaction
	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, []string{constants.RequestStatusScrap}, requestRepo.statusWrites)
	assert.Equal(t, constants.EquipmentStatusScrap, equipmentRepo.statusWrites[equipmentID])
}

func TestMoveRequestScrapWithoutEquipment(t *testing.T) {
	request := &entities.MaintenanceRequest{
		ID:     uuid.New(),
		Status: constants.RequestStatusNew,
	}
	svc, _, equipmentRepo, _, _ := newBoardFixture(request)

	res, err := svc.MoveRequest(context.Background(), uuid.New(), dto.MoveRequestDTO{
		RequestID: request.ID,
		ToStatus:  constants.RequestStatusScrap,
	})
	require.NoError(t, err)

	assert.False(t, res.EquipmentScrapped)
	assert.Empty(t, equipmentRepo.statusWrites)
}

func TestMoveRequestOrdinaryMoveLeavesEquipmentAlone(t *testing.T) {
	equipmentID := uuid.New()
	request := &entities.MaintenanceRequest{
		ID:          uuid.New(),
		Status:      constants.RequestStatusNew,
		EquipmentID: &equipmentID,
	}
	svc, requestRepo, equipmentRepo, _, feed := newBoardFixture(request)

	res, err := svc.MoveRequest(context.Background(), uuid.New(), dto.MoveRequestDTO{
		RequestID: request.ID,
		ToStatus:  constants.RequestStatusInProgress,
	})
	require.NoError(t, err)

	assert.False(t, res.EquipmentScrapped)
	assert.Equal(t, []string{constants.RequestStatusInProgress}, requestRepo.statusWrites)
	assert.Empty(t, equipmentRepo.statusWrites)
	assert.Contains(t, feed.changes, "maintenance_requests:UPDATE")
	assert.NotContains(t, feed.changes, "equipment:UPDATE")
}

func TestMoveRequestSameColumnIsNoop(t *testing.T) {
	request := &entities.MaintenanceRequest{
		ID:     uuid.New(),
		Status: constants.RequestStatusNew,
	}
	svc, requestRepo, _, tx, feed := newBoardFixture(request)

	res, err := svc.MoveRequest(context.Background(), uuid.New(), dto.MoveRequestDTO{
		RequestID: request.ID,
		ToStatus:  constants.RequestStatusNew,
	})
	require.NoError(t, err)

	assert.Equal(t, constants.RequestStatusNew, res.FromStatus)
	assert.Zero(t, tx.calls)
	assert.Empty(t, requestRepo.statusWrites)
	assert.Empty(t, feed.changes)
}

func TestMoveRequestRejectsUnknownColumn(t *testing.T) {
	svc, _, _, tx, _ := newBoardFixture()

	_, err := svc.MoveRequest(context.Background(), uuid.New(), dto.MoveRequestDTO{
		RequestID: uuid.New(),
		ToStatus:  constants.RequestStatusCancelled,
	})
	require.Error(t, err)
	assert.Zero(t, tx.calls)
}

func TestMoveRequestPropagatesWriteFailure(t *testing.T) {
	request := &entities.MaintenanceRequest{
		ID:     uuid.New(),
		Status: constants.RequestStatusNew,
	}
	requestRepo := newStubRequestRepo(request)
	requestRepo.failOnUpdate = errors.New("write failed")
	logger := zap.NewNop()
	svc := NewBoardService(requestRepo, newStubEquipmentRepo(), &stubTxRunner{}, nil, eventbus.New(logger), &stubFeed{}, logger)

	_, err := svc.MoveRequest(context.Background(), uuid.New(), dto.MoveRequestDTO{
		RequestID: request.ID,
		ToStatus:  constants.RequestStatusInProgress,
	})
	require.Error(t, err)
	assert.Equal(t, constants.RequestStatusNew, request.Status)
}

func TestMoveRequestScrapCascadeFailsWithEquipmentWrite(t *testing.T) {
	equipmentID := uuid.New()
	request := &entities.MaintenanceRequest{
		ID:          uuid.New(),
		Status:      constants.RequestStatusInProgress,
		EquipmentID: &equipmentID,
	}
	requestRepo := newStubRequestRepo(request)
	equipmentRepo := newStubEquipmentRepo()
	equipmentRepo.failOnUpdate = errors.New("equipment write failed")

	logger := zap.NewNop()
	bus := eventbus.New(logger)
	moved := make(chan eventbus.Event, 1)
	bus.Subscribe(events.RequestMovedName, func(ctx context.Context, event eventbus.Event) error {
		moved <- event
		return nil
	})
	feed := &stubFeed{}
	svc := NewBoardService(requestRepo, equipmentRepo, &stubTxRunner{}, nil, bus, feed, logger)

	_, err := svc.MoveRequest(context.Background(), uuid.New(), dto.MoveRequestDTO{
		RequestID: request.ID,
		ToStatus:  constants.RequestStatusScrap,
	})
	require.Error(t, err)

	// a failed equipment write must leave no trace of the move
	assert.Empty(t, equipmentRepo.statusWrites)
	assert.Empty(t, feed.changes)
	select {
	case <-moved:
		t.Fatal("move event published for a rolled-back move")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestGetBoardAlwaysHasAllColumns(t *testing.T) {
	svc, _, _, _, _ := newBoardFixture(
		&entities.MaintenanceRequest{ID: uuid.New(), Status: constants.RequestStatusNew},
		&entities.MaintenanceRequest{ID: uuid.New(), Status: constants.RequestStatusCancelled},
	)

	board, err := svc.GetBoard(context.Background())
	require.NoError(t, err)
	require.Len(t, board.Columns, len(constants.BoardColumns))

	for i, column := range board.Columns {
		assert.Equal(t, constants.BoardColumns[i], column.Status)
		assert.NotNil(t, column.Requests)
	}
	// cancelled requests stay off the board
	total := 0
	for _, column := range board.Columns {
		total += len(column.Requests)
	}
	assert.Equal(t, 1, total)
}
