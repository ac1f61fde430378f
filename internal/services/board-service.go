package services

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/events"
	"gearguard/internal/repositories"
	"gearguard/pkg/constants"
	"gearguard/pkg/eventbus"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"
)

type BoardServiceInterface interface {
	GetBoard(ctx context.Context) (*dto.BoardDTO, error)
	MoveRequest(ctx context.Context, userID uuid.UUID, payload dto.MoveRequestDTO) (*dto.MoveResultDTO, error)
}

type BoardService struct {
	requests  repositories.RequestRepositoryInterface
	equipment repositories.EquipmentRepositoryInterface
	tx        repositories.TxRunner
	cache     repositories.CacheRepositoryInterface
	bus       *eventbus.Bus
	feed      ChangeFeedInterface
	logger    *zap.Logger
}

func NewBoardService(
	requests repositories.RequestRepositoryInterface,
	equipment repositories.EquipmentRepositoryInterface,
	tx repositories.TxRunner,
	cache repositories.CacheRepositoryInterface,
	bus *eventbus.Bus,
	feed ChangeFeedInterface,
	logger *zap.Logger,
) BoardServiceInterface {
	return &BoardService{
		requests:  requests,
		equipment: equipment,
		tx:        tx,
		cache:     cache,
		bus:       bus,
		feed:      feed,
		logger:    logger,
	}
}

// GetBoard returns every column in display order, including empty ones.
// Cancelled requests never appear on the board.
func (s *BoardService) GetBoard(ctx context.Context) (*dto.BoardDTO, error) {
	list, _, err := s.requests.GetRequests(ctx, types.Filter{})
	if err != nil {
		return nil, err
	}

	byStatus := make(map[string][]entities.MaintenanceRequest, len(constants.BoardColumns))
	for _, request := range list {
		if constants.IsBoardColumn(request.Status) {
			byStatus[request.Status] = append(byStatus[request.Status], request)
		}
	}

	board := &dto.BoardDTO{Columns: make([]dto.BoardColumnDTO, 0, len(constants.BoardColumns))}
	for _, status := range constants.BoardColumns {
		requests := byStatus[status]
		if requests == nil {
			requests = make([]entities.MaintenanceRequest, 0)
		}
		board.Columns = append(board.Columns, dto.BoardColumnDTO{Status: status, Requests: requests})
	}
	return board, nil
}

// MoveRequest changes a request's column. Moving into Scrap also retires the
// linked equipment; both writes commit or roll back together so the board
// and the inventory cannot disagree.
func (s *BoardService) MoveRequest(ctx context.Context, userID uuid.UUID, payload dto.MoveRequestDTO) (*dto.MoveResultDTO, error) {
	if !constants.IsBoardColumn(payload.ToStatus) {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "unknown board column", apperrors.ErrBadRequest, payload.ToStatus)
	}

	request, err := s.requests.FindRequest(ctx, payload.RequestID)
	if err != nil {
		return nil, err
	}

	fromStatus := request.Status
	if fromStatus == payload.ToStatus {
		return &dto.MoveResultDTO{
			Request:    request,
			FromStatus: fromStatus,
			ToStatus:   payload.ToStatus,
		}, nil
	}

	scrapEquipment := payload.ToStatus == constants.RequestStatusScrap && request.EquipmentID != nil

	err = s.tx.Run(ctx, func(q repositories.Querier) error {
		if err := s.requests.UpdateStatus(ctx, q, payload.RequestID, payload.ToStatus); err != nil {
			return err
		}
		if scrapEquipment {
			return s.equipment.UpdateStatus(ctx, q, *request.EquipmentID, constants.EquipmentStatusScrap)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	moved, err := s.requests.FindRequest(ctx, payload.RequestID)
	if err != nil {
		return nil, err
	}

	s.feed.TableChanged("maintenance_requests", "UPDATE")
	if scrapEquipment {
		s.feed.TableChanged("equipment", "UPDATE")
	}
	if s.cache != nil {
		if err := s.cache.InvalidateAnalytics(ctx); err != nil {
			s.logger.Warn("failed to invalidate analytics cache", zap.Error(err))
		}
	}

	s.bus.Publish(ctx, events.RequestMoved{
		Request:           moved,
		FromStatus:        fromStatus,
		ToStatus:          payload.ToStatus,
		EquipmentScrapped: scrapEquipment,
		MovedBy:           userID,
	})

	return &dto.MoveResultDTO{
		Request:           moved,
		FromStatus:        fromStatus,
		ToStatus:          payload.ToStatus,
		EquipmentScrapped: scrapEquipment,
	}, nil
}
