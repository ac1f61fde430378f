package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

type BoardController struct {
	boardService services.BoardServiceInterface
	logger       *zap.Logger
}

func NewBoardController(boardService services.BoardServiceInterface, logger *zap.Logger) *BoardController {
	return &BoardController{boardService: boardService, logger: logger}
}

func (c *BoardController) GetBoard(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	res, err := c.boardService.GetBoard(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Board fetched", http.StatusOK)
}

func (c *BoardController) MoveRequest(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	userID, err := utils.GetUserIDFromCtx(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.MoveRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.boardService.MoveRequest(reqCtx, userID, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Request moved", http.StatusOK)
}
