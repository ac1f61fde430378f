package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "gearguard/pkg/errors"
)

// parseIDParam reads a UUID path parameter, wrapping bad input as a 400.
func parseIDParam(ctx echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		return uuid.Nil, apperrors.NewHttpError(
			http.StatusBadRequest,
			"invalid id",
			err,
			map[string]interface{}{"param": ctx.Param(name)},
		)
	}
	return id, nil
}
