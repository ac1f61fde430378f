package controllers

import (
	"net/http"

	gorilla "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"
	"gearguard/pkg/websocket"
)

// WebsocketController upgrades authenticated clients onto the change feed.
// Browsers cannot set headers on the upgrade request, so the access token
// travels in the token query param instead.
type WebsocketController struct {
	hub        *websocket.Hub
	jwtService service.JWTService
	upgrader   gorilla.Upgrader
	logger     *zap.Logger
}

func NewWebsocketController(hub *websocket.Hub, jwtService service.JWTService, allowOrigins []string, logger *zap.Logger) *WebsocketController {
	return &WebsocketController{
		hub:        hub,
		jwtService: jwtService,
		upgrader: gorilla.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				for _, allowed := range allowOrigins {
					if allowed == "*" || allowed == origin {
						return true
					}
				}
				return false
			},
		},
		logger: logger,
	}
}

func (c *WebsocketController) Serve(ctx echo.Context) error {
	token := ctx.QueryParam("token")
	if token == "" {
		return utils.ErrorResponse(ctx, apperrors.ErrEmptyAuthHeader, c.logger)
	}

	claims, err := c.jwtService.ValidateToken(token)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if claims.IsRefreshToken {
		return utils.ErrorResponse(ctx, apperrors.ErrTokenIsNotAccess, c.logger)
	}

	conn, err := c.upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		c.logger.Warn("websocket upgrade failed", zap.Error(err))
		return err
	}

	client := websocket.NewClient(c.hub, conn, claims.UserID)
	c.hub.Register <- client

	go client.WritePump()
	go client.ReadPump()
	return nil
}
