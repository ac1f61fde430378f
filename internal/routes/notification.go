package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runNotificationRouter(g *echo.Group, ctrl *controllers.NotificationController) {
	g.GET("/notifications", ctrl.GetNotifications)
	g.GET("/notifications/unread-count", ctrl.CountUnread)
	g.POST("/notifications", ctrl.CreateNotification)
	g.POST("/notifications/:id/read", ctrl.MarkRead)
	g.POST("/notifications/read-all", ctrl.MarkAllRead)
	g.DELETE("/notifications/:id", ctrl.DeleteNotification)
}
