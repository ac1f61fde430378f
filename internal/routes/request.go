package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runRequestRouter(g *echo.Group, ctrl *controllers.RequestController) {
	g.GET("/requests", ctrl.GetRequests)
	g.GET("/requests/scheduled", ctrl.GetScheduled)
	g.GET("/requests/:id", ctrl.FindRequest)
	g.POST("/requests", ctrl.CreateRequest)
	g.PUT("/requests/:id", ctrl.UpdateRequest)
	g.DELETE("/requests/:id", ctrl.DeleteRequest)
	g.POST("/requests/:id/assign-to-me", ctrl.AssignToMe)
	g.POST("/requests/:id/complete", ctrl.CompleteRequest)
}
