package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runWorkCenterRouter(g *echo.Group, ctrl *controllers.WorkCenterController) {
	g.GET("/work-centers", ctrl.GetWorkCenters)
	g.GET("/work-centers/:id", ctrl.FindWorkCenter)
	g.POST("/work-centers", ctrl.CreateWorkCenter)
	g.PUT("/work-centers/:id", ctrl.UpdateWorkCenter)
	g.DELETE("/work-centers/:id", ctrl.DeleteWorkCenter)
}
