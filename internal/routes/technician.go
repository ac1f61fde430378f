package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runTechnicianRouter(g *echo.Group, ctrl *controllers.TechnicianController) {
	g.GET("/technicians", ctrl.GetTechnicians)
	g.PUT("/technicians/:id", ctrl.UpdateTechnician)
}
