package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runBoardRouter(g *echo.Group, ctrl *controllers.BoardController) {
	g.GET("/board", ctrl.GetBoard)
	g.POST("/board/move", ctrl.MoveRequest)
}
