package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runAuthRouter(public *echo.Group, secure *echo.Group, ctrl *controllers.AuthController) {
	public.POST("/auth/sign-up", ctrl.SignUp)
	public.POST("/auth/sign-in", ctrl.SignIn)
	public.POST("/auth/refresh", ctrl.Refresh)

	secure.POST("/auth/sign-out", ctrl.SignOut)
	secure.GET("/profile", ctrl.GetProfile)
	secure.PUT("/profile", ctrl.UpdateProfile)
	secure.POST("/profile/avatar", ctrl.UploadAvatar)
}
