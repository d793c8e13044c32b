package routes

import (
	"github.com/labstack/echo/v4"

	"soporte-tecnico/internal/controllers"
)

func runActionRouter(api *echo.Group, ctrl *controllers.ActionController) {
	api.POST("/acciones", ctrl.Dispatch)
	api.GET("/acciones", ctrl.GetRecent)
}
