package routes

import (
	"github.com/labstack/echo/v4"

	"soporte-tecnico/internal/controllers"
)

func runSessionRouter(api *echo.Group, ctrl *controllers.SessionController) {
	api.GET("/sesion", ctrl.GetSesion)
	api.GET("/navegacion", ctrl.GetNavegacion)
}
