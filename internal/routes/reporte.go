package routes

import (
	"github.com/labstack/echo/v4"

	"soporte-tecnico/internal/controllers"
)

func runReporteRouter(e *echo.Echo, api *echo.Group, ctrl *controllers.ReporteController) {
	api.GET("/reportes", ctrl.GetReportes)
	e.GET("/reportes", ctrl.Page)
}
