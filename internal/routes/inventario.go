package routes

import (
	"github.com/labstack/echo/v4"

	"soporte-tecnico/internal/controllers"
)

func runInventarioRouter(e *echo.Echo, api *echo.Group, ctrl *controllers.InventarioController) {
	api.GET("/inventarios/materiales", ctrl.GetMateriales)
	api.GET("/inventarios/equipos", ctrl.GetEquipos)

	e.GET("/inventarios", ctrl.Page)
}
