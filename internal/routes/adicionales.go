package routes

import (
	"github.com/labstack/echo/v4"

	"soporte-tecnico/internal/controllers"
)

func runAdicionalesRouter(e *echo.Echo, api *echo.Group, ctrl *controllers.CatalogoController) {
	api.GET("/adicionales/:catalogo", ctrl.GetCatalogo)
	e.GET("/adicionales", ctrl.Page)
}
