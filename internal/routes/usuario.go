package routes

import (
	"github.com/labstack/echo/v4"

	"soporte-tecnico/internal/controllers"
)

func runUsuarioRouter(e *echo.Echo, api *echo.Group, usuarioCtrl *controllers.UsuarioController, editCtrl *controllers.EditController) {
	api.GET("/usuarios", usuarioCtrl.GetUsuarios)
	api.POST("/usuarios", usuarioCtrl.RegisterUsuario)
	api.GET("/usuarios/:id", usuarioCtrl.FindUsuario)
	api.POST("/usuarios/:id/ediciones", usuarioCtrl.OpenEdicion)

	ediciones := api.Group("/ediciones/:sesion")
	ediciones.GET("", editCtrl.GetEdicion)
	ediciones.PATCH("", editCtrl.Change)
	ediciones.DELETE("", editCtrl.Close)
	ediciones.POST("/editar", editCtrl.Begin)
	ediciones.POST("/cancelar", editCtrl.Cancel)
	ediciones.POST("/guardar", editCtrl.Save)
	ediciones.POST("/baja", editCtrl.ToggleBaja)

	e.GET("/usuarios", usuarioCtrl.ListPage)
	e.GET("/usuarios/registrar", usuarioCtrl.RegisterPage)
	e.GET("/usuarios/:id", usuarioCtrl.DetailPage)
}
