package routes

import (
	"github.com/labstack/echo/v4"

	"soporte-tecnico/internal/controllers"
)

func runSolicitudRouter(e *echo.Echo, api *echo.Group, ticketCtrl *controllers.TicketController, solicitudCtrl *controllers.SolicitudController) {
	api.GET("/solicitudes", ticketCtrl.GetTickets)
	api.GET("/solicitudes/:folio", ticketCtrl.FindSolicitud)
	api.GET("/mis-solicitudes", solicitudCtrl.GetMisSolicitudes)

	// "/" - главный экран, тот же список заявок.
	e.GET("/", ticketCtrl.ListPage)
	e.GET("/solicitudes", ticketCtrl.ListPage)
	e.GET("/solicitudes/:folio", ticketCtrl.DetailPage)
	e.GET("/mis-solicitudes", solicitudCtrl.Page)
}
