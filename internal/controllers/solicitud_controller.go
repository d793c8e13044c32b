package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"soporte-tecnico/internal/entities"
	"soporte-tecnico/internal/services"
	"soporte-tecnico/internal/views"
	"soporte-tecnico/pkg/utils"
)

// SolicitudController - экран "Mis Solicitudes" текущего пользователя.
type SolicitudController struct {
	solicitudService services.SolicitudServiceInterface
	logger           *zap.Logger
}

func NewSolicitudController(solicitudService services.SolicitudServiceInterface, logger *zap.Logger) *SolicitudController {
	return &SolicitudController{solicitudService: solicitudService, logger: logger}
}

func (c *SolicitudController) GetMisSolicitudes(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	res, err := c.solicitudService.GetMisSolicitudes(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return respondCollection(ctx, c.logger, filter, res, res.Layout, "Mis Solicitudes", "Solicitudes del usuario obtenidas")
}

func (c *SolicitudController) Page(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	page := newPage(ctx, "Mis Solicitudes", "Seguimiento de las solicitudes que has levantado", filter)
	page.Filters = []views.FilterControl{
		views.NewFilterControl("estado", "Estado", "Todos los estados", filter.Get("estado"), labelsOf(entities.EstadoSolicitudValues())),
		views.NewFilterControl("tipo", "Tipo de problema", "Todos los tipos", filter.Get("tipo"), labelsOf(entities.TipoProblemaValues())),
	}

	res, err := c.solicitudService.GetMisSolicitudes(ctx.Request().Context(), filter)
	if err != nil {
		return renderError(ctx, c.logger, views.PageLista, page, err)
	}
	page.Summary = res.Summary.Text
	page.Layout = &res.Layout
	return ctx.Render(http.StatusOK, views.PageLista, page)
}
