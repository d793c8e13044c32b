package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"soporte-tecnico/internal/entities"
	"soporte-tecnico/internal/services"
	"soporte-tecnico/internal/views"
	"soporte-tecnico/pkg/types"
	"soporte-tecnico/pkg/utils"
)

type TicketController struct {
	ticketService services.TicketServiceInterface
	logger        *zap.Logger
}

func NewTicketController(ticketService services.TicketServiceInterface, logger *zap.Logger) *TicketController {
	return &TicketController{ticketService: ticketService, logger: logger}
}

func ticketFilters(filter types.Filter) []views.FilterControl {
	return []views.FilterControl{
		views.NewFilterControl("estado", "Estado", "Todos los estados", filter.Get("estado"), labelsOf(entities.EstadoTicketValues())),
		views.NewFilterControl("prioridad", "Prioridad", "Todas las prioridades", filter.Get("prioridad"), labelsOf(entities.PrioridadValues())),
		views.NewFilterControl("departamento", "Departamento", "Todos los departamentos", filter.Get("departamento"), entities.DepartamentoLabels()),
	}
}

func (c *TicketController) GetTickets(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	c.logger.Debug("listado de solicitudes", zap.Any("filter", filter))

	res, err := c.ticketService.GetTickets(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return respondCollection(ctx, c.logger, filter, res, res.Layout, "Solicitudes", "Solicitudes obtenidas")
}

func (c *TicketController) FindSolicitud(ctx echo.Context) error {
	res, err := c.ticketService.FindSolicitud(ctx.Request().Context(), ctx.Param("folio"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Solicitud encontrada", http.StatusOK)
}

func (c *TicketController) ListPage(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	page := newPage(ctx, "Solicitudes", "Gestión de solicitudes de soporte técnico", filter)
	page.Filters = ticketFilters(filter)

	res, err := c.ticketService.GetTickets(ctx.Request().Context(), filter)
	if err != nil {
		return renderError(ctx, c.logger, views.PageLista, page, err)
	}
	page.Summary = res.Summary.Text
	page.Layout = &res.Layout
	return ctx.Render(http.StatusOK, views.PageLista, page)
}

func (c *TicketController) DetailPage(ctx echo.Context) error {
	folio := ctx.Param("folio")
	page := newPage(ctx, "Solicitud "+folio, "Detalle de la solicitud", types.Filter{})

	res, err := c.ticketService.FindSolicitud(ctx.Request().Context(), folio)
	if err != nil {
		return renderError(ctx, c.logger, views.PageSolicitudDetalle, page, err)
	}
	page.Body = res
	return ctx.Render(http.StatusOK, views.PageSolicitudDetalle, page)
}
