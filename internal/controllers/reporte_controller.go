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

type ReporteController struct {
	reporteService services.ReporteServiceInterface
	logger         *zap.Logger
}

func NewReporteController(reporteService services.ReporteServiceInterface, logger *zap.Logger) *ReporteController {
	return &ReporteController{reporteService: reporteService, logger: logger}
}

// GetReportes: раскрытые карточки передаются списком ?abiertos=RPT-001,RPT-003.
func (c *ReporteController) GetReportes(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	feed := views.ParseAbiertos(ctx.QueryParam("abiertos"))

	res, err := c.reporteService.GetReportes(ctx.Request().Context(), filter, feed)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Reportes obtenidos", http.StatusOK)
}

func (c *ReporteController) Page(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	page := newPage(ctx, "Reportes", "Reportes de atención técnica", filter)

	tecnicos, err := c.reporteService.GetTecnicos(reqCtx)
	if err != nil {
		return renderError(ctx, c.logger, views.PageReportes, page, err)
	}
	page.Filters = []views.FilterControl{
		views.NewFilterControl("estado", "Estado", "Todos los estados", filter.Get("estado"), labelsOf(entities.EstadoReporteValues())),
		views.NewFilterControl("departamento", "Departamento", "Todos los departamentos", filter.Get("departamento"), entities.DepartamentoLabels()),
		views.NewFilterControl("tecnico", "Técnico", "Todos los técnicos", filter.Get("tecnico"), tecnicos),
	}

	res, err := c.reporteService.GetReportes(reqCtx, filter, views.ParseAbiertos(ctx.QueryParam("abiertos")))
	if err != nil {
		return renderError(ctx, c.logger, views.PageReportes, page, err)
	}
	page.Summary = res.Summary.Text
	page.Feed = res.Cards
	return ctx.Render(http.StatusOK, views.PageReportes, page)
}
