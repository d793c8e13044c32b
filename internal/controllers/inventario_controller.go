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

const (
	tabMateriales = "materiales"
	tabEquipos    = "equipos"
)

type InventarioController struct {
	inventarioService services.InventarioServiceInterface
	logger            *zap.Logger
}

func NewInventarioController(inventarioService services.InventarioServiceInterface, logger *zap.Logger) *InventarioController {
	return &InventarioController{inventarioService: inventarioService, logger: logger}
}

func (c *InventarioController) GetMateriales(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	res, err := c.inventarioService.GetMateriales(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return respondCollection(ctx, c.logger, filter, res, res.Layout, "Materiales", "Materiales obtenidos")
}

func (c *InventarioController) GetEquipos(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	res, err := c.inventarioService.GetEquipos(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return respondCollection(ctx, c.logger, filter, res, res.Layout, "Equipos", "Equipos obtenidos")
}

// Page - экран /inventarios с вкладками ?tab=materiales|equipos.
func (c *InventarioController) Page(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	tab := ctx.QueryParam("tab")
	if tab != tabEquipos {
		tab = tabMateriales
	}

	page := newPage(ctx, "Inventarios", "Control de materiales y equipos", filter)
	page.TabParam, page.Tab = "tab", tab
	page.Tabs = []views.NavItem{
		{Label: "Materiales", Href: "/inventarios?tab=" + tabMateriales, Active: tab == tabMateriales},
		{Label: "Equipos", Href: "/inventarios?tab=" + tabEquipos, Active: tab == tabEquipos},
	}

	if tab == tabEquipos {
		return c.equiposPage(ctx, filter, page)
	}

	page.Filters = []views.FilterControl{
		views.NewFilterControl("unidad", "Unidad", "Todas las unidades", filter.Get("unidad"), labelsOf(entities.UnidadMedidaValues())),
		views.NewFilterControl("stock", "Stock", "Todo el stock", filter.Get("stock"), []string{"Bajo", "Normal"}),
	}
	res, err := c.inventarioService.GetMateriales(ctx.Request().Context(), filter)
	if err != nil {
		return renderError(ctx, c.logger, views.PageLista, page, err)
	}
	page.Summary = res.Summary.Text
	page.Layout = &res.Layout
	return ctx.Render(http.StatusOK, views.PageLista, page)
}

func (c *InventarioController) equiposPage(ctx echo.Context, filter types.Filter, page views.Page) error {
	reqCtx := ctx.Request().Context()
	marcas, err := c.inventarioService.GetMarcas(reqCtx)
	if err != nil {
		return renderError(ctx, c.logger, views.PageLista, page, err)
	}
	page.Filters = []views.FilterControl{
		views.NewFilterControl("tipo", "Tipo", "Todos los tipos", filter.Get("tipo"), labelsOf(entities.TipoEquipoValues())),
		views.NewFilterControl("estado", "Estado", "Todos los estados", filter.Get("estado"), labelsOf(entities.EstadoEquipoValues())),
		views.NewFilterControl("marca", "Marca", "Todas las marcas", filter.Get("marca"), marcas),
	}

	res, err := c.inventarioService.GetEquipos(reqCtx, filter)
	if err != nil {
		return renderError(ctx, c.logger, views.PageLista, page, err)
	}
	page.Summary = res.Summary.Text
	page.Layout = &res.Layout
	return ctx.Render(http.StatusOK, views.PageLista, page)
}
