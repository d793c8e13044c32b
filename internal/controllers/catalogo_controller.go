package controllers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"soporte-tecnico/internal/entities"
	"soporte-tecnico/internal/services"
	"soporte-tecnico/internal/views"
	"soporte-tecnico/pkg/utils"
)

// catalogTitle: Caser хранит состояние, поэтому создаётся на каждый вызов.
func catalogTitle(nombre string) string {
	return cases.Title(language.Spanish).String(nombre)
}

type CatalogoController struct {
	catalogoService services.CatalogoServiceInterface
	logger          *zap.Logger
}

func NewCatalogoController(catalogoService services.CatalogoServiceInterface, logger *zap.Logger) *CatalogoController {
	return &CatalogoController{catalogoService: catalogoService, logger: logger}
}

func (c *CatalogoController) GetCatalogo(ctx echo.Context) error {
	nombre := ctx.Param("catalogo")
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, err := c.catalogoService.GetCatalogo(ctx.Request().Context(), nombre, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return respondCollection(ctx, c.logger, filter, res, res.Layout, catalogTitle(nombre), "Catálogo obtenido")
}

// Page - раздел "Adicionales": вкладка выбирается ?catalogo=, по умолчанию departamentos.
func (c *CatalogoController) Page(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	nombre := strings.ToLower(ctx.QueryParam("catalogo"))
	if nombre == "" {
		nombre = services.CatalogoDepartamentos
	}

	page := newPage(ctx, "Adicionales", "Catálogos de configuración", filter)
	page.TabParam, page.Tab = "catalogo", nombre
	for _, cat := range services.Catalogos {
		page.Tabs = append(page.Tabs, views.NavItem{
			Label:  catalogTitle(cat),
			Href:   "/adicionales?catalogo=" + cat,
			Active: cat == nombre,
		})
	}
	page.Filters = []views.FilterControl{
		views.NewFilterControl("estado", "Estado", "Todos los estados", filter.Get("estado"), labelsOf(entities.EstadoRegistroValues())),
	}

	res, err := c.catalogoService.GetCatalogo(ctx.Request().Context(), nombre, filter)
	if err != nil {
		return renderError(ctx, c.logger, views.PageLista, page, err)
	}
	page.Summary = res.Summary.Text
	page.Layout = &res.Layout
	return ctx.Render(http.StatusOK, views.PageLista, page)
}
