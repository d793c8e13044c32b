package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"soporte-tecnico/internal/dto"
	"soporte-tecnico/internal/entities"
	"soporte-tecnico/internal/services"
	"soporte-tecnico/internal/views"
	apperrors "soporte-tecnico/pkg/errors"
	"soporte-tecnico/pkg/types"
	"soporte-tecnico/pkg/utils"
)

type UsuarioController struct {
	usuarioService services.UsuarioServiceInterface
	editService    services.EditServiceInterface
	logger         *zap.Logger
}

func NewUsuarioController(
	usuarioService services.UsuarioServiceInterface,
	editService services.EditServiceInterface,
	logger *zap.Logger,
) *UsuarioController {
	return &UsuarioController{usuarioService: usuarioService, editService: editService, logger: logger}
}

// usuarioNotFound - 404 с идентификатором, который показывает экран карточки.
func usuarioNotFound(id string, err error) error {
	if errors.Is(err, apperrors.ErrUserNotFound) {
		return apperrors.NewHttpError(http.StatusNotFound, fmt.Sprintf("Usuario no encontrado (ID: %s)", id), nil, nil)
	}
	return err
}

func (c *UsuarioController) GetUsuarios(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	res, err := c.usuarioService.GetUsuarios(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return respondCollection(ctx, c.logger, filter, res, res.Layout, "Usuarios", "Usuarios obtenidos")
}

func (c *UsuarioController) FindUsuario(ctx echo.Context) error {
	id := ctx.Param("id")
	res, err := c.usuarioService.FindUsuario(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, usuarioNotFound(id, err), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Usuario encontrado", http.StatusOK)
}

// RegisterUsuario принимает форму регистрации; учётная запись не создаётся, возвращается квитанция.
func (c *UsuarioController) RegisterUsuario(ctx echo.Context) error {
	var form dto.RegisterUsuarioDTO
	if err := ctx.Bind(&form); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Cuerpo de la solicitud inválido"), c.logger)
	}
	if err := ctx.Validate(&form); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	receipt, err := c.usuarioService.RegisterUsuario(ctx.Request().Context(), form)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if isFormPost(ctx) {
		return ctx.Redirect(http.StatusSeeOther, "/usuarios")
	}
	return utils.SuccessResponse(ctx, receipt, "Registro enviado", http.StatusAccepted)
}

// OpenEdicion открывает сессию редактирования карточки в режиме просмотра.
func (c *UsuarioController) OpenEdicion(ctx echo.Context) error {
	id := ctx.Param("id")
	session, err := c.editService.Open(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, usuarioNotFound(id, err), c.logger)
	}
	if isFormPost(ctx) {
		return ctx.Redirect(http.StatusSeeOther, sessionPage(session))
	}
	return utils.SuccessResponse(ctx, session, "Sesión de edición abierta", http.StatusCreated)
}

func usuarioFilters(filter types.Filter) []views.FilterControl {
	return []views.FilterControl{
		views.NewFilterControl("estado", "Estado", "Todos los estados", filter.Get("estado"), labelsOf(entities.EstadoUsuarioValues())),
		views.NewFilterControl("tipo", "Tipo de usuario", "Todos los tipos", filter.Get("tipo"), labelsOf(entities.TipoUsuarioValues())),
		views.NewFilterControl("departamento", "Departamento", "Todos los departamentos", filter.Get("departamento"), entities.DepartamentoLabels()),
	}
}

func (c *UsuarioController) ListPage(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	page := newPage(ctx, "Usuarios", "Administración de usuarios del sistema", filter)
	page.Filters = usuarioFilters(filter)

	res, err := c.usuarioService.GetUsuarios(ctx.Request().Context(), filter)
	if err != nil {
		return renderError(ctx, c.logger, views.PageLista, page, err)
	}
	page.Summary = res.Summary.Text
	page.Layout = &res.Layout
	return ctx.Render(http.StatusOK, views.PageLista, page)
}

// DetailPage: ?sesion=<id> показывает рабочую копию сессии вместо исходной записи.
// Чужая или истёкшая сессия игнорируется.
func (c *UsuarioController) DetailPage(ctx echo.Context) error {
	id := ctx.Param("id")
	reqCtx := ctx.Request().Context()
	page := newPage(ctx, "Detalle de usuario", "Información de la cuenta", types.Filter{})

	usuario, err := c.usuarioService.FindUsuario(reqCtx, id)
	if err != nil {
		return renderError(ctx, c.logger, views.PageUsuarioDetalle, page, usuarioNotFound(id, err))
	}

	body := dto.UsuarioDetalleDTO{Usuario: *usuario}
	if sesion := ctx.QueryParam("sesion"); sesion != "" {
		session, err := c.editService.Get(reqCtx, sesion)
		if err == nil && session.UsuarioID == id {
			body.Sesion = session
		} else {
			c.logger.Debug("sesión de edición ignorada", zap.String("sesion", sesion), zap.Error(err))
		}
	}
	page.Body = body
	return ctx.Render(http.StatusOK, views.PageUsuarioDetalle, page)
}

func (c *UsuarioController) RegisterPage(ctx echo.Context) error {
	page := newPage(ctx, "Registrar usuario", "Alta de una nueva cuenta", types.Filter{})
	page.Filters = []views.FilterControl{
		views.NewFilterControl("rol", "Rol", "", string(entities.RolUsuarioBase), []string{"Administrador", "Editor", "Usuario"}),
		views.NewFilterControl("estado", "Estado", "", string(entities.EstadoUsuarioActivo), []string{"Activo", "Inactivo"}),
	}
	return ctx.Render(http.StatusOK, views.PageUsuarioRegistrar, page)
}
