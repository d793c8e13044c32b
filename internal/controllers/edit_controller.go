package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"soporte-tecnico/internal/dto"
	"soporte-tecnico/internal/entities"
	"soporte-tecnico/internal/services"
	"soporte-tecnico/pkg/utils"
)

// EditController - переходы сессии редактирования карточки пользователя.
// HTML-форма получает редирект обратно на карточку, JSON-клиент - состояние сессии.
type EditController struct {
	editService services.EditServiceInterface
	logger      *zap.Logger
}

func NewEditController(editService services.EditServiceInterface, logger *zap.Logger) *EditController {
	return &EditController{editService: editService, logger: logger}
}

func sessionPage(session *dto.EditSessionDTO) string {
	return "/usuarios/" + session.UsuarioID + "?sesion=" + session.ID
}

func (c *EditController) respond(ctx echo.Context, session *dto.EditSessionDTO, err error, message string) error {
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if isFormPost(ctx) {
		return ctx.Redirect(http.StatusSeeOther, sessionPage(session))
	}
	return utils.SuccessResponse(ctx, session, message, http.StatusOK)
}

func (c *EditController) GetEdicion(ctx echo.Context) error {
	session, err := c.editService.Get(ctx.Request().Context(), ctx.Param("sesion"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, session, "Sesión de edición", http.StatusOK)
}

func (c *EditController) Begin(ctx echo.Context) error {
	session, err := c.editService.Begin(ctx.Request().Context(), ctx.Param("sesion"))
	return c.respond(ctx, session, err, "Modo edición activado")
}

func (c *EditController) Change(ctx echo.Context) error {
	var payload dto.UpdateUsuarioDraftDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Cuerpo de la solicitud inválido"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	session, err := c.editService.Change(ctx.Request().Context(), ctx.Param("sesion"), payload.Campos)
	return c.respond(ctx, session, err, "Borrador actualizado")
}

func (c *EditController) Cancel(ctx echo.Context) error {
	session, err := c.editService.Cancel(ctx.Request().Context(), ctx.Param("sesion"))
	return c.respond(ctx, session, err, "Edición cancelada")
}

// Save принимает необязательные поля: форма карточки отправляет изменения вместе с "Guardar".
func (c *EditController) Save(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	sessionID := ctx.Param("sesion")

	campos, err := c.submittedFields(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if len(campos) > 0 {
		if _, err := c.editService.Change(reqCtx, sessionID, campos); err != nil {
			return utils.ErrorResponse(ctx, err, c.logger)
		}
	}

	session, err := c.editService.Save(reqCtx, sessionID)
	if err == nil {
		c.logger.Info("cambios de usuario enviados", zap.String("sesion", sessionID), zap.String("receipt", session.Receipt.ID))
	}
	return c.respond(ctx, session, err, "Cambios enviados")
}

func (c *EditController) ToggleBaja(ctx echo.Context) error {
	session, err := c.editService.ToggleBaja(ctx.Request().Context(), ctx.Param("sesion"))
	return c.respond(ctx, session, err, "Estado actualizado")
}

func (c *EditController) Close(ctx echo.Context) error {
	if err := c.editService.Close(ctx.Request().Context(), ctx.Param("sesion")); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Sesión de edición cerrada", http.StatusOK)
}

func (c *EditController) submittedFields(ctx echo.Context) (map[string]string, error) {
	if isFormPost(ctx) {
		params, err := ctx.FormParams()
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "Formulario inválido")
		}
		campos := make(map[string]string)
		for _, field := range entities.EditableFields {
			if vals, ok := params[field]; ok && len(vals) > 0 {
				campos[field] = vals[0]
			}
		}
		return campos, nil
	}

	if ctx.Request().ContentLength == 0 {
		return nil, nil
	}
	var payload dto.UpdateUsuarioDraftDTO
	if err := ctx.Bind(&payload); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Cuerpo de la solicitud inválido")
	}
	return payload.Campos, nil
}
