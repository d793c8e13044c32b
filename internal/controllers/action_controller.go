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

// ReceiptJournal - последние принятые намерения; реализуется слушателем шины.
type ReceiptJournal interface {
	Recent() []entities.Receipt
}

type ActionController struct {
	actionService services.ActionServiceInterface
	journal       ReceiptJournal
	logger        *zap.Logger
}

func NewActionController(actionService services.ActionServiceInterface, journal ReceiptJournal, logger *zap.Logger) *ActionController {
	return &ActionController{actionService: actionService, journal: journal, logger: logger}
}

// Dispatch - кнопки ver/editar/eliminar таблиц и карточек.
func (c *ActionController) Dispatch(ctx echo.Context) error {
	var action dto.ActionDTO
	if err := ctx.Bind(&action); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Cuerpo de la solicitud inválido"), c.logger)
	}
	if err := ctx.Validate(&action); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.actionService.Dispatch(ctx.Request().Context(), action)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if res.Redirect != "" && isFormPost(ctx) {
		return ctx.Redirect(http.StatusSeeOther, res.Redirect)
	}
	if res.Receipt != nil {
		return utils.SuccessResponse(ctx, res, "Acción enviada", http.StatusAccepted)
	}
	return utils.SuccessResponse(ctx, res, "Acción resuelta", http.StatusOK)
}

func (c *ActionController) GetRecent(ctx echo.Context) error {
	return utils.SuccessResponse(ctx, c.journal.Recent(), "Acciones recientes", http.StatusOK)
}
