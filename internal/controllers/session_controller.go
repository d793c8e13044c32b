package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"soporte-tecnico/internal/dto"
	"soporte-tecnico/internal/views"
	"soporte-tecnico/pkg/utils"
)

// SessionController - шапка и боковое меню для клиентов JSON-API.
type SessionController struct {
	logger *zap.Logger
}

func NewSessionController(logger *zap.Logger) *SessionController {
	return &SessionController{logger: logger}
}

func (c *SessionController) GetSesion(ctx echo.Context) error {
	identity, err := utils.GetIdentityFromContext(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res := dto.SessionDTO{Nombre: identity.Nombre, Correo: identity.Correo, Iniciales: identity.Initials()}
	return utils.SuccessResponse(ctx, res, "Sesión actual", http.StatusOK)
}

// GetNavegacion: ?path=/usuarios подсвечивает раздел этого пути.
func (c *SessionController) GetNavegacion(ctx echo.Context) error {
	path := ctx.QueryParam("path")
	if path == "" {
		path = "/"
	}
	return utils.SuccessResponse(ctx, views.Navigation(path), "Menú de navegación", http.StatusOK)
}
