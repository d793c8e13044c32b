package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"soporte-tecnico/internal/entities"
	"soporte-tecnico/pkg/utils"
)

const (
	HeaderUsuarioNombre = "X-Usuario-Nombre"
	HeaderUsuarioCorreo = "X-Usuario-Correo"
)

// InjectIdentity кладёт пользователя сессии в контекст запроса.
// Аутентификации нет: значения берутся из конфига, заголовки их переопределяют.
func InjectIdentity(defaults entities.Identity) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := defaults
			if v := strings.TrimSpace(c.Request().Header.Get(HeaderUsuarioNombre)); v != "" {
				identity.Nombre = v
			}
			if v := strings.TrimSpace(c.Request().Header.Get(HeaderUsuarioCorreo)); v != "" {
				identity.Correo = v
			}
			req := c.Request()
			c.SetRequest(req.WithContext(utils.WithIdentity(req.Context(), identity)))
			return next(c)
		}
	}
}
