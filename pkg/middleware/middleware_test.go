package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"soporte-tecnico/internal/entities"
	"soporte-tecnico/pkg/utils"
)

func TestInjectIdentity(t *testing.T) {
	defaults := entities.Identity{Nombre: "Juan Rodriguez", Correo: "admin@helpdesk.com"}

	var seen entities.Identity
	handler := InjectIdentity(defaults)(func(c echo.Context) error {
		var err error
		seen, err = utils.GetIdentityFromContext(c.Request().Context())
		return err
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, handler(e.NewContext(req, httptest.NewRecorder())))
	assert.Equal(t, defaults, seen)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderUsuarioCorreo, "ana.torres@empresa.com")
	require.NoError(t, handler(e.NewContext(req, httptest.NewRecorder())))
	assert.Equal(t, "Juan Rodriguez", seen.Nombre)
	assert.Equal(t, "ana.torres@empresa.com", seen.Correo)
}

func TestInjectLogger_SetsRequestID(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	handler := InjectLogger(zap.NewNop())(func(c echo.Context) error {
		assert.NotNil(t, LoggerFrom(c, nil))
		return nil
	})
	require.NoError(t, handler(c))
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
}
