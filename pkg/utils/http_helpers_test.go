package utils

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "soporte-tecnico/pkg/errors"
)

func TestParseFilterFromQuery(t *testing.T) {
	values, err := url.ParseQuery("search=Garcia&filter[estado]=abierto&estado=cerrado&prioridad=alta&format=XLSX&abiertos=RPT-001")
	require.NoError(t, err)

	f := ParseFilterFromQuery(values)

	assert.Equal(t, "Garcia", f.Search)
	assert.Equal(t, "xlsx", f.Format)
	assert.Equal(t, "abierto", f.Get("estado"), "filter[...] wins over the plain alias")
	assert.Equal(t, "alta", f.Get("prioridad"))
	assert.Empty(t, f.Get("abiertos"))
	assert.Empty(t, f.Get("departamento"))
}

func TestErrorResponse_Mapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("buscar: %w", apperrors.ErrNotFound), http.StatusNotFound},
		{apperrors.ErrUserNotFound, http.StatusNotFound},
		{apperrors.ErrNotEditing, http.StatusConflict},
		{apperrors.NewInvalidInputError("rol inválido"), http.StatusBadRequest},
		{apperrors.NewHttpError(http.StatusTeapot, "tetera", nil, nil), http.StatusTeapot},
		{echo.NewHTTPError(http.StatusMethodNotAllowed, "no"), http.StatusMethodNotAllowed},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	e := echo.New()
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		require.NoError(t, ErrorResponse(c, tc.err, zap.NewNop()))
		assert.Equal(t, tc.code, rec.Code, tc.err.Error())
		assert.Contains(t, rec.Body.String(), `"status":false`)
	}
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secreta123")
	require.NoError(t, err)
	assert.NotEqual(t, "secreta123", hash)
	assert.NoError(t, ComparePasswords(hash, "secreta123"))
	assert.Error(t, ComparePasswords(hash, "otra"))
}
