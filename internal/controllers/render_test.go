package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"soporte-tecnico/internal/views"
	"soporte-tecnico/pkg/types"
)

func xlsxContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/inventarios/materiales?format=xlsx", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func testLayout() views.Layout {
	return views.Layout{
		Columns: []views.Header{{Key: "id", Label: "ID"}},
		Rows:    []views.Item{{ID: "MAT-001", Cells: []views.Cell{{Key: "id", Label: "ID", Text: "MAT-001"}}}},
	}
}

func TestRespondCollection_XLSX(t *testing.T) {
	ctx, rec := xlsxContext(t)

	err := respondCollection(ctx, zap.NewNop(), types.Filter{Format: "xlsx"}, nil, testLayout(), "Materiales", "ok")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get(echo.HeaderContentType))
	assert.True(t, strings.HasPrefix(rec.Header().Get(echo.HeaderContentDisposition), "attachment; filename=materiales_"))
	assert.NotZero(t, rec.Body.Len())
}

// Книга не собралась: вместо файла уходит JSON-ошибка, заголовки файла не выставлены.
func TestRespondCollection_XLSXFailureIsNotPartial(t *testing.T) {
	ctx, rec := xlsxContext(t)

	err := respondCollection(ctx, zap.NewNop(), types.Filter{Format: "xlsx"}, nil, testLayout(), "Hoja[1]", "ok")
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Contains(t, rec.Body.String(), `"status":false`)
}
