package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"soporte-tecnico/internal/entities"
	"soporte-tecnico/internal/views"
	apperrors "soporte-tecnico/pkg/errors"
	"soporte-tecnico/pkg/middleware"
	"soporte-tecnico/pkg/types"
	"soporte-tecnico/pkg/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// respondCollection отдаёт JSON-конверт или, при format=xlsx, файл с таблицей layout.
// Книга собирается в памяти целиком; при ошибке клиент получает 500, а не обрезанный файл.
func respondCollection(ctx echo.Context, logger *zap.Logger, filter types.Filter, body interface{}, layout views.Layout, sheet, message string) error {
	if filter.Format != "xlsx" {
		return utils.SuccessResponse(ctx, body, message, http.StatusOK)
	}

	var buf bytes.Buffer
	if err := views.WriteXLSX(&buf, sheet, layout); err != nil {
		return utils.ErrorResponse(ctx, fmt.Errorf("exportación %s: %w", sheet, err), middleware.LoggerFrom(ctx, logger))
	}

	fileName := fmt.Sprintf("%s_%s.xlsx", entities.Slug(sheet), time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+fileName)
	return ctx.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}

// newPage заполняет общие части экрана: меню, пользователь в шапке, строка поиска.
func newPage(ctx echo.Context, title, subtitle string, filter types.Filter) views.Page {
	identity, _ := utils.GetIdentityFromContext(ctx.Request().Context())
	path := ctx.Request().URL.Path
	return views.Page{
		Title:    title,
		Subtitle: subtitle,
		Path:     path,
		Identity: identity,
		Nav:      views.Navigation(path),
		Search:   filter.Search,
	}
}

// renderError рисует ошибку внутри экрана, а не JSON-конвертом.
func renderError(ctx echo.Context, logger *zap.Logger, name string, page views.Page, err error) error {
	code, message := http.StatusInternalServerError, "Error interno del servidor"
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		code, message = httpErr.Code, httpErr.Message
	} else if c, ok := utils.StatusFor(err); ok {
		code, message = c, err.Error()
	} else {
		middleware.LoggerFrom(ctx, logger).Error("error al construir la pantalla", zap.String("pagina", name), zap.Error(err))
	}
	page.Message = message
	return ctx.Render(code, name, page)
}

func labelsOf[E ~string](values []E) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// isFormPost - запрос пришёл из HTML-формы; такому клиенту отвечаем редиректом.
func isFormPost(ctx echo.Context) bool {
	ct := ctx.Request().Header.Get(echo.HeaderContentType)
	return strings.HasPrefix(ct, echo.MIMEApplicationForm) || strings.HasPrefix(ct, echo.MIMEMultipartForm)
}
