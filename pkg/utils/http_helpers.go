package utils

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "soporte-tecnico/pkg/errors"
	"soporte-tecnico/pkg/types"
)

type HTTPResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

// Параметры, которые не являются критериями фильтра: вкладки, состояние ленты, сессия.
var reservedParams = map[string]bool{
	"search":   true,
	"format":   true,
	"abiertos": true,
	"tab":      true,
	"catalogo": true,
	"sesion":   true,
}

// ParseFilterFromQuery разбирает search=...&filter[estado]=...; простой estado=...
// принимается как синоним, если filter[estado] не задан.
func ParseFilterFromQuery(values url.Values) types.Filter {
	filterReq := types.Filter{
		Filter: make(map[string]string),
	}

	plain := make(map[string]string)
	for key, vals := range values {
		if len(vals) == 0 || vals[0] == "" {
			continue
		}

		switch {
		case key == "search":
			filterReq.Search = vals[0]
		case key == "format":
			filterReq.Format = strings.ToLower(vals[0])
		case strings.HasPrefix(key, "filter[") && strings.HasSuffix(key, "]"):
			filterReq.Filter[key[7:len(key)-1]] = vals[0]
		case !reservedParams[key]:
			plain[key] = vals[0]
		}
	}

	for key, val := range plain {
		if _, ok := filterReq.Filter[key]; !ok {
			filterReq.Filter[key] = val
		}
	}

	return filterReq
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HTTPResponse{Status: true, Body: body, Message: message})
}

// StatusFor сопоставляет доменные ошибки HTTP-кодам.
func StatusFor(err error) (int, bool) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrSessionNotFound),
		errors.Is(err, apperrors.ErrUnknownCatalog):
		return http.StatusNotFound, true
	case errors.Is(err, apperrors.ErrNotEditing),
		errors.Is(err, apperrors.ErrAlreadyEditing):
		return http.StatusConflict, true
	case errors.Is(err, apperrors.ErrUnknownField),
		errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, true
	case errors.Is(err, apperrors.ErrIdentityNotFoundInContext):
		return http.StatusUnauthorized, true
	}
	return 0, false
}

func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("HTTP Error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Context),
			)
		}

		response := map[string]interface{}{
			"status":  false,
			"message": httpErr.Message,
		}

		if httpErr.Details != nil {
			response["body"] = httpErr.Details
		}

		return c.JSON(httpErr.Code, response)
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var msgs []string
		fields := make(map[string]string, len(validationErrors))
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("El campo '%s' no cumple la regla '%s'", e.Field(), e.Tag()))
			fields[e.Field()] = e.Tag()
		}
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  false,
			"message": "Error de validación: " + strings.Join(msgs, "; "),
			"body":    fields,
		})
	}

	var inputErr *apperrors.InvalidInputError
	if errors.As(err, &inputErr) {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"status": false, "message": inputErr.Message})
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		return c.JSON(echoErr.Code, map[string]interface{}{"status": false, "message": fmt.Sprint(echoErr.Message)})
	}

	if code, ok := StatusFor(err); ok {
		return c.JSON(code, map[string]interface{}{"status": false, "message": err.Error()})
	}

	logger.Error("Unexpected Error", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"status":  false,
		"message": "Error interno del servidor",
	})
}
