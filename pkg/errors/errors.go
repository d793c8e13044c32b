package errors

import (
	"errors"
	"fmt"
)

var (
	// Общие
	ErrNotFound   = errors.New("registro no encontrado")
	ErrBadRequest = errors.New("solicitud incorrecta")

	// Usuarios
	ErrUserNotFound = errors.New("usuario no encontrado")

	// Edición en línea
	ErrSessionNotFound = errors.New("sesión de edición no encontrada o expirada")
	ErrNotEditing      = errors.New("el registro no está en modo edición")
	ErrAlreadyEditing  = errors.New("el registro ya está en modo edición")
	ErrUnknownField    = errors.New("campo no editable")

	// Catálogos
	ErrUnknownCatalog = errors.New("catálogo desconocido")

	// Контекст
	ErrIdentityNotFoundInContext = errors.New("identidad no encontrada en el contexto de la solicitud")
)

// HttpError несёт HTTP-код и сообщение для клиента; Err уходит только в лог.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, ctx map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: ctx}
}

// WithDetails прикладывает тело ответа (например, идентификатор не найденной записи).
func (e *HttpError) WithDetails(details interface{}) *HttpError {
	e.Details = details
	return e
}

// Кастомные типы ошибок
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
