package dto

import "soporte-tecnico/internal/entities"

// RegisterUsuarioDTO - форма /usuarios/registrar.
type RegisterUsuarioDTO struct {
	Correo          string `json:"correo" form:"correo" validate:"required,email"`
	Contrasena      string `json:"contrasena" form:"contrasena" validate:"required,min=8"`
	Nombres         string `json:"nombres" form:"nombres" validate:"required"`
	PrimerApellido  string `json:"primer_apellido" form:"primer_apellido" validate:"required"`
	SegundoApellido string `json:"segundo_apellido" form:"segundo_apellido" validate:"omitempty"`
	Telefono        string `json:"telefono" form:"telefono" validate:"omitempty,telefono"`
	Rol             string `json:"rol" form:"rol" validate:"required,slug_or_label=administrador editor usuario"`
	Estado          string `json:"estado" form:"estado" validate:"required,slug_or_label=activo inactivo"`
}

// UpdateUsuarioDraftDTO - изменения полей черновика; ключи - из Usuario.EditableFields.
type UpdateUsuarioDraftDTO struct {
	Campos map[string]string `json:"campos" validate:"required,min=1"`
}

type EditSessionDTO struct {
	ID        string            `json:"id"`
	UsuarioID string            `json:"usuario_id"`
	Modo      entities.EditMode `json:"modo"`
	Usuario   entities.Usuario  `json:"usuario"`
	Original  entities.Usuario  `json:"original"`
	Campos    []string          `json:"campos_editables,omitempty"`
	Receipt   *entities.Receipt `json:"receipt,omitempty"`
}

// UsuarioDetalleDTO - карточка пользователя для HTML-экрана.
// Sesion задана, когда карточка открыта в сессии редактирования.
type UsuarioDetalleDTO struct {
	Usuario entities.Usuario `json:"usuario"`
	Sesion  *EditSessionDTO  `json:"sesion,omitempty"`
}
