package dto

import "soporte-tecnico/internal/entities"

// ActionDTO - кнопка "ver/editar/eliminar/agregar" любого экрана.
type ActionDTO struct {
	Accion  string      `json:"accion" form:"accion" validate:"required,slug_or_label=ver agregar crear editar eliminar borrar"`
	Entidad string      `json:"entidad" form:"entidad" validate:"required"`
	ID      string      `json:"id" form:"id" validate:"omitempty"`
	Datos   interface{} `json:"datos,omitempty"`
}

// ActionResultDTO: квитанция бэкенда или адрес карточки для "ver".
type ActionResultDTO struct {
	Receipt  *entities.Receipt `json:"receipt,omitempty"`
	Redirect string            `json:"redirect,omitempty"`
}
