package entities

import "github.com/aarondl/null/v8"

// Ticket - строка списка заявок на главной панели.
type Ticket struct {
	Folio        string       `json:"folio"`
	Fecha        string       `json:"fecha"`
	Nombre       string       `json:"nombre"`
	Departamento string       `json:"departamento"`
	Equipo       string       `json:"equipo"`
	Prioridad    Prioridad    `json:"prioridad"`
	Estado       EstadoTicket `json:"estado"`
}

// SolicitudDetalle - карточка одной заявки (/solicitudes/{folio}).
type SolicitudDetalle struct {
	Folio          string       `json:"folio"`
	Fecha          string       `json:"fecha"`
	Tipo           string       `json:"tipo"`
	Departamento   string       `json:"departamento"`
	Prioridad      Prioridad    `json:"prioridad"`
	Estado         EstadoTicket `json:"estado"`
	NombreAfectado string       `json:"nombre_afectado"`
	Correo         string       `json:"correo"`
	Inventario     string       `json:"inventario"`
	Descripcion    string       `json:"descripcion"`
	Tecnico        null.String  `json:"tecnico"`
	Diagnostico    null.String  `json:"diagnostico"`
	Solucion       null.String  `json:"solucion"`
}

// TieneAtencion - у заявки уже есть назначенный техник с диагнозом.
func (s SolicitudDetalle) TieneAtencion() bool {
	return s.Tecnico.Valid && s.Diagnostico.Valid
}
