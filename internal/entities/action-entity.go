package entities

import "time"

// AccionTipo - намерение, которое экран отправляет внешнему бэкенду.
type AccionTipo string

const (
	AccionVer      AccionTipo = "ver"
	AccionAgregar  AccionTipo = "agregar"
	AccionEditar   AccionTipo = "editar"
	AccionEliminar AccionTipo = "eliminar"
)

func AccionTipoValues() []AccionTipo {
	return []AccionTipo{AccionVer, AccionAgregar, AccionEditar, AccionEliminar}
}

func ParseAccionTipo(s string) (AccionTipo, bool) {
	return parseEnum(AccionTipoValues(), map[string]AccionTipo{"crear": AccionAgregar, "borrar": AccionEliminar}, s)
}

// Receipt - квитанция о принятом намерении. Запись ничего не сохраняет.
type Receipt struct {
	ID          string     `json:"id"`
	Entidad     string     `json:"entidad"`
	RegistroID  string     `json:"registro_id,omitempty"`
	Accion      AccionTipo `json:"accion"`
	Solicitante Identity   `json:"solicitante"`
	AceptadoEn  time.Time  `json:"aceptado_en"`
}
