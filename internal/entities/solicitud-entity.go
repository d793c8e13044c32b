package entities

type TipoProblema string

const (
	TipoProblemaRed           TipoProblema = "Red"
	TipoProblemaMantenimiento TipoProblema = "Mantenimiento"
	TipoProblemaSistema       TipoProblema = "Sistema"
)

func TipoProblemaValues() []TipoProblema {
	return []TipoProblema{TipoProblemaRed, TipoProblemaMantenimiento, TipoProblemaSistema}
}

func ParseTipoProblema(s string) (TipoProblema, bool) {
	return parseEnum(TipoProblemaValues(), nil, s)
}

func (t TipoProblema) Style() string {
	switch t {
	case TipoProblemaRed:
		return "bg-indigo-100 text-indigo-800 border-indigo-300"
	case TipoProblemaMantenimiento:
		return "bg-purple-100 text-purple-800 border-purple-300"
	case TipoProblemaSistema:
		return "bg-cyan-100 text-cyan-800 border-cyan-300"
	}
	return ""
}

type TipoSolicitud string

const (
	TipoSolicitudSoporte       TipoSolicitud = "Soporte Técnico"
	TipoSolicitudMantenimiento TipoSolicitud = "Mantenimiento"
	TipoSolicitudEquipo        TipoSolicitud = "Solicitud de Equipo"
)

func TipoSolicitudValues() []TipoSolicitud {
	return []TipoSolicitud{TipoSolicitudSoporte, TipoSolicitudMantenimiento, TipoSolicitudEquipo}
}

func (t TipoSolicitud) Style() string {
	switch t {
	case TipoSolicitudSoporte:
		return "bg-teal-100 text-teal-800 border-teal-300"
	case TipoSolicitudMantenimiento:
		return "bg-orange-100 text-orange-800 border-orange-300"
	case TipoSolicitudEquipo:
		return "bg-pink-100 text-pink-800 border-pink-300"
	}
	return ""
}

// Solicitud - заявка текущего пользователя (/mis-solicitudes).
type Solicitud struct {
	ID             string          `json:"id"`
	Folio          string          `json:"folio"`
	NombreAfectado string          `json:"nombre_afectado"`
	TipoProblema   TipoProblema    `json:"tipo_problema"`
	Estado         EstadoSolicitud `json:"estado"`
	FechaSolicitud string          `json:"fecha_solicitud"`
	Prioridad      Prioridad       `json:"prioridad"`
	TipoSolicitud  TipoSolicitud   `json:"tipo_solicitud"`
	Titulo         string          `json:"titulo"`
	Descripcion    string          `json:"descripcion"`
}
