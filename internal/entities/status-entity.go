package entities

// EstadoTicket - статус заявки на главной панели и в карточке заявки.
type EstadoTicket string

const (
	EstadoTicketAbierto    EstadoTicket = "Abierto"
	EstadoTicketEnProgreso EstadoTicket = "En Progreso"
	EstadoTicketResuelto   EstadoTicket = "Resuelto"
	EstadoTicketCerrado    EstadoTicket = "Cerrado"
)

func EstadoTicketValues() []EstadoTicket {
	return []EstadoTicket{EstadoTicketAbierto, EstadoTicketEnProgreso, EstadoTicketResuelto, EstadoTicketCerrado}
}

func ParseEstadoTicket(s string) (EstadoTicket, bool) {
	return parseEnum(EstadoTicketValues(), map[string]EstadoTicket{"en-proceso": EstadoTicketEnProgreso}, s)
}

func (e EstadoTicket) Style() string {
	switch e {
	case EstadoTicketAbierto:
		return styleSky
	case EstadoTicketEnProgreso:
		return styleIndigo
	case EstadoTicketResuelto:
		return styleEmerald
	case EstadoTicketCerrado:
		return styleZinc
	}
	return ""
}

// EstadoSolicitud - статус в списке "Mis Solicitudes".
type EstadoSolicitud string

const (
	EstadoSolicitudPendiente  EstadoSolicitud = "Pendiente"
	EstadoSolicitudEnProceso  EstadoSolicitud = "En Proceso"
	EstadoSolicitudCompletada EstadoSolicitud = "Completada"
	EstadoSolicitudRechazada  EstadoSolicitud = "Rechazada"
)

func EstadoSolicitudValues() []EstadoSolicitud {
	return []EstadoSolicitud{EstadoSolicitudPendiente, EstadoSolicitudEnProceso, EstadoSolicitudCompletada, EstadoSolicitudRechazada}
}

func ParseEstadoSolicitud(s string) (EstadoSolicitud, bool) {
	return parseEnum(EstadoSolicitudValues(), nil, s)
}

func (e EstadoSolicitud) Style() string {
	switch e {
	case EstadoSolicitudPendiente:
		return "bg-yellow-100 text-yellow-800 border-yellow-300"
	case EstadoSolicitudEnProceso:
		return "bg-blue-100 text-blue-800 border-blue-300"
	case EstadoSolicitudCompletada:
		return "bg-green-100 text-green-800 border-green-300"
	case EstadoSolicitudRechazada:
		return "bg-red-100 text-red-800 border-red-300"
	}
	return ""
}

// EstadoRegistro - статус записей справочников (отделы, метки, периоды).
type EstadoRegistro string

const (
	EstadoRegistroActivo   EstadoRegistro = "Activo"
	EstadoRegistroInactivo EstadoRegistro = "Inactivo"
)

func EstadoRegistroValues() []EstadoRegistro {
	return []EstadoRegistro{EstadoRegistroActivo, EstadoRegistroInactivo}
}

func ParseEstadoRegistro(s string) (EstadoRegistro, bool) {
	return parseEnum(EstadoRegistroValues(), nil, s)
}

func (e EstadoRegistro) Style() string {
	switch e {
	case EstadoRegistroActivo:
		return styleEmerald
	case EstadoRegistroInactivo:
		return styleZinc
	}
	return ""
}
