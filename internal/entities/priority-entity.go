package entities

// Prioridad заявки.
type Prioridad string

const (
	PrioridadBaja    Prioridad = "Baja"
	PrioridadMedia   Prioridad = "Media"
	PrioridadAlta    Prioridad = "Alta"
	PrioridadCritica Prioridad = "Critica"
)

func PrioridadValues() []Prioridad {
	return []Prioridad{PrioridadCritica, PrioridadAlta, PrioridadMedia, PrioridadBaja}
}

func ParsePrioridad(s string) (Prioridad, bool) {
	return parseEnum(PrioridadValues(), map[string]Prioridad{"crítica": PrioridadCritica}, s)
}

func (p Prioridad) Style() string {
	switch p {
	case PrioridadCritica:
		return styleRed
	case PrioridadAlta:
		return styleOrange
	case PrioridadMedia:
		return styleAmber
	case PrioridadBaja:
		return styleEmerald
	}
	return ""
}
