package entities

type TipoEquipo string

const (
	TipoEquipoComputo   TipoEquipo = "Computo"
	TipoEquipoRedes     TipoEquipo = "Redes"
	TipoEquipoImpresora TipoEquipo = "Impresora"
)

func TipoEquipoValues() []TipoEquipo {
	return []TipoEquipo{TipoEquipoComputo, TipoEquipoRedes, TipoEquipoImpresora}
}

func ParseTipoEquipo(s string) (TipoEquipo, bool) {
	return parseEnum(TipoEquipoValues(), nil, s)
}

func (t TipoEquipo) Style() string {
	switch t {
	case TipoEquipoComputo:
		return styleSky
	case TipoEquipoRedes:
		return styleViolet
	case TipoEquipoImpresora:
		return styleAmber
	}
	return ""
}

// Icon - имя иконки бейджа типа оборудования.
func (t TipoEquipo) Icon() string {
	switch t {
	case TipoEquipoComputo:
		return "monitor"
	case TipoEquipoRedes:
		return "wifi"
	case TipoEquipoImpresora:
		return "printer"
	}
	return ""
}

type EstadoEquipo string

const (
	EstadoEquipoActivo       EstadoEquipo = "Activo"
	EstadoEquipoEnReparacion EstadoEquipo = "En reparacion"
	EstadoEquipoBaja         EstadoEquipo = "Baja"
)

func EstadoEquipoValues() []EstadoEquipo {
	return []EstadoEquipo{EstadoEquipoActivo, EstadoEquipoEnReparacion, EstadoEquipoBaja}
}

func ParseEstadoEquipo(s string) (EstadoEquipo, bool) {
	return parseEnum(EstadoEquipoValues(), map[string]EstadoEquipo{"reparacion": EstadoEquipoEnReparacion}, s)
}

func (e EstadoEquipo) Style() string {
	switch e {
	case EstadoEquipoActivo:
		return styleEmerald
	case EstadoEquipoEnReparacion:
		return styleAmber
	case EstadoEquipoBaja:
		return styleZinc
	}
	return ""
}

type Equipo struct {
	NoInventario string       `json:"no_inventario"`
	TipoEquipo   TipoEquipo   `json:"tipo_equipo"`
	Marca        string       `json:"marca"`
	Modelo       string       `json:"modelo"`
	Responsable  string       `json:"responsable"`
	Estado       EstadoEquipo `json:"estado"`
}
