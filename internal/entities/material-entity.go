package entities

type UnidadMedida string

const (
	UnidadPieza   UnidadMedida = "Pieza"
	UnidadMetro   UnidadMedida = "Metro"
	UnidadPaquete UnidadMedida = "Paquete"
)

func UnidadMedidaValues() []UnidadMedida {
	return []UnidadMedida{UnidadPieza, UnidadMetro, UnidadPaquete}
}

func ParseUnidadMedida(s string) (UnidadMedida, bool) {
	return parseEnum(UnidadMedidaValues(), nil, s)
}

// NivelStock - производный признак остатка, значения селекта "Stock".
type NivelStock string

const (
	StockBajo   NivelStock = "bajo"
	StockNormal NivelStock = "normal"
)

func NivelStockValues() []NivelStock {
	return []NivelStock{StockBajo, StockNormal}
}

func ParseNivelStock(s string) (NivelStock, bool) {
	return parseEnum(NivelStockValues(), map[string]NivelStock{"bajo-stock": StockBajo}, s)
}

func (n NivelStock) Style() string {
	switch n {
	case StockBajo:
		return "text-red-600"
	case StockNormal:
		return "text-foreground"
	}
	return ""
}

type Material struct {
	ID           string       `json:"id"`
	Nombre       string       `json:"nombre"`
	Cantidad     int          `json:"cantidad"`
	UnidadMedida UnidadMedida `json:"unidad_medida"`
	UmbralAlerta int          `json:"umbral_alerta"`
	Fecha        string       `json:"fecha"`
}

// IsLowStock: остаток строго меньше порога. Равенство порогу - ещё норма.
func (m Material) IsLowStock() bool {
	return m.Cantidad < m.UmbralAlerta
}

func (m Material) StockLevel() NivelStock {
	if m.IsLowStock() {
		return StockBajo
	}
	return StockNormal
}
