package entities

// Записи справочников раздела "Adicionales".

type Departamento struct {
	ID     int            `json:"id"`
	Nombre string         `json:"nombre"`
	Sigla  string         `json:"sigla"`
	Estado EstadoRegistro `json:"estado"`
}

type Etiqueta struct {
	ID     int            `json:"id"`
	Nombre string         `json:"nombre"`
	Color  string         `json:"color"`
	Estado EstadoRegistro `json:"estado"`
}

type Periodo struct {
	ID          int            `json:"id"`
	Nombre      string         `json:"nombre"`
	FechaInicio string         `json:"fecha_inicio"`
	FechaFin    string         `json:"fecha_fin"`
	Estado      EstadoRegistro `json:"estado"`
}
