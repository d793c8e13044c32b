package entities

type EstadoReporte string

const (
	EstadoReporteResuelto   EstadoReporte = "Resuelto"
	EstadoReporteEnRevision EstadoReporte = "En revision"
	EstadoReportePendiente  EstadoReporte = "Pendiente"
)

func EstadoReporteValues() []EstadoReporte {
	return []EstadoReporte{EstadoReporteResuelto, EstadoReporteEnRevision, EstadoReportePendiente}
}

func ParseEstadoReporte(s string) (EstadoReporte, bool) {
	return parseEnum(EstadoReporteValues(), nil, s)
}

func (e EstadoReporte) Style() string {
	switch e {
	case EstadoReporteResuelto:
		return styleEmerald
	case EstadoReporteEnRevision:
		return styleAmber
	case EstadoReportePendiente:
		return styleRed
	}
	return ""
}

// Reporte - технический отчёт по заявке; Folio ссылается на Ticket.Folio без проверки целостности.
type Reporte struct {
	ID                  string        `json:"id"`
	Folio               string        `json:"folio"`
	Fecha               string        `json:"fecha"`
	Tecnico             string        `json:"tecnico"`
	Departamento        string        `json:"departamento"`
	Diagnostico         string        `json:"diagnostico"`
	Solucion            string        `json:"solucion"`
	DetallesAdicionales string        `json:"detalles_adicionales"`
	Estado              EstadoReporte `json:"estado"`
}
