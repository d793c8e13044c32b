package views

import (
	"sort"
	"strings"

	"soporte-tecnico/internal/entities"
)

// Feed - состояние раскрытия карточек ленты отчётов.
// Каждая карточка переключается независимо, по умолчанию свёрнута.
type Feed struct {
	open map[string]bool
}

func NewFeed(open ...string) *Feed {
	f := &Feed{open: make(map[string]bool, len(open))}
	for _, id := range open {
		if id = strings.TrimSpace(id); id != "" {
			f.open[id] = true
		}
	}
	return f
}

// ParseAbiertos разбирает параметр abiertos=RPT-001,RPT-003.
func ParseAbiertos(raw string) *Feed {
	return NewFeed(strings.Split(raw, ",")...)
}

func (f *Feed) Toggle(id string) {
	if f.open[id] {
		delete(f.open, id)
		return
	}
	f.open[id] = true
}

func (f *Feed) IsOpen(id string) bool {
	return f.open[id]
}

// Open - раскрытые карточки в отсортированном виде.
func (f *Feed) Open() []string {
	ids := make([]string, 0, len(f.open))
	for id := range f.open {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// toggled - значение abiertos после переключения карточки id; для ссылок на экране.
func (f *Feed) toggled(id string) string {
	next := NewFeed(f.Open()...)
	next.Toggle(id)
	return strings.Join(next.Open(), ",")
}

// FeedCard - карточка отчёта в текущем состоянии.
type FeedCard struct {
	ID                  string `json:"id"`
	Folio               string `json:"folio"`
	Fecha               string `json:"fecha"`
	Tecnico             string `json:"tecnico"`
	Departamento        string `json:"departamento"`
	Estado              string `json:"estado"`
	EstadoStyle         string `json:"estado_style"`
	Expanded            bool   `json:"expanded"`
	Diagnostico         string `json:"diagnostico"`
	Clamped             bool   `json:"clamped"`
	Solucion            string `json:"solucion,omitempty"`
	DetallesAdicionales string `json:"detalles_adicionales,omitempty"`
	ToggleAbiertos      string `json:"toggle_abiertos"`
}

// Card: свёрнутая карточка показывает диагноз, обрезанный до двух строк;
// раскрытая - диагноз целиком, решение (если есть) и дополнительные детали.
func (f *Feed) Card(r entities.Reporte) FeedCard {
	card := FeedCard{
		ID:             r.ID,
		Folio:          r.Folio,
		Fecha:          r.Fecha,
		Tecnico:        r.Tecnico,
		Departamento:   r.Departamento,
		Estado:         string(r.Estado),
		EstadoStyle:    r.Estado.Style(),
		Expanded:       f.IsOpen(r.ID),
		Diagnostico:    r.Diagnostico,
		ToggleAbiertos: f.toggled(r.ID),
	}
	if !card.Expanded {
		card.Clamped = true
		return card
	}
	if strings.TrimSpace(r.Solucion) != "" {
		card.Solucion = r.Solucion
	}
	card.DetallesAdicionales = r.DetallesAdicionales
	return card
}

func (f *Feed) Cards(reportes []entities.Reporte) []FeedCard {
	cards := make([]FeedCard, 0, len(reportes))
	for _, r := range reportes {
		cards = append(cards, f.Card(r))
	}
	return cards
}
