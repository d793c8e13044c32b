package views

// Action - действие, доступное для записи и в таблице, и в карточке.
type Action string

const (
	ActionVer      Action = "ver"
	ActionEditar   Action = "editar"
	ActionEliminar Action = "eliminar"
)

// DefaultActions - набор кнопок строки списка.
var DefaultActions = []Action{ActionVer, ActionEditar, ActionEliminar}

// Column описывает поле записи один раз для обоих представлений.
// Style == nil - значение выводится текстом, иначе бейджем с классом.
type Column[T any] struct {
	Key   string
	Label string
	Text  func(T) string
	Style func(T) string
}

type Header struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type Cell struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Text  string `json:"text"`
	Style string `json:"style,omitempty"`
}

// Item - строка таблицы или карточка; у обоих одинаковые ячейки и действия.
type Item struct {
	ID        string   `json:"id"`
	Entity    string   `json:"entidad"`
	Title     string   `json:"title"`
	Highlight bool     `json:"highlight,omitempty"`
	Cells     []Cell   `json:"cells"`
	Actions   []Action `json:"actions"`
}

// Layout - табличное представление (md и шире) и карточки (узкий экран).
// Какое из них видно, решает CSS-брейкпоинт, а не состояние.
type Layout struct {
	Columns []Header `json:"columns"`
	Rows    []Item   `json:"rows"`
	Cards   []Item   `json:"cards"`
}

// Renderer: Entity - имя сущности, с которым кнопки действий уходят в /api/acciones.
type Renderer[T any] struct {
	Entity    string
	Columns   []Column[T]
	ID        func(T) string
	Title     func(T) string
	Highlight func(T) bool
	Actions   []Action
}

// Render строит обе раскладки из одной и той же отфильтрованной последовательности.
func (r Renderer[T]) Render(items []T) Layout {
	layout := Layout{
		Columns: make([]Header, len(r.Columns)),
		Rows:    make([]Item, 0, len(items)),
		Cards:   make([]Item, 0, len(items)),
	}
	for i, col := range r.Columns {
		layout.Columns[i] = Header{Key: col.Key, Label: col.Label}
	}

	for _, it := range items {
		row := r.item(it)
		card := row
		card.Cells = append([]Cell(nil), row.Cells...)
		card.Actions = append([]Action(nil), row.Actions...)
		layout.Rows = append(layout.Rows, row)
		layout.Cards = append(layout.Cards, card)
	}
	return layout
}

func (r Renderer[T]) item(it T) Item {
	actions := r.Actions
	if actions == nil {
		actions = DefaultActions
	}
	out := Item{
		Entity:  r.Entity,
		Cells:   make([]Cell, len(r.Columns)),
		Actions: append([]Action(nil), actions...),
	}
	if r.ID != nil {
		out.ID = r.ID(it)
	}
	if r.Title != nil {
		out.Title = r.Title(it)
	}
	if r.Highlight != nil {
		out.Highlight = r.Highlight(it)
	}
	for i, col := range r.Columns {
		cell := Cell{Key: col.Key, Label: col.Label, Text: col.Text(it)}
		if col.Style != nil {
			cell.Style = col.Style(it)
		}
		out.Cells[i] = cell
	}
	return out
}
