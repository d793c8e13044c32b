// Package collection содержит общий механизм поиска, фильтрации и подсчёта
// для списков записей, которые экраны держат в памяти.
package collection

import (
	"strings"

	"golang.org/x/text/cases"
)

// Wildcard - значение селекта "Todos", которое отключает фильтр.
const Wildcard = "todos"

// Field возвращает текстовое поле записи.
type Field[T any] func(T) string

// Criterion - категориальный фильтр (estado, departamento, tipo, prioridad).
type Criterion[T any] struct {
	Field Field[T]
	Value string
}

// Query - поисковая строка плюс набор независимых фильтров (логическое И).
type Query[T any] struct {
	Search       string
	SearchFields []Field[T]
	Criteria     []Criterion[T]
}

// IsWildcard: пустое значение, "todos" и "todas" в любом регистре ничего не фильтруют.
func IsWildcard(value string) bool {
	v := strings.TrimSpace(value)
	return v == "" || strings.EqualFold(v, Wildcard) || strings.EqualFold(v, "todas")
}

// Filter возвращает новую подпоследовательность items в исходном порядке.
// Исходный срез не изменяется.
func Filter[T any](items []T, q Query[T]) []T {
	m := newMatcher(q)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if m.match(item) {
			out = append(out, item)
		}
	}
	return out
}

type matcher[T any] struct {
	fold     cases.Caser
	needle   string
	fields   []Field[T]
	criteria []Criterion[T]
}

func newMatcher[T any](q Query[T]) *matcher[T] {
	// cases.Caser хранит состояние, поэтому свой экземпляр на каждый проход.
	fold := cases.Fold()
	m := &matcher[T]{fold: fold, fields: q.SearchFields}
	if q.Search != "" {
		m.needle = fold.String(q.Search)
	}
	for _, c := range q.Criteria {
		if c.Field == nil || IsWildcard(c.Value) {
			continue
		}
		m.criteria = append(m.criteria, c)
	}
	return m
}

func (m *matcher[T]) match(item T) bool {
	return m.matchSearch(item) && m.matchCriteria(item)
}

func (m *matcher[T]) matchSearch(item T) bool {
	if m.needle == "" {
		return true
	}
	for _, field := range m.fields {
		if strings.Contains(m.fold.String(field(item)), m.needle) {
			return true
		}
	}
	return false
}

func (m *matcher[T]) matchCriteria(item T) bool {
	for _, c := range m.criteria {
		if c.Field(item) != c.Value {
			return false
		}
	}
	return true
}

// Count считает записи, удовлетворяющие предикату.
func Count[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, item := range items {
		if pred(item) {
			n++
		}
	}
	return n
}

// CountBy группирует записи по ключу и считает каждую группу.
func CountBy[T any](items []T, key func(T) string) map[string]int {
	counts := make(map[string]int)
	for _, item := range items {
		counts[key(item)]++
	}
	return counts
}
