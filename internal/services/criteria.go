package services

import (
	"context"
	"fmt"
	"sort"

	"soporte-tecnico/internal/dto"
	"soporte-tecnico/internal/entities"
	"soporte-tecnico/pkg/collection"
	"soporte-tecnico/pkg/utils"
)

// enumCriterion переводит значение селекта в подпись перечисления.
// Нераспознанное значение остаётся как есть и ничему не равно.
func enumCriterion[T any, E ~string](raw string, parse func(string) (E, bool), field func(T) E) collection.Criterion[T] {
	value := raw
	if !collection.IsWildcard(raw) {
		if e, ok := parse(raw); ok {
			value = string(e)
		}
	}
	return collection.Criterion[T]{
		Field: func(item T) string { return string(field(item)) },
		Value: value,
	}
}

// labelCriterion - то же для открытых списков (отделы, марки, техники).
func labelCriterion[T any](raw string, resolve func(string) string, field func(T) string) collection.Criterion[T] {
	value := raw
	if !collection.IsWildcard(raw) {
		value = resolve(raw)
	}
	return collection.Criterion[T]{Field: field, Value: value}
}

// countsText - "Pendiente: 2" для каждой непустой группы в порядке order.
func countsText[E ~string](counts map[string]int, order []E) []string {
	var out []string
	for _, v := range order {
		if n := counts[string(v)]; n > 0 {
			out = append(out, fmt.Sprintf("%s: %d", v, n))
		}
	}
	return out
}

func summaryOf(total int, counts map[string]int, text ...string) dto.SummaryDTO {
	return dto.SummaryDTO{Total: total, Counts: counts, Text: text}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// identityOrAnon: отсутствие пользователя в контексте не мешает просмотру.
func identityOrAnon(ctx context.Context) entities.Identity {
	identity, err := utils.GetIdentityFromContext(ctx)
	if err != nil {
		return entities.Identity{}
	}
	return identity
}
