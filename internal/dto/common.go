package dto

import "soporte-tecnico/internal/views"

// SummaryDTO - итоги, пересчитанные по отфильтрованной последовательности.
type SummaryDTO struct {
	Total  int            `json:"total"`
	Counts map[string]int `json:"counts,omitempty"`
	Text   []string       `json:"text"`
}

// CollectionDTO - ответ любого списка: записи, итоги и обе раскладки.
type CollectionDTO[T any] struct {
	Items   []T          `json:"items"`
	Summary SummaryDTO   `json:"summary"`
	Layout  views.Layout `json:"layout"`
}

// FeedDTO - лента отчётов вместе с состоянием раскрытия карточек.
type FeedDTO struct {
	Cards    []views.FeedCard `json:"cards"`
	Abiertos []string         `json:"abiertos"`
	Summary  SummaryDTO       `json:"summary"`
}

type SessionDTO struct {
	Nombre    string `json:"nombre"`
	Correo    string `json:"correo"`
	Iniciales string `json:"iniciales"`
}
