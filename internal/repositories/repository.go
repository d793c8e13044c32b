package repositories

// cloneSlice отдаёт вызывающему собственную копию данных репозитория.
func cloneSlice[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
