package types

// Filter - параметры списка: строка поиска, критерии и формат ответа.
// Отсутствующий критерий равносилен значению "todos".
type Filter struct {
	Search string            `json:"search,omitempty"`
	Filter map[string]string `json:"filter,omitempty"`
	Format string            `json:"format,omitempty"`
}

// Get возвращает значение критерия или пустую строку.
func (f Filter) Get(key string) string {
	if f.Filter == nil {
		return ""
	}
	return f.Filter[key]
}

// http://localhost:8080/api/solicitudes?search=garcia&filter[estado]=abierto&filter[prioridad]=alta
// http://localhost:8080/api/solicitudes?search=garcia&estado=abierto&format=xlsx
