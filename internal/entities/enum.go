package entities

import "strings"

var slugReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ñ", "n",
	" ", "-",
)

// Slug даёт ключ значения в селектах экранов: "En Progreso" -> "en-progreso".
func Slug(label string) string {
	return slugReplacer.Replace(strings.ToLower(strings.TrimSpace(label)))
}

// parseEnum принимает подпись, её slug или один из явных псевдонимов.
func parseEnum[E ~string](values []E, aliases map[string]E, raw string) (E, bool) {
	s := strings.TrimSpace(raw)
	for _, v := range values {
		if strings.EqualFold(string(v), s) || Slug(string(v)) == Slug(s) {
			return v, true
		}
	}
	if v, ok := aliases[Slug(s)]; ok {
		return v, true
	}
	var zero E
	return zero, false
}

// Стили бейджей, общие для нескольких перечислений.
const (
	styleSky     = "bg-sky-100 text-sky-700 border-sky-200"
	styleIndigo  = "bg-indigo-100 text-indigo-700 border-indigo-200"
	styleEmerald = "bg-emerald-100 text-emerald-700 border-emerald-200"
	styleZinc    = "bg-zinc-100 text-zinc-600 border-zinc-200"
	styleRed     = "bg-red-100 text-red-700 border-red-200"
	styleOrange  = "bg-orange-100 text-orange-700 border-orange-200"
	styleAmber   = "bg-amber-100 text-amber-700 border-amber-200"
	styleViolet  = "bg-violet-100 text-violet-700 border-violet-200"
	stylePurple  = "bg-purple-100 text-purple-700 border-purple-200"
	styleBlue    = "bg-blue-100 text-blue-700 border-blue-200"
	styleSlate   = "bg-slate-100 text-slate-700 border-slate-200"
)

// Departamentos, встречающиеся в записях, и их ключи в селектах.
var departamentoAliases = map[string]string{
	"rh":           "Recursos Humanos",
	"contabilidad": "Contabilidad",
	"sistemas":     "Sistemas",
	"direccion":    "Direccion",
	"ventas":       "Ventas",
	"marketing":    "Marketing",
}

// ResolveDepartamento переводит ключ селекта в название отдела.
// Неизвестное значение возвращается как есть, фильтр тогда сравнивает его буквально.
func ResolveDepartamento(raw string) string {
	if name, ok := departamentoAliases[Slug(raw)]; ok {
		return name
	}
	for _, name := range departamentoAliases {
		if strings.EqualFold(name, strings.TrimSpace(raw)) || Slug(name) == Slug(raw) {
			return name
		}
	}
	return strings.TrimSpace(raw)
}

// DepartamentoLabels - названия отделов в порядке селекта.
func DepartamentoLabels() []string {
	return []string{"Recursos Humanos", "Contabilidad", "Sistemas", "Direccion", "Ventas", "Marketing"}
}

// ResolveLabel ищет среди candidates значение, которому соответствует ключ селекта:
// точная подпись, её slug, slug без дефисов ("tplink") или первое слово ("juan").
func ResolveLabel(candidates []string, raw string) string {
	s := strings.TrimSpace(raw)
	key := Slug(s)
	for _, c := range candidates {
		if strings.EqualFold(c, s) || Slug(c) == key {
			return c
		}
	}
	for _, c := range candidates {
		if strings.ReplaceAll(Slug(c), "-", "") == key {
			return c
		}
	}
	for _, c := range candidates {
		if first, _, _ := strings.Cut(Slug(c), "-"); first == key {
			return c
		}
	}
	return s
}
