package views

import "fmt"

// Pluralize выбирает форму слова по числу.
func Pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// Found - фраза итогов списка: "8 solicitudes encontradas", "1 equipo encontrado".
func Found(n int, singular, plural string, feminine bool) string {
	adj := "encontrado"
	if feminine {
		adj = "encontrada"
	}
	return fmt.Sprintf("%d %s %s", n, Pluralize(n, singular, plural), Pluralize(n, adj, adj+"s"))
}

// Counted - "%d <слово>" с согласованием числа: "3 pendientes", "1 resuelto".
func Counted(n int, singular, plural string) string {
	return fmt.Sprintf("%d %s", n, Pluralize(n, singular, plural))
}
