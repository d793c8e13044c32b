package entities

import "strings"

// Identity - текущий пользователь сессии (шапка приложения, "Mis Solicitudes").
type Identity struct {
	Nombre string `json:"nombre"`
	Correo string `json:"correo"`
}

// Initials - аватар шапки: первые буквы двух первых слов имени.
func (i Identity) Initials() string {
	words := strings.Fields(i.Nombre)
	var out []rune
	for _, w := range words {
		if len(out) == 2 {
			break
		}
		out = append(out, []rune(w)[0])
	}
	return strings.ToUpper(string(out))
}
