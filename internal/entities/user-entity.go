// Файл: internal/entities/user-entity.go
package entities

import (
	"fmt"
	"strings"

	"github.com/aarondl/null/v8"

	apperrors "soporte-tecnico/pkg/errors"
)

type TipoUsuario string

const (
	TipoUsuarioJefe        TipoUsuario = "Jefe de Departamento"
	TipoUsuarioTecnico     TipoUsuario = "Tecnico"
	TipoUsuarioCoordinador TipoUsuario = "Coordinador"
)

func TipoUsuarioValues() []TipoUsuario {
	return []TipoUsuario{TipoUsuarioJefe, TipoUsuarioTecnico, TipoUsuarioCoordinador}
}

func ParseTipoUsuario(s string) (TipoUsuario, bool) {
	return parseEnum(TipoUsuarioValues(), map[string]TipoUsuario{"jefe": TipoUsuarioJefe}, s)
}

func (t TipoUsuario) Style() string {
	switch t {
	case TipoUsuarioJefe:
		return styleIndigo
	case TipoUsuarioTecnico:
		return styleSky
	case TipoUsuarioCoordinador:
		return styleAmber
	}
	return ""
}

type EstadoUsuario string

const (
	EstadoUsuarioActivo   EstadoUsuario = "Activo"
	EstadoUsuarioInactivo EstadoUsuario = "Inactivo"
	EstadoUsuarioBaja     EstadoUsuario = "Baja"
)

func EstadoUsuarioValues() []EstadoUsuario {
	return []EstadoUsuario{EstadoUsuarioActivo, EstadoUsuarioInactivo, EstadoUsuarioBaja}
}

func ParseEstadoUsuario(s string) (EstadoUsuario, bool) {
	return parseEnum(EstadoUsuarioValues(), nil, s)
}

func (e EstadoUsuario) Style() string {
	switch e {
	case EstadoUsuarioActivo:
		return styleEmerald
	case EstadoUsuarioInactivo:
		return styleZinc
	case EstadoUsuarioBaja:
		return styleRed
	}
	return ""
}

// RolUsuario - роль доступа из формы регистрации и карточки пользователя.
type RolUsuario string

const (
	RolAdministrador RolUsuario = "administrador"
	RolEditor        RolUsuario = "editor"
	RolUsuarioBase   RolUsuario = "usuario"
)

func RolUsuarioValues() []RolUsuario {
	return []RolUsuario{RolAdministrador, RolEditor, RolUsuarioBase}
}

func ParseRolUsuario(s string) (RolUsuario, bool) {
	return parseEnum(RolUsuarioValues(), nil, s)
}

func (r RolUsuario) Style() string {
	switch r {
	case RolAdministrador:
		return stylePurple
	case RolEditor:
		return styleBlue
	case RolUsuarioBase:
		return styleSlate
	}
	return ""
}

type Usuario struct {
	ID              string        `json:"id"`
	Nombres         string        `json:"nombres"`
	PrimerApellido  string        `json:"primer_apellido"`
	SegundoApellido string        `json:"segundo_apellido"`
	Correo          string        `json:"correo"`
	Departamento    string        `json:"departamento"`
	TipoUsuario     TipoUsuario   `json:"tipo_usuario"`
	Estado          EstadoUsuario `json:"estado"`
	FechaRegistro   string        `json:"fecha_registro"`
	Telefono        null.String   `json:"telefono"`
	Direccion       null.String   `json:"direccion"`
	Rol             null.String   `json:"rol"`
}

// FullName собирает имя из трёх частей, пропуская пустые.
func (u Usuario) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{u.Nombres, u.PrimerApellido, u.SegundoApellido} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// Initials - две буквы аватара.
func (u Usuario) Initials() string {
	var b strings.Builder
	for _, p := range []string{u.Nombres, u.PrimerApellido} {
		if r := []rune(strings.TrimSpace(p)); len(r) > 0 {
			b.WriteRune(r[0])
		}
	}
	return strings.ToUpper(b.String())
}

// EditableFields - поля, которые карточка пользователя отдаёт в режим редактирования.
var EditableFields = []string{
	"nombres", "primer_apellido", "segundo_apellido", "correo",
	"telefono", "departamento", "direccion", "rol", "estado",
}

// Set меняет одно поле копии. Перечисления принимаются подписью или ключом селекта.
func (u *Usuario) Set(field, value string) error {
	switch field {
	case "nombres":
		u.Nombres = value
	case "primer_apellido":
		u.PrimerApellido = value
	case "segundo_apellido":
		u.SegundoApellido = value
	case "correo":
		u.Correo = value
	case "departamento":
		u.Departamento = value
	case "telefono":
		u.Telefono = null.NewString(value, value != "")
	case "direccion":
		u.Direccion = null.NewString(value, value != "")
	case "rol":
		rol, ok := ParseRolUsuario(value)
		if !ok {
			return apperrors.NewInvalidInputError("rol desconocido: %q", value)
		}
		u.Rol = null.StringFrom(string(rol))
	case "estado":
		estado, ok := ParseEstadoUsuario(value)
		if !ok {
			return apperrors.NewInvalidInputError("estado desconocido: %q", value)
		}
		u.Estado = estado
	default:
		return fmt.Errorf("%w: %s", apperrors.ErrUnknownField, field)
	}
	return nil
}

// ToggleBaja переключает Activo <-> Baja; любой другой статус переводится в Activo.
func (u *Usuario) ToggleBaja() {
	if u.Estado == EstadoUsuarioActivo {
		u.Estado = EstadoUsuarioBaja
		return
	}
	u.Estado = EstadoUsuarioActivo
}
