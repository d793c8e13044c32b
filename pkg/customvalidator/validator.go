// Файл: pkg/customvalidator/validator.go

package customvalidator

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"soporte-tecnico/internal/entities"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	folioRegex    = regexp.MustCompile(`^SOL-\d{4}-\d{3}$`)
	telefonoRegex = regexp.MustCompile(`^\+?\d[\d ]{7,18}$`)
)

// RegisterCustomValidations регистрирует правила проекта в экземпляре валидатора.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("email", isGoodEmailFormat); err != nil {
		return err
	}
	if err := v.RegisterValidation("folio", isFolio); err != nil {
		return err
	}
	if err := v.RegisterValidation("telefono", isTelefono); err != nil {
		return err
	}
	if err := v.RegisterValidation("slug_or_label", isSlugOrLabel); err != nil {
		return err
	}
	return nil
}

func isGoodEmailFormat(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

func isFolio(fl validator.FieldLevel) bool {
	return folioRegex.MatchString(strings.ToUpper(fl.Field().String()))
}

func isTelefono(fl validator.FieldLevel) bool {
	return telefonoRegex.MatchString(strings.TrimSpace(fl.Field().String()))
}

// isSlugOrLabel: slug_or_label=administrador editor usuario.
// Значение принимается как подпись или её slug ("jefe-de-departamento").
func isSlugOrLabel(fl validator.FieldLevel) bool {
	value := entities.Slug(fl.Field().String())
	for _, candidate := range strings.Fields(fl.Param()) {
		if entities.Slug(strings.ReplaceAll(candidate, "_", " ")) == value {
			return true
		}
	}
	return false
}
