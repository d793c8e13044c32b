package customvalidator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Correo   string `validate:"required,email"`
	Folio    string `validate:"omitempty,folio"`
	Telefono string `validate:"omitempty,telefono"`
	Tipo     string `validate:"required,slug_or_label=Jefe_de_Departamento Tecnico Coordinador"`
}

func newValidator(t *testing.T) *validator.Validate {
	v := validator.New()
	require.NoError(t, RegisterCustomValidations(v))
	return v
}

func TestCustomValidations_Valid(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Struct(sample{Correo: "ana@empresa.com", Folio: "SOL-2024-001", Telefono: "+34 912 345 678", Tipo: "jefe-de-departamento"}))
	assert.NoError(t, v.Struct(sample{Correo: "ana@empresa.com", Folio: "sol-2024-010", Tipo: "Técnico"}))
}

func TestCustomValidations_Invalid(t *testing.T) {
	v := newValidator(t)

	err := v.Struct(sample{Correo: "no-es-correo", Folio: "SOL-24-1", Telefono: "abc", Tipo: "gerente"})
	require.Error(t, err)

	var failed []string
	for _, fe := range err.(validator.ValidationErrors) {
		failed = append(failed, fe.Field())
	}
	assert.ElementsMatch(t, []string{"Correo", "Folio", "Telefono", "Tipo"}, failed)
}
