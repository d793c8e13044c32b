package collection

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID     string
	Nombre string
	Estado string
	Depto  string
}

var sample = []record{
	{ID: "SOL-2024-001", Nombre: "Maria Garcia Lopez", Estado: "Abierto", Depto: "Recursos Humanos"},
	{ID: "SOL-2024-002", Nombre: "Carlos Martinez", Estado: "En Progreso", Depto: "Contabilidad"},
	{ID: "SOL-2024-003", Nombre: "Ana Torres Ruiz", Estado: "Abierto", Depto: "Sistemas"},
	{ID: "SOL-2024-004", Nombre: "Luis Hernandez", Estado: "Resuelto", Depto: "Direccion"},
}

func byID(r record) string     { return r.ID }
func byNombre(r record) string { return r.Nombre }
func byEstado(r record) string { return r.Estado }
func byDepto(r record) string  { return r.Depto }

func query(search string, criteria ...Criterion[record]) Query[record] {
	return Query[record]{
		Search:       search,
		SearchFields: []Field[record]{byID, byNombre},
		Criteria:     criteria,
	}
}

func TestFilter_EmptyQueryReturnsEverything(t *testing.T) {
	got := Filter(sample, query(""))
	assert.Equal(t, sample, got)
}

func TestFilter_FolioIgnoresCase(t *testing.T) {
	for _, q := range []string{"SOL-2024-003", "sol-2024-003", "Sol-2024-003"} {
		got := Filter(sample, query(q))
		require.Len(t, got, 1, q)
		assert.Equal(t, "SOL-2024-003", got[0].ID)
	}
}

func TestFilter_ResultIsOrderedSubsetMatchingSomeField(t *testing.T) {
	queries := []string{"a", "mar", "RUIZ", "2024", "zz", "o"}
	for _, q := range queries {
		got := Filter(sample, query(q))

		// подпоследовательность исходного порядка
		j := 0
		for _, r := range got {
			for j < len(sample) && sample[j] != r {
				j++
			}
			require.Less(t, j, len(sample), "результат %q не является подпоследовательностью", q)
			j++
		}

		needle := strings.ToLower(q)
		for _, r := range got {
			hit := strings.Contains(strings.ToLower(r.ID), needle) ||
				strings.Contains(strings.ToLower(r.Nombre), needle)
			assert.True(t, hit, "запись %s не содержит %q", r.ID, q)
		}
	}
}

func TestFilter_Idempotent(t *testing.T) {
	q := query("ar", Criterion[record]{Field: byEstado, Value: "Abierto"})
	once := Filter(sample, q)
	twice := Filter(once, q)
	assert.Equal(t, once, twice)
}

func TestFilter_WildcardEqualsOmittedCriterion(t *testing.T) {
	without := Filter(sample, query("a"))
	for _, w := range []string{"todos", "Todos", "TODAS", "", "  "} {
		with := Filter(sample, query("a", Criterion[record]{Field: byDepto, Value: w}))
		assert.Equal(t, without, with, "wildcard %q", w)
	}
}

func TestFilter_CriteriaAreIndependentAnd(t *testing.T) {
	got := Filter(sample, query("",
		Criterion[record]{Field: byEstado, Value: "Abierto"},
		Criterion[record]{Field: byDepto, Value: "Sistemas"},
	))
	require.Len(t, got, 1)
	assert.Equal(t, "SOL-2024-003", got[0].ID)
}

func TestFilter_CriterionIsExactMatch(t *testing.T) {
	got := Filter(sample, query("", Criterion[record]{Field: byEstado, Value: "abierto"}))
	assert.Empty(t, got)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	input := append([]record(nil), sample...)
	got := Filter(input, query("luis"))
	require.Len(t, got, 1)
	got[0].Nombre = "cambiado"
	assert.Equal(t, sample, input)
}

func TestFilter_UnicodeFolding(t *testing.T) {
	items := []record{{ID: "USR-1", Nombre: "María Rodríguez"}}
	assert.Len(t, Filter(items, query("MARÍA")), 1)
	assert.Empty(t, Filter(items, query("maria")))
}

func TestCountAndCountBy(t *testing.T) {
	assert.Equal(t, 2, Count(sample, func(r record) bool { return r.Estado == "Abierto" }))
	assert.Equal(t, map[string]int{"Abierto": 2, "En Progreso": 1, "Resuelto": 1}, CountBy(sample, byEstado))
	assert.Equal(t, 0, Count([]record(nil), func(record) bool { return true }))
}
