package views

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"soporte-tecnico/internal/entities"
	"soporte-tecnico/seeders"
)

func materialRenderer() Renderer[entities.Material] {
	return Renderer[entities.Material]{
		Columns: []Column[entities.Material]{
			{Key: "id", Label: "ID", Text: func(m entities.Material) string { return m.ID }},
			{Key: "nombre", Label: "Nombre", Text: func(m entities.Material) string { return m.Nombre }},
			{Key: "stock", Label: "Stock", Text: func(m entities.Material) string { return string(m.StockLevel()) },
				Style: func(m entities.Material) string { return m.StockLevel().Style() }},
		},
		ID:        func(m entities.Material) string { return m.ID },
		Title:     func(m entities.Material) string { return m.Nombre },
		Highlight: entities.Material.IsLowStock,
	}
}

func TestRenderer_RowsAndCardsMatch(t *testing.T) {
	items := seeders.Materiales()
	layout := materialRenderer().Render(items)

	require.Len(t, layout.Rows, len(items))
	require.Len(t, layout.Cards, len(items))
	assert.Equal(t, layout.Rows, layout.Cards)
	assert.Equal(t, []Header{{Key: "id", Label: "ID"}, {Key: "nombre", Label: "Nombre"}, {Key: "stock", Label: "Stock"}}, layout.Columns)

	for i, m := range items {
		assert.Equal(t, m.ID, layout.Rows[i].ID)
		assert.Equal(t, m.IsLowStock(), layout.Rows[i].Highlight)
		assert.Equal(t, DefaultActions, layout.Cards[i].Actions)
	}
	assert.Equal(t, "text-red-600", layout.Rows[0].Cells[2].Style)
}

func TestRenderer_CardsDoNotShareCells(t *testing.T) {
	layout := materialRenderer().Render(seeders.Materiales()[:1])
	layout.Rows[0].Cells[0].Text = "otro"
	assert.Equal(t, "MAT-001", layout.Cards[0].Cells[0].Text)
}

func TestRenderer_Empty(t *testing.T) {
	layout := materialRenderer().Render(nil)
	assert.Empty(t, layout.Rows)
	assert.Empty(t, layout.Cards)
	assert.Len(t, layout.Columns, 3)
}

func TestFeed_ToggleRevealsAndHides(t *testing.T) {
	reporte := seeders.Reportes()[0]
	original := reporte
	feed := NewFeed()

	collapsed := feed.Card(reporte)
	assert.False(t, collapsed.Expanded)
	assert.True(t, collapsed.Clamped)
	assert.Empty(t, collapsed.Solucion)
	assert.Empty(t, collapsed.DetallesAdicionales)

	feed.Toggle(reporte.ID)
	expanded := feed.Card(reporte)
	assert.True(t, expanded.Expanded)
	assert.False(t, expanded.Clamped)
	assert.Equal(t, reporte.Solucion, expanded.Solucion)
	assert.Equal(t, reporte.DetallesAdicionales, expanded.DetallesAdicionales)

	feed.Toggle(reporte.ID)
	again := feed.Card(reporte)
	assert.Equal(t, collapsed, again)
	assert.Equal(t, original, reporte)
}

func TestFeed_IndependentCards(t *testing.T) {
	feed := ParseAbiertos("RPT-001, RPT-003,")
	assert.True(t, feed.IsOpen("RPT-001"))
	assert.True(t, feed.IsOpen("RPT-003"))
	assert.False(t, feed.IsOpen("RPT-002"))

	feed.Toggle("RPT-002")
	assert.Equal(t, []string{"RPT-001", "RPT-002", "RPT-003"}, feed.Open())
}

func TestFeed_EmptySolucionStaysHidden(t *testing.T) {
	var sinSolucion entities.Reporte
	for _, r := range seeders.Reportes() {
		if r.Solucion == "" {
			sinSolucion = r
		}
	}
	require.NotEmpty(t, sinSolucion.ID)

	card := NewFeed(sinSolucion.ID).Card(sinSolucion)
	assert.True(t, card.Expanded)
	assert.Empty(t, card.Solucion)
	assert.Equal(t, sinSolucion.DetallesAdicionales, card.DetallesAdicionales)
}

func TestFeed_ToggleLink(t *testing.T) {
	feed := NewFeed("RPT-001")
	assert.Equal(t, "", feed.Card(entities.Reporte{ID: "RPT-001"}).ToggleAbiertos)
	assert.Equal(t, "RPT-001,RPT-002", feed.Card(entities.Reporte{ID: "RPT-002"}).ToggleAbiertos)
	assert.Equal(t, []string{"RPT-001"}, feed.Open(), "building links must not toggle the feed")
}

func TestNavigation_Active(t *testing.T) {
	active := func(path string) []string {
		var labels []string
		for _, s := range Navigation(path) {
			for _, it := range s.Items {
				if it.Active {
					labels = append(labels, it.Label)
				}
			}
		}
		return labels
	}

	assert.Equal(t, []string{"Usuarios"}, active("/usuarios/USR-001"))
	assert.Equal(t, []string{"Materiales", "Equipos"}, active("/inventarios"))
	assert.Equal(t, []string{"Reportes"}, active("/reportes"))
	assert.Len(t, Navigation("/"), 4)
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "8 solicitudes encontradas", Found(8, "solicitud", "solicitudes", true))
	assert.Equal(t, "1 solicitud encontrada", Found(1, "solicitud", "solicitudes", true))
	assert.Equal(t, "0 materiales encontrados", Found(0, "material", "materiales", false))
	assert.Equal(t, "1 pendiente", Counted(1, "pendiente", "pendientes"))
}

func TestWriteXLSX(t *testing.T) {
	layout := materialRenderer().Render(seeders.Materiales()[:2])

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, "Materiales", layout))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Materiales")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"ID", "Nombre", "Stock"}, rows[0])
	assert.Equal(t, "MAT-001", rows[1][0])
	assert.Equal(t, "bajo", rows[1][2])
}

func TestWriteXLSX_InvalidSheetName(t *testing.T) {
	layout := materialRenderer().Render(seeders.Materiales()[:1])

	var buf bytes.Buffer
	assert.Error(t, WriteXLSX(&buf, "Hoja[1]", layout))
}

func TestTemplateRenderer_Lista(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)

	layout := materialRenderer().Render(seeders.Materiales())
	page := Page{
		Title:    "Inventarios",
		Path:     "/inventarios",
		Identity: entities.Identity{Nombre: "Juan Rodriguez", Correo: "admin@helpdesk.com"},
		Nav:      Navigation("/inventarios"),
		Filters:  []FilterControl{NewFilterControl("unidad", "Unidad", "Todas", "metro", []string{"Pieza", "Metro"})},
		Summary:  []string{Found(8, "material", "materiales", false)},
		Layout:   &layout,
	}

	var buf bytes.Buffer
	c := echo.New().NewContext(httptest.NewRequest("GET", "/inventarios", nil), httptest.NewRecorder())
	require.NoError(t, r.Render(&buf, PageLista, page, c))

	html := buf.String()
	assert.Contains(t, html, "hidden md:block")
	assert.Contains(t, html, "md:hidden")
	assert.Contains(t, html, "8 materiales encontrados")
	assert.Contains(t, html, `<option value="metro" selected>Metro</option>`)
	// строка таблицы, заголовок карточки и поле карточки
	assert.Equal(t, 3, strings.Count(html, "Toner HP 26A"))
}

func TestTemplateRenderer_Unknown(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)
	c := echo.New().NewContext(httptest.NewRequest("GET", "/", nil), httptest.NewRecorder())
	assert.Error(t, r.Render(&bytes.Buffer{}, "nada", Page{}, c))
}
