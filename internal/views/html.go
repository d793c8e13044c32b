package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/labstack/echo/v4"

	"soporte-tecnico/internal/entities"
)

//go:embed templates/*.html
var templateFS embed.FS

// Страницы; каждая собирается вместе с base.html и partials.html.
const (
	PageLista            = "lista"
	PageSolicitudDetalle = "solicitud_detalle"
	PageUsuarioDetalle   = "usuario_detalle"
	PageUsuarioRegistrar = "usuario_registrar"
	PageReportes         = "reportes"
)

var pages = []string{PageLista, PageSolicitudDetalle, PageUsuarioDetalle, PageUsuarioRegistrar, PageReportes}

type Option struct {
	Value    string
	Label    string
	Selected bool
}

// FilterControl - селект категориального фильтра; первое значение всегда "todos".
type FilterControl struct {
	Name    string
	Label   string
	Options []Option
}

// NewFilterControl строит селект из подписей; value - slug подписи.
func NewFilterControl(name, label, allLabel, selected string, labels []string) FilterControl {
	fc := FilterControl{Name: name, Label: label}
	sel := entities.Slug(selected)
	fc.Options = append(fc.Options, Option{Value: "todos", Label: allLabel, Selected: sel == "" || sel == "todos"})
	for _, l := range labels {
		v := entities.Slug(l)
		fc.Options = append(fc.Options, Option{Value: v, Label: l, Selected: v == sel || strings.EqualFold(l, selected)})
	}
	return fc
}

// Page - данные любого экрана.
type Page struct {
	Title    string
	Subtitle string
	Path     string
	Identity entities.Identity
	Nav      []NavSection
	Tabs     []NavItem
	TabParam string
	Tab      string
	Search   string
	Filters  []FilterControl
	Summary  []string
	Layout   *Layout
	Feed     []FeedCard
	Message  string
	Body     interface{}
}

type TemplateRenderer struct {
	templates map[string]*template.Template
}

var funcs = template.FuncMap{
	"join": strings.Join,
	"inc":  func(n int) int { return n + 1 },
}

func NewTemplateRenderer() (*TemplateRenderer, error) {
	r := &TemplateRenderer{templates: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS,
			"templates/base.html", "templates/partials.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("plantilla %s: %w", name, err)
		}
		r.templates[name] = t
	}
	return r, nil
}

// Render реализует echo.Renderer.
func (r *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	t, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("plantilla desconocida: %s", name)
	}
	return t.ExecuteTemplate(w, "base", data)
}
