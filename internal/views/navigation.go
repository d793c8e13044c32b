package views

import "strings"

type NavItem struct {
	Label  string `json:"label"`
	Icon   string `json:"icon"`
	Href   string `json:"href"`
	Active bool   `json:"active"`
}

type NavSection struct {
	Title string    `json:"title,omitempty"`
	Items []NavItem `json:"items"`
}

var sidebar = []NavSection{
	{Items: []NavItem{
		{Label: "Inicio", Icon: "home", Href: "/"},
		{Label: "Dashboard", Icon: "layout-dashboard", Href: "/"},
		{Label: "Usuarios", Icon: "users", Href: "/usuarios"},
	}},
	{Title: "Inventarios", Items: []NavItem{
		{Label: "Materiales", Icon: "package", Href: "/inventarios?tab=materiales"},
		{Label: "Equipos", Icon: "monitor", Href: "/inventarios?tab=equipos"},
	}},
	{Title: "Mesa de Ayuda", Items: []NavItem{
		{Label: "Mis Solicitudes", Icon: "file-text", Href: "/mis-solicitudes"},
		{Label: "Solicitudes", Icon: "clipboard-list", Href: "/solicitudes"},
		{Label: "Reportes", Icon: "bar-chart-3", Href: "/reportes"},
	}},
	{Title: "Adicionales", Items: []NavItem{
		{Label: "Departamentos", Icon: "building-2", Href: "/adicionales?catalogo=departamentos"},
		{Label: "Etiquetas", Icon: "tags", Href: "/adicionales?catalogo=etiquetas"},
		{Label: "Periodo", Icon: "calendar-days", Href: "/adicionales?catalogo=periodos"},
		{Label: "Responsables equipo", Icon: "user-cog", Href: "/adicionales"},
		{Label: "Catalogos", Icon: "book-open", Href: "/adicionales"},
	}},
}

// Navigation возвращает разделы бокового меню; Active сравнивает только путь.
// Вложенные страницы (/usuarios/USR-001) подсвечивают свой раздел.
func Navigation(currentPath string) []NavSection {
	out := make([]NavSection, len(sidebar))
	for i, section := range sidebar {
		items := make([]NavItem, len(section.Items))
		for j, item := range section.Items {
			path, _, _ := strings.Cut(item.Href, "?")
			item.Active = path == currentPath || (path != "/" && strings.HasPrefix(currentPath, path+"/"))
			items[j] = item
		}
		out[i] = NavSection{Title: section.Title, Items: items}
	}
	return out
}
