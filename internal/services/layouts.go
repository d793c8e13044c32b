package services

import (
	"strconv"

	"soporte-tecnico/internal/entities"
	"soporte-tecnico/internal/views"
)

// Колонки каждого экрана; одна декларация на таблицу и карточки.

var ticketLayout = views.Renderer[entities.Ticket]{
	Entity: "solicitud",
	Columns: []views.Column[entities.Ticket]{
		{Key: "folio", Label: "Folio", Text: func(t entities.Ticket) string { return t.Folio }},
		{Key: "fecha", Label: "Fecha", Text: func(t entities.Ticket) string { return t.Fecha }},
		{Key: "nombre", Label: "Nombre", Text: func(t entities.Ticket) string { return t.Nombre }},
		{Key: "departamento", Label: "Departamento", Text: func(t entities.Ticket) string { return t.Departamento }},
		{Key: "equipo", Label: "Equipo", Text: func(t entities.Ticket) string { return t.Equipo }},
		{Key: "prioridad", Label: "Prioridad", Text: func(t entities.Ticket) string { return string(t.Prioridad) },
			Style: func(t entities.Ticket) string { return t.Prioridad.Style() }},
		{Key: "estado", Label: "Estado", Text: func(t entities.Ticket) string { return string(t.Estado) },
			Style: func(t entities.Ticket) string { return t.Estado.Style() }},
	},
	ID:    func(t entities.Ticket) string { return t.Folio },
	Title: func(t entities.Ticket) string { return t.Folio },
}

var solicitudLayout = views.Renderer[entities.Solicitud]{
	Entity: "solicitud",
	Columns: []views.Column[entities.Solicitud]{
		{Key: "folio", Label: "Folio", Text: func(s entities.Solicitud) string { return s.Folio }},
		{Key: "titulo", Label: "Título", Text: func(s entities.Solicitud) string { return s.Titulo }},
		{Key: "nombre_afectado", Label: "Afectado", Text: func(s entities.Solicitud) string { return s.NombreAfectado }},
		{Key: "tipo_problema", Label: "Tipo de problema", Text: func(s entities.Solicitud) string { return string(s.TipoProblema) },
			Style: func(s entities.Solicitud) string { return s.TipoProblema.Style() }},
		{Key: "tipo_solicitud", Label: "Tipo de solicitud", Text: func(s entities.Solicitud) string { return string(s.TipoSolicitud) },
			Style: func(s entities.Solicitud) string { return s.TipoSolicitud.Style() }},
		{Key: "prioridad", Label: "Prioridad", Text: func(s entities.Solicitud) string { return string(s.Prioridad) },
			Style: func(s entities.Solicitud) string { return s.Prioridad.Style() }},
		{Key: "fecha_solicitud", Label: "Fecha", Text: func(s entities.Solicitud) string { return s.FechaSolicitud }},
		{Key: "estado", Label: "Estado", Text: func(s entities.Solicitud) string { return string(s.Estado) },
			Style: func(s entities.Solicitud) string { return s.Estado.Style() }},
	},
	ID:    func(s entities.Solicitud) string { return s.Folio },
	Title: func(s entities.Solicitud) string { return s.Titulo },
	// Свои заявки пользователь только просматривает.
	Actions: []views.Action{views.ActionVer},
}

var materialLayout = views.Renderer[entities.Material]{
	Entity: "material",
	Columns: []views.Column[entities.Material]{
		{Key: "id", Label: "ID", Text: func(m entities.Material) string { return m.ID }},
		{Key: "nombre", Label: "Nombre", Text: func(m entities.Material) string { return m.Nombre }},
		{Key: "cantidad", Label: "Cantidad", Text: func(m entities.Material) string { return strconv.Itoa(m.Cantidad) },
			Style: func(m entities.Material) string { return m.StockLevel().Style() }},
		{Key: "unidad_medida", Label: "Unidad", Text: func(m entities.Material) string { return string(m.UnidadMedida) }},
		{Key: "umbral_alerta", Label: "Umbral de alerta", Text: func(m entities.Material) string { return strconv.Itoa(m.UmbralAlerta) }},
		{Key: "stock", Label: "Stock", Text: stockText, Style: stockBadge},
		{Key: "fecha", Label: "Fecha", Text: func(m entities.Material) string { return m.Fecha }},
	},
	ID:        func(m entities.Material) string { return m.ID },
	Title:     func(m entities.Material) string { return m.Nombre },
	Highlight: entities.Material.IsLowStock,
}

func stockText(m entities.Material) string {
	if m.IsLowStock() {
		return "Bajo stock"
	}
	return "Normal"
}

func stockBadge(m entities.Material) string {
	if m.IsLowStock() {
		return "bg-red-100 text-red-700 border-red-200"
	}
	return "bg-emerald-100 text-emerald-700 border-emerald-200"
}

var equipoLayout = views.Renderer[entities.Equipo]{
	Entity: "equipo",
	Columns: []views.Column[entities.Equipo]{
		{Key: "no_inventario", Label: "No. Inventario", Text: func(e entities.Equipo) string { return e.NoInventario }},
		{Key: "tipo_equipo", Label: "Tipo", Text: func(e entities.Equipo) string { return string(e.TipoEquipo) },
			Style: func(e entities.Equipo) string { return e.TipoEquipo.Style() }},
		{Key: "marca", Label: "Marca", Text: func(e entities.Equipo) string { return e.Marca }},
		{Key: "modelo", Label: "Modelo", Text: func(e entities.Equipo) string { return e.Modelo }},
		{Key: "responsable", Label: "Responsable", Text: func(e entities.Equipo) string { return e.Responsable }},
		{Key: "estado", Label: "Estado", Text: func(e entities.Equipo) string { return string(e.Estado) },
			Style: func(e entities.Equipo) string { return e.Estado.Style() }},
	},
	ID:    func(e entities.Equipo) string { return e.NoInventario },
	Title: func(e entities.Equipo) string { return e.Marca + " " + e.Modelo },
}

var usuarioLayout = views.Renderer[entities.Usuario]{
	Entity: "usuario",
	Columns: []views.Column[entities.Usuario]{
		{Key: "id", Label: "ID", Text: func(u entities.Usuario) string { return u.ID }},
		{Key: "nombre", Label: "Nombre", Text: entities.Usuario.FullName},
		{Key: "correo", Label: "Correo", Text: func(u entities.Usuario) string { return u.Correo }},
		{Key: "departamento", Label: "Departamento", Text: func(u entities.Usuario) string { return u.Departamento }},
		{Key: "tipo_usuario", Label: "Tipo", Text: func(u entities.Usuario) string { return string(u.TipoUsuario) },
			Style: func(u entities.Usuario) string { return u.TipoUsuario.Style() }},
		{Key: "estado", Label: "Estado", Text: func(u entities.Usuario) string { return string(u.Estado) },
			Style: func(u entities.Usuario) string { return u.Estado.Style() }},
		{Key: "fecha_registro", Label: "Registro", Text: func(u entities.Usuario) string { return u.FechaRegistro }},
	},
	ID:    func(u entities.Usuario) string { return u.ID },
	Title: entities.Usuario.FullName,
}

func itoa(id int) string { return strconv.Itoa(id) }

var departamentoLayout = views.Renderer[entities.Departamento]{
	Entity: "departamento",
	Columns: []views.Column[entities.Departamento]{
		{Key: "id", Label: "ID", Text: func(d entities.Departamento) string { return itoa(d.ID) }},
		{Key: "nombre", Label: "Nombre", Text: func(d entities.Departamento) string { return d.Nombre }},
		{Key: "sigla", Label: "Sigla", Text: func(d entities.Departamento) string { return d.Sigla }},
		{Key: "estado", Label: "Estado", Text: func(d entities.Departamento) string { return string(d.Estado) },
			Style: func(d entities.Departamento) string { return d.Estado.Style() }},
	},
	ID:    func(d entities.Departamento) string { return itoa(d.ID) },
	Title: func(d entities.Departamento) string { return d.Nombre },
}

var etiquetaLayout = views.Renderer[entities.Etiqueta]{
	Entity: "etiqueta",
	Columns: []views.Column[entities.Etiqueta]{
		{Key: "id", Label: "ID", Text: func(e entities.Etiqueta) string { return itoa(e.ID) }},
		{Key: "nombre", Label: "Nombre", Text: func(e entities.Etiqueta) string { return e.Nombre },
			Style: func(e entities.Etiqueta) string { return e.Color }},
		{Key: "estado", Label: "Estado", Text: func(e entities.Etiqueta) string { return string(e.Estado) },
			Style: func(e entities.Etiqueta) string { return e.Estado.Style() }},
	},
	ID:    func(e entities.Etiqueta) string { return itoa(e.ID) },
	Title: func(e entities.Etiqueta) string { return e.Nombre },
}

var periodoLayout = views.Renderer[entities.Periodo]{
	Entity: "periodo",
	Columns: []views.Column[entities.Periodo]{
		{Key: "id", Label: "ID", Text: func(p entities.Periodo) string { return itoa(p.ID) }},
		{Key: "nombre", Label: "Nombre", Text: func(p entities.Periodo) string { return p.Nombre }},
		{Key: "fecha_inicio", Label: "Inicio", Text: func(p entities.Periodo) string { return p.FechaInicio }},
		{Key: "fecha_fin", Label: "Fin", Text: func(p entities.Periodo) string { return p.FechaFin }},
		{Key: "estado", Label: "Estado", Text: func(p entities.Periodo) string { return string(p.Estado) },
			Style: func(p entities.Periodo) string { return p.Estado.Style() }},
	},
	ID:    func(p entities.Periodo) string { return itoa(p.ID) },
	Title: func(p entities.Periodo) string { return p.Nombre },
}
