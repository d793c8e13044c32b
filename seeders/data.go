// Package seeders содержит статические данные, которыми экраны наполняются при старте.
// Каждый вызов возвращает новую копию, поэтому изменения у вызывающего не влияют на источник.
package seeders

import (
	"github.com/aarondl/null/v8"

	"soporte-tecnico/internal/entities"
)

func Tickets() []entities.Ticket {
	return []entities.Ticket{
		{Folio: "SOL-2024-001", Fecha: "2024-12-15", Nombre: "Maria Garcia Lopez", Departamento: "Recursos Humanos", Equipo: "INV-4521", Prioridad: entities.PrioridadAlta, Estado: entities.EstadoTicketAbierto},
		{Folio: "SOL-2024-002", Fecha: "2024-12-14", Nombre: "Carlos Martinez", Departamento: "Contabilidad", Equipo: "INV-3312", Prioridad: entities.PrioridadMedia, Estado: entities.EstadoTicketEnProgreso},
		{Folio: "SOL-2024-003", Fecha: "2024-12-14", Nombre: "Ana Torres Ruiz", Departamento: "Sistemas", Equipo: "INV-1187", Prioridad: entities.PrioridadCritica, Estado: entities.EstadoTicketAbierto},
		{Folio: "SOL-2024-004", Fecha: "2024-12-13", Nombre: "Luis Hernandez", Departamento: "Direccion", Equipo: "INV-8834", Prioridad: entities.PrioridadBaja, Estado: entities.EstadoTicketResuelto},
		{Folio: "SOL-2024-005", Fecha: "2024-12-12", Nombre: "Patricia Gomez", Departamento: "Ventas", Equipo: "INV-2209", Prioridad: entities.PrioridadMedia, Estado: entities.EstadoTicketCerrado},
		{Folio: "SOL-2024-006", Fecha: "2024-12-11", Nombre: "Fernando Diaz Mora", Departamento: "Marketing", Equipo: "INV-5567", Prioridad: entities.PrioridadAlta, Estado: entities.EstadoTicketEnProgreso},
		{Folio: "SOL-2024-007", Fecha: "2024-12-10", Nombre: "Sofia Ramirez", Departamento: "Recursos Humanos", Equipo: "INV-9901", Prioridad: entities.PrioridadBaja, Estado: entities.EstadoTicketResuelto},
		{Folio: "SOL-2024-008", Fecha: "2024-12-09", Nombre: "Roberto Sanchez", Departamento: "Contabilidad", Equipo: "INV-7743", Prioridad: entities.PrioridadCritica, Estado: entities.EstadoTicketAbierto},
	}
}

// SolicitudDetalle - шаблон карточки заявки; folio подставляется из маршрута.
func SolicitudDetalle(folio string) entities.SolicitudDetalle {
	return entities.SolicitudDetalle{
		Folio:          folio,
		Fecha:          "2024-12-15",
		Tipo:           "Hardware",
		Departamento:   "Recursos Humanos",
		Prioridad:      entities.PrioridadAlta,
		Estado:         entities.EstadoTicketEnProgreso,
		NombreAfectado: "Maria Garcia Lopez",
		Correo:         "maria.garcia@company.com",
		Inventario:     "INV-2024-1234",
		Descripcion:    "La pantalla de mi computadora no enciende. He intentado reiniciar pero el problema persiste. El CPU está encendido pero no hay señal de video. Necesito solución urgente para continuar con mis labores.",
		Tecnico:        null.StringFrom("Carlos Martinez"),
		Diagnostico:    null.StringFrom("Se verificó la conexión de la pantalla y el cable de alimentación. Se identificó que el cable HDMI estaba defectuoso."),
		Solucion:       null.StringFrom("Se reemplazó el cable HDMI por uno nuevo. Se probó la conexión y la pantalla enciende correctamente. Sistema funcionando al 100%."),
	}
}

func MisSolicitudes() []entities.Solicitud {
	return []entities.Solicitud{
		{ID: "SOL-001", Folio: "SOL-2024-001", NombreAfectado: "Juan López García", TipoProblema: entities.TipoProblemaMantenimiento, Estado: entities.EstadoSolicitudEnProceso, FechaSolicitud: "2024-12-15", Prioridad: entities.PrioridadMedia, TipoSolicitud: entities.TipoSolicitudMantenimiento, Titulo: "Mantenimiento de Equipo", Descripcion: "Se necesita mantenimiento preventivo en el servidor."},
		{ID: "SOL-002", Folio: "SOL-2024-002", NombreAfectado: "María Rodríguez", TipoProblema: entities.TipoProblemaSistema, Estado: entities.EstadoSolicitudPendiente, FechaSolicitud: "2024-12-16", Prioridad: entities.PrioridadAlta, TipoSolicitud: entities.TipoSolicitudSoporte, Titulo: "Error en Sistema", Descripcion: "El sistema está presentando errores recurrentes."},
		{ID: "SOL-003", Folio: "SOL-2024-003", NombreAfectado: "Carlos Martínez", TipoProblema: entities.TipoProblemaRed, Estado: entities.EstadoSolicitudCompletada, FechaSolicitud: "2024-12-10", Prioridad: entities.PrioridadBaja, TipoSolicitud: entities.TipoSolicitudEquipo, Titulo: "Solicitud de Red", Descripcion: "Se necesita una nueva conexión de red."},
		{ID: "SOL-004", Folio: "SOL-2024-004", NombreAfectado: "Ana Fernández", TipoProblema: entities.TipoProblemaSistema, Estado: entities.EstadoSolicitudEnProceso, FechaSolicitud: "2024-12-14", Prioridad: entities.PrioridadMedia, TipoSolicitud: entities.TipoSolicitudSoporte, Titulo: "Soporte Técnico", Descripcion: "Se necesita soporte técnico urgente."},
		{ID: "SOL-005", Folio: "SOL-2024-005", NombreAfectado: "Pedro Sánchez", TipoProblema: entities.TipoProblemaRed, Estado: entities.EstadoSolicitudRechazada, FechaSolicitud: "2024-12-12", Prioridad: entities.PrioridadAlta, TipoSolicitud: entities.TipoSolicitudMantenimiento, Titulo: "Mantenimiento de Red", Descripcion: "La solicitud de mantenimiento de red fue rechazada."},
	}
}

func Materiales() []entities.Material {
	return []entities.Material{
		{ID: "MAT-001", Nombre: "Toner HP 26A", Cantidad: 3, UnidadMedida: entities.UnidadPieza, UmbralAlerta: 5, Fecha: "2024-12-10"},
		{ID: "MAT-002", Nombre: "Cable UTP Cat 6", Cantidad: 120, UnidadMedida: entities.UnidadMetro, UmbralAlerta: 50, Fecha: "2024-12-08"},
		{ID: "MAT-003", Nombre: "Memoria USB 32GB", Cantidad: 2, UnidadMedida: entities.UnidadPieza, UmbralAlerta: 5, Fecha: "2024-12-05"},
		{ID: "MAT-004", Nombre: "Hojas Carta", Cantidad: 15, UnidadMedida: entities.UnidadPaquete, UmbralAlerta: 10, Fecha: "2024-11-28"},
		{ID: "MAT-005", Nombre: "Conector RJ45", Cantidad: 8, UnidadMedida: entities.UnidadPieza, UmbralAlerta: 20, Fecha: "2024-11-25"},
		{ID: "MAT-006", Nombre: "Disco Duro 1TB", Cantidad: 4, UnidadMedida: entities.UnidadPieza, UmbralAlerta: 3, Fecha: "2024-11-20"},
		{ID: "MAT-007", Nombre: "Mouse Optico", Cantidad: 1, UnidadMedida: entities.UnidadPieza, UmbralAlerta: 5, Fecha: "2024-11-15"},
		{ID: "MAT-008", Nombre: "Teclado USB", Cantidad: 6, UnidadMedida: entities.UnidadPieza, UmbralAlerta: 5, Fecha: "2024-11-10"},
	}
}

func Equipos() []entities.Equipo {
	return []entities.Equipo{
		{NoInventario: "EQ-2024-001", TipoEquipo: entities.TipoEquipoComputo, Marca: "Dell", Modelo: "OptiPlex 7090", Responsable: "Maria Garcia Lopez", Estado: entities.EstadoEquipoActivo},
		{NoInventario: "EQ-2024-002", TipoEquipo: entities.TipoEquipoImpresora, Marca: "HP", Modelo: "LaserJet Pro M404n", Responsable: "Carlos Martinez", Estado: entities.EstadoEquipoActivo},
		{NoInventario: "EQ-2024-003", TipoEquipo: entities.TipoEquipoRedes, Marca: "Cisco", Modelo: "Catalyst 2960", Responsable: "Ana Torres Ruiz", Estado: entities.EstadoEquipoActivo},
		{NoInventario: "EQ-2024-004", TipoEquipo: entities.TipoEquipoComputo, Marca: "Lenovo", Modelo: "ThinkPad T14", Responsable: "Luis Hernandez", Estado: entities.EstadoEquipoEnReparacion},
		{NoInventario: "EQ-2024-005", TipoEquipo: entities.TipoEquipoImpresora, Marca: "Epson", Modelo: "EcoTank L3250", Responsable: "Patricia Gomez", Estado: entities.EstadoEquipoBaja},
		{NoInventario: "EQ-2024-006", TipoEquipo: entities.TipoEquipoComputo, Marca: "HP", Modelo: "ProBook 450 G9", Responsable: "Fernando Diaz Mora", Estado: entities.EstadoEquipoActivo},
		{NoInventario: "EQ-2024-007", TipoEquipo: entities.TipoEquipoRedes, Marca: "TP-Link", Modelo: "TL-SG1024", Responsable: "Sofia Ramirez", Estado: entities.EstadoEquipoActivo},
		{NoInventario: "EQ-2024-008", TipoEquipo: entities.TipoEquipoComputo, Marca: "Dell", Modelo: "Latitude 5530", Responsable: "Roberto Sanchez", Estado: entities.EstadoEquipoEnReparacion},
	}
}

// Usuarios - список экрана /usuarios.
func Usuarios() []entities.Usuario {
	return []entities.Usuario{
		usuario("USR-001", "Maria", "Garcia", "Lopez", "maria.garcia@empresa.com", "Recursos Humanos", entities.TipoUsuarioJefe, entities.EstadoUsuarioActivo, "2024-01-15"),
		usuario("USR-002", "Carlos", "Martinez", "Ruiz", "carlos.martinez@empresa.com", "Sistemas", entities.TipoUsuarioTecnico, entities.EstadoUsuarioActivo, "2024-02-20"),
		usuario("USR-003", "Ana", "Torres", "Ruiz", "ana.torres@empresa.com", "Sistemas", entities.TipoUsuarioCoordinador, entities.EstadoUsuarioActivo, "2024-03-10"),
		usuario("USR-004", "Luis", "Hernandez", "Diaz", "luis.hernandez@empresa.com", "Contabilidad", entities.TipoUsuarioTecnico, entities.EstadoUsuarioInactivo, "2024-04-05"),
		usuario("USR-005", "Patricia", "Gomez", "Sanchez", "patricia.gomez@empresa.com", "Ventas", entities.TipoUsuarioJefe, entities.EstadoUsuarioActivo, "2024-05-12"),
		usuario("USR-006", "Fernando", "Diaz", "Mora", "fernando.diaz@empresa.com", "Marketing", entities.TipoUsuarioCoordinador, entities.EstadoUsuarioBaja, "2024-06-18"),
		usuario("USR-007", "Sofia", "Ramirez", "Perez", "sofia.ramirez@empresa.com", "Recursos Humanos", entities.TipoUsuarioTecnico, entities.EstadoUsuarioActivo, "2024-07-22"),
		usuario("USR-008", "Roberto", "Sanchez", "Villa", "roberto.sanchez@empresa.com", "Direccion", entities.TipoUsuarioJefe, entities.EstadoUsuarioActivo, "2024-08-01"),
		usuario("USR-009", "Elena", "Castillo", "Reyes", "elena.castillo@empresa.com", "Sistemas", entities.TipoUsuarioTecnico, entities.EstadoUsuarioActivo, "2024-09-14"),
		usuario("USR-010", "Miguel", "Flores", "Ortega", "miguel.flores@empresa.com", "Contabilidad", entities.TipoUsuarioCoordinador, entities.EstadoUsuarioInactivo, "2024-10-03"),
	}
}

// UsuariosDetalle - отдельная выборка карточек пользователей с контактами и ролью.
// Экран списка и экран карточки держат независимые копии данных.
func UsuariosDetalle() map[string]entities.Usuario {
	withContact := func(u entities.Usuario, telefono, direccion string, rol entities.RolUsuario) entities.Usuario {
		u.Telefono = null.StringFrom(telefono)
		u.Direccion = null.StringFrom(direccion)
		u.Rol = null.StringFrom(string(rol))
		return u
	}
	return map[string]entities.Usuario{
		"USR-001": withContact(usuario("USR-001", "Maria", "Garcia", "Lopez", "maria.garcia@empresa.com", "Recursos Humanos", entities.TipoUsuarioJefe, entities.EstadoUsuarioActivo, "2024-01-15"),
			"+34 912 345 678", "Calle Principal 123, Madrid", entities.RolAdministrador),
		"USR-002": withContact(usuario("USR-002", "Carlos", "Martinez", "Ruiz", "carlos.martinez@empresa.com", "Sistemas", entities.TipoUsuarioTecnico, entities.EstadoUsuarioActivo, "2024-02-20"),
			"+34 923 456 789", "Avenida Tecnologia 456, Barcelona", entities.RolUsuarioBase),
		"USR-003": withContact(usuario("USR-003", "Ana", "Torres", "Ruiz", "ana.torres@empresa.com", "Sistemas", entities.TipoUsuarioCoordinador, entities.EstadoUsuarioActivo, "2024-03-10"),
			"+34 934 567 890", "Plaza Centro 789, Barcelona", entities.RolEditor),
	}
}

func usuario(id, nombres, ap1, ap2, correo, depto string, tipo entities.TipoUsuario, estado entities.EstadoUsuario, fecha string) entities.Usuario {
	return entities.Usuario{
		ID: id, Nombres: nombres, PrimerApellido: ap1, SegundoApellido: ap2,
		Correo: correo, Departamento: depto, TipoUsuario: tipo, Estado: estado, FechaRegistro: fecha,
	}
}

func Reportes() []entities.Reporte {
	return []entities.Reporte{
		{
			ID: "RPT-001", Folio: "SOL-2024-001", Fecha: "2024-12-15", Tecnico: "Juan Rodriguez", Departamento: "Recursos Humanos",
			Diagnostico:         "El equipo de escritorio presentaba fallas intermitentes de encendido. Se identifico que la fuente de poder mostraba signos de desgaste y voltaje inestable en la linea de 12V.",
			Solucion:            "Se reemplazo la fuente de poder por una nueva unidad de 500W certificada. Se verifico estabilidad de voltaje en todas las lineas y se realizo prueba de estres durante 2 horas sin incidencias.",
			DetallesAdicionales: "Se recomienda revisar la regulacion electrica del area de RH ya que se detectaron micro-variaciones de voltaje que podrian afectar otros equipos.",
			Estado:              entities.EstadoReporteResuelto,
		},
		{
			ID: "RPT-002", Folio: "SOL-2024-003", Fecha: "2024-12-14", Tecnico: "Ana Torres Ruiz", Departamento: "Sistemas",
			Diagnostico:         "Switch de red principal presento desconexiones aleatorias en puertos 12-18. Los logs muestran errores CRC y frame check en la interfaz.",
			Solucion:            "Se actualizo el firmware del switch Cisco Catalyst 2960 a la ultima version estable. Se reemplazaron 3 cables de patcheo danados y se reconfiguraron los puertos afectados.",
			DetallesAdicionales: "Pendiente monitorear durante 72 horas para confirmar estabilidad. Se programo revision preventiva del rack de comunicaciones para la proxima semana.",
			Estado:              entities.EstadoReporteEnRevision,
		},
		{
			ID: "RPT-003", Folio: "SOL-2024-002", Fecha: "2024-12-14", Tecnico: "Carlos Martinez", Departamento: "Contabilidad",
			Diagnostico:         "La impresora HP LaserJet no reconoce los cartuchos de toner nuevos. Se descarta problema de hardware del lector de chip.",
			Solucion:            "Se realizo reset de fabrica del modulo de reconocimiento de toner. Se actualizo el firmware de la impresora y se limpiaron los contactos del cartucho.",
			DetallesAdicionales: "El proveedor de toner generico ha presentado problemas de compatibilidad. Se sugiere migrar a toner original HP para evitar recurrencia.",
			Estado:              entities.EstadoReporteResuelto,
		},
		{
			ID: "RPT-004", Folio: "SOL-2024-006", Fecha: "2024-12-12", Tecnico: "Juan Rodriguez", Departamento: "Marketing",
			Diagnostico:         "Equipo portatil con pantalla azul recurrente (BSOD). El codigo de error apunta a un problema de driver de video NVIDIA.",
			Solucion:            "Se desinstalo el driver actual y se instalo la version estable recomendada por el fabricante. Se desactivo la actualizacion automatica de drivers de Windows Update para este dispositivo.",
			DetallesAdicionales: "Usuario reporta uso intensivo de software de diseno (Adobe Creative Suite). Se recomienda evaluar si el equipo actual cumple con los requisitos minimos o considerar upgrade de RAM.",
			Estado:              entities.EstadoReporteResuelto,
		},
		{
			ID: "RPT-005", Folio: "SOL-2024-008", Fecha: "2024-12-10", Tecnico: "Sofia Ramirez", Departamento: "Contabilidad",
			Diagnostico:         "Sistema de contabilidad no permite generar reportes fiscales. Error de conexion a la base de datos al ejecutar consultas complejas.",
			Solucion:            "",
			DetallesAdicionales: "Se ha escalado al proveedor del sistema contable. Ticket de soporte externo #EXT-4521 abierto. Tiempo estimado de respuesta: 48 horas.",
			Estado:              entities.EstadoReportePendiente,
		},
	}
}

func Departamentos() []entities.Departamento {
	return []entities.Departamento{
		{ID: 1, Nombre: "Sistemas", Sigla: "SIS", Estado: entities.EstadoRegistroActivo},
		{ID: 2, Nombre: "Recursos Humanos", Sigla: "RH", Estado: entities.EstadoRegistroActivo},
		{ID: 3, Nombre: "Finanzas", Sigla: "FIN", Estado: entities.EstadoRegistroActivo},
		{ID: 4, Nombre: "Logística", Sigla: "LOG", Estado: entities.EstadoRegistroActivo},
		{ID: 5, Nombre: "Ventas", Sigla: "VEN", Estado: entities.EstadoRegistroInactivo},
	}
}

func Etiquetas() []entities.Etiqueta {
	return []entities.Etiqueta{
		{ID: 1, Nombre: "Urgente", Color: "bg-red-100 text-red-800", Estado: entities.EstadoRegistroActivo},
		{ID: 2, Nombre: "Normal", Color: "bg-blue-100 text-blue-800", Estado: entities.EstadoRegistroActivo},
		{ID: 3, Nombre: "Baja Prioridad", Color: "bg-green-100 text-green-800", Estado: entities.EstadoRegistroActivo},
		{ID: 4, Nombre: "Pendiente", Color: "bg-yellow-100 text-yellow-800", Estado: entities.EstadoRegistroActivo},
	}
}

func Periodos() []entities.Periodo {
	return []entities.Periodo{
		{ID: 1, Nombre: "Enero 2024", FechaInicio: "2024-01-01", FechaFin: "2024-01-31", Estado: entities.EstadoRegistroActivo},
		{ID: 2, Nombre: "Febrero 2024", FechaInicio: "2024-02-01", FechaFin: "2024-02-29", Estado: entities.EstadoRegistroActivo},
		{ID: 3, Nombre: "Marzo 2024", FechaInicio: "2024-03-01", FechaFin: "2024-03-31", Estado: entities.EstadoRegistroInactivo},
	}
}
