package locales

// MessagesEsES holds the Spanish translations.
var MessagesEsES = map[string]string{
	// Common messages
	"success":        "Operación exitosa",
	"common.success": "Éxito",
	"error":          "Operación fallida",
	"unauthorized":   "No autorizado",
	"forbidden":      "Prohibido",
	"not_found":      "No encontrado",
	"bad_request":    "Solicitud incorrecta",
	"internal_error": "Error interno",

	// Authentication related
	"auth.invalid_password": "Contraseña incorrecta",
	"auth.invalid_session":  "Sesión caducada o inválida, inicie sesión de nuevo",
	"auth.admin_required":   "Se requiere la clave de administrador",
	"auth.login_success":    "¡Bienvenido! Ya tiene acceso a la guía de la casa",
	"auth.logout_success":   "Sesión cerrada",

	// Entity messages
	"property.updated":     "Detalles de la propiedad actualizados",
	"alert.created":        "Alerta creada",
	"alert.updated":        "Alerta actualizada",
	"alert.deleted":        "Alerta eliminada",
	"contact.created":      "Contacto añadido",
	"contact.updated":      "Contacto actualizado",
	"contact.deleted":      "Contacto eliminado",
	"pet.created":          "Mascota añadida",
	"pet.updated":          "Mascota actualizada",
	"pet.deleted":          "Mascota eliminada",
	"appointment.created":  "Cita añadida",
	"appointment.updated":  "Cita actualizada",
	"appointment.deleted":  "Cita eliminada",
	"service.created":      "Visita de servicio añadida",
	"service.updated":      "Visita de servicio actualizada",
	"service.deleted":      "Visita de servicio eliminada",
	"task.created":         "Tarea añadida",
	"task.updated":         "Tarea actualizada",
	"task.deleted":         "Tarea eliminada",
	"stay.created":         "Estancia programada",
	"stay.updated":         "Estancia actualizada",
	"stay.deleted":         "Estancia eliminada",
	"stay.none_active":     "Ninguna estancia de cuidador cubre el día de hoy",
	"instruction.created":  "Instrucción añadida",
	"instruction.updated":  "Instrucción actualizada",
	"instruction.deleted":  "Instrucción eliminada",
	"export.completed":     "Exportación completada",
	"import.completed":     "Importación completada",
	"validation.bad_date":  "La fecha debe tener el formato YYYY-MM-DD",
	"validation.bad_range": "La fecha final no puede ser anterior a la inicial",
}
