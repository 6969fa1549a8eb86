package locales

// MessagesEnUS holds the English (US) translations.
var MessagesEnUS = map[string]string{
	// Common messages
	"success":        "Operation successful",
	"common.success": "Success",
	"error":          "Operation failed",
	"unauthorized":   "Unauthorized",
	"forbidden":      "Forbidden",
	"not_found":      "Not found",
	"bad_request":    "Bad request",
	"internal_error": "Internal error",

	// Authentication related
	"auth.invalid_password": "Invalid password",
	"auth.invalid_session":  "Session expired or invalid, please sign in again",
	"auth.admin_required":   "Admin key required",
	"auth.login_success":    "Welcome! You now have access to the house guide",
	"auth.logout_success":   "Signed out",

	// Entity messages
	"property.updated":     "Property details updated",
	"alert.created":        "Alert created",
	"alert.updated":        "Alert updated",
	"alert.deleted":        "Alert removed",
	"contact.created":      "Contact added",
	"contact.updated":      "Contact updated",
	"contact.deleted":      "Contact removed",
	"pet.created":          "Pet added",
	"pet.updated":          "Pet updated",
	"pet.deleted":          "Pet removed",
	"appointment.created":  "Appointment added",
	"appointment.updated":  "Appointment updated",
	"appointment.deleted":  "Appointment removed",
	"service.created":      "Service visit added",
	"service.updated":      "Service visit updated",
	"service.deleted":      "Service visit removed",
	"task.created":         "Task added",
	"task.updated":         "Task updated",
	"task.deleted":         "Task removed",
	"stay.created":         "Stay scheduled",
	"stay.updated":         "Stay updated",
	"stay.deleted":         "Stay removed",
	"stay.none_active":     "No sitter stay covers today",
	"instruction.created":  "Instruction added",
	"instruction.updated":  "Instruction updated",
	"instruction.deleted":  "Instruction removed",
	"export.completed":     "Export completed",
	"import.completed":     "Import completed",
	"validation.bad_date":  "Date must be in YYYY-MM-DD format",
	"validation.bad_range": "End date must not be before start date",
}
