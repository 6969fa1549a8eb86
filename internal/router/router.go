// Package router wires the HTTP surface: middleware chain, public auth
// routes, sitter-facing reads, and admin-gated writes.
package router

import (
	"sitterdesk/internal/handler"
	"sitterdesk/internal/i18n"
	"sitterdesk/internal/middleware"
	"sitterdesk/internal/services"
	"sitterdesk/internal/types"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine.
func NewRouter(
	serverHandler *handler.Server,
	configManager types.ConfigManager,
	sessionService *services.SessionService,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Logger(configManager.GetLogConfig()))
	router.Use(middleware.CORS(configManager.GetCORSConfig()))
	router.Use(middleware.RateLimiter(configManager.GetPerformanceConfig()))
	router.Use(middleware.SecurityHeaders())
	router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/api/export"})))

	registerSystemRoutes(router, serverHandler)
	registerAPIRoutes(router, serverHandler, configManager, sessionService)

	return router
}

func registerSystemRoutes(router *gin.Engine, serverHandler *handler.Server) {
	router.GET("/health", serverHandler.Health)
}

func registerAPIRoutes(
	router *gin.Engine,
	serverHandler *handler.Server,
	configManager types.ConfigManager,
	sessionService *services.SessionService,
) {
	api := router.Group("/api")
	api.Use(i18n.Middleware())

	authConfig := configManager.GetAuthConfig()

	// Public routes
	api.POST("/auth/login", serverHandler.Login)
	api.POST("/auth/logout", serverHandler.Logout)

	// Sitter-facing routes: session token or QR access parameter.
	portal := api.Group("")
	portal.Use(middleware.SessionAuth(authConfig, sessionService))
	registerPortalRoutes(portal, serverHandler)

	// Content edits additionally require the admin key.
	admin := portal.Group("")
	admin.Use(middleware.AdminAuth(authConfig))
	registerAdminRoutes(admin, serverHandler)
}

func registerPortalRoutes(api *gin.RouterGroup, serverHandler *handler.Server) {
	api.GET("/auth/session", serverHandler.CheckSession)

	api.GET("/property", serverHandler.GetProperty)
	api.GET("/alerts", serverHandler.ListAlerts)
	api.GET("/contacts", serverHandler.ListContacts)
	api.GET("/pets", serverHandler.ListPets)
	api.GET("/pets/:id", serverHandler.GetPet)
	api.GET("/appointments", serverHandler.ListAppointments)
	api.GET("/service-people", serverHandler.ListServicePeople)
	api.GET("/tasks", serverHandler.ListTasks)
	api.GET("/stays", serverHandler.ListStays)
	api.GET("/stays/current", serverHandler.CurrentStay)
	api.GET("/instructions", serverHandler.ListInstructions)
	api.GET("/schedule", serverHandler.GetSchedule)
}

func registerAdminRoutes(api *gin.RouterGroup, serverHandler *handler.Server) {
	api.PUT("/property", serverHandler.UpdateProperty)

	alerts := api.Group("/alerts")
	{
		alerts.POST("", serverHandler.CreateAlert)
		alerts.PUT("/:id", serverHandler.UpdateAlert)
		alerts.DELETE("/:id", serverHandler.DeleteAlert)
	}

	contacts := api.Group("/contacts")
	{
		contacts.POST("", serverHandler.CreateContact)
		contacts.PUT("/:id", serverHandler.UpdateContact)
		contacts.DELETE("/:id", serverHandler.DeleteContact)
	}

	pets := api.Group("/pets")
	{
		pets.POST("", serverHandler.CreatePet)
		pets.PUT("/:id", serverHandler.UpdatePet)
		pets.DELETE("/:id", serverHandler.DeletePet)
	}

	appointments := api.Group("/appointments")
	{
		appointments.POST("", serverHandler.CreateAppointment)
		appointments.PUT("/:id", serverHandler.UpdateAppointment)
		appointments.DELETE("/:id", serverHandler.DeleteAppointment)
	}

	servicePeople := api.Group("/service-people")
	{
		servicePeople.POST("", serverHandler.CreateServicePerson)
		servicePeople.PUT("/:id", serverHandler.UpdateServicePerson)
		servicePeople.DELETE("/:id", serverHandler.DeleteServicePerson)
	}

	tasks := api.Group("/tasks")
	{
		tasks.POST("", serverHandler.CreateTask)
		tasks.PUT("/:id", serverHandler.UpdateTask)
		tasks.DELETE("/:id", serverHandler.DeleteTask)
	}

	stays := api.Group("/stays")
	{
		stays.POST("", serverHandler.CreateStay)
		stays.PUT("/:id", serverHandler.UpdateStay)
		stays.DELETE("/:id", serverHandler.DeleteStay)
	}

	instructions := api.Group("/instructions")
	{
		instructions.POST("", serverHandler.CreateInstruction)
		instructions.PUT("/:id", serverHandler.UpdateInstruction)
		instructions.DELETE("/:id", serverHandler.DeleteInstruction)
	}

	api.GET("/export", serverHandler.ExportData)
	api.POST("/import", serverHandler.ImportData)
	api.GET("/access-logs", serverHandler.ListAccessLogs)
}
