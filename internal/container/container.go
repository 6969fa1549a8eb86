// Package container wires application dependencies together.
package container

import (
	"sitterdesk/internal/app"
	"sitterdesk/internal/config"
	"sitterdesk/internal/db"
	"sitterdesk/internal/encryption"
	"sitterdesk/internal/handler"
	"sitterdesk/internal/router"
	"sitterdesk/internal/services"
	"sitterdesk/internal/store"
	"sitterdesk/internal/types"

	"go.uber.org/dig"
	"gorm.io/gorm"
)

// BuildContainer creates and configures the dependency injection container.
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	providers := []any{
		// Infrastructure
		db.NewDB,
		store.NewStore,
		newEncryptionService,

		// Services
		services.NewAccessLogService,
		services.NewSessionService,
		services.NewPropertyService,
		services.NewPetService,
		services.NewStayService,
		services.NewScheduleService,
		services.NewImportExportService,

		// HTTP layer
		newServerHandler,
		router.NewRouter,

		// Application
		app.NewApp,
	}

	if err := container.Provide(config.NewManager, dig.As(new(types.ConfigManager))); err != nil {
		return nil, err
	}

	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return nil, err
		}
	}

	return container, nil
}

func newEncryptionService(configManager types.ConfigManager) (encryption.Service, error) {
	return encryption.NewService(configManager.GetEncryptionKey())
}

func newServerHandler(
	database *gorm.DB,
	configManager types.ConfigManager,
	propertyService *services.PropertyService,
	petService *services.PetService,
	stayService *services.StayService,
	scheduleService *services.ScheduleService,
	sessionService *services.SessionService,
	accessLogService *services.AccessLogService,
	importExportService *services.ImportExportService,
) *handler.Server {
	return handler.NewServer(handler.NewServerParams{
		DB:                  database,
		Config:              configManager,
		PropertyService:     propertyService,
		PetService:          petService,
		StayService:         stayService,
		ScheduleService:     scheduleService,
		SessionService:      sessionService,
		AccessLogService:    accessLogService,
		ImportExportService: importExportService,
	})
}
