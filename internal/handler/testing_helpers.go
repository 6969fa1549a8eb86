package handler

import (
	"testing"

	"sitterdesk/internal/config"
	"sitterdesk/internal/encryption"
	"sitterdesk/internal/models"
	"sitterdesk/internal/services"
	"sitterdesk/internal/store"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing (pure Go, no CGO)
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(models.All()...))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// setupTestServer creates a test server with a full service graph over
// an in-memory database and key-value store.
func setupTestServer(t *testing.T) *Server {
	t.Helper()

	require.NoError(t, RegisterValidators())

	db := setupTestDB(t)
	mockConfig := &config.MockConfig{
		SitePasswordValue: "test-site-password",
		AdminKeyValue:     "test-admin-key",
	}

	kv := store.NewMemoryStore()
	t.Cleanup(func() { kv.Close() })

	encSvc, err := encryption.NewService("")
	require.NoError(t, err)

	propertyService := services.NewPropertyService(db, encSvc, mockConfig)
	require.NoError(t, propertyService.EnsureExists())
	accessLogService := services.NewAccessLogService(db, mockConfig)

	return NewServer(NewServerParams{
		DB:                  db,
		Config:              mockConfig,
		PropertyService:     propertyService,
		PetService:          services.NewPetService(db, mockConfig),
		StayService:         services.NewStayService(db, mockConfig),
		ScheduleService:     services.NewScheduleService(db, mockConfig),
		SessionService:      services.NewSessionService(kv, mockConfig, accessLogService),
		AccessLogService:    accessLogService,
		ImportExportService: services.NewImportExportService(db, propertyService, mockConfig),
	})
}
