package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"sitterdesk/internal/models"
	"sitterdesk/internal/types"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testPropertyID = "00000000-0000-0000-0000-000000000001"

// mockConfigManager implements types.ConfigManager for testing.
type mockConfigManager struct {
	auth types.AuthConfig
}

func (m *mockConfigManager) GetAuthConfig() types.AuthConfig { return m.auth }
func (m *mockConfigManager) GetCORSConfig() types.CORSConfig { return types.CORSConfig{} }
func (m *mockConfigManager) GetPerformanceConfig() types.PerformanceConfig {
	return types.PerformanceConfig{MaxConcurrentRequests: 100}
}
func (m *mockConfigManager) GetLogConfig() types.LogConfig           { return types.LogConfig{} }
func (m *mockConfigManager) GetDatabaseConfig() types.DatabaseConfig { return types.DatabaseConfig{} }
func (m *mockConfigManager) GetEncryptionKey() string                { return "" }
func (m *mockConfigManager) GetEffectiveServerConfig() types.ServerConfig {
	return types.ServerConfig{}
}
func (m *mockConfigManager) GetRedisDSN() string   { return "" }
func (m *mockConfigManager) GetPropertyID() string { return testPropertyID }
func (m *mockConfigManager) Validate() error       { return nil }
func (m *mockConfigManager) DisplayServerConfig()  {}
func (m *mockConfigManager) ReloadConfig() error   { return nil }

func newMockConfig() *mockConfigManager {
	return &mockConfigManager{auth: types.AuthConfig{
		SitePassword:      "house-password",
		AdminKey:          "admin-key",
		SessionTTLMinutes: 720,
	}}
}

var testDBCounter atomic.Int64

// setupTestDB creates an in-memory SQLite database with the schema
// migrated and the property row seeded. A named shared-cache DSN is
// used because every pooled connection to a plain ":memory:" DSN gets
// its own empty database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(models.All()...))
	require.NoError(t, db.Create(&models.Property{ID: testPropertyID, Name: "Test House"}).Error)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}
