// Package config provides the environment-backed configuration manager.
package config

import (
	"fmt"
	"os"
	"sync"

	"sitterdesk/internal/types"
	"sitterdesk/internal/utils"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// DefaultPropertyID is the single property row the portal serves when no
// PROPERTY_ID is configured. It matches the seed row created at startup.
const DefaultPropertyID = "00000000-0000-0000-0000-000000000001"

// Config aggregates all configuration sections.
type Config struct {
	Server        types.ServerConfig      `json:"server"`
	Auth          types.AuthConfig        `json:"auth"`
	CORS          types.CORSConfig        `json:"cors"`
	Performance   types.PerformanceConfig `json:"performance"`
	Log           types.LogConfig         `json:"log"`
	Database      types.DatabaseConfig    `json:"database"`
	RedisDSN      string                  `json:"redis_dsn"`
	EncryptionKey string                  `json:"-"`
	PropertyID    string                  `json:"property_id"`
}

// Manager implements types.ConfigManager on top of environment variables.
type Manager struct {
	mu     sync.RWMutex
	config *Config
}

// NewManager creates a new configuration manager and loads the configuration.
func NewManager() (*Manager, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using system environment variables")
	}

	manager := &Manager{}
	if err := manager.ReloadConfig(); err != nil {
		return nil, err
	}
	return manager, nil
}

// ReloadConfig re-reads configuration from the environment and validates it.
func (m *Manager) ReloadConfig() error {
	config := &Config{
		Server: types.ServerConfig{
			Port:                    utils.ParseInteger(os.Getenv("PORT"), 3001),
			Host:                    utils.GetEnvOrDefault("HOST", "0.0.0.0"),
			ReadTimeout:             utils.ParseInteger(os.Getenv("SERVER_READ_TIMEOUT"), 60),
			WriteTimeout:            utils.ParseInteger(os.Getenv("SERVER_WRITE_TIMEOUT"), 60),
			IdleTimeout:             utils.ParseInteger(os.Getenv("SERVER_IDLE_TIMEOUT"), 120),
			GracefulShutdownTimeout: utils.ParseInteger(os.Getenv("SERVER_GRACEFUL_SHUTDOWN_TIMEOUT"), 10),
		},
		Auth: types.AuthConfig{
			SitePassword:      os.Getenv("SITE_PASSWORD"),
			AdminKey:          os.Getenv("ADMIN_KEY"),
			SessionTTLMinutes: utils.ParseInteger(os.Getenv("SESSION_TTL_MINUTES"), 720),
		},
		CORS: types.CORSConfig{
			Enabled:          utils.ParseBoolean(os.Getenv("ENABLE_CORS"), true),
			AllowedOrigins:   utils.ParseArray(utils.GetEnvOrDefault("ALLOWED_ORIGINS", "*")),
			AllowedMethods:   utils.ParseArray(utils.GetEnvOrDefault("ALLOWED_METHODS", "GET,POST,PUT,DELETE,OPTIONS")),
			AllowedHeaders:   utils.ParseArray(utils.GetEnvOrDefault("ALLOWED_HEADERS", "*")),
			AllowCredentials: utils.ParseBoolean(os.Getenv("ALLOW_CREDENTIALS"), false),
		},
		Performance: types.PerformanceConfig{
			MaxConcurrentRequests: utils.ParseInteger(os.Getenv("MAX_CONCURRENT_REQUESTS"), 100),
		},
		Log: types.LogConfig{
			Level:      utils.GetEnvOrDefault("LOG_LEVEL", "info"),
			Format:     utils.GetEnvOrDefault("LOG_FORMAT", "text"),
			EnableFile: utils.ParseBoolean(os.Getenv("LOG_ENABLE_FILE"), false),
			FilePath:   utils.GetEnvOrDefault("LOG_FILE_PATH", "./data/logs/app.log"),
		},
		Database: types.DatabaseConfig{
			DSN: utils.GetEnvOrDefault("DATABASE_DSN", "./data/sitterdesk.db"),
		},
		RedisDSN:      os.Getenv("REDIS_DSN"),
		EncryptionKey: os.Getenv("ENCRYPTION_KEY"),
		PropertyID:    utils.GetEnvOrDefault("PROPERTY_ID", DefaultPropertyID),
	}

	m.mu.Lock()
	m.config = config
	m.mu.Unlock()

	return m.Validate()
}

// Validate checks configuration for invalid or missing values.
func (m *Manager) Validate() error {
	m.mu.RLock()
	config := m.config
	m.mu.RUnlock()

	if config.Server.Port < 1 || config.Server.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got: %d", config.Server.Port)
	}
	if config.Auth.SitePassword == "" {
		return fmt.Errorf("SITE_PASSWORD is required")
	}
	if len(config.Auth.SitePassword) < 8 {
		return fmt.Errorf("SITE_PASSWORD must be at least 8 characters")
	}
	if config.Auth.AdminKey == "" {
		return fmt.Errorf("ADMIN_KEY is required")
	}
	if config.Auth.SessionTTLMinutes < 1 {
		return fmt.Errorf("session TTL cannot be less than 1 minute")
	}
	if config.Performance.MaxConcurrentRequests < 1 {
		return fmt.Errorf("max concurrent requests cannot be less than 1")
	}
	if config.Database.DSN == "" {
		return fmt.Errorf("DATABASE_DSN is required")
	}
	return nil
}

// GetAuthConfig returns the portal access configuration.
func (m *Manager) GetAuthConfig() types.AuthConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.Auth
}

// GetCORSConfig returns the CORS configuration.
func (m *Manager) GetCORSConfig() types.CORSConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.CORS
}

// GetPerformanceConfig returns the performance configuration.
func (m *Manager) GetPerformanceConfig() types.PerformanceConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.Performance
}

// GetLogConfig returns the logging configuration.
func (m *Manager) GetLogConfig() types.LogConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.Log
}

// GetDatabaseConfig returns the database configuration.
func (m *Manager) GetDatabaseConfig() types.DatabaseConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.Database
}

// GetEncryptionKey returns the at-rest encryption key ("" disables encryption).
func (m *Manager) GetEncryptionKey() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.EncryptionKey
}

// GetEffectiveServerConfig returns the server configuration.
func (m *Manager) GetEffectiveServerConfig() types.ServerConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.Server
}

// GetRedisDSN returns the Redis DSN ("" selects the in-memory store).
func (m *Manager) GetRedisDSN() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.RedisDSN
}

// GetPropertyID returns the property row this deployment serves.
func (m *Manager) GetPropertyID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.PropertyID
}

// DisplayServerConfig logs an overview of the effective configuration.
func (m *Manager) DisplayServerConfig() {
	m.mu.RLock()
	config := m.config
	m.mu.RUnlock()

	storeType := "memory"
	if config.RedisDSN != "" {
		storeType = "redis"
	}
	encryption := "disabled"
	if config.EncryptionKey != "" {
		encryption = "enabled"
	}

	logrus.Info("")
	logrus.Info("======= Sitterdesk Configuration =======")
	logrus.Infof("  Listen address:    %s:%d", config.Server.Host, config.Server.Port)
	logrus.Infof("  Property:          %s", config.PropertyID)
	logrus.Infof("  Session store:     %s", storeType)
	logrus.Infof("  Session TTL:       %d minutes", config.Auth.SessionTTLMinutes)
	logrus.Infof("  Secret encryption: %s", encryption)
	logrus.Infof("  Log level:         %s", config.Log.Level)
	logrus.Info("========================================")
	logrus.Info("")
}
