package config

import (
	"sitterdesk/internal/types"
)

// MockConfig is a test double for types.ConfigManager.
type MockConfig struct {
	SitePasswordValue  string
	AdminKeyValue      string
	SessionTTLMinutes  int
	EncryptionKeyValue string
	RedisDSNValue      string
	PropertyIDValue    string
}

func (m *MockConfig) GetAuthConfig() types.AuthConfig {
	ttl := m.SessionTTLMinutes
	if ttl == 0 {
		ttl = 720
	}
	return types.AuthConfig{
		SitePassword:      m.SitePasswordValue,
		AdminKey:          m.AdminKeyValue,
		SessionTTLMinutes: ttl,
	}
}

func (m *MockConfig) GetCORSConfig() types.CORSConfig { return types.CORSConfig{} }

func (m *MockConfig) GetPerformanceConfig() types.PerformanceConfig {
	return types.PerformanceConfig{MaxConcurrentRequests: 100}
}

func (m *MockConfig) GetLogConfig() types.LogConfig { return types.LogConfig{Level: "error"} }

func (m *MockConfig) GetDatabaseConfig() types.DatabaseConfig {
	return types.DatabaseConfig{DSN: ":memory:"}
}

func (m *MockConfig) GetEncryptionKey() string { return m.EncryptionKeyValue }

func (m *MockConfig) GetEffectiveServerConfig() types.ServerConfig { return types.ServerConfig{} }

func (m *MockConfig) GetRedisDSN() string { return m.RedisDSNValue }

func (m *MockConfig) GetPropertyID() string {
	if m.PropertyIDValue == "" {
		return DefaultPropertyID
	}
	return m.PropertyIDValue
}

func (m *MockConfig) Validate() error { return nil }

func (m *MockConfig) DisplayServerConfig() {}

func (m *MockConfig) ReloadConfig() error { return nil }
