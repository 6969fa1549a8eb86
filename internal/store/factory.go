package store

import (
	"github.com/sirupsen/logrus"

	"sitterdesk/internal/types"
)

// NewStore selects the Store implementation from configuration: Redis
// when a DSN is present, otherwise the in-memory store.
func NewStore(configManager types.ConfigManager) (Store, error) {
	dsn := configManager.GetRedisDSN()
	if dsn == "" {
		logrus.Debug("no redis dsn configured, using in-memory store")
		return NewMemoryStore(), nil
	}

	logrus.Debug("connecting to redis store")
	return NewRedisStore(dsn)
}
