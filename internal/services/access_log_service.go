package services

import (
	"time"

	"sitterdesk/internal/models"
	"sitterdesk/internal/types"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AccessLogService records and queries portal entries.
type AccessLogService struct {
	db         *gorm.DB
	propertyID string
}

// NewAccessLogService constructs an AccessLogService.
func NewAccessLogService(db *gorm.DB, configManager types.ConfigManager) *AccessLogService {
	return &AccessLogService{db: db, propertyID: configManager.GetPropertyID()}
}

// RecordAccess writes one access log row. Logging failures are reported
// but never block the request that triggered them.
func (s *AccessLogService) RecordAccess(accessType, ip string) {
	entry := models.AccessLog{
		PropertyID: s.propertyID,
		AccessedAt: time.Now(),
		AccessType: accessType,
		IPAddress:  ip,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		logrus.WithError(err).Warn("failed to record access log entry")
	}
}

// Query returns the base query for listing access entries, newest first.
func (s *AccessLogService) Query() *gorm.DB {
	return s.db.Model(&models.AccessLog{}).
		Where("property_id = ?", s.propertyID).
		Order("accessed_at DESC")
}
