package services

import (
	app_errors "sitterdesk/internal/errors"
	"sitterdesk/internal/encryption"
	"sitterdesk/internal/models"
	"sitterdesk/internal/types"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// PropertyService manages the single property row. The wifi password is
// encrypted at rest and decrypted on read.
type PropertyService struct {
	db         *gorm.DB
	crypto     encryption.Service
	propertyID string
}

// NewPropertyService constructs a PropertyService.
func NewPropertyService(db *gorm.DB, crypto encryption.Service, configManager types.ConfigManager) *PropertyService {
	return &PropertyService{db: db, crypto: crypto, propertyID: configManager.GetPropertyID()}
}

// PropertyID returns the id every entity row is scoped to.
func (s *PropertyService) PropertyID() string {
	return s.propertyID
}

// EnsureExists creates the property row on first boot so the portal
// always has something to serve.
func (s *PropertyService) EnsureExists() error {
	var count int64
	if err := s.db.Model(&models.Property{}).Where("id = ?", s.propertyID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	logrus.Info("seeding initial property row")
	return s.db.Create(&models.Property{ID: s.propertyID, Name: "Home"}).Error
}

// Get loads the property with the wifi password decrypted. A stored
// value that fails to decrypt comes back empty rather than as
// ciphertext garbage.
func (s *PropertyService) Get() (*models.Property, error) {
	var property models.Property
	if err := s.db.First(&property, "id = ?", s.propertyID).Error; err != nil {
		return nil, app_errors.ParseDBError(err)
	}
	if property.WifiPassword != "" {
		plain, err := s.crypto.Decrypt(property.WifiPassword)
		if err != nil {
			logrus.WithError(err).Warn("stored wifi password failed to decrypt")
			plain = ""
		}
		property.WifiPassword = plain
	}
	return &property, nil
}

// PropertyUpdate carries the editable property fields.
type PropertyUpdate struct {
	Name         *string `json:"name"`
	Address      *string `json:"address"`
	WifiSSID     *string `json:"wifi_ssid"`
	WifiPassword *string `json:"wifi_password"`
}

// Update applies a partial update, encrypting the wifi password before
// it reaches the database.
func (s *PropertyService) Update(update PropertyUpdate) (*models.Property, error) {
	fields := map[string]any{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Address != nil {
		fields["address"] = *update.Address
	}
	if update.WifiSSID != nil {
		fields["wifi_ssid"] = *update.WifiSSID
	}
	if update.WifiPassword != nil {
		stored := ""
		if *update.WifiPassword != "" {
			encrypted, err := s.crypto.Encrypt(*update.WifiPassword)
			if err != nil {
				return nil, app_errors.NewAPIError(app_errors.ErrInternalServer, "failed to encrypt wifi password")
			}
			stored = encrypted
		}
		fields["wifi_password"] = stored
	}

	if len(fields) > 0 {
		result := s.db.Model(&models.Property{}).Where("id = ?", s.propertyID).Updates(fields)
		if result.Error != nil {
			return nil, app_errors.ParseDBError(result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, app_errors.ErrResourceNotFound
		}
	}
	return s.Get()
}
