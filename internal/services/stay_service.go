package services

import (
	"time"

	app_errors "sitterdesk/internal/errors"
	"sitterdesk/internal/models"
	"sitterdesk/internal/types"

	"gorm.io/gorm"
)

const isoDate = "2006-01-02"

// StayService manages sitter stays.
type StayService struct {
	db         *gorm.DB
	propertyID string
}

// NewStayService constructs a StayService.
func NewStayService(db *gorm.DB, configManager types.ConfigManager) *StayService {
	return &StayService{db: db, propertyID: configManager.GetPropertyID()}
}

// List returns all stays, upcoming first.
func (s *StayService) List() ([]models.Stay, error) {
	var stays []models.Stay
	err := s.db.Where("property_id = ?", s.propertyID).Order("start_date DESC").Find(&stays).Error
	if err != nil {
		return nil, app_errors.ParseDBError(err)
	}
	return stays, nil
}

// Current returns the active stay covering the given day. When stays
// overlap, the one that started earliest wins so handovers stay stable.
func (s *StayService) Current(now time.Time) (*models.Stay, error) {
	date := now.Format(isoDate)
	var stay models.Stay
	err := s.db.
		Where("property_id = ? AND active = ? AND start_date <= ? AND end_date >= ?",
			s.propertyID, true, date, date).
		Order("start_date ASC").
		First(&stay).Error
	if err != nil {
		return nil, app_errors.ParseDBError(err)
	}
	return &stay, nil
}

// Create inserts a stay after validating its date window.
func (s *StayService) Create(stay *models.Stay) error {
	if err := validateStayWindow(stay); err != nil {
		return err
	}
	stay.PropertyID = s.propertyID
	if err := s.db.Create(stay).Error; err != nil {
		return app_errors.ParseDBError(err)
	}
	return nil
}

// Update saves a stay.
func (s *StayService) Update(id string, stay *models.Stay) (*models.Stay, error) {
	if err := validateStayWindow(stay); err != nil {
		return nil, err
	}
	var existing models.Stay
	if err := s.db.First(&existing, "id = ? AND property_id = ?", id, s.propertyID).Error; err != nil {
		return nil, app_errors.ParseDBError(err)
	}
	stay.ID = existing.ID
	stay.PropertyID = s.propertyID
	stay.CreatedAt = existing.CreatedAt
	if err := s.db.Save(stay).Error; err != nil {
		return nil, app_errors.ParseDBError(err)
	}
	return stay, nil
}

// Delete removes a stay.
func (s *StayService) Delete(id string) error {
	result := s.db.Delete(&models.Stay{}, "id = ? AND property_id = ?", id, s.propertyID)
	if result.Error != nil {
		return app_errors.ParseDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return app_errors.ErrResourceNotFound
	}
	return nil
}

func validateStayWindow(stay *models.Stay) error {
	if _, err := time.Parse(isoDate, stay.StartDate); err != nil {
		return app_errors.NewValidationError("start_date must be in YYYY-MM-DD format")
	}
	if _, err := time.Parse(isoDate, stay.EndDate); err != nil {
		return app_errors.NewValidationError("end_date must be in YYYY-MM-DD format")
	}
	if stay.EndDate < stay.StartDate {
		return app_errors.NewValidationError("end_date must not be before start_date")
	}
	return nil
}
