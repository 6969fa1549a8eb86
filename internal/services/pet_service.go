package services

import (
	"encoding/json"

	app_errors "sitterdesk/internal/errors"
	"sitterdesk/internal/models"
	"sitterdesk/internal/schedule"
	"sitterdesk/internal/types"

	"gorm.io/gorm"
)

// PetService manages pets and keeps their schedule columns canonical:
// times normalized to storage form and smart medicine end dates derived
// on every write.
type PetService struct {
	db         *gorm.DB
	propertyID string
}

// NewPetService constructs a PetService.
func NewPetService(db *gorm.DB, configManager types.ConfigManager) *PetService {
	return &PetService{db: db, propertyID: configManager.GetPropertyID()}
}

// List returns all pets for the property, oldest first.
func (s *PetService) List() ([]models.Pet, error) {
	var pets []models.Pet
	err := s.db.Where("property_id = ?", s.propertyID).Order("created_at ASC").Find(&pets).Error
	if err != nil {
		return nil, app_errors.ParseDBError(err)
	}
	return pets, nil
}

// Get returns a single pet by id.
func (s *PetService) Get(id string) (*models.Pet, error) {
	var pet models.Pet
	err := s.db.First(&pet, "id = ? AND property_id = ?", id, s.propertyID).Error
	if err != nil {
		return nil, app_errors.ParseDBError(err)
	}
	return &pet, nil
}

// Create inserts a pet after canonicalizing its schedule columns.
func (s *PetService) Create(pet *models.Pet) error {
	pet.PropertyID = s.propertyID
	if err := s.canonicalize(pet); err != nil {
		return err
	}
	if err := s.db.Create(pet).Error; err != nil {
		return app_errors.ParseDBError(err)
	}
	return nil
}

// Update saves a full pet record after canonicalizing its schedules.
func (s *PetService) Update(id string, pet *models.Pet) (*models.Pet, error) {
	existing, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	pet.ID = existing.ID
	pet.PropertyID = s.propertyID
	pet.CreatedAt = existing.CreatedAt
	if err := s.canonicalize(pet); err != nil {
		return nil, err
	}
	if err := s.db.Save(pet).Error; err != nil {
		return nil, app_errors.ParseDBError(err)
	}
	return pet, nil
}

// Delete removes a pet.
func (s *PetService) Delete(id string) error {
	result := s.db.Delete(&models.Pet{}, "id = ? AND property_id = ?", id, s.propertyID)
	if result.Error != nil {
		return app_errors.ParseDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return app_errors.ErrResourceNotFound
	}
	return nil
}

// canonicalize rewrites the JSON schedule columns: every time field goes
// through NormalizeTime and smart medicine end dates are recomputed so a
// stale stored value can never leak through.
func (s *PetService) canonicalize(pet *models.Pet) error {
	if feedings := pet.FeedingEntries(); feedings != nil {
		for i := range feedings {
			feedings[i].Time = schedule.NormalizeTime(feedings[i].Time)
		}
		raw, err := json.Marshal(feedings)
		if err != nil {
			return app_errors.ErrInvalidJSON
		}
		pet.FeedingSchedule = raw
	}

	if walks := pet.WalkEntries(); walks != nil {
		for i := range walks {
			walks[i].Time = schedule.NormalizeTime(walks[i].Time)
		}
		raw, err := json.Marshal(walks)
		if err != nil {
			return app_errors.ErrInvalidJSON
		}
		pet.WalkSchedule = raw
	}

	if medicines := pet.MedicineEntries(); medicines != nil {
		for i := range medicines {
			switch {
			case medicines[i].Smart != nil:
				smart := medicines[i].Smart
				for d := range smart.DoseTimes {
					smart.DoseTimes[d].Time = schedule.NormalizeTime(smart.DoseTimes[d].Time)
				}
				smart.RecomputeEndDate()
			case medicines[i].Legacy != nil:
				legacy := medicines[i].Legacy
				legacy.Time = schedule.NormalizeTime(legacy.Time)
				legacy.EndTime = schedule.NormalizeTime(legacy.EndTime)
			}
		}
		if err := pet.SetMedicineEntries(medicines); err != nil {
			return app_errors.ErrInvalidJSON
		}
	}
	return nil
}
