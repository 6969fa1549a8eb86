package services

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	app_errors "sitterdesk/internal/errors"
	"sitterdesk/internal/models"
	"sitterdesk/internal/types"
	"sitterdesk/internal/version"

	"github.com/klauspost/compress/gzip"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/sjson"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ExportPayload is the portable backup of everything the portal stores.
type ExportPayload struct {
	Version           string                    `json:"version"`
	ExportedAt        time.Time                 `json:"exported_at"`
	Property          *models.Property          `json:"property,omitempty"`
	Alerts            []models.Alert            `json:"alerts"`
	Contacts          []models.Contact          `json:"contacts"`
	Pets              []models.Pet              `json:"pets"`
	Appointments      []models.Appointment      `json:"appointments"`
	ServicePeople     []models.ServicePerson    `json:"service_people"`
	DailyTasks        []models.DailyTask        `json:"daily_tasks"`
	Stays             []models.Stay             `json:"stays"`
	HouseInstructions []models.HouseInstruction `json:"house_instructions"`
}

// ImportExportService produces and restores gzip JSON backups.
type ImportExportService struct {
	db         *gorm.DB
	property   *PropertyService
	propertyID string
}

// NewImportExportService constructs an ImportExportService.
func NewImportExportService(db *gorm.DB, property *PropertyService, configManager types.ConfigManager) *ImportExportService {
	return &ImportExportService{db: db, property: property, propertyID: configManager.GetPropertyID()}
}

// Export writes the gzip-compressed backup to w. The wifi password is
// scrubbed from the payload: backups travel over email and chat, and the
// password is cheap to re-enter.
func (s *ImportExportService) Export(w io.Writer) error {
	payload := ExportPayload{Version: version.Version, ExportedAt: time.Now()}

	property, err := s.property.Get()
	if err == nil {
		payload.Property = property
	}

	scoped := func() *gorm.DB { return s.db.Where("property_id = ?", s.propertyID) }
	collect := func(dest any) error { return scoped().Find(dest).Error }
	for _, dest := range []any{
		&payload.Alerts, &payload.Contacts, &payload.Pets, &payload.Appointments,
		&payload.ServicePeople, &payload.DailyTasks, &payload.Stays, &payload.HouseInstructions,
	} {
		if err := collect(dest); err != nil {
			return app_errors.ParseDBError(err)
		}
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal export: %w", err)
	}
	raw, err = sjson.DeleteBytes(raw, "property.wifi_password")
	if err != nil {
		return fmt.Errorf("scrub export: %w", err)
	}

	gz := gzip.NewWriter(w)
	if _, err := gz.Write(raw); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return gz.Close()
}

// Import restores a backup produced by Export. Rows are upserted by id
// inside one transaction so a malformed file cannot leave the database
// half restored.
func (s *ImportExportService) Import(r io.Reader) error {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return app_errors.NewAPIError(app_errors.ErrBadRequest, "backup is not gzip compressed")
	}
	defer gz.Close()

	raw, err := io.ReadAll(gz)
	if err != nil {
		return app_errors.NewAPIError(app_errors.ErrBadRequest, "backup is truncated or corrupt")
	}

	var payload ExportPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return app_errors.ErrInvalidJSON
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if payload.Property != nil {
			update := PropertyUpdate{
				Name:     &payload.Property.Name,
				Address:  &payload.Property.Address,
				WifiSSID: &payload.Property.WifiSSID,
			}
			if _, err := s.property.Update(update); err != nil {
				return err
			}
		}

		for _, alert := range payload.Alerts {
			alert.PropertyID = s.propertyID
			if err := upsert(tx, &alert); err != nil {
				return err
			}
		}
		for _, contact := range payload.Contacts {
			contact.PropertyID = s.propertyID
			if err := upsert(tx, &contact); err != nil {
				return err
			}
		}
		for _, pet := range payload.Pets {
			pet.PropertyID = s.propertyID
			if err := upsert(tx, &pet); err != nil {
				return err
			}
		}
		for _, appt := range payload.Appointments {
			appt.PropertyID = s.propertyID
			if err := upsert(tx, &appt); err != nil {
				return err
			}
		}
		for _, sp := range payload.ServicePeople {
			sp.PropertyID = s.propertyID
			if err := upsert(tx, &sp); err != nil {
				return err
			}
		}
		for _, task := range payload.DailyTasks {
			task.PropertyID = s.propertyID
			if err := upsert(tx, &task); err != nil {
				return err
			}
		}
		for _, stay := range payload.Stays {
			stay.PropertyID = s.propertyID
			if err := upsert(tx, &stay); err != nil {
				return err
			}
		}
		for _, inst := range payload.HouseInstructions {
			inst.PropertyID = s.propertyID
			if err := upsert(tx, &inst); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logrus.WithError(err).Error("import failed, transaction rolled back")
		return err
	}
	return nil
}

func upsert(tx *gorm.DB, record any) error {
	err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(record).Error
	if err != nil {
		return app_errors.ParseDBError(err)
	}
	return nil
}
