// Package models defines the GORM entities of the household portal.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Alert severity constants
const (
	AlertTypeDanger  = "danger"
	AlertTypeWarning = "warning"
	AlertTypeInfo    = "info"
)

// Category constants shared by alerts and daily tasks
const (
	CategoryPets    = "pets"
	CategoryHouse   = "house"
	CategoryGeneral = "general"
)

// Access log entry points
const (
	AccessTypePassword = "password"
	AccessTypeQRCode   = "qr_code"
)

// Property corresponds to the properties table. The portal serves exactly
// one property row; every other entity carries its id.
type Property struct {
	ID           string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(255)" json:"name"`
	Address      string    `gorm:"type:varchar(512)" json:"address"`
	WifiSSID     string    `gorm:"type:varchar(255);column:wifi_ssid" json:"wifi_ssid"`
	WifiPassword string    `gorm:"type:varchar(512)" json:"wifi_password"` // encrypted at rest
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Alert corresponds to the alerts table.
type Alert struct {
	ID         string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	PropertyID string    `gorm:"type:varchar(36);not null;index" json:"property_id"`
	Type       string    `gorm:"type:varchar(20);not null;default:'info'" json:"type"`
	Category   string    `gorm:"type:varchar(20);not null;default:'general'" json:"category"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	Active     bool      `gorm:"default:true;not null" json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}

// Contact corresponds to the contacts table (owners, vets, service numbers).
type Contact struct {
	ID           string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	PropertyID   string    `gorm:"type:varchar(36);not null;index" json:"property_id"`
	Role         string    `gorm:"type:varchar(100)" json:"role"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Phone        string    `gorm:"type:varchar(50)" json:"phone"`
	Address      string    `gorm:"type:varchar(512)" json:"address"`
	Notes        string    `gorm:"type:text" json:"notes"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
	Active       bool      `gorm:"default:true;not null" json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// Pet corresponds to the pets table. The feeding, medicine and walk
// schedules are JSON columns decoded through the typed helpers in
// schedules.go; free-text care fields are stored as-is.
type Pet struct {
	ID                  string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	PropertyID          string         `gorm:"type:varchar(36);not null;index" json:"property_id"`
	Name                string         `gorm:"type:varchar(255);not null" json:"name"`
	Birthdate           string         `gorm:"type:varchar(10)" json:"birthdate"`
	PhotoURL            string         `gorm:"type:varchar(512)" json:"photo_url"`
	Personality         string         `gorm:"type:text" json:"personality"`
	FeedingSchedule     datatypes.JSON `gorm:"type:json" json:"feeding_schedule"`
	FeedingLocation     string         `gorm:"type:varchar(255)" json:"feeding_location"`
	FeedingNotes        string         `gorm:"type:text" json:"feeding_notes"`
	MedicineSchedule    datatypes.JSON `gorm:"type:json" json:"medicine_schedule"`
	MedicineNotes       string         `gorm:"type:text" json:"medicine_notes"`
	PottyTrained        string         `gorm:"type:varchar(255)" json:"potty_trained"`
	PottyNotes          string         `gorm:"type:text" json:"potty_notes"`
	WalkSchedule        datatypes.JSON `gorm:"type:json" json:"walk_schedule"`
	WalkNotes           string         `gorm:"type:text" json:"walk_notes"`
	SleepingLocation    string         `gorm:"type:varchar(255)" json:"sleeping_location"`
	SleepingNotes       string         `gorm:"type:text" json:"sleeping_notes"`
	SpecialInstructions datatypes.JSON `gorm:"type:json" json:"special_instructions"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// Appointment corresponds to the appointments table.
type Appointment struct {
	ID         string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	PropertyID string    `gorm:"type:varchar(36);not null;index" json:"property_id"`
	Date       string    `gorm:"type:varchar(10);not null;index" json:"date"`
	Time       string    `gorm:"type:varchar(20)" json:"time"`
	Type       string    `gorm:"type:varchar(255);not null" json:"type"`
	ForPetID   string    `gorm:"type:varchar(36)" json:"for_pet_id"`
	Location   string    `gorm:"type:varchar(255)" json:"location"`
	Notes      string    `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
}

// ServicePerson corresponds to the service_people table. A row is either a
// legacy recurring visit (ServiceDay contains a weekday name) or a
// date-scoped visit (VisitDate plus optional start/end times).
type ServicePerson struct {
	ID            string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	PropertyID    string    `gorm:"type:varchar(36);not null;index" json:"property_id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	ServiceDay    string    `gorm:"type:varchar(100)" json:"service_day"`
	ServiceTime   string    `gorm:"type:varchar(50)" json:"service_time"`
	VisitDate     string    `gorm:"type:varchar(10)" json:"visit_date"`
	StartTime     string    `gorm:"type:varchar(20)" json:"start_time"`
	EndTime       string    `gorm:"type:varchar(20)" json:"end_time"`
	PaymentStatus string    `gorm:"type:varchar(50)" json:"payment_status"`
	PaymentAmount string    `gorm:"type:varchar(50)" json:"payment_amount"`
	Notes         string    `gorm:"type:text" json:"notes"`
	NeedsAccess   bool      `gorm:"default:false;not null" json:"needs_access"`
	Phone         string    `gorm:"type:varchar(50)" json:"phone"`
	CreatedAt     time.Time `json:"created_at"`
}

// DailyTask corresponds to the daily_tasks table. Tasks are soft-deleted
// through the Active flag, never removed.
type DailyTask struct {
	ID         string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	PropertyID string    `gorm:"type:varchar(36);not null;index" json:"property_id"`
	Title      string    `gorm:"type:varchar(255);not null" json:"title"`
	Time       string    `gorm:"type:varchar(50)" json:"time"`
	Category   string    `gorm:"type:varchar(20);not null;default:'general'" json:"category"`
	Notes      string    `gorm:"type:text" json:"notes"`
	Active     bool      `gorm:"default:true;not null" json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Stay corresponds to the stays table. A stay defines the window during
// which a sitter has responsibility for the property.
type Stay struct {
	ID         string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	PropertyID string    `gorm:"type:varchar(36);not null;index" json:"property_id"`
	SitterName string    `gorm:"type:varchar(255);not null" json:"sitter_name"`
	StartDate  string    `gorm:"type:varchar(10);not null;index" json:"start_date"`
	EndDate    string    `gorm:"type:varchar(10);not null" json:"end_date"`
	Notes      string    `gorm:"type:text" json:"notes"`
	Active     bool      `gorm:"default:true;not null" json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Contains reports whether the stay window includes the given ISO date.
func (s *Stay) Contains(date string) bool {
	return s.Active && s.StartDate != "" && s.EndDate != "" &&
		s.StartDate <= date && date <= s.EndDate
}

// House instruction recurrence frequencies
const (
	FrequencyNone    = "none"
	FrequencyOneTime = "one_time"
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
)

// HouseInstruction corresponds to the house_instructions table. The
// Schedule* columns form the recurrence descriptor; an instruction takes
// part in the master schedule only when ScheduleFrequency is set to
// something other than "none".
type HouseInstruction struct {
	ID                      string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	PropertyID              string         `gorm:"type:varchar(36);not null;index" json:"property_id"`
	Category                string         `gorm:"type:varchar(100);not null" json:"category"`
	Subcategory             string         `gorm:"type:varchar(100)" json:"subcategory"`
	Instructions            datatypes.JSON `gorm:"type:json" json:"instructions"`
	ScheduleFrequency       string         `gorm:"type:varchar(20);default:'none'" json:"schedule_frequency"`
	ScheduleDay             string         `gorm:"type:varchar(100)" json:"schedule_day"`
	ScheduleDate            string         `gorm:"type:varchar(10)" json:"schedule_date"`
	ScheduleTime            string         `gorm:"type:varchar(20)" json:"schedule_time"`
	ScheduleGeneralTime     string         `gorm:"type:varchar(50)" json:"schedule_general_time"`
	ScheduleDurationMinutes int            `gorm:"default:0" json:"schedule_duration_minutes"`
	RemindDayBefore         bool           `gorm:"default:false;not null" json:"remind_day_before"`
	CreatedAt               time.Time      `json:"created_at"`
	UpdatedAt               time.Time      `json:"updated_at"`
}

// NeedsScheduling reports whether the instruction participates in the
// master schedule.
func (h *HouseInstruction) NeedsScheduling() bool {
	return h.ScheduleFrequency != "" && h.ScheduleFrequency != FrequencyNone
}

// DisplayTitle is the agenda title for the instruction.
func (h *HouseInstruction) DisplayTitle() string {
	if h.Subcategory != "" {
		return h.Subcategory
	}
	return h.Category
}

// AccessLog corresponds to the access_logs table.
type AccessLog struct {
	ID         string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	PropertyID string    `gorm:"type:varchar(36);not null;index" json:"property_id"`
	AccessedAt time.Time `gorm:"not null;index" json:"accessed_at"`
	AccessType string    `gorm:"type:varchar(20);not null" json:"access_type"`
	IPAddress  string    `gorm:"type:varchar(64)" json:"ip_address"`
}

func assignID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

func (p *Property) BeforeCreate(tx *gorm.DB) error         { assignID(&p.ID); return nil }
func (a *Alert) BeforeCreate(tx *gorm.DB) error            { assignID(&a.ID); return nil }
func (c *Contact) BeforeCreate(tx *gorm.DB) error          { assignID(&c.ID); return nil }
func (p *Pet) BeforeCreate(tx *gorm.DB) error              { assignID(&p.ID); return nil }
func (a *Appointment) BeforeCreate(tx *gorm.DB) error      { assignID(&a.ID); return nil }
func (s *ServicePerson) BeforeCreate(tx *gorm.DB) error    { assignID(&s.ID); return nil }
func (d *DailyTask) BeforeCreate(tx *gorm.DB) error        { assignID(&d.ID); return nil }
func (s *Stay) BeforeCreate(tx *gorm.DB) error             { assignID(&s.ID); return nil }
func (h *HouseInstruction) BeforeCreate(tx *gorm.DB) error { assignID(&h.ID); return nil }
func (a *AccessLog) BeforeCreate(tx *gorm.DB) error        { assignID(&a.ID); return nil }

// All returns the model set for auto-migration.
func All() []any {
	return []any{
		&Property{},
		&Alert{},
		&Contact{},
		&Pet{},
		&Appointment{},
		&ServicePerson{},
		&DailyTask{},
		&Stay{},
		&HouseInstruction{},
		&AccessLog{},
	}
}
