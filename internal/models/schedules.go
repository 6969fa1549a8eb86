package models

import (
	"encoding/json"
	"math"
	"time"

	"github.com/tidwall/gjson"
)

const isoDate = "2006-01-02"

// FeedingEntry is one element of a pet's feeding schedule JSON column.
type FeedingEntry struct {
	Time   string `json:"time"`
	Amount string `json:"amount"`
	Notes  string `json:"notes,omitempty"`
}

// WalkEntry is one element of a pet's walk schedule JSON column.
type WalkEntry struct {
	Time     string `json:"time"`
	Duration string `json:"duration,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// DoseTime is one scheduled dose of a smart medicine entry.
type DoseTime struct {
	Time  string `json:"time"`
	Label string `json:"label,omitempty"`
}

// LegacyMedicine is the original free-form medicine shape: a single daily
// time with an optional explicit end date.
type LegacyMedicine struct {
	Time       string `json:"time"`
	Medication string `json:"medication"`
	EndDate    string `json:"end_date,omitempty"`
	EndTime    string `json:"end_time,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// SmartMedicine tracks a finite course of medication. The end date is
// derived from the remaining dose count rather than entered by hand.
type SmartMedicine struct {
	Medication        string     `json:"medication"`
	FrequencyPerDay   int        `json:"frequency_per_day"`
	RemainingDoses    int        `json:"remaining_doses"`
	DoseTimes         []DoseTime `json:"dose_times,omitempty"`
	StartDate         string     `json:"start_date"`
	CalculatedEndDate string     `json:"calculated_end_date,omitempty"`
	Notes             string     `json:"notes,omitempty"`
	VideoURL          string     `json:"video_url,omitempty"`
}

// RecomputeEndDate derives CalculatedEndDate from the start date and the
// remaining dose count. With N doses left at K per day the course spans
// ceil(N/K) days counting the start date itself. Malformed inputs clear
// the end date so the entry never expires silently.
func (m *SmartMedicine) RecomputeEndDate() {
	if m.FrequencyPerDay < 1 || m.RemainingDoses < 1 {
		m.CalculatedEndDate = ""
		return
	}
	start, err := time.Parse(isoDate, m.StartDate)
	if err != nil {
		m.CalculatedEndDate = ""
		return
	}
	days := int(math.Ceil(float64(m.RemainingDoses) / float64(m.FrequencyPerDay)))
	m.CalculatedEndDate = start.AddDate(0, 0, days-1).Format(isoDate)
}

// MedicineEntry is one element of the medicine schedule JSON column.
// Exactly one of Legacy or Smart is set.
type MedicineEntry struct {
	Legacy *LegacyMedicine
	Smart  *SmartMedicine
}

// Medication returns the medication name regardless of shape.
func (e MedicineEntry) Medication() string {
	switch {
	case e.Smart != nil:
		return e.Smart.Medication
	case e.Legacy != nil:
		return e.Legacy.Medication
	}
	return ""
}

// ExpiredBefore reports whether the entry's course has ended strictly
// before the given ISO date. Entries without an end date never expire.
func (e MedicineEntry) ExpiredBefore(date string) bool {
	switch {
	case e.Smart != nil:
		return e.Smart.CalculatedEndDate != "" && e.Smart.CalculatedEndDate < date
	case e.Legacy != nil:
		return e.Legacy.EndDate != "" && e.Legacy.EndDate < date
	}
	return false
}

// MarshalJSON flattens the union back to the stored wire shape.
func (e MedicineEntry) MarshalJSON() ([]byte, error) {
	if e.Smart != nil {
		return json.Marshal(e.Smart)
	}
	return json.Marshal(e.Legacy)
}

// UnmarshalJSON sniffs the element shape. Presence of any smart-only key
// routes to SmartMedicine, everything else decodes as the legacy shape.
func (e *MedicineEntry) UnmarshalJSON(data []byte) error {
	if isSmartMedicine(gjson.ParseBytes(data)) {
		e.Smart = &SmartMedicine{}
		e.Legacy = nil
		return json.Unmarshal(data, e.Smart)
	}
	e.Legacy = &LegacyMedicine{}
	e.Smart = nil
	return json.Unmarshal(data, e.Legacy)
}

func isSmartMedicine(v gjson.Result) bool {
	return v.Get("frequency_per_day").Exists() ||
		v.Get("remaining_doses").Exists() ||
		v.Get("dose_times").Exists()
}

// FeedingEntries decodes the pet's feeding schedule column. Malformed
// columns decode as empty rather than failing the whole schedule.
func (p *Pet) FeedingEntries() []FeedingEntry {
	return decodeEntries[FeedingEntry](p.FeedingSchedule)
}

// WalkEntries decodes the pet's walk schedule column.
func (p *Pet) WalkEntries() []WalkEntry {
	return decodeEntries[WalkEntry](p.WalkSchedule)
}

// MedicineEntries decodes the pet's medicine schedule column, routing
// each element to its legacy or smart shape.
func (p *Pet) MedicineEntries() []MedicineEntry {
	return decodeEntries[MedicineEntry](p.MedicineSchedule)
}

// SetMedicineEntries re-encodes the medicine schedule column.
func (p *Pet) SetMedicineEntries(entries []MedicineEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	p.MedicineSchedule = raw
	return nil
}

func decodeEntries[T any](raw []byte) []T {
	if len(raw) == 0 {
		return nil
	}
	parsed := gjson.ParseBytes(raw)
	if !parsed.IsArray() {
		return nil
	}
	var out []T
	parsed.ForEach(func(_, v gjson.Result) bool {
		if !v.IsObject() {
			return true
		}
		var entry T
		if err := json.Unmarshal([]byte(v.Raw), &entry); err == nil {
			out = append(out, entry)
		}
		return true
	})
	return out
}
