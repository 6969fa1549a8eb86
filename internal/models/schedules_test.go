package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedicineEntryUnmarshalRoutesShapes(t *testing.T) {
	raw := `[
		{"time": "8:00 AM", "medication": "Apoquel", "end_date": "2025-09-10"},
		{"medication": "Clavamox", "frequency_per_day": 2, "remaining_doses": 10,
		 "start_date": "2025-09-01",
		 "dose_times": [{"time": "7:00 AM"}, {"time": "7:00 PM", "label": "with food"}]}
	]`

	var entries []MedicineEntry
	require.NoError(t, json.Unmarshal([]byte(raw), &entries))
	require.Len(t, entries, 2)

	require.NotNil(t, entries[0].Legacy)
	assert.Nil(t, entries[0].Smart)
	assert.Equal(t, "Apoquel", entries[0].Medication())
	assert.Equal(t, "2025-09-10", entries[0].Legacy.EndDate)

	require.NotNil(t, entries[1].Smart)
	assert.Nil(t, entries[1].Legacy)
	assert.Equal(t, "Clavamox", entries[1].Medication())
	assert.Equal(t, 2, entries[1].Smart.FrequencyPerDay)
	require.Len(t, entries[1].Smart.DoseTimes, 2)
	assert.Equal(t, "with food", entries[1].Smart.DoseTimes[1].Label)
}

func TestMedicineEntryMarshalRoundTrip(t *testing.T) {
	entry := MedicineEntry{Smart: &SmartMedicine{
		Medication:      "Rimadyl",
		FrequencyPerDay: 1,
		RemainingDoses:  5,
		StartDate:       "2025-09-01",
	}}
	raw, err := json.Marshal(entry)
	require.NoError(t, err)

	var back MedicineEntry
	require.NoError(t, json.Unmarshal(raw, &back))
	require.NotNil(t, back.Smart)
	assert.Equal(t, "Rimadyl", back.Smart.Medication)
}

func TestSmartMedicineRecomputeEndDate(t *testing.T) {
	tests := []struct {
		name      string
		perDay    int
		remaining int
		start     string
		want      string
	}{
		{"exact multiple", 2, 10, "2025-09-01", "2025-09-05"},
		{"partial last day rounds up", 2, 9, "2025-09-01", "2025-09-05"},
		{"single dose ends on start day", 1, 1, "2025-09-01", "2025-09-01"},
		{"three per day", 3, 7, "2025-09-01", "2025-09-03"},
		{"month boundary", 1, 5, "2025-08-29", "2025-09-02"},
		{"zero remaining clears", 2, 0, "2025-09-01", ""},
		{"zero frequency clears", 0, 10, "2025-09-01", ""},
		{"bad start date clears", 2, 10, "not-a-date", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &SmartMedicine{
				FrequencyPerDay: tt.perDay,
				RemainingDoses:  tt.remaining,
				StartDate:       tt.start,
			}
			m.RecomputeEndDate()
			assert.Equal(t, tt.want, m.CalculatedEndDate)
		})
	}
}

func TestMedicineEntryExpiredBefore(t *testing.T) {
	legacy := MedicineEntry{Legacy: &LegacyMedicine{Medication: "A", EndDate: "2025-09-10"}}
	assert.False(t, legacy.ExpiredBefore("2025-09-10"), "end date itself still active")
	assert.True(t, legacy.ExpiredBefore("2025-09-11"))

	open := MedicineEntry{Legacy: &LegacyMedicine{Medication: "B"}}
	assert.False(t, open.ExpiredBefore("2099-01-01"), "no end date never expires")

	smart := MedicineEntry{Smart: &SmartMedicine{CalculatedEndDate: "2025-09-05"}}
	assert.True(t, smart.ExpiredBefore("2025-09-06"))
	assert.False(t, smart.ExpiredBefore("2025-09-05"))
}

func TestPetScheduleDecoding(t *testing.T) {
	pet := &Pet{
		FeedingSchedule: []byte(`[{"time": "7:00 AM", "amount": "1 cup"}, {"time": "6:00 PM", "amount": "1 cup"}]`),
		WalkSchedule:    []byte(`[{"time": "8:00 AM", "duration": "30 minutes"}]`),
	}

	feedings := pet.FeedingEntries()
	require.Len(t, feedings, 2)
	assert.Equal(t, "1 cup", feedings[0].Amount)

	walks := pet.WalkEntries()
	require.Len(t, walks, 1)
	assert.Equal(t, "30 minutes", walks[0].Duration)
}

func TestPetScheduleDecodingTolerance(t *testing.T) {
	pet := &Pet{}
	assert.Empty(t, pet.FeedingEntries(), "nil column decodes empty")

	pet.FeedingSchedule = []byte(`{"time": "7:00 AM"}`)
	assert.Empty(t, pet.FeedingEntries(), "non-array column decodes empty")

	pet.FeedingSchedule = []byte(`[{"time": "7:00 AM", "amount": "1 cup"}, "garbage", 42]`)
	assert.Len(t, pet.FeedingEntries(), 1, "malformed elements are skipped")
}

func TestStayContains(t *testing.T) {
	stay := &Stay{Active: true, StartDate: "2025-09-01", EndDate: "2025-09-10"}
	assert.True(t, stay.Contains("2025-09-01"))
	assert.True(t, stay.Contains("2025-09-10"))
	assert.False(t, stay.Contains("2025-08-31"))
	assert.False(t, stay.Contains("2025-09-11"))

	stay.Active = false
	assert.False(t, stay.Contains("2025-09-05"), "inactive stay never matches")
}

func TestHouseInstructionHelpers(t *testing.T) {
	inst := &HouseInstruction{Category: "Plants", ScheduleFrequency: FrequencyNone}
	assert.False(t, inst.NeedsScheduling())
	assert.Equal(t, "Plants", inst.DisplayTitle())

	inst.ScheduleFrequency = FrequencyWeekly
	inst.Subcategory = "Water orchids"
	assert.True(t, inst.NeedsScheduling())
	assert.Equal(t, "Water orchids", inst.DisplayTitle())
}
