package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		input   string
		minutes int
		ok      bool
	}{
		{"7:00 AM", 420, true},
		{"7:00AM", 420, true},
		{"7 am", 420, true},
		{"12 PM", 720, true},
		{"12:00 AM", 0, true},
		{"12:30 am", 30, true},
		{"6 pm", 1080, true},
		{"6:15 PM", 1095, true},
		{"19:30", 1170, true},
		{"00:00", 0, true},
		{"23:59", 1439, true},
		{"0700", 420, true},
		{"8:00 AM (with food)", 480, true},
		{"around 9:30 pm", 1290, true},
		{"", 0, false},
		{"morning", 0, false},
		{"TBD", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			minutes, ok := ParseTime(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.minutes, minutes)
			}
		})
	}
}

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"7:00 AM", "07:00"},
		{"7 PM", "19:00"},
		{"12 AM", "00:00"},
		{"12:30 PM", "12:30"},
		{"19:30", "19:30"},
		{"9:05", "09:05"},
		{"whenever", "whenever"},
		{"", ""},
		{"  6:00 pm  ", "18:00"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTime(tt.input))
		})
	}
}

func TestFormatTimeForDisplay(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"19:30", "7:30 PM"},
		{"07:00", "7:00 AM"},
		{"00:15", "12:15 AM"},
		{"12:00", "12:00 PM"},
		{"23:59", "11:59 PM"},
		{"TBD", "TBD"},
		{"No time specified", "No time specified"},
		{"Reminders", "Reminders"},
		{"Morning", "Morning"},
		{"7:30 PM", "7:30 PM"},
		{"6 PM", "6:00 PM"},
		{"9:05", "9:05 AM"},
		{"whenever", "whenever"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTimeForDisplay(tt.input))
		})
	}
}

func TestCalculateEndTime(t *testing.T) {
	assert.Equal(t, "10:30", CalculateEndTime("09:00", 90))
	assert.Equal(t, "01:00", CalculateEndTime("23:00", 120))
	assert.Equal(t, "00:00", CalculateEndTime("23:30", 30))
	assert.Equal(t, "14:00", CalculateEndTime("2:00 PM", 0))
	assert.Equal(t, "", CalculateEndTime("Morning", 60))
	assert.Equal(t, "", CalculateEndTime("not a time", 60))
}

func TestSortKeyUnparseableSinksLast(t *testing.T) {
	assert.Equal(t, 420, sortKey("07:00"))
	assert.Equal(t, 1439, sortKey(""))
	assert.Equal(t, 1439, sortKey("TBD"))
	assert.Equal(t, 1439, sortKey("Reminders"))
	assert.Equal(t, 1439, sortKey("whenever works"))
}

func TestCalculateAge(t *testing.T) {
	now := time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		birthdate string
		want      string
	}{
		{"2020-03-10", "5 years"},
		{"2023-09-15", "2 years"},
		{"2024-06-01", "1 year"},
		{"2025-03-15", "6 months"},
		{"2025-08-01", "1 month"},
		{"2025-09-01", "Less than 1 month"},
		{"not-a-date", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.birthdate, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateAge(tt.birthdate, now))
		})
	}
}
