// Package schedule holds the pure agenda logic: time parsing and
// normalization, the master schedule generator, and display grouping.
// Nothing in this package touches the database or the clock.
package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// timePattern tolerates the shapes users actually type: "7 AM", "7:30pm",
// "19:30", "0700". It matches anywhere in the string so trailing notes
// such as "8:00 AM (with food)" still parse.
var timePattern = regexp.MustCompile(`(?i)(\d{1,2}):?(\d{2})?\s*(AM|PM)?`)

// clockPattern matches the canonical storage form: two-digit hour,
// two-digit minute. Anything looser goes through ParseTime first.
var clockPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// Labels that pass through parsing and display untouched.
var sentinelTimes = map[string]struct{}{
	"TBD":               {},
	"No time specified": {},
	"Reminders":         {},
	"Morning":           {},
	"Afternoon":         {},
	"Evening":           {},
	"Night":             {},
}

// ParseTime extracts a time of day from free-form text and returns it as
// minutes since midnight. The second return is false when no time could
// be recognized.
func ParseTime(s string) (int, bool) {
	m := timePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	hour, err := strconv.Atoi(m[1])
	if err != nil || hour > 23 {
		return 0, false
	}
	minute := 0
	if m[2] != "" {
		minute, err = strconv.Atoi(m[2])
		if err != nil || minute > 59 {
			return 0, false
		}
	}
	switch strings.ToUpper(m[3]) {
	case "PM":
		if hour < 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}
	if hour > 23 {
		return 0, false
	}
	return hour*60 + minute, true
}

// NormalizeTime canonicalizes user input to the 24-hour "HH:MM" storage
// form. Values already in that form pass through, anything unparseable is
// returned unchanged so user intent is never destroyed on save.
func NormalizeTime(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return trimmed
	}
	if clockPattern.MatchString(trimmed) {
		return trimmed
	}
	minutes, ok := ParseTime(trimmed)
	if !ok {
		return s
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatTimeForDisplay converts a stored "HH:MM" value to 12-hour form
// without a leading zero. Sentinel labels come back verbatim; any other
// shape is normalized first and only falls back to the original string
// when normalization fails.
func FormatTimeForDisplay(s string) string {
	if _, ok := sentinelTimes[s]; ok {
		return s
	}
	canonical := s
	if !clockPattern.MatchString(canonical) {
		canonical = NormalizeTime(canonical)
		if !clockPattern.MatchString(canonical) {
			return s
		}
	}
	minutes, ok := ParseTime(canonical)
	if !ok {
		return s
	}
	hour, minute := minutes/60, minutes%60
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minute, period)
}

// CalculateEndTime adds a duration in minutes to a start time, wrapping
// past midnight. The result is in storage form; a named period or an
// unparseable start yields the empty string since no end time exists.
func CalculateEndTime(start string, durationMinutes int) string {
	minutes, ok := ParseTime(start)
	if !ok {
		return ""
	}
	end := (minutes + durationMinutes) % (24 * 60)
	if end < 0 {
		end += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", end/60, end%60)
}

// sortKey positions an item in the daily agenda. Items whose time cannot
// be parsed sink to the end of the day.
func sortKey(timeValue string) int {
	if timeValue == "" {
		return 24*60 - 1
	}
	if _, ok := sentinelTimes[timeValue]; ok {
		return 24*60 - 1
	}
	minutes, ok := ParseTime(timeValue)
	if !ok {
		return 24*60 - 1
	}
	return minutes
}
