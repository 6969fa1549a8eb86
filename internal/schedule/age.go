package schedule

import (
	"fmt"
	"time"
)

// CalculateAge renders a pet's age from an ISO birthdate relative to a
// reference day. Unparseable birthdates render empty.
func CalculateAge(birthdate string, now time.Time) string {
	born, err := time.Parse(isoDate, birthdate)
	if err != nil {
		return ""
	}
	months := (now.Year()-born.Year())*12 + int(now.Month()) - int(born.Month())
	if now.Day() < born.Day() {
		months--
	}
	switch {
	case months >= 24:
		return fmt.Sprintf("%d years", months/12)
	case months >= 12:
		return "1 year"
	case months >= 2:
		return fmt.Sprintf("%d months", months)
	case months == 1:
		return "1 month"
	default:
		return "Less than 1 month"
	}
}
