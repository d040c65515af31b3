package dates

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ISOLayout is the calendar date layout stored and exchanged by the API.
const ISOLayout = "2006-01-02"

// ErrInvalidDateFormat is returned when a US-style date is missing one of its components.
var ErrInvalidDateFormat = errors.New("invalid date format")

// FormatDateToISO turns MM/DD/YYYY into YYYY-MM-DD, zero-padding month and day.
// It only reshapes the string; calendar validity is checked by the caller.
func FormatDateToISO(dateStr string) (string, error) {
	parts := strings.Split(strings.TrimSpace(dateStr), "/")
	if len(parts) < 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidDateFormat, dateStr)
	}
	month, day, year := parts[0], parts[1], parts[2]
	return fmt.Sprintf("%s-%s-%s", year, padTwo(month), padTwo(day)), nil
}

// ParseISO parses a YYYY-MM-DD date in UTC.
func ParseISO(s string) (time.Time, error) {
	return time.Parse(ISOLayout, s)
}

func padTwo(s string) string {
	if len(s) >= 2 {
		return s
	}
	return strings.Repeat("0", 2-len(s)) + s
}
