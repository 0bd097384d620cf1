package utils // package utils provides small pure helpers shared by the risk engine and handlers

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseClock parses a "HH:MM" clock string into its hour and minute
// components.  Show timing fields (required on-site, doors, on stage,
// curfew...) are stored in this format.  The parse is strict: exactly
// two numeric fields, hour 0-23, minute 0-59.  Anything else is a
// contract violation by the caller and returns an error rather than a
// guessed time.
func ParseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid clock time %q: want HH:MM", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid clock time %q: out of range", s)
	}
	return hour, minute, nil
}

// CombineDateClock anchors a "HH:MM" clock string onto the calendar day
// of the given date, with seconds zeroed.  The result stays in the
// date's location; no timezone conversion is performed.
func CombineDateClock(date time.Time, clock string) (time.Time, error) {
	h, m, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), h, m, 0, 0, date.Location()), nil
}

// FormatClock renders a timestamp as a "HH:MM" clock string.
func FormatClock(t time.Time) string {
	return t.Format("15:04")
}
