package utils

import (
	"fmt"
	"time"
)

// ParseDay parses a date given as 2025-02-07 or 07/02/25.
func ParseDay(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("02/01/06", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("failed to parse day %q", s)
}

// FormatDay renders a time as its date only.
func FormatDay(t time.Time) string {
	return t.Format("2006-01-02")
}
