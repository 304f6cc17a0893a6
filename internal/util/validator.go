package util

import (
	"fmt"
	"time"
)

// ValidateDate checks a calendar date string (must be YYYY-MM-DD).
func ValidateDate(dateStr string) error {
	if dateStr == "" {
		return fmt.Errorf("date is empty")
	}
	if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		return fmt.Errorf("invalid date format: %w", err)
	}
	return nil
}

// ValidateTime checks a publishing time string. HH:mm is the canonical form;
// HH:mm:ss is accepted since reads truncate it back to five characters.
func ValidateTime(timeStr string) error {
	switch len(timeStr) {
	case 5:
		if _, err := time.Parse("15:04", timeStr); err == nil {
			return nil
		}
	case 8:
		if _, err := time.Parse("15:04:05", timeStr); err == nil {
			return nil
		}
	}
	return fmt.Errorf("invalid time format: %q", timeStr)
}
