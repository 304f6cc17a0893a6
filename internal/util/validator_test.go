package util

import (
	"testing"
)

func TestValidateDate_Valid(t *testing.T) {
	testCases := []string{
		"2024-01-01",
		"2024-12-31",
		"2025-06-15",
	}

	for _, date := range testCases {
		err := ValidateDate(date)
		if err != nil {
			t.Errorf("ValidateDate(%q) error = %v, want nil", date, err)
		}
	}
}

func TestValidateDate_InvalidFormat(t *testing.T) {
	testCases := []string{
		"",
		"2024/01/01",
		"01-01-2024",
		"2024-1-1",
		"not-a-date",
		"2024-13-01",
		"2024-01-32",
	}

	for _, date := range testCases {
		err := ValidateDate(date)
		if err == nil {
			t.Errorf("ValidateDate(%q) error = nil, want error", date)
		}
	}
}

func TestValidateTime_Valid(t *testing.T) {
	testCases := []string{
		"00:00",
		"09:00",
		"14:30",
		"23:59",
		"14:30:00", // seconds tolerated, reads truncate them
	}

	for _, tm := range testCases {
		err := ValidateTime(tm)
		if err != nil {
			t.Errorf("ValidateTime(%q) error = %v, want nil", tm, err)
		}
	}
}

func TestValidateTime_Invalid(t *testing.T) {
	testCases := []string{
		"",
		"9:00",
		"24:00",
		"14:60",
		"14h30",
		"noon",
	}

	for _, tm := range testCases {
		err := ValidateTime(tm)
		if err == nil {
			t.Errorf("ValidateTime(%q) error = nil, want error", tm)
		}
	}
}
