package utils

import (
	"fmt"
	"math"
	"time"
)

// SlotMinutes is the length of one bookable interval.
const SlotMinutes = 15

// DateLayout is the calendar-day format used across slot and booking records.
const DateLayout = "2006-01-02"

// TimeLabelToMinutes converts a quarter-hour label like "09:15" into minutes
// from midnight. Labels that are not aligned to 15 minutes are rejected.
func TimeLabelToMinutes(label string) (int, error) {
	t, err := time.Parse("15:04", label)
	if err != nil {
		return 0, fmt.Errorf("invalid time label %q: %w", label, err)
	}
	minutes := t.Hour()*60 + t.Minute()
	if minutes%SlotMinutes != 0 {
		return 0, fmt.Errorf("time label %q is not aligned to %d minutes", label, SlotMinutes)
	}
	return minutes, nil
}

// MinutesToTimeLabel converts minutes from midnight back into a "HH:MM" label.
func MinutesToTimeLabel(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ValidDate reports whether s is a well-formed "YYYY-MM-DD" calendar day.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// RoundPrice rounds a computed price to two decimal places.
func RoundPrice(amount float64) float64 {
	return math.Round(amount*100) / 100
}
