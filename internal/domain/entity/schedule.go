package entity

import (
	"errors"
	"time"
)

// ErrInvalidTimeOfDay is returned when the time-of-day string is not HH:MM.
var ErrInvalidTimeOfDay = errors.New("time of day must be in HH:MM format")

// CombineDateTime merges a calendar date and an HH:MM time-of-day string into
// the single instant used as the slot-collision key. Seconds and fractions
// are zeroed.
func CombineDateTime(date time.Time, timeOfDay string) (time.Time, error) {
	t, err := time.Parse("15:04", timeOfDay)
	if err != nil {
		return time.Time{}, ErrInvalidTimeOfDay
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	), nil
}
