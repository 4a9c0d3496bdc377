package utils

import "time"

// StartCurrentDay truncates a timestamp to 00:00 of the same day, keeping
// the timezone.
func StartCurrentDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
