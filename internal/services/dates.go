package services

import "time"

// dateOnly truncates a timestamp to its calendar date at midnight UTC.
// All dates are normalized this way before they reach the database so that
// equality and range comparisons behave the same on every driver.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// today returns the current calendar date at midnight UTC.
func today() time.Time {
	return dateOnly(time.Now())
}
