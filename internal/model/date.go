package model

import (
	"fmt"
	"time"
)

// ISODate is the wire format for all schedule dates.
const ISODate = "2006-01-02"

// ParseDate parses an ISO yyyy-mm-dd date into a normalized UTC midnight.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(ISODate, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return d, nil
}

// FormatDate renders a date as ISO yyyy-mm-dd. Zero dates render empty.
func FormatDate(d time.Time) string {
	if d.IsZero() {
		return ""
	}
	return d.Format(ISODate)
}

// Date builds a normalized UTC date from its components.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Normalize strips the time-of-day and timezone from a date.
func Normalize(d time.Time) time.Time {
	return Date(d.Year(), d.Month(), d.Day())
}

// MinDate returns the earlier of two dates, ignoring zero values.
func MinDate(a, b time.Time) time.Time {
	if a.IsZero() {
		return b
	}
	if b.IsZero() || a.Before(b) {
		return a
	}
	return b
}

// MaxDate returns the later of two dates, ignoring zero values.
func MaxDate(a, b time.Time) time.Time {
	if a.IsZero() {
		return b
	}
	if b.IsZero() || a.After(b) {
		return a
	}
	return b
}
