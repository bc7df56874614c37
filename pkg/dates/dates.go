// Package dates provides helpers for the fixed textual date formats used
// across gymcore: DD-MM-YYYY for birth dates and DD-MM-YYYY HH:MM for
// session schedules. The reference instant is always passed in by the
// caller so the helpers stay deterministic under test.
package dates

import (
	"fmt"
	"time"
)

// Wire formats.
const (
	DateLayout     = "02-01-2006"
	DateTimeLayout = "02-01-2006 15:04"

	outputDateLayout     = "2006-01-02"
	outputDateTimeLayout = "2006-01-02T15:04"
)

// Age returns the whole years between the birth date and the reference
// instant.
func Age(birthDate string, ref time.Time) (int, error) {
	birth, err := time.Parse(DateLayout, birthDate)
	if err != nil {
		return 0, fmt.Errorf("parse birth date %q: %w", birthDate, err)
	}
	years := ref.Year() - birth.Year()
	if ref.Month() < birth.Month() || (ref.Month() == birth.Month() && ref.Day() < birth.Day()) {
		years--
	}
	return years, nil
}

// IsFuture reports whether the date-time string is strictly after the
// reference instant. Malformed input yields false rather than an error.
func IsFuture(dateTime string, ref time.Time) bool {
	at, err := time.Parse(DateTimeLayout, dateTime)
	if err != nil {
		return false
	}
	return at.After(ref)
}

// Format normalizes a date or date-time string for display. Date-times
// render as 2006-01-02T15:04, bare dates as 2006-01-02.
func Format(input string) (string, error) {
	if at, err := time.Parse(DateTimeLayout, input); err == nil {
		return at.Format(outputDateTimeLayout), nil
	}
	at, err := time.Parse(DateLayout, input)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", input, err)
	}
	return at.Format(outputDateLayout), nil
}

// MustFormat is Format for inputs already validated by the caller; it
// returns the input unchanged when parsing fails so history lines degrade
// instead of dropping the timestamp.
func MustFormat(input string) string {
	out, err := Format(input)
	if err != nil {
		return input
	}
	return out
}
