package utils

import "time"

const dayHours = 24

// AddDays shifts t by a possibly fractional number of days.
func AddDays(t time.Time, days float64) time.Time {
	return t.Add(time.Duration(days * dayHours * float64(time.Hour)))
}

// DaysBetween returns the signed number of days from 'from' to 'to'.
func DaysBetween(from, to time.Time) float64 {
	return to.Sub(from).Hours() / dayHours
}

// FormatDay renders a timestamp as a human-readable day.
func FormatDay(t time.Time) string {
	return t.Format("Mon, 02 Jan 2006")
}
