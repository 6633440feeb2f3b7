package models

import (
	"fmt"
	"time"
)

// Text layouts used for every persisted timestamp and date.
const (
	TimestampLayout = "2006-01-02 15:04:05"
	DateLayout      = "2006-01-02"
)

// FormatTimestamp renders t in the persisted timestamp layout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// FormatDate renders t in the persisted date layout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DayBounds returns the persisted text bounds [start, end) of the calendar day containing t.
func DayBounds(t time.Time) (string, string) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return FormatTimestamp(start), FormatTimestamp(start.AddDate(0, 0, 1))
}

// MonthStart returns the first day of t's calendar month as a persisted date.
func MonthStart(t time.Time) string {
	return FormatDate(time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()))
}

// SessionMinutes returns the whole minutes elapsed between two persisted timestamps, rounded down.
func SessionMinutes(checkin, checkout string) (int, error) {
	in, err := time.Parse(TimestampLayout, checkin)
	if err != nil {
		return 0, fmt.Errorf("parsing check-in time %q: %w", checkin, err)
	}
	out, err := time.Parse(TimestampLayout, checkout)
	if err != nil {
		return 0, fmt.Errorf("parsing check-out time %q: %w", checkout, err)
	}
	return int(out.Sub(in) / time.Minute), nil
}
