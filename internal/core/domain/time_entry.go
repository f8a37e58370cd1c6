package domain

import "time"

// DateLayout is the wire and storage format for date-only values.
const DateLayout = "2006-01-02"

// TimeEntry is work logged against a project on a given day.
type TimeEntry struct {
	ID          int64     `json:"id"`
	ProjectID   int64     `json:"project_id"`
	Date        time.Time `json:"date"`
	Hours       float64   `json:"hours"`
	Description string    `json:"description"`
}

// ParseDate parses a YYYY-MM-DD string into a UTC calendar date.
// Impossible dates such as 2024-02-30 are rejected.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "date", Reason: "must be a valid YYYY-MM-DD date", Err: err}
	}
	return d, nil
}

// Truncate returns t's calendar date at UTC midnight.
func Truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
