package domain

import (
	"encoding/json"
	"time"
)

// DisplayDateFormat is the literal date layout used across every worksheet,
// e.g. "04-March-2025".
const DisplayDateFormat = "02-January-2006"

// MissingValue is rendered for absent presentation-only fields.
const MissingValue = "N/A"

// Date is a sheet-sourced calendar date. Worksheet cells either hold the
// display format exactly or something unusable; anything unparsable becomes
// a missing Date rather than an error.
type Date struct {
	t     time.Time
	valid bool
}

// ParseDate parses a cell in the display format. Any other value yields a
// missing Date.
func ParseDate(raw string) Date {
	t, err := time.Parse(DisplayDateFormat, raw)
	if err != nil {
		return Date{}
	}
	return Date{t: t, valid: true}
}

// DateOf builds a valid Date from a time, truncated to the day.
func DateOf(t time.Time) Date {
	return Date{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), valid: true}
}

// Valid reports whether the date was parsable.
func (d Date) Valid() bool { return d.valid }

// Time returns the underlying time. Zero when missing.
func (d Date) Time() time.Time {
	if !d.valid {
		return time.Time{}
	}
	return d.t
}

// Year returns the calendar year, or 0 when missing.
func (d Date) Year() int {
	if !d.valid {
		return 0
	}
	return d.t.Year()
}

// Month returns the calendar month, or 0 when missing.
func (d Date) Month() time.Month {
	if !d.valid {
		return 0
	}
	return d.t.Month()
}

// Before orders two dates. A missing date sorts after every valid one so
// ascending sorts keep undated rows at the bottom.
func (d Date) Before(other Date) bool {
	switch {
	case d.valid && other.valid:
		return d.t.Before(other.t)
	case d.valid:
		return true
	default:
		return false
	}
}

// String renders the display format, or "N/A" when missing.
func (d Date) String() string {
	if !d.valid {
		return MissingValue
	}
	return d.t.Format(DisplayDateFormat)
}

// MarshalJSON emits the display format, or null when missing.
func (d Date) MarshalJSON() ([]byte, error) {
	if !d.valid {
		return []byte("null"), nil
	}
	return json.Marshal(d.t.Format(DisplayDateFormat))
}

// UnmarshalJSON accepts the display format or null.
func (d *Date) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*d = Date{}
		return nil
	}
	*d = ParseDate(*raw)
	return nil
}
