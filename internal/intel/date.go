package intel

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date wire format.
const DateLayout = "2006-01-02"

// Date is a calendar date without time of day, always in UTC.
type Date struct {
	t time.Time
}

// NewDate truncates ts to its UTC calendar date.
func NewDate(ts time.Time) Date {
	y, m, d := ts.UTC().Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(value string) (Date, error) {
	ts, err := time.Parse(DateLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("intel: parse date %q: %w", value, err)
	}
	return Date{t: ts}, nil
}

// MustDate is ParseDate for literals known to be valid.
func MustDate(value string) Date {
	d, err := ParseDate(value)
	if err != nil {
		panic(err)
	}
	return d
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time { return d.t }

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

// String renders YYYY-MM-DD.
func (d Date) String() string { return d.t.Format(DateLayout) }

// Display renders the short US form used in panels, e.g. "Jan 15, 2024".
func (d Date) Display() string { return d.t.Format("Jan 2, 2006") }

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
