package dateonly

import (
	"encoding/json"
	"fmt"
	"time"
)

// Layout is the wire and storage format of a calendar date.
const Layout = "2006-01-02"

// Date is a calendar date without time-of-day. The zero value means "no date".
type Date struct {
	time.Time
}

// New returns the date for the given year, month and day in UTC.
func New(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime truncates t to its calendar date in t's own location.
func FromTime(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	return New(t.Year(), t.Month(), t.Day())
}

// Today returns the current calendar date in the local timezone.
func Today() Date {
	return FromTime(time.Now())
}

// Parse parses a "YYYY-MM-DD" string.
func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(Layout)
}

// Before reports whether d is strictly before u.
func (d Date) Before(u Date) bool {
	return d.Time.Before(u.Time)
}

// After reports whether d is strictly after u.
func (d Date) After(u Date) bool {
	return d.Time.After(u.Time)
}

// Equal reports whether d and u are the same calendar date.
func (d Date) Equal(u Date) bool {
	return d.Time.Equal(u.Time)
}

// Within reports whether d lies in [start, end]. A zero bound is open.
func (d Date) Within(start, end Date) bool {
	if !start.IsZero() && d.Before(start) {
		return false
	}
	if !end.IsZero() && d.After(end) {
		return false
	}
	return true
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	if s == "" {
		d.Time = time.Time{}
		return nil
	}

	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
