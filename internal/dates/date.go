// Package dates provides calendar date parsing and whole-month duration math
// for experience entries. All arithmetic works on year/month/day fields and
// never on absolute instants, so results do not depend on the process time zone.
package dates

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownLayout is the cause of a ParseError when no supported layout matches.
var ErrUnknownLayout = errors.New("unrecognized date layout")

// ParseError reports a date string that could not be turned into a CalendarDate.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dates: cannot parse %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// CalendarDate is a year/month/day triple without time of day or zone.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// Date builds a CalendarDate from its fields.
func Date(year int, month time.Month, day int) CalendarDate {
	return CalendarDate{Year: year, Month: month, Day: day}
}

// FromTime returns the calendar date of t in t's own location.
func FromTime(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// Today returns the calendar date of now(), in the location now reports.
// A nil now uses time.Now, which is the local wall clock.
func Today(now func() time.Time) CalendarDate {
	if now == nil {
		now = time.Now
	}
	return FromTime(now())
}

// Before reports whether d falls on an earlier calendar day than other.
func (d CalendarDate) Before(other CalendarDate) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// Equal reports whether d and other are the same calendar day.
func (d CalendarDate) Equal(other CalendarDate) bool {
	return d == other
}

// IsZero reports whether d is the zero value.
func (d CalendarDate) IsZero() bool {
	return d == CalendarDate{}
}

// Time returns midnight UTC of the same calendar day.
func (d CalendarDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String formats d as YYYY-MM-DD.
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalText implements encoding.TextMarshaler.
func (d CalendarDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *CalendarDate) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// layouts are tried in order. Only the date fields of the result are used.
var layouts = []string{
	time.DateOnly,
	"2006/01/02",
	"2006-01",
	"Jan 2006",
	"January 2006",
}

// Parse reads a calendar date. YYYY-MM-DD is the primary form; YYYY/MM/DD,
// YYYY-MM, "Jan 2006", "January 2006" and RFC 3339 timestamps are accepted too.
// Month-precision inputs resolve to the first of the month.
func Parse(s string) (CalendarDate, error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return CalendarDate{}, &ParseError{Input: s, Err: errors.New("empty string")}
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, in); err == nil {
			return FromTime(t), nil
		}
	}

	// Timestamps keep the calendar date of their own offset.
	if t, err := time.Parse(time.RFC3339, in); err == nil {
		return FromTime(t), nil
	}

	return CalendarDate{}, &ParseError{Input: s, Err: ErrUnknownLayout}
}

// MustParse is like Parse but panics on error. Intended for tests and constants.
func MustParse(s string) CalendarDate {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}
