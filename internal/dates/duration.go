package dates

import (
	"fmt"
	"strings"
	"time"
)

// Duration is an elapsed span in whole years plus remaining whole months.
// Months is always in [0, 11].
type Duration struct {
	Years  int `json:"years"`
	Months int `json:"months"`
}

// TotalMonths returns Years*12 + Months.
func (d Duration) TotalMonths() int {
	return d.Years*12 + d.Months
}

// String renders d with FormatDuration.
func (d Duration) String() string {
	return FormatDuration(d)
}

// CalculateDuration returns the whole-month span from start to end. A nil end
// means today on the wall clock. A partial final month is truncated and an end
// before start yields the zero Duration.
func CalculateDuration(start CalendarDate, end *CalendarDate) Duration {
	return Calculator{}.Duration(start, end)
}

// FormatDuration renders "N month(s)", "N year(s)" or "N year(s) M month(s)".
// The zero Duration renders as "0 months".
func FormatDuration(d Duration) string {
	switch {
	case d.Years == 0:
		return plural(d.Months, "month")
	case d.Months == 0:
		return plural(d.Years, "year")
	default:
		return plural(d.Years, "year") + " " + plural(d.Months, "month")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// Calculator evaluates open-ended ranges against its clock.
type Calculator struct {
	// Now returns the current time. Nil means time.Now.
	Now func() time.Time
}

// NewCalculator creates a Calculator bound to now.
func NewCalculator(now func() time.Time) Calculator {
	return Calculator{Now: now}
}

// Today returns the calculator's current calendar date.
func (c Calculator) Today() CalendarDate {
	return Today(c.Now)
}

// Duration is CalculateDuration evaluated with the calculator's clock.
func (c Calculator) Duration(start CalendarDate, end *CalendarDate) Duration {
	e := c.Today()
	if end != nil {
		e = *end
	}

	total := (e.Year-start.Year)*12 + int(e.Month-start.Month)
	if e.Day < start.Day {
		// the final month is not complete yet
		total--
	}
	if total < 0 {
		return Duration{}
	}
	return Duration{Years: total / 12, Months: total % 12}
}

// Between parses start and end and returns the duration between them. An
// empty end means today.
func (c Calculator) Between(start, end string) (Duration, error) {
	s, err := Parse(start)
	if err != nil {
		return Duration{}, err
	}

	var e *CalendarDate
	if strings.TrimSpace(end) != "" {
		parsed, err := Parse(end)
		if err != nil {
			return Duration{}, err
		}
		e = &parsed
	}

	return c.Duration(s, e), nil
}

// Format is Between followed by FormatDuration.
func (c Calculator) Format(start, end string) (string, error) {
	d, err := c.Between(start, end)
	if err != nil {
		return "", err
	}
	return FormatDuration(d), nil
}
