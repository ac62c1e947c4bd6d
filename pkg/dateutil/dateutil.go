package dateutil

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date form used in loan books and reports.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date in UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return t, nil
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// AddYears adds a specified number of years to a date.
// A February 29 start lands on February 28 in non-leap years instead of rolling into March.
func AddYears(date time.Time, years int) time.Time {
	if date.Month() == time.February && date.Day() == 29 && !IsLeapYear(date.Year()+years) {
		return time.Date(date.Year()+years, time.February, 28, date.Hour(), date.Minute(), date.Second(), date.Nanosecond(), date.Location())
	}
	return date.AddDate(years, 0, 0)
}
