package model

import (
	"fmt"
	"strings"
	"time"
)

// MonthYearLayout is the text layout used for certification dates ("Dec 2024").
const MonthYearLayout = "Jan 2006"

// MonthYear is a calendar month with year granularity.
type MonthYear struct {
	Year  int
	Month time.Month
}

// ParseMonthYear parses text in MonthYearLayout. Surrounding whitespace is ignored.
func ParseMonthYear(s string) (MonthYear, error) {
	t, err := time.Parse(MonthYearLayout, strings.TrimSpace(s))
	if err != nil {
		return MonthYear{}, fmt.Errorf("parse month-year %q: %w", s, err)
	}
	return MonthYear{Year: t.Year(), Month: t.Month()}, nil
}

// Start returns the first instant of the month in UTC. This is the instant
// used when comparing a month against a reference time.
func (m MonthYear) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Before reports whether m is an earlier month than other.
func (m MonthYear) Before(other MonthYear) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}

// String formats the month in MonthYearLayout.
func (m MonthYear) String() string {
	return m.Start().Format(MonthYearLayout)
}

// Long formats the month with the full month name ("February 2026").
func (m MonthYear) Long() string {
	return m.Start().Format("January 2006")
}
