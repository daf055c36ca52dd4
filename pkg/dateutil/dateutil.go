package dateutil

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the day format used for flags, file state and export
const DateLayout = "2006-01-02"

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// EndOfDay returns the end of the day (23:59:59.999) for the given date
func EndOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 999999999, date.Location())
}

// StartOfMonth returns midnight of the first day of the date's month
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// DaysInMonth returns the number of days in the date's month (28..31)
func DaysInMonth(date time.Time) int {
	// Day 0 of the next month normalizes to the last day of this one
	return time.Date(date.Year(), date.Month()+1, 0, 0, 0, 0, 0, date.Location()).Day()
}

// WeekdayOffset returns how many columns a weekday sits after firstWeekday (0..6)
func WeekdayOffset(weekday, firstWeekday time.Weekday) int {
	return (int(weekday) - int(firstWeekday) + 7) % 7
}

// StartOfWeek returns the first day of the week containing date,
// where weeks begin on firstWeekday
func StartOfWeek(date time.Time, firstWeekday time.Weekday) time.Time {
	return StartOfDay(date.AddDate(0, 0, -WeekdayOffset(date.Weekday(), firstWeekday)))
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// Clock is a time of day with minute precision
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses "HH:MM" (24h)
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return Clock{}, fmt.Errorf("invalid time %q, expected HH:MM: %w", s, err)
	}
	return ClockOf(t), nil
}

// ClockOf extracts the hour and minute of t
func ClockOf(t time.Time) Clock {
	return Clock{Hour: t.Hour(), Minute: t.Minute()}
}

// String formats the clock as HH:MM
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Combine returns the calendar day of date at the given clock time, in loc
func Combine(date time.Time, clock Clock, loc *time.Location) time.Time {
	d := date.In(loc)
	return time.Date(d.Year(), d.Month(), d.Day(), clock.Hour, clock.Minute, 0, 0, loc)
}

// ParseDate parses date string in various formats, interpreted in loc
func ParseDate(dateStr string, loc *time.Location) (time.Time, error) {
	formats := []string{
		DateLayout,
		"02/01/2006",
		"2006-01-02T15:04",
		"2006-01-02T15:04:05",
	}

	for _, format := range formats {
		if t, err := time.ParseInLocation(format, strings.TrimSpace(dateStr), loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", dateStr)
}

// ParseMonth parses "YYYY-MM" into the first day of that month
func ParseMonth(monthStr string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01", strings.TrimSpace(monthStr), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q, expected YYYY-MM: %w", monthStr, err)
	}
	return t, nil
}

// FormatClock12 formats a time as h:mm AM/PM
func FormatClock12(t time.Time) string {
	return t.Format("3:04 PM")
}

// Today returns today's date (start of day) in loc
func Today(loc *time.Location) time.Time {
	return StartOfDay(time.Now().In(loc))
}
