package calendar

import (
	"time"

	"github.com/username/schedule-manager/pkg/dateutil"
)

// DaysPerWeek is the width of a month grid row
const DaysPerWeek = 7

// DaySlot is one cell of a month grid. The zero value is an empty padding slot.
type DaySlot struct {
	Date time.Time
}

// Day returns a slot carrying date normalized to midnight
func Day(date time.Time) DaySlot {
	return DaySlot{Date: dateutil.StartOfDay(date)}
}

// IsEmpty reports whether the slot is padding
func (s DaySlot) IsEmpty() bool {
	return s.Date.IsZero()
}

// GenerateMonthGrid returns the day slots for the month containing ref.
// The first real day is preceded by enough empty slots to land on its
// weekday column, counting columns from firstWeekday. The final row is
// not padded.
func GenerateMonthGrid(ref time.Time, firstWeekday time.Weekday) []DaySlot {
	first := dateutil.StartOfMonth(ref)
	offset := dateutil.WeekdayOffset(first.Weekday(), firstWeekday)
	days := dateutil.DaysInMonth(first)

	slots := make([]DaySlot, offset, offset+days)
	for d := 0; d < days; d++ {
		slots = append(slots, DaySlot{Date: first.AddDate(0, 0, d)})
	}
	return slots
}

// PadTrailing appends empty slots until the grid fills complete rows
func PadTrailing(slots []DaySlot) []DaySlot {
	if rem := len(slots) % DaysPerWeek; rem != 0 {
		slots = append(slots, make([]DaySlot, DaysPerWeek-rem)...)
	}
	return slots
}

// PadRows splits a grid into rows of seven. The last row may be shorter.
func PadRows(slots []DaySlot) [][]DaySlot {
	rows := make([][]DaySlot, 0, (len(slots)+DaysPerWeek-1)/DaysPerWeek)
	for start := 0; start < len(slots); start += DaysPerWeek {
		end := min(start+DaysPerWeek, len(slots))
		rows = append(rows, slots[start:end])
	}
	return rows
}

// WeekStrip returns n consecutive days starting at the first day of ref's week
func WeekStrip(ref time.Time, firstWeekday time.Weekday, n int) []time.Time {
	start := dateutil.StartOfWeek(ref, firstWeekday)
	days := make([]time.Time, 0, max(n, 0))
	for i := 0; i < n; i++ {
		days = append(days, start.AddDate(0, 0, i))
	}
	return days
}

// Weekdays returns the seven weekdays in column order starting at firstWeekday
func Weekdays(firstWeekday time.Weekday) []time.Weekday {
	out := make([]time.Weekday, DaysPerWeek)
	for i := range out {
		out[i] = time.Weekday((int(firstWeekday) + i) % DaysPerWeek)
	}
	return out
}

// IsPeakDay reports whether date is the 15th or the 30th of its month
func IsPeakDay(date time.Time) bool {
	d := date.Day()
	return d == 15 || d == 30
}
