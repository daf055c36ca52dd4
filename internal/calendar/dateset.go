package calendar

import (
	"sort"
	"time"

	"github.com/username/schedule-manager/pkg/dateutil"
)

type dayKey struct {
	year  int
	month time.Month
	day   int
}

func keyOf(t time.Time) dayKey {
	return dayKey{year: t.Year(), month: t.Month(), day: t.Day()}
}

// DateSet is a set of calendar days. Time of day is ignored on every operation.
// A DateSet is not safe for concurrent use.
type DateSet struct {
	days map[dayKey]time.Time
}

// NewDateSet returns a set holding the given dates
func NewDateSet(dates ...time.Time) *DateSet {
	s := &DateSet{days: make(map[dayKey]time.Time, len(dates))}
	for _, d := range dates {
		s.Add(d)
	}
	return s
}

// Add inserts date. Existing members keep their stored value.
func (s *DateSet) Add(date time.Time) {
	if s.days == nil {
		s.days = make(map[dayKey]time.Time)
	}
	k := keyOf(date)
	if _, ok := s.days[k]; !ok {
		s.days[k] = dateutil.StartOfDay(date)
	}
}

// Remove deletes date if it is a member
func (s *DateSet) Remove(date time.Time) {
	delete(s.days, keyOf(date))
}

// Toggle removes date if present, inserts it otherwise. Returns the new membership.
func (s *DateSet) Toggle(date time.Time) bool {
	if s.Contains(date) {
		s.Remove(date)
		return false
	}
	s.Add(date)
	return true
}

// Contains reports whether date's day is in the set
func (s *DateSet) Contains(date time.Time) bool {
	_, ok := s.days[keyOf(date)]
	return ok
}

// Len returns the number of days in the set
func (s *DateSet) Len() int {
	return len(s.days)
}

// Clear empties the set
func (s *DateSet) Clear() {
	s.days = make(map[dayKey]time.Time)
}

// Dates returns the members as midnight-aligned times in ascending order
func (s *DateSet) Dates() []time.Time {
	out := make([]time.Time, 0, len(s.days))
	for _, d := range s.days {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
