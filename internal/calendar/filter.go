package calendar

import (
	"sort"
	"time"

	"github.com/username/schedule-manager/pkg/dateutil"
)

// TimeField reads an optional instant from a record. nil means missing.
type TimeField[T any] func(T) *time.Time

// NameField reads a name from a record. The empty string means missing.
type NameField[T any] func(T) string

// FilterByDay returns the records whose field falls on target's calendar day.
// Both sides are compared in target's location.
func FilterByDay[T any](records []T, target time.Time, field TimeField[T]) []T {
	out := make([]T, 0)
	for _, r := range records {
		v := field(r)
		if v == nil || v.IsZero() {
			continue
		}
		if dateutil.IsSameDay(v.In(target.Location()), target) {
			out = append(out, r)
		}
	}
	return out
}

// FilterByRange returns the records whose [start, end] day range contains
// target's day, inclusive on both ends. Records missing either bound are skipped.
func FilterByRange[T any](records []T, target time.Time, start, end TimeField[T]) []T {
	day := dateutil.StartOfDay(target)
	loc := target.Location()

	out := make([]T, 0)
	for _, r := range records {
		s, e := start(r), end(r)
		if s == nil || e == nil || s.IsZero() || e.IsZero() {
			continue
		}
		from := dateutil.StartOfDay(s.In(loc))
		to := dateutil.StartOfDay(e.In(loc))
		if !day.Before(from) && !day.After(to) {
			out = append(out, r)
		}
	}
	return out
}

// UniqueNames returns the distinct non-empty names across records, sorted
func UniqueNames[T any](records []T, name NameField[T]) []string {
	seen := make(map[string]struct{}, len(records))
	out := make([]string, 0)
	for _, r := range records {
		n := name(r)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
