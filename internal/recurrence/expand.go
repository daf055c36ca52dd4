package recurrence

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
	"github.com/username/schedule-manager/pkg/dateutil"
)

// MaxOccurrences caps a single expansion
const MaxOccurrences = 366

// DefaultHorizon bounds open-ended rules when no until date is given
const DefaultHorizon = 365 * 24 * time.Hour

var ErrEmptyRule = errors.New("recurrence rule is empty")

// Expand returns the days produced by rule starting at dtstart, up to and
// including until's day. Each result is midnight in dtstart's location.
// Days listed in exclude are dropped.
func Expand(rule string, dtstart, until time.Time, exclude ...time.Time) ([]time.Time, error) {
	rule = strings.TrimSpace(rule)
	rule = strings.TrimPrefix(rule, "RRULE:")
	if rule == "" {
		return nil, ErrEmptyRule
	}

	r, err := rrule.StrToRRule(rule)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rrule %q: %w", rule, err)
	}

	start := dateutil.StartOfDay(dtstart)
	r.DTStart(start)

	var set rrule.Set
	set.RRule(r)
	for _, ex := range exclude {
		set.ExDate(dateutil.StartOfDay(ex.In(start.Location())))
	}

	if until.IsZero() {
		until = start.Add(DefaultHorizon)
	}
	end := dateutil.EndOfDay(until.In(start.Location()))
	if end.Before(start) {
		return nil, fmt.Errorf("until %s is before start %s",
			until.Format(dateutil.DateLayout), start.Format(dateutil.DateLayout))
	}

	occurrences := set.Between(start, end, true)
	if len(occurrences) > MaxOccurrences {
		occurrences = occurrences[:MaxOccurrences]
	}

	out := make([]time.Time, 0, len(occurrences))
	for _, o := range occurrences {
		out = append(out, dateutil.StartOfDay(o.In(start.Location())))
	}
	return out, nil
}
