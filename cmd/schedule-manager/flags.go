package main

import (
	"fmt"
	"time"

	"github.com/username/schedule-manager/pkg/dateutil"
)

// dayOrToday parses value as a day, or returns today when it is empty
func dayOrToday(value string, loc *time.Location) (time.Time, error) {
	if value == "" {
		return dateutil.Today(loc), nil
	}
	d, err := dateutil.ParseDate(value, loc)
	if err != nil {
		return time.Time{}, err
	}
	return dateutil.StartOfDay(d), nil
}

func parseDays(values []string, loc *time.Location) ([]time.Time, error) {
	days := make([]time.Time, 0, len(values))
	for _, v := range values {
		d, err := dateutil.ParseDate(v, loc)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}

// parseShift parses the entry, lunch and exit clocks of a working day
func parseShift(entry, lunch, exit string) (dateutil.Clock, dateutil.Clock, dateutil.Clock, error) {
	var clocks [3]dateutil.Clock
	for i, v := range []struct{ name, value string }{
		{"entry", entry},
		{"lunch", lunch},
		{"exit", exit},
	} {
		c, err := dateutil.ParseClock(v.value)
		if err != nil {
			return clocks[0], clocks[1], clocks[2], fmt.Errorf("--%s: %w", v.name, err)
		}
		clocks[i] = c
	}
	return clocks[0], clocks[1], clocks[2], nil
}
