package recurrence

import (
	"errors"
	"testing"
	"time"
)

func d(day int) time.Time {
	return time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC)
}

func TestExpand(t *testing.T) {
	tests := []struct {
		name    string
		rule    string
		start   time.Time
		until   time.Time
		exclude []time.Time
		want    []time.Time
	}{
		{
			name:  "weekly count",
			rule:  "FREQ=WEEKLY;BYDAY=MO,WE;COUNT=6",
			start: d(10),
			want:  []time.Time{d(10), d(12), d(17), d(19), d(24), d(26)},
		},
		{
			name:  "daily until inclusive",
			rule:  "FREQ=DAILY",
			start: time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC),
			until: d(12),
			want:  []time.Time{d(10), d(11), d(12)},
		},
		{
			name:    "excluded day",
			rule:    "RRULE:FREQ=DAILY",
			start:   d(10),
			until:   d(12),
			exclude: []time.Time{time.Date(2025, 3, 11, 8, 0, 0, 0, time.UTC)},
			want:    []time.Time{d(10), d(12)},
		},
		{
			name:  "weekdays only",
			rule:  "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR",
			start: d(14),
			until: d(18),
			want:  []time.Time{d(14), d(17), d(18)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.rule, tt.start, tt.until, tt.exclude...)
			if err != nil {
				t.Fatalf("Expand() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Expand() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if !got[i].Equal(tt.want[i]) {
					t.Errorf("Expand()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestExpandCapped(t *testing.T) {
	got, err := Expand("FREQ=DAILY", d(1), time.Time{})
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}
	if len(got) == 0 || len(got) > MaxOccurrences {
		t.Errorf("len(Expand()) = %d, want 1..%d", len(got), MaxOccurrences)
	}
}

func TestExpandErrors(t *testing.T) {
	if _, err := Expand("  ", d(1), d(2)); !errors.Is(err, ErrEmptyRule) {
		t.Errorf("Expand(blank) error = %v, want ErrEmptyRule", err)
	}
	if _, err := Expand("FREQ=SOMETIMES", d(1), d(2)); err == nil {
		t.Error("Expand(bad freq) error = nil, want parse error")
	}
	if _, err := Expand("FREQ=DAILY", d(10), d(1)); err == nil {
		t.Error("Expand(until before start) error = nil")
	}
}
