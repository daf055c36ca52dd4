package main

import (
	"testing"
	"time"

	"github.com/username/schedule-manager/pkg/dateutil"
)

func TestParseShift(t *testing.T) {
	tests := []struct {
		entry, lunch, exit string
		wantErr            bool
	}{
		{"09:00", "14:00", "18:30", false},
		{"9:00", "14:00", "18:00", false},
		{"25:00", "14:00", "18:00", true},
		{"09:00", "", "18:00", true},
		{"09:00", "14:00", "6pm", true},
	}

	for _, tt := range tests {
		t.Run(tt.entry+"/"+tt.lunch+"/"+tt.exit, func(t *testing.T) {
			entry, _, exit, err := parseShift(tt.entry, tt.lunch, tt.exit)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseShift() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && (entry.Hour != 9 || exit.Hour != 18) {
				t.Errorf("parseShift() entry = %v, exit = %v", entry, exit)
			}
		})
	}
}

func TestDayOrToday(t *testing.T) {
	got, err := dayOrToday("2025-03-10T15:30", time.UTC)
	if err != nil {
		t.Fatalf("dayOrToday() error = %v", err)
	}
	if want := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("dayOrToday() = %v, want %v", got, want)
	}

	today, _ := dayOrToday("", time.UTC)
	if !today.Equal(dateutil.Today(time.UTC)) {
		t.Errorf("dayOrToday(\"\") = %v, want today", today)
	}

	if _, err := dayOrToday("mañana", time.UTC); err == nil {
		t.Error("dayOrToday(mañana) error = nil")
	}
}

func TestParseDays(t *testing.T) {
	days, err := parseDays([]string{"2025-03-10", "11/03/2025"}, time.UTC)
	if err != nil {
		t.Fatalf("parseDays() error = %v", err)
	}
	if len(days) != 2 || days[1].Day() != 11 || days[1].Month() != time.March {
		t.Errorf("parseDays() = %v", days)
	}
}
