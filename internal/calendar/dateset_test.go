package calendar

import (
	"testing"
	"time"
)

func TestDateSetToggle(t *testing.T) {
	s := NewDateSet()
	morning := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 3, 10, 21, 15, 0, 0, time.UTC)

	if s.Contains(morning) {
		t.Fatal("empty set contains date")
	}

	if !s.Toggle(morning) {
		t.Error("Toggle() on absent date = false, want true")
	}
	if !s.Contains(evening) {
		t.Error("Contains() ignores day granularity: evening of same day not found")
	}

	if s.Toggle(evening) {
		t.Error("Toggle() on present date = true, want false")
	}
	if s.Contains(morning) {
		t.Error("Contains() after second toggle = true, want false")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestDateSetToggleInvolution(t *testing.T) {
	base := []time.Time{
		time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
	}
	probes := []time.Time{
		time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC),
	}

	for _, p := range probes {
		s := NewDateSet(base...)
		before := s.Contains(p)
		s.Toggle(p)
		if s.Contains(p) == before {
			t.Errorf("Toggle(%v) did not flip membership", p)
		}
		s.Toggle(p)
		if s.Contains(p) != before {
			t.Errorf("double Toggle(%v) changed membership", p)
		}
		if s.Len() != len(base) {
			t.Errorf("double Toggle(%v) Len() = %d, want %d", p, s.Len(), len(base))
		}
	}
}

func TestDateSetDatesSorted(t *testing.T) {
	s := NewDateSet(
		time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 2, 28, 23, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 12, 18, 0, 0, 0, time.UTC),
	)

	got := s.Dates()
	want := []string{"2025-02-28", "2025-03-01", "2025-03-12"}
	if len(got) != len(want) {
		t.Fatalf("Dates() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Format("2006-01-02") != want[i] {
			t.Errorf("Dates()[%d] = %v, want %v", i, got[i].Format("2006-01-02"), want[i])
		}
		if got[i].Hour() != 0 {
			t.Errorf("Dates()[%d] not normalized: %v", i, got[i])
		}
	}
}

func TestDateSetZeroValue(t *testing.T) {
	var s DateSet
	d := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	if s.Contains(d) {
		t.Error("zero DateSet contains date")
	}
	s.Remove(d)
	if !s.Toggle(d) || !s.Contains(d) {
		t.Error("zero DateSet Toggle() did not insert")
	}
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len() after Clear() = %d", s.Len())
	}
}
