package planner

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestAddVacationValidation(t *testing.T) {
	p := newTestPlanner(t, "owner-1")
	ctx := context.Background()

	tests := []struct {
		name    string
		emp     string
		start   time.Time
		end     time.Time
		color   string
		wantErr error
	}{
		{"valid", "Ana", day(2025, 6, 1), day(2025, 6, 10), "#ff0000", nil},
		{"single day", "Beto", day(2025, 6, 1), day(2025, 6, 1), "", nil},
		{"empty name", "", day(2025, 6, 1), day(2025, 6, 10), "", ErrEmptyName},
		{"reversed range", "Ana", day(2025, 6, 10), day(2025, 6, 1), "", ErrInvalidRange},
		{"bad color", "Ana", day(2025, 7, 1), day(2025, 7, 2), "red", ErrInvalidColor},
		{"duplicate", "Ana", time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC), day(2025, 6, 10), "", ErrDuplicateVacation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.AddVacation(ctx, tt.emp, tt.start, tt.end, tt.color)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("AddVacation() error = %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("AddVacation() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	list, _ := p.Vacations(ctx)
	if len(list) != 2 {
		t.Fatalf("Vacations() = %d, want 2", len(list))
	}
	for _, v := range list {
		if v.EmployeeName == "Ana" && v.Color != "#FF0000" {
			t.Errorf("color = %q, want normalized #FF0000", v.Color)
		}
		if v.EmployeeName == "Beto" && v.Color != "#000000" {
			t.Errorf("color = %q, want default #000000", v.Color)
		}
	}
}

func TestOnVacation(t *testing.T) {
	p := newTestPlanner(t, "owner-1")
	ctx := context.Background()

	p.AddVacation(ctx, "Ana", day(2025, 6, 1), day(2025, 6, 10), "")
	p.AddVacation(ctx, "Beto", day(2025, 6, 10), day(2025, 6, 12), "")

	tests := []struct {
		target time.Time
		want   []string
	}{
		{day(2025, 5, 31), nil},
		{day(2025, 6, 1), []string{"Ana"}},
		{time.Date(2025, 6, 10, 18, 0, 0, 0, time.UTC), []string{"Ana", "Beto"}},
		{day(2025, 6, 11), []string{"Beto"}},
		{day(2025, 6, 13), nil},
	}

	for _, tt := range tests {
		t.Run(tt.target.Format("2006-01-02"), func(t *testing.T) {
			got, err := p.OnVacation(ctx, tt.target)
			if err != nil {
				t.Fatalf("OnVacation() error = %v", err)
			}
			var names []string
			for _, v := range got {
				names = append(names, v.EmployeeName)
			}
			if !reflect.DeepEqual(names, tt.want) {
				t.Errorf("OnVacation(%v) = %v, want %v", tt.target.Format("2006-01-02"), names, tt.want)
			}
		})
	}
}

func TestUpcomingAndStartingVacations(t *testing.T) {
	p := newTestPlanner(t, "owner-1")
	ctx := context.Background()

	p.AddVacation(ctx, "Ana", day(2025, 5, 1), day(2025, 5, 5), "")
	p.AddVacation(ctx, "Beto", day(2025, 5, 20), day(2025, 6, 2), "")
	p.AddVacation(ctx, "Carla", day(2025, 6, 4), day(2025, 6, 8), "")

	upcoming, err := p.UpcomingVacations(ctx, day(2025, 6, 1))
	if err != nil {
		t.Fatalf("UpcomingVacations() error = %v", err)
	}
	if len(upcoming) != 2 {
		t.Errorf("UpcomingVacations() = %d, want 2 (Beto still away, Carla ahead)", len(upcoming))
	}

	starting, err := p.VacationsStarting(ctx, day(2025, 6, 1), 3)
	if err != nil {
		t.Fatalf("VacationsStarting() error = %v", err)
	}
	if len(starting) != 1 || starting[0].EmployeeName != "Carla" {
		t.Errorf("VacationsStarting(06-01, 3) = %v, want [Carla]", starting)
	}

	none, _ := p.VacationsStarting(ctx, day(2025, 6, 1), 2)
	if len(none) != 0 {
		t.Errorf("VacationsStarting(06-01, 2) = %d, want 0", len(none))
	}
}

func TestDeleteVacation(t *testing.T) {
	p := newTestPlanner(t, "owner-1")
	ctx := context.Background()

	v, _ := p.AddVacation(ctx, "Ana", day(2025, 6, 1), day(2025, 6, 10), "")
	if err := p.DeleteVacation(ctx, v.ID); err != nil {
		t.Fatalf("DeleteVacation() error = %v", err)
	}
	if err := p.DeleteVacation(ctx, v.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteVacation(twice) error = %v, want ErrNotFound", err)
	}
}
