package daemon

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/username/schedule-manager/internal/database"
	"github.com/username/schedule-manager/internal/planner"
	"github.com/username/schedule-manager/internal/store"
	"github.com/username/schedule-manager/pkg/dateutil"
	"go.uber.org/zap"
)

func newTestDaemon(t *testing.T, now time.Time) (*Daemon, *planner.Planner) {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	logger, _ := zap.NewDevelopment()
	p := planner.New(store.NewScheduleStore(db), store.NewVacationStore(db), "owner-1", time.UTC, logger)

	d, err := NewDaemon(p, "0 8 * * *", 3, false, logger)
	if err != nil {
		t.Fatalf("NewDaemon() error = %v", err)
	}
	d.now = func() time.Time { return now }
	return d, p
}

func day(m time.Month, d int) time.Time {
	return time.Date(2025, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewDaemonInvalidSchedule(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	if _, err := NewDaemon(nil, "every day", 3, false, logger); err == nil {
		t.Error("NewDaemon(bad spec) error = nil, want error")
	}
}

func TestRunCheck(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	d, p := newTestDaemon(t, now)
	ctx := context.Background()

	p.AddVacation(ctx, "Ana", day(6, 3), day(6, 10), "")
	p.AddVacation(ctx, "Beto", day(6, 8), day(6, 9), "")
	p.AddVacation(ctx, "Carla", day(5, 30), day(6, 2), "")

	reminders, err := d.runCheck(false)
	if err != nil {
		t.Fatalf("runCheck() error = %v", err)
	}
	if len(reminders) != 1 {
		t.Fatalf("reminders = %d, want 1", len(reminders))
	}

	r := reminders[0]
	if r.Vacation.EmployeeName != "Ana" {
		t.Errorf("reminder for %q, want Ana", r.Vacation.EmployeeName)
	}
	if r.DaysUntil != 2 {
		t.Errorf("DaysUntil = %d, want 2", r.DaysUntil)
	}
	if want := "Ana, tus vacaciones inician pronto."; r.Message != want {
		t.Errorf("Message = %q, want %q", r.Message, want)
	}

	again, err := d.runCheck(false)
	if err != nil {
		t.Fatalf("second runCheck() error = %v", err)
	}
	if again != nil {
		t.Errorf("second runCheck() = %v, want nil (already ran today)", again)
	}

	forced, _ := d.runCheck(true)
	if len(forced) != 1 {
		t.Errorf("forced runCheck() = %d reminders, want 1", len(forced))
	}
}

func TestRunCheckShiftReminders(t *testing.T) {
	now := time.Date(2025, 6, 2, 7, 0, 0, 0, time.UTC)
	d, p := newTestDaemon(t, now)
	ctx := context.Background()

	entry := dateutil.Clock{Hour: 9}
	lunch := dateutil.Clock{Hour: 14}
	exit := dateutil.Clock{Hour: 18}
	p.AddSchedules(ctx, "Ana", []time.Time{day(6, 2)}, entry, lunch, exit)
	p.AddSchedules(ctx, "Beto", []time.Time{day(6, 3)}, entry, lunch, exit)
	p.AddCollaborator(ctx, "Carla")

	reminders, err := d.runCheck(false)
	if err != nil {
		t.Fatalf("runCheck() error = %v", err)
	}
	if len(reminders) != 1 {
		t.Fatalf("reminders = %d, want 1 (only today's shift)", len(reminders))
	}

	r := reminders[0]
	if r.Title != ShiftReminderTitle || r.Schedule == nil || r.Vacation != nil {
		t.Errorf("reminder = %+v, want a shift reminder", r)
	}
	if want := "Recuerda que Ana tiene un horario asignado el 02/06/2025 9:00 AM"; r.Message != want {
		t.Errorf("Message = %q, want %q", r.Message, want)
	}

	status := d.GetStatus()
	if shifts, _ := status["shifts"].([]string); len(shifts) != 1 || shifts[0] != "Ana" {
		t.Errorf("status shifts = %v, want [Ana]", status["shifts"])
	}
}

func TestRunCheckInProgress(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	d, _ := newTestDaemon(t, now)

	d.running = true
	if _, err := d.runCheck(true); !errors.Is(err, ErrCheckInProgress) {
		t.Errorf("runCheck() while running error = %v, want ErrCheckInProgress", err)
	}
	if d.GetStatus()["checking"] != true {
		t.Error("checking = false while a check runs, want true")
	}

	d.running = false
	if _, err := d.runCheck(true); err != nil {
		t.Errorf("runCheck() after finish error = %v", err)
	}
	if d.GetStatus()["checking"] != false {
		t.Error("checking = true after the check, want false")
	}
}

func TestNextRunAndStatus(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	d, _ := newTestDaemon(t, now)

	want := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	if got := d.NextRun(); !got.Equal(want) {
		t.Errorf("NextRun() = %v, want %v", got, want)
	}

	d.CheckNow()
	status := d.GetStatus()
	if status["last_run_date"] != "2025-06-01" {
		t.Errorf("last_run_date = %v, want 2025-06-01", status["last_run_date"])
	}
	if status["running"] != true {
		t.Errorf("running = %v, want true", status["running"])
	}

	d.Stop()
	if d.GetStatus()["running"] != false {
		t.Error("running after Stop() = true, want false")
	}
}
