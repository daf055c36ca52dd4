package daemon

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/username/schedule-manager/internal/model"
	"github.com/username/schedule-manager/internal/planner"
	"github.com/username/schedule-manager/pkg/dateutil"
	"go.uber.org/zap"
)

// Notification titles
const (
	ReminderTitle      = "Recordatorio de Vacaciones"
	ShiftReminderTitle = "Recordatorio de horario"
)

// ErrCheckInProgress is returned when a check starts while another one runs
var ErrCheckInProgress = errors.New("check already in progress")

// Reminder is one notice of the daily check. Exactly one of Vacation and
// Schedule is set.
type Reminder struct {
	Title     string
	Name      string
	Vacation  *model.Vacation
	Schedule  *model.Schedule
	DaysUntil int
	Message   string
}

// Daemon represents the daemon process
type Daemon struct {
	planner     *planner.Planner
	schedule    cron.Schedule
	spec        string
	leadDays    int
	systemTray  bool         // Show system tray icon
	logger      *zap.Logger
	ctx         context.Context
	cancel      context.CancelFunc
	cron        *cron.Cron
	trayApp     *TrayApp
	lastRunDate string       // Track last run date to avoid duplicate reminders
	lastRunTime time.Time    // Track last run time
	lastSent    []Reminder   // Reminders of the last run, for Status
	mu          sync.Mutex   // Protects run state below
	running     bool         // Set while a check queries the database
	now         func() time.Time
}

// NewDaemon creates a daemon that checks for upcoming vacations on a cron schedule
func NewDaemon(p *planner.Planner, spec string, leadDays int, systemTray bool, logger *zap.Logger) (*Daemon, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid daemon schedule %q: %w", spec, err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Daemon{
		planner:    p,
		schedule:   schedule,
		spec:       spec,
		leadDays:   leadDays,
		systemTray: systemTray,
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
		now:        time.Now,
	}, nil
}

// Start starts the daemon. It blocks until Stop or a termination signal.
func (d *Daemon) Start() error {
	// Initialize system tray if enabled (Windows only)
	if d.systemTray {
		d.logger.Info("Initializing system tray")
		trayApp, err := NewTrayApp(d, d.logger)
		if err != nil {
			d.logger.Warn("Failed to initialize system tray", zap.Error(err))
			return d.runScheduledLogic()
		}
		d.trayApp = trayApp
		// Run tray (blocks until Quit)
		d.trayApp.Run()
		return nil
	}

	d.logger.Info("Running without system tray")
	return d.runScheduledLogic()
}

// runScheduledLogic runs the cron loop (called from tray or standalone)
func (d *Daemon) runScheduledLogic() error {
	loc := d.planner.Location()
	d.cron = cron.New(cron.WithLocation(loc))
	if _, err := d.cron.AddFunc(d.spec, d.scheduledCheck); err != nil {
		return fmt.Errorf("failed to schedule reminder check: %w", err)
	}

	// Catch up if today's run was missed while the daemon was down
	now := d.now().In(loc)
	firstToday := d.schedule.Next(dateutil.StartOfDay(now).Add(-time.Second))
	if dateutil.IsSameDay(firstToday, now) && now.After(firstToday) {
		d.logger.Info("Scheduled time already passed today, checking now",
			zap.Time("scheduled_time", firstToday),
			zap.Time("current_time", now))
		d.scheduledCheck()
	}

	d.cron.Start()
	d.logger.Info("Daemon started",
		zap.String("schedule", d.spec),
		zap.Int("lead_days", d.leadDays),
		zap.String("timezone", loc.String()),
		zap.Time("next_run", d.NextRun()))

	// Setup signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-d.ctx.Done():
		d.logger.Info("Daemon stopped")
	case sig := <-sigChan:
		d.logger.Info("Received signal, shutting down",
			zap.String("signal", sig.String()))
		d.Stop()
	}

	<-d.cron.Stop().Done()
	if d.trayApp != nil {
		d.trayApp.Stop()
	}
	return nil
}

// Stop stops the daemon
func (d *Daemon) Stop() {
	d.cancel()
}

// NextRun returns the next scheduled check
func (d *Daemon) NextRun() time.Time {
	return d.schedule.Next(d.now().In(d.planner.Location()))
}

func (d *Daemon) scheduledCheck() {
	reminders, err := d.runCheck(false)
	if err != nil {
		d.logger.Error("Reminder check failed", zap.Error(err))
		if d.trayApp != nil {
			d.trayApp.ShowNotification("Check Failed", fmt.Sprintf("Error: %v", err))
		}
		return
	}
	d.notify(reminders)
}

// runCheck finds the vacations starting within the lead window and the
// shifts of today. Unless force is set, it runs at most once per day.
func (d *Daemon) runCheck(force bool) ([]Reminder, error) {
	d.mu.Lock()
	if d.running {
		d.mu.Unlock()
		d.logger.Warn("Check already running, skipping concurrent execution")
		return nil, ErrCheckInProgress
	}

	today := dateutil.StartOfDay(d.now().In(d.planner.Location()))
	todayStr := today.Format(dateutil.DateLayout)
	if !force && d.lastRunDate == todayStr {
		d.logger.Info("Already checked today, skipping",
			zap.String("last_run_date", d.lastRunDate),
			zap.Time("last_run_time", d.lastRunTime))
		d.mu.Unlock()
		return nil, nil
	}

	d.running = true
	d.mu.Unlock()

	// Query unlocked, running keeps other checks out
	reminders, err := d.collectReminders(today)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.running = false
	if err != nil {
		return nil, err
	}

	d.lastRunDate = todayStr
	d.lastRunTime = d.now()
	d.lastSent = reminders

	d.logger.Info("Reminder check completed",
		zap.String("date", todayStr),
		zap.Int("reminders", len(reminders)))

	return reminders, nil
}

func (d *Daemon) collectReminders(today time.Time) ([]Reminder, error) {
	vacations, err := d.planner.VacationsStarting(d.ctx, today, d.leadDays)
	if err != nil {
		return nil, fmt.Errorf("failed to find upcoming vacations: %w", err)
	}
	shifts, err := d.planner.SchedulesForDay(d.ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to find today's schedules: %w", err)
	}

	reminders := make([]Reminder, 0, len(vacations)+len(shifts))
	for i := range vacations {
		v := &vacations[i]
		days := int(math.Round(dateutil.StartOfDay(*v.StartDate).Sub(today).Hours() / 24))
		reminders = append(reminders, Reminder{
			Title:     ReminderTitle,
			Name:      v.EmployeeName,
			Vacation:  v,
			DaysUntil: days,
			Message:   fmt.Sprintf("%s, tus vacaciones inician pronto.", v.EmployeeName),
		})
	}
	for i := range shifts {
		sc := &shifts[i]
		reminders = append(reminders, Reminder{
			Title:    ShiftReminderTitle,
			Name:     sc.EmployeeName,
			Schedule: sc,
			Message: fmt.Sprintf("Recuerda que %s tiene un horario asignado el %s %s",
				sc.EmployeeName,
				sc.StartAt.Format("02/01/2006"),
				dateutil.FormatClock12(*sc.StartAt)),
		})
	}
	return reminders, nil
}

func (d *Daemon) notify(reminders []Reminder) {
	for _, r := range reminders {
		fields := []zap.Field{zap.String("name", r.Name), zap.String("message", r.Message)}
		if r.Vacation != nil {
			fields = append(fields,
				zap.String("start", r.Vacation.StartDate.Format(dateutil.DateLayout)),
				zap.Int("days_until", r.DaysUntil))
		}
		if r.Schedule != nil {
			fields = append(fields, zap.Time("start_at", *r.Schedule.StartAt))
		}
		d.logger.Info(r.Title, fields...)
		if d.trayApp != nil {
			d.trayApp.ShowNotification(r.Title, r.Message)
		}
	}
}

// CheckNow triggers an immediate check (called from tray menu)
func (d *Daemon) CheckNow() {
	d.logger.Info("Manual check triggered from tray")
	reminders, err := d.runCheck(true)
	if err != nil {
		d.logger.Error("Manual check failed", zap.Error(err))
		if d.trayApp != nil {
			d.trayApp.ShowNotification("Check Failed", fmt.Sprintf("Error: %v", err))
		}
		return
	}
	if len(reminders) == 0 && d.trayApp != nil {
		d.trayApp.ShowNotification(ReminderTitle, "No hay vacaciones ni horarios próximos")
	}
	d.notify(reminders)
}

// GetStatus returns daemon status
func (d *Daemon) GetStatus() map[string]interface{} {
	d.mu.Lock()
	defer d.mu.Unlock()

	var vacations, shifts []string
	for _, r := range d.lastSent {
		if r.Vacation != nil {
			vacations = append(vacations, r.Name)
		} else {
			shifts = append(shifts, r.Name)
		}
	}

	return map[string]interface{}{
		"running":       d.ctx.Err() == nil,
		"checking":      d.running,
		"schedule":      d.spec,
		"lead_days":     d.leadDays,
		"next_run":      d.NextRun().Format(time.RFC3339),
		"last_run_date": d.lastRunDate,
		"reminders":     vacations,
		"shifts":        shifts,
	}
}
