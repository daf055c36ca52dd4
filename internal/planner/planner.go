package planner

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/username/schedule-manager/internal/calendar"
	"github.com/username/schedule-manager/internal/model"
	"github.com/username/schedule-manager/internal/store"
	"github.com/username/schedule-manager/pkg/dateutil"
	"go.uber.org/zap"
)

var (
	ErrEmptyName          = errors.New("collaborator name is required")
	ErrCollaboratorExists = errors.New("collaborator already exists")
	ErrNoDates            = errors.New("at least one date must be selected")
	ErrNotFound           = errors.New("record not found")
	ErrNoWorkingDay       = errors.New("schedule has no working day")
	ErrInvalidRange       = errors.New("end date is before start date")
	ErrInvalidColor       = errors.New("color must be #RRGGBB")
	ErrDuplicateVacation  = errors.New("vacation already exists for this collaborator on the same dates")
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Planner manages one owner's collaborators, schedules and vacations
type Planner struct {
	schedules *store.ScheduleStore
	vacations *store.VacationStore
	ownerID   string
	loc       *time.Location
	logger    *zap.Logger
}

// New creates a planner scoped to ownerID. Day boundaries are computed in loc.
func New(
	schedules *store.ScheduleStore,
	vacations *store.VacationStore,
	ownerID string,
	loc *time.Location,
	logger *zap.Logger,
) *Planner {
	if loc == nil {
		loc = time.Local
	}
	return &Planner{
		schedules: schedules,
		vacations: vacations,
		ownerID:   ownerID,
		loc:       loc,
		logger:    logger,
	}
}

// Location returns the calendar location the planner compares days in
func (p *Planner) Location() *time.Location {
	return p.loc
}

// AddCollaborator registers a name without any working day
func (p *Planner) AddCollaborator(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	names, err := p.Collaborators(ctx)
	if err != nil {
		return err
	}
	for _, n := range names {
		if n == name {
			return fmt.Errorf("%w: %s", ErrCollaboratorExists, name)
		}
	}

	if _, err := p.schedules.Create(ctx, p.ownerID, name, nil, nil, nil); err != nil {
		return fmt.Errorf("failed to add collaborator: %w", err)
	}

	p.logger.Info("Collaborator added", zap.String("name", name))
	return nil
}

// Collaborators returns every distinct name with a schedule or vacation, sorted
func (p *Planner) Collaborators(ctx context.Context) ([]string, error) {
	schedules, err := p.schedules.ListByOwner(ctx, p.ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	vacations, err := p.vacations.ListByOwner(ctx, p.ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vacations: %w", err)
	}

	names := calendar.UniqueNames(schedules, model.ScheduleName)
	names = append(names, calendar.UniqueNames(vacations, model.VacationName)...)
	return dedupeSorted(names), nil
}

// DeleteCollaborator removes all schedules and vacations of name
func (p *Planner) DeleteCollaborator(ctx context.Context, name string) (int64, error) {
	ns, err := p.schedules.DeleteByName(ctx, p.ownerID, name)
	if err != nil {
		return 0, fmt.Errorf("failed to delete collaborator schedules: %w", err)
	}
	nv, err := p.vacations.DeleteByName(ctx, p.ownerID, name)
	if err != nil {
		return 0, fmt.Errorf("failed to delete collaborator vacations: %w", err)
	}

	p.logger.Info("Collaborator deleted",
		zap.String("name", name),
		zap.Int64("schedules", ns),
		zap.Int64("vacations", nv))

	return ns + nv, nil
}

// DeleteAllCollaborators wipes every record of the owner
func (p *Planner) DeleteAllCollaborators(ctx context.Context) (int64, error) {
	ns, err := p.schedules.DeleteByOwner(ctx, p.ownerID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete schedules: %w", err)
	}
	nv, err := p.vacations.DeleteByOwner(ctx, p.ownerID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete vacations: %w", err)
	}

	p.logger.Warn("All collaborators deleted",
		zap.String("owner_id", p.ownerID),
		zap.Int64("schedules", ns),
		zap.Int64("vacations", nv))

	return ns + nv, nil
}

// AddSchedules saves one schedule per date with the given clock times
func (p *Planner) AddSchedules(ctx context.Context, name string, dates []time.Time, entry, lunch, exit dateutil.Clock) ([]model.Schedule, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(dates) == 0 {
		return nil, ErrNoDates
	}

	// Collapse duplicates and order by day
	days := calendar.NewDateSet()
	for _, d := range dates {
		days.Add(d.In(p.loc))
	}

	shifts := make([]store.Shift, 0, days.Len())
	for _, day := range days.Dates() {
		start := dateutil.Combine(day, entry, p.loc)
		lunchAt := dateutil.Combine(day, lunch, p.loc)
		end := dateutil.Combine(day, exit, p.loc)
		shifts = append(shifts, store.Shift{StartAt: &start, LunchAt: &lunchAt, EndAt: &end})
	}

	// All days are saved or none
	saved, err := p.schedules.CreateBatch(ctx, p.ownerID, name, shifts)
	if err != nil {
		return nil, fmt.Errorf("failed to save schedules: %w", err)
	}

	created := make([]model.Schedule, 0, len(saved))
	for _, sched := range saved {
		created = append(created, p.localSchedule(sched))
	}

	p.logger.Info("Schedules saved",
		zap.String("name", name),
		zap.Int("days", len(created)),
		zap.String("entry", entry.String()),
		zap.String("lunch", lunch.String()),
		zap.String("exit", exit.String()))

	return created, nil
}

// EditSchedule keeps each instant's day and replaces its clock time
func (p *Planner) EditSchedule(ctx context.Context, id string, entry, lunch, exit dateutil.Clock) (*model.Schedule, error) {
	sched, err := p.ownedSchedule(ctx, id)
	if err != nil {
		return nil, err
	}

	// Placeholders have no day of their own, so they stay untouched
	base := sched.StartAt
	if base == nil {
		return nil, fmt.Errorf("%w: schedule %s", ErrNoWorkingDay, id)
	}

	start := dateutil.Combine(dayOr(sched.StartAt, *base), entry, p.loc)
	lunchAt := dateutil.Combine(dayOr(sched.LunchAt, *base), lunch, p.loc)
	end := dateutil.Combine(dayOr(sched.EndAt, *base), exit, p.loc)

	updated, err := p.schedules.UpdateTimes(ctx, id, &start, &lunchAt, &end)
	if err != nil {
		return nil, fmt.Errorf("failed to update schedule: %w", err)
	}

	p.logger.Info("Schedule updated",
		zap.String("id", id),
		zap.String("name", updated.EmployeeName),
		zap.Time("start_at", start))

	local := p.localSchedule(*updated)
	return &local, nil
}

// DeleteSchedule removes a single schedule
func (p *Planner) DeleteSchedule(ctx context.Context, id string) error {
	if _, err := p.ownedSchedule(ctx, id); err != nil {
		return err
	}
	if err := p.schedules.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	p.logger.Info("Schedule deleted", zap.String("id", id))
	return nil
}

// Schedules returns every schedule of the owner, placeholders included
func (p *Planner) Schedules(ctx context.Context) ([]model.Schedule, error) {
	list, err := p.schedules.ListByOwner(ctx, p.ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	for i := range list {
		list[i] = p.localSchedule(list[i])
	}
	return list, nil
}

// SchedulesForDay returns the schedules starting on day, ordered by entry time
func (p *Planner) SchedulesForDay(ctx context.Context, day time.Time) ([]model.Schedule, error) {
	all, err := p.Schedules(ctx)
	if err != nil {
		return nil, err
	}

	out := calendar.FilterByDay(all, day.In(p.loc), model.ScheduleStart)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartAt.Before(*out[j].StartAt)
	})
	return out, nil
}

func (p *Planner) ownedSchedule(ctx context.Context, id string) (*model.Schedule, error) {
	sched, err := p.schedules.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}
	if sched == nil || sched.OwnerID != p.ownerID {
		return nil, fmt.Errorf("%w: schedule %s", ErrNotFound, id)
	}
	return sched, nil
}

func (p *Planner) localSchedule(s model.Schedule) model.Schedule {
	s.StartAt = inLoc(s.StartAt, p.loc)
	s.LunchAt = inLoc(s.LunchAt, p.loc)
	s.EndAt = inLoc(s.EndAt, p.loc)
	return s
}

func inLoc(t *time.Time, loc *time.Location) *time.Time {
	if t == nil {
		return nil
	}
	v := t.In(loc)
	return &v
}

func dayOr(t *time.Time, fallback time.Time) time.Time {
	if t == nil {
		return fallback
	}
	return *t
}

func dedupeSorted(names []string) []string {
	sort.Strings(names)
	out := make([]string, 0, len(names))
	for _, n := range names {
		if len(out) > 0 && out[len(out)-1] == n {
			continue
		}
		out = append(out, n)
	}
	return out
}
