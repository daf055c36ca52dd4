package planner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/username/schedule-manager/internal/calendar"
	"github.com/username/schedule-manager/internal/model"
	"github.com/username/schedule-manager/pkg/dateutil"
	"go.uber.org/zap"
)

// AddVacation schedules an inclusive vacation range for a collaborator
func (p *Planner) AddVacation(ctx context.Context, name string, start, end time.Time, color string) (*model.Vacation, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	start = dateutil.StartOfDay(start.In(p.loc))
	end = dateutil.StartOfDay(end.In(p.loc))
	if end.Before(start) {
		return nil, ErrInvalidRange
	}

	if color == "" {
		color = model.DefaultVacationColor
	}
	if !hexColor.MatchString(color) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, color)
	}
	color = strings.ToUpper(color)

	existing, err := p.Vacations(ctx)
	if err != nil {
		return nil, err
	}
	for _, v := range existing {
		if v.EmployeeName == name &&
			v.StartDate != nil && dateutil.IsSameDay(*v.StartDate, start) &&
			v.EndDate != nil && dateutil.IsSameDay(*v.EndDate, end) {
			return nil, fmt.Errorf("%w: %s %s..%s", ErrDuplicateVacation, name,
				start.Format(dateutil.DateLayout), end.Format(dateutil.DateLayout))
		}
	}

	v, err := p.vacations.Create(ctx, p.ownerID, name, start, end, color)
	if err != nil {
		return nil, fmt.Errorf("failed to save vacation: %w", err)
	}

	p.logger.Info("Vacation scheduled",
		zap.String("name", name),
		zap.String("start", start.Format(dateutil.DateLayout)),
		zap.String("end", end.Format(dateutil.DateLayout)),
		zap.String("color", color))

	local := p.localVacation(*v)
	return &local, nil
}

// DeleteVacation removes a vacation owned by the planner's owner
func (p *Planner) DeleteVacation(ctx context.Context, id string) error {
	v, err := p.vacations.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load vacation: %w", err)
	}
	if v == nil || v.OwnerID != p.ownerID {
		return fmt.Errorf("%w: vacation %s", ErrNotFound, id)
	}
	if err := p.vacations.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete vacation: %w", err)
	}

	p.logger.Info("Vacation deleted", zap.String("id", id), zap.String("name", v.EmployeeName))
	return nil
}

// Vacations returns all vacations ordered by start date
func (p *Planner) Vacations(ctx context.Context) ([]model.Vacation, error) {
	list, err := p.vacations.ListByOwner(ctx, p.ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vacations: %w", err)
	}
	for i := range list {
		list[i] = p.localVacation(list[i])
	}
	return list, nil
}

// UpcomingVacations returns vacations that have not ended before today
func (p *Planner) UpcomingVacations(ctx context.Context, today time.Time) ([]model.Vacation, error) {
	all, err := p.Vacations(ctx)
	if err != nil {
		return nil, err
	}

	day := dateutil.StartOfDay(today.In(p.loc))
	out := make([]model.Vacation, 0, len(all))
	for _, v := range all {
		if v.EndDate != nil && !dateutil.StartOfDay(*v.EndDate).Before(day) {
			out = append(out, v)
		}
	}
	return out, nil
}

// OnVacation returns the vacations covering day
func (p *Planner) OnVacation(ctx context.Context, day time.Time) ([]model.Vacation, error) {
	all, err := p.Vacations(ctx)
	if err != nil {
		return nil, err
	}
	return calendar.FilterByRange(all, day.In(p.loc), model.VacationStart, model.VacationEnd), nil
}

// VacationsStarting returns vacations whose first day falls in [from, from+days]
func (p *Planner) VacationsStarting(ctx context.Context, from time.Time, days int) ([]model.Vacation, error) {
	all, err := p.Vacations(ctx)
	if err != nil {
		return nil, err
	}

	first := dateutil.StartOfDay(from.In(p.loc))
	out := make([]model.Vacation, 0)
	for i := 0; i <= days; i++ {
		out = append(out, calendar.FilterByDay(all, first.AddDate(0, 0, i), model.VacationStart)...)
	}
	return out, nil
}

func (p *Planner) localVacation(v model.Vacation) model.Vacation {
	v.StartDate = inLoc(v.StartDate, p.loc)
	v.EndDate = inLoc(v.EndDate, p.loc)
	return v
}
