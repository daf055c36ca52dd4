package planner

import (
	"context"
	"time"

	"github.com/username/schedule-manager/internal/calendar"
	"github.com/username/schedule-manager/internal/model"
	"github.com/username/schedule-manager/pkg/dateutil"
)

// WeekCell is one collaborator's day in a week table.
// A nil Schedule is a rest day.
type WeekCell struct {
	Day        time.Time
	Schedule   *model.Schedule
	OnVacation bool
}

// IsRest reports whether nothing is scheduled that day
func (c WeekCell) IsRest() bool {
	return c.Schedule == nil
}

// WeekRow holds one collaborator's seven days
type WeekRow struct {
	Name  string
	Cells []WeekCell
}

// WeekTable is the printable week: one row per collaborator
type WeekTable struct {
	Days []time.Time
	Rows []WeekRow
}

// WeekTable builds the table for the week containing weekOf
func (p *Planner) WeekTable(ctx context.Context, weekOf time.Time, firstWeekday time.Weekday) (*WeekTable, error) {
	names, err := p.Collaborators(ctx)
	if err != nil {
		return nil, err
	}
	schedules, err := p.Schedules(ctx)
	if err != nil {
		return nil, err
	}
	vacations, err := p.Vacations(ctx)
	if err != nil {
		return nil, err
	}

	table := &WeekTable{
		Days: calendar.WeekStrip(weekOf.In(p.loc), firstWeekday, calendar.DaysPerWeek),
		Rows: make([]WeekRow, 0, len(names)),
	}

	for _, name := range names {
		row := WeekRow{Name: name, Cells: make([]WeekCell, 0, len(table.Days))}
		own := byName(schedules, name)
		away := make([]model.Vacation, 0)
		for _, v := range vacations {
			if v.EmployeeName == name {
				away = append(away, v)
			}
		}

		for _, day := range table.Days {
			cell := WeekCell{Day: day}
			if matches := calendar.FilterByDay(own, day, model.ScheduleStart); len(matches) > 0 {
				first := earliest(matches)
				cell.Schedule = &first
			}
			cell.OnVacation = len(calendar.FilterByRange(away, day, model.VacationStart, model.VacationEnd)) > 0
			row.Cells = append(row.Cells, cell)
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// VacationDay is a month grid slot annotated with who is away
type VacationDay struct {
	Slot  calendar.DaySlot
	Names []string
	Color string
}

// VacationMonth is the month grid used by the vacation calendar
type VacationMonth struct {
	Month        time.Time
	FirstWeekday time.Weekday
	Days         []VacationDay
}

// VacationMonth builds the vacation calendar for the month containing ref
func (p *Planner) VacationMonth(ctx context.Context, ref time.Time, firstWeekday time.Weekday) (*VacationMonth, error) {
	vacations, err := p.Vacations(ctx)
	if err != nil {
		return nil, err
	}

	ref = ref.In(p.loc)
	slots := calendar.GenerateMonthGrid(ref, firstWeekday)
	month := &VacationMonth{
		Month:        dateutil.StartOfMonth(ref),
		FirstWeekday: firstWeekday,
		Days:         make([]VacationDay, 0, len(slots)),
	}

	for _, slot := range slots {
		day := VacationDay{Slot: slot}
		if !slot.IsEmpty() {
			away := calendar.FilterByRange(vacations, slot.Date, model.VacationStart, model.VacationEnd)
			for _, v := range away {
				day.Names = append(day.Names, v.EmployeeName)
			}
			if len(away) > 0 {
				day.Color = away[0].Color
			}
		}
		month.Days = append(month.Days, day)
	}

	return month, nil
}

// MonthGrid returns the plain grid for ref's month in the planner's location
func (p *Planner) MonthGrid(ref time.Time, firstWeekday time.Weekday) []calendar.DaySlot {
	return calendar.GenerateMonthGrid(ref.In(p.loc), firstWeekday)
}

func byName(schedules []model.Schedule, name string) []model.Schedule {
	out := make([]model.Schedule, 0)
	for _, s := range schedules {
		if s.EmployeeName == name {
			out = append(out, s)
		}
	}
	return out
}

func earliest(schedules []model.Schedule) model.Schedule {
	best := schedules[0]
	for _, s := range schedules[1:] {
		if s.StartAt.Before(*best.StartAt) {
			best = s
		}
	}
	return best
}
