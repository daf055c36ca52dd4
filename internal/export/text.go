package export

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/username/schedule-manager/internal/calendar"
	"github.com/username/schedule-manager/internal/model"
	"github.com/username/schedule-manager/internal/planner"
	"github.com/username/schedule-manager/pkg/dateutil"
)

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func shortWeekday(wd time.Weekday) string {
	name := []rune(WeekdayName(wd))
	return string(name[:2])
}

// RenderMonth prints a month grid. Days in selected are bracketed and peak
// days carry PeakMark.
func RenderMonth(w io.Writer, slots []calendar.DaySlot, firstWeekday time.Weekday, selected *calendar.DateSet) error {
	tw := newTabWriter(w)

	for _, s := range slots {
		if !s.IsEmpty() {
			fmt.Fprintln(tw, MonthTitle(s.Date))
			break
		}
	}

	header := make([]string, 0, calendar.DaysPerWeek)
	for _, wd := range calendar.Weekdays(firstWeekday) {
		header = append(header, shortWeekday(wd))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t")+"\t")

	for _, row := range calendar.PadRows(slots) {
		cells := make([]string, 0, len(row))
		for _, s := range row {
			var cell string
			switch {
			case s.IsEmpty():
				cells = append(cells, "")
				continue
			case selected != nil && selected.Contains(s.Date):
				cell = fmt.Sprintf("[%d]", s.Date.Day())
			default:
				cell = fmt.Sprintf(" %d", s.Date.Day())
			}
			if calendar.IsPeakDay(s.Date) {
				cell += PeakMark
			}
			cells = append(cells, cell)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t")
	}

	return tw.Flush()
}

// RenderVacationMonth prints the month followed by who is away on each day
func RenderVacationMonth(w io.Writer, month *planner.VacationMonth) error {
	slots := make([]calendar.DaySlot, 0, len(month.Days))
	away := calendar.NewDateSet()
	for _, d := range month.Days {
		slots = append(slots, d.Slot)
		if len(d.Names) > 0 {
			away.Add(d.Slot.Date)
		}
	}
	if err := RenderMonth(w, slots, month.FirstWeekday, away); err != nil {
		return err
	}

	tw := newTabWriter(w)
	fmt.Fprintln(tw)
	for _, d := range month.Days {
		if d.Slot.IsEmpty() || len(d.Names) == 0 {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", d.Slot.Date.Format(dateutil.DateLayout), d.Color, strings.Join(d.Names, ", "))
	}
	return tw.Flush()
}

// RenderWeek prints the week table, one line per schedule field
func RenderWeek(w io.Writer, table *planner.WeekTable) error {
	tw := newTabWriter(w)

	header := []string{NameHeader}
	for _, d := range table.Days {
		header = append(header, fmt.Sprintf("%s %02d", WeekdayName(d.Weekday()), d.Day()))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t")+"\t")

	for _, row := range table.Rows {
		lines := [3][]string{{row.Name}, {""}, {""}}
		for _, c := range row.Cells {
			if c.IsRest() {
				label := RestLabel
				if c.OnVacation {
					label = VacationNote
				}
				lines[0] = append(lines[0], label)
				lines[1] = append(lines[1], "")
				lines[2] = append(lines[2], "")
				continue
			}
			for i, l := range ScheduleLines(c.Schedule) {
				lines[i] = append(lines[i], l)
			}
		}
		for _, l := range lines {
			fmt.Fprintln(tw, strings.Join(l, "\t")+"\t")
		}
	}

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, ScheduleNote)
	return tw.Flush()
}

// RenderDay prints the schedules of a single day
func RenderDay(w io.Writer, day time.Time, schedules []model.Schedule) error {
	tw := newTabWriter(w)
	fmt.Fprintf(tw, "%s %s\n", WeekdayName(day.Weekday()), day.Format(dateutil.DateLayout))

	if len(schedules) == 0 {
		fmt.Fprintln(tw, "Sin horarios")
		return tw.Flush()
	}

	fmt.Fprintln(tw, "ID\tNombre\tEntrada\tComida\tSalida\t")
	for _, s := range schedules {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t\n",
			s.ID, s.EmployeeName, clockOrDash(s.StartAt), clockOrDash(s.LunchAt), clockOrDash(s.EndAt))
	}
	return tw.Flush()
}

// RenderVacations prints a vacation list
func RenderVacations(w io.Writer, vacations []model.Vacation) error {
	tw := newTabWriter(w)
	fmt.Fprintln(tw, "ID\tNombre\tInicio\tFin\tColor\t")
	for _, v := range vacations {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t\n",
			v.ID, v.EmployeeName, dateOrDash(v.StartDate), dateOrDash(v.EndDate), v.Color)
	}
	return tw.Flush()
}

func dateOrDash(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(dateutil.DateLayout)
}
