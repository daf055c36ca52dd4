package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/username/schedule-manager/internal/model"
	"github.com/username/schedule-manager/internal/planner"
	"github.com/username/schedule-manager/pkg/dateutil"
)

const (
	NameHeader   = "Nombre"
	RestLabel    = "Descanso"
	VacationNote = "Vacaciones"
	ScheduleNote = "Nota: No hay cambios de horarios, solo ajustes de horas."
	PeakMark     = "*" // suffix of peak days in terminal grids
)

var weekdayNames = map[time.Weekday]string{
	time.Monday:    "Lunes",
	time.Tuesday:   "Martes",
	time.Wednesday: "Miércoles",
	time.Thursday:  "Jueves",
	time.Friday:    "Viernes",
	time.Saturday:  "Sábado",
	time.Sunday:    "Domingo",
}

var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// WeekdayName returns the Spanish name of wd
func WeekdayName(wd time.Weekday) string {
	return weekdayNames[wd]
}

// MonthTitle formats t as "Junio 2025"
func MonthTitle(t time.Time) string {
	return fmt.Sprintf("%s %d", monthNames[t.Month()-1], t.Year())
}

// ScheduleLines returns the entry, lunch and exit lines of a schedule
func ScheduleLines(s *model.Schedule) []string {
	return []string{
		"Entrada: " + clockOrDash(s.StartAt),
		"Comida: " + clockOrDash(s.LunchAt),
		"Salida: " + clockOrDash(s.EndAt),
	}
}

// CellText is the week table cell as printed in exports
func CellText(c planner.WeekCell) string {
	if c.IsRest() {
		if c.OnVacation {
			return VacationNote
		}
		return RestLabel
	}
	return strings.Join(ScheduleLines(c.Schedule), "\n")
}

func clockOrDash(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return dateutil.FormatClock12(*t)
}
