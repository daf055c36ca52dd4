package export

import (
	"io"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/username/schedule-manager/internal/model"
)

const ProductID = "-//schedule-manager//Vacaciones//ES"

// VacationsICS builds a calendar with one all-day event per vacation.
// DTEND is exclusive, so it is the day after the last vacation day.
func VacationsICS(vacations []model.Vacation) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(ProductID)
	cal.SetXWRCalName(VacationSheet)

	for _, v := range vacations {
		if v.StartDate == nil || v.EndDate == nil {
			continue
		}
		ev := cal.AddEvent(v.ID + "@schedule-manager")
		ev.SetDtStampTime(stamp(v.CreatedAt))
		ev.SetSummary(VacationNote + ": " + v.EmployeeName)
		ev.SetAllDayStartAt(*v.StartDate)
		ev.SetAllDayEndAt(v.EndDate.AddDate(0, 0, 1))
		ev.SetProperty(ical.ComponentPropertyColor, v.Color)
	}

	return cal
}

// WriteVacationsICS serializes VacationsICS to w
func WriteVacationsICS(w io.Writer, vacations []model.Vacation) error {
	return VacationsICS(vacations).SerializeTo(w)
}

func stamp(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t.UTC()
}
