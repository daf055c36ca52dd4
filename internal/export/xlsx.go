package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/username/schedule-manager/internal/calendar"
	"github.com/username/schedule-manager/internal/planner"
	"github.com/xuri/excelize/v2"
)

const (
	WeekSheet     = "Horarios"
	VacationSheet = "Vacaciones"
)

// WriteWeekXLSX writes the week table as a single-sheet workbook
func WriteWeekXLSX(w io.Writer, table *planner.WeekTable) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), WeekSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D9D9D9"}},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	cellStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return fmt.Errorf("failed to create cell style: %w", err)
	}

	header := make([]any, 0, len(table.Days)+1)
	header = append(header, NameHeader)
	for _, d := range table.Days {
		header = append(header, WeekdayName(d.Weekday()))
	}
	if err := f.SetSheetRow(WeekSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(header))
	if err := f.SetCellStyle(WeekSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}

	for i, row := range table.Rows {
		values := make([]any, 0, len(row.Cells)+1)
		values = append(values, row.Name)
		for _, c := range row.Cells {
			values = append(values, CellText(c))
		}
		start, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(WeekSheet, start, &values); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", row.Name, err)
		}
		if err := f.SetRowHeight(WeekSheet, i+2, 48); err != nil {
			return err
		}
	}

	lastRow := len(table.Rows) + 1
	if err := f.SetCellStyle(WeekSheet, "A2", lastCol+strconv.Itoa(lastRow), cellStyle); err != nil {
		return err
	}

	noteCell := "A" + strconv.Itoa(lastRow+2)
	if err := f.SetCellValue(WeekSheet, noteCell, ScheduleNote); err != nil {
		return err
	}
	if err := f.MergeCell(WeekSheet, noteCell, lastCol+strconv.Itoa(lastRow+2)); err != nil {
		return err
	}

	if err := f.SetColWidth(WeekSheet, "A", "A", 20); err != nil {
		return err
	}
	if err := f.SetColWidth(WeekSheet, "B", lastCol, 18); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// WriteVacationMonthXLSX writes the vacation calendar as a 7-column sheet.
// Days with someone away are filled with that vacation's color.
func WriteVacationMonthXLSX(w io.Writer, month *planner.VacationMonth) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), VacationSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create title style: %w", err)
	}
	dayStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return fmt.Errorf("failed to create day style: %w", err)
	}

	if err := f.SetCellValue(VacationSheet, "A1", MonthTitle(month.Month)); err != nil {
		return err
	}
	if err := f.MergeCell(VacationSheet, "A1", "G1"); err != nil {
		return err
	}
	if err := f.SetCellStyle(VacationSheet, "A1", "G1", titleStyle); err != nil {
		return err
	}

	for i, wd := range calendar.Weekdays(month.FirstWeekday) {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		if err := f.SetCellValue(VacationSheet, cell, WeekdayName(wd)); err != nil {
			return err
		}
	}

	// Styles are shared per color
	fills := make(map[string]int)
	for i, day := range month.Days {
		if day.Slot.IsEmpty() {
			continue
		}
		col := i%calendar.DaysPerWeek + 1
		row := i/calendar.DaysPerWeek + 3
		cell, _ := excelize.CoordinatesToCellName(col, row)

		text := strconv.Itoa(day.Slot.Date.Day())
		if len(day.Names) > 0 {
			text += "\n" + strings.Join(day.Names, ", ")
		}
		if err := f.SetCellValue(VacationSheet, cell, text); err != nil {
			return err
		}

		style := dayStyle
		if day.Color != "" {
			id, ok := fills[day.Color]
			if !ok {
				id, err = f.NewStyle(&excelize.Style{
					Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
					Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
					Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{strings.TrimPrefix(day.Color, "#")}},
				})
				if err != nil {
					return fmt.Errorf("failed to create fill for %s: %w", day.Color, err)
				}
				fills[day.Color] = id
			}
			style = id
		}
		if err := f.SetCellStyle(VacationSheet, cell, cell, style); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(VacationSheet, "A", "G", 16); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
