package main

import (
	"github.com/spf13/cobra"
	"github.com/username/schedule-manager/internal/calendar"
	"github.com/username/schedule-manager/internal/export"
	"github.com/username/schedule-manager/pkg/dateutil"
)

func calendarCmd() *cobra.Command {
	var (
		month     string
		vacations bool
	)

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print a month grid with the selected days marked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()
			loc := a.planner.Location()
			firstWeekday := a.cfg.Calendar.GetFirstWeekday()

			ref := dateutil.Today(loc)
			if month != "" {
				if ref, err = dateutil.ParseMonth(month, loc); err != nil {
					return err
				}
			}

			if vacations {
				m, err := a.planner.VacationMonth(cmd.Context(), ref, firstWeekday)
				if err != nil {
					return err
				}
				return export.RenderVacationMonth(cmd.OutOrStdout(), m)
			}

			slots := a.planner.MonthGrid(ref, firstWeekday)
			if a.cfg.Calendar.PadTrailing {
				slots = calendar.PadTrailing(slots)
			}
			return export.RenderMonth(cmd.OutOrStdout(), slots, firstWeekday, calendar.NewDateSet(a.selection.Dates()...))
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month to print (YYYY-MM, default: current)")
	cmd.Flags().BoolVar(&vacations, "vacations", false, "Mark vacation days instead of the selection")

	return cmd
}
