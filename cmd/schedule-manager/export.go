package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/username/schedule-manager/internal/export"
	"github.com/username/schedule-manager/pkg/dateutil"
	"go.uber.org/zap"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export schedules and vacations to files",
	}

	cmd.AddCommand(exportWeekCmd(), exportVacationsCmd(), exportICSCmd())
	return cmd
}

// writeFile creates path and hands it to write
func writeFile(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	logger.Info("Export written", zap.String("path", path))
	return nil
}

func exportWeekCmd() *cobra.Command {
	var out, date string

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Write the week table as XLSX",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			day, err := dayOrToday(date, a.planner.Location())
			if err != nil {
				return err
			}
			table, err := a.planner.WeekTable(cmd.Context(), day, a.cfg.Calendar.GetFirstWeekday())
			if err != nil {
				return err
			}

			if err := writeFile(out, func(w io.Writer) error { return export.WriteWeekXLSX(w, table) }); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "📄 Week of %s written to %s\n", table.Days[0].Format(dateutil.DateLayout), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "horarios.xlsx", "Output file")
	cmd.Flags().StringVar(&date, "date", "", "Any day of the week (default: today)")
	return cmd
}

func exportVacationsCmd() *cobra.Command {
	var out, month string

	cmd := &cobra.Command{
		Use:   "vacations",
		Short: "Write the vacation calendar of a month as XLSX",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()
			loc := a.planner.Location()

			ref := dateutil.Today(loc)
			if month != "" {
				if ref, err = dateutil.ParseMonth(month, loc); err != nil {
					return err
				}
			}
			m, err := a.planner.VacationMonth(cmd.Context(), ref, a.cfg.Calendar.GetFirstWeekday())
			if err != nil {
				return err
			}

			if err := writeFile(out, func(w io.Writer) error { return export.WriteVacationMonthXLSX(w, m) }); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "📄 %s written to %s\n", export.MonthTitle(m.Month), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "vacaciones.xlsx", "Output file")
	cmd.Flags().StringVar(&month, "month", "", "Month (YYYY-MM, default: current)")
	return cmd
}

func exportICSCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "ics",
		Short: "Write every vacation as an iCalendar file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			vacations, err := a.planner.Vacations(cmd.Context())
			if err != nil {
				return err
			}

			if err := writeFile(out, func(w io.Writer) error { return export.WriteVacationsICS(w, vacations) }); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "📅 %d vacation(s) written to %s\n", len(vacations), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "vacaciones.ics", "Output file")
	return cmd
}
