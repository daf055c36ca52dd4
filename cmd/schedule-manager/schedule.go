package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/schedule-manager/internal/export"
	"github.com/username/schedule-manager/internal/recurrence"
	"github.com/username/schedule-manager/pkg/dateutil"
	"go.uber.org/zap"
)

func scheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "schedule",
		Aliases: []string{"horario"},
		Short:   "Manage working schedules",
	}

	cmd.AddCommand(
		scheduleAddCmd(),
		scheduleListCmd(),
		scheduleEditCmd(),
		scheduleDeleteCmd(),
		scheduleWeekCmd(),
	)

	return cmd
}

func scheduleAddCmd() *cobra.Command {
	var (
		entry, lunch, exit string
		dates              []string
		rrule, from, until string
		fromSelection      bool
	)

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Save one schedule per selected day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entryClock, lunchClock, exitClock, err := parseShift(entry, lunch, exit)
			if err != nil {
				return err
			}

			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()
			loc := a.planner.Location()

			days, err := parseDays(dates, loc)
			if err != nil {
				return err
			}

			if rrule != "" {
				start, err := dayOrToday(from, loc)
				if err != nil {
					return err
				}
				var end time.Time
				if until != "" {
					if end, err = dateutil.ParseDate(until, loc); err != nil {
						return err
					}
				}
				expanded, err := recurrence.Expand(rrule, start, end)
				if err != nil {
					return err
				}
				days = append(days, expanded...)
			}

			if fromSelection {
				days = append(days, a.selection.Dates()...)
			}

			created, err := a.planner.AddSchedules(cmd.Context(), args[0], days, entryClock, lunchClock, exitClock)
			if err != nil {
				return err
			}

			if fromSelection {
				a.selection.Clear()
				if err := a.selection.Save(); err != nil {
					logger.Warn("Failed to clear selection", zap.Error(err))
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✅ Saved %d schedule(s) for %s\n", len(created), args[0])
			for _, s := range created {
				fmt.Fprintf(cmd.OutOrStdout(), "   %s  %s\n", s.StartAt.Format(dateutil.DateLayout), s.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&entry, "entry", "09:00", "Entry time (HH:MM)")
	cmd.Flags().StringVar(&lunch, "lunch", "14:00", "Lunch time (HH:MM)")
	cmd.Flags().StringVar(&exit, "exit", "18:00", "Exit time (HH:MM)")
	cmd.Flags().StringSliceVar(&dates, "date", nil, "Day to schedule (YYYY-MM-DD), repeatable")
	cmd.Flags().StringVar(&rrule, "rrule", "", "Recurrence rule, e.g. FREQ=WEEKLY;BYDAY=MO,WE;COUNT=6")
	cmd.Flags().StringVar(&from, "from", "", "First day of the recurrence (default: today)")
	cmd.Flags().StringVar(&until, "until", "", "Last day of the recurrence")
	cmd.Flags().BoolVar(&fromSelection, "from-selection", false, "Use the days picked with 'select toggle'")

	return cmd
}

func scheduleListCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the schedules of a day",
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
			schedules, err := a.planner.SchedulesForDay(cmd.Context(), day)
			if err != nil {
				return err
			}
			return export.RenderDay(cmd.OutOrStdout(), day, schedules)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to show (default: today)")
	return cmd
}

func scheduleEditCmd() *cobra.Command {
	var entry, lunch, exit string

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change the times of a schedule, keeping its day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entryClock, lunchClock, exitClock, err := parseShift(entry, lunch, exit)
			if err != nil {
				return err
			}

			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			s, err := a.planner.EditSchedule(cmd.Context(), args[0], entryClock, lunchClock, exitClock)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ %s on %s: %s / %s / %s\n",
				s.EmployeeName,
				s.StartAt.Format(dateutil.DateLayout),
				dateutil.FormatClock12(*s.StartAt),
				dateutil.FormatClock12(*s.LunchAt),
				dateutil.FormatClock12(*s.EndAt))
			return nil
		},
	}

	cmd.Flags().StringVar(&entry, "entry", "", "Entry time (HH:MM)")
	cmd.Flags().StringVar(&lunch, "lunch", "", "Lunch time (HH:MM)")
	cmd.Flags().StringVar(&exit, "exit", "", "Exit time (HH:MM)")
	_ = cmd.MarkFlagRequired("entry")
	_ = cmd.MarkFlagRequired("lunch")
	_ = cmd.MarkFlagRequired("exit")

	return cmd
}

func scheduleDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.planner.DeleteSchedule(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "🗑  Schedule %s deleted\n", args[0])
			return nil
		},
	}
}

func scheduleWeekCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Print the week table",
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
			return export.RenderWeek(cmd.OutOrStdout(), table)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Any day of the week to print (default: today)")
	return cmd
}
