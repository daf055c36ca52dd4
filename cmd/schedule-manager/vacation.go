package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/username/schedule-manager/internal/export"
	"github.com/username/schedule-manager/internal/model"
	"github.com/username/schedule-manager/pkg/dateutil"
)

func vacationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vacation",
		Aliases: []string{"vacaciones"},
		Short:   "Manage vacations",
	}

	cmd.AddCommand(
		vacationAddCmd(),
		vacationListCmd(),
		vacationDeleteCmd(),
		vacationOnCmd(),
	)

	return cmd
}

func vacationAddCmd() *cobra.Command {
	var start, end, color string

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Schedule a vacation (both days inclusive)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()
			loc := a.planner.Location()

			startDay, err := dateutil.ParseDate(start, loc)
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			endDay := startDay
			if end != "" {
				if endDay, err = dateutil.ParseDate(end, loc); err != nil {
					return fmt.Errorf("--end: %w", err)
				}
			}

			v, err := a.planner.AddVacation(cmd.Context(), args[0], startDay, endDay, color)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "🌴 %s: %s .. %s (%s)\n",
				v.EmployeeName,
				v.StartDate.Format(dateutil.DateLayout),
				v.EndDate.Format(dateutil.DateLayout),
				v.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "First vacation day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Last vacation day (default: same as --start)")
	cmd.Flags().StringVar(&color, "color", model.DefaultVacationColor, "Calendar color (#RRGGBB)")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func vacationListCmd() *cobra.Command {
	var upcoming bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List vacations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			var vacations []model.Vacation
			if upcoming {
				vacations, err = a.planner.UpcomingVacations(cmd.Context(), dateutil.Today(a.planner.Location()))
			} else {
				vacations, err = a.planner.Vacations(cmd.Context())
			}
			if err != nil {
				return err
			}
			return export.RenderVacations(cmd.OutOrStdout(), vacations)
		},
	}

	cmd.Flags().BoolVar(&upcoming, "upcoming", false, "Only vacations that have not ended")
	return cmd
}

func vacationDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a vacation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.planner.DeleteVacation(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "🗑  Vacation %s deleted\n", args[0])
			return nil
		},
	}
}

func vacationOnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "on [DATE]",
		Short: "Show who is on vacation on a day (default: today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			var date string
			if len(args) == 1 {
				date = args[0]
			}
			day, err := dayOrToday(date, a.planner.Location())
			if err != nil {
				return err
			}

			away, err := a.planner.OnVacation(cmd.Context(), day)
			if err != nil {
				return err
			}
			if len(away) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Nobody is on vacation on %s\n", day.Format(dateutil.DateLayout))
				return nil
			}
			names := make([]string, 0, len(away))
			for _, v := range away {
				names = append(names, v.EmployeeName)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", day.Format(dateutil.DateLayout), strings.Join(names, ", "))
			return nil
		},
	}
}
