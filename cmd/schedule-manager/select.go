package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/username/schedule-manager/pkg/dateutil"
)

func selectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Pick days for the next 'schedule add --from-selection'",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "toggle DATE...",
			Short: "Select a day, or unselect it if already selected",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := openApp()
				if err != nil {
					return err
				}
				defer a.Close()

				days, err := parseDays(args, a.planner.Location())
				if err != nil {
					return err
				}
				for _, d := range days {
					mark := "-"
					if a.selection.Toggle(d) {
						mark = "+"
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", mark, d.Format(dateutil.DateLayout))
				}
				return a.selection.Save()
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List the selected days",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := openApp()
				if err != nil {
					return err
				}
				defer a.Close()

				for _, d := range a.selection.Dates() {
					fmt.Fprintln(cmd.OutOrStdout(), d.Format(dateutil.DateLayout))
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Unselect every day",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := openApp()
				if err != nil {
					return err
				}
				defer a.Close()

				a.selection.Clear()
				return a.selection.Save()
			},
		},
	)

	return cmd
}
