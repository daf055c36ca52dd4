package main

import (
	"github.com/spf13/cobra"
	"github.com/username/schedule-manager/internal/daemon"
	"go.uber.org/zap"
)

func daemonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "daemon",
		Short: "Run the vacation reminder daemon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			d, err := daemon.NewDaemon(
				a.planner,
				a.cfg.Daemon.GetSchedule(),
				a.cfg.Daemon.GetLeadDays(),
				a.cfg.Daemon.SystemTray,
				logger,
			)
			if err != nil {
				return err
			}

			logger.Info("Starting daemon",
				zap.String("schedule", a.cfg.Daemon.GetSchedule()),
				zap.Int("lead_days", a.cfg.Daemon.GetLeadDays()),
				zap.Bool("system_tray", a.cfg.Daemon.SystemTray))

			return d.Start()
		},
	}
}
