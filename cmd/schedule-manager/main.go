package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/username/schedule-manager/internal/config"
	"github.com/username/schedule-manager/internal/database"
	"github.com/username/schedule-manager/internal/planner"
	"github.com/username/schedule-manager/internal/selection"
	"github.com/username/schedule-manager/internal/store"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	verbose    bool
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "schedule-manager",
		Short:         "Gestor de horarios",
		Long:          "Manage collaborator work schedules and vacations on a month calendar",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Reminders are info messages
			if cmd.Name() == "daemon" {
				verbose = true
			}

			// Load config to get log file path
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Daemon.LogFile != "" {
				logger, err = initFileLogger(cfg.Daemon.LogFile, cfg.Daemon.LogLevel)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger() // Default console logger
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: ./config.yaml, $HOME/.schedule-manager, /etc/schedule-manager)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log info messages to stderr")

	rootCmd.AddCommand(
		collaboratorCmd(),
		scheduleCmd(),
		vacationCmd(),
		calendarCmd(),
		selectCmd(),
		exportCmd(),
		daemonCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app bundles what every command needs
type app struct {
	cfg       *config.Config
	db        *sql.DB
	planner   *planner.Planner
	selection *selection.Manager
}

func openApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	loc := cfg.Calendar.GetLocation()
	p := planner.New(
		store.NewScheduleStore(db),
		store.NewVacationStore(db),
		cfg.Owner.ID,
		loc,
		logger,
	)

	sel := selection.NewManager(cfg.Selection.File, loc, logger)
	if err := sel.Load(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to load selection: %w", err)
	}

	logger.Debug("Application ready",
		zap.String("database", cfg.Database.Path),
		zap.String("owner_id", cfg.Owner.ID),
		zap.String("timezone", loc.String()))

	return &app{cfg: cfg, db: db, planner: p, selection: sel}, nil
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		logger.Warn("Failed to close database", zap.Error(err))
	}
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if !verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	// Setup encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Parse log level
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	// Create core with lumberjack writer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
