package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

// Config represents application configuration
type Config struct {
	Database  DatabaseConfig  `mapstructure:"database"`
	Owner     OwnerConfig     `mapstructure:"owner"`
	Calendar  CalendarConfig  `mapstructure:"calendar"`
	Selection SelectionConfig `mapstructure:"selection"`
	Daemon    DaemonConfig    `mapstructure:"daemon"`
}

// DatabaseConfig represents SQLite storage configuration
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// OwnerConfig identifies whose records the CLI works on
type OwnerConfig struct {
	ID string `mapstructure:"id"`
}

// CalendarConfig represents calendar grid configuration
type CalendarConfig struct {
	FirstWeekday string `mapstructure:"first_weekday"` // "monday" or "sunday"
	Timezone     string `mapstructure:"timezone"`      // IANA name, empty = local
	PadTrailing  bool   `mapstructure:"pad_trailing"`  // fill the last grid row with empty slots
}

// SelectionConfig represents the editing session storage
type SelectionConfig struct {
	File string `mapstructure:"file"`
}

// DaemonConfig represents daemon mode configuration
type DaemonConfig struct {
	Schedule   string `mapstructure:"schedule"`  // cron expression, 5 fields
	LeadDays   int    `mapstructure:"lead_days"` // remind this many days before a vacation starts
	LogFile    string `mapstructure:"log_file"`
	LogLevel   string `mapstructure:"log_level"`
	SystemTray bool   `mapstructure:"system_tray"` // Show system tray icon (Windows only)
}

const (
	DefaultDatabasePath = "schedule-manager.db"
	DefaultSelection    = "selection.json"
	DefaultSchedule     = "0 8 * * *"
	DefaultLeadDays     = 3
	DefaultOwner        = "default"
)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("database.path", DefaultDatabasePath)
	v.SetDefault("owner.id", "${USER}")
	v.SetDefault("calendar.first_weekday", "monday")
	v.SetDefault("selection.file", DefaultSelection)
	v.SetDefault("daemon.schedule", DefaultSchedule)
	v.SetDefault("daemon.lead_days", DefaultLeadDays)
	v.SetDefault("daemon.log_level", "info")

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.schedule-manager")
		v.AddConfigPath("/etc/schedule-manager")
	}

	// SCHEDULE_MANAGER_DATABASE_PATH and friends
	v.SetEnvPrefix("schedule_manager")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file. Without an explicit path, defaults are enough.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configPath != "" {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.ExpandEnvVars()
	if config.Owner.ID == "" {
		config.Owner.ID = DefaultOwner
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if c.Owner.ID == "" {
		return fmt.Errorf("owner.id is required")
	}

	if c.Calendar.FirstWeekday != "" {
		if _, ok := weekdays[strings.ToLower(c.Calendar.FirstWeekday)]; !ok {
			return fmt.Errorf("calendar.first_weekday must be a weekday name, got '%s'", c.Calendar.FirstWeekday)
		}
	}
	if c.Calendar.Timezone != "" {
		if _, err := time.LoadLocation(c.Calendar.Timezone); err != nil {
			return fmt.Errorf("calendar.timezone: %w", err)
		}
	}

	if c.Daemon.Schedule != "" {
		if _, err := cron.ParseStandard(c.Daemon.Schedule); err != nil {
			return fmt.Errorf("daemon.schedule: %w", err)
		}
	}
	if c.Daemon.LeadDays < 0 {
		return fmt.Errorf("daemon.lead_days must not be negative")
	}

	return nil
}

// GetFirstWeekday returns the first column of the calendar grid. Default: Monday
func (c *CalendarConfig) GetFirstWeekday() time.Weekday {
	if wd, ok := weekdays[strings.ToLower(c.FirstWeekday)]; ok {
		return wd
	}
	return time.Monday
}

// GetLocation returns the location day boundaries are computed in
func (c *CalendarConfig) GetLocation() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// GetSchedule returns the reminder cron expression
func (c *DaemonConfig) GetSchedule() string {
	if c.Schedule == "" {
		return DefaultSchedule
	}
	return c.Schedule
}

// GetLeadDays returns how many days ahead reminders look
// 0 reminds on the start day only.
func (c *DaemonConfig) GetLeadDays() int {
	return c.LeadDays
}

// ExpandEnvVars expands environment variables in config strings
func (c *Config) ExpandEnvVars() {
	c.Owner.ID = os.ExpandEnv(c.Owner.ID)
	c.Database.Path = os.ExpandEnv(c.Database.Path)
	c.Selection.File = os.ExpandEnv(c.Selection.File)
	c.Daemon.LogFile = os.ExpandEnv(c.Daemon.LogFile)
}
