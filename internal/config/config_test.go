package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("TEAM_OWNER", "gerencia")
	path := writeConfig(t, `
database:
  path: /tmp/horarios.db
owner:
  id: ${TEAM_OWNER}
calendar:
  first_weekday: Sunday
  timezone: America/Mexico_City
  pad_trailing: true
daemon:
  schedule: "30 7 * * 1-5"
  lead_days: 5
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Database.Path != "/tmp/horarios.db" {
		t.Errorf("Database.Path = %q", cfg.Database.Path)
	}
	if cfg.Owner.ID != "gerencia" {
		t.Errorf("Owner.ID = %q, want expanded gerencia", cfg.Owner.ID)
	}
	if got := cfg.Calendar.GetFirstWeekday(); got != time.Sunday {
		t.Errorf("GetFirstWeekday() = %v, want Sunday", got)
	}
	if got := cfg.Calendar.GetLocation().String(); got != "America/Mexico_City" {
		t.Errorf("GetLocation() = %v", got)
	}
	if !cfg.Calendar.PadTrailing {
		t.Error("PadTrailing = false, want true")
	}
	if got := cfg.Daemon.GetSchedule(); got != "30 7 * * 1-5" {
		t.Errorf("GetSchedule() = %q", got)
	}
	if got := cfg.Daemon.GetLeadDays(); got != 5 {
		t.Errorf("GetLeadDays() = %d, want 5", got)
	}
	if cfg.Selection.File != DefaultSelection {
		t.Errorf("Selection.File = %q, want default %q", cfg.Selection.File, DefaultSelection)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "owner:\n  id: tienda-1\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Database.Path != DefaultDatabasePath {
		t.Errorf("Database.Path = %q, want %q", cfg.Database.Path, DefaultDatabasePath)
	}
	if got := cfg.Calendar.GetFirstWeekday(); got != time.Monday {
		t.Errorf("GetFirstWeekday() = %v, want Monday", got)
	}
	if got := cfg.Daemon.GetSchedule(); got != DefaultSchedule {
		t.Errorf("GetSchedule() = %q, want %q", got, DefaultSchedule)
	}
	if got := cfg.Daemon.GetLeadDays(); got != DefaultLeadDays {
		t.Errorf("GetLeadDays() = %d, want %d", got, DefaultLeadDays)
	}
}

func TestLoadZeroLeadDays(t *testing.T) {
	cfg, err := Load(writeConfig(t, "daemon:\n  lead_days: 0\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := cfg.Daemon.GetLeadDays(); got != 0 {
		t.Errorf("GetLeadDays() = %d, want 0", got)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SCHEDULE_MANAGER_DATABASE_PATH", "/var/lib/horarios.db")

	cfg, err := Load(writeConfig(t, "owner:\n  id: tienda-1\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Database.Path != "/var/lib/horarios.db" {
		t.Errorf("Database.Path = %q, want env override", cfg.Database.Path)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load(missing) error = nil, want error")
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Database: DatabaseConfig{Path: "x.db"},
			Owner:    OwnerConfig{ID: "owner"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"no database", func(c *Config) { c.Database.Path = "" }, true},
		{"no owner", func(c *Config) { c.Owner.ID = "" }, true},
		{"bad weekday", func(c *Config) { c.Calendar.FirstWeekday = "lunes" }, true},
		{"bad timezone", func(c *Config) { c.Calendar.Timezone = "Mars/Olympus" }, true},
		{"bad cron", func(c *Config) { c.Daemon.Schedule = "every morning" }, true},
		{"negative lead", func(c *Config) { c.Daemon.LeadDays = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
