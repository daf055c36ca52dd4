package selection

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/username/schedule-manager/internal/calendar"
	"github.com/username/schedule-manager/pkg/dateutil"
	"go.uber.org/zap"
)

// State is the on-disk form of the editing session
type State struct {
	SelectedDays []string `json:"selected_days"` // YYYY-MM-DD, ascending
	UpdatedAt    string   `json:"updated_at,omitempty"`
}

// Manager keeps the set of days picked in the calendar between CLI runs
type Manager struct {
	stateFile string
	loc       *time.Location
	days      *calendar.DateSet
	logger    *zap.Logger
}

// NewManager creates a selection manager backed by stateFile
func NewManager(stateFile string, loc *time.Location, logger *zap.Logger) *Manager {
	if loc == nil {
		loc = time.Local
	}
	return &Manager{
		stateFile: stateFile,
		loc:       loc,
		days:      calendar.NewDateSet(),
		logger:    logger,
	}
}

// Load reads the session from file. A missing file is an empty session.
func (m *Manager) Load() error {
	m.days.Clear()

	data, err := os.ReadFile(m.stateFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read selection file: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("failed to parse selection file: %w", err)
	}

	for _, s := range state.SelectedDays {
		d, err := time.ParseInLocation(dateutil.DateLayout, s, m.loc)
		if err != nil {
			m.logger.Warn("Skipping invalid selected day", zap.String("value", s), zap.Error(err))
			continue
		}
		m.days.Add(d)
	}

	m.logger.Debug("Selection loaded", zap.Int("days", m.days.Len()))
	return nil
}

// Save writes the session to file
func (m *Manager) Save() error {
	dates := m.days.Dates()
	state := State{
		SelectedDays: make([]string, len(dates)),
		UpdatedAt:    time.Now().Format(time.RFC3339),
	}
	for i, d := range dates {
		state.SelectedDays[i] = d.Format(dateutil.DateLayout)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal selection: %w", err)
	}

	if dir := filepath.Dir(m.stateFile); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create selection directory: %w", err)
		}
	}
	if err := os.WriteFile(m.stateFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write selection file: %w", err)
	}

	m.logger.Debug("Selection saved", zap.Strings("days", state.SelectedDays))
	return nil
}

// Toggle flips date and reports whether it is now selected
func (m *Manager) Toggle(date time.Time) bool {
	return m.days.Toggle(date.In(m.loc))
}

// Add selects date without toggling
func (m *Manager) Add(date time.Time) {
	m.days.Add(date.In(m.loc))
}

func (m *Manager) Contains(date time.Time) bool {
	return m.days.Contains(date.In(m.loc))
}

// Dates returns the selected days in ascending order
func (m *Manager) Dates() []time.Time {
	return m.days.Dates()
}

func (m *Manager) Len() int {
	return m.days.Len()
}

// Clear empties the session. Call Save to persist it.
func (m *Manager) Clear() {
	m.days.Clear()
}
