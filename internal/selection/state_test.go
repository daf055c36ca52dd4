package selection

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestManagerLoadMissingFile(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	m := NewManager(filepath.Join(t.TempDir(), "selection.json"), time.UTC, logger)

	if err := m.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0", m.Len())
	}
}

func TestManagerToggleSaveLoad(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	file := filepath.Join(t.TempDir(), "nested", "selection.json")

	m := NewManager(file, time.UTC, logger)
	m.Load()

	days := []time.Time{
		time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC),
		time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range days {
		if !m.Toggle(d) {
			t.Errorf("Toggle(%v) = false, want true", d)
		}
	}
	if m.Toggle(days[2]) {
		t.Errorf("second Toggle(%v) = true, want false", days[2])
	}

	if err := m.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	reloaded := NewManager(file, time.UTC, logger)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	got := reloaded.Dates()
	want := []time.Time{
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
	}
	if len(got) != len(want) {
		t.Fatalf("Dates() = %v, want %v", got, want)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("Dates()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if !reloaded.Contains(time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)) {
		t.Error("Contains(2025-03-10 23:59) = false, want true")
	}
}

func TestManagerClear(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	file := filepath.Join(t.TempDir(), "selection.json")

	m := NewManager(file, time.UTC, logger)
	m.Add(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	m.Save()

	m.Clear()
	m.Save()

	reloaded := NewManager(file, time.UTC, logger)
	reloaded.Load()
	if reloaded.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", reloaded.Len())
	}
}

func TestManagerLoadSkipsInvalidDays(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	file := filepath.Join(t.TempDir(), "selection.json")

	content := `{"selected_days": ["2025-03-10", "not-a-date", "2025-02-30"]}`
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	m := NewManager(file, time.UTC, logger)
	if err := m.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
}

func TestManagerLoadCorruptFile(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	file := filepath.Join(t.TempDir(), "selection.json")
	os.WriteFile(file, []byte("{"), 0644)

	m := NewManager(file, time.UTC, logger)
	if err := m.Load(); err == nil {
		t.Error("Load() error = nil, want parse error")
	}
}
