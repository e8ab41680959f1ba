package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/benju66/Pro-Logic-Scheduler-sub009/internal/model"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PROSCHED_CONFIG", "")
	t.Setenv("PROSCHED_NO_COLOR", "")
	t.Setenv("NO_COLOR", "")
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prosched.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Calendar.WorkingDays) != 5 || cfg.Calendar.WorkingDays[0] != 1 {
		t.Errorf("unexpected default working days %v", cfg.Calendar.WorkingDays)
	}
	if !cfg.Output.Color {
		t.Error("expected color on by default")
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[calendar]
working_days = [0, 1, 2, 3, 4, 5]

[calendar.exceptions]
"2024-12-25" = "Christmas"

[output]
color = false
`)
	t.Setenv("PROSCHED_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Calendar.WorkingDays) != 6 {
		t.Errorf("unexpected working days %v", cfg.Calendar.WorkingDays)
	}
	if cfg.Calendar.Exceptions["2024-12-25"] != "Christmas" {
		t.Errorf("unexpected exceptions %v", cfg.Calendar.Exceptions)
	}
	if cfg.Output.Color {
		t.Error("expected color disabled by config file")
	}
}

func TestLoad_NoColorEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("NO_COLOR", "1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output.Color {
		t.Error("NO_COLOR should disable color")
	}
}

func TestLoad_InvalidWorkingDay(t *testing.T) {
	clearEnv(t)
	t.Setenv("PROSCHED_CONFIG", writeConfig(t, `
[calendar]
working_days = [1, 9]
`))

	if _, err := Load(); err == nil {
		t.Error("expected error for working day out of range")
	}
}

func TestLoad_InvalidExceptionDate(t *testing.T) {
	clearEnv(t)
	t.Setenv("PROSCHED_CONFIG", writeConfig(t, `
[calendar.exceptions]
"not-a-date" = "oops"
`))

	if _, err := Load(); err == nil {
		t.Error("expected error for malformed exception date")
	}
}

func TestBuildCalendar(t *testing.T) {
	cfg := &Config{
		Calendar: CalendarConfig{
			WorkingDays: []int{1, 2, 3, 4, 5},
			Exceptions:  map[string]string{"2024-01-15": "holiday"},
		},
	}
	cal := cfg.BuildCalendar()

	if !cal.IsWorkDay(model.Date(2024, 1, 8)) {
		t.Error("expected Monday to be a work day")
	}
	if cal.IsWorkDay(model.Date(2024, 1, 15)) {
		t.Error("expected exception date to be off")
	}
	if cal.IsWorkDay(model.Date(2024, 1, 13)) {
		t.Error("expected Saturday to be off")
	}
}
