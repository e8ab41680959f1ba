// Package config loads prosched configuration: defaults, then a project
// config file (prosched.toml or .prosched.toml in the working directory),
// then environment variables. Later sources override earlier ones.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/benju66/Pro-Logic-Scheduler-sub009/internal/model"
)

// Config is the full tool configuration.
type Config struct {
	Calendar CalendarConfig `toml:"calendar"`
	Output   OutputConfig   `toml:"output"`
}

// CalendarConfig sets the fallback calendar used when a snapshot carries
// none. Days are 0 (Sunday) through 6 (Saturday).
type CalendarConfig struct {
	WorkingDays []int             `toml:"working_days"`
	Exceptions  map[string]string `toml:"exceptions"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Color bool `toml:"color"`
}

func defaults() *Config {
	return &Config{
		Calendar: CalendarConfig{
			WorkingDays: []int{1, 2, 3, 4, 5}, // Mon-Fri
		},
		Output: OutputConfig{Color: true},
	}
}

// Load builds the configuration from defaults, the project config file, and
// the environment.
func Load() (*Config, error) {
	cfg := defaults()

	path := findProjectConfigFile()
	if override := os.Getenv("PROSCHED_CONFIG"); override != "" {
		path = override
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if os.Getenv("PROSCHED_NO_COLOR") != "" || os.Getenv("NO_COLOR") != "" {
		cfg.Output.Color = false
	}

	for _, d := range cfg.Calendar.WorkingDays {
		if d < 0 || d > 6 {
			return nil, fmt.Errorf("config: working day %d out of range 0-6", d)
		}
	}
	for date := range cfg.Calendar.Exceptions {
		if _, err := model.ParseDate(date); err != nil {
			return nil, fmt.Errorf("config: bad exception date %q", date)
		}
	}

	return cfg, nil
}

func findProjectConfigFile() string {
	for _, name := range []string{"prosched.toml", ".prosched.toml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// BuildCalendar turns the calendar section into a model.Calendar.
func (c *Config) BuildCalendar() *model.Calendar {
	days := make([]time.Weekday, 0, len(c.Calendar.WorkingDays))
	for _, d := range c.Calendar.WorkingDays {
		days = append(days, time.Weekday(d))
	}
	return model.NewCalendar(days, c.Calendar.Exceptions)
}
