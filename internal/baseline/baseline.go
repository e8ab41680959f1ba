// Package baseline persists a computed schedule under .prosched/ so later
// runs can report slippage against it. Only dates are stored; everything
// else is recomputed.
package baseline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/benju66/Pro-Logic-Scheduler-sub009/internal/cpm"
	"github.com/benju66/Pro-Logic-Scheduler-sub009/internal/model"
)

const baselineDir = ".prosched"
const baselineFile = "baseline.json"

// TaskDates is the stored date pair for one task.
type TaskDates struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Baseline is a saved schedule.
type Baseline struct {
	ProjectName string                `json:"project_name"`
	SavedAt     time.Time             `json:"saved_at"`
	Tasks       map[string]*TaskDates `json:"tasks"`

	mu   sync.Mutex `json:"-"`
	path string     `json:"-"`
}

// New captures a calculation result as a new baseline and persists it.
func New(projectName string, result *cpm.Result) (*Baseline, error) {
	if err := os.MkdirAll(baselineDir, 0755); err != nil {
		return nil, fmt.Errorf("create baseline dir: %w", err)
	}

	b := &Baseline{
		ProjectName: projectName,
		SavedAt:     time.Now(),
		Tasks:       make(map[string]*TaskDates, len(result.Tasks)),
		path:        filepath.Join(baselineDir, baselineFile),
	}
	for i := range result.Tasks {
		t := &result.Tasks[i]
		b.Tasks[t.ID] = &TaskDates{
			Start: model.FormatDate(t.Start),
			End:   model.FormatDate(t.End),
		}
	}

	if err := b.Save(); err != nil {
		return nil, err
	}
	return b, nil
}

// Load reads the stored baseline from disk.
func Load() (*Baseline, error) {
	path := filepath.Join(baselineDir, baselineFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read baseline: %w", err)
	}

	var b Baseline
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse baseline: %w", err)
	}
	b.path = path
	return &b, nil
}

// Exists checks whether a baseline has been saved.
func Exists() bool {
	_, err := os.Stat(filepath.Join(baselineDir, baselineFile))
	return err == nil
}

// Save persists the baseline to disk.
func (b *Baseline) Save() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal baseline: %w", err)
	}
	return os.WriteFile(b.path, data, 0644)
}

// Get returns the stored dates for a task, or nil if it wasn't in the
// baseline.
func (b *Baseline) Get(taskID string) *TaskDates {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.Tasks[taskID]
}

// Clean removes the baseline directory.
func Clean() error {
	return os.RemoveAll(baselineDir)
}
