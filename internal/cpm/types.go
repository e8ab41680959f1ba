package cpm

import (
	"time"

	"github.com/benju66/Pro-Logic-Scheduler-sub009/internal/model"
)

// Stats summarizes a calculation run. A non-empty Error means the run failed
// and Tasks must not be trusted.
type Stats struct {
	TaskCount     int
	CriticalCount int
	CalcTime      time.Duration
	Error         string
}

// Result is the output of a Calculate call: the input tasks with every
// computed field populated, plus run statistics.
type Result struct {
	Tasks        []model.Task
	Stats        Stats
	CriticalPath []string // critical task IDs in dependency order
	ProjectStart time.Time
	ProjectEnd   time.Time
}

// Failed reports whether the calculation aborted.
func (r *Result) Failed() bool {
	return r.Stats.Error != ""
}

// Task returns the computed task with the given ID, or nil.
func (r *Result) Task(id string) *model.Task {
	for i := range r.Tasks {
		if r.Tasks[i].ID == id {
			return &r.Tasks[i]
		}
	}
	return nil
}
