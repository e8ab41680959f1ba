package cpm

import (
	"time"

	"github.com/benju66/Pro-Logic-Scheduler-sub009/internal/graph"
	"github.com/benju66/Pro-Logic-Scheduler-sub009/internal/model"
)

// Calculate runs the full critical path method over the given tasks: index
// construction, forward pass, parent rollup, backward pass, float, critical
// marking, and health classification. It is a pure function of its inputs —
// the input slice is never mutated, and no state survives between calls.
//
// Structural failures (nil input, duplicate IDs, dependency cycles) abort
// the run and surface through Stats.Error; Calculate never panics and never
// returns a Go error. Per-task anomalies (dangling predecessors, violated
// constraints) degrade to health flags on the affected tasks instead.
func Calculate(tasks []model.Task, cal *model.Calendar) *Result {
	started := time.Now()
	result := &Result{Tasks: []model.Task{}}

	fail := func(msg string) *Result {
		result.Stats.Error = msg
		result.Stats.CalcTime = time.Since(started)
		return result
	}

	if tasks == nil {
		return fail("invalid input: task collection is nil")
	}
	if cal == nil {
		cal = model.DefaultCalendar()
	}

	// Work on copies so the caller's slice stays readable during the run.
	working := make([]*model.Task, len(tasks))
	for i := range tasks {
		working[i] = tasks[i].Clone()
		resetComputed(working[i])
	}

	g, err := graph.Build(working)
	if err != nil {
		return fail(err.Error())
	}

	order, err := g.TopoOrder()
	if err != nil {
		return fail(err.Error())
	}

	anchor := projectStart(working, cal)

	forwardPass(g, order, cal, anchor)
	rollupParents(g)
	backwardPass(g, order, cal)
	computeFloat(g, cal)

	critical := markCritical(g)
	analyzeHealth(g, cal)

	result.Tasks = make([]model.Task, len(working))
	for i, t := range working {
		result.Tasks[i] = *t
		result.ProjectStart = model.MinDate(result.ProjectStart, t.Start)
		result.ProjectEnd = model.MaxDate(result.ProjectEnd, t.End)
	}
	for _, id := range order {
		if g.Tasks[id].IsCritical {
			result.CriticalPath = append(result.CriticalPath, id)
		}
	}

	result.Stats = Stats{
		TaskCount:     len(result.Tasks),
		CriticalCount: critical,
		CalcTime:      time.Since(started),
	}
	return result
}

// resetComputed clears the output fields so stale values from a previous run
// can never leak through. Manual tasks keep their caller-supplied dates.
func resetComputed(t *model.Task) {
	if t.Mode != model.Manual {
		t.Start = model.Normalize(t.Start)
		t.End = time.Time{}
	} else {
		t.Start = model.Normalize(t.Start)
		t.End = model.Normalize(t.End)
	}
	t.LateStart = time.Time{}
	t.LateFinish = time.Time{}
	t.TotalFloat = 0
	t.FreeFloat = 0
	t.IsCritical = false
	t.Health = model.Healthy
}

// projectStart picks the anchor date for tasks with no predecessors and no
// explicit start: the earliest explicit start in the set, or today.
func projectStart(tasks []*model.Task, cal *model.Calendar) time.Time {
	var earliest time.Time
	for _, t := range tasks {
		earliest = model.MinDate(earliest, t.Start)
	}
	if earliest.IsZero() {
		earliest = model.Normalize(time.Now().UTC())
	}
	return cal.NextWorkDay(earliest)
}
