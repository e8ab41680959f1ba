package cpm

import (
	"github.com/benju66/Pro-Logic-Scheduler-sub009/internal/graph"
	"github.com/benju66/Pro-Logic-Scheduler-sub009/internal/model"
)

// fnltGraceDays is how far past a finish-no-later-than date a task may slip
// before it escalates from at-risk to critical failure.
const fnltGraceDays = 3

// analyzeHealth classifies every task, first match wins:
//
//  1. blocked — a predecessor reference that doesn't resolve
//  2. critical-failure — FNLT violated by more than the grace window, or
//     negative total float (the schedule is mathematically infeasible)
//  3. at-risk — FNLT violated within the grace window, or critical with
//     under 2 days of float
//  4. forced — manually scheduled dates, nothing else wrong
//  5. healthy — otherwise
func analyzeHealth(g *graph.ScheduleGraph, cal *model.Calendar) {
	for _, id := range g.Order {
		t := g.Tasks[id]
		violation := fnltViolation(t, cal)

		// A violated FNLT always drags float negative, so the grace-window
		// check runs before the infeasibility check or the at-risk band
		// could never match.
		switch {
		case g.Dangling[id]:
			t.Health = model.Blocked
		case violation > fnltGraceDays:
			t.Health = model.CriticalFailure
		case violation > 0:
			t.Health = model.AtRisk
		case t.TotalFloat < 0:
			t.Health = model.CriticalFailure
		case t.IsCritical && t.TotalFloat < 2:
			t.Health = model.AtRisk
		case t.Mode == model.Manual:
			t.Health = model.Forced
		default:
			t.Health = model.Healthy
		}
	}
}

// fnltViolation returns how many work days the task's early finish overruns
// its finish-no-later-than date, or 0 when there is no overrun.
func fnltViolation(t *model.Task, cal *model.Calendar) int {
	if t.ConstraintType != model.FinishNoLaterThan || t.ConstraintDate.IsZero() {
		return 0
	}
	if !t.End.After(t.ConstraintDate) {
		return 0
	}
	return cal.CalcWorkDays(t.ConstraintDate, t.End)
}
