package cpm

import (
	"time"

	"github.com/benju66/Pro-Logic-Scheduler-sub009/internal/graph"
	"github.com/benju66/Pro-Logic-Scheduler-sub009/internal/model"
)

// backwardPass computes late start/finish for every task by walking the
// topological order in reverse. Tasks with no successors default their late
// finish to their own early finish, so the schedule tail carries zero float
// unless a finish-side constraint says otherwise.
func backwardPass(g *graph.ScheduleGraph, order []string, cal *model.Calendar) {
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		t := g.Tasks[id]

		// Work-day span of the task as scheduled. Parents and manual tasks
		// get their effective span from the forward dates, not Duration.
		span := 0
		if !t.Start.IsZero() && !t.End.IsZero() {
			span = cal.CalcWorkDays(t.Start, t.End)
			if span < 0 {
				span = 0
			}
		}

		var lf time.Time
		for _, e := range g.Succ[id] {
			s := g.Tasks[e.To]
			if s.LateStart.IsZero() && s.LateFinish.IsZero() {
				continue
			}
			var cand time.Time
			switch e.Type {
			case model.FinishToStart:
				cand = cal.AddWorkDays(s.LateStart, -(e.Lag + 1))
			case model.StartToStart:
				// SS bounds this task's late start; convert to a finish.
				cand = cal.AddWorkDays(cal.AddWorkDays(s.LateStart, -e.Lag), span)
			case model.FinishToFinish:
				cand = cal.AddWorkDays(s.LateFinish, -e.Lag)
			case model.StartToFinish:
				cand = cal.AddWorkDays(cal.AddWorkDays(s.LateFinish, -e.Lag), span)
			}
			lf = model.MinDate(lf, cand)
		}

		if lf.IsZero() {
			lf = t.End
		}

		// Finish-side constraints.
		switch t.ConstraintType {
		case model.FinishNoLaterThan:
			if !t.ConstraintDate.IsZero() {
				lf = model.MinDate(lf, t.ConstraintDate)
			}
		case model.StartNoLaterThan:
			if !t.ConstraintDate.IsZero() {
				lf = model.MinDate(lf, cal.AddWorkDays(t.ConstraintDate, span))
			}
		case model.MustFinishOn:
			if !t.ConstraintDate.IsZero() {
				lf = cal.NextWorkDay(t.ConstraintDate)
			}
		}

		t.LateFinish = lf
		t.LateStart = cal.AddWorkDays(lf, -span)
	}
}
