package cpm

import (
	"time"

	"github.com/benju66/Pro-Logic-Scheduler-sub009/internal/graph"
	"github.com/benju66/Pro-Logic-Scheduler-sub009/internal/model"
)

// forwardPass computes early start/finish for every task in topological
// order. Dates are inclusive: a 5-day task starting Monday ends Friday, and
// an FS(0) successor starts the next work day after its predecessor's end.
// Milestones (duration 0) always have end == start.
func forwardPass(g *graph.ScheduleGraph, order []string, cal *model.Calendar, anchor time.Time) {
	for _, id := range order {
		t := g.Tasks[id]

		// Parents take the envelope of their children, which the order
		// guarantees are already computed. Their own duration and
		// constraints don't apply; the rollup stage re-derives the same
		// envelope deepest-first as the authoritative pass.
		if g.IsParent(id) {
			if start, end, ok := childEnvelope(g, id); ok {
				t.Start, t.End = start, end
				continue
			}
		}

		// Manual tasks keep their stored dates and act only as anchors for
		// successors. A manual task without an end gets one derived from its
		// duration so propagation still works.
		if t.Mode == model.Manual && !t.Start.IsZero() {
			if t.End.IsZero() {
				t.End = finishFromStart(cal, t.Start, t.Duration)
			}
			if t.IsMilestone() {
				t.End = t.Start
			}
			continue
		}

		var es time.Time
		for _, e := range g.Pred[id] {
			p := g.Tasks[e.From]
			var cand time.Time
			switch e.Type {
			case model.FinishToStart:
				cand = cal.AddWorkDays(p.End, e.Lag+1)
			case model.StartToStart:
				cand = cal.AddWorkDays(p.Start, e.Lag)
			case model.FinishToFinish:
				cand = startFromFinish(cal, cal.AddWorkDays(p.End, e.Lag), t.Duration)
			case model.StartToFinish:
				cand = startFromFinish(cal, cal.AddWorkDays(p.Start, e.Lag), t.Duration)
			}
			es = model.MaxDate(es, cand)
		}

		// A task held only by the project anchor is fully movable: a dated
		// constraint places it outright instead of maxing against the
		// anchor.
		anchored := false
		if es.IsZero() {
			if !t.Start.IsZero() {
				es = t.Start
			} else {
				es = anchor
				anchored = true
			}
		}
		es = cal.NextWorkDay(es)

		// Start-side constraints apply after dependency propagation.
		if t.ConstraintType == model.StartNoEarlierThan && !t.ConstraintDate.IsZero() {
			cd := cal.NextWorkDay(t.ConstraintDate)
			if anchored {
				es = cd
			} else {
				es = model.MaxDate(es, cd)
			}
		}

		ef := finishFromStart(cal, es, t.Duration)

		switch t.ConstraintType {
		case model.FinishNoEarlierThan:
			if !t.ConstraintDate.IsZero() {
				cd := cal.NextWorkDay(t.ConstraintDate)
				if anchored {
					ef = cd
				} else {
					ef = model.MaxDate(ef, cd)
				}
				es = startFromFinish(cal, ef, t.Duration)
			}
		case model.MustFinishOn:
			if !t.ConstraintDate.IsZero() {
				ef = cal.NextWorkDay(t.ConstraintDate)
				es = startFromFinish(cal, ef, t.Duration)
			}
		}

		t.Start = es
		t.End = ef
	}
}

// childEnvelope returns the min start and max end over a parent's children
// that have dates. ok is false when no child has dates yet.
func childEnvelope(g *graph.ScheduleGraph, id string) (start, end time.Time, ok bool) {
	for _, cid := range g.Children[id] {
		c := g.Tasks[cid]
		if c.Start.IsZero() {
			continue
		}
		if !ok {
			start, end, ok = c.Start, c.End, true
			continue
		}
		start = model.MinDate(start, c.Start)
		end = model.MaxDate(end, c.End)
	}
	return start, end, ok
}

// finishFromStart returns the inclusive finish date of a task starting on
// start with the given work-day duration. Zero duration returns start: the
// milestone identity.
func finishFromStart(cal *model.Calendar, start time.Time, duration int) time.Time {
	if duration <= 0 {
		return start
	}
	return cal.AddWorkDays(start, duration-1)
}

// startFromFinish is the inverse of finishFromStart.
func startFromFinish(cal *model.Calendar, finish time.Time, duration int) time.Time {
	if duration <= 0 {
		return finish
	}
	return cal.AddWorkDays(finish, -(duration - 1))
}
