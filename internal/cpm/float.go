package cpm

import (
	"github.com/benju66/Pro-Logic-Scheduler-sub009/internal/graph"
	"github.com/benju66/Pro-Logic-Scheduler-sub009/internal/model"
)

// computeFloat derives total and free float for every task, in work days.
// Total float is the slip before the project end moves (LS - ES); free float
// is the slip before any immediate successor is forced to move.
func computeFloat(g *graph.ScheduleGraph, cal *model.Calendar) {
	for _, id := range g.Order {
		t := g.Tasks[id]
		t.TotalFloat = cal.CalcWorkDays(t.Start, t.LateStart)

		edges := g.Succ[id]
		if len(edges) == 0 {
			t.FreeFloat = t.TotalFloat
			continue
		}

		free := 0
		first := true
		for _, e := range edges {
			s := g.Tasks[e.To]
			var slack int
			switch e.Type {
			case model.FinishToStart:
				slack = cal.CalcWorkDays(cal.AddWorkDays(t.End, e.Lag+1), s.Start)
			case model.StartToStart:
				slack = cal.CalcWorkDays(cal.AddWorkDays(t.Start, e.Lag), s.Start)
			case model.FinishToFinish:
				slack = cal.CalcWorkDays(cal.AddWorkDays(t.End, e.Lag), s.End)
			case model.StartToFinish:
				slack = cal.CalcWorkDays(cal.AddWorkDays(t.Start, e.Lag), s.End)
			}
			if first || slack < free {
				free = slack
				first = false
			}
		}
		t.FreeFloat = free
	}
}

// markCritical flags every task with non-positive total float and returns
// the critical count. Runs strictly after computeFloat.
func markCritical(g *graph.ScheduleGraph) int {
	count := 0
	for _, id := range g.Order {
		t := g.Tasks[id]
		t.IsCritical = t.TotalFloat <= 0
		if t.IsCritical {
			count++
		}
	}
	return count
}
