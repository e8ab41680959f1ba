package cpm

import (
	"sort"

	"github.com/benju66/Pro-Logic-Scheduler-sub009/internal/graph"
	"github.com/benju66/Pro-Logic-Scheduler-sub009/internal/model"
)

// rollupParents derives each parent's dates from its children: start is the
// earliest child start, end the latest child end. Parents are processed
// deepest-first so grandparents see already-rolled-up children. Runs before
// the backward pass because parents can have successors of their own.
func rollupParents(g *graph.ScheduleGraph) {
	if len(g.Parents) == 0 {
		return
	}

	depths := g.Depths()
	parents := make([]string, 0, len(g.Parents))
	for id := range g.Parents {
		parents = append(parents, id)
	}
	sort.Slice(parents, func(i, j int) bool {
		if depths[parents[i]] != depths[parents[j]] {
			return depths[parents[i]] > depths[parents[j]]
		}
		return parents[i] < parents[j]
	})

	for _, pid := range parents {
		p := g.Tasks[pid]
		var start, end = p.Start, p.End
		first := true
		for _, cid := range g.Children[pid] {
			c := g.Tasks[cid]
			if c.Start.IsZero() {
				continue
			}
			if first {
				start, end = c.Start, c.End
				first = false
				continue
			}
			start = model.MinDate(start, c.Start)
			end = model.MaxDate(end, c.End)
		}
		if !first {
			p.Start = start
			p.End = end
		}
	}
}
