package graph

import (
	"github.com/benju66/Pro-Logic-Scheduler-sub009/internal/model"
)

// Edge is a resolved dependency link between two tasks in the graph.
type Edge struct {
	From string // predecessor ID
	To   string // successor ID
	Type model.DependencyType
	Lag  int // signed work days
}

// ScheduleGraph holds the per-calculation indices over a task set: the
// successor index (Succ), its inverse (Pred), the parent index, and the
// hierarchy children map. Everything is built in one O(N+E) pass and
// discarded after the calculation.
type ScheduleGraph struct {
	Tasks map[string]*model.Task
	Order []string // task IDs in input order

	Succ map[string][]Edge // predecessor ID -> outgoing edges
	Pred map[string][]Edge // successor ID -> incoming (resolved) edges

	Parents  map[string]bool     // IDs that are some task's ParentID
	Children map[string][]string // parent ID -> child IDs, input order

	Dangling map[string]bool // tasks with a predecessor that doesn't exist

	Roots  []string // tasks with no resolved predecessors
	Leaves []string // tasks with no successors
}

// TaskCount returns the number of tasks in the graph.
func (g *ScheduleGraph) TaskCount() int {
	return len(g.Tasks)
}

// IsParent reports whether id has children, using the precomputed parent
// index rather than scanning the task list.
func (g *ScheduleGraph) IsParent(id string) bool {
	return g.Parents[id]
}
