package graph

import (
	"fmt"
	"sort"

	"github.com/benju66/Pro-Logic-Scheduler-sub009/internal/model"
)

// Build constructs a ScheduleGraph over the given tasks. It indexes every
// task by ID, inverts the per-task dependency lists into the successor map,
// and precomputes the parent-ID set. Dependencies pointing at IDs that don't
// exist are recorded in Dangling and skipped rather than failing the build.
// Build fails on duplicate IDs and on dependency cycles.
func Build(tasks []*model.Task) (*ScheduleGraph, error) {
	g := &ScheduleGraph{
		Tasks:    make(map[string]*model.Task, len(tasks)),
		Order:    make([]string, 0, len(tasks)),
		Succ:     make(map[string][]Edge),
		Pred:     make(map[string][]Edge),
		Parents:  make(map[string]bool),
		Children: make(map[string][]string),
		Dangling: make(map[string]bool),
	}

	for _, t := range tasks {
		if t.ID == "" {
			return nil, fmt.Errorf("task %q has no ID", t.Name)
		}
		if _, dup := g.Tasks[t.ID]; dup {
			return nil, fmt.Errorf("duplicate task ID %s", t.ID)
		}
		g.Tasks[t.ID] = t
		g.Order = append(g.Order, t.ID)
	}

	// Parent index: one pass over ParentID pointers. Every later "is this a
	// parent" check goes through this set, never a task-list scan.
	for _, id := range g.Order {
		t := g.Tasks[id]
		if t.ParentID == "" {
			continue
		}
		if _, ok := g.Tasks[t.ParentID]; !ok {
			// Orphaned parent pointer: treat the task as a root.
			continue
		}
		g.Parents[t.ParentID] = true
		g.Children[t.ParentID] = append(g.Children[t.ParentID], id)
	}

	// Successor index: invert each task's predecessor list. Duplicate edges
	// of the same link type collapse to one.
	edgeSet := make(map[Edge]bool)
	for _, id := range g.Order {
		t := g.Tasks[id]
		for _, dep := range t.Dependencies {
			if dep.PredecessorID == id {
				g.Dangling[id] = true // self-dependency can never resolve
				continue
			}
			if _, ok := g.Tasks[dep.PredecessorID]; !ok {
				g.Dangling[id] = true
				continue
			}
			e := Edge{From: dep.PredecessorID, To: id, Type: dep.Type, Lag: dep.Lag}
			if edgeSet[e] {
				continue
			}
			edgeSet[e] = true
			g.Succ[e.From] = append(g.Succ[e.From], e)
			g.Pred[e.To] = append(g.Pred[e.To], e)
		}
	}

	// Sort edge lists for deterministic traversal.
	for k := range g.Succ {
		sortEdges(g.Succ[k])
	}
	for k := range g.Pred {
		sortEdges(g.Pred[k])
	}

	for _, id := range g.Order {
		if len(g.Pred[id]) == 0 {
			g.Roots = append(g.Roots, id)
		}
		if len(g.Succ[id]) == 0 {
			g.Leaves = append(g.Leaves, id)
		}
	}

	if cycle := g.DetectCycle(); cycle != nil {
		return nil, fmt.Errorf("dependency cycle detected: %v", cycle)
	}

	return g, nil
}

func sortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		if edges[i].To != edges[j].To {
			return edges[i].To < edges[j].To
		}
		return edges[i].Type < edges[j].Type
	})
}

// TopoOrder returns the task IDs in dependency order via Kahn's algorithm.
// Hierarchy edges are included alongside dependency edges — every child
// precedes its parent — so a parent's rolled-up dates are final before any
// of the parent's own successors are visited. Tasks left unsorted indicate
// a cycle and are reported in the error.
func (g *ScheduleGraph) TopoOrder() ([]string, error) {
	inDegree := make(map[string]int, len(g.Tasks))
	for id := range g.Tasks {
		inDegree[id] = len(g.Pred[id]) + len(g.Children[id])
	}

	var queue []string
	for _, id := range g.Order {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}
	sort.Strings(queue)

	order := make([]string, 0, len(g.Tasks))
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		order = append(order, node)

		var newReady []string
		for _, e := range g.Succ[node] {
			inDegree[e.To]--
			if inDegree[e.To] == 0 {
				newReady = append(newReady, e.To)
			}
		}
		if pid := g.Tasks[node].ParentID; pid != "" && g.Parents[pid] {
			inDegree[pid]--
			if inDegree[pid] == 0 {
				newReady = append(newReady, pid)
			}
		}
		sort.Strings(newReady)
		queue = append(queue, newReady...)
	}

	if len(order) != len(g.Tasks) {
		var stuck []string
		for id, d := range inDegree {
			if d > 0 {
				stuck = append(stuck, id)
			}
		}
		sort.Strings(stuck)
		return nil, fmt.Errorf("topological sort failed: graph has a cycle involving %v", stuck)
	}

	return order, nil
}

// DetectCycle returns the cycle path if one exists, or nil if the dependency
// graph is acyclic. Uses DFS with coloring: white (unvisited), gray (in
// progress), black (done).
func (g *ScheduleGraph) DetectCycle() []string {
	const (
		white = 0
		gray  = 1
		black = 2
	)

	color := make(map[string]int)
	parent := make(map[string]string)

	var dfs func(node string) []string
	dfs = func(node string) []string {
		color[node] = gray
		for _, e := range g.Succ[node] {
			next := e.To
			if color[next] == gray {
				cycle := []string{next, node}
				cur := node
				for cur != next {
					cur = parent[cur]
					cycle = append(cycle, cur)
				}
				for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
					cycle[i], cycle[j] = cycle[j], cycle[i]
				}
				return cycle
			}
			if color[next] == white {
				parent[next] = node
				if cycle := dfs(next); cycle != nil {
					return cycle
				}
			}
		}
		color[node] = black
		return nil
	}

	ids := make([]string, len(g.Order))
	copy(ids, g.Order)
	sort.Strings(ids)

	for _, id := range ids {
		if color[id] == white {
			if cycle := dfs(id); cycle != nil {
				return cycle
			}
		}
	}
	return nil
}

// Depths returns the hierarchy depth of every task: 0 for roots, parent
// depth + 1 otherwise. A ParentID loop is cut off at the task count so a
// corrupt hierarchy cannot recurse forever.
func (g *ScheduleGraph) Depths() map[string]int {
	depths := make(map[string]int, len(g.Tasks))
	for _, id := range g.Order {
		d := 0
		cur := g.Tasks[id]
		for cur.ParentID != "" && d < len(g.Tasks) {
			next, ok := g.Tasks[cur.ParentID]
			if !ok {
				break
			}
			d++
			cur = next
		}
		depths[id] = d
	}
	return depths
}
