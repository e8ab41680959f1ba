package graph

import (
	"reflect"
	"strings"
	"testing"

	"github.com/benju66/Pro-Logic-Scheduler-sub009/internal/model"
)

func build(t *testing.T, tasks []*model.Task) *ScheduleGraph {
	t.Helper()
	g, err := Build(tasks)
	if err != nil {
		t.Fatalf("build graph: %v", err)
	}
	return g
}

func TestBuild_SuccessorIndex(t *testing.T) {
	g := build(t, []*model.Task{
		{ID: "a"},
		{ID: "b", Dependencies: []model.Dependency{{PredecessorID: "a", Type: model.StartToStart, Lag: 2}}},
		{ID: "c", Dependencies: []model.Dependency{{PredecessorID: "a"}, {PredecessorID: "b"}}},
	})

	if len(g.Succ["a"]) != 2 {
		t.Fatalf("expected 2 successors of a, got %d", len(g.Succ["a"]))
	}
	e := g.Succ["a"][0]
	if e.To != "b" || e.Type != model.StartToStart || e.Lag != 2 {
		t.Errorf("unexpected first edge from a: %+v", e)
	}
	if len(g.Pred["c"]) != 2 {
		t.Errorf("expected 2 predecessors of c, got %d", len(g.Pred["c"]))
	}
	if !reflect.DeepEqual(g.Roots, []string{"a"}) {
		t.Errorf("unexpected roots: %v", g.Roots)
	}
	if !reflect.DeepEqual(g.Leaves, []string{"c"}) {
		t.Errorf("unexpected leaves: %v", g.Leaves)
	}
}

func TestBuild_DuplicateEdgesCollapse(t *testing.T) {
	g := build(t, []*model.Task{
		{ID: "a"},
		{ID: "b", Dependencies: []model.Dependency{
			{PredecessorID: "a"},
			{PredecessorID: "a"},
		}},
	})
	if len(g.Pred["b"]) != 1 {
		t.Errorf("expected duplicate edge collapsed, got %d edges", len(g.Pred["b"]))
	}
}

func TestBuild_ParentIndex(t *testing.T) {
	g := build(t, []*model.Task{
		{ID: "p"},
		{ID: "c1", ParentID: "p"},
		{ID: "c2", ParentID: "p"},
		{ID: "x", ParentID: "missing"},
	})

	if !g.IsParent("p") {
		t.Error("expected p in the parent index")
	}
	if g.IsParent("c1") || g.IsParent("x") {
		t.Error("unexpected parent index entries")
	}
	if !reflect.DeepEqual(g.Children["p"], []string{"c1", "c2"}) {
		t.Errorf("unexpected children of p: %v", g.Children["p"])
	}
	// Orphaned parent pointer is ignored, not indexed.
	if g.IsParent("missing") {
		t.Error("missing parent should not be indexed")
	}
}

func TestBuild_DanglingPredecessor(t *testing.T) {
	g := build(t, []*model.Task{
		{ID: "a"},
		{ID: "b", Dependencies: []model.Dependency{{PredecessorID: "ghost"}}},
	})

	if !g.Dangling["b"] {
		t.Error("expected b marked dangling")
	}
	if len(g.Pred["b"]) != 0 {
		t.Errorf("dangling edge should be skipped, got %v", g.Pred["b"])
	}
}

func TestBuild_SelfDependency(t *testing.T) {
	g := build(t, []*model.Task{
		{ID: "a", Dependencies: []model.Dependency{{PredecessorID: "a"}}},
	})
	if !g.Dangling["a"] {
		t.Error("expected self-dependency marked dangling")
	}
}

func TestBuild_DuplicateID(t *testing.T) {
	_, err := Build([]*model.Task{{ID: "a"}, {ID: "a"}})
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("expected duplicate ID error, got %v", err)
	}
}

func TestBuild_EmptyID(t *testing.T) {
	_, err := Build([]*model.Task{{Name: "unnamed"}})
	if err == nil {
		t.Error("expected error for a task without an ID")
	}
}

func TestBuild_CycleDetected(t *testing.T) {
	_, err := Build([]*model.Task{
		{ID: "a", Dependencies: []model.Dependency{{PredecessorID: "c"}}},
		{ID: "b", Dependencies: []model.Dependency{{PredecessorID: "a"}}},
		{ID: "c", Dependencies: []model.Dependency{{PredecessorID: "b"}}},
	})
	if err == nil || !strings.Contains(err.Error(), "cycle") {
		t.Errorf("expected cycle error, got %v", err)
	}
}

func TestTopoOrder_Chain(t *testing.T) {
	g := build(t, []*model.Task{
		{ID: "c", Dependencies: []model.Dependency{{PredecessorID: "b"}}},
		{ID: "b", Dependencies: []model.Dependency{{PredecessorID: "a"}}},
		{ID: "a"},
	})
	order, err := g.TopoOrder()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(order, []string{"a", "b", "c"}) {
		t.Errorf("unexpected order: %v", order)
	}
}

func TestTopoOrder_ChildrenBeforeParents(t *testing.T) {
	g := build(t, []*model.Task{
		{ID: "p"},
		{ID: "c1", ParentID: "p"},
		{ID: "c2", ParentID: "p", Dependencies: []model.Dependency{{PredecessorID: "c1"}}},
		{ID: "x", Dependencies: []model.Dependency{{PredecessorID: "p"}}},
	})
	order, err := g.TopoOrder()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pos := make(map[string]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	if pos["c1"] > pos["p"] || pos["c2"] > pos["p"] {
		t.Errorf("children must precede their parent: %v", order)
	}
	if pos["p"] > pos["x"] {
		t.Errorf("parent must precede its successor: %v", order)
	}
}

func TestDepths(t *testing.T) {
	g := build(t, []*model.Task{
		{ID: "g"},
		{ID: "p", ParentID: "g"},
		{ID: "c", ParentID: "p"},
		{ID: "solo"},
	})
	depths := g.Depths()
	want := map[string]int{"g": 0, "p": 1, "c": 2, "solo": 0}
	if !reflect.DeepEqual(depths, want) {
		t.Errorf("unexpected depths: %v", depths)
	}
}
