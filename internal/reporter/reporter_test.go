package reporter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/benju66/Pro-Logic-Scheduler-sub009/internal/baseline"
	"github.com/benju66/Pro-Logic-Scheduler-sub009/internal/cpm"
	"github.com/benju66/Pro-Logic-Scheduler-sub009/internal/model"
	"github.com/benju66/Pro-Logic-Scheduler-sub009/internal/ui"
)

func init() {
	ui.Disable()
}

// sampleResult builds a small diamond: excavate feeds pour (critical) and
// utilities (two days of float), both feeding inspect.
func sampleResult(t *testing.T) *cpm.Result {
	t.Helper()
	tasks := []model.Task{
		{ID: "excavate", Name: "Excavate footings", Duration: 5, Start: model.Date(2024, 1, 1)},
		{ID: "pour", Name: "Pour foundations", Duration: 5,
			Dependencies: []model.Dependency{{PredecessorID: "excavate", Type: model.FinishToStart}}},
		{ID: "utilities", Name: "Underground utilities", Duration: 3,
			Dependencies: []model.Dependency{{PredecessorID: "excavate", Type: model.FinishToStart}}},
		{ID: "inspect", Name: "Inspection", Duration: 1,
			Dependencies: []model.Dependency{
				{PredecessorID: "pour", Type: model.FinishToStart},
				{PredecessorID: "utilities", Type: model.FinishToStart},
			}},
	}
	res := cpm.Calculate(tasks, model.DefaultCalendar())
	if res.Failed() {
		t.Fatalf("calculation failed: %s", res.Stats.Error)
	}
	return res
}

func TestPrintSchedule(t *testing.T) {
	r := New(sampleResult(t), model.DefaultCalendar())
	var buf bytes.Buffer
	r.PrintSchedule(&buf)
	out := buf.String()

	for _, want := range []string{"excavate", "pour", "utilities", "inspect", "2024-01-01", "HEALTH"} {
		if !strings.Contains(out, want) {
			t.Errorf("schedule output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintCriticalPath(t *testing.T) {
	r := New(sampleResult(t), model.DefaultCalendar())
	var buf bytes.Buffer
	r.PrintCriticalPath(&buf)
	out := buf.String()

	if !strings.Contains(out, "excavate → pour → inspect") {
		t.Errorf("expected critical chain in output:\n%s", out)
	}
	if strings.Contains(out, "utilities") {
		t.Errorf("floating task should not appear on the critical path:\n%s", out)
	}

	buf.Reset()
	empty := &cpm.Result{}
	New(empty, nil).PrintCriticalPath(&buf)
	if !strings.Contains(buf.String(), "no critical tasks") {
		t.Errorf("expected empty-path message, got:\n%s", buf.String())
	}
}

func TestPrintHealth(t *testing.T) {
	r := New(sampleResult(t), model.DefaultCalendar())
	var buf bytes.Buffer
	r.PrintHealth(&buf)
	out := buf.String()

	// utilities carries two days of float; the critical chain sits in the
	// at-risk band.
	if !strings.Contains(out, "healthy") {
		t.Errorf("expected healthy count in output:\n%s", out)
	}
	if !strings.Contains(out, "at-risk") {
		t.Errorf("expected at-risk entries in output:\n%s", out)
	}
}

func TestPrintLookahead(t *testing.T) {
	r := New(sampleResult(t), model.DefaultCalendar())
	var buf bytes.Buffer
	r.PrintLookahead(&buf)
	out := buf.String()

	if !strings.Contains(out, "2024-01-01") || !strings.Contains(out, "2024-01-08") {
		t.Errorf("expected start-date groups in output:\n%s", out)
	}
	// pour and utilities share a start date; the critical one lists first.
	pourIdx := strings.Index(out, "pour")
	utilIdx := strings.Index(out, "utilities")
	if pourIdx < 0 || utilIdx < 0 || pourIdx > utilIdx {
		t.Errorf("expected critical task listed before non-critical in its group:\n%s", out)
	}
}

func TestPrintSlip(t *testing.T) {
	res := sampleResult(t)
	base := &baseline.Baseline{
		ProjectName: "Test",
		SavedAt:     time.Now(),
		Tasks:       make(map[string]*baseline.TaskDates),
	}
	for i := range res.Tasks {
		tk := &res.Tasks[i]
		base.Tasks[tk.ID] = &baseline.TaskDates{
			Start: model.FormatDate(tk.Start),
			End:   model.FormatDate(tk.End),
		}
	}

	r := New(res, model.DefaultCalendar())
	var buf bytes.Buffer
	r.PrintSlip(&buf, base)
	if !strings.Contains(buf.String(), "on baseline") {
		t.Errorf("unchanged schedule should report on baseline:\n%s", buf.String())
	}

	// Pull the stored finish for pour two work days earlier: the live date
	// now reads as a two-day slip.
	base.Tasks["pour"].End = "2024-01-10"
	buf.Reset()
	r.PrintSlip(&buf, base)
	out := buf.String()
	if !strings.Contains(out, "pour") || !strings.Contains(out, "+2d") {
		t.Errorf("expected two-day finish slip for pour:\n%s", out)
	}

	// A task missing from the baseline is called out, not compared.
	delete(base.Tasks, "inspect")
	buf.Reset()
	r.PrintSlip(&buf, base)
	if !strings.Contains(buf.String(), "not in baseline") {
		t.Errorf("expected missing-task marker:\n%s", buf.String())
	}
}

func TestPrintDOT(t *testing.T) {
	r := New(sampleResult(t), model.DefaultCalendar())
	var buf bytes.Buffer
	r.PrintDOT(&buf)
	out := buf.String()

	if !strings.HasPrefix(out, "digraph") {
		t.Errorf("expected digraph header:\n%s", out)
	}
	if !strings.Contains(out, `"excavate" -> "pour" [label="FS"]`) {
		t.Errorf("expected dependency edge in output:\n%s", out)
	}
	if !strings.Contains(out, "color=red") {
		t.Errorf("expected critical styling in output:\n%s", out)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "}") {
		t.Errorf("expected closing brace:\n%s", out)
	}
}

func TestPrintDOT_LagLabel(t *testing.T) {
	res := &cpm.Result{
		Tasks: []model.Task{
			{ID: "a"},
			{ID: "b", Dependencies: []model.Dependency{
				{PredecessorID: "a", Type: model.StartToStart, Lag: 2},
				{PredecessorID: "a", Type: model.FinishToFinish, Lag: -1},
			}},
		},
	}
	var buf bytes.Buffer
	New(res, nil).PrintDOT(&buf)
	out := buf.String()

	if !strings.Contains(out, `label="SS+2"`) {
		t.Errorf("expected positive lag label:\n%s", out)
	}
	if !strings.Contains(out, `label="FF-1"`) {
		t.Errorf("expected negative lag label:\n%s", out)
	}
}

func TestJSON(t *testing.T) {
	r := New(sampleResult(t), model.DefaultCalendar())
	data, err := r.JSON()
	if err != nil {
		t.Fatalf("json: %v", err)
	}

	var doc struct {
		Tasks []struct {
			ID         string `json:"id"`
			Start      string `json:"start"`
			End        string `json:"end"`
			TotalFloat int    `json:"totalFloat"`
			IsCritical bool   `json:"isCritical"`
			Health     string `json:"health"`
		} `json:"tasks"`
		CriticalPath []string `json:"criticalPath"`
		Stats        struct {
			TaskCount int `json:"taskCount"`
		} `json:"stats"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(doc.Tasks) != 4 || doc.Stats.TaskCount != 4 {
		t.Errorf("unexpected task counts: %d tasks, stats %d", len(doc.Tasks), doc.Stats.TaskCount)
	}
	if doc.Tasks[0].ID != "excavate" || doc.Tasks[0].Start != "2024-01-01" {
		t.Errorf("unexpected first task %+v", doc.Tasks[0])
	}
	if len(doc.CriticalPath) != 3 {
		t.Errorf("unexpected critical path %v", doc.CriticalPath)
	}
	for _, tk := range doc.Tasks {
		if tk.Health == "" {
			t.Errorf("task %s has empty health", tk.ID)
		}
		if tk.ID == "utilities" && tk.TotalFloat != 2 {
			t.Errorf("utilities float = %d, want 2", tk.TotalFloat)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 24); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
	if got := truncate("a very long task name indeed", 10); len([]rune(got)) != 10 {
		t.Errorf("truncate length = %d (%q)", len([]rune(got)), got)
	}
}
