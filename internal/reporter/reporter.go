// Package reporter renders calculation results: the schedule table, the
// critical path chain, health summaries, lookahead groupings, slippage
// against a saved baseline, and DOT export.
package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/benju66/Pro-Logic-Scheduler-sub009/internal/baseline"
	"github.com/benju66/Pro-Logic-Scheduler-sub009/internal/cpm"
	"github.com/benju66/Pro-Logic-Scheduler-sub009/internal/model"
	"github.com/benju66/Pro-Logic-Scheduler-sub009/internal/ui"
)

// Reporter formats one calculation result.
type Reporter struct {
	Result *cpm.Result
	Cal    *model.Calendar
}

// New creates a Reporter over a finished calculation.
func New(result *cpm.Result, cal *model.Calendar) *Reporter {
	if cal == nil {
		cal = model.DefaultCalendar()
	}
	return &Reporter{Result: result, Cal: cal}
}

// PrintSchedule writes the per-task schedule table.
func (r *Reporter) PrintSchedule(w io.Writer) {
	res := r.Result
	fmt.Fprintf(w, "%s %s → %s  (%d tasks, %d critical, %s)\n\n",
		ui.BoldCyan("Schedule:"),
		model.FormatDate(res.ProjectStart), model.FormatDate(res.ProjectEnd),
		res.Stats.TaskCount, res.Stats.CriticalCount,
		ui.Dim(fmt.Sprintf("%.1fms", float64(res.Stats.CalcTime.Microseconds())/1000)))

	fmt.Fprintf(w, "  %s %-14s %-24s %-10s  %-10s  %5s  %s\n",
		" ", ui.Bold("ID"), ui.Bold("NAME"), ui.Bold("START"), ui.Bold("END"), ui.Bold("FLOAT"), ui.Bold("HEALTH"))

	for i := range res.Tasks {
		t := &res.Tasks[i]
		name := t.Name
		if name == "" {
			name = t.ID
		}
		if t.IsMilestone() {
			name += " ◇"
		}
		fmt.Fprintf(w, "  %s %-14s %-24s %-10s  %-10s  %5d  %s %s\n",
			ui.CriticalMark(t.IsCritical),
			ui.BoldMagenta(t.ID), truncate(name, 24),
			model.FormatDate(t.Start), model.FormatDate(t.End),
			t.TotalFloat,
			ui.HealthIcon(t.Health.String()), t.Health)
	}
}

// PrintCriticalPath writes the critical chain in dependency order.
func (r *Reporter) PrintCriticalPath(w io.Writer) {
	res := r.Result
	if len(res.CriticalPath) == 0 {
		fmt.Fprintf(w, "%s no critical tasks\n", ui.Dim("⚡"))
		return
	}
	fmt.Fprintf(w, "⚡ %s %s (%d tasks)\n",
		ui.BoldYellow("Critical path:"),
		strings.Join(res.CriticalPath, " → "),
		len(res.CriticalPath))
}

// PrintHealth writes a severity-ordered health summary.
func (r *Reporter) PrintHealth(w io.Writer) {
	res := r.Result
	counts := make(map[model.HealthStatus]int)
	for i := range res.Tasks {
		counts[res.Tasks[i].Health]++
	}

	fmt.Fprintf(w, "%s\n", ui.BoldCyan("Schedule health"))
	for _, h := range []model.HealthStatus{model.Blocked, model.CriticalFailure, model.AtRisk, model.Forced, model.Healthy} {
		if counts[h] == 0 {
			continue
		}
		fmt.Fprintf(w, "  %s %-17s %d\n", ui.HealthIcon(h.String()), h, counts[h])
	}

	for i := range res.Tasks {
		t := &res.Tasks[i]
		if t.Health == model.Healthy || t.Health == model.Forced {
			continue
		}
		fmt.Fprintf(w, "  %s %s — %s (float %d)\n",
			ui.HealthIcon(t.Health.String()), ui.BoldMagenta(t.ID), t.Health, t.TotalFloat)
	}
}

// PrintLookahead groups tasks by early start date, earliest first — the
// short-interval view a field team plans from.
func (r *Reporter) PrintLookahead(w io.Writer) {
	res := r.Result
	groups := make(map[string][]*model.Task)
	for i := range res.Tasks {
		t := &res.Tasks[i]
		key := model.FormatDate(t.Start)
		groups[key] = append(groups[key], t)
	}

	dates := make([]string, 0, len(groups))
	for d := range groups {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	fmt.Fprintf(w, "%s\n", ui.BoldCyan("Lookahead"))
	for _, d := range dates {
		tasks := groups[d]
		sort.Slice(tasks, func(i, j int) bool {
			if tasks[i].IsCritical != tasks[j].IsCritical {
				return tasks[i].IsCritical
			}
			return tasks[i].ID < tasks[j].ID
		})
		fmt.Fprintf(w, "  %s %s (%d starting)\n", ui.BoldWhite("▸"), d, len(tasks))
		for _, t := range tasks {
			fmt.Fprintf(w, "    %s %s  %s\n", ui.CriticalMark(t.IsCritical), ui.BoldMagenta(t.ID), truncate(t.Name, 40))
		}
	}
}

// PrintSlip compares the result against a saved baseline and reports
// per-task start/finish variance in work days.
func (r *Reporter) PrintSlip(w io.Writer, base *baseline.Baseline) {
	res := r.Result
	fmt.Fprintf(w, "%s vs baseline saved %s\n",
		ui.BoldCyan("Slippage"), ui.Dim(base.SavedAt.Format("2006-01-02 15:04")))

	slipped := 0
	for i := range res.Tasks {
		t := &res.Tasks[i]
		stored := base.Get(t.ID)
		if stored == nil {
			fmt.Fprintf(w, "  %s %s — not in baseline\n", ui.Yellow("+"), ui.BoldMagenta(t.ID))
			continue
		}
		baseStart, err1 := model.ParseDate(stored.Start)
		baseEnd, err2 := model.ParseDate(stored.End)
		if err1 != nil || err2 != nil {
			continue
		}
		startSlip := r.Cal.CalcWorkDays(baseStart, t.Start)
		endSlip := r.Cal.CalcWorkDays(baseEnd, t.End)
		if startSlip == 0 && endSlip == 0 {
			continue
		}
		slipped++
		fmt.Fprintf(w, "  %s %s — start %s, finish %s\n",
			slipIcon(endSlip), ui.BoldMagenta(t.ID), slipDays(startSlip), slipDays(endSlip))
	}
	if slipped == 0 {
		fmt.Fprintf(w, "  %s on baseline\n", ui.Green("✓"))
	}
}

func slipIcon(days int) string {
	if days > 0 {
		return ui.Red("▲")
	}
	if days < 0 {
		return ui.Green("▼")
	}
	return ui.Dim("=")
}

func slipDays(days int) string {
	if days > 0 {
		return fmt.Sprintf("+%dd", days)
	}
	return fmt.Sprintf("%dd", days)
}

// PrintDOT writes the dependency graph in Graphviz format, with the critical
// path drawn bold red.
func (r *Reporter) PrintDOT(w io.Writer) {
	res := r.Result
	critical := make(map[string]bool, len(res.CriticalPath))
	for _, id := range res.CriticalPath {
		critical[id] = true
	}

	fmt.Fprintln(w, "digraph prosched {")
	fmt.Fprintln(w, "  rankdir=LR;")
	fmt.Fprintln(w, "  node [shape=box, style=rounded];")
	fmt.Fprintln(w)

	for i := range res.Tasks {
		t := &res.Tasks[i]
		label := fmt.Sprintf("%s\\n%s .. %s", t.ID, model.FormatDate(t.Start), model.FormatDate(t.End))
		attrs := fmt.Sprintf("label=%q", label)
		if critical[t.ID] {
			attrs += `, style="rounded,bold", color=red`
		}
		fmt.Fprintf(w, "  %q [%s];\n", t.ID, attrs)
	}

	fmt.Fprintln(w)

	for i := range res.Tasks {
		t := &res.Tasks[i]
		for _, dep := range t.Dependencies {
			style := ""
			if critical[dep.PredecessorID] && critical[t.ID] {
				style = ` [color=red, penwidth=2]`
			}
			label := dep.Type.String()
			if dep.Lag != 0 {
				label = fmt.Sprintf("%s%+d", label, dep.Lag)
			}
			fmt.Fprintf(w, "  %q -> %q [label=%q]%s;\n", dep.PredecessorID, t.ID, label, style)
		}
	}

	fmt.Fprintln(w, "}")
}

// JSON returns the machine-readable result document.
func (r *Reporter) JSON() ([]byte, error) {
	res := r.Result

	type taskOut struct {
		ID         string `json:"id"`
		Name       string `json:"name,omitempty"`
		ParentID   string `json:"parentId,omitempty"`
		Duration   int    `json:"duration"`
		Start      string `json:"start"`
		End        string `json:"end"`
		LateStart  string `json:"lateStart"`
		LateFinish string `json:"lateFinish"`
		TotalFloat int    `json:"totalFloat"`
		FreeFloat  int    `json:"freeFloat"`
		IsCritical bool   `json:"isCritical"`
		Health     string `json:"health"`
	}
	out := struct {
		Tasks        []taskOut `json:"tasks"`
		CriticalPath []string  `json:"criticalPath"`
		Stats        struct {
			TaskCount     int     `json:"taskCount"`
			CriticalCount int     `json:"criticalCount"`
			CalcTime      float64 `json:"calcTime"`
			Error         string  `json:"error,omitempty"`
		} `json:"stats"`
	}{}

	for i := range res.Tasks {
		t := &res.Tasks[i]
		out.Tasks = append(out.Tasks, taskOut{
			ID:         t.ID,
			Name:       t.Name,
			ParentID:   t.ParentID,
			Duration:   t.Duration,
			Start:      model.FormatDate(t.Start),
			End:        model.FormatDate(t.End),
			LateStart:  model.FormatDate(t.LateStart),
			LateFinish: model.FormatDate(t.LateFinish),
			TotalFloat: t.TotalFloat,
			FreeFloat:  t.FreeFloat,
			IsCritical: t.IsCritical,
			Health:     t.Health.String(),
		})
	}
	out.CriticalPath = res.CriticalPath
	out.Stats.TaskCount = res.Stats.TaskCount
	out.Stats.CriticalCount = res.Stats.CriticalCount
	out.Stats.CalcTime = float64(res.Stats.CalcTime.Microseconds()) / 1000
	out.Stats.Error = res.Stats.Error

	return json.MarshalIndent(out, "", "  ")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
