// Package snapshot reads and writes project snapshot files: a JSON document
// holding the project header, the working calendar, and the task list. The
// load path is deliberately tolerant — source records are permissive, with
// optional fields, free-form constraint names, and dates that may be null —
// so each field is read defensively and defaulted rather than failing the
// whole document.
package snapshot

import (
	"fmt"
	"os"
	"time"

	"github.com/tidwall/gjson"

	"github.com/benju66/Pro-Logic-Scheduler-sub009/internal/model"
)

// Snapshot is the full engine input loaded from one file.
type Snapshot struct {
	Project  Project
	Calendar *model.Calendar
	Tasks    []model.Task
}

// Project is the snapshot header.
type Project struct {
	Name  string
	Start time.Time
}

// Load reads a snapshot file from disk.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return Parse(data)
}

// Parse decodes snapshot JSON. Tasks without an ID are rejected; everything
// else degrades to a default.
func Parse(data []byte) (*Snapshot, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("snapshot is not valid JSON")
	}
	doc := gjson.ParseBytes(data)

	snap := &Snapshot{}
	snap.Project.Name = doc.Get("project.name").String()
	snap.Project.Start = parseDate(doc.Get("project.startDate"))
	snap.Calendar = parseCalendar(doc.Get("calendar"))

	var parseErr error
	doc.Get("tasks").ForEach(func(_, raw gjson.Result) bool {
		t, err := parseTask(raw)
		if err != nil {
			parseErr = err
			return false
		}
		snap.Tasks = append(snap.Tasks, t)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return snap, nil
}

// parseCalendar returns nil when the snapshot carries no calendar section so
// the caller can fall back to its configured calendar.
func parseCalendar(raw gjson.Result) *model.Calendar {
	if !raw.Exists() {
		return nil
	}

	var days []time.Weekday
	raw.Get("workingDays").ForEach(func(_, d gjson.Result) bool {
		n := int(d.Int())
		if n >= 0 && n <= 6 {
			days = append(days, time.Weekday(n))
		}
		return true
	})

	exceptions := make(map[string]string)
	raw.Get("exceptions").ForEach(func(k, v gjson.Result) bool {
		if _, err := model.ParseDate(k.String()); err == nil {
			exceptions[k.String()] = v.String()
		}
		return true
	})

	return model.NewCalendar(days, exceptions)
}

func parseTask(raw gjson.Result) (model.Task, error) {
	id := raw.Get("id").String()
	if id == "" {
		return model.Task{}, fmt.Errorf("task %s has no id", raw.Raw)
	}

	t := model.Task{
		ID:       id,
		Name:     raw.Get("name").String(),
		ParentID: raw.Get("parentId").String(),
		Mode:     model.ParseSchedulingMode(raw.Get("schedulingMode").String()),
		Start:    parseDate(raw.Get("start")),
		End:      parseDate(raw.Get("end")),
	}

	if d := raw.Get("duration"); d.Exists() && d.Int() > 0 {
		t.Duration = int(d.Int())
	}

	t.ConstraintType = model.ParseConstraintType(raw.Get("constraintType").String())
	t.ConstraintDate = parseDate(raw.Get("constraintDate"))
	if t.ConstraintDate.IsZero() {
		// A dated constraint without a date degrades to ASAP.
		t.ConstraintType = model.AsSoonAsPossible
	}

	raw.Get("dependencies").ForEach(func(_, dep gjson.Result) bool {
		pred := dep.Get("predecessorId").String()
		if pred == "" {
			pred = dep.Get("id").String()
		}
		if pred == "" {
			return true
		}
		t.Dependencies = append(t.Dependencies, model.Dependency{
			PredecessorID: pred,
			Type:          model.ParseDependencyType(dep.Get("type").String()),
			Lag:           int(dep.Get("lag").Int()),
		})
		return true
	})

	return t, nil
}

// parseDate reads an ISO date field, tolerating null, absent, or malformed
// values as zero.
func parseDate(raw gjson.Result) time.Time {
	if !raw.Exists() || raw.Type == gjson.Null {
		return time.Time{}
	}
	d, err := model.ParseDate(raw.String())
	if err != nil {
		return time.Time{}
	}
	return d
}
