package snapshot

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/benju66/Pro-Logic-Scheduler-sub009/internal/model"
)

// Only input fields are persisted. Computed dates, float, and health are
// recomputed on load, never trusted from storage.
type snapshotJSON struct {
	Project  projectJSON  `json:"project"`
	Calendar calendarJSON `json:"calendar"`
	Tasks    []taskJSON   `json:"tasks"`
}

type projectJSON struct {
	Name      string `json:"name"`
	StartDate string `json:"startDate,omitempty"`
}

type calendarJSON struct {
	WorkingDays []int             `json:"workingDays"`
	Exceptions  map[string]string `json:"exceptions,omitempty"`
}

type taskJSON struct {
	ID             string    `json:"id"`
	Name           string    `json:"name,omitempty"`
	ParentID       string    `json:"parentId,omitempty"`
	Duration       int       `json:"duration"`
	Dependencies   []depJSON `json:"dependencies,omitempty"`
	ConstraintType string    `json:"constraintType,omitempty"`
	ConstraintDate string    `json:"constraintDate,omitempty"`
	SchedulingMode string    `json:"schedulingMode,omitempty"`
	Start          string    `json:"start,omitempty"`
	End            string    `json:"end,omitempty"`
}

type depJSON struct {
	PredecessorID string `json:"predecessorId"`
	Type          string `json:"type"`
	Lag           int    `json:"lag,omitempty"`
}

// Save writes the snapshot to disk as indented JSON.
func Save(path string, snap *Snapshot) error {
	out := snapshotJSON{
		Project: projectJSON{
			Name:      snap.Project.Name,
			StartDate: model.FormatDate(snap.Project.Start),
		},
	}

	cal := snap.Calendar
	if cal == nil {
		cal = model.DefaultCalendar()
	}
	for _, d := range cal.WorkingDays() {
		out.Calendar.WorkingDays = append(out.Calendar.WorkingDays, int(d))
	}
	if ex := cal.Exceptions(); len(ex) > 0 {
		out.Calendar.Exceptions = ex
	}

	for i := range snap.Tasks {
		t := &snap.Tasks[i]
		tj := taskJSON{
			ID:             t.ID,
			Name:           t.Name,
			ParentID:       t.ParentID,
			Duration:       t.Duration,
			SchedulingMode: t.Mode.String(),
			Start:          model.FormatDate(t.Start),
			End:            model.FormatDate(t.End),
		}
		if t.ConstraintType != model.AsSoonAsPossible {
			tj.ConstraintType = t.ConstraintType.String()
			tj.ConstraintDate = model.FormatDate(t.ConstraintDate)
		}
		for _, dep := range t.Dependencies {
			tj.Dependencies = append(tj.Dependencies, depJSON{
				PredecessorID: dep.PredecessorID,
				Type:          dep.Type.String(),
				Lag:           dep.Lag,
			})
		}
		out.Tasks = append(out.Tasks, tj)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
