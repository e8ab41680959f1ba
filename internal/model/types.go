package model

import (
	"strings"
	"time"
)

// DependencyType is the link type between a predecessor and its successor.
type DependencyType int

const (
	FinishToStart DependencyType = iota // successor starts after predecessor finishes
	StartToStart                        // successor starts after predecessor starts
	FinishToFinish                      // successor finishes after predecessor finishes
	StartToFinish                       // successor finishes after predecessor starts
)

func (d DependencyType) String() string {
	switch d {
	case StartToStart:
		return "SS"
	case FinishToFinish:
		return "FF"
	case StartToFinish:
		return "SF"
	default:
		return "FS"
	}
}

// ParseDependencyType maps a link-type string to a DependencyType.
// Unknown values fall back to FS, the overwhelmingly common case in
// construction schedules.
func ParseDependencyType(s string) DependencyType {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SS", "STARTTOSTART", "START-TO-START":
		return StartToStart
	case "FF", "FINISHTOFINISH", "FINISH-TO-FINISH":
		return FinishToFinish
	case "SF", "STARTTOFINISH", "START-TO-FINISH":
		return StartToFinish
	default:
		return FinishToStart
	}
}

// ConstraintType restricts where the passes may place a task's dates.
type ConstraintType int

const (
	AsSoonAsPossible    ConstraintType = iota // ASAP: no restriction
	StartNoEarlierThan                        // SNET: forward pass floor on start
	StartNoLaterThan                          // SNLT: backward pass ceiling on start
	FinishNoEarlierThan                       // FNET: forward pass floor on finish
	FinishNoLaterThan                         // FNLT: backward pass ceiling on finish
	MustFinishOn                              // MFO: pins both early and late finish
)

func (c ConstraintType) String() string {
	switch c {
	case StartNoEarlierThan:
		return "SNET"
	case StartNoLaterThan:
		return "SNLT"
	case FinishNoEarlierThan:
		return "FNET"
	case FinishNoLaterThan:
		return "FNLT"
	case MustFinishOn:
		return "MFO"
	default:
		return "ASAP"
	}
}

// ParseConstraintType maps a constraint string to a ConstraintType.
// Unknown values fall back to ASAP.
func ParseConstraintType(s string) ConstraintType {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SNET":
		return StartNoEarlierThan
	case "SNLT":
		return StartNoLaterThan
	case "FNET":
		return FinishNoEarlierThan
	case "FNLT":
		return FinishNoLaterThan
	case "MFO":
		return MustFinishOn
	default:
		return AsSoonAsPossible
	}
}

// HasDate reports whether this constraint type carries a constraint date.
func (c ConstraintType) HasDate() bool {
	return c != AsSoonAsPossible
}

// SchedulingMode controls whether the forward pass owns a task's dates.
type SchedulingMode int

const (
	Auto   SchedulingMode = iota // dates computed from the graph
	Manual                       // caller-supplied start/end are kept
)

func (m SchedulingMode) String() string {
	if m == Manual {
		return "manual"
	}
	return "auto"
}

// ParseSchedulingMode maps a mode string to a SchedulingMode.
// Anything that isn't manual is auto.
func ParseSchedulingMode(s string) SchedulingMode {
	if strings.EqualFold(strings.TrimSpace(s), "manual") {
		return Manual
	}
	return Auto
}

// HealthStatus classifies a task after calculation. Values are ordered from
// best to worst so reports can sort by severity.
type HealthStatus int

const (
	Healthy HealthStatus = iota
	Forced               // manual dates, otherwise fine
	AtRisk
	CriticalFailure
	Blocked
)

func (h HealthStatus) String() string {
	switch h {
	case Forced:
		return "forced"
	case AtRisk:
		return "at-risk"
	case CriticalFailure:
		return "critical-failure"
	case Blocked:
		return "blocked"
	default:
		return "healthy"
	}
}

// Dependency is a single predecessor link on a task.
type Dependency struct {
	PredecessorID string
	Type          DependencyType
	Lag           int // signed work days
}

// Task is the scheduling unit. Duration is in work days; zero duration marks
// a milestone, whose start and end always coincide.
type Task struct {
	ID             string
	Name           string
	ParentID       string // "" = root of the hierarchy
	Duration       int
	Dependencies   []Dependency
	ConstraintType ConstraintType
	ConstraintDate time.Time // zero unless ConstraintType.HasDate()
	Mode           SchedulingMode

	// Computed on every calculation. Start/End are the early dates; for
	// Manual tasks they are caller-supplied and left untouched.
	Start      time.Time
	End        time.Time
	LateStart  time.Time
	LateFinish time.Time
	TotalFloat int
	FreeFloat  int
	IsCritical bool
	Health     HealthStatus
}

// IsMilestone reports whether the task is a zero-duration milestone.
func (t *Task) IsMilestone() bool {
	return t.Duration == 0
}

// Clone returns a deep copy of the task. The engine computes on copies so the
// caller's slice is never mutated.
func (t *Task) Clone() *Task {
	c := *t
	if t.Dependencies != nil {
		c.Dependencies = make([]Dependency, len(t.Dependencies))
		copy(c.Dependencies, t.Dependencies)
	}
	return &c
}
