package schedule

import (
	"fmt"
	"strings"
	"time"
)

// Priority is an ordinal urgency classification: Low < Medium < High < Critical.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
	PriorityCritical
)

// Priorities lists all priorities in ascending order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "LOW"
	case PriorityMedium:
		return "MEDIUM"
	case PriorityHigh:
		return "HIGH"
	case PriorityCritical:
		return "CRITICAL"
	default:
		return fmt.Sprintf("PRIORITY(%d)", int(p))
	}
}

// ParsePriority parses a priority name, case-insensitively.
func ParsePriority(raw string) (Priority, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "LOW":
		return PriorityLow, nil
	case "MEDIUM", "MED":
		return PriorityMedium, nil
	case "HIGH":
		return PriorityHigh, nil
	case "CRITICAL", "CRIT":
		return PriorityCritical, nil
	default:
		return 0, fmt.Errorf("unknown priority %q (use LOW, MEDIUM, HIGH or CRITICAL)", raw)
	}
}

// Status is the task lifecycle state. Completed is terminal.
type Status int

const (
	StatusPending Status = iota
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "PENDING"
	case StatusCompleted:
		return "COMPLETED"
	default:
		return fmt.Sprintf("STATUS(%d)", int(s))
	}
}

// Task is a time-bounded entry in the day's schedule.
//
// Tasks are value types; the Service owns the authoritative copies and all
// reads return snapshots, so callers can never corrupt internal state.
type Task struct {
	ID          string
	Description string
	Start       Clock
	End         Clock // exclusive; the task occupies [Start, End)
	Priority    Priority
	Status      Status
	CreatedAt   time.Time
}

// Duration returns End - Start.
func (t Task) Duration() time.Duration { return t.End.Sub(t.Start) }

// Overlaps reports whether the half-open interval [start, end) intersects
// this task. Touching endpoints are back-to-back, not overlapping.
func (t Task) Overlaps(start, end Clock) bool {
	return start < t.End && t.Start < end
}
