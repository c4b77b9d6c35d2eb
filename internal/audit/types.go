// Package audit keeps an append-only record of schedule mutations.
//
// It is an operation log, not task persistence: nothing is ever read back
// into the schedule, and every process starts with an empty day.
package audit

import (
	"errors"
	"time"
)

var ErrDisabled = errors.New("audit storage disabled")

// Config configures the audit store.
//
// Driver values:
//   - "file": dependency-free jsonl backend
//   - "sqlite": SQLite database file (optional build tag)
//
// If Driver is empty or "none", auditing is disabled.
type Config struct {
	Driver      string
	Path        string
	BusyTimeout time.Duration // sqlite only; 0 means default
}

// Entry records one committed schedule mutation.
// Keep it compact and schema-stable.
type Entry struct {
	At          time.Time `json:"at"`
	Action      string    `json:"action"`
	TaskID      string    `json:"task_id"`
	Description string    `json:"description,omitempty"`
	Start       string    `json:"start,omitempty"` // "HH:mm"
	End         string    `json:"end,omitempty"`
	Priority    string    `json:"priority,omitempty"`
	Status      string    `json:"status,omitempty"`
}
