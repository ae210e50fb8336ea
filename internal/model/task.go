package model

import "time"

// Priority is the closed set of task priorities.
type Priority string

const (
	PriorityP1 Priority = "P1"
	PriorityP2 Priority = "P2"
	PriorityP3 Priority = "P3"
)

// DefaultPriority is assigned when extraction does not state one.
const DefaultPriority = PriorityP3

// NoDeadline is the literal deadline placeholder used when the transcript
// does not state one.
const NoDeadline = "no deadline specified"

// Task is a validated, persisted unit of work. IDs are assigned by the
// store, monotonically from 1, and never reused within a process lifetime.
type Task struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Assignee    string    `json:"assignee"`
	Deadline    string    `json:"deadline"` // verbatim phrasing from the transcript
	Priority    Priority  `json:"priority"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ValidPriority reports whether p is one of the three allowed values.
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityP1, PriorityP2, PriorityP3:
		return true
	}
	return false
}

// NormalizePriority maps arbitrary input to a valid priority,
// falling back to the default.
func NormalizePriority(s string) Priority {
	p := Priority(s)
	if ValidPriority(p) {
		return p
	}
	return DefaultPriority
}
