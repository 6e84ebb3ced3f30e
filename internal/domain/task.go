// Package domain provides shared domain types for the PREFLY task readiness engine.
// These types are used across all internal packages to ensure consistent data structures.
//
// This package follows strict import rules:
//   - CAN import: internal/constants, internal/errors, standard library
//   - MUST NOT import: any other internal packages
//
// All JSON field names use snake_case.
package domain

import (
	"time"

	"github.com/preflylabs/prefly/internal/constants"
)

// Task represents a single unit of backlog work. Tasks are supplied by the
// backlog store and are treated as immutable for the lifetime of one
// analysis: the engine never mutates a Task, and persistence of status
// changes is the store's responsibility.
//
// Example JSON representation:
//
//	{
//	    "id": "API-002",
//	    "phase": "phase-2-core",
//	    "status": "pending",
//	    "agent": "api-agent",
//	    "dependencies": ["DB-001"],
//	    "files_to_modify": ["internal/api/handler.go"],
//	    "deliverables": ["POST /tasks endpoint with tests"],
//	    "validation_criteria": ["go test ./... passes"],
//	    "estimated_time": 7200000000000
//	}
type Task struct {
	// ID is the unique identifier for the task (e.g., "DB-001").
	ID string `json:"id"`

	// Phase is a free-form ordering label grouping tasks into rough
	// execution stages. Commonly "phase-<N>-<slug>"; the selector parses
	// the embedded integer for numeric ordering.
	Phase string `json:"phase"`

	// Status is the lifecycle state (pending, in_progress, completed, blocked).
	Status constants.TaskStatus `json:"status"`

	// Agent identifies the role responsible for executing the task
	// (e.g., "infrastructure-agent", "documentation-agent"). Per-agent
	// test-coverage policy is keyed by this value.
	Agent string `json:"agent"`

	// Dependencies is the set of task ids that must be completed before
	// this task may start.
	Dependencies []string `json:"dependencies,omitempty"`

	// FilesToModify is the ordered list of repo-relative paths the task
	// is expected to touch.
	FilesToModify []string `json:"files_to_modify,omitempty"`

	// Deliverables describes the concrete outputs that define "done".
	Deliverables []string `json:"deliverables,omitempty"`

	// ValidationCriteria lists the checks that must pass for acceptance.
	ValidationCriteria []string `json:"validation_criteria,omitempty"`

	// Patterns lists style/standards references attached to the task.
	Patterns []string `json:"patterns,omitempty"`

	// Description is a human-readable summary of what the task does.
	Description string `json:"description,omitempty"`

	// Why explains the motivation behind the task.
	Why string `json:"why,omitempty"`

	// Context carries free-text background for the executing agent.
	Context string `json:"context,omitempty"`

	// EstimatedTime is the normalized estimated duration. Used only as the
	// final selection tie-break.
	EstimatedTime time.Duration `json:"estimated_time,omitempty"`

	// CompletedDate is when the task finished. Set only when
	// Status == completed; nil otherwise.
	CompletedDate *time.Time `json:"completed_date,omitempty"`
}

// HasDependency reports whether the task depends on the given task id.
func (t *Task) HasDependency(id string) bool {
	for _, dep := range t.Dependencies {
		if dep == id {
			return true
		}
	}
	return false
}

// IsCompleted reports whether the task is in the completed state.
func (t *Task) IsCompleted() bool {
	return t.Status == constants.TaskStatusCompleted
}

// IsPending reports whether the task is in the pending state.
func (t *Task) IsPending() bool {
	return t.Status == constants.TaskStatusPending
}
