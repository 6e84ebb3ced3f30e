// Package testutil provides testing utilities shared across test files.
//
// This package contains mock errors and task fixtures. It should only be
// imported by test files (*_test.go).
package testutil

import (
	"errors"
	"time"

	"github.com/preflylabs/prefly/internal/constants"
	"github.com/preflylabs/prefly/internal/domain"
)

// Mock errors for testing purposes.
// These errors are used to simulate various failure scenarios in tests.
var (
	// ErrMockFilesystem indicates a mock filesystem failure (used in tests).
	ErrMockFilesystem = errors.New("filesystem error")

	// ErrMockNotFound indicates a mock resource was not found (used in tests).
	ErrMockNotFound = errors.New("not found")
)

// CompletedTask returns a completed task in the given phase, finished at the
// given time.
func CompletedTask(id, phase string, done time.Time) domain.Task {
	return domain.Task{
		ID:            id,
		Phase:         phase,
		Status:        constants.TaskStatusCompleted,
		CompletedDate: &done,
	}
}

// PendingTask returns a pending task in the given phase.
func PendingTask(id, phase string) domain.Task {
	return domain.Task{
		ID:     id,
		Phase:  phase,
		Status: constants.TaskStatusPending,
	}
}

// ReadyTask returns a pending task that scores full confidence: every rubric
// criterion is populated.
func ReadyTask(id string) domain.Task {
	return domain.Task{
		ID:                 id,
		Phase:              "phase-1-foundation",
		Status:             constants.TaskStatusPending,
		Agent:              "api-agent",
		Deliverables:       []string{"handler with unit tests"},
		ValidationCriteria: []string{"endpoints return JSON errors"},
		Patterns:           []string{"docs/patterns/http.md"},
		Why:                "Unblocks the mobile client.",
	}
}
