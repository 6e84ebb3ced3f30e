// Package errors provides centralized error handling for PREFLY.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrTaskNotFound indicates the requested task id does not exist in the
	// sprint plan.
	ErrTaskNotFound = errors.New("task not found")

	// ErrSprintNotFound indicates no sprint plan file exists at the
	// expected location.
	ErrSprintNotFound = errors.New("sprint plan not found")

	// ErrSprintInvalid indicates the sprint plan failed semantic validation
	// (duplicate ids, dangling dependency references).
	ErrSprintInvalid = errors.New("sprint plan invalid")

	// ErrInvalidTaskStatus indicates a task carries an unrecognized status value.
	ErrInvalidTaskStatus = errors.New("invalid task status")

	// ErrRequiredUnanswered indicates the wizard Generate transition was
	// attempted while one or more required questions lack an answer.
	// This is a recoverable validation failure, not a crash path.
	ErrRequiredUnanswered = errors.New("please answer all required questions")

	// ErrWizardClosed indicates an event was applied to a wizard session
	// that has already completed or been cancelled.
	ErrWizardClosed = errors.New("wizard session closed")

	// ErrInvalidEvent indicates a wizard event that is not valid in the
	// current state (e.g. Skip on a required question).
	ErrInvalidEvent = errors.New("invalid wizard event")

	// ErrNoQuestions indicates a wizard session was started with an empty
	// question list. The orchestrator skips the wizard in that case.
	ErrNoQuestions = errors.New("no questions to ask")

	// ErrUnknownQuestion indicates an answer referenced a question id that
	// is not part of the session.
	ErrUnknownQuestion = errors.New("unknown question id")

	// ErrConfigNil indicates a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidAgents indicates an invalid per-agent policy value.
	ErrConfigInvalidAgents = errors.New("invalid agent policy configuration")

	// ErrConfigInvalidProtected indicates an invalid protected-pattern value.
	ErrConfigInvalidProtected = errors.New("invalid protected pattern configuration")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrMenuCanceled indicates the user canceled an interactive menu.
	ErrMenuCanceled = errors.New("menu canceled")

	// ErrNoMenuOptions indicates a selection menu was opened with no options.
	ErrNoMenuOptions = errors.New("no menu options provided")

	// ErrWizardCanceled indicates the user canceled the wizard session.
	// The analysis aborts with no side effects.
	ErrWizardCanceled = errors.New("wizard canceled")

	// ErrNotTerminal indicates an interactive command was run without a TTY.
	ErrNotTerminal = errors.New("interactive mode requires a terminal")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")
)
