package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries is the pre-built mapping of sentinel errors to their user-facing messages.
// This single source of truth ensures UserMessage and Actionable stay in sync.
// Using a slice (not a map) because errors.Is() requires proper error chain traversal.
//
//nolint:gochecknoglobals // Pre-built mapping for efficiency
var errorInfoEntries = []errorEntry{
	{
		err: ErrTaskNotFound,
		info: ErrorInfo{
			Message: "The requested task does not exist in the sprint plan.",
			Action:  "Run 'prefly tasks' to list available task ids.",
		},
	},
	{
		err: ErrSprintNotFound,
		info: ErrorInfo{
			Message: "No sprint plan was found for this project.",
			Action:  "Create .prefly/sprint.yaml or run prefly from the project root.",
		},
	},
	{
		err: ErrSprintInvalid,
		info: ErrorInfo{
			Message: "The sprint plan failed validation.",
			Action:  "Fix the reported problems in .prefly/sprint.yaml and retry.",
		},
	},
	{
		err: ErrRequiredUnanswered,
		info: ErrorInfo{
			Message: "Some required questions are still unanswered.",
			Action:  "Answer every required question before generating.",
		},
	},
	{
		err: ErrWizardCanceled,
		info: ErrorInfo{
			Message: "Analysis canceled. No changes were made.",
		},
	},
	{
		err: ErrNotTerminal,
		info: ErrorInfo{
			Message: "This command is interactive and requires a terminal.",
			Action:  "Re-run with --output json to get the question list instead.",
		},
	},
	{
		err: ErrInvalidOutputFormat,
		info: ErrorInfo{
			Message: "Unknown output format.",
			Action:  "Use --output text or --output json.",
		},
	},
}

// UserMessage returns a user-friendly message for the given error.
// Unknown errors fall back to the raw error text.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info.Message
		}
	}
	return err.Error()
}

// Actionable returns a suggested action for the given error, or an empty
// string when no specific action applies.
func Actionable(err error) string {
	if err == nil {
		return ""
	}
	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info.Action
		}
	}
	return ""
}
