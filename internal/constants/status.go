package constants

// TaskStatus represents the lifecycle state of a backlog task.
// Status values use snake_case for YAML/JSON serialization compatibility.
type TaskStatus string

// Task status constants define the valid states a task can be in.
// The backlog store owns transitions; the engine only reads them.
const (
	// TaskStatusPending indicates a task is queued but not yet started.
	TaskStatusPending TaskStatus = "pending"

	// TaskStatusInProgress indicates a task is actively being worked on.
	TaskStatusInProgress TaskStatus = "in_progress"

	// TaskStatusCompleted indicates a task finished successfully.
	// Completed tasks carry a completion timestamp.
	TaskStatusCompleted TaskStatus = "completed"

	// TaskStatusBlocked indicates a task cannot proceed until an external
	// condition is resolved.
	TaskStatusBlocked TaskStatus = "blocked"
)

// String returns the string representation of the TaskStatus.
// This implements fmt.Stringer for convenient logging and debugging.
func (s TaskStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a recognized value.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusBlocked:
		return true
	default:
		return false
	}
}

// ValidTaskStatuses returns all valid task status values.
func ValidTaskStatuses() []TaskStatus {
	return []TaskStatus{
		TaskStatusPending,
		TaskStatusInProgress,
		TaskStatusCompleted,
		TaskStatusBlocked,
	}
}

// ScoreAction is the recommended handling for a task given its confidence.
type ScoreAction string

// Score action constants map confidence bands to handling recommendations.
const (
	// ScoreActionAccept indicates the task is structurally complete
	// (confidence >= ConfidenceAcceptThreshold).
	ScoreActionAccept ScoreAction = "accept"

	// ScoreActionFillGaps indicates the task is usable once its gaps are
	// filled interactively (ConfidenceFillGapsThreshold <= confidence <
	// ConfidenceAcceptThreshold).
	ScoreActionFillGaps ScoreAction = "fill_gaps"

	// ScoreActionRegenerate indicates the task is too incomplete to repair
	// and should be re-authored (confidence < ConfidenceFillGapsThreshold).
	ScoreActionRegenerate ScoreAction = "regenerate"
)

// String returns the string representation of the ScoreAction.
func (a ScoreAction) String() string {
	return string(a)
}
