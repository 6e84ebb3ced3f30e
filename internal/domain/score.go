package domain

import "github.com/preflylabs/prefly/internal/constants"

// Criterion names one of the five structural completeness checks that make
// up a task's confidence score. Each contributes constants.CriterionWeight.
type Criterion string

// Criterion constants, in scoring order.
const (
	// CriterionAgent checks that a responsible agent is assigned.
	CriterionAgent Criterion = "agent"

	// CriterionPatterns checks that style/standards references are attached.
	CriterionPatterns Criterion = "patterns"

	// CriterionDeliverables checks that deliverables or files to modify are
	// listed.
	CriterionDeliverables Criterion = "deliverables"

	// CriterionValidation checks that validation criteria are listed.
	CriterionValidation Criterion = "validation_criteria"

	// CriterionRationale checks that either why or context is populated.
	CriterionRationale Criterion = "rationale"
)

// TaskScore is the derived completeness score for one task. It is recomputed
// on every analysis and never persisted.
type TaskScore struct {
	// TaskID identifies the scored task.
	TaskID string `json:"task_id"`

	// Confidence is the 0.0-1.0 completeness score, rounded to one decimal.
	Confidence float64 `json:"confidence"`

	// Action is the recommended handling given the confidence band.
	Action constants.ScoreAction `json:"action"`

	// Gaps lists the names of unmet criteria, in scoring order. These are
	// coarse score-report labels, distinct from the richer Gap entity the
	// detector emits.
	Gaps []Criterion `json:"gaps,omitempty"`
}

// SprintScore aggregates TaskScores across a whole sprint.
type SprintScore struct {
	// TotalTasks is the number of tasks scored.
	TotalTasks int `json:"total_tasks"`

	// AverageConfidence is the arithmetic mean confidence, rounded to one
	// decimal. Zero for an empty sprint.
	AverageConfidence float64 `json:"average_confidence"`

	// Distribution buckets the scored tasks by confidence band.
	Distribution ScoreDistribution `json:"distribution"`
}

// ScoreDistribution counts tasks per confidence band.
type ScoreDistribution struct {
	// High counts tasks with confidence >= 0.8.
	High int `json:"high"`

	// Medium counts tasks with 0.5 <= confidence < 0.8.
	Medium int `json:"medium"`

	// Low counts tasks with confidence < 0.5.
	Low int `json:"low"`
}
