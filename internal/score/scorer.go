// Package score implements the confidence scorer: a pure, rubric-based
// measure of how structurally complete a task is before work begins.
//
// Five independent criteria each contribute 0.2 of total confidence:
//  1. a responsible agent is assigned
//  2. style/standards references (patterns) are attached
//  3. deliverables or files to modify are listed
//  4. validation criteria are listed
//  5. a why or a context is provided (either suffices)
//
// The scorer never touches the filesystem; all criteria are evaluated
// purely against the in-memory task fields. Filesystem-dependent checks
// belong to the gap detector.
package score

import (
	"math"
	"strings"

	"github.com/preflylabs/prefly/internal/constants"
	"github.com/preflylabs/prefly/internal/domain"
)

// criterionCheck pairs a criterion name with its predicate.
type criterionCheck struct {
	name Criterion
	met  func(*domain.Task) bool
}

// Criterion is re-exported from domain for call-site brevity.
type Criterion = domain.Criterion

// criteria is the fixed rubric, in scoring order. Order matters only for
// the stable ordering of reported gaps.
var criteria = []criterionCheck{ //nolint:gochecknoglobals // Fixed scoring rubric
	{domain.CriterionAgent, func(t *domain.Task) bool {
		return strings.TrimSpace(t.Agent) != ""
	}},
	{domain.CriterionPatterns, func(t *domain.Task) bool {
		return len(t.Patterns) > 0
	}},
	{domain.CriterionDeliverables, func(t *domain.Task) bool {
		return len(t.Deliverables) > 0 || len(t.FilesToModify) > 0
	}},
	{domain.CriterionValidation, func(t *domain.Task) bool {
		return len(t.ValidationCriteria) > 0
	}},
	{domain.CriterionRationale, func(t *domain.Task) bool {
		return strings.TrimSpace(t.Why) != "" || strings.TrimSpace(t.Context) != ""
	}},
}

// Score evaluates the task against the five-criterion rubric.
// Confidence is rounded to one decimal to avoid floating-point artifacts
// from repeated 0.2 additions. The function is pure and idempotent.
func Score(task *domain.Task) domain.TaskScore {
	result := domain.TaskScore{TaskID: task.ID}

	confidence := 0.0
	for _, c := range criteria {
		if c.met(task) {
			confidence += constants.CriterionWeight
		} else {
			result.Gaps = append(result.Gaps, c.name)
		}
	}

	result.Confidence = roundToOneDecimal(confidence)
	result.Action = actionFor(result.Confidence)
	return result
}

// ScoreSprint maps Score over a task list and buckets the results.
// An empty list yields a zero-valued aggregate, not an error.
func ScoreSprint(tasks []domain.Task) domain.SprintScore {
	aggregate := domain.SprintScore{TotalTasks: len(tasks)}
	if len(tasks) == 0 {
		return aggregate
	}

	sum := 0.0
	for i := range tasks {
		s := Score(&tasks[i])
		sum += s.Confidence

		switch {
		case s.Confidence >= constants.ConfidenceAcceptThreshold:
			aggregate.Distribution.High++
		case s.Confidence >= constants.ConfidenceFillGapsThreshold:
			aggregate.Distribution.Medium++
		default:
			aggregate.Distribution.Low++
		}
	}

	aggregate.AverageConfidence = roundToOneDecimal(sum / float64(len(tasks)))
	return aggregate
}

// actionFor maps a confidence value to its recommended handling.
func actionFor(confidence float64) constants.ScoreAction {
	switch {
	case confidence >= constants.ConfidenceAcceptThreshold:
		return constants.ScoreActionAccept
	case confidence >= constants.ConfidenceFillGapsThreshold:
		return constants.ScoreActionFillGaps
	default:
		return constants.ScoreActionRegenerate
	}
}

// roundToOneDecimal rounds to one decimal place.
func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
