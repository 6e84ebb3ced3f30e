// Package question maps detected gaps to wizard questions.
//
// The mapping is pure and 1:1: each gap yields exactly one question, in gap
// order, so question numbering is deterministic across runs.
package question

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/preflylabs/prefly/internal/domain"
)

// MissingFile resolution options, in display order. There is no
// auto-resolution: the choice is always surfaced to the user.
const (
	// OptionCreateFile resolves a missing file by creating it new.
	OptionCreateFile = "Create new file"

	// OptionFixPath resolves a missing file by correcting the path.
	OptionFixPath = "Path is incorrect - will fix"

	// OptionOtherTask resolves a missing file as another task's output.
	OptionOtherTask = "Created by another task"
)

// missingFileOptions returns the fixed option set for missing-file questions.
func missingFileOptions() []string {
	return []string{OptionCreateFile, OptionFixPath, OptionOtherTask}
}

// FromGaps converts gaps into questions, preserving order. Required is
// copied from the gap's severity: blocking gaps produce required questions.
func FromGaps(gaps []domain.Gap) []domain.Question {
	if len(gaps) == 0 {
		return nil
	}

	questions := make([]domain.Question, 0, len(gaps))
	for _, g := range gaps {
		questions = append(questions, fromGap(g))
	}
	return questions
}

// fromGap builds the question for a single gap. The switch is exhaustive
// over GapKind; a new kind must be given a question shape here.
func fromGap(g domain.Gap) domain.Question {
	q := domain.Question{
		ID:       uuid.NewString(),
		Required: g.IsBlocking(),
		Source:   g,
	}

	switch g.Kind {
	case domain.GapMissingFile:
		q.Kind = domain.QuestionSingleChoice
		q.Text = fmt.Sprintf("File %q does not exist. How should this be resolved?", g.Subject)
		q.Options = missingFileOptions()

	case domain.GapUnmetDependency:
		// Always blocking. Deliberately no "proceed anyway" escape hatch:
		// the only resolutions are completing the dependency or fixing
		// the plan.
		q.Kind = domain.QuestionBoolean
		q.Text = fmt.Sprintf("Dependency %q is not completed. Is the dependency list correct?", g.Subject)
		q.HelpText = "Answer no if the plan should be corrected before work begins."

	case domain.GapMissingTestStrategy:
		q.Kind = domain.QuestionFreeText
		q.Text = fmt.Sprintf("No test strategy is declared for agent %q. Describe how this task will be tested.", g.Subject)
		q.HelpText = g.Message

	case domain.GapPreflightViolation:
		q.Kind = domain.QuestionBoolean
		q.Text = fmt.Sprintf("File %q is protected. Have you reviewed the pre-change checklist?", g.Subject)

	default:
		// Unknown kinds still surface rather than being dropped.
		q.Kind = domain.QuestionFreeText
		q.Text = g.Message
	}

	return q
}
