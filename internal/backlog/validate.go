package backlog

import (
	"fmt"
	"strings"

	preflyerrors "github.com/preflylabs/prefly/internal/errors"
)

// validateSprint checks the semantic correctness of a parsed sprint plan.
// The YAML parser validates syntax; this validates business rules. All
// problems are collected and reported together rather than failing on the
// first, so a plan author sees every issue in one pass.
//
// Checks performed:
//   - task ids are non-empty and unique
//   - every task status is a recognized value
//   - every dependency references an existing task id
//   - completed tasks carry a completion date
func validateSprint(s *Sprint) error {
	var problems []string

	seen := make(map[string]bool, len(s.Tasks))
	for _, t := range s.Tasks {
		if strings.TrimSpace(t.ID) == "" {
			problems = append(problems, "task with empty id")
			continue
		}
		if seen[t.ID] {
			problems = append(problems, fmt.Sprintf("duplicate task id %q", t.ID))
		}
		seen[t.ID] = true

		if !t.Status.IsValid() {
			problems = append(problems, fmt.Sprintf("task %q has invalid status %q", t.ID, t.Status))
		}
		if t.IsCompleted() && t.CompletedDate == nil {
			problems = append(problems, fmt.Sprintf("task %q is completed but has no completed_date", t.ID))
		}
	}

	for _, t := range s.Tasks {
		for _, dep := range t.Dependencies {
			if !seen[dep] {
				problems = append(problems, fmt.Sprintf("task %q depends on unknown task %q", t.ID, dep))
			}
		}
	}

	if len(problems) > 0 {
		return preflyerrors.Wrapf(preflyerrors.ErrSprintInvalid, "%s", strings.Join(problems, "; "))
	}
	return nil
}
