// Package selector picks the single best next-ready task from a sprint.
//
// Selection is phase-aware: work continues in the phase of the most recently
// completed task before moving on, so a sprint progresses front to back
// instead of hopping between phases. The function is pure and idempotent;
// running it twice over the same task list yields the same task.
package selector

import (
	"sort"
	"strconv"

	"github.com/preflylabs/prefly/internal/constants"
	"github.com/preflylabs/prefly/internal/domain"
)

// candidate pairs a task with its precomputed ranking keys.
type candidate struct {
	task          domain.Task
	phasePriority int
	inRefPhase    bool
}

// SelectNext returns the best pending task whose dependencies are all
// completed, or nil when no task is ready. A nil result is a normal outcome
// for the caller to report, not an error.
//
// Candidacy already requires every dependency to be resolved, so dependency
// count never ranks candidates; ties fall through to estimated time.
func SelectNext(tasks []domain.Task) *domain.Task {
	completed := completedSet(tasks)
	refPhase, hasRef := referencePhase(tasks)

	var candidates []candidate
	for _, t := range tasks {
		if t.Status != constants.TaskStatusPending {
			continue
		}
		if unresolvedDeps(t, completed) > 0 {
			continue
		}
		candidates = append(candidates, candidate{
			task:          t,
			phasePriority: PhasePriority(t.Phase),
			inRefPhase:    hasRef && t.Phase == refPhase,
		})
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.inRefPhase != b.inRefPhase {
			return a.inRefPhase
		}
		if a.phasePriority != b.phasePriority {
			return a.phasePriority < b.phasePriority
		}
		return a.task.EstimatedTime < b.task.EstimatedTime
	})

	best := candidates[0].task
	return &best
}

// PhasePriority extracts the ordering value from a phase label: the first
// run of digits in the string ("phase-10-final" -> 10). Labels without a
// number sort last via UnknownPhasePriority rather than failing.
func PhasePriority(phase string) int {
	start := -1
	for i, r := range phase {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			break
		}
	}
	if start < 0 {
		return constants.UnknownPhasePriority
	}
	end := start
	for end < len(phase) && phase[end] >= '0' && phase[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(phase[start:end])
	if err != nil {
		return constants.UnknownPhasePriority
	}
	return n
}

// referencePhase returns the phase of the most recently completed task.
// The second return is false when nothing has completed yet.
func referencePhase(tasks []domain.Task) (string, bool) {
	var (
		phase string
		found bool
		best  *domain.Task
	)
	for i := range tasks {
		t := &tasks[i]
		if !t.IsCompleted() || t.CompletedDate == nil {
			continue
		}
		if best == nil || t.CompletedDate.After(*best.CompletedDate) {
			best = t
			phase = t.Phase
			found = true
		}
	}
	return phase, found
}

// completedSet indexes completed task ids for dependency lookups.
func completedSet(tasks []domain.Task) map[string]struct{} {
	set := make(map[string]struct{})
	for _, t := range tasks {
		if t.IsCompleted() {
			set[t.ID] = struct{}{}
		}
	}
	return set
}

// unresolvedDeps counts dependencies not present in the completed set.
func unresolvedDeps(t domain.Task, completed map[string]struct{}) int {
	n := 0
	for _, dep := range t.Dependencies {
		if _, ok := completed[dep]; !ok {
			n++
		}
	}
	return n
}
