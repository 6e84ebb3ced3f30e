// Package backlog provides the sprint plan store for PREFLY.
//
// The sprint plan is a single YAML file at .prefly/sprint.yaml, authored
// collaboratively by a human and a planning agent. This package owns the
// on-disk format: it parses the plan into domain Tasks, validates it, and
// exposes read-only views. No other package touches the raw YAML.
package backlog

import (
	"time"

	"github.com/preflylabs/prefly/internal/constants"
	"github.com/preflylabs/prefly/internal/domain"
)

// SchemaVersion is the current schema version for sprint plan files.
const SchemaVersion = "1.0"

// Sprint is the parsed, validated sprint plan.
type Sprint struct {
	// Name is the sprint name (e.g., "Add OAuth2 Authentication").
	Name string

	// Goals are the high-level sprint goals.
	Goals []string

	// Tasks are all tasks in plan order.
	Tasks []domain.Task

	// byID indexes tasks for O(1) lookup. Built at load time.
	byID map[string]*domain.Task
}

// sprintFile is the YAML document root.
type sprintFile struct {
	SchemaVersion string         `yaml:"schema_version"`
	Sprint        sprintMetadata `yaml:"sprint"`
}

// sprintMetadata mirrors the `sprint:` block of the YAML file.
type sprintMetadata struct {
	Name  string       `yaml:"name"`
	Goals []string     `yaml:"goals"`
	Tasks []taskRecord `yaml:"tasks"`
}

// taskRecord mirrors one task entry in the YAML file. Durations are
// human-readable strings ("2 hours", "30 minutes") and are normalized to
// time.Duration during conversion.
type taskRecord struct {
	ID                 string     `yaml:"id"`
	Phase              string     `yaml:"phase"`
	Status             string     `yaml:"status"`
	Agent              string     `yaml:"agent"`
	Duration           string     `yaml:"duration"`
	Dependencies       []string   `yaml:"dependencies"`
	Files              []string   `yaml:"files"`
	Deliverables       []string   `yaml:"deliverables"`
	AcceptanceCriteria []string   `yaml:"acceptance_criteria"`
	Patterns           []string   `yaml:"patterns"`
	Description        string     `yaml:"description"`
	Why                string     `yaml:"why"`
	Context            string     `yaml:"context"`
	CompletedDate      *time.Time `yaml:"completed_date"`
}

// toDomain converts a YAML task record into the shared domain type.
// Missing status defaults to pending; missing or unparseable durations
// default to constants.DefaultEstimatedTime.
func (r taskRecord) toDomain() domain.Task {
	status := constants.TaskStatus(r.Status)
	if r.Status == "" {
		status = constants.TaskStatusPending
	}

	estimated, err := ParseHumanDuration(r.Duration)
	if err != nil {
		estimated = constants.DefaultEstimatedTime
	}

	return domain.Task{
		ID:                 r.ID,
		Phase:              r.Phase,
		Status:             status,
		Agent:              r.Agent,
		Dependencies:       r.Dependencies,
		FilesToModify:      r.Files,
		Deliverables:       r.Deliverables,
		ValidationCriteria: r.AcceptanceCriteria,
		Patterns:           r.Patterns,
		Description:        r.Description,
		Why:                r.Why,
		Context:            r.Context,
		EstimatedTime:      estimated,
		CompletedDate:      r.CompletedDate,
	}
}

// Get returns the task with the given id.
func (s *Sprint) Get(id string) (domain.Task, bool) {
	t, ok := s.byID[id]
	if !ok {
		return domain.Task{}, false
	}
	return *t, true
}

// Completed returns the tasks with status completed, keyed by id.
// This is the dependency-completion view the gap detector and selector
// consume.
func (s *Sprint) Completed() map[string]domain.Task {
	completed := make(map[string]domain.Task)
	for _, t := range s.Tasks {
		if t.IsCompleted() {
			completed[t.ID] = t
		}
	}
	return completed
}

// Pending returns the tasks with status pending, in plan order.
func (s *Sprint) Pending() []domain.Task {
	var pending []domain.Task
	for _, t := range s.Tasks {
		if t.IsPending() {
			pending = append(pending, t)
		}
	}
	return pending
}

// index rebuilds the id lookup map.
func (s *Sprint) index() {
	s.byID = make(map[string]*domain.Task, len(s.Tasks))
	for i := range s.Tasks {
		s.byID[s.Tasks[i].ID] = &s.Tasks[i]
	}
}
