package backlog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/preflylabs/prefly/internal/config"
	"github.com/preflylabs/prefly/internal/domain"
	preflyerrors "github.com/preflylabs/prefly/internal/errors"
)

// maxSprintFileSize is the maximum allowed size for a sprint plan file (1MB).
const maxSprintFileSize = 1024 * 1024

// Store reads the sprint plan from disk.
// It provides read-only access; status transitions are written by the
// planning tooling, never by the readiness engine.
type Store struct {
	// path is the absolute path to the sprint plan file.
	path string
	// projectRoot is the absolute path to the project root.
	projectRoot string
}

// NewStore creates a new Store for the given project root.
// If projectRoot is empty, it uses the current working directory.
func NewStore(projectRoot string) (*Store, error) {
	if projectRoot == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		projectRoot = cwd
	}

	absRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	return &Store{
		path:        filepath.Join(absRoot, config.ProjectSprintPath()),
		projectRoot: absRoot,
	}, nil
}

// Path returns the absolute path to the sprint plan file.
func (s *Store) Path() string {
	return s.path
}

// ProjectRoot returns the absolute path to the project root.
func (s *Store) ProjectRoot() string {
	return s.projectRoot
}

// Load reads, parses, and validates the sprint plan.
func (s *Store) Load(ctx context.Context) (*Sprint, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	info, err := os.Stat(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, preflyerrors.Wrapf(preflyerrors.ErrSprintNotFound, "%s", s.path)
		}
		return nil, preflyerrors.Wrap(err, "failed to stat sprint plan")
	}
	if info.Size() > maxSprintFileSize {
		return nil, fmt.Errorf("sprint plan exceeds maximum size of %d bytes: %w",
			maxSprintFileSize, preflyerrors.ErrSprintInvalid)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, preflyerrors.Wrap(err, "failed to read sprint plan")
	}

	var file sprintFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, preflyerrors.Wrap(err, "failed to parse sprint plan")
	}

	sprint := &Sprint{
		Name:  file.Sprint.Name,
		Goals: file.Sprint.Goals,
		Tasks: make([]domain.Task, 0, len(file.Sprint.Tasks)),
	}
	for _, record := range file.Sprint.Tasks {
		sprint.Tasks = append(sprint.Tasks, record.toDomain())
	}
	sprint.index()

	if err := validateSprint(sprint); err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx).With().Str("component", "backlog").Logger()
	logger.Debug().
		Str("sprint", sprint.Name).
		Int("tasks", len(sprint.Tasks)).
		Int("completed", len(sprint.Completed())).
		Msg("sprint plan loaded")

	return sprint, nil
}

// GetTask loads the sprint plan and returns the task with the given id.
func (s *Store) GetTask(ctx context.Context, id string) (domain.Task, *Sprint, error) {
	sprint, err := s.Load(ctx)
	if err != nil {
		return domain.Task{}, nil, err
	}

	task, ok := sprint.Get(id)
	if !ok {
		return domain.Task{}, nil, preflyerrors.Wrapf(preflyerrors.ErrTaskNotFound, "%s", id)
	}
	return task, sprint, nil
}
