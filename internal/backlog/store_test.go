package backlog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preflylabs/prefly/internal/constants"
	preflyerrors "github.com/preflylabs/prefly/internal/errors"
)

const validSprintYAML = `schema_version: "1.0"
sprint:
  name: Add OAuth2 Authentication
  goals:
    - Implement OAuth2 with PKCE
  tasks:
    - id: DB-001
      phase: phase-1-foundation
      status: completed
      agent: database-agent
      duration: 2 hours
      deliverables:
        - users table migration
      acceptance_criteria:
        - migration applies cleanly
      completed_date: 2026-02-10T09:00:00Z
    - id: API-002
      phase: phase-2-core
      status: pending
      agent: api-agent
      duration: 3 hours
      dependencies:
        - DB-001
      files:
        - internal/api/auth.go
      deliverables:
        - token endpoint with tests
      patterns:
        - Pattern-API-001
      why: Clients need a token endpoint before anything else works.
`

// writeSprint writes YAML content to .prefly/sprint.yaml under root.
func writeSprint(t *testing.T, root, content string) {
	t.Helper()
	dir := filepath.Join(root, constants.PreflyHome)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, constants.SprintFileName), []byte(content), 0o644))
}

func TestStore_Load(t *testing.T) {
	root := t.TempDir()
	writeSprint(t, root, validSprintYAML)

	store, err := NewStore(root)
	require.NoError(t, err)

	sprint, err := store.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Add OAuth2 Authentication", sprint.Name)
	require.Len(t, sprint.Tasks, 2)

	t.Run("task fields are converted", func(t *testing.T) {
		task, ok := sprint.Get("API-002")
		require.True(t, ok)
		assert.Equal(t, "phase-2-core", task.Phase)
		assert.Equal(t, constants.TaskStatusPending, task.Status)
		assert.Equal(t, "api-agent", task.Agent)
		assert.Equal(t, []string{"DB-001"}, task.Dependencies)
		assert.Equal(t, []string{"internal/api/auth.go"}, task.FilesToModify)
		assert.Equal(t, 3*time.Hour, task.EstimatedTime)
	})

	t.Run("completed view", func(t *testing.T) {
		completed := sprint.Completed()
		require.Len(t, completed, 1)
		_, ok := completed["DB-001"]
		assert.True(t, ok)
	})

	t.Run("pending view", func(t *testing.T) {
		pending := sprint.Pending()
		require.Len(t, pending, 1)
		assert.Equal(t, "API-002", pending[0].ID)
	})
}

func TestStore_Load_MissingFile(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	assert.ErrorIs(t, err, preflyerrors.ErrSprintNotFound)
}

func TestStore_Load_InvalidPlans(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "duplicate task ids",
			yaml: `sprint:
  name: s
  tasks:
    - id: T-1
      status: pending
    - id: T-1
      status: pending
`,
		},
		{
			name: "dangling dependency",
			yaml: `sprint:
  name: s
  tasks:
    - id: T-1
      status: pending
      dependencies: [GHOST-9]
`,
		},
		{
			name: "invalid status",
			yaml: `sprint:
  name: s
  tasks:
    - id: T-1
      status: running
`,
		},
		{
			name: "completed without date",
			yaml: `sprint:
  name: s
  tasks:
    - id: T-1
      status: completed
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeSprint(t, root, tt.yaml)

			store, err := NewStore(root)
			require.NoError(t, err)

			_, err = store.Load(context.Background())
			assert.ErrorIs(t, err, preflyerrors.ErrSprintInvalid)
		})
	}
}

func TestStore_GetTask(t *testing.T) {
	root := t.TempDir()
	writeSprint(t, root, validSprintYAML)

	store, err := NewStore(root)
	require.NoError(t, err)

	t.Run("existing task", func(t *testing.T) {
		task, sprint, err := store.GetTask(context.Background(), "DB-001")
		require.NoError(t, err)
		require.NotNil(t, sprint)
		assert.Equal(t, "DB-001", task.ID)
	})

	t.Run("unknown task yields typed error", func(t *testing.T) {
		_, _, err := store.GetTask(context.Background(), "NOPE-1")
		assert.ErrorIs(t, err, preflyerrors.ErrTaskNotFound)
	})
}

func TestStore_Load_CanceledContext(t *testing.T) {
	root := t.TempDir()
	writeSprint(t, root, validSprintYAML)

	store, err := NewStore(root)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTaskRecord_Defaults(t *testing.T) {
	record := taskRecord{ID: "X-1"}
	task := record.toDomain()

	assert.Equal(t, constants.TaskStatusPending, task.Status, "missing status defaults to pending")
	assert.Equal(t, constants.DefaultEstimatedTime, task.EstimatedTime, "missing duration gets the default estimate")
}
