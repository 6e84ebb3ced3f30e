package gap_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preflylabs/prefly/internal/config"
	"github.com/preflylabs/prefly/internal/constants"
	"github.com/preflylabs/prefly/internal/domain"
	"github.com/preflylabs/prefly/internal/gap"
)

// testConfig returns a default config rooted at dir.
func testConfig(dir string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Project.BaseDir = dir
	return cfg
}

// touch creates an empty file (and parent dirs) under root.
func touch(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}

// completedTask returns a completed task with the given id.
func completedTask(id string) domain.Task {
	now := time.Now()
	return domain.Task{ID: id, Status: constants.TaskStatusCompleted, CompletedDate: &now}
}

func TestDetect_MissingFile(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "internal/api/existing.go")

	detector := gap.NewDetector(testConfig(root))

	task := domain.Task{
		ID:    "API-002",
		Agent: "documentation-agent",
		FilesToModify: []string{
			"internal/api/existing.go",
			"internal/api/new_handler.go",
		},
	}

	gaps, err := detector.Detect(context.Background(), &task, gap.View{})
	require.NoError(t, err)

	require.Len(t, gaps, 1, "only the non-existent path should gap")
	assert.Equal(t, domain.GapMissingFile, gaps[0].Kind)
	assert.Equal(t, domain.SeverityBlocking, gaps[0].Severity)
	assert.Equal(t, "internal/api/new_handler.go", gaps[0].Subject)
}

func TestDetect_MissingFile_AllExist(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "a.go")
	touch(t, root, "b.go")

	detector := gap.NewDetector(testConfig(root))
	task := domain.Task{ID: "T-1", Agent: "documentation-agent", FilesToModify: []string{"a.go", "b.go"}}

	gaps, err := detector.Detect(context.Background(), &task, gap.View{})
	require.NoError(t, err)
	assert.Empty(t, gaps)
}

func TestDetect_MissingFile_ExcusedByPendingDeliverable(t *testing.T) {
	root := t.TempDir()
	detector := gap.NewDetector(testConfig(root))

	task := domain.Task{
		ID:            "API-002",
		Agent:         "documentation-agent",
		FilesToModify: []string{"internal/api/new_handler.go"},
	}
	view := gap.View{
		Pending: []domain.Task{
			{ID: "API-001", Status: constants.TaskStatusPending, FilesToModify: []string{"internal/api/new_handler.go"}},
		},
	}

	gaps, err := detector.Detect(context.Background(), &task, view)
	require.NoError(t, err)
	assert.Empty(t, gaps, "file delivered by another pending task is excused")
}

func TestDetect_MissingFile_OwnTaskDoesNotExcuse(t *testing.T) {
	root := t.TempDir()
	detector := gap.NewDetector(testConfig(root))

	task := domain.Task{
		ID:            "API-002",
		Agent:         "documentation-agent",
		FilesToModify: []string{"internal/api/new_handler.go"},
	}
	view := gap.View{Pending: []domain.Task{task}}

	gaps, err := detector.Detect(context.Background(), &task, view)
	require.NoError(t, err)
	require.Len(t, gaps, 1)
	assert.Equal(t, domain.GapMissingFile, gaps[0].Kind)
}

func TestDetect_UnmetDependency(t *testing.T) {
	detector := gap.NewDetector(testConfig(t.TempDir()))

	task := domain.Task{
		ID:           "API-002",
		Agent:        "documentation-agent",
		Dependencies: []string{"DB-001", "INFRA-001"},
	}

	t.Run("dependency absent from completed set", func(t *testing.T) {
		view := gap.View{Completed: map[string]domain.Task{"DB-001": completedTask("DB-001")}}

		gaps, err := detector.Detect(context.Background(), &task, view)
		require.NoError(t, err)

		require.Len(t, gaps, 1)
		assert.Equal(t, domain.GapUnmetDependency, gaps[0].Kind)
		assert.Equal(t, domain.SeverityBlocking, gaps[0].Severity)
		assert.Equal(t, "INFRA-001", gaps[0].Subject)
	})

	t.Run("gap disappears once dependency completes", func(t *testing.T) {
		view := gap.View{Completed: map[string]domain.Task{
			"DB-001":    completedTask("DB-001"),
			"INFRA-001": completedTask("INFRA-001"),
		}}

		gaps, err := detector.Detect(context.Background(), &task, view)
		require.NoError(t, err)
		assert.Empty(t, gaps)
	})
}

func TestDetect_MissingTestStrategy(t *testing.T) {
	root := t.TempDir()
	detector := gap.NewDetector(testConfig(root))

	base := domain.Task{
		ID:           "INFRA-003",
		Deliverables: []string{"terraform module for the queue"},
		Description:  "Provision the message queue.",
	}

	t.Run("zero-coverage agent never triggers", func(t *testing.T) {
		task := base
		task.Agent = "documentation-agent"

		gaps, err := detector.Detect(context.Background(), &task, gap.View{})
		require.NoError(t, err)
		assert.Empty(t, gaps)
	})

	t.Run("high-coverage agent triggers blocking gap", func(t *testing.T) {
		task := base
		task.Agent = "infrastructure-agent" // 90% >= blocking threshold

		gaps, err := detector.Detect(context.Background(), &task, gap.View{})
		require.NoError(t, err)

		require.Len(t, gaps, 1)
		assert.Equal(t, domain.GapMissingTestStrategy, gaps[0].Kind)
		assert.Equal(t, domain.SeverityBlocking, gaps[0].Severity)
		assert.Equal(t, "infrastructure-agent", gaps[0].Subject)
		assert.Contains(t, gaps[0].Message, "90%")
	})

	t.Run("low-coverage agent triggers advisory gap", func(t *testing.T) {
		task := base
		task.Agent = "ui-agent" // 70% < blocking threshold of 80

		gaps, err := detector.Detect(context.Background(), &task, gap.View{})
		require.NoError(t, err)

		require.Len(t, gaps, 1)
		assert.Equal(t, domain.SeverityAdvisory, gaps[0].Severity)
	})

	t.Run("test mention in deliverables satisfies", func(t *testing.T) {
		task := base
		task.Agent = "infrastructure-agent"
		task.Deliverables = []string{"terraform module with integration tests"}

		gaps, err := detector.Detect(context.Background(), &task, gap.View{})
		require.NoError(t, err)
		assert.Empty(t, gaps)
	})

	t.Run("coverage mention in description satisfies", func(t *testing.T) {
		task := base
		task.Agent = "infrastructure-agent"
		task.Description = "Provision the queue; maintain 90% coverage."

		gaps, err := detector.Detect(context.Background(), &task, gap.View{})
		require.NoError(t, err)
		assert.Empty(t, gaps)
	})

	t.Run("embedded keyword does not satisfy", func(t *testing.T) {
		task := base
		task.Agent = "infrastructure-agent"
		task.Description = "Provision the latest queue release."
		task.Deliverables = []string{"contest entry form"}

		gaps, err := detector.Detect(context.Background(), &task, gap.View{})
		require.NoError(t, err)

		require.Len(t, gaps, 1, "words containing 'test' are not a test strategy")
		assert.Equal(t, domain.GapMissingTestStrategy, gaps[0].Kind)
	})

	t.Run("plural and gerund forms satisfy", func(t *testing.T) {
		task := base
		task.Agent = "infrastructure-agent"
		task.Description = "Provision the queue and add smoke testing."

		gaps, err := detector.Detect(context.Background(), &task, gap.View{})
		require.NoError(t, err)
		assert.Empty(t, gaps)
	})
}

func TestDetect_PreflightViolation(t *testing.T) {
	root := t.TempDir()
	touch(t, root, ".prefly/sprint.yaml")

	detector := gap.NewDetector(testConfig(root))

	t.Run("protected file without review reference", func(t *testing.T) {
		task := domain.Task{
			ID:            "PLAN-001",
			Agent:         "documentation-agent",
			FilesToModify: []string{".prefly/sprint.yaml"},
			Description:   "Reorder upcoming tasks.",
		}

		gaps, err := detector.Detect(context.Background(), &task, gap.View{})
		require.NoError(t, err)

		require.Len(t, gaps, 1)
		assert.Equal(t, domain.GapPreflightViolation, gaps[0].Kind)
		assert.Equal(t, domain.SeverityBlocking, gaps[0].Severity)
		assert.Equal(t, ".prefly/sprint.yaml", gaps[0].Subject)
	})

	t.Run("review reference suppresses the gap", func(t *testing.T) {
		task := domain.Task{
			ID:            "PLAN-001",
			Agent:         "documentation-agent",
			FilesToModify: []string{".prefly/sprint.yaml"},
			Description:   "Reorder upcoming tasks after completing the pre-change review checklist.",
		}

		gaps, err := detector.Detect(context.Background(), &task, gap.View{})
		require.NoError(t, err)
		assert.Empty(t, gaps)
	})
}

func TestDetect_MultipleGapsSimultaneously(t *testing.T) {
	root := t.TempDir()
	detector := gap.NewDetector(testConfig(root))

	task := domain.Task{
		ID:            "INFRA-009",
		Agent:         "infrastructure-agent",
		Dependencies:  []string{"DB-001"},
		FilesToModify: []string{"infra/queue.tf", "db/migrations/009_queue.sql"},
		Description:   "Provision the queue.",
	}

	gaps, err := detector.Detect(context.Background(), &task, gap.View{})
	require.NoError(t, err)

	kinds := make(map[domain.GapKind]int)
	for _, g := range gaps {
		kinds[g.Kind]++
	}

	assert.Equal(t, 2, kinds[domain.GapMissingFile])
	assert.Equal(t, 1, kinds[domain.GapUnmetDependency])
	assert.Equal(t, 1, kinds[domain.GapMissingTestStrategy])
	assert.Equal(t, 1, kinds[domain.GapPreflightViolation], "migrations path is protected")
}

func TestDetect_StableOrdering(t *testing.T) {
	root := t.TempDir()
	detector := gap.NewDetector(testConfig(root))

	task := domain.Task{
		ID:            "T-1",
		Agent:         "documentation-agent",
		FilesToModify: []string{"z.go", "a.go", "m.go"},
	}

	first, err := detector.Detect(context.Background(), &task, gap.View{})
	require.NoError(t, err)
	second, err := detector.Detect(context.Background(), &task, gap.View{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.Len(t, first, 3)
	assert.Equal(t, "z.go", first[0].Subject, "gaps keep input order")
	assert.Equal(t, "a.go", first[1].Subject)
	assert.Equal(t, "m.go", first[2].Subject)
}

func TestDetect_NilConfigSkipsConfigRules(t *testing.T) {
	detector := gap.NewDetector(nil)

	task := domain.Task{
		ID:           "T-1",
		Agent:        "infrastructure-agent",
		Dependencies: []string{"GONE-1"},
	}

	gaps, err := detector.Detect(context.Background(), &task, gap.View{})
	require.NoError(t, err)

	// Dependency rule still runs; config-driven rules are skipped.
	require.Len(t, gaps, 1)
	assert.Equal(t, domain.GapUnmetDependency, gaps[0].Kind)
}

func TestDetect_CanceledContext(t *testing.T) {
	detector := gap.NewDetector(testConfig(t.TempDir()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	task := domain.Task{ID: "T-1", FilesToModify: []string{"a.go"}}
	_, err := detector.Detect(ctx, &task, gap.View{})
	assert.ErrorIs(t, err, context.Canceled)
}
