package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preflylabs/prefly/internal/constants"
	"github.com/preflylabs/prefly/internal/domain"
	"github.com/preflylabs/prefly/internal/errors"
)

// testSprintYAML is a two-task plan: DB-001 done, API-002 ready to start.
const testSprintYAML = `schema_version: "1.0"
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
      acceptance_criteria:
        - tokens expire after one hour
      patterns:
        - Pattern-API-001
      why: Clients need a token endpoint before anything else works.
`

// setupProject creates a temp project with the given sprint plan and makes
// it the working directory.
func setupProject(t *testing.T, sprintYAML string, files ...string) {
	t.Helper()

	root := t.TempDir()
	dir := filepath.Join(root, constants.PreflyHome)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, constants.SprintFileName), []byte(sprintYAML), 0o644))

	for _, rel := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o644))
	}

	t.Chdir(root)
}

func jsonFlags() *GlobalFlags {
	return &GlobalFlags{Output: OutputJSON}
}

func TestRunTasks_JSON(t *testing.T) {
	setupProject(t, testSprintYAML)

	var buf bytes.Buffer
	require.NoError(t, runTasks(context.Background(), &buf, jsonFlags()))

	var tasks []domain.Task
	require.NoError(t, json.Unmarshal(buf.Bytes(), &tasks))
	require.Len(t, tasks, 2)
	assert.Equal(t, "DB-001", tasks[0].ID)
	assert.Equal(t, "API-002", tasks[1].ID)
}

func TestRunTasks_NoSprint(t *testing.T) {
	t.Chdir(t.TempDir())

	var buf bytes.Buffer
	err := runTasks(context.Background(), &buf, jsonFlags())
	assert.ErrorIs(t, err, errors.ErrSprintNotFound)
}

func TestRunScore_SingleTask(t *testing.T) {
	setupProject(t, testSprintYAML)

	var buf bytes.Buffer
	require.NoError(t, runScore(context.Background(), &buf, jsonFlags(), "API-002", false))

	var result domain.TaskScore
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "API-002", result.TaskID)
	assert.InDelta(t, 1.0, result.Confidence, 0.001, "all five criteria are populated")
	assert.Equal(t, constants.ScoreActionAccept, result.Action)
}

func TestRunScore_Sprint(t *testing.T) {
	setupProject(t, testSprintYAML)

	var buf bytes.Buffer
	require.NoError(t, runScore(context.Background(), &buf, jsonFlags(), "", true))

	var aggregate domain.SprintScore
	require.NoError(t, json.Unmarshal(buf.Bytes(), &aggregate))
	assert.Equal(t, 2, aggregate.TotalTasks)
}

func TestRunScore_ArgumentValidation(t *testing.T) {
	setupProject(t, testSprintYAML)

	var buf bytes.Buffer

	err := runScore(context.Background(), &buf, jsonFlags(), "", false)
	require.Error(t, err, "neither a task id nor --sprint")
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))

	err = runScore(context.Background(), &buf, jsonFlags(), "API-002", true)
	require.Error(t, err, "both a task id and --sprint")
}

func TestRunScore_TaskNotFound(t *testing.T) {
	setupProject(t, testSprintYAML)

	var buf bytes.Buffer
	err := runScore(context.Background(), &buf, jsonFlags(), "GONE-9", false)
	assert.ErrorIs(t, err, errors.ErrTaskNotFound)
}

func TestRunAnalyze_Ready(t *testing.T) {
	setupProject(t, testSprintYAML, "internal/api/auth.go")

	var buf bytes.Buffer
	require.NoError(t, runAnalyze(context.Background(), &buf, jsonFlags(), "API-002", true))

	var merged domain.Context
	require.NoError(t, json.Unmarshal(buf.Bytes(), &merged))
	assert.Equal(t, "API-002", merged.Task.ID)
	assert.Equal(t, 80, merged.CoverageTarget)
	assert.False(t, merged.GeneratedAt.IsZero())
}

func TestRunAnalyze_NeedsClarification(t *testing.T) {
	// The auth.go file is never created, so a MissingFile gap surfaces.
	setupProject(t, testSprintYAML)

	var buf bytes.Buffer
	require.NoError(t, runAnalyze(context.Background(), &buf, jsonFlags(), "API-002", true))

	var result domain.AnalysisResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, domain.AnalysisNeedsClarification, result.Status)
	require.Len(t, result.Questions, 1)
	assert.Contains(t, result.Questions[0].Text, "internal/api/auth.go")
}

func TestRunAnalyze_TaskNotFound(t *testing.T) {
	setupProject(t, testSprintYAML)

	var buf bytes.Buffer
	err := runAnalyze(context.Background(), &buf, jsonFlags(), "GONE-9", true)
	assert.ErrorIs(t, err, errors.ErrTaskNotFound)
}

func TestRunNext_SelectsReadyTask(t *testing.T) {
	setupProject(t, testSprintYAML, "internal/api/auth.go")

	var buf bytes.Buffer
	require.NoError(t, runNext(context.Background(), &buf, jsonFlags(), true, true))

	var merged domain.Context
	require.NoError(t, json.Unmarshal(buf.Bytes(), &merged))
	assert.Equal(t, "API-002", merged.Task.ID, "the only ready task is selected")
}

func TestRunNext_NoReadyTasks(t *testing.T) {
	const blockedSprint = `schema_version: "1.0"
sprint:
  name: Blocked Sprint
  tasks:
    - id: A-001
      status: pending
      dependencies:
        - B-001
    - id: B-001
      status: in_progress
`
	setupProject(t, blockedSprint)

	var buf bytes.Buffer
	require.NoError(t, runNext(context.Background(), &buf, jsonFlags(), true, true))

	var payload map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
	assert.Nil(t, payload["task"], "no ready tasks is a success, not an error")
}

func TestRunShow_JSON(t *testing.T) {
	setupProject(t, testSprintYAML)

	var buf bytes.Buffer
	require.NoError(t, runShow(context.Background(), &buf, jsonFlags(), "API-002"))

	var task domain.Task
	require.NoError(t, json.Unmarshal(buf.Bytes(), &task))
	assert.Equal(t, "API-002", task.ID)
	assert.Equal(t, []string{"DB-001"}, task.Dependencies)
}

func TestRunShow_Text(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	setupProject(t, testSprintYAML)

	var buf bytes.Buffer
	require.NoError(t, runShow(context.Background(), &buf, &GlobalFlags{Output: OutputText}, "API-002"))

	out := buf.String()
	assert.Contains(t, out, "API-002")
	assert.Contains(t, out, "token endpoint")
}

func TestRunVersion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runVersion(&buf, jsonFlags(), BuildInfo{Version: "9.9.9", Commit: "abc", Date: "today"}))

	var info versionInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &info))
	assert.Equal(t, "9.9.9", info.Version)
	assert.Equal(t, "abc", info.Commit)
}

func TestTaskMarkdown(t *testing.T) {
	t.Parallel()

	task := domain.Task{
		ID:            "API-002",
		Status:        constants.TaskStatusPending,
		Phase:         "phase-2-core",
		Agent:         "api-agent",
		Description:   "Build the token endpoint.",
		Why:           "Clients need it.",
		Dependencies:  []string{"DB-001"},
		FilesToModify: []string{"internal/api/auth.go"},
	}

	md := taskMarkdown(&task)
	assert.Contains(t, md, "# API-002")
	assert.Contains(t, md, "## Why")
	assert.Contains(t, md, "- DB-001")
	assert.Contains(t, md, "- internal/api/auth.go")
	assert.NotContains(t, md, "## Context", "empty sections are omitted")
}
