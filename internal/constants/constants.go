// Package constants provides centralized constant values used throughout PREFLY.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

import "time"

// AppName is the canonical name of the tool, used in logs and user output.
const AppName = "prefly"

// Directory and file names used by PREFLY for project state.
const (
	// PreflyHome is the hidden directory name where PREFLY stores project
	// state. It is created in the target repository root (project scope)
	// and in the user's home directory (global scope).
	PreflyHome = ".prefly"

	// SprintFileName is the name of the YAML file holding the live sprint
	// plan inside PreflyHome. This file is itself a protected path: tasks
	// that modify it must reference a pre-change review step.
	SprintFileName = "sprint.yaml"

	// ConfigFileName is the name of the YAML configuration file inside
	// PreflyHome (project scope) or ~/.prefly (global scope).
	ConfigFileName = "config.yaml"

	// LogsDir is the directory name where log files are stored under the
	// global PreflyHome.
	LogsDir = "logs"

	// LogFileName is the name of the rotating log file inside LogsDir.
	LogFileName = "prefly.log"
)

// Confidence scoring thresholds. A task's confidence is the sum of five
// 0.2-weighted structural criteria, rounded to one decimal.
const (
	// ConfidenceAcceptThreshold is the minimum confidence for a task to be
	// accepted as-is without clarification.
	ConfidenceAcceptThreshold = 0.8

	// ConfidenceFillGapsThreshold is the minimum confidence for a task to be
	// worth filling gaps interactively. Below this the task should be
	// regenerated from scratch.
	ConfidenceFillGapsThreshold = 0.5

	// CriterionWeight is the confidence contribution of each of the five
	// scoring criteria.
	CriterionWeight = 0.2
)

// Selector constants.
const (
	// UnknownPhasePriority is the numeric phase assigned to tasks whose
	// phase label contains no parseable integer. It sorts after every real
	// phase so malformed labels never win selection or cause a failure.
	UnknownPhasePriority = 99
)

// Gap detection defaults.
const (
	// DefaultBlockingCoverage is the required-coverage percentage at or
	// above which a missing test strategy becomes a blocking gap rather
	// than an advisory one.
	DefaultBlockingCoverage = 80

	// FileCheckConcurrency bounds concurrent filesystem existence checks
	// when a task lists many files to modify.
	FileCheckConcurrency = 16
)

// Log rotation settings for the rotating file writer.
const (
	// LogMaxSizeMB is the maximum size in megabytes of a log file before rotation.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated log files to retain.
	LogMaxBackups = 3

	// LogMaxAgeDays is the maximum number of days to retain rotated log files.
	LogMaxAgeDays = 30
)

// DefaultEstimatedTime is assumed for tasks whose estimated duration is
// absent or unparseable. Chosen high so unestimated tasks lose the
// shortest-time tie-break instead of winning it by accident.
const DefaultEstimatedTime = 8 * time.Hour

// Version is the PREFLY version string, overridable at build time via
// -ldflags "-X github.com/preflylabs/prefly/internal/constants.Version=...".
var Version = "0.3.0" //nolint:gochecknoglobals // Set by the linker at release time
