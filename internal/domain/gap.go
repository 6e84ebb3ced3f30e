package domain

// GapKind categorizes a detected reason a task is not yet safely actionable.
type GapKind string

// Gap kind constants. Exhaustive switches over GapKind are a correctness
// tool: the question generator must handle every kind.
const (
	// GapMissingFile indicates a file the task plans to modify does not
	// exist on disk and no other pending task delivers it.
	GapMissingFile GapKind = "missing_file"

	// GapUnmetDependency indicates a declared dependency is not completed.
	GapUnmetDependency GapKind = "unmet_dependency"

	// GapMissingTestStrategy indicates the responsible agent has a nonzero
	// coverage requirement but the task never mentions tests or coverage.
	GapMissingTestStrategy GapKind = "missing_test_strategy"

	// GapPreflightViolation indicates the task touches a protected path
	// without referencing a pre-change review step.
	GapPreflightViolation GapKind = "preflight_violation"
)

// String returns the string representation of the GapKind.
func (k GapKind) String() string {
	return string(k)
}

// GapSeverity indicates whether a gap blocks execution or merely advises.
type GapSeverity string

// Gap severity constants.
const (
	// SeverityBlocking means the gap must be resolved before work begins.
	SeverityBlocking GapSeverity = "blocking"

	// SeverityAdvisory means the gap is worth surfacing but may be skipped.
	SeverityAdvisory GapSeverity = "advisory"
)

// String returns the string representation of the GapSeverity.
func (s GapSeverity) String() string {
	return string(s)
}

// Gap is one detected deficiency in a task. Gaps are created fresh per
// analysis and discarded after the caller consumes the result; the engine
// holds no cross-call memory of a task's gap history.
type Gap struct {
	// Kind categorizes the deficiency.
	Kind GapKind `json:"kind"`

	// Severity is blocking or advisory.
	Severity GapSeverity `json:"severity"`

	// Message is the human-readable description of the deficiency.
	Message string `json:"message"`

	// Subject is the file path, dependency id, or agent name the gap is
	// about, depending on Kind. Empty when the gap has no single subject.
	Subject string `json:"subject,omitempty"`
}

// IsBlocking reports whether the gap must be resolved before execution.
func (g Gap) IsBlocking() bool {
	return g.Severity == SeverityBlocking
}
