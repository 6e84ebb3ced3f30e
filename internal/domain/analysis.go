package domain

import "time"

// AnalysisStatus is the outcome of one analysis pass.
type AnalysisStatus string

// Analysis status constants.
const (
	// AnalysisReady means the task has no gaps (or all answers were
	// collected) and the merged context is ready for prompt assembly.
	AnalysisReady AnalysisStatus = "ready"

	// AnalysisNeedsClarification means gaps were detected and the caller
	// should drive the wizard over the attached questions.
	AnalysisNeedsClarification AnalysisStatus = "needs_clarification"
)

// String returns the string representation of the AnalysisStatus.
func (s AnalysisStatus) String() string {
	return string(s)
}

// AnalysisResult is the engine's final output for one task analysis.
// Exactly one of Context or Questions is populated, depending on Status.
type AnalysisResult struct {
	// Status is ready or needs_clarification.
	Status AnalysisStatus `json:"status"`

	// Score is the informational confidence score. It never gates the
	// analysis outcome.
	Score TaskScore `json:"score"`

	// Gaps lists every detected deficiency, in detection order.
	Gaps []Gap `json:"gaps,omitempty"`

	// Questions is populated when Status == needs_clarification, in stable
	// gap order for deterministic numbering.
	Questions []Question `json:"questions,omitempty"`

	// Context is populated when Status == ready.
	Context *Context `json:"context,omitempty"`
}

// Context is the merged task + config + answers payload handed to the
// external prompt assembler. The engine does not generate natural-language
// instructions; it only assembles the structured inputs.
type Context struct {
	// Task is the analyzed task, unchanged.
	Task Task `json:"task"`

	// CoverageTarget is the required test-coverage percentage for the
	// task's agent, zero when no policy applies.
	CoverageTarget int `json:"coverage_target"`

	// ProtectedPaths lists the task's files that match protected patterns.
	ProtectedPaths []string `json:"protected_paths,omitempty"`

	// Answers holds the wizard answers keyed by question id. Answers are
	// merged verbatim; gaps are not re-detected after collection.
	Answers map[string]Answer `json:"answers,omitempty"`

	// GeneratedAt is when the context was assembled.
	GeneratedAt time.Time `json:"generated_at"`
}
