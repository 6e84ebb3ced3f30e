// Package config provides configuration management for PREFLY with layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. Environment variables (PREFLY_* prefix)
//  2. Project config (.prefly/config.yaml)
//  3. Global config (~/.prefly/config.yaml)
//  4. Built-in defaults
//
// Each higher level completely overrides the lower level for the same key.
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import internal/domain or other internal packages.
package config

// Config is the root configuration structure for PREFLY.
type Config struct {
	// Project contains base directory layout settings.
	Project ProjectConfig `yaml:"project" mapstructure:"project"`

	// Agents maps agent role names to their execution policy. The gap
	// detector's test-strategy rule is driven by the coverage values here;
	// agents absent from the map have no coverage requirement and the rule
	// is skipped for them entirely.
	Agents map[string]AgentPolicy `yaml:"agents" mapstructure:"agents"`

	// Protected contains the protected-file rules for the preflight check.
	Protected ProtectedConfig `yaml:"protected" mapstructure:"protected"`

	// Scoring contains confidence scoring settings.
	Scoring ScoringConfig `yaml:"scoring" mapstructure:"scoring"`
}

// ProjectConfig contains base directory layout settings used by the gap
// detector's filesystem checks.
type ProjectConfig struct {
	// BaseDir is the directory against which the task's repo-relative
	// paths are resolved. Empty means the current working directory.
	BaseDir string `yaml:"base_dir" mapstructure:"base_dir"`
}

// AgentPolicy holds the per-agent execution requirements.
type AgentPolicy struct {
	// Coverage is the minimum test-coverage percentage expected of this
	// agent's deliverables (0-100). Zero disables the test-strategy check
	// for the agent.
	Coverage int `yaml:"coverage" mapstructure:"coverage"`
}

// ProtectedConfig holds the protected-file rules. Tasks touching a
// protected path must reference a pre-change review step in their
// description, otherwise a blocking preflight gap is raised.
type ProtectedConfig struct {
	// Patterns are glob patterns (with ** support) matched against the
	// task's files to modify. The live sprint plan file is always
	// protected by default.
	Patterns []string `yaml:"patterns" mapstructure:"patterns"`

	// ReviewKeywords are the substrings whose presence in a task
	// description counts as a pre-change review reference.
	ReviewKeywords []string `yaml:"review_keywords" mapstructure:"review_keywords"`
}

// ScoringConfig contains confidence scoring settings.
type ScoringConfig struct {
	// BlockingCoverage is the required-coverage percentage at or above
	// which a missing test strategy is blocking rather than advisory.
	BlockingCoverage int `yaml:"blocking_coverage" mapstructure:"blocking_coverage"`
}

// CoverageFor returns the required coverage percentage for the given agent
// and whether a policy exists for it. A zero-coverage policy is reported the
// same as no policy: the test-strategy rule does not apply.
func (c *Config) CoverageFor(agent string) (int, bool) {
	policy, ok := c.Agents[agent]
	if !ok || policy.Coverage <= 0 {
		return 0, false
	}
	return policy.Coverage, true
}
