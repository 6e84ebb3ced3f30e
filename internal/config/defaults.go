package config

import (
	"path/filepath"

	"github.com/preflylabs/prefly/internal/constants"
)

// DefaultConfig returns a new Config with sensible default values.
// These defaults are used as the base layer that can be overridden by
// config files and environment variables.
func DefaultConfig() *Config {
	return &Config{
		Project: ProjectConfig{
			// BaseDir: empty means resolve task paths against the
			// current working directory.
			BaseDir: "",
		},
		Agents:    defaultAgentPolicies(),
		Protected: defaultProtectedConfig(),
		Scoring: ScoringConfig{
			BlockingCoverage: constants.DefaultBlockingCoverage,
		},
	}
}

// defaultAgentPolicies returns the built-in per-agent coverage requirements.
// Documentation-class agents carry no requirement: the test-strategy rule is
// skipped for them entirely.
func defaultAgentPolicies() map[string]AgentPolicy {
	return map[string]AgentPolicy{
		"infrastructure-agent": {Coverage: 90},
		"database-agent":       {Coverage: 85},
		"api-agent":            {Coverage: 80},
		"ui-agent":             {Coverage: 70},
		"test-agent":           {Coverage: 90},
		"documentation-agent":  {Coverage: 0},
	}
}

// defaultProtectedConfig returns the built-in protected-file rules.
// The live sprint plan is always protected: a task editing the backlog
// out from under the engine needs an explicit review step.
func defaultProtectedConfig() ProtectedConfig {
	return ProtectedConfig{
		Patterns: []string{
			filepath.Join(constants.PreflyHome, constants.SprintFileName),
			constants.PreflyHome + "/**",
			"**/migrations/**",
			"**/secrets/**",
			"**/credentials/**",
			"**/*.pem",
			"**/*.key",
		},
		ReviewKeywords: []string{
			"review",
			"checklist",
			"sign-off",
			"signoff",
			"approval",
		},
	}
}
