package config

import (
	"strings"

	"github.com/preflylabs/prefly/internal/errors"
)

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - agent coverage values must be between 0 and 100
//   - agent names must not be empty
//   - protected patterns must not be empty strings
//   - scoring blocking coverage must be between 1 and 100
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if err := validateAgents(cfg.Agents); err != nil {
		return err
	}

	if err := validateProtected(&cfg.Protected); err != nil {
		return err
	}

	if cfg.Scoring.BlockingCoverage < 1 || cfg.Scoring.BlockingCoverage > 100 {
		return errors.Wrapf(errors.ErrConfigInvalidAgents,
			"scoring.blocking_coverage must be between 1 and 100, got %d", cfg.Scoring.BlockingCoverage)
	}

	return nil
}

// validateAgents checks per-agent policy values.
func validateAgents(agents map[string]AgentPolicy) error {
	for name, policy := range agents {
		if strings.TrimSpace(name) == "" {
			return errors.Wrap(errors.ErrConfigInvalidAgents,
				"agent name must not be empty")
		}
		if policy.Coverage < 0 || policy.Coverage > 100 {
			return errors.Wrapf(errors.ErrConfigInvalidAgents,
				"agents.%s.coverage must be between 0 and 100, got %d", name, policy.Coverage)
		}
	}
	return nil
}

// validateProtected checks the protected-file rule values.
func validateProtected(cfg *ProtectedConfig) error {
	for _, pattern := range cfg.Patterns {
		if strings.TrimSpace(pattern) == "" {
			return errors.Wrap(errors.ErrConfigInvalidProtected,
				"protected.patterns must not contain empty entries")
		}
	}
	for _, keyword := range cfg.ReviewKeywords {
		if strings.TrimSpace(keyword) == "" {
			return errors.Wrap(errors.ErrConfigInvalidProtected,
				"protected.review_keywords must not contain empty entries")
		}
	}
	return nil
}
