package config

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/preflylabs/prefly/internal/constants"
	"github.com/preflylabs/prefly/internal/errors"
)

// newViperInstance creates a new Viper instance with standard PREFLY
// configuration: environment variable prefix (PREFLY_), key replacer,
// and built-in defaults.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("PREFLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// setDefaults registers the built-in default values on the viper instance.
// Values mirror DefaultConfig so both load paths agree.
func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()

	v.SetDefault("project.base_dir", defaults.Project.BaseDir)
	v.SetDefault("scoring.blocking_coverage", defaults.Scoring.BlockingCoverage)
	v.SetDefault("protected.patterns", defaults.Protected.Patterns)
	v.SetDefault("protected.review_keywords", defaults.Protected.ReviewKeywords)

	agents := make(map[string]map[string]any, len(defaults.Agents))
	for name, policy := range defaults.Agents {
		agents[name] = map[string]any{"coverage": policy.Coverage}
	}
	v.SetDefault("agents", agents)
}

// isConfigNotFoundError returns true if the error is a viper config file not
// found error. Missing config files are expected and never fatal.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

// Load reads configuration from all available sources with proper precedence.
// Configuration is loaded in the following order (highest precedence first):
//  1. Environment variables (PREFLY_* prefix)
//  2. Project config (.prefly/config.yaml)
//  3. Global config (~/.prefly/config.yaml)
//  4. Built-in defaults
//
// The function returns an error only for actual configuration problems,
// not for missing config files (which are expected in many scenarios).
func Load(ctx context.Context) (*Config, error) {
	v := newViperInstance()

	// Global config first (lower precedence), then project config merged
	// over it.
	if err := loadGlobalConfig(v); err != nil {
		return nil, err
	}
	if err := loadProjectConfig(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	logger := zerolog.Ctx(ctx).With().Str("component", "config").Logger()
	logger.Debug().
		Int("agents", len(cfg.Agents)).
		Int("protected_patterns", len(cfg.Protected.Patterns)).
		Int("scoring.blocking_coverage", cfg.Scoring.BlockingCoverage).
		Msg("configuration loaded and unmarshaled")

	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return &cfg, nil
}

// loadGlobalConfig attempts to load the global config file (~/.prefly/config.yaml).
// Returns nil if the file doesn't exist or the home directory cannot be determined.
func loadGlobalConfig(v *viper.Viper) error {
	globalConfigPath, ok := getGlobalConfigPathIfExists()
	if !ok {
		return nil
	}

	v.SetConfigFile(globalConfigPath)
	if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrap(err, "failed to read global config file")
	}
	return nil
}

// getGlobalConfigPathIfExists returns the global config path if it exists.
func getGlobalConfigPathIfExists() (string, bool) {
	globalDir, err := GlobalConfigDir()
	if err != nil {
		return "", false
	}

	globalConfigPath := filepath.Join(globalDir, constants.ConfigFileName)
	if _, err := os.Stat(globalConfigPath); err != nil {
		return "", false
	}

	return globalConfigPath, true
}

// loadProjectConfig attempts to load the project config file (.prefly/config.yaml).
// Returns nil if the file doesn't exist.
func loadProjectConfig(v *viper.Viper) error {
	projectConfigPath := ProjectConfigPath()
	if !fileExists(projectConfigPath) {
		return nil
	}

	v.SetConfigFile(projectConfigPath)
	if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrap(err, "failed to read project config file")
	}
	return nil
}

// fileExists returns true if the file at path exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// viperDecoderOption returns the decoder options used when unmarshaling
// configuration, enabling string-to-duration conversion.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	)
}
