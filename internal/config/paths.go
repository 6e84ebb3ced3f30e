package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/preflylabs/prefly/internal/constants"
	"github.com/preflylabs/prefly/internal/errors"
)

// GlobalConfigDir returns the path to the global PREFLY configuration
// directory, typically ~/.prefly on Unix systems.
//
// Returns an error if the home directory cannot be determined.
func GlobalConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, constants.PreflyHome), nil
}

// ProjectConfigDir returns the relative path to the project configuration
// directory. This is always .prefly relative to the project root.
func ProjectConfigDir() string {
	return constants.PreflyHome
}

// GlobalConfigPath returns the full path to the global configuration file,
// typically ~/.prefly/config.yaml on Unix systems.
func GlobalConfigPath() (string, error) {
	dir, err := GlobalConfigDir()
	if err != nil {
		return "", fmt.Errorf("get global config path: %w", err)
	}
	return filepath.Join(dir, constants.ConfigFileName), nil
}

// ProjectConfigPath returns the relative path to the project configuration
// file. This is always .prefly/config.yaml relative to the project root.
func ProjectConfigPath() string {
	return filepath.Join(ProjectConfigDir(), constants.ConfigFileName)
}

// ProjectSprintPath returns the relative path to the live sprint plan.
// This is always .prefly/sprint.yaml relative to the project root.
func ProjectSprintPath() string {
	return filepath.Join(ProjectConfigDir(), constants.SprintFileName)
}
