// Package config provides the settings store of the eureka application: one file
// per setting inside a config directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvConfigDir overrides the default config directory.
const EnvConfigDir = "EUREKA_CONFIG_DIR"

// Setting identifies a persisted configuration value.
type Setting int

const (
	// RepositoryPath is the absolute path to the idea repository.
	RepositoryPath Setting = iota
	// EditorPath is the absolute path to the editor binary.
	EditorPath
)

// String returns a human readable name of the setting.
func (s Setting) String() string {
	switch s {
	case RepositoryPath:
		return "repository path"
	case EditorPath:
		return "editor path"
	default:
		return fmt.Sprintf("setting(%d)", int(s))
	}
}

// FileName returns the name of the file holding the setting in the config directory.
// The mapping must stay stable across releases.
func (s Setting) FileName() string {
	switch s {
	case RepositoryPath:
		return "repo_path"
	case EditorPath:
		return "editor_path"
	default:
		return ""
	}
}

// Settings is a snapshot of every setting; missing ones are empty.
type Settings struct {
	RepositoryPath string `yaml:"repository_path"`
	EditorPath     string `yaml:"editor_path"`
}

// DefaultDir returns the config directory used when none is specified:
// $EUREKA_CONFIG_DIR if set, the user config directory otherwise.
func DefaultDir() (string, error) {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir, nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrConfigDirUnknown, err)
	}

	return filepath.Join(configDir, "eureka"), nil
}
