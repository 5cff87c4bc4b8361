// Package cli provides the global flags and dependency wiring of the eureka CLI.
package cli

import (
	"github.com/lerenn/eureka/pkg/config"
	"github.com/lerenn/eureka/pkg/dependencies"
	"github.com/lerenn/eureka/pkg/eureka"
	"github.com/lerenn/eureka/pkg/fs"
	"github.com/lerenn/eureka/pkg/logger"
)

var (
	// Verbose enables verbose output.
	Verbose bool
	// ConfigDir specifies a custom config directory.
	ConfigDir string
)

// GetConfigDir returns the config directory: the --config-dir flag if set,
// config.DefaultDir otherwise.
func GetConfigDir() (string, error) {
	if ConfigDir != "" {
		return ConfigDir, nil
	}
	return config.DefaultDir()
}

// NewConfigManager creates a new config Manager bound to the resolved config directory.
func NewConfigManager() (config.Manager, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}
	return config.NewManager(fs.NewFS(), dir), nil
}

// NewLogger returns the verbose logger when --verbose is set, a noop logger otherwise.
func NewLogger() logger.Logger {
	if Verbose {
		return logger.NewVerboseLogger()
	}
	return logger.NewNoopLogger()
}

// NewEureka creates a new Eureka instance wired with the real dependencies.
func NewEureka() (eureka.Eureka, error) {
	configManager, err := NewConfigManager()
	if err != nil {
		return nil, err
	}

	return eureka.NewEureka(eureka.NewEurekaParams{
		Dependencies: dependencies.New().
			WithConfig(configManager).
			WithLogger(NewLogger()),
	})
}
