package main

import (
	"fmt"
	"io"

	"github.com/lerenn/eureka/cmd/eureka/internal/cli"
	"github.com/lerenn/eureka/pkg/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func createConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the current configuration",
		Long: `Print the stored settings as YAML. Settings that are not configured yet are empty.

Examples:
  eureka config
  eureka config --config-dir /tmp/eureka`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manager, err := cli.NewConfigManager()
			if err != nil {
				return err
			}
			return printSettings(cmd.OutOrStdout(), manager)
		},
	}
}

// printSettings writes the config directory and the settings snapshot as YAML.
func printSettings(out io.Writer, manager config.Manager) error {
	settings, err := manager.Settings()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(struct {
		ConfigDir string `yaml:"config_dir"`
		config.Settings `yaml:",inline"`
	}{
		ConfigDir: manager.GetConfigDir(),
		Settings:  settings,
	})
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	_, err = out.Write(data)
	return err
}
