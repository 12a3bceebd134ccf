package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spool-dev/spool/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default configuration file",
	Long: `Write a configuration file populated with the default platform
limits, server address, and tone.

The file is created at the path given by --config, the SPOOL_CONFIG
environment variable, or the user configuration directory.

Examples:
  spool init
  spool init --config ./spool.yaml`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	loader := config.NewLoader(GetConfigPath())
	if loader.Exists() {
		return NewCLIError(
			fmt.Sprintf("Configuration already exists at %s", loader.ConfigPath()),
			"Edit the file directly, or delete it and run 'spool init' again",
		)
	}

	if _, err := loader.Init(); err != nil {
		return WrapError(err, "Failed to write configuration", "Check that the directory is writable")
	}

	Success("Created default configuration at %s", loader.ConfigPath())
	Info("Any value can be overridden with %s_* environment variables", config.EnvPrefix)
	return nil
}
