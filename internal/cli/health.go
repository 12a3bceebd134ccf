package cli

import (
	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check whether the server is reachable",
	Long: `Ping the Spool server and report its health.

Exits non-zero when the server cannot be reached.

Examples:
  spool health
  spool health --addr 127.0.0.1:7180`,
	RunE: runHealth,
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, args []string) error {
	client, err := NewClientFromFlags()
	if err != nil {
		return err
	}

	health, err := client.Health()
	if err != nil {
		return err
	}

	if IsJSONOutput() {
		return JSON(health)
	}

	Success("Server is %s (uptime %s)", health.Status, formatDuration(health.UptimeSeconds))
	return nil
}
