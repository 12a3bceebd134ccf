package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/spool-dev/spool/internal/api"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show server status and platform limits",
	Long: `Display the current status of the Spool server.

Shows information about:
  - Server health and uptime
  - The platform constraints threads are composed against
  - The default tone for suggestions

Examples:
  spool status
  spool status --json`,
	RunE: runStatus,
}

// statusReport bundles the health and limits responses for JSON output.
type statusReport struct {
	Server   *api.HealthResponse `json:"server"`
	Platform *api.LimitsResponse `json:"platform"`
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	client, err := NewClientFromFlags()
	if err != nil {
		return err
	}

	health, err := client.Health()
	if err != nil {
		return err
	}

	limits, err := client.Limits()
	if err != nil {
		return err
	}

	if IsJSONOutput() {
		return JSON(statusReport{Server: health, Platform: limits})
	}

	printStatus(DefaultOutput, health, limits)
	return nil
}

// printStatus writes the human-readable status report.
func printStatus(o *OutputFormatter, health *api.HealthResponse, limits *api.LimitsResponse) {
	fmt.Fprintln(o.out, "Spool Status")
	fmt.Fprintln(o.out, "============")
	fmt.Fprintln(o.out)

	fmt.Fprintln(o.out, "Server:")
	fmt.Fprintf(o.out, "  Status:   %s\n", health.Status)
	fmt.Fprintf(o.out, "  Uptime:   %s\n", formatDuration(health.UptimeSeconds))
	fmt.Fprintln(o.out)

	fmt.Fprintln(o.out, "Platform:")
	fmt.Fprintf(o.out, "  Hard limit:    %d characters per post\n", limits.HardLimit)
	fmt.Fprintf(o.out, "  Optimal band:  %d-%d characters\n", limits.OptimalMin, limits.OptimalMax)
	fmt.Fprintf(o.out, "  Default tone:  %s\n", limits.DefaultTone)
}

func formatDuration(seconds float64) string {
	d := time.Duration(seconds * float64(time.Second))
	if d < time.Minute {
		return fmt.Sprintf("%.0fs", seconds)
	}
	if d < time.Hour {
		mins := int(d.Minutes())
		secs := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm %ds", mins, secs)
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
