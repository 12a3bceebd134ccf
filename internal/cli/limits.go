package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

var limitsCmd = &cobra.Command{
	Use:   "limits",
	Short: "Show the platform composition limits",
	Long: `Display the constraints the server composes threads against.

Examples:
  spool limits
  spool limits --json`,
	RunE: runLimits,
}

func init() {
	rootCmd.AddCommand(limitsCmd)
}

func runLimits(cmd *cobra.Command, args []string) error {
	client, err := NewClientFromFlags()
	if err != nil {
		return err
	}

	limits, err := client.Limits()
	if err != nil {
		return err
	}

	if IsJSONOutput() {
		return JSON(limits)
	}

	Table([]string{"Setting", "Value"}, [][]string{
		{"Hard limit", strconv.Itoa(limits.HardLimit)},
		{"Optimal min", strconv.Itoa(limits.OptimalMin)},
		{"Optimal max", strconv.Itoa(limits.OptimalMax)},
		{"Default tone", limits.DefaultTone},
	})
	return nil
}
