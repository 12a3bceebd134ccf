package cli

import (
	"github.com/spf13/cobra"

	"github.com/spool-dev/spool/internal/config"
)

var (
	Version     = "0.3.0"
	BuildCommit = "unknown"
	BuildDate   = "unknown"

	jsonOutput bool
	verbose    bool
	serverAddr string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "spool",
	Short: "Spool - Thread composition for long-form content",
	Long: `Spool turns long-form content into ordered, platform-ready threads.

It splits text on word boundaries into posts that respect a per-post
character limit, distributes image attachments across the thread, and
scores the result with concrete suggestions for better engagement.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&serverAddr, "addr", "a", "", "Server address as host:port (default: from configuration)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the configuration file")
	cobra.OnInitialize(initConfigPath)
}

func initConfigPath() {
	if configPath == "" {
		configPath = config.DefaultPath()
	}
}

func GetConfigPath() string {
	return configPath
}

func ServerAddr() string {
	return serverAddr
}

func IsJSONOutput() bool {
	return jsonOutput
}

func IsVerbose() bool {
	return verbose
}
