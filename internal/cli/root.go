// Package cli provides the Cobra command structure for leetboard.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/leetboard/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root leetboard command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "leetboard",
		Short: "Render LeetCode accountability leaderboards",
		Long: `leetboard renders a leaderboard report from per-user LeetCode
problem-solving statistics.

Users are ranked by total questions solved over a trailing day window,
the top three are decorated with medals, and the report is produced as
fixed-width plain text or as a styled HTML page.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
