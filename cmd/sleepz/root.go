package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version    = "dev"
	configPath string

	chromePath   string
	youtubePath  string
	outputDir    string
	gapThreshold string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "sleepz",
	Short: "sleepZ - Sleep pattern inference from browser activity exports",
	Long: `sleepZ infers likely sleep intervals from the timestamps in Google
Takeout browser and YouTube history exports. Gaps in activity longer than a
configurable threshold are treated as sleep, then summarized as statistics,
a terminal histogram, and HTML charts.`,
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default to analyze command when no subcommand is provided
		return runAnalyze(cmd, args)
	},
}

func init() {
	// Global flags, shared with the analyze subcommand
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&chromePath, "chrome", "", "Path to Chrome BrowserHistory.json export")
	rootCmd.PersistentFlags().StringVar(&youtubePath, "youtube", "", "Path to YouTube watch-history.json export")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "out", "o", "", "Directory for rendered charts")
	rootCmd.PersistentFlags().StringVar(&gapThreshold, "gap", "", "Minimum inactivity gap treated as sleep (e.g. 4h)")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
