package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/codeGROOVE-dev/sleepZ/pkg/charts"
	"github.com/codeGROOVE-dev/sleepZ/pkg/config"
	"github.com/codeGROOVE-dev/sleepZ/pkg/histogram"
	"github.com/codeGROOVE-dev/sleepZ/pkg/sleep"
	"github.com/codeGROOVE-dev/sleepZ/pkg/takeout"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Infer sleep intervals and write statistics and charts",
	Long: `Analyze loads the configured Takeout exports, merges their activity
timestamps, infers sleep intervals from inactivity gaps, prints summary
statistics and a daily activity histogram, and writes three HTML charts to
the output directory.`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Flags override file and environment settings
	if chromePath != "" {
		cfg.Input.ChromeHistory = chromePath
	}
	if youtubePath != "" {
		cfg.Input.YouTubeHistory = youtubePath
	}
	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}
	if gapThreshold != "" {
		cfg.Sleep.GapThreshold = gapThreshold
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	threshold, err := cfg.GapThreshold()
	if err != nil {
		return err
	}

	// Setup logger
	logger := setupLogger(cfg.Logging)
	log.Logger = logger

	logger.Info().
		Str("version", version).
		Str("gap_threshold", threshold.String()).
		Msg("Starting sleep analysis")

	var sources [][]time.Time
	if cfg.Input.ChromeHistory != "" {
		events, err := takeout.LoadChrome(cfg.Input.ChromeHistory, logger)
		if err != nil {
			return fmt.Errorf("failed to load Chrome history: %w", err)
		}
		logger.Info().Int("events", len(events)).Str("path", cfg.Input.ChromeHistory).Msg("Chrome history loaded")
		sources = append(sources, events)
	}
	if cfg.Input.YouTubeHistory != "" {
		events, err := takeout.LoadYouTube(cfg.Input.YouTubeHistory, logger)
		if err != nil {
			return fmt.Errorf("failed to load YouTube history: %w", err)
		}
		logger.Info().Int("events", len(events)).Str("path", cfg.Input.YouTubeHistory).Msg("YouTube history loaded")
		sources = append(sources, events)
	}

	events := takeout.Merge(sources...)
	records := sleep.Infer(events, threshold)
	summary := sleep.Summarize(records)

	printSummary(events, summary, threshold)
	fmt.Print(histogram.Generate(sleep.HalfHourCounts(events), sleep.SleepBuckets(records)))

	if err := charts.WriteAll(cfg.Output.Dir, records); err != nil {
		return fmt.Errorf("failed to write charts: %w", err)
	}
	logger.Info().Str("dir", cfg.Output.Dir).Int("nights", summary.Nights).Msg("Charts written")
	return nil
}

func printSummary(events []time.Time, summary sleep.Summary, threshold time.Duration) {
	fmt.Printf("\n💤 Sleep Analysis (gap threshold %s)\n", threshold)
	fmt.Println(strings.Repeat("─", 50))

	if len(events) > 0 {
		fmt.Printf("📊 Activity:      %d events from %s to %s\n",
			len(events),
			events[0].Format("2006-01-02"),
			events[len(events)-1].Format("2006-01-02"))
	}

	if summary.Nights == 0 {
		fmt.Println("🛌 Nights:        none detected (no gap reached the threshold)")
		fmt.Println()
		return
	}

	fmt.Printf("🛌 Nights:        %d\n", summary.Nights)
	fmt.Printf("⏱️  Duration:      %s avg ± %s (median %s, min %s, max %s)\n",
		formatHours(summary.Mean),
		formatHours(summary.Std),
		formatHours(summary.Median),
		formatHours(summary.Min),
		formatHours(summary.Max))
	fmt.Printf("🌙 Usual bedtime: %02d:00\n", summary.CommonSleepHour)
	fmt.Printf("☀️  Usual wakeup:  %02d:00\n", summary.CommonWakeHour)
	fmt.Println()
}

// formatHours renders a duration as decimal hours, e.g. "7.8h".
func formatHours(d time.Duration) string {
	return fmt.Sprintf("%.1fh", d.Hours())
}

// setupLogger configures the logger based on configuration
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch cfg.Level {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Logs go to stderr; stdout carries the analysis output
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}
