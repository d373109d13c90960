// Package config loads sleepz configuration.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the complete application configuration.
type Config struct {
	Input   InputConfig   `mapstructure:"input"`
	Output  OutputConfig  `mapstructure:"output"`
	Sleep   SleepConfig   `mapstructure:"sleep"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// InputConfig points at the Takeout export files. At least one source must
// be set.
type InputConfig struct {
	ChromeHistory  string `mapstructure:"chrome_history"`
	YouTubeHistory string `mapstructure:"youtube_history"`
}

// OutputConfig defines where charts are written.
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// SleepConfig defines inference parameters.
type SleepConfig struct {
	GapThreshold string `mapstructure:"gap_threshold"` // duration string, e.g. "4h"
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from an optional file with environment overrides
// (SLEEPZ_ prefix, dots replaced by underscores) and built-in defaults.
// Validation is the caller's job, via Validate, since command-line flags may
// still override fields after loading.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("input.chrome_history", "")
	v.SetDefault("input.youtube_history", "")
	v.SetDefault("output.dir", "out")
	v.SetDefault("sleep.gap_threshold", "4h")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.SetEnvPrefix("SLEEPZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the configuration names at least one input source
// and carries a usable threshold.
func (c *Config) Validate() error {
	if c.Input.ChromeHistory == "" && c.Input.YouTubeHistory == "" {
		return fmt.Errorf("no input configured: set input.chrome_history or input.youtube_history")
	}
	if _, err := c.GapThreshold(); err != nil {
		return err
	}
	return nil
}

// GapThreshold parses the configured minimum-gap threshold.
func (c *Config) GapThreshold() (time.Duration, error) {
	d, err := time.ParseDuration(c.Sleep.GapThreshold)
	if err != nil {
		return 0, fmt.Errorf("invalid sleep.gap_threshold %q: %w", c.Sleep.GapThreshold, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("sleep.gap_threshold must be positive, got %q", c.Sleep.GapThreshold)
	}
	return d, nil
}
