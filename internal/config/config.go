// Package config provides configuration management for freq.
//
// The configuration is stored in TOML format and supports validation
// and default values for all fields.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config is the top-level configuration struct for freq.
// It contains all configuration sections as embedded structs.
type Config struct {
	History  HistoryConfig  `toml:"history"`
	Aliases  AliasesConfig  `toml:"aliases"`
	Analysis AnalysisConfig `toml:"analysis"`
	Output   OutputConfig   `toml:"output"`
}

// HistoryConfig contains history-source settings.
type HistoryConfig struct {
	// Shell selects which shell's history to analyze.
	// Valid values: "auto", "bash", "zsh".
	Shell string `toml:"shell"`

	// File is an explicit history file path; overrides shell discovery.
	File string `toml:"file"`
}

// AliasesConfig contains alias-resolution settings.
type AliasesConfig struct {
	// Resolve rewrites alias names to their base commands by default.
	Resolve bool `toml:"resolve"`

	// Files is the ordered list of alias config files to scan.
	// Empty means the built-in candidate list.
	Files []string `toml:"files"`
}

// AnalysisConfig contains analyzer settings.
type AnalysisConfig struct {
	// Number is the default number of top commands to show.
	Number int `toml:"number"`

	// Exclude lists commands dropped from every analysis.
	Exclude []string `toml:"exclude"`

	// WindowSeconds is the correlation time window.
	WindowSeconds int `toml:"window_seconds"`

	// CorrelationTop is how many correlated commands to report.
	CorrelationTop int `toml:"correlation_top"`
}

// OutputConfig contains report output settings.
type OutputConfig struct {
	// Format is the report format.
	// Valid values: "text", "table", "json", "yaml".
	Format string `toml:"format"`
}

// DefaultConfig returns a Config with all default values set.
func DefaultConfig() *Config {
	return &Config{
		History: HistoryConfig{
			Shell: "auto",
		},
		Aliases: AliasesConfig{
			Resolve: false,
		},
		Analysis: AnalysisConfig{
			Number:         10,
			WindowSeconds:  300,
			CorrelationTop: 5,
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// Validate checks the config for invalid values.
func (c *Config) Validate() error {
	switch c.History.Shell {
	case "auto", "bash", "zsh":
	default:
		return fmt.Errorf("history.shell must be one of auto, bash, zsh; got %q", c.History.Shell)
	}

	if c.Analysis.Number <= 0 {
		return fmt.Errorf("analysis.number must be positive; got %d", c.Analysis.Number)
	}
	if c.Analysis.WindowSeconds <= 0 {
		return fmt.Errorf("analysis.window_seconds must be positive; got %d", c.Analysis.WindowSeconds)
	}
	if c.Analysis.CorrelationTop <= 0 {
		return fmt.Errorf("analysis.correlation_top must be positive; got %d", c.Analysis.CorrelationTop)
	}

	switch c.Output.Format {
	case "text", "table", "json", "yaml":
	default:
		return fmt.Errorf("output.format must be one of text, table, json, yaml; got %q", c.Output.Format)
	}

	return nil
}

// expandPath expands ~ to the home directory in file paths.
func expandPath(c *Config) {
	expand := func(p string) string {
		if strings.HasPrefix(p, "~/") || p == "~" {
			homeDir, err := os.UserHomeDir()
			if err == nil {
				return filepath.Join(homeDir, strings.TrimPrefix(p, "~"))
			}
		}
		return p
	}

	c.History.File = expand(c.History.File)
	for i, f := range c.Aliases.Files {
		c.Aliases.Files[i] = expand(f)
	}
}
