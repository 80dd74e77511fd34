// Package config provides configuration management for freq.
//
// This file contains config loading functionality including:
// - XDG config path detection
// - TOML file parsing
// - Environment variable overrides
// - Validation
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/freqcli/freq/internal/errors"
)

// DetectConfigPath searches for a config file using XDG standard paths.
// Returns the first config file found, or empty string if none exists
// (caller should use defaults).
func DetectConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	configPath := filepath.Join(homeDir, ".config", "freq", "config.toml")
	if _, err := os.Stat(configPath); err == nil {
		return configPath
	}

	return ""
}

// Load loads a config from the specified path.
// If the file doesn't exist, returns an error.
// After loading, applies environment variable overrides and validates.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &errors.ConfigError{Path: path, Err: errors.ErrNotFound}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.ConfigError{Path: path, Err: err}
	}

	// Start with defaults
	cfg := DefaultConfig()

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, &errors.ConfigError{Path: path, Err: err}
	}

	applyEnvOverrides(cfg)
	expandPath(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, &errors.ConfigError{Path: path, Err: err}
	}

	return cfg, nil
}

// LoadWithDefaults attempts to load a config from XDG standard paths.
// If no config file is found, returns a config with all default values.
// If a config file is found but fails to load/validate, returns an error.
func LoadWithDefaults() (*Config, error) {
	configPath := DetectConfigPath()
	if configPath == "" {
		cfg := DefaultConfig()
		applyEnvOverrides(cfg)
		expandPath(cfg)
		return cfg, nil
	}

	return Load(configPath)
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables follow the pattern: FREQ_<SECTION>_<FIELD>
//
// Examples:
// - FREQ_HISTORY_SHELL overrides [history].shell
// - FREQ_ANALYSIS_NUMBER overrides [analysis].number
// - FREQ_OUTPUT_FORMAT overrides [output].format
//
// Boolean fields: use "true"/"false" strings.
// List fields: comma-separated values.
func applyEnvOverrides(c *Config) {
	applyString := func(key string, target *string) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			*target = val
		}
	}

	applyBool := func(key string, target *bool) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			switch strings.ToLower(val) {
			case "true", "1", "yes", "on":
				*target = true
			case "false", "0", "no", "off":
				*target = false
			}
		}
	}

	applyInt := func(key string, target *int) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			var i int
			if _, err := fmt.Sscanf(val, "%d", &i); err == nil {
				*target = i
			}
		}
	}

	applyList := func(key string, target *[]string) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			parts := strings.Split(val, ",")
			for i := range parts {
				parts[i] = strings.TrimSpace(parts[i])
			}
			*target = parts
		}
	}

	// History section
	applyString("FREQ_HISTORY_SHELL", &c.History.Shell)
	applyString("FREQ_HISTORY_FILE", &c.History.File)

	// Aliases section
	applyBool("FREQ_ALIASES_RESOLVE", &c.Aliases.Resolve)
	applyList("FREQ_ALIASES_FILES", &c.Aliases.Files)

	// Analysis section
	applyInt("FREQ_ANALYSIS_NUMBER", &c.Analysis.Number)
	applyList("FREQ_ANALYSIS_EXCLUDE", &c.Analysis.Exclude)
	applyInt("FREQ_ANALYSIS_WINDOW_SECONDS", &c.Analysis.WindowSeconds)
	applyInt("FREQ_ANALYSIS_CORRELATION_TOP", &c.Analysis.CorrelationTop)

	// Output section
	applyString("FREQ_OUTPUT_FORMAT", &c.Output.Format)
}
