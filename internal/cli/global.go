// Package cli provides global state and utilities for CLI commands.
package cli

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"
)

var (
	// NoTUI indicates that TUI/interactive mode should be disabled.
	// This is set by the global --no-tui flag.
	NoTUI bool

	// Debug enables verbose progress output on stderr.
	// This is set by the global --debug flag.
	Debug bool

	// globalMutex protects the globals for concurrent access.
	globalMutex sync.RWMutex
)

// AddGlobalFlags adds global flags to a command.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVar(&NoTUI, "no-tui", false,
		"disable TUI/interactive mode; use plain text output")
	cmd.PersistentFlags().BoolVar(&Debug, "debug", false,
		"show debug information during processing")
}

// IsNoTUI returns true if TUI mode is disabled.
func IsNoTUI() bool {
	globalMutex.RLock()
	defer globalMutex.RUnlock()
	return NoTUI
}

// IsDebug returns true if debug output is enabled.
func IsDebug() bool {
	globalMutex.RLock()
	defer globalMutex.RUnlock()
	return Debug
}

// Debugf prints a debug line to stderr when --debug is set.
func Debugf(format string, args ...interface{}) {
	if IsDebug() {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
