// Package history provides shell history parsing and filtering.
//
// It classifies a history file's grammar (zsh extended, bash with timestamp
// markers, or plain bash), parses raw lines into normalized (command,
// timestamp) records, and applies exclusion and date-range filters.
package history

import (
	"strings"
	"time"
)

// Record is one normalized entry from a shell history file.
// Command is either the leading token of the raw entry or the full raw
// entry, depending on the parse mode. Records are immutable once produced.
type Record struct {
	Command   string
	Timestamp int64 // unix seconds
}

// Format identifies the grammar of a history file.
type Format int

const (
	// FormatUnknown means the file could not be read or classified.
	FormatUnknown Format = iota

	// FormatZsh is zsh extended history: ": <timestamp>:<duration>;<command>".
	FormatZsh

	// FormatBashMarked is bash history with "#<timestamp>" marker lines.
	FormatBashMarked

	// FormatBashPlain is bash history with one command per line, no timestamps.
	FormatBashPlain
)

// String returns the human-readable name of the format.
func (f Format) String() string {
	switch f {
	case FormatZsh:
		return "zsh"
	case FormatBashMarked:
		return "bash (timestamped)"
	case FormatBashPlain:
		return "bash"
	default:
		return "unknown"
	}
}

// DateRange is an optional time window on record timestamps.
// A zero Start or End means that bound is open. Records with
// Timestamp < Start or Timestamp > End fall outside the range.
type DateRange struct {
	Start int64
	End   int64
}

// IsZero reports whether the range is unbounded on both sides.
func (r DateRange) IsZero() bool {
	return r.Start == 0 && r.End == 0
}

// Contains reports whether ts falls inside the range.
func (r DateRange) Contains(ts int64) bool {
	if r.Start != 0 && ts < r.Start {
		return false
	}
	if r.End != 0 && ts > r.End {
		return false
	}
	return true
}

// ParseOptions controls parsing of a history file.
type ParseOptions struct {
	// FullCommand keeps the entire command text instead of reducing each
	// entry to its leading token.
	FullCommand bool

	// Range, when set, drops out-of-range entries during parsing. This is
	// an optimization only: the result equals parsing everything and
	// applying FilterByRange afterwards.
	Range DateRange

	// Command, when set, keeps only entries equal to it or starting with
	// it followed by a space. Mirrors the later per-command focus filter.
	Command string

	// Now supplies the current time, used as the fallback timestamp for
	// bash entries with no preceding marker. Defaults to time.Now.
	Now func() time.Time
}

// now returns the configured clock's current time.
func (o ParseOptions) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

// matchesCommand reports whether cmd passes the early command filter.
func (o ParseOptions) matchesCommand(cmd string) bool {
	if o.Command == "" {
		return true
	}
	return cmd == o.Command || strings.HasPrefix(cmd, o.Command+" ")
}
