// Package app provides high-level application logic for freq commands.
//
// It wires the pipeline together: history parsing, alias resolution,
// filtering, and frequency analysis. Commands hand it options and render
// the structured result; the pipeline itself never prints.
package app

import (
	"time"

	"github.com/google/uuid"

	"github.com/freqcli/freq/internal/aliases"
	"github.com/freqcli/freq/internal/analyze"
	"github.com/freqcli/freq/internal/config"
	"github.com/freqcli/freq/internal/errors"
	"github.com/freqcli/freq/internal/history"
)

// Options controls a single analysis run.
type Options struct {
	// File is an explicit history file path. When set, Shell only hints
	// at the format and discovery is skipped.
	File string

	// Shell selects whose history to analyze: "bash", "zsh", or "auto".
	Shell string

	// DateExpr is a date-filter expression (see history.ParseRangeExpression).
	DateExpr string

	// Command focuses the analysis on one command and its variations.
	// It also switches parsing to full-command mode.
	Command string

	// Exclude lists command names to drop.
	Exclude []string

	// ResolveAliases rewrites alias names to their base commands.
	ResolveAliases bool

	// AliasFiles overrides the candidate alias config files.
	AliasFiles []string

	// Number is how many top commands to report.
	Number int

	// Advanced adds diversity, daily-activity, and time-range sections.
	Advanced bool

	// Timeline adds first/last-use statistics (command mode only).
	Timeline bool

	// Correlations adds co-occurrence statistics (command mode only).
	Correlations bool

	// WindowSeconds is the correlation time window (0 = default).
	WindowSeconds int

	// CorrelationTop is how many correlated commands to report (0 = default).
	CorrelationTop int

	// Now supplies the current time for date anchoring and the bash
	// fallback timestamp. Defaults to time.Now.
	Now func() time.Time
}

// Source identifies the history file an analysis ran over.
type Source struct {
	Path   string         `json:"path" yaml:"path"`
	Shell  string         `json:"shell" yaml:"shell"`
	Format history.Format `json:"-" yaml:"-"`
}

// Result is the structured outcome of one analysis run.
type Result struct {
	RunID       string    `json:"run_id" yaml:"run_id"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Source      Source    `json:"source" yaml:"source"`

	// Command is set in single-command focus mode.
	Command string `json:"command,omitempty" yaml:"command,omitempty"`

	// Period names the active date filter ("last week", ...), empty when
	// no filter was applied.
	Period string `json:"period,omitempty" yaml:"period,omitempty"`

	// Total is the number of records that survived parsing and filtering.
	Total int `json:"total" yaml:"total"`

	Ranking      []analyze.CommandCount  `json:"ranking" yaml:"ranking"`
	Diversity    *analyze.DiversityStats `json:"diversity,omitempty" yaml:"diversity,omitempty"`
	Daily        *analyze.DailyStats     `json:"daily,omitempty" yaml:"daily,omitempty"`
	Timeline     *analyze.TimelineStats  `json:"timeline,omitempty" yaml:"timeline,omitempty"`
	Correlations []analyze.CommandCount  `json:"correlations,omitempty" yaml:"correlations,omitempty"`

	// AliasesUsed maps alias names that occurred in the history to their
	// resolved base commands.
	AliasesUsed map[string]string `json:"aliases_used,omitempty" yaml:"aliases_used,omitempty"`
}

// Run executes the analysis pipeline: locate and parse the history file,
// optionally resolve aliases, apply filters, and compute the requested
// statistics.
func Run(cfg *config.Config, opts Options) (*Result, error) {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	var dateRange history.DateRange
	if opts.DateExpr != "" {
		r, err := history.ParseRangeExpression(opts.DateExpr, now())
		if err != nil {
			return nil, err
		}
		dateRange = r
	}

	source, err := resolveSource(cfg, opts)
	if err != nil {
		return nil, err
	}

	fullCommand := opts.Command != ""
	records, err := history.ParseFile(source.Path, source.Format, history.ParseOptions{
		FullCommand: fullCommand,
		Range:       dateRange,
		Command:     opts.Command,
		Now:         now,
	})
	if err != nil {
		return nil, err
	}

	result := &Result{
		RunID:       uuid.New().String(),
		GeneratedAt: now(),
		Source:      source,
		Command:     opts.Command,
	}
	if opts.DateExpr != "" {
		result.Period = history.PeriodName(opts.DateExpr)
	}

	if opts.ResolveAliases {
		paths := opts.AliasFiles
		if len(paths) == 0 {
			paths = aliases.DefaultPaths()
		}
		table := aliases.Load(paths)
		result.AliasesUsed = table.Used(records)
		records = table.ResolveRecords(records, fullCommand)
	}

	records = history.FilterExcluded(records, opts.Exclude)

	// Alias resolution can rewrite a record away from (or into) the
	// focused command, so the focus filter runs again after it.
	if opts.Command != "" {
		records = history.FilterCommand(records, opts.Command)
	}

	result.Total = len(records)
	if len(records) == 0 {
		return result, nil
	}

	number := opts.Number
	if number <= 0 {
		number = cfg.Analysis.Number
	}
	result.Ranking = analyze.Ranking(records, number)

	if opts.Advanced {
		diversity := analyze.Diversity(records)
		result.Diversity = &diversity

		daily := analyze.DailyActivity(records, nil)
		result.Daily = &daily
	}

	if opts.Advanced || (opts.Command != "" && opts.Timeline) {
		if timeline, ok := analyze.Timeline(records); ok {
			result.Timeline = &timeline
		}
	}

	if opts.Command != "" && opts.Correlations && len(records) > 1 {
		window := opts.WindowSeconds
		if window <= 0 {
			window = cfg.Analysis.WindowSeconds
		}
		top := opts.CorrelationTop
		if top <= 0 {
			top = cfg.Analysis.CorrelationTop
		}
		result.Correlations = analyze.Correlations(records, opts.Command, int64(window), top)
	}

	return result, nil
}

// resolveSource picks the history file and format for a run.
func resolveSource(cfg *config.Config, opts Options) (Source, error) {
	shell := opts.Shell
	if shell == "" || shell == "auto" {
		shell = cfg.History.Shell
	}

	file := opts.File
	if file == "" {
		file = cfg.History.File
	}

	if file != "" {
		format := history.FormatForShell(shell)
		if format == history.FormatUnknown {
			detected, err := history.DetectFileFormat(file)
			if err != nil {
				return Source{}, err
			}
			format = detected
			shell = shellForFormat(format)
		}
		return Source{Path: file, Shell: shell, Format: format}, nil
	}

	if shell == "" || shell == "auto" {
		shell = history.DetectShell()
	}

	if shell != "" {
		path, err := history.DefaultFileFor(shell)
		if err != nil {
			return Source{}, err
		}
		return Source{Path: path, Shell: shell, Format: history.FormatForShell(shell)}, nil
	}

	// Shell unknown: fall back to whatever history files exist, zsh first.
	for _, f := range history.DiscoverFiles() {
		return Source{Path: f.Path, Shell: f.Shell, Format: history.FormatForShell(f.Shell)}, nil
	}

	return Source{}, errors.Wrap(errors.ErrNotFound, "shell history file")
}

// shellForFormat names the shell a detected format belongs to.
func shellForFormat(format history.Format) string {
	switch format {
	case history.FormatZsh:
		return "zsh"
	case history.FormatBashMarked, history.FormatBashPlain:
		return "bash"
	default:
		return "unknown"
	}
}
