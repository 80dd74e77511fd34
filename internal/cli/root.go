// Package cli provides Cobra command definitions for freq.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/freqcli/freq/internal/app"
	"github.com/freqcli/freq/internal/config"
	"github.com/freqcli/freq/internal/export"
	"github.com/freqcli/freq/internal/history"
	"github.com/freqcli/freq/internal/report"
	"github.com/freqcli/freq/internal/tui"
)

// devCommands are commands that get a usage timeline by default when
// analyzed with -c.
var devCommands = []string{
	"git", "python", "python3", "node", "npm", "cargo", "go", "java", "mvn", "gradle",
}

// RootOptions contains the options for the root analysis command.
type RootOptions struct {
	ConfigPath     string
	Advanced       bool
	File           string
	Shell          string
	Number         int
	Date           string
	Command        string
	Timeline       bool
	Exclude        string
	Output         string
	Template       string
	Correlations   bool
	ResolveAliases bool
	Format         string
}

// NewRootCommand creates the root command. Running freq with no
// subcommand analyzes the current shell's history.
func NewRootCommand(version string) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "freq",
		Short: "Analyze command frequency from shell history",
		Long: `freq analyzes command usage frequency from bash and zsh history files.

By default it shows the top commands from the current shell's history.
Use -a for detailed statistics, -c to focus on one command and its
variations, and -d to restrict the analysis to a date range.

Examples:
  freq                         # top 10 commands
  freq -a -n 20                # detailed analysis, top 20
  freq -c git -t               # git variations with usage timeline
  freq -c git --correlations   # commands often used around git
  freq -d week -x ls,cd        # last week, ignoring ls and cd
  freq -o report.md            # save a Markdown report`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalysis(opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().BoolVarP(&opts.Advanced, "advanced", "a", false, "show detailed analysis instead of just top commands")
	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "custom history file path")
	cmd.Flags().StringVarP(&opts.Shell, "shell", "s", "", "shell type: bash, zsh, auto, or all")
	cmd.Flags().IntVarP(&opts.Number, "number", "n", 0, "number of top commands to show")
	cmd.Flags().StringVarP(&opts.Date, "date", "d", "", "date filter: 1h, 24h, day, week, month, year, today, YYYY-MM-DD, or YYYY-MM-DD:YYYY-MM-DD")
	cmd.Flags().StringVarP(&opts.Command, "command", "c", "", "analyze a specific command and its variations")
	cmd.Flags().BoolVarP(&opts.Timeline, "timeline", "t", false, "show usage timeline (requires -c)")
	cmd.Flags().StringVarP(&opts.Exclude, "exclude", "x", "", "exclude commands (comma-separated list)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "save the report to a file")
	cmd.Flags().StringVar(&opts.Template, "template", "", "custom export template file")
	cmd.Flags().BoolVar(&opts.Correlations, "correlations", false, "show command correlations (requires -c)")
	cmd.Flags().BoolVar(&opts.ResolveAliases, "resolve-aliases", false, "resolve shell aliases to their actual commands")
	cmd.Flags().StringVar(&opts.Format, "format", "", "terminal output format: text, table, json, or yaml")

	return cmd
}

func runAnalysis(opts *RootOptions) error {
	if opts.Timeline && opts.Command == "" {
		return fmt.Errorf("-t/--timeline can only be used with -c/--command")
	}
	if opts.Correlations && opts.Command == "" {
		return fmt.Errorf("--correlations can only be used with -c/--command")
	}

	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	applySmartDefaults(opts, cfg)

	format := report.Format(cfg.Output.Format)
	if opts.Format != "" {
		format, err = report.ParseFormat(opts.Format)
		if err != nil {
			return err
		}
	}

	runOpts := app.Options{
		File:           opts.File,
		Shell:          opts.Shell,
		DateExpr:       opts.Date,
		Command:        opts.Command,
		Exclude:        splitList(opts.Exclude),
		ResolveAliases: opts.ResolveAliases || cfg.Aliases.Resolve,
		AliasFiles:     cfg.Aliases.Files,
		Number:         opts.Number,
		Advanced:       opts.Advanced,
		Timeline:       opts.Timeline,
		Correlations:   opts.Correlations,
	}
	if len(runOpts.Exclude) == 0 {
		runOpts.Exclude = cfg.Analysis.Exclude
	}

	// "-s all" offers a choice between every discovered history file, as
	// does an environment where the current shell cannot be determined.
	if opts.File == "" && cfg.History.File == "" &&
		(opts.Shell == "all" || (resolvedShell(opts, cfg) == "auto" && history.DetectShell() == "")) {
		picked, err := pickHistoryFile()
		if err != nil {
			return err
		}
		runOpts.File = picked.Path
		runOpts.Shell = picked.Shell
	}

	Debugf("full command mode: %v", opts.Command != "")
	if opts.Date != "" {
		Debugf("early date filtering enabled")
	}
	if opts.Command != "" {
		Debugf("early command filtering for: %s", opts.Command)
	}

	result, err := app.Run(cfg, runOpts)
	if err != nil {
		return err
	}
	Debugf("parsed %s history: %s", result.Source.Shell, result.Source.Path)

	if opts.Output != "" {
		if err := saveReport(result, opts); err != nil {
			return err
		}
	}

	return report.Render(os.Stdout, result, format)
}

// resolvedShell returns the effective shell selection: flag over config.
func resolvedShell(opts *RootOptions, cfg *config.Config) string {
	if opts.Shell != "" {
		return opts.Shell
	}
	return cfg.History.Shell
}

// loadConfig loads the config from an explicit path or the XDG default.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadWithDefaults()
}

// applySmartDefaults adjusts unset options to sensible values: dev
// commands get a timeline automatically, and the top-N count widens for
// advanced and command-focused analyses.
func applySmartDefaults(opts *RootOptions, cfg *config.Config) {
	if opts.Command != "" && !opts.Timeline {
		for _, dev := range devCommands {
			if strings.EqualFold(opts.Command, dev) {
				opts.Timeline = true
				Debugf("auto-enabled timeline for %s", opts.Command)
				break
			}
		}
	}

	if opts.Number == 0 {
		switch {
		case opts.Command != "":
			opts.Number = 2 * cfg.Analysis.Number
		case opts.Advanced:
			opts.Number = cfg.Analysis.Number + cfg.Analysis.Number/2
		default:
			opts.Number = cfg.Analysis.Number
		}
	}
}

// pickHistoryFile selects among all discovered history files, via the TUI
// picker when available.
func pickHistoryFile() (tui.FileEntry, error) {
	entries := tui.BuildEntries(history.DiscoverFiles())
	if len(entries) == 0 {
		return tui.FileEntry{}, fmt.Errorf("no history files found")
	}
	if len(entries) == 1 || IsNoTUI() {
		return entries[0], nil
	}
	return tui.PickFile(entries)
}

// saveReport writes the result to the output file, confirming overwrites
// in interactive mode.
func saveReport(result *app.Result, opts *RootOptions) error {
	if _, err := os.Stat(opts.Output); err == nil && !IsNoTUI() {
		overwrite := false
		confirm := huh.NewConfirm().
			Title(fmt.Sprintf("Overwrite %s?", opts.Output)).
			Value(&overwrite)
		if err := huh.NewForm(huh.NewGroup(confirm)).Run(); err != nil {
			return fmt.Errorf("form error: %w", err)
		}
		if !overwrite {
			return fmt.Errorf("aborted: %s already exists", opts.Output)
		}
	}

	exporter, err := export.NewExporter(export.Options{
		Format:         export.FormatForPath(opts.Output),
		CustomTemplate: opts.Template,
	})
	if err != nil {
		return err
	}

	if err := exporter.ExportToFile(result, opts.Output); err != nil {
		return err
	}

	fmt.Printf("Report saved to: %s\n", opts.Output)
	return nil
}

// splitList splits a comma-separated flag value, trimming whitespace.
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
