package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/freqcli/freq/internal/config"
)

// InitOptions contains the options for the init command.
type InitOptions struct {
	ConfigPath string

	// Scriptable/flag options for --no-tui mode
	Shell   string
	File    string
	Number  int
	Exclude string
	Resolve bool
	Format  string
}

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	opts := &InitOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize freq configuration",
		Long: `Initialize the freq configuration file.

The init command guides you through the default settings:
- Which shell's history to analyze
- How many top commands to show
- Commands to exclude from every analysis
- Whether to resolve aliases by default
- The default output format

Use --no-tui with flags for scripted setup.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().StringVar(&opts.Shell, "shell", "", "shell type: auto, bash, or zsh")
	cmd.Flags().StringVar(&opts.File, "file", "", "explicit history file path")
	cmd.Flags().IntVar(&opts.Number, "number", 0, "default number of top commands")
	cmd.Flags().StringVar(&opts.Exclude, "exclude", "", "commands to always exclude (comma-separated)")
	cmd.Flags().BoolVar(&opts.Resolve, "resolve-aliases", false, "resolve aliases by default")
	cmd.Flags().StringVar(&opts.Format, "format", "", "default output format: text, table, json, or yaml")

	return cmd
}

func runInit(opts *InitOptions) error {
	if IsNoTUI() {
		return runInitNonInteractive(opts)
	}
	return runInitInteractive(opts)
}

// runInitInteractive runs the init wizard with TUI forms.
func runInitInteractive(opts *InitOptions) error {
	cfg := config.DefaultConfig()

	var (
		shell   = cfg.History.Shell
		number  = fmt.Sprintf("%d", cfg.Analysis.Number)
		exclude string
		resolve = cfg.Aliases.Resolve
		format  = cfg.Output.Format
	)

	if err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which shell's history should freq analyze?").
				Options(
					huh.NewOption("Detect from $SHELL", "auto"),
					huh.NewOption("bash", "bash"),
					huh.NewOption("zsh", "zsh"),
				).
				Value(&shell),
			huh.NewInput().
				Title("How many top commands to show?").
				Value(&number).
				Validate(func(s string) error {
					var n int
					if _, err := fmt.Sscanf(s, "%d", &n); err != nil || n <= 0 {
						return fmt.Errorf("enter a positive number")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Commands to always exclude").
				Description("Comma-separated, e.g. ls,cd,pwd (leave empty for none)").
				Value(&exclude),
			huh.NewConfirm().
				Title("Resolve aliases to their base commands?").
				Value(&resolve),
			huh.NewSelect[string]().
				Title("Default output format").
				Options(
					huh.NewOption("Plain text", "text"),
					huh.NewOption("Table", "table"),
					huh.NewOption("JSON", "json"),
					huh.NewOption("YAML", "yaml"),
				).
				Value(&format),
		),
	).Run(); err != nil {
		return fmt.Errorf("form error: %w", err)
	}

	cfg.History.Shell = shell
	fmt.Sscanf(number, "%d", &cfg.Analysis.Number)
	cfg.Analysis.Exclude = splitList(exclude)
	cfg.Aliases.Resolve = resolve
	cfg.Output.Format = format

	return writeConfig(cfg, opts.ConfigPath)
}

// runInitNonInteractive builds the config from flags only.
func runInitNonInteractive(opts *InitOptions) error {
	cfg := config.DefaultConfig()

	if opts.Shell != "" {
		cfg.History.Shell = opts.Shell
	}
	if opts.File != "" {
		cfg.History.File = opts.File
	}
	if opts.Number > 0 {
		cfg.Analysis.Number = opts.Number
	}
	if opts.Exclude != "" {
		cfg.Analysis.Exclude = splitList(opts.Exclude)
	}
	if opts.Resolve {
		cfg.Aliases.Resolve = true
	}
	if opts.Format != "" {
		cfg.Output.Format = opts.Format
	}

	return writeConfig(cfg, opts.ConfigPath)
}

func writeConfig(cfg *config.Config, override string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	path := override
	if path == "" {
		var err error
		path, err = config.DefaultWritePath()
		if err != nil {
			return err
		}
	}

	if err := config.Write(path, cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Println("\nConfiguration written successfully!")
	fmt.Printf("  Config: %s\n", path)
	fmt.Printf("  Shell:  %s\n", cfg.History.Shell)
	if len(cfg.Analysis.Exclude) > 0 {
		fmt.Printf("  Exclude: %s\n", strings.Join(cfg.Analysis.Exclude, ", "))
	}
	fmt.Println("\nYou're ready to go! Try 'freq' to analyze your history.")

	return nil
}
