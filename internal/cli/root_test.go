package cli

import (
	"testing"

	"github.com/freqcli/freq/internal/config"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "ls", []string{"ls"}},
		{"multiple", "ls,cd,pwd", []string{"ls", "cd", "pwd"}},
		{"whitespace", " ls , cd ", []string{"ls", "cd"}},
		{"empty elements", "ls,,cd,", []string{"ls", "cd"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitList(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("splitList(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("splitList(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestApplySmartDefaults(t *testing.T) {
	cfg := config.DefaultConfig()

	t.Run("timeline auto-enabled for dev commands", func(t *testing.T) {
		opts := &RootOptions{Command: "git"}
		applySmartDefaults(opts, cfg)
		if !opts.Timeline {
			t.Error("expected timeline enabled for git")
		}
	})

	t.Run("timeline untouched for other commands", func(t *testing.T) {
		opts := &RootOptions{Command: "vim"}
		applySmartDefaults(opts, cfg)
		if opts.Timeline {
			t.Error("did not expect timeline for vim")
		}
	})

	t.Run("number widens in command mode", func(t *testing.T) {
		opts := &RootOptions{Command: "git"}
		applySmartDefaults(opts, cfg)
		if opts.Number != 2*cfg.Analysis.Number {
			t.Errorf("number = %d, want %d", opts.Number, 2*cfg.Analysis.Number)
		}
	})

	t.Run("number widens in advanced mode", func(t *testing.T) {
		opts := &RootOptions{Advanced: true}
		applySmartDefaults(opts, cfg)
		if opts.Number != 15 {
			t.Errorf("number = %d, want 15", opts.Number)
		}
	})

	t.Run("explicit number wins", func(t *testing.T) {
		opts := &RootOptions{Command: "git", Number: 3}
		applySmartDefaults(opts, cfg)
		if opts.Number != 3 {
			t.Errorf("number = %d, want 3", opts.Number)
		}
	})
}

func TestRunAnalysisFlagValidation(t *testing.T) {
	if err := runAnalysis(&RootOptions{Timeline: true}); err == nil {
		t.Error("expected error for -t without -c")
	}
	if err := runAnalysis(&RootOptions{Correlations: true}); err == nil {
		t.Error("expected error for --correlations without -c")
	}
}

func TestNewRootCommandFlags(t *testing.T) {
	cmd := NewRootCommand("test")

	for _, flag := range []string{
		"advanced", "file", "shell", "number", "date", "command",
		"timeline", "exclude", "output", "correlations",
		"resolve-aliases", "format",
	} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("missing flag --%s", flag)
		}
	}
}
