package app

import (
	"strings"
	"testing"
	"time"

	"github.com/freqcli/freq/internal/config"
	"github.com/freqcli/freq/internal/errors"
	"github.com/freqcli/freq/internal/testutil"
)

func fixedClock(ts int64) func() time.Time {
	return func() time.Time { return time.Unix(ts, 0) }
}

func TestRunBasicRanking(t *testing.T) {
	path := testutil.WriteHistory(t, ""+
		": 1700000000:0;git status\n"+
		": 1700000010:0;git log\n"+
		": 1700000020:0;ls -la\n"+
		": 1700000030:0;git push\n")

	result, err := Run(config.DefaultConfig(), Options{
		File:  path,
		Shell: "zsh",
		Now:   fixedClock(1700086400),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Total != 4 {
		t.Errorf("Total = %d, want 4", result.Total)
	}
	if result.RunID == "" {
		t.Error("RunID is empty")
	}
	if result.Source.Path != path {
		t.Errorf("Source.Path = %q, want %q", result.Source.Path, path)
	}
	if len(result.Ranking) != 2 {
		t.Fatalf("Ranking has %d entries, want 2", len(result.Ranking))
	}
	if result.Ranking[0].Command != "git" || result.Ranking[0].Count != 3 {
		t.Errorf("Ranking[0] = %+v, want {git 3}", result.Ranking[0])
	}
	if result.Ranking[1].Command != "ls" || result.Ranking[1].Count != 1 {
		t.Errorf("Ranking[1] = %+v, want {ls 1}", result.Ranking[1])
	}
	if result.Diversity != nil || result.Daily != nil || result.Timeline != nil {
		t.Error("basic mode must not compute advanced sections")
	}
}

func TestRunAutoDetectsFormat(t *testing.T) {
	path := testutil.WriteHistory(t, ""+
		": 1700000000:0;git status\n"+
		": 1700000010:0;git log\n")

	result, err := Run(config.DefaultConfig(), Options{
		File: path,
		Now:  fixedClock(1700086400),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Total != 2 {
		t.Errorf("Total = %d, want 2", result.Total)
	}
	if result.Source.Shell != "zsh" {
		t.Errorf("Source.Shell = %q, want zsh (derived from detected format)", result.Source.Shell)
	}
}

func TestRunDateFilter(t *testing.T) {
	// One record inside the last hour, one well before it.
	path := testutil.WriteHistory(t, ""+
		": 1700000000:0;old-command\n"+
		": 1700085000:0;git status\n")

	result, err := Run(config.DefaultConfig(), Options{
		File:     path,
		Shell:    "zsh",
		DateExpr: "1h",
		Now:      fixedClock(1700086400),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Total != 1 {
		t.Fatalf("Total = %d, want 1", result.Total)
	}
	if result.Ranking[0].Command != "git" {
		t.Errorf("Ranking[0].Command = %q, want git", result.Ranking[0].Command)
	}
	if result.Period != "last hour" {
		t.Errorf("Period = %q, want %q", result.Period, "last hour")
	}
}

func TestRunInvalidDateExpr(t *testing.T) {
	path := testutil.WriteHistory(t, ": 1700000000:0;git status\n")

	_, err := Run(config.DefaultConfig(), Options{
		File:     path,
		Shell:    "zsh",
		DateExpr: "fortnight",
		Now:      fixedClock(1700086400),
	})
	if !errors.IsInvalid(err) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
}

func TestRunExclude(t *testing.T) {
	path := testutil.WriteHistory(t, ""+
		": 1700000000:0;ls\n"+
		": 1700000010:0;cd /tmp\n"+
		": 1700000020:0;git status\n")

	result, err := Run(config.DefaultConfig(), Options{
		File:    path,
		Shell:   "zsh",
		Exclude: []string{"ls", "cd"},
		Now:     fixedClock(1700086400),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Total != 1 {
		t.Fatalf("Total = %d, want 1", result.Total)
	}
	if result.Ranking[0].Command != "git" {
		t.Errorf("Ranking[0].Command = %q, want git", result.Ranking[0].Command)
	}
}

func TestRunAdvanced(t *testing.T) {
	path := testutil.WriteHistory(t, ""+
		": 1700000000:0;git status\n"+
		": 1700000010:0;git log\n"+
		": 1700259200:0;ls\n") // three days later

	result, err := Run(config.DefaultConfig(), Options{
		File:     path,
		Shell:    "zsh",
		Advanced: true,
		Now:      fixedClock(1700300000),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Diversity == nil {
		t.Fatal("Diversity is nil")
	}
	if result.Diversity.Total != 3 || result.Diversity.Unique != 2 {
		t.Errorf("Diversity = %+v, want Total=3 Unique=2", result.Diversity)
	}
	if result.Daily == nil {
		t.Fatal("Daily is nil")
	}
	if result.Timeline == nil {
		t.Fatal("Timeline is nil")
	}
	if result.Timeline.Days != 4 {
		t.Errorf("Timeline.Days = %d, want 4", result.Timeline.Days)
	}
}

func TestRunCommandFocus(t *testing.T) {
	path := testutil.WriteHistory(t, ""+
		": 1700000000:0;git status\n"+
		": 1700000005:0;ls -la\n"+
		": 1700000010:0;git commit -m 'x'\n"+
		": 1700000500:0;gitk\n"+ // prefix but not "git "
		": 1700001000:0;git push\n")

	result, err := Run(config.DefaultConfig(), Options{
		File:         path,
		Shell:        "zsh",
		Command:      "git",
		Timeline:     true,
		Correlations: true,
		Now:          fixedClock(1700086400),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Command != "git" {
		t.Errorf("Command = %q, want git", result.Command)
	}
	if result.Total != 3 {
		t.Fatalf("Total = %d, want 3 (gitk and ls excluded)", result.Total)
	}
	for _, cc := range result.Ranking {
		if !strings.HasPrefix(cc.Command, "git") {
			t.Errorf("ranking entry %q is not a git variation", cc.Command)
		}
	}
	if result.Timeline == nil {
		t.Error("Timeline is nil in command mode with Timeline enabled")
	}
}

func TestRunAliasResolution(t *testing.T) {
	history := testutil.WriteHistory(t, ""+
		": 1700000000:0;gs\n"+
		": 1700000010:0;gs\n"+
		": 1700000020:0;git log\n")
	aliasFile := testutil.WriteFile(t, ".aliases", "alias gs='git status'\n")

	result, err := Run(config.DefaultConfig(), Options{
		File:           history,
		Shell:          "zsh",
		ResolveAliases: true,
		AliasFiles:     []string{aliasFile},
		Now:            fixedClock(1700086400),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(result.Ranking) != 1 {
		t.Fatalf("Ranking has %d entries, want 1 (all resolve to git)", len(result.Ranking))
	}
	if result.Ranking[0].Command != "git" || result.Ranking[0].Count != 3 {
		t.Errorf("Ranking[0] = %+v, want {git 3}", result.Ranking[0])
	}
	if got := result.AliasesUsed["gs"]; got != "git" {
		t.Errorf("AliasesUsed[gs] = %q, want git", got)
	}
}

func TestRunMissingFile(t *testing.T) {
	_, err := Run(config.DefaultConfig(), Options{
		File:  "/nonexistent/history",
		Shell: "zsh",
		Now:   fixedClock(1700086400),
	})
	if err == nil {
		t.Fatal("expected error for missing history file")
	}
	if _, ok := errors.AsParseError(err); !ok {
		t.Errorf("err = %T, want *errors.ParseError", err)
	}
}

func TestRunNumberDefaultsFromConfig(t *testing.T) {
	path := testutil.WriteHistory(t, ""+
		": 1700000000:0;a\n"+
		": 1700000001:0;b\n"+
		": 1700000002:0;c\n"+
		": 1700000003:0;d\n"+
		": 1700000004:0;e\n")

	cfg := config.DefaultConfig()
	cfg.Analysis.Number = 2

	result, err := Run(cfg, Options{
		File:  path,
		Shell: "zsh",
		Now:   fixedClock(1700086400),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Ranking) != 2 {
		t.Errorf("Ranking has %d entries, want 2 (config default)", len(result.Ranking))
	}
}
