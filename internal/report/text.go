package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/freqcli/freq/internal/app"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// dateTimeLayout matches "November 21, 2023 at 14:05" style timestamps.
const dateTimeLayout = "January 02, 2006 at 15:04"

// RenderText writes a sectioned plain-text report.
func RenderText(w io.Writer, result *app.Result) error {
	p := message.NewPrinter(language.English)

	fmt.Fprintln(w, dimStyle.Render(p.Sprintf("Analyzed %d commands from %s history", result.Total, result.Source.Shell)))
	if result.Period != "" {
		fmt.Fprintln(w, dimStyle.Render("Period: "+result.Period))
	}
	fmt.Fprintln(w)

	if result.Total == 0 {
		fmt.Fprintln(w, "No commands found in history")
		return nil
	}

	if result.Command != "" {
		renderCommandFocus(w, p, result)
	} else {
		renderRanking(w, p, result)
	}

	if result.Timeline != nil {
		renderTimeline(w, p, result)
	}
	if result.Daily != nil {
		renderDaily(w, p, result)
	}
	if result.Diversity != nil {
		renderDiversity(w, p, result)
	}
	if len(result.AliasesUsed) > 0 {
		renderAliases(w, result)
	}

	return nil
}

func header(w io.Writer, text string) {
	fmt.Fprintln(w, headerStyle.Render("=== "+text+" ==="))
}

func renderRanking(w io.Writer, p *message.Printer, result *app.Result) {
	header(w, p.Sprintf("TOP %d MOST USED COMMANDS", len(result.Ranking)))
	for i, cc := range result.Ranking {
		fmt.Fprintf(w, "%2d. %-15s %s\n", i+1, cc.Command, p.Sprintf("(%d times)", cc.Count))
	}
	fmt.Fprintln(w)
}

func renderCommandFocus(w io.Writer, p *message.Printer, result *app.Result) {
	upper := strings.ToUpper(result.Command)

	header(w, p.Sprintf("TOP %d '%s' VARIATIONS", len(result.Ranking), upper))
	fmt.Fprintln(w, p.Sprintf("Total '%s' executions: %d", result.Command, result.Total))
	fmt.Fprintln(w)
	for i, cc := range result.Ranking {
		display := cc.Command
		if len(display) > 50 {
			display = display[:47] + "..."
		}
		fmt.Fprintf(w, "%2d. %-50s %s\n", i+1, display, p.Sprintf("(%d times)", cc.Count))
	}
	fmt.Fprintln(w)

	if len(result.Correlations) > 0 {
		header(w, fmt.Sprintf("COMMANDS OFTEN USED WITH '%s'", upper))
		for _, cc := range result.Correlations {
			fmt.Fprintf(w, "  %-20s (%d times)\n", cc.Command, cc.Count)
		}
		fmt.Fprintln(w)
	}
}

func renderTimeline(w io.Writer, p *message.Printer, result *app.Result) {
	tl := result.Timeline

	header(w, "USAGE TIMELINE")
	fmt.Fprintf(w, "First used: %s\n", tl.First.Format(dateTimeLayout))
	fmt.Fprintf(w, "Last used:  %s\n", tl.Last.Format(dateTimeLayout))
	fmt.Fprintln(w, p.Sprintf("Average:    %.1f times per day over %d days", tl.PerDay, tl.Days))
	fmt.Fprintln(w)
}

func renderDaily(w io.Writer, p *message.Printer, result *app.Result) {
	d := result.Daily

	header(w, "DAILY ACTIVITY ANALYSIS")
	fmt.Fprintln(w, p.Sprintf("Most active day: %d commands", d.Max))
	fmt.Fprintln(w, p.Sprintf("Least active day: %d commands", d.Min))
	fmt.Fprintf(w, "Average per active day: %.1f commands\n", d.Mean)
	fmt.Fprintln(w, p.Sprintf("Days with activity: %d", d.ActiveDays))
	fmt.Fprintln(w)
}

func renderDiversity(w io.Writer, p *message.Printer, result *app.Result) {
	d := result.Diversity

	header(w, "COMMAND DIVERSITY")
	fmt.Fprintln(w, p.Sprintf("Unique commands: %d", d.Unique))
	fmt.Fprintln(w, p.Sprintf("Total executions: %d", d.Total))
	fmt.Fprintf(w, "Average uses per command: %.1f\n", d.MeanPerCommand)
	fmt.Fprintln(w, p.Sprintf("Commands used only once: %d (%.1f%%)", d.SingleUse, d.SingleUsePct))
	fmt.Fprintln(w)
}

func renderAliases(w io.Writer, result *app.Result) {
	header(w, "RESOLVED ALIASES")
	for _, alias := range sortedKeys(result.AliasesUsed) {
		fmt.Fprintf(w, "  %-15s -> %s\n", alias, result.AliasesUsed[alias])
	}
	fmt.Fprintln(w)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
