package report

import (
	"fmt"
	"io"

	"github.com/rodaine/table"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/freqcli/freq/internal/app"
)

// RenderTable writes the ranking (and correlations, if present) as aligned
// tables.
func RenderTable(w io.Writer, result *app.Result) error {
	p := message.NewPrinter(language.English)

	headerFmt := func(format string, vals ...interface{}) string {
		return headerStyle.Render(fmt.Sprintf(format, vals...))
	}

	fmt.Fprintln(w, dimStyle.Render(p.Sprintf("Analyzed %d commands from %s history", result.Total, result.Source.Shell)))
	if result.Period != "" {
		fmt.Fprintln(w, dimStyle.Render("Period: "+result.Period))
	}
	fmt.Fprintln(w)

	if result.Total == 0 {
		fmt.Fprintln(w, "No commands found in history")
		return nil
	}

	tbl := table.New("#", "Command", "Count").
		WithWriter(w).
		WithHeaderFormatter(headerFmt)
	for i, cc := range result.Ranking {
		tbl.AddRow(i+1, cc.Command, p.Sprintf("%d", cc.Count))
	}
	tbl.Print()

	if len(result.Correlations) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headerStyle.Render("Often used with '"+result.Command+"'"))
		corr := table.New("Command", "Count").
			WithWriter(w).
			WithHeaderFormatter(headerFmt)
		for _, cc := range result.Correlations {
			corr.AddRow(cc.Command, p.Sprintf("%d", cc.Count))
		}
		corr.Print()
	}

	if len(result.AliasesUsed) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headerStyle.Render("Resolved aliases"))
		aliases := table.New("Alias", "Command").
			WithWriter(w).
			WithHeaderFormatter(headerFmt)
		for _, alias := range sortedKeys(result.AliasesUsed) {
			aliases.AddRow(alias, result.AliasesUsed[alias])
		}
		aliases.Print()
	}

	return nil
}
