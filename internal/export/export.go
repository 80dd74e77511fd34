// Package export writes analysis reports to files with template support.
package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/freqcli/freq/internal/app"
	"github.com/freqcli/freq/internal/report"
)

// Format represents the export format.
type Format string

const (
	// FormatMarkdown exports as Markdown.
	FormatMarkdown Format = "md"
	// FormatText exports the plain-text report.
	FormatText Format = "text"
	// FormatYAML exports as YAML.
	FormatYAML Format = "yaml"
	// FormatJSON exports as JSON.
	FormatJSON Format = "json"
)

// FormatForPath guesses the export format from a file extension.
// Unknown extensions default to the plain-text report.
func FormatForPath(path string) Format {
	switch filepath.Ext(path) {
	case ".md", ".markdown":
		return FormatMarkdown
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// Exporter renders reports in various formats.
type Exporter struct {
	format   Format
	template *template.Template
}

// Options contains export options.
type Options struct {
	Format         Format
	CustomTemplate string
}

// NewExporter creates a new exporter.
func NewExporter(opts Options) (*Exporter, error) {
	e := &Exporter{format: opts.Format}

	if e.format == FormatMarkdown || opts.CustomTemplate != "" {
		tmpl, err := e.loadTemplate(opts.CustomTemplate)
		if err != nil {
			return nil, err
		}
		e.template = tmpl
	}

	return e, nil
}

// loadTemplate loads the Markdown export template.
func (e *Exporter) loadTemplate(customPath string) (*template.Template, error) {
	if customPath != "" {
		return e.parseTemplateFile(customPath)
	}
	return template.New("export").Parse(builtinMarkdownTemplate)
}

// parseTemplateFile parses a template file. Relative paths are also looked
// up under ~/.config/freq/templates/.
func (e *Exporter) parseTemplateFile(path string) (*template.Template, error) {
	if !filepath.IsAbs(path) {
		if _, err := os.Stat(path); err != nil {
			homeDir, homeErr := os.UserHomeDir()
			if homeErr == nil {
				configPath := filepath.Join(homeDir, ".config", "freq", "templates", filepath.Base(path))
				if _, err := os.Stat(configPath); err == nil {
					path = configPath
				}
			}
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template file: %w", err)
	}

	return template.New("export").Parse(string(data))
}

// Export renders a report to a string.
func (e *Exporter) Export(result *app.Result) (string, error) {
	var buf bytes.Buffer

	if e.template != nil {
		if err := e.template.Execute(&buf, e.templateData(result)); err != nil {
			return "", fmt.Errorf("executing template: %w", err)
		}
		return buf.String(), nil
	}

	var format report.Format
	switch e.format {
	case FormatText:
		format = report.FormatText
	case FormatJSON:
		format = report.FormatJSON
	case FormatYAML:
		format = report.FormatYAML
	default:
		return "", fmt.Errorf("unsupported format: %s", e.format)
	}

	if err := report.Render(&buf, result, format); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ExportToFile renders a report and writes it to a file.
func (e *Exporter) ExportToFile(result *app.Result, path string) error {
	output, err := e.Export(result)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(output), 0644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}

// templateData flattens the result for template consumption.
func (e *Exporter) templateData(result *app.Result) map[string]interface{} {
	rankingData := make([]map[string]interface{}, len(result.Ranking))
	for i, cc := range result.Ranking {
		rankingData[i] = map[string]interface{}{
			"index":   i + 1,
			"command": cc.Command,
			"count":   cc.Count,
		}
	}

	correlationData := make([]map[string]interface{}, len(result.Correlations))
	for i, cc := range result.Correlations {
		correlationData[i] = map[string]interface{}{
			"command": cc.Command,
			"count":   cc.Count,
		}
	}

	data := map[string]interface{}{
		"RunID":        result.RunID,
		"GeneratedAt":  result.GeneratedAt.Format("2006-01-02 15:04:05"),
		"Shell":        result.Source.Shell,
		"Path":         result.Source.Path,
		"Command":      result.Command,
		"Period":       result.Period,
		"Total":        result.Total,
		"Ranking":      rankingData,
		"Correlations": correlationData,
		"AliasesUsed":  result.AliasesUsed,
	}

	if result.Diversity != nil {
		data["Diversity"] = map[string]interface{}{
			"unique":         result.Diversity.Unique,
			"total":          result.Diversity.Total,
			"meanPerCommand": result.Diversity.MeanPerCommand,
			"singleUse":      result.Diversity.SingleUse,
			"singleUsePct":   result.Diversity.SingleUsePct,
		}
	}
	if result.Timeline != nil {
		data["Timeline"] = map[string]interface{}{
			"first":  result.Timeline.First.Format("2006-01-02"),
			"last":   result.Timeline.Last.Format("2006-01-02"),
			"days":   result.Timeline.Days,
			"perDay": result.Timeline.PerDay,
		}
	}

	return data
}

// builtinMarkdownTemplate is the default Markdown template.
const builtinMarkdownTemplate = "# Command Frequency Report\n\n" +
	"**Source:** `{{.Path}}` ({{.Shell}})\n" +
	"{{if .Period}}**Period:** {{.Period}}\n{{end}}" +
	"{{if .Command}}**Command:** `{{.Command}}`\n{{end}}" +
	"**Total commands:** {{.Total}}\n\n" +
	"## Top Commands\n\n" +
	"| # | Command | Count |\n|---|---------|-------|\n" +
	"{{range .Ranking}}| {{.index}} | `{{.command}}` | {{.count}} |\n{{end}}\n" +
	"{{if .Correlations}}## Often Used Together\n\n" +
	"| Command | Count |\n|---------|-------|\n" +
	"{{range .Correlations}}| `{{.command}}` | {{.count}} |\n{{end}}\n{{end}}" +
	"{{if .Timeline}}## Timeline\n\n" +
	"- First used: {{.Timeline.first}}\n- Last used: {{.Timeline.last}}\n" +
	"- {{printf \"%.1f\" .Timeline.perDay}} times per day over {{.Timeline.days}} days\n\n{{end}}" +
	"{{if .Diversity}}## Diversity\n\n" +
	"- Unique commands: {{.Diversity.unique}}\n" +
	"- Total executions: {{.Diversity.total}}\n" +
	"- Used only once: {{.Diversity.singleUse}} ({{printf \"%.1f\" .Diversity.singleUsePct}}%)\n\n{{end}}" +
	"{{if .AliasesUsed}}## Resolved Aliases\n\n" +
	"{{range $alias, $cmd := .AliasesUsed}}- `{{$alias}}` -> `{{$cmd}}`\n{{end}}\n{{end}}" +
	"---\n*Generated by freq at {{.GeneratedAt}} (run {{.RunID}})*\n"
