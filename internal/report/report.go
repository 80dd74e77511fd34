// Package report renders analysis results for the terminal and for files.
//
// Four formats are supported: plain text modeled on classic frequency
// reports, an aligned table, JSON, and YAML. The text and table renderers
// are for humans; JSON and YAML are for scripting.
package report

import (
	"fmt"
	"io"

	"github.com/freqcli/freq/internal/app"
)

// Format selects a report rendering.
type Format string

const (
	// FormatText renders sectioned plain text.
	FormatText Format = "text"
	// FormatTable renders an aligned table.
	FormatTable Format = "table"
	// FormatJSON renders indented JSON.
	FormatJSON Format = "json"
	// FormatYAML renders YAML.
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatText, FormatTable, FormatJSON, FormatYAML:
		return Format(name), nil
	}
	return "", fmt.Errorf("unsupported format: %s (use text, table, json, or yaml)", name)
}

// Render writes the result to w in the requested format.
func Render(w io.Writer, result *app.Result, format Format) error {
	switch format {
	case FormatText:
		return RenderText(w, result)
	case FormatTable:
		return RenderTable(w, result)
	case FormatJSON:
		return RenderJSON(w, result)
	case FormatYAML:
		return RenderYAML(w, result)
	}
	return fmt.Errorf("unsupported format: %s", format)
}
