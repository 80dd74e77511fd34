package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/freqcli/freq/internal/app"
)

// RenderJSON writes the result as indented JSON.
func RenderJSON(w io.Writer, result *app.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}

// RenderYAML writes the result as YAML.
func RenderYAML(w io.Writer, result *app.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return enc.Close()
}
