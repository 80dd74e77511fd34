package history

import (
	"os"

	"github.com/freqcli/freq/internal/errors"
)

// ParseFile parses the history file at path using the given format.
// FormatUnknown requests auto-detection; a file that still cannot be
// classified (or opened) yields a structured ParseError rather than a
// guessed parser.
func ParseFile(path string, format Format, opts ParseOptions) ([]Record, error) {
	if format == FormatUnknown {
		detected, err := DetectFileFormat(path)
		if err != nil {
			return nil, err
		}
		format = detected
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, &errors.ParseError{Path: path, Format: format.String(), Err: err}
	}
	defer file.Close()

	var records []Record
	switch format {
	case FormatZsh:
		records, err = parseZsh(file, opts)
	case FormatBashMarked, FormatBashPlain:
		records, err = parseBash(file, opts)
	default:
		return nil, &errors.ParseError{Path: path, Err: errors.ErrUnknownFormat}
	}
	if err != nil {
		return records, &errors.ParseError{Path: path, Format: format.String(), Err: err}
	}

	return records, nil
}

// FormatForShell maps a shell name to its history format. Plain "bash"
// maps to the marker-aware parser, which handles both marked and plain
// files. Unrecognized shells map to FormatUnknown (auto-detect).
func FormatForShell(shell string) Format {
	switch shell {
	case "zsh":
		return FormatZsh
	case "bash":
		return FormatBashMarked
	default:
		return FormatUnknown
	}
}
