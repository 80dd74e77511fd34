package history

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var (
	// zshTimestamp extracts the 10-digit epoch timestamp from an
	// extended history line.
	zshTimestamp = regexp.MustCompile(`: (\d{10}):`)

	// zshSeparator matches the full timestamp/duration prefix, used as a
	// fallback when the common ":0;" separator is absent (a non-zero
	// duration was recorded).
	zshSeparator = regexp.MustCompile(`: \d{10}:\d+;`)
)

// parseZsh parses zsh extended history: ": <timestamp>:<duration>;<command>".
// Lines without a recognizable timestamp or command are skipped; history
// files routinely contain corruption and per-line anomalies are absorbed.
func parseZsh(r io.Reader, opts ParseOptions) ([]Record, error) {
	var records []Record
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		m := zshTimestamp.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		ts, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			continue
		}

		if !opts.Range.IsZero() && !opts.Range.Contains(ts) {
			continue
		}

		// Zero duration is the overwhelmingly common case, so try the
		// literal ":0;" separator before the second regex scan.
		var raw string
		if idx := strings.Index(line, ":0;"); idx != -1 {
			raw = line[idx+3:]
		} else if loc := zshSeparator.FindStringIndex(line); loc != nil {
			raw = line[loc[1]:]
		} else {
			continue
		}

		cmd := ReduceCommand(raw, opts.FullCommand)
		if cmd == "" {
			continue
		}
		if !opts.matchesCommand(cmd) {
			continue
		}

		records = append(records, Record{Command: cmd, Timestamp: ts})
	}

	if err := scanner.Err(); err != nil {
		return records, err
	}
	return records, nil
}
