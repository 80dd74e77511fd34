package history

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// parseBash parses bash history, with or without "#<timestamp>" marker
// lines. A marker sets the pending timestamp for exactly the next command
// line; command lines with no pending marker fall back to the current
// wall-clock time (plain bash history carries no timestamps at all).
func parseBash(r io.Reader, opts ParseOptions) ([]Record, error) {
	var records []Record
	scanner := bufio.NewScanner(r)

	var pending int64
	var hasPending bool

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if isMarkerLine(line) {
			if ts, err := strconv.ParseInt(line[1:], 10, 64); err == nil {
				pending = ts
				hasPending = true
			}
			continue
		}

		// Blank lines do not consume the pending timestamp.
		if line == "" {
			continue
		}

		ts := pending
		if !hasPending {
			ts = opts.now().Unix()
		}
		// The marker applies to exactly one command line, whether or
		// not that line survives filtering.
		pending = 0
		hasPending = false

		if !opts.Range.IsZero() && !opts.Range.Contains(ts) {
			continue
		}

		cmd := ReduceCommand(line, opts.FullCommand)
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
