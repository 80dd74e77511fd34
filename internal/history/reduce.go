package history

import "strings"

// recoveryCommands are probed, in priority order, when a history entry is
// corrupted by terminal control-sequence leakage.
var recoveryCommands = []string{"export", "echo", "set", "alias"}

// ReduceCommand normalizes raw command text. In full mode the trimmed text
// is returned unchanged; otherwise the leading whitespace-delimited token
// is returned.
//
// Entries corrupted by color-code leakage show up as a first token ending
// in a stray single quote (e.g. "00;35'"). For those the original command
// is recovered by scanning for a known command word, falling back to the
// literal "malformed".
func ReduceCommand(raw string, full bool) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	if full {
		return raw
	}

	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return ""
	}

	first := fields[0]
	if isCorruptedToken(first) {
		if strings.HasPrefix(raw, "export") {
			return "export"
		}
		for _, cmd := range recoveryCommands {
			if strings.Contains(raw, cmd) {
				return cmd
			}
		}
		return "malformed"
	}

	return first
}

// isCorruptedToken reports whether token is a fragment of a leaked
// terminal control sequence rather than a command name.
func isCorruptedToken(token string) bool {
	if !strings.HasSuffix(token, "'") {
		return false
	}
	return isAllDigits(token) || token == "35'" || token == "00;35'"
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
