// Package aliases builds a shell alias table from configuration files and
// resolves command names through it.
package aliases

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/freqcli/freq/internal/history"
)

// Table maps alias names to their resolved base commands. It is built once
// per run and read-only afterwards.
type Table struct {
	commands map[string]string
	sources  map[string]string // alias name -> defining file basename
}

// DefaultPaths returns the ordered candidate list of alias configuration
// files. Later files overwrite earlier definitions of the same alias,
// matching simple config layering.
func DefaultPaths() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return []string{
		filepath.Join(home, ".aliases"),
		filepath.Join(home, ".bash_aliases"),
		filepath.Join(home, ".zshrc"),
		filepath.Join(home, ".bashrc"),
	}
}

// Load scans the given files for "alias <name>=<value>" definitions.
// Missing or unreadable files are skipped; a run with no alias files
// simply yields an empty table.
func Load(paths []string) *Table {
	t := &Table{
		commands: make(map[string]string),
		sources:  make(map[string]string),
	}

	for _, path := range paths {
		file, err := os.Open(path)
		if err != nil {
			continue
		}

		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			name, base, ok := parseAliasLine(scanner.Text())
			if !ok {
				continue
			}
			t.commands[name] = base
			t.sources[name] = filepath.Base(path)
		}
		file.Close()
	}

	return t
}

// parseAliasLine extracts an alias definition from a config line.
// The value may be single- or double-quoted; its first whitespace token
// is the resolved base command.
func parseAliasLine(line string) (name, base string, ok bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "alias ") || !strings.Contains(line, "=") {
		return "", "", false
	}

	def := line[len("alias "):]
	name, value, found := strings.Cut(def, "=")
	if !found {
		return "", "", false
	}

	value = strings.Trim(strings.TrimSpace(value), `'"`)
	if value == "" {
		return "", "", false
	}

	fields := strings.Fields(value)
	if len(fields) == 0 {
		return "", "", false
	}

	return strings.TrimSpace(name), fields[0], true
}

// Len returns the number of aliases in the table.
func (t *Table) Len() int {
	return len(t.commands)
}

// Resolve looks up a command name, returning it unchanged when unmapped.
func (t *Table) Resolve(name string) string {
	if base, ok := t.commands[name]; ok {
		return base
	}
	return name
}

// Source returns the basename of the file that defined an alias.
func (t *Table) Source(name string) string {
	return t.sources[name]
}

// ResolveRecords rewrites the leading token of each record through the
// table. In full-command mode only the leading token is substituted;
// the remaining arguments are preserved and rejoined with single spaces.
func (t *Table) ResolveRecords(records []history.Record, fullCommand bool) []history.Record {
	if t.Len() == 0 {
		return records
	}

	resolved := make([]history.Record, 0, len(records))
	for _, rec := range records {
		resolved = append(resolved, history.Record{
			Command:   t.resolveCommand(rec.Command, fullCommand),
			Timestamp: rec.Timestamp,
		})
	}
	return resolved
}

func (t *Table) resolveCommand(cmd string, fullCommand bool) string {
	if !fullCommand {
		return t.Resolve(cmd)
	}

	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return cmd
	}

	fields[0] = t.Resolve(fields[0])
	return strings.Join(fields, " ")
}

// Used reports the aliases that actually occur as the leading token of a
// record, as "name" -> resolved base command. Aliases that map to
// themselves are suppressed; they are no-ops not worth reporting.
func (t *Table) Used(records []history.Record) map[string]string {
	used := make(map[string]string)

	for name, base := range t.commands {
		if name == base {
			continue
		}
		for _, rec := range records {
			token := rec.Command
			if fields := strings.Fields(rec.Command); len(fields) > 0 {
				token = fields[0]
			}
			if token == name {
				used[name] = base
				break
			}
		}
	}

	return used
}
