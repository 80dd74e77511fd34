package history

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/freqcli/freq/internal/errors"
)

// zshEntryPrefix matches the start of a zsh extended history line:
// ": <10-digit-timestamp>:<duration>;".
var zshEntryPrefix = regexp.MustCompile(`^: \d{10}:\d+;`)

// detectSampleLines is how many lines DetectFormat inspects.
const detectSampleLines = 11

// DetectFormat classifies the grammar of a history file by sampling its
// first few lines. A zsh extended entry anywhere in the sample wins;
// otherwise a "#<digits>" marker line means timestamped bash; otherwise
// the file is treated as plain bash.
func DetectFormat(r io.Reader) Format {
	scanner := bufio.NewScanner(r)

	var lines []string
	for i := 0; scanner.Scan() && i < detectSampleLines; i++ {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if scanner.Err() != nil {
		return FormatUnknown
	}

	for _, line := range lines {
		if zshEntryPrefix.MatchString(line) {
			return FormatZsh
		}
	}

	for _, line := range lines {
		if isMarkerLine(line) {
			return FormatBashMarked
		}
	}

	return FormatBashPlain
}

// DetectFileFormat opens path and classifies its format. An unreadable
// file yields FormatUnknown and a structured error; callers must treat
// that as fatal for the file and never guess a parser.
func DetectFileFormat(path string) (Format, error) {
	file, err := os.Open(path)
	if err != nil {
		return FormatUnknown, &errors.ParseError{Path: path, Err: err}
	}
	defer file.Close()

	return DetectFormat(file), nil
}

// isMarkerLine reports whether line is a bash timestamp marker:
// "#" followed only by digits.
func isMarkerLine(line string) bool {
	if len(line) < 2 || line[0] != '#' {
		return false
	}
	for _, c := range line[1:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// DetectShell returns "zsh" or "bash" based on the SHELL environment
// variable, or "" when neither can be identified.
func DetectShell() string {
	shell := filepath.Base(os.Getenv("SHELL"))
	switch {
	case strings.Contains(shell, "zsh"):
		return "zsh"
	case strings.Contains(shell, "bash"):
		return "bash"
	default:
		return ""
	}
}

// File is a discovered shell history file.
type File struct {
	Path  string
	Shell string
}

// shellLocations lists candidate history file locations per shell,
// in preference order.
func shellLocations(home string) map[string][]string {
	return map[string][]string{
		"zsh": {
			filepath.Join(home, ".zsh_history"),
			filepath.Join(home, ".histfile"),
		},
		"bash": {
			filepath.Join(home, ".bash_history"),
		},
	}
}

// DiscoverFiles returns the first existing history file for each shell,
// zsh before bash.
func DiscoverFiles() []File {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	locations := shellLocations(home)

	var found []File
	for _, shell := range []string{"zsh", "bash"} {
		for _, path := range locations[shell] {
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				found = append(found, File{Path: path, Shell: shell})
				break
			}
		}
	}

	return found
}

// DefaultFileFor returns the first existing history file for the given
// shell, or ErrNotFound when none of the candidate locations exist.
func DefaultFileFor(shell string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "home directory")
	}

	for _, path := range shellLocations(home)[shell] {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	return "", errors.Wrap(errors.ErrNotFound, shell+" history file")
}
