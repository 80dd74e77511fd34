package history

import (
	"testing"
	"time"

	"github.com/freqcli/freq/internal/errors"
	"github.com/freqcli/freq/internal/testutil"
)

// fixedClock returns a ParseOptions clock pinned to the given unix time.
func fixedClock(ts int64) func() time.Time {
	return func() time.Time { return time.Unix(ts, 0) }
}

func TestParseZsh(t *testing.T) {
	tests := []struct {
		name    string
		content string
		opts    ParseOptions
		want    []Record
	}{
		{
			name: "reduces to leading token",
			content: `: 1616420000:0;git status
: 1616420100:0;ls -la
`,
			want: []Record{
				{Command: "git", Timestamp: 1616420000},
				{Command: "ls", Timestamp: 1616420100},
			},
		},
		{
			name:    "full command mode",
			content: ": 1616420000:0;echo hello world\n",
			opts:    ParseOptions{FullCommand: true},
			want:    []Record{{Command: "echo hello world", Timestamp: 1616420000}},
		},
		{
			name:    "nonzero duration falls back to the separator regex",
			content: ": 1616420000:42;sleep 40\n",
			want:    []Record{{Command: "sleep", Timestamp: 1616420000}},
		},
		{
			name: "lines without a timestamp are skipped",
			content: `not a zsh line
: 1616420000:0;git status
: 99:0;short timestamp
`,
			want: []Record{{Command: "git", Timestamp: 1616420000}},
		},
		{
			name:    "empty command after separator is skipped",
			content: ": 1616420000:0;   \n",
			want:    nil,
		},
		{
			name: "early date filter",
			content: `: 1616420000:0;git status
: 1616430000:0;git log
`,
			opts: ParseOptions{Range: DateRange{Start: 1616425000}},
			want: []Record{{Command: "git", Timestamp: 1616430000}},
		},
		{
			name: "early command filter",
			content: `: 1616420000:0;git status
: 1616420100:0;gitk
: 1616420200:0;ls
`,
			opts: ParseOptions{FullCommand: true, Command: "git"},
			want: []Record{{Command: "git status", Timestamp: 1616420000}},
		},
		{
			name:    "blank lines are skipped",
			content: "\n\n: 1616420000:0;make\n\n",
			want:    []Record{{Command: "make", Timestamp: 1616420000}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.WriteHistory(t, tt.content)

			got, err := ParseFile(path, FormatZsh, tt.opts)
			if err != nil {
				t.Fatalf("ParseFile() error = %v", err)
			}
			assertRecords(t, got, tt.want)
		})
	}
}

func TestParseBash(t *testing.T) {
	tests := []struct {
		name    string
		content string
		opts    ParseOptions
		want    []Record
	}{
		{
			name: "marker sets timestamp for next command",
			content: `#1616420000
git status
#1616420100
git log --oneline
`,
			want: []Record{
				{Command: "git", Timestamp: 1616420000},
				{Command: "git", Timestamp: 1616420100},
			},
		},
		{
			name: "marker applies to exactly one command line",
			content: `#1616420000
git status
ls -la
`,
			opts: ParseOptions{Now: fixedClock(1700000000)},
			want: []Record{
				{Command: "git", Timestamp: 1616420000},
				{Command: "ls", Timestamp: 1700000000},
			},
		},
		{
			name: "plain history falls back to the clock",
			content: `git status
make test
`,
			opts: ParseOptions{Now: fixedClock(1700000000)},
			want: []Record{
				{Command: "git", Timestamp: 1700000000},
				{Command: "make", Timestamp: 1700000000},
			},
		},
		{
			name: "blank lines do not consume the pending marker",
			content: `#1616420000

git status
`,
			want: []Record{{Command: "git", Timestamp: 1616420000}},
		},
		{
			name: "marker consumed even when the line is filtered out",
			content: `#1616430000
ls
#1616420000
git status
git push
`,
			opts: ParseOptions{
				Command: "git",
				Now:     fixedClock(1700000000),
			},
			want: []Record{
				{Command: "git", Timestamp: 1616420000},
				{Command: "git", Timestamp: 1700000000},
			},
		},
		{
			name: "early date filter",
			content: `#1616420000
git status
#1616430000
git log
`,
			opts: ParseOptions{Range: DateRange{End: 1616425000}},
			want: []Record{{Command: "git", Timestamp: 1616420000}},
		},
		{
			name:    "full command mode",
			content: "#1616420000\necho hello world\n",
			opts:    ParseOptions{FullCommand: true},
			want:    []Record{{Command: "echo hello world", Timestamp: 1616420000}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.WriteHistory(t, tt.content)

			got, err := ParseFile(path, FormatBashMarked, tt.opts)
			if err != nil {
				t.Fatalf("ParseFile() error = %v", err)
			}
			assertRecords(t, got, tt.want)
		})
	}
}

func TestParseFileAutoDetect(t *testing.T) {
	path := testutil.WriteHistory(t, ": 1616420000:0;git status\n")

	got, err := ParseFile(path, FormatUnknown, ParseOptions{})
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	assertRecords(t, got, []Record{{Command: "git", Timestamp: 1616420000}})
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile("/nonexistent/history", FormatZsh, ParseOptions{})
	if err == nil {
		t.Fatal("ParseFile() error = nil, want error")
	}
	if _, ok := errors.AsParseError(err); !ok {
		t.Errorf("ParseFile() error = %T, want *errors.ParseError", err)
	}
}

func TestFormatForShell(t *testing.T) {
	tests := []struct {
		shell string
		want  Format
	}{
		{"zsh", FormatZsh},
		{"bash", FormatBashMarked},
		{"fish", FormatUnknown},
		{"", FormatUnknown},
	}

	for _, tt := range tests {
		if got := FormatForShell(tt.shell); got != tt.want {
			t.Errorf("FormatForShell(%q) = %v, want %v", tt.shell, got, tt.want)
		}
	}
}

// assertRecords compares record slices element-wise.
func assertRecords(t *testing.T, got, want []Record) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("got %d records %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}
