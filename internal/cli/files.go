package cli

import (
	"fmt"
	"os"

	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/freqcli/freq/internal/history"
)

// NewFilesCommand creates the files command, which lists the history
// files found for each supported shell.
func NewFilesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "files",
		Short: "List available history files",
		Long:  "List the history files discovered for each supported shell, with their detected formats.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFiles()
		},
	}
}

func runFiles() error {
	files := history.DiscoverFiles()
	if len(files) == 0 {
		fmt.Println("No history files found")
		return nil
	}

	tbl := table.New("Shell", "Path", "Format", "Size")
	for _, f := range files {
		var size int64
		if info, err := os.Stat(f.Path); err == nil {
			size = info.Size()
		}
		format, _ := history.DetectFileFormat(f.Path)
		tbl.AddRow(f.Shell, f.Path, format.String(), fmt.Sprintf("%d B", size))
	}
	tbl.Print()

	return nil
}
