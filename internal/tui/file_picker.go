// Package tui provides Bubble Tea models for freq.
package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/freqcli/freq/internal/errors"
	"github.com/freqcli/freq/internal/history"
)

// FileEntry is one selectable history file with its metadata.
type FileEntry struct {
	Path    string
	Shell   string
	Format  history.Format
	Size    int64
	ModTime time.Time
}

// BuildEntries stats and format-detects the discovered history files.
// Files that disappear between discovery and stat are skipped.
func BuildEntries(files []history.File) []FileEntry {
	entries := make([]FileEntry, 0, len(files))
	for _, f := range files {
		info, err := os.Stat(f.Path)
		if err != nil {
			continue
		}
		format, _ := history.DetectFileFormat(f.Path)
		entries = append(entries, FileEntry{
			Path:    f.Path,
			Shell:   f.Shell,
			Format:  format,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	return entries
}

// FilePickerModel is a Bubble Tea model for selecting a history file.
type FilePickerModel struct {
	// Files is the full list of candidate history files.
	Files []FileEntry

	// Filtered is the list of file indices after filtering.
	Filtered []int

	// cursor is the current cursor position in the filtered list.
	cursor int

	// FilterInput is the text input for filtering by path.
	FilterInput textinput.Model

	// Focused indicates which component is focused ("filter" or "list").
	Focused string

	// Quit indicates whether the user quit without selecting.
	Quit bool

	// Confirmed indicates whether the user confirmed a selection.
	Confirmed bool

	// styles
	normalStyle  lipgloss.Style
	cursorStyle  lipgloss.Style
	previewStyle lipgloss.Style
}

// NewFilePickerModel creates a new file picker model.
func NewFilePickerModel(files []FileEntry) FilePickerModel {
	ti := textinput.New()
	ti.Placeholder = "Filter files..."
	ti.Focus()

	filtered := make([]int, len(files))
	for i := range files {
		filtered[i] = i
	}

	return FilePickerModel{
		Files:       files,
		Filtered:    filtered,
		cursor:      0,
		FilterInput: ti,
		Focused:     "filter",
		normalStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		cursorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Bold(true),
		previewStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("242")),
	}
}

// Init implements tea.Model.
func (m FilePickerModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m FilePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.Quit = true
			return m, tea.Quit

		case "enter":
			if m.Focused == "filter" {
				m.Focused = "list"
				m.FilterInput.Blur()
			} else if len(m.Filtered) > 0 {
				m.Confirmed = true
				return m, tea.Quit
			}

		case "/":
			m.Focused = "filter"
			m.FilterInput.Focus()
			return m, nil

		case "up", "k":
			if m.Focused == "list" && m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.Focused == "list" && m.cursor < len(m.Filtered)-1 {
				m.cursor++
			}

		case "home", "g":
			if m.Focused == "list" {
				m.cursor = 0
			}

		case "end", "G":
			if m.Focused == "list" {
				m.cursor = len(m.Filtered) - 1
			}
		}
	}

	if m.Focused == "filter" {
		oldFilter := m.FilterInput.Value()
		m.FilterInput, cmd = m.FilterInput.Update(msg)
		if newFilter := m.FilterInput.Value(); newFilter != oldFilter {
			m.applyFilter(newFilter)
		}
	}

	return m, cmd
}

// View implements tea.Model.
func (m FilePickerModel) View() string {
	if len(m.Files) == 0 {
		return "\n  No history files found.\n"
	}

	var b strings.Builder

	b.WriteString("\n  ")
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Render("History File Picker"))
	b.WriteString("\n\n")

	b.WriteString("  ")
	b.WriteString(m.helpText())
	b.WriteString("\n\n")

	leftCol := m.renderListColumn(44)
	rightCol := m.renderPreviewColumn(48)

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, leftCol, rightCol))
	b.WriteString("\n")

	return b.String()
}

// renderListColumn renders the filter and list column.
func (m FilePickerModel) renderListColumn(width int) string {
	var b strings.Builder

	b.WriteString("  Filter: ")
	b.WriteString(m.FilterInput.View())
	b.WriteString("\n\n")

	b.WriteString("  ")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(
		fmt.Sprintf("%d history files", len(m.Filtered)),
	))
	b.WriteString("\n\n")

	if len(m.Filtered) == 0 {
		b.WriteString("  (no matches)")
	} else {
		for i, fileIdx := range m.Filtered {
			entry := m.Files[fileIdx]

			line := "  "
			style := m.normalStyle
			if i == m.cursor {
				line = "> "
				style = m.cursorStyle
			}

			text := fmt.Sprintf("%-6s %s", entry.Shell, entry.Path)
			if len(text) > width-6 {
				text = "..." + text[len(text)-(width-9):]
			}

			b.WriteString(line + style.Render(text) + "\n")
		}
	}

	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(b.String())
}

// renderPreviewColumn renders details for the file under the cursor.
func (m FilePickerModel) renderPreviewColumn(width int) string {
	if len(m.Filtered) == 0 {
		return ""
	}

	entry := m.Files[m.Filtered[m.cursor]]

	var b strings.Builder

	b.WriteString("  Preview\n\n")
	b.WriteString("  Path:   " + m.previewStyle.Render(entry.Path) + "\n")
	b.WriteString("  Shell:  " + entry.Shell + "\n")
	b.WriteString("  Format: " + entry.Format.String() + "\n")
	b.WriteString(fmt.Sprintf("  Size:   %d bytes\n", entry.Size))
	if !entry.ModTime.IsZero() {
		b.WriteString("  Updated: " + entry.ModTime.Format("2006-01-02 15:04") + "\n")
	}

	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(b.String())
}

// helpText returns the help text for the current focus.
func (m FilePickerModel) helpText() string {
	var parts []string

	if m.Focused == "filter" {
		parts = append(parts, "[Enter] Focus list", "[Ctrl+C] Quit")
	} else {
		parts = append(parts,
			"[Enter] Select",
			"[j/k] Move",
			"[/] Focus filter",
			"[q] Quit",
		)
	}

	return lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(
		strings.Join(parts, "  "),
	)
}

// applyFilter filters the file list by path substring.
func (m *FilePickerModel) applyFilter(query string) {
	query = strings.ToLower(query)

	m.Filtered = nil
	for i, entry := range m.Files {
		if strings.Contains(strings.ToLower(entry.Path), query) ||
			strings.Contains(strings.ToLower(entry.Shell), query) {
			m.Filtered = append(m.Filtered, i)
		}
	}

	if m.cursor >= len(m.Filtered) {
		m.cursor = max(0, len(m.Filtered)-1)
	}
}

// SelectedFile returns the file under the cursor.
func (m FilePickerModel) SelectedFile() (FileEntry, bool) {
	if len(m.Filtered) == 0 {
		return FileEntry{}, false
	}
	return m.Files[m.Filtered[m.cursor]], true
}

// DidQuit returns true if the user quit without selecting.
func (m FilePickerModel) DidQuit() bool {
	return m.Quit
}

// DidConfirm returns true if the user confirmed a selection.
func (m FilePickerModel) DidConfirm() bool {
	return m.Confirmed
}

// PickFile runs the picker and returns the chosen file. Quitting without a
// selection yields ErrCanceled.
func PickFile(entries []FileEntry) (FileEntry, error) {
	model := NewFilePickerModel(entries)

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return FileEntry{}, fmt.Errorf("running file picker: %w", err)
	}

	picker, ok := final.(FilePickerModel)
	if !ok || !picker.DidConfirm() {
		return FileEntry{}, errors.ErrCanceled
	}

	entry, ok := picker.SelectedFile()
	if !ok {
		return FileEntry{}, errors.ErrCanceled
	}
	return entry, nil
}
