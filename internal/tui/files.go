package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/codesmithlabs/codesmith/internal/api"
)

// fileItem adapts one server-side generated file for the browser list.
type fileItem struct {
	info api.FileInfo
}

func (f fileItem) Title() string       { return f.info.Filename }
func (f fileItem) Description() string { return "" }
func (f fileItem) FilterValue() string { return f.info.Filename }

type fileDelegate struct{}

func (d fileDelegate) Height() int  { return 1 }
func (d fileDelegate) Spacing() int { return 0 }
func (d fileDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}
func (d fileDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	entry, ok := item.(fileItem)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = "> "
	}
	line := fmt.Sprintf("%s%-40s %6d B", prefix, entry.info.Filename, entry.info.Size)
	fmt.Fprint(w, padRight(line, m.Width()))
}

func fileItems(fl api.FileList) []list.Item {
	items := make([]list.Item, 0, len(fl.Files))
	for _, f := range fl.Files {
		items = append(items, fileItem{info: f})
	}
	return items
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	for i := w; i < width; i++ {
		s += " "
	}
	return s
}
