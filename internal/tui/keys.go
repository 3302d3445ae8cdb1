package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit     key.Binding
	NewSession key.Binding
	Copy       key.Binding
	Export     key.Binding
	Files      key.Binding
	ClearHist  key.Binding
	EndSession key.Binding
	Notify     key.Binding
	NextField  key.Binding
	Quit       key.Binding
	Close      key.Binding
	Enter      key.Binding
	Delete     key.Binding
	UpDown     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Submit:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "generate")),
		NewSession: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new session")),
		Copy:       key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy code")),
		Export:     key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "export")),
		Files:      key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "files")),
		ClearHist:  key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear history")),
		EndSession: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "end session")),
		Notify:     key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "notify on/off")),
		NextField:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Close:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Enter:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Delete:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		UpDown:     key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "select")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.NewSession, k.NextField, k.Copy, k.Files, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.NewSession, k.NextField},
		{k.Copy, k.Export, k.Files, k.ClearHist, k.EndSession, k.Notify, k.Quit},
	}
}

// modalKeyMap narrows the footer hints while the files browser is open.
type modalKeyMap struct {
	keyMap
}

func (k modalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Delete, k.UpDown, k.Close}
}

func (k modalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Enter, k.Delete, k.UpDown, k.Close}}
}
