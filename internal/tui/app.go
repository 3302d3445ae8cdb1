// Package tui is the terminal front end. It wires the orchestration core,
// the backend client, and the view projections into a bubbletea program.
// The Elm update loop is the single cooperative thread the core's admission
// control relies on: commands suspend at network boundaries and deliver
// their outcome back into Update as typed messages.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/codesmithlabs/codesmith/internal/api"
	"github.com/codesmithlabs/codesmith/internal/config"
	"github.com/codesmithlabs/codesmith/internal/core"
)

// backend is the slice of api.Client the TUI consumes; tests substitute a stub.
type backend interface {
	CreateSession(ctx context.Context) (api.SessionInfo, error)
	GenerateCode(ctx context.Context, sessionID string, req api.GenerateRequest) (api.GenerateResponse, error)
	Health(ctx context.Context) (api.HealthInfo, error)
	ListFiles(ctx context.Context) (api.FileList, error)
	DownloadFile(ctx context.Context, filename string) (string, error)
	DeleteFile(ctx context.Context, filename string) error
	ClearSession(ctx context.Context, sessionID string) error
	DeleteSession(ctx context.Context, sessionID string) error
}

type focusArea int

const (
	focusInput focusArea = iota
	focusLanguage
	focusFramework
)

// Model is the bubbletea model for the whole client.
type Model struct {
	cfg    config.Config
	client backend

	state    *core.State
	notifier core.Notifier

	input     textarea.Model
	framework textinput.Model
	langIndex int
	focus     focusArea

	keys      keyMap
	modalKeys modalKeyMap

	fileList   list.Model
	showFiles  bool
	filesReady bool

	// preview of a downloaded file; cleared on the next generation or esc
	previewName    string
	previewContent string

	resultLang   core.Language
	dismissAfter time.Duration
	width        int
	height       int
	quitting     bool
}

// New builds the initial model. The default language comes from config; an
// invalid configured value falls back to python rather than failing startup.
func New(cfg config.Config, client backend) Model {
	input := textarea.New()
	input.Placeholder = "Describe the code you want generated..."
	input.ShowLineNumbers = false
	input.SetHeight(4)
	input.Focus()

	framework := textinput.New()
	framework.Placeholder = "framework (optional)"
	framework.SetValue(cfg.Generation.Framework)

	fileList := list.New([]list.Item{}, fileDelegate{}, 0, 0)
	fileList.Title = "Generated Files"
	fileList.Styles.Title = titleStyle
	fileList.SetShowStatusBar(false)
	fileList.SetFilteringEnabled(false)
	fileList.SetShowHelp(false)
	fileList.DisableQuitKeybindings()

	langIndex := 0
	if lang, err := core.ParseLanguage(cfg.Generation.DefaultLanguage); err == nil {
		for i, l := range core.Languages() {
			if l == lang {
				langIndex = i
				break
			}
		}
	}

	keys := newKeyMap()
	return Model{
		cfg:          cfg,
		client:       client,
		state:        core.NewState(),
		input:        input,
		framework:    framework,
		langIndex:    langIndex,
		keys:         keys,
		modalKeys:    modalKeyMap{keyMap: keys},
		fileList:     fileList,
		dismissAfter: core.DismissAfter,
		width:        100,
		height:       32,
	}
}

func (m Model) Init() tea.Cmd {
	return m.healthCmd()
}

// language returns the currently selected target language.
func (m Model) language() core.Language {
	langs := core.Languages()
	if m.langIndex < 0 || m.langIndex >= len(langs) {
		return core.LangPython
	}
	return langs[m.langIndex]
}

// setStatus routes a message through the notifier and schedules the
// auto-clear tick for success/error kinds. Loading statuses persist until
// replaced.
func (m *Model) setStatus(message string, kind core.StatusKind) tea.Cmd {
	seq := m.notifier.Show(message, kind)
	if kind == core.StatusSuccess || kind == core.StatusError {
		return m.expireStatusCmd(seq)
	}
	return nil
}

// batchCmds filters nils and avoids wrapping a single command in a batch.
func batchCmds(cmds ...tea.Cmd) tea.Cmd {
	out := make([]tea.Cmd, 0, len(cmds))
	for _, c := range cmds {
		if c != nil {
			out = append(out, c)
		}
	}
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0]
	default:
		return tea.Batch(out...)
	}
}
