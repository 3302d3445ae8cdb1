package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/codesmithlabs/codesmith/internal/api"
	"github.com/codesmithlabs/codesmith/internal/core"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case statusExpiredMsg:
		m.notifier.Expire(msg.seq)
		return m, nil

	case healthCheckedMsg:
		if msg.err != nil {
			cmd := m.setStatus(fmt.Sprintf("backend unreachable: %v", msg.err), core.StatusError)
			return m, cmd
		}
		if msg.info.Status != "healthy" {
			cmd := m.setStatus(fmt.Sprintf("backend unhealthy (ollama %s)", msg.info.OllamaStatus), core.StatusError)
			return m, cmd
		}
		cmd := m.setStatus("Backend ready. Press ctrl+n to start a session.", core.StatusSuccess)
		return m, cmd

	case sessionCreatedMsg:
		if msg.err != nil {
			// The previously active session (possibly none) stays in place.
			cmd := m.setStatus(msg.err.Error(), core.StatusError)
			return m, cmd
		}
		m.state.BeginSession(core.Session{
			ID:        msg.info.SessionID,
			CreatedAt: parseCreatedAt(msg.info.CreatedAt),
		})
		m.previewName, m.previewContent = "", ""
		m.resultLang = ""
		cmd := m.setStatus("New session started.", core.StatusSuccess)
		return m, cmd

	case generateDoneMsg:
		if msg.err != nil {
			m.state.FailGeneration()
			cmd := m.setStatus(msg.err.Error(), core.StatusError)
			return m, cmd
		}
		m.state.CompleteGeneration(msg.resp.Description, core.GenerationResult{
			Filename:      msg.resp.Filename,
			Code:          msg.resp.Code,
			Dependencies:  msg.resp.Dependencies,
			ExecutionTime: msg.resp.ExecutionTime,
		})
		m.resultLang = msg.lang
		m.previewName, m.previewContent = "", ""
		m.input.Reset()
		status := msg.resp.Message
		if status == "" {
			status = "Code generated: " + msg.resp.Filename
		}
		var notify tea.Cmd
		if m.cfg.UI.Notify {
			notify = notifyCmd("codesmith", status)
		}
		cmd := batchCmds(m.setStatus(status, core.StatusSuccess), notify)
		return m, cmd

	case filesLoadedMsg:
		if msg.err != nil {
			m.showFiles = false
			cmd := m.setStatus(fmt.Sprintf("list files: %v", msg.err), core.StatusError)
			return m, cmd
		}
		m.fileList.SetItems(fileItems(msg.list))
		m.filesReady = true
		return m, nil

	case fileFetchedMsg:
		if msg.err != nil {
			cmd := m.setStatus(fmt.Sprintf("open %s: %v", msg.name, msg.err), core.StatusError)
			return m, cmd
		}
		m.previewName = msg.name
		m.previewContent = msg.content
		m.showFiles = false
		return m, nil

	case fileDeletedMsg:
		if msg.err != nil {
			cmd := m.setStatus(fmt.Sprintf("delete %s: %v", msg.name, msg.err), core.StatusError)
			return m, cmd
		}
		cmd := batchCmds(
			m.setStatus("Deleted "+msg.name, core.StatusSuccess),
			m.loadFilesCmd(),
		)
		return m, cmd

	case historyClearedMsg:
		if msg.err != nil {
			cmd := m.setStatus(fmt.Sprintf("clear history: %v", msg.err), core.StatusError)
			return m, cmd
		}
		m.state.ClearHistory()
		cmd := m.setStatus("History cleared.", core.StatusSuccess)
		return m, cmd

	case sessionEndedMsg:
		if msg.err != nil {
			cmd := m.setStatus(fmt.Sprintf("end session: %v", msg.err), core.StatusError)
			return m, cmd
		}
		m.state.EndSession()
		m.previewName, m.previewContent = "", ""
		cmd := m.setStatus("Session ended.", core.StatusSuccess)
		return m, cmd

	case copyDoneMsg:
		if msg.err != nil {
			cmd := m.setStatus(fmt.Sprintf("copy failed: %v", msg.err), core.StatusError)
			return m, cmd
		}
		cmd := m.setStatus("Copied to clipboard.", core.StatusSuccess)
		return m, cmd

	case exportDoneMsg:
		if msg.err != nil {
			cmd := m.setStatus(fmt.Sprintf("export failed: %v", msg.err), core.StatusError)
			return m, cmd
		}
		cmd := m.setStatus("Saved "+msg.path, core.StatusSuccess)
		return m, cmd

	case settingsSavedMsg:
		if msg.err != nil {
			cmd := m.setStatus(fmt.Sprintf("save settings: %v", msg.err), core.StatusError)
			return m, cmd
		}
		text := "Notifications off."
		if m.cfg.UI.Notify {
			text = "Notifications on."
		}
		cmd := m.setStatus(text, core.StatusSuccess)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.showFiles {
		return m.updateFilesModal(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit()

	case key.Matches(msg, m.keys.NewSession):
		if m.state.RequestState() == core.Loading {
			cmd := m.setStatus("a generation request is still running", core.StatusError)
			return m, cmd
		}
		cmd := batchCmds(
			m.setStatus("Creating session...", core.StatusLoading),
			m.createSessionCmd(),
		)
		return m, cmd

	case key.Matches(msg, m.keys.Copy):
		res, ok := m.state.Result()
		if !ok {
			cmd := m.setStatus("nothing to copy yet", core.StatusError)
			return m, cmd
		}
		// Always the raw stored code, never the escaped display form.
		return m, copyCmd(res.Code)

	case key.Matches(msg, m.keys.Export):
		res, ok := m.state.Result()
		if !ok {
			cmd := m.setStatus("nothing to export yet", core.StatusError)
			return m, cmd
		}
		filename := res.Filename
		if filename == "" {
			filename = "generated." + m.resultLang.Extension()
		}
		return m, exportCmd(filename, res.Code)

	case key.Matches(msg, m.keys.Files):
		m.showFiles = true
		m.filesReady = false
		m.fileList.Select(0)
		return m, m.loadFilesCmd()

	case key.Matches(msg, m.keys.ClearHist):
		sess, ok := m.state.ActiveSession()
		if !ok {
			cmd := m.setStatus(core.ErrNoActiveSession.Error(), core.StatusError)
			return m, cmd
		}
		if m.state.RequestState() == core.Loading {
			cmd := m.setStatus("a generation request is still running", core.StatusError)
			return m, cmd
		}
		cmd := batchCmds(
			m.setStatus("Clearing history...", core.StatusLoading),
			m.clearHistoryCmd(sess.ID),
		)
		return m, cmd

	case key.Matches(msg, m.keys.EndSession):
		sess, ok := m.state.ActiveSession()
		if !ok {
			cmd := m.setStatus(core.ErrNoActiveSession.Error(), core.StatusError)
			return m, cmd
		}
		if m.state.RequestState() == core.Loading {
			cmd := m.setStatus("a generation request is still running", core.StatusError)
			return m, cmd
		}
		cmd := batchCmds(
			m.setStatus("Ending session...", core.StatusLoading),
			m.endSessionCmd(sess.ID),
		)
		return m, cmd

	case key.Matches(msg, m.keys.Notify):
		m.cfg.UI.Notify = !m.cfg.UI.Notify
		return m, saveConfigCmd(m.cfg)

	case key.Matches(msg, m.keys.NextField):
		m.cycleFocus()
		return m, nil

	case msg.Type == tea.KeyEsc:
		if m.previewName != "" {
			m.previewName, m.previewContent = "", ""
		}
		return m, nil
	}

	return m.updateFocused(msg)
}

// submit runs the admission pipeline and, when admitted, suspends into the
// generate call. A request already in flight makes this a silent no-op: no
// status, no queueing.
func (m Model) submit() (tea.Model, tea.Cmd) {
	req := core.GenerationRequest{
		Description: m.input.Value(),
		Language:    m.language(),
		Framework:   strings.TrimSpace(m.framework.Value()),
	}
	item, err := m.state.Admit(req)
	if errors.Is(err, core.ErrRequestInFlight) {
		return m, nil
	}
	if err != nil {
		cmd := m.setStatus(err.Error(), core.StatusError)
		return m, cmd
	}

	sess, _ := m.state.ActiveSession()
	apiReq := api.GenerateRequest{
		Description: item.Request,
		Language:    string(item.Language),
	}
	if item.Framework != "" {
		fw := item.Framework
		apiReq.Framework = &fw
	}
	m.previewName, m.previewContent = "", ""
	cmd := batchCmds(
		m.setStatus("Generating code...", core.StatusLoading),
		m.generateCmd(sess.ID, apiReq, item.Language),
	)
	return m, cmd
}

func (m Model) updateFilesModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.showFiles = false
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		item, ok := m.fileList.SelectedItem().(fileItem)
		if !ok {
			return m, nil
		}
		return m, m.fetchFileCmd(item.info.Filename)

	case key.Matches(msg, m.keys.Delete):
		item, ok := m.fileList.SelectedItem().(fileItem)
		if !ok {
			return m, nil
		}
		return m, m.deleteFileCmd(item.info.Filename)
	}

	var cmd tea.Cmd
	m.fileList, cmd = m.fileList.Update(msg)
	return m, cmd
}

func (m *Model) cycleFocus() {
	m.input.Blur()
	m.framework.Blur()
	switch m.focus {
	case focusInput:
		m.focus = focusLanguage
	case focusLanguage:
		m.focus = focusFramework
		m.framework.Focus()
	default:
		m.focus = focusInput
		m.input.Focus()
	}
}

func (m Model) updateFocused(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusInput:
		m.input, cmd = m.input.Update(msg)
	case focusFramework:
		m.framework, cmd = m.framework.Update(msg)
	case focusLanguage:
		switch msg.String() {
		case "left", "h", "up", "k":
			m.langIndex = (m.langIndex - 1 + len(core.Languages())) % len(core.Languages())
		case "right", "l", "down", "j", " ":
			m.langIndex = (m.langIndex + 1) % len(core.Languages())
		}
	}
	return m, cmd
}

func (m *Model) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}
	contentWidth := m.width - sectionStyle.GetHorizontalFrameSize() - 2
	if contentWidth < 20 {
		contentWidth = 20
	}
	m.input.SetWidth(contentWidth)
	m.framework.Width = min(40, contentWidth)

	listWidth := min(70, m.width-6)
	if listWidth < 40 {
		listWidth = 40
	}
	m.fileList.SetWidth(listWidth)
	m.fileList.SetHeight(min(14, m.height-8))
}

// parseCreatedAt accepts the backend's timestamp formats, falling back to the
// local clock when the payload carries none.
func parseCreatedAt(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05.999999", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Now()
}
