package tui

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/codesmithlabs/codesmith/internal/api"
	"github.com/codesmithlabs/codesmith/internal/config"
	"github.com/codesmithlabs/codesmith/internal/core"
)

// Every network call runs inside a tea.Cmd closure and re-enters Update as
// one of these messages. State mutation only ever happens in Update, which
// keeps the single-flight flag safe without locks.

type sessionCreatedMsg struct {
	info api.SessionInfo
	err  error
}

type generateDoneMsg struct {
	resp api.GenerateResponse
	lang core.Language
	err  error
}

type statusExpiredMsg struct {
	seq int
}

type healthCheckedMsg struct {
	info api.HealthInfo
	err  error
}

type filesLoadedMsg struct {
	list api.FileList
	err  error
}

type fileFetchedMsg struct {
	name    string
	content string
	err     error
}

type fileDeletedMsg struct {
	name string
	err  error
}

type historyClearedMsg struct {
	err error
}

type sessionEndedMsg struct {
	err error
}

type copyDoneMsg struct {
	err error
}

type exportDoneMsg struct {
	path string
	err  error
}

type settingsSavedMsg struct {
	err error
}

func (m Model) createSessionCmd() tea.Cmd {
	return func() tea.Msg {
		info, err := m.client.CreateSession(context.Background())
		return sessionCreatedMsg{info: info, err: err}
	}
}

func (m Model) generateCmd(sessionID string, req api.GenerateRequest, lang core.Language) tea.Cmd {
	return func() tea.Msg {
		resp, err := m.client.GenerateCode(context.Background(), sessionID, req)
		return generateDoneMsg{resp: resp, lang: lang, err: err}
	}
}

func (m Model) healthCmd() tea.Cmd {
	return func() tea.Msg {
		info, err := m.client.Health(context.Background())
		return healthCheckedMsg{info: info, err: err}
	}
}

func (m Model) loadFilesCmd() tea.Cmd {
	return func() tea.Msg {
		list, err := m.client.ListFiles(context.Background())
		return filesLoadedMsg{list: list, err: err}
	}
}

func (m Model) fetchFileCmd(name string) tea.Cmd {
	return func() tea.Msg {
		content, err := m.client.DownloadFile(context.Background(), name)
		return fileFetchedMsg{name: name, content: content, err: err}
	}
}

func (m Model) deleteFileCmd(name string) tea.Cmd {
	return func() tea.Msg {
		err := m.client.DeleteFile(context.Background(), name)
		return fileDeletedMsg{name: name, err: err}
	}
}

func (m Model) clearHistoryCmd(sessionID string) tea.Cmd {
	return func() tea.Msg {
		return historyClearedMsg{err: m.client.ClearSession(context.Background(), sessionID)}
	}
}

func (m Model) endSessionCmd(sessionID string) tea.Cmd {
	return func() tea.Msg {
		return sessionEndedMsg{err: m.client.DeleteSession(context.Background(), sessionID)}
	}
}

func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return copyDoneMsg{err: clipboard.WriteAll(text)}
	}
}

func exportCmd(filename, code string) tea.Cmd {
	return func() tea.Msg {
		cwd, err := os.Getwd()
		if err != nil {
			return exportDoneMsg{err: err}
		}
		path := filepath.Join(cwd, filepath.Base(filename))
		if err := os.WriteFile(path, []byte(code), 0o644); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{path: path}
	}
}

func saveConfigCmd(cfg config.Config) tea.Cmd {
	return func() tea.Msg {
		return settingsSavedMsg{err: config.Save(cfg)}
	}
}

func notifyCmd(title, body string) tea.Cmd {
	return func() tea.Msg {
		// Best effort: a failed desktop notification must not disturb the session.
		_ = beeep.Notify(title, body, "")
		return nil
	}
}

func (m Model) expireStatusCmd(seq int) tea.Cmd {
	return tea.Tick(m.dismissAfter, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}
