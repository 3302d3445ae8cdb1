package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/codesmithlabs/codesmith/internal/core"
	"github.com/codesmithlabs/codesmith/internal/view"
)

const (
	historyMaxLines = 10
	codeMaxLines    = 16
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("codesmith") + "  " + metaStyle.Render(m.sessionLabel()))
	b.WriteString("\n\n")
	b.WriteString(m.renderSection("Request", m.renderRequest()))
	b.WriteString("\n")
	b.WriteString(m.renderSection("History", m.renderHistory()))
	b.WriteString("\n")
	b.WriteString(m.renderSection(m.resultTitle(), m.renderResult()))

	body := b.String()
	if m.showFiles {
		body = m.composeModal(body)
	}
	return m.placeWithFooter(body)
}

func (m Model) sessionLabel() string {
	sess, ok := m.state.ActiveSession()
	if !ok {
		return "no session (ctrl+n to start)"
	}
	id := sess.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("session %s · started %s", id, sess.CreatedAt.Format("15:04:05"))
}

func (m Model) renderRequest() string {
	var b strings.Builder
	b.WriteString(m.fieldLabel("description", focusInput))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.fieldLabel("language", focusLanguage))
	b.WriteString("  ")
	b.WriteString(m.renderLanguageSelector())
	b.WriteString("\n")
	b.WriteString(m.fieldLabel("framework", focusFramework))
	b.WriteString("  ")
	b.WriteString(m.framework.View())
	return b.String()
}

func (m Model) fieldLabel(name string, area focusArea) string {
	if m.focus == area {
		return focusedLabelStyle.Render("▸ " + name)
	}
	return labelStyle.Render("  " + name)
}

func (m Model) renderLanguageSelector() string {
	parts := make([]string, 0, len(core.Languages()))
	for i, l := range core.Languages() {
		label := string(l)
		if i == m.langIndex {
			label = focusedLabelStyle.Render("[" + label + "]")
		} else {
			label = metaStyle.Render(label)
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " ")
}

func (m Model) renderHistory() string {
	items := m.state.History()
	if len(items) == 0 {
		return pendingStyle.Render("(empty)")
	}
	lines := view.HistoryLines(items)
	if len(lines) > historyMaxLines {
		hidden := len(lines) - historyMaxLines
		lines = append([]string{pendingStyle.Render(fmt.Sprintf("… %d earlier lines", hidden))}, lines[hidden:]...)
	}
	return strings.Join(lines, "\n")
}

func (m Model) resultTitle() string {
	if m.previewName != "" {
		return "File: " + m.previewName
	}
	return "Result"
}

func (m Model) renderResult() string {
	if m.previewName != "" {
		return capCode(view.Highlight(view.EscapeDisplay(m.previewContent), languageForFile(m.previewName), m.cfg.UI.Theme))
	}

	res, ok := m.state.Result()
	if !ok {
		if m.state.RequestState() == core.Loading {
			return pendingStyle.Render("generating…")
		}
		return pendingStyle.Render("(no result)")
	}

	v := view.ProjectResult(res, m.resultLang, m.cfg.UI.Theme)
	header := fmt.Sprintf("%s  %s  deps: %s",
		titleStyle.Render(v.Filename),
		metaStyle.Render(v.Elapsed),
		metaStyle.Render(v.Dependencies))
	return header + "\n\n" + capCode(v.Code)
}

// capCode limits the rendered code block; the full text is always available
// through copy and export.
func capCode(code string) string {
	lines := strings.Split(strings.TrimRight(code, "\n"), "\n")
	if len(lines) <= codeMaxLines {
		return strings.Join(lines, "\n")
	}
	shown := lines[:codeMaxLines]
	return strings.Join(shown, "\n") + "\n" +
		pendingStyle.Render(fmt.Sprintf("… %d more lines (ctrl+y to copy all)", len(lines)-codeMaxLines))
}

func languageForFile(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		for _, l := range core.Languages() {
			if l.Extension() == name[i+1:] {
				return string(l)
			}
		}
	}
	return ""
}

func (m Model) renderSection(title, content string) string {
	header := titleStyle.Render(title)
	section := header + "\n" + sectionStyle.Width(m.sectionWidth()).Render(content)
	return section + "\n"
}

func (m Model) sectionWidth() int {
	if m.width == 0 {
		return 80
	}
	width := m.width - 4
	if width < 20 {
		width = m.width
	}
	return width
}

func (m Model) renderStatus() string {
	message, kind := m.notifier.Current()
	var text string
	switch kind {
	case core.StatusLoading:
		text = loadingStyle.Render("… " + message)
	case core.StatusSuccess:
		text = successStyle.Render("✓ " + message)
	case core.StatusError:
		text = errorStyle.Render("✗ " + message)
	default:
		text = ""
	}
	if m.width == 0 {
		return statusBarStyle.Render(text)
	}
	flat := strings.ReplaceAll(text, "\n", " ")
	return statusBarStyle.Render(padRight(flat, m.width-statusBarStyle.GetHorizontalFrameSize()))
}

func (m Model) renderFooter() string {
	var bindings []key.Binding
	if m.showFiles {
		bindings = m.modalKeys.ShortHelp()
	} else {
		bindings = m.keys.ShortHelp()
	}
	text := renderHelp(bindings)
	if m.width == 0 {
		return footerStyle.Render(text)
	}
	flat := strings.ReplaceAll(text, "\n", " ")
	return footerStyle.Render(padRight(flat, m.width-footerStyle.GetHorizontalFrameSize()))
}

func (m Model) composeModal(base string) string {
	content := m.fileList.View()
	if !m.filesReady {
		content = "Loading files..."
	}
	modal := modalStyle.Render(lipgloss.NewStyle().Width(m.fileList.Width()).Render(content))
	if m.height == 0 || m.width == 0 {
		return base + "\n\n" + modal
	}
	return lipgloss.Place(m.width, lipgloss.Height(base), lipgloss.Center, lipgloss.Center, modal)
}

func (m Model) placeWithFooter(body string) string {
	statusLine := m.renderStatus()
	footer := m.renderFooter()
	if m.height == 0 {
		return body + "\n" + statusLine + "\n" + footer
	}
	contentHeight := m.height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}
	if lipgloss.Height(body) >= contentHeight {
		return body + "\n" + statusLine + "\n" + footer
	}
	main := lipgloss.Place(m.width, contentHeight, lipgloss.Left, lipgloss.Top, body)
	return main + "\n" + statusLine + "\n" + footer
}

func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, boldKey(help.Key)+" "+help.Desc)
	}
	return strings.Join(parts, "  ")
}

func boldKey(text string) string {
	if text == "" {
		return ""
	}
	return helpKeyStyle.Render(text)
}
