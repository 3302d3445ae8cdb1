// Package view projects the orchestration core's data model into renderable
// text. Functions here are pure: no state, no timers, no bubbletea types, so
// the state machine and its presentation stay independently testable.
package view

import (
	"fmt"
	"strings"

	"github.com/codesmithlabs/codesmith/internal/core"
)

// FormatExecutionTime renders elapsed seconds to two decimal places.
func FormatExecutionTime(seconds float64) string {
	return fmt.Sprintf("%.2fs", seconds)
}

// FormatDependencies joins a dependency list for display, with an explicit
// marker when the list is empty.
func FormatDependencies(deps []string) string {
	if len(deps) == 0 {
		return "none"
	}
	return strings.Join(deps, ", ")
}

// HistoryLines projects the conversation log into display lines, oldest
// first. Request text goes through display escaping like any other
// backend-influenced string.
func HistoryLines(items []core.HistoryItem) []string {
	lines := make([]string, 0, len(items)*3)
	for _, item := range items {
		meta := string(item.Language)
		if item.Framework != "" {
			meta += " / " + item.Framework
		}
		lines = append(lines, fmt.Sprintf("[%s] %s  (%s)",
			item.Timestamp.Format("15:04:05"), EscapeDisplay(item.Request), meta))
		if item.Description != "" {
			lines = append(lines, "  → "+EscapeDisplay(item.Description))
		} else {
			lines = append(lines, "  → (no response)")
		}
	}
	return lines
}

// ResultView is the renderable projection of a GenerationResult.
type ResultView struct {
	Filename     string
	Code         string // escaped and syntax-highlighted
	Dependencies string
	Elapsed      string
}

// ProjectResult builds the display form of a result. The code field is
// escaped first and highlighted second, so embedded control bytes are
// neutralized before any styling is added.
func ProjectResult(res core.GenerationResult, lang core.Language, theme string) ResultView {
	return ResultView{
		Filename:     EscapeDisplay(res.Filename),
		Code:         Highlight(EscapeDisplay(res.Code), string(lang), theme),
		Dependencies: FormatDependencies(res.Dependencies),
		Elapsed:      FormatExecutionTime(res.ExecutionTime),
	}
}
