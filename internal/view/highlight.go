package view

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

// Highlight applies terminal syntax highlighting for the given language name,
// using the color scheme matching the configured UI theme. On any lexer or
// formatter failure the code is returned unstyled; display must never fail
// because highlighting did.
func Highlight(code, language, theme string) string {
	var b strings.Builder
	if err := quick.Highlight(&b, code, language, "terminal256", chromaStyle(theme)); err != nil {
		return code
	}
	return b.String()
}

func chromaStyle(theme string) string {
	if theme == "light" {
		return "solarized-light"
	}
	return "monokai"
}
