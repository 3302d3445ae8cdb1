package view

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEscapeDisplayRoundTrip(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"",
		"def add(a, b):\n    return a + b\n",
		`path\to\file and a literal \x1b that is text`,
		"\x1b[31mred\x1b[0m",
		"bell\x07 and backspace\x08 and del\x7f",
		"tabs\tand\nnewlines survive",
		"unicode: 한글 · ümlaut · 🚀",
		"\\",
		"\\x",
		"trailing backslash \\",
	}
	for _, in := range inputs {
		require.Equal(t, in, UnescapeDisplay(EscapeDisplay(in)), "round trip failed for %q", in)
	}
}

func TestEscapeDisplayNeutralizesControlBytes(t *testing.T) {
	t.Parallel()
	out := EscapeDisplay("\x1b[2Jcleared")
	require.NotContains(t, out, "\x1b")
	require.Contains(t, out, `\x1b`)
}

func TestEscapeDisplayKeepsPlainCodeReadable(t *testing.T) {
	t.Parallel()
	code := "func main() {\n\tfmt.Println(\"hi\")\n}\n"
	require.Equal(t, code, EscapeDisplay(code))
}

func TestUnescapeDisplayTotalOnGarbage(t *testing.T) {
	t.Parallel()
	// Sequences that EscapeDisplay never produces pass through unchanged.
	for _, s := range []string{`\q`, `\x`, `\xzz`, `\x1`} {
		require.Equal(t, s, UnescapeDisplay(s))
	}
}
