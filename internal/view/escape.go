package view

import (
	"fmt"
	"strings"
)

// Display escaping for untrusted generated text. Generated code is rendered
// inside the terminal UI, so raw control bytes (most importantly ESC) could
// inject cursor movement or styling into the surrounding layout. EscapeDisplay
// rewrites them to visible \xNN sequences; backslash is self-escaped so the
// transformation is exactly reversible. Clipboard and file export always use
// the raw stored string, never the escaped form.

// EscapeDisplay makes s safe to embed in rendered terminal output.
// Newlines and tabs pass through; every other C0 control and DEL becomes a
// \xNN escape.
func EscapeDisplay(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == '\n' || r == '\t':
			b.WriteRune(r)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// UnescapeDisplay inverts EscapeDisplay. Unrecognized escape sequences are
// left as-is so the function is total on arbitrary input.
func UnescapeDisplay(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '\\' || i+1 >= len(runes) {
			b.WriteRune(runes[i])
			continue
		}
		switch runes[i+1] {
		case '\\':
			b.WriteRune('\\')
			i++
		case 'x':
			if i+3 < len(runes) {
				var v int
				if _, err := fmt.Sscanf(string(runes[i+2:i+4]), "%02x", &v); err == nil {
					b.WriteRune(rune(v))
					i += 3
					continue
				}
			}
			b.WriteRune(runes[i])
		default:
			b.WriteRune(runes[i])
		}
	}
	return b.String()
}
