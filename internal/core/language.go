package core

import (
	"fmt"

	"github.com/agnivade/levenshtein"
)

// Language is one of the generation targets the backend accepts.
type Language string

const (
	LangPython     Language = "python"
	LangJavaScript Language = "javascript"
	LangTypeScript Language = "typescript"
	LangJava       Language = "java"
	LangGo         Language = "go"
	LangRust       Language = "rust"
	LangCPP        Language = "cpp"
	LangC          Language = "c"
	LangCSharp     Language = "csharp"
)

// Languages returns the supported set in selector display order.
func Languages() []Language {
	return []Language{
		LangPython, LangJavaScript, LangTypeScript, LangJava,
		LangGo, LangRust, LangCPP, LangC, LangCSharp,
	}
}

// ParseLanguage validates a user- or config-supplied language name. Unknown
// names produce an error that suggests the closest supported value when one
// is within editing distance 2.
func ParseLanguage(s string) (Language, error) {
	for _, l := range Languages() {
		if string(l) == s {
			return l, nil
		}
	}
	if suggestion := closestLanguage(s); suggestion != "" {
		return "", fmt.Errorf("unsupported language %q (did you mean %q?)", s, suggestion)
	}
	return "", fmt.Errorf("unsupported language %q", s)
}

func closestLanguage(s string) Language {
	best, bestDist := Language(""), 3
	for _, l := range Languages() {
		if d := levenshtein.ComputeDistance(s, string(l)); d < bestDist {
			best, bestDist = l, d
		}
	}
	return best
}

// Extension returns the file extension used when exporting generated code.
func (l Language) Extension() string {
	switch l {
	case LangPython:
		return "py"
	case LangJavaScript:
		return "js"
	case LangTypeScript:
		return "ts"
	case LangJava:
		return "java"
	case LangGo:
		return "go"
	case LangRust:
		return "rs"
	case LangCPP:
		return "cpp"
	case LangC:
		return "c"
	case LangCSharp:
		return "cs"
	default:
		return "txt"
	}
}
