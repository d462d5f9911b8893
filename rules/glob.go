package rules

import (
	"path"
	"strings"
)

// translateGlob rewrites a shell-style pattern into path.Match syntax.
// Backslashes are literal in shell patterns, "[!" negates a class, a "]"
// directly after "[" or "[!" is a class member, and a "[" without a
// closing "]" is literal.
func translateGlob(pattern string) string {
	var b strings.Builder
	n := len(pattern)
	for i := 0; i < n; i++ {
		c := pattern[i]
		switch c {
		case '\\':
			b.WriteString(`\\`)
		case '[':
			j := i + 1
			if j < n && pattern[j] == '!' {
				j++
			}
			if j < n && pattern[j] == ']' {
				j++
			}
			for j < n && pattern[j] != ']' {
				j++
			}
			if j >= n {
				b.WriteString(`\[`)
				continue
			}
			writeClass(&b, pattern[i+1:j])
			i = j
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// writeClass emits a bracket expression for body, the text between "[" and "]".
func writeClass(b *strings.Builder, body string) {
	b.WriteByte('[')
	if strings.HasPrefix(body, "!") {
		b.WriteByte('^')
		body = body[1:]
	}
	for k := 0; k < len(body); k++ {
		c := body[k]
		switch {
		case c == '\\' || c == ']' || c == '^' || c == '[':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c == '-' && (k == 0 || k == len(body)-1):
			b.WriteString(`\-`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte(']')
}

func compileGlob(pattern string) (string, error) {
	translated := translateGlob(pattern)
	for _, sample := range []string{"", "x"} {
		if _, err := path.Match(translated, sample); err != nil {
			return "", err
		}
	}
	return translated, nil
}

func matchGlob(translated, name string) bool {
	ok, _ := path.Match(translated, name)
	return ok
}
