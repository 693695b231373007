package render

import (
	"strings"
	"unicode"
)

// LaTeX special characters that require escaping inside node text.
var latexSpecialChars = map[rune]string{
	'\\': `\textbackslash{}`,
	'{':  `\{`,
	'}':  `\}`,
	'$':  `\$`,
	'&':  `\&`,
	'#':  `\#`,
	'%':  `\%`,
	'_':  `\_`,
	'^':  `\textasciicircum{}`,
	'~':  `\textasciitilde{}`,
}

// xmlSpecialChars are replaced by their entity references in SVG text.
var xmlSpecialChars = map[rune]string{
	'&':  "&amp;",
	'<':  "&lt;",
	'>':  "&gt;",
	'"':  "&quot;",
	'\'': "&apos;",
}

// escapeWith rewrites s through table. Line breaks and tabs become spaces and
// every other control character is dropped.
func escapeWith(s string, table map[rune]string) string {
	if s == "" {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(s) * 2)
	for _, r := range s {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			sb.WriteRune(' ')
		case unicode.IsControl(r):
			// dropped
		default:
			if escaped, ok := table[r]; ok {
				sb.WriteString(escaped)
			} else {
				sb.WriteRune(r)
			}
		}
	}
	return sb.String()
}

// EscapeLaTeX makes s safe to place inside a TikZ node.
func EscapeLaTeX(s string) string {
	return escapeWith(s, latexSpecialChars)
}

// EscapeXML makes s safe to place inside an SVG element or attribute.
func EscapeXML(s string) string {
	return escapeWith(s, xmlSpecialChars)
}

// plainLine strips control characters so s fits on one comment line.
func plainLine(s string) string {
	return escapeWith(s, nil)
}
