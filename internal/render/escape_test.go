package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLaTeX(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{`a\b`, `a\textbackslash{}b`},
		{"{x}", `\{x\}`},
		{"$5 & 10% #1 a_b", `\$5 \& 10\% \#1 a\_b`},
		{"x^2 ~y", `x\textasciicircum{} \textasciitilde{}y`},
		{"line\none\ttab\r", "line one tab "},
		{"bell\x07null\x00", "bellnull"},
		{"Zürich – 東京", "Zürich – 東京"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EscapeLaTeX(tt.in), tt.in)
	}
}

func TestEscapeXML(t *testing.T) {
	assert.Equal(t, "&lt;a href=&quot;x&quot;&gt;Tom &amp; Jerry&apos;s&lt;/a&gt;", EscapeXML(`<a href="x">Tom & Jerry's</a>`))
	assert.Equal(t, "a b", EscapeXML("a\nb\x1b"))
}

func TestSVGCommentAvoidsDoubleHyphen(t *testing.T) {
	s := NewSVG(DefaultSVGOptions())
	s.Comment("a---b")
	assert.Equal(t, "<!-- a- - -b -->\n", s.String())
}

func TestNumNeverNegativeZero(t *testing.T) {
	assert.Equal(t, "0.00", num(-0.001))
	assert.Equal(t, "-0.01", num(-0.009))
	assert.Equal(t, "164.99", num(164.99))
}
