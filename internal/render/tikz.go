package render

import (
	"fmt"
	"strings"

	"timeline2tikz/internal/drawing"
)

// TikZ writes primitives as the body of a TikZ picture. Coordinates are
// emitted in millimetres with two decimals; styles are left to the
// including document to define.
type TikZ struct {
	sb strings.Builder
}

// NewTikZ returns an empty TikZ canvas.
func NewTikZ() *TikZ {
	return &TikZ{}
}

func (t *TikZ) Begin(drawing.Rect) {
	t.sb.WriteString("\\tikzpicture\n\n")
}

func (t *TikZ) Comment(text string) {
	fmt.Fprintf(&t.sb, "%% %s\n", plainLine(text))
}

func (t *TikZ) Line(from, to drawing.Point, style string) {
	fmt.Fprintf(&t.sb, "\\draw [%s] (%smm, %smm) -- (%smm, %smm);\n",
		style, num(from.X), num(from.Y), num(to.X), num(to.Y))
}

func (t *TikZ) Label(at drawing.Point, width float64, style, text string) {
	fmt.Fprintf(&t.sb, "\\node [%s, text width = %smm] at (%smm, %smm) {%s};\n",
		style, num(width), num(at.X), num(at.Y), EscapeLaTeX(text))
}

func (t *TikZ) Bar(from, to drawing.Point, style string) {
	mid := (from.X + to.X) / 2
	fmt.Fprintf(&t.sb, "\\node [%s, minimum width = %smm] at (%smm, %smm) {};\n",
		style, num(to.X-from.X), num(mid), num(from.Y))
}

func (t *TikZ) End() {
	t.sb.WriteString("\n\\endtikzpicture\n")
}

func (t *TikZ) String() string {
	return t.sb.String()
}

// num formats a coordinate with two decimals and never prints a negative zero.
func num(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	if s == "-0.00" {
		return "0.00"
	}
	return s
}
