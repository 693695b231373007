package render

import (
	"fmt"
	"strings"

	"timeline2tikz/internal/drawing"
)

// SVGNamespace is the XML namespace for SVG.
const SVGNamespace = "http://www.w3.org/2000/svg"

// SVGOptions controls the appearance of SVG output. Lengths are in document
// units, which the SVG maps one to one onto millimetres.
type SVGOptions struct {
	FontFamily      string
	FontSize        float64
	BackgroundColor string
	FrameColor      string
	GridlineColor   string
	TextColor       string
	BarColor        string
	LineWidth       float64
	BarHeight       float64
	// FrameStyle is the style name the chart gives its frame lines.
	FrameStyle string
}

// DefaultSVGOptions returns the stock SVG appearance.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		FontFamily:      "Arial, sans-serif",
		FontSize:        2.5,
		BackgroundColor: "#ffffff",
		FrameColor:      "#333333",
		GridlineColor:   "#cccccc",
		TextColor:       "#333333",
		BarColor:        "#4285f4",
		LineWidth:       0.2,
		BarHeight:       3,
		FrameStyle:      "frame",
	}
}

// SVG writes primitives as a standalone SVG document. Document y grows
// upwards, so every y coordinate is negated on the way out.
type SVG struct {
	opts SVGOptions
	sb   strings.Builder
}

// NewSVG returns an empty SVG canvas.
func NewSVG(opts SVGOptions) *SVG {
	return &SVG{opts: opts}
}

func (s *SVG) Begin(bounds drawing.Rect) {
	o := s.opts
	w, h := num(bounds.Width()), num(bounds.Height())
	minX, minY := num(bounds.Min.X), num(-bounds.Max.Y)

	fmt.Fprintf(&s.sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="%s" width="%smm" height="%smm" viewBox="%s %s %s %s">
<style>
line { stroke: %s; stroke-width: %s; }
line.%s { stroke: %s; }
text { font-family: %s; font-size: %spx; fill: %s; text-anchor: middle; dominant-baseline: middle; }
rect:not(.background) { fill: %s; }
</style>
<rect class="background" x="%s" y="%s" width="%s" height="%s" fill="%s"/>
`, SVGNamespace, w, h, minX, minY, w, h,
		o.GridlineColor, num(o.LineWidth),
		EscapeXML(o.FrameStyle), o.FrameColor,
		EscapeXML(o.FontFamily), num(o.FontSize), o.TextColor,
		o.BarColor,
		minX, minY, w, h, o.BackgroundColor)
}

func (s *SVG) Comment(text string) {
	text = plainLine(text)
	for strings.Contains(text, "--") {
		text = strings.ReplaceAll(text, "--", "- -")
	}
	fmt.Fprintf(&s.sb, "<!-- %s -->\n", text)
}

func (s *SVG) Line(from, to drawing.Point, style string) {
	fmt.Fprintf(&s.sb, `<line class="%s" x1="%s" y1="%s" x2="%s" y2="%s"/>`+"\n",
		EscapeXML(style), num(from.X), num(-from.Y), num(to.X), num(-to.Y))
}

// Label ignores width: SVG text does not wrap.
func (s *SVG) Label(at drawing.Point, _ float64, style, text string) {
	fmt.Fprintf(&s.sb, `<text class="%s" x="%s" y="%s">%s</text>`+"\n",
		EscapeXML(style), num(at.X), num(-at.Y), EscapeXML(text))
}

func (s *SVG) Bar(from, to drawing.Point, style string) {
	h := s.opts.BarHeight
	fmt.Fprintf(&s.sb, `<rect class="%s" x="%s" y="%s" width="%s" height="%s"/>`+"\n",
		EscapeXML(style), num(from.X), num(-from.Y-h/2), num(to.X-from.X), num(h))
}

func (s *SVG) End() {
	s.sb.WriteString("</svg>\n")
}

func (s *SVG) String() string {
	return s.sb.String()
}
