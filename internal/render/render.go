// Package render walks a laid-out chart and serializes its primitives as a
// TikZ picture or an SVG document.
package render

import (
	"fmt"
	"path/filepath"
	"strings"

	"timeline2tikz/internal/chart"
	"timeline2tikz/internal/drawing"
)

// Format names an output document type.
type Format string

const (
	FormatTikZ Format = "tikz"
	FormatSVG  Format = "svg"
)

// ParseFormat accepts a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTikZ, FormatSVG:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (must be tikz or svg)", s)
}

// FormatFor guesses the output format from a file name: ".svg" files get
// SVG, everything else TikZ.
func FormatFor(filename string) Format {
	if strings.EqualFold(filepath.Ext(filename), ".svg") {
		return FormatSVG
	}
	return FormatTikZ
}

// NewCanvas returns an empty canvas for f.
func NewCanvas(f Format, svg SVGOptions) drawing.Canvas {
	if f == FormatSVG {
		return NewSVG(svg)
	}
	return NewTikZ()
}

// Render draws c onto cv and returns the finished document: the preamble,
// the frame, the axis ticks in ascending date order, the items in input
// order and the closing marker. Nothing is written to cv if c fails to
// produce its primitives.
func Render(c *chart.Chart, cv drawing.Canvas) (string, error) {
	blocks, err := c.Blocks()
	if err != nil {
		return "", err
	}
	cv.Begin(c.Layout().Bounds())
	for _, b := range blocks {
		b.Draw(cv)
	}
	cv.End()
	return cv.String(), nil
}
