// Package chart computes the geometry of a timeline chart and reduces it to
// drawing primitives.
//
// A chart has a date axis along the bottom of the plot area and one row per
// item. BuildLayout turns Settings and the items into a Layout; New pairs the
// layout with the items and produces the drawing blocks in emission order.
package chart

import (
	"regexp"
	"time"

	"timeline2tikz/internal/drawing"
)

// Settings are the chart-wide dimensions, in document units.
type Settings struct {
	ChartWidth        float64
	XLabelWidth       float64
	YLabelWidth       float64
	LineHeight        float64
	XLabelYCoordinate float64
}

// settingField is one named dimension of Settings.
type settingField struct {
	Key   string
	Value float64
}

// fields lists the settings under their input file keys.
func (s Settings) fields() []settingField {
	return []settingField{
		{"chart_width", s.ChartWidth},
		{"line_height", s.LineHeight},
		{"x_label_width", s.XLabelWidth},
		{"y_label_width", s.YLabelWidth},
		{"x_label_y_coordinate", s.XLabelYCoordinate},
	}
}

// DefaultSettings returns the dimensions used when the input omits them.
func DefaultSettings() Settings {
	return Settings{
		ChartWidth:        164.99,
		XLabelWidth:       10,
		YLabelWidth:       24,
		LineHeight:        4.6,
		XLabelYCoordinate: -3,
	}
}

// Styles names the styles attached to the primitives a chart emits.
type Styles struct {
	Frame    string
	Gridline string
	XLabel   string
	YLabel   string
	Bar      string // used by entries that carry no style of their own
}

// styleName matches the style names a chart accepts: a letter followed by
// letters, digits, spaces, underscores or dashes.
var styleName = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9 _-]*$`)

// ValidStyle reports whether name can be written into a TikZ option list or
// an SVG class attribute as is.
func ValidStyle(name string) bool {
	return styleName.MatchString(name)
}

// DefaultStyles returns the style names of a stock TikZ preamble.
func DefaultStyles() Styles {
	return Styles{
		Frame:    "frame",
		Gridline: "gridline",
		XLabel:   "xlabel",
		YLabel:   "ylabel",
		Bar:      "bar",
	}
}

// DateRange is an inclusive span of calendar days.
type DateRange struct {
	Begin time.Time
	End   time.Time
}

// Date returns midnight UTC of the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Item is one row of the chart.
type Item interface {
	// DateRanges returns the spans the item covers; separators have none.
	DateRanges() []DateRange
	// Build reduces the item to primitives on the row at y.
	Build(l *Layout, y float64) (drawing.Block, error)
}

// Entry is a labeled row with one bar per date range.
type Entry struct {
	Label  string
	Style  string
	Ranges []DateRange
}

func (e Entry) DateRanges() []DateRange { return e.Ranges }

// Build emits the row label, the row guideline and a bar per date range. Each
// bar ends at the start of the day after the range's last day.
func (e Entry) Build(l *Layout, y float64) (drawing.Block, error) {
	styles := l.Styles()
	prims := []drawing.Primitive{
		drawing.Label{
			At:    drawing.XY(l.YAxisLabelXCoordinate(), y),
			Width: l.settings.YLabelWidth,
			Style: styles.YLabel,
			Text:  e.Label,
		},
		drawing.Line{From: drawing.XY(0, y), To: drawing.XY(l.XAxisLength(), y), Style: styles.Gridline},
	}

	style := e.Style
	if style == "" {
		style = styles.Bar
	}
	for _, r := range e.Ranges {
		from, err := l.DateToX(r.Begin)
		if err != nil {
			return drawing.Block{}, err
		}
		to, err := l.DateToX(r.End.AddDate(0, 0, 1))
		if err != nil {
			return drawing.Block{}, err
		}
		prims = append(prims, drawing.Bar{From: drawing.XY(from, y), To: drawing.XY(to, y), Style: style})
	}
	return drawing.Block{Comment: e.Label, Primitives: prims}, nil
}

// Separator is a row holding only a horizontal guideline.
type Separator struct{}

func (Separator) DateRanges() []DateRange { return nil }

func (Separator) Build(l *Layout, y float64) (drawing.Block, error) {
	line := drawing.Line{From: drawing.XY(0, y), To: drawing.XY(l.XAxisLength(), y), Style: l.Styles().Gridline}
	return drawing.Block{Comment: "separator", Primitives: []drawing.Primitive{line}}, nil
}
