package chart

import (
	"fmt"
	"math"
	"strings"
	"time"

	"timeline2tikz/internal/drawing"
	"timeline2tikz/internal/failure"
)

// MinXAxisLength is the narrowest plot area BuildLayout accepts.
const MinXAxisLength = 1.0

// Layout is the resolved geometry of a chart. It is never modified after
// BuildLayout returns; accessors hand out copies of its slices.
type Layout struct {
	settings              Settings
	styles                Styles
	xAxisLength           float64
	yAxisLength           float64
	tickDates             []time.Time
	tickXCoordinates      []float64
	yAxisLabelXCoordinate float64
	itemYCoordinates      []float64
}

// BuildLayout computes the layout of items under s. Every geometry problem is
// reported in a single failure.ErrLayout error, in which case the layout is nil.
func BuildLayout(s Settings, items []Item) (*Layout, error) {
	l := &Layout{
		settings:              s,
		styles:                DefaultStyles(),
		tickDates:             TickDates(itemsDateRange(items)),
		xAxisLength:           XAxisLength(s),
		yAxisLength:           float64(len(items)+1) * s.LineHeight,
		yAxisLabelXCoordinate: -(s.YLabelWidth/2 + s.XLabelWidth/2),
		itemYCoordinates:      itemYCoordinates(s.LineHeight, len(items)),
	}
	l.tickXCoordinates = TickXCoordinates(len(l.tickDates), l.xAxisLength)

	if err := l.check(); err != nil {
		return nil, err
	}
	return l, nil
}

// XAxisLength is the width of the plot area: the chart width less the item
// label column and half an axis label on either side.
func XAxisLength(s Settings) float64 {
	return s.ChartWidth - s.YLabelWidth - s.XLabelWidth
}

// TickXCoordinates spaces n ticks evenly over 0..length.
func TickXCoordinates(n int, length float64) []float64 {
	if n < 2 {
		return make([]float64, n)
	}
	coords := make([]float64, n)
	for i := range coords {
		coords[i] = length * float64(i) / float64(n-1)
	}
	coords[n-1] = length
	return coords
}

// itemYCoordinates places n rows from lineHeight*n down to lineHeight. The
// extra line in the y axis length leaves half a line above and below.
func itemYCoordinates(lineHeight float64, n int) []float64 {
	coords := make([]float64, n)
	for i := range coords {
		coords[i] = lineHeight * float64(n-i)
	}
	return coords
}

func (l *Layout) check() error {
	problems := l.settings.nonFinite()
	if len(problems) == 0 && !(l.xAxisLength >= MinXAxisLength) {
		problems = append(problems, fmt.Sprintf(
			"plot area is too narrow (%g, min is %g); is chart_width too small, or x_label_width or y_label_width too large?",
			l.xAxisLength, MinXAxisLength))
	}
	if len(l.tickDates) < 2 || !l.tickDates[0].Before(l.tickDates[len(l.tickDates)-1]) {
		problems = append(problems, "date axis has no extent; first and last tick fall on the same date")
	}
	return failure.Collect(failure.ErrLayout, joinProblems(problems), problems)
}

func joinProblems(problems []string) string {
	if len(problems) == 1 {
		return problems[0]
	}
	return fmt.Sprintf("%d layout errors: %s", len(problems), strings.Join(problems, "; "))
}

// WithStyles returns a copy of l whose builders use styles.
func (l *Layout) WithStyles(styles Styles) *Layout {
	c := *l
	c.styles = styles
	return &c
}

func (l *Layout) Settings() Settings             { return l.settings }
func (l *Layout) Styles() Styles                 { return l.styles }
func (l *Layout) XAxisLength() float64           { return l.xAxisLength }
func (l *Layout) YAxisLength() float64           { return l.yAxisLength }
func (l *Layout) YAxisLabelXCoordinate() float64 { return l.yAxisLabelXCoordinate }

func (l *Layout) TickDates() []time.Time {
	return append([]time.Time(nil), l.tickDates...)
}

func (l *Layout) TickXCoordinates() []float64 {
	return append([]float64(nil), l.tickXCoordinates...)
}

// ItemYCoordinates returns one row coordinate per item, in input order.
func (l *Layout) ItemYCoordinates() []float64 {
	return append([]float64(nil), l.itemYCoordinates...)
}

// DateToX maps a date onto the x axis by whole days elapsed since the first tick.
func (l *Layout) DateToX(d time.Time) (float64, error) {
	first, last := l.tickDates[0], l.tickDates[len(l.tickDates)-1]
	span := daysBetween(first, last)
	if span == 0 {
		return 0, failure.New(failure.ErrLayout, "cannot map %s onto a date axis with no extent", d.Format(time.DateOnly))
	}
	return l.xAxisLength * float64(daysBetween(first, d)) / float64(span), nil
}

func daysBetween(from, to time.Time) int64 {
	return julianDay(to) - julianDay(from)
}

// julianDay numbers the calendar day of t, counting from the Unix epoch.
func julianDay(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

// Bounds covers everything the chart draws: the item label column on the
// left, half an axis label past the right end and the axis labels below.
func (l *Layout) Bounds() drawing.Rect {
	s := l.settings
	bottom := min(0, s.XLabelYCoordinate-s.LineHeight/2)
	return drawing.Rect{
		Min: drawing.XY(l.yAxisLabelXCoordinate-s.YLabelWidth/2, bottom),
		Max: drawing.XY(l.xAxisLength+s.XLabelWidth/2, l.yAxisLength),
	}
}

// nonFinite reports every setting that is NaN or infinite.
func (s Settings) nonFinite() []string {
	var problems []string
	for _, f := range s.fields() {
		if math.IsNaN(f.Value) || math.IsInf(f.Value, 0) {
			problems = append(problems, fmt.Sprintf("setting %s must be a finite number, got %g", f.Key, f.Value))
		}
	}
	return problems
}
