package chart

import (
	"fmt"
	"strconv"
	"time"

	"timeline2tikz/internal/drawing"
)

// Chart is a laid-out set of items ready to be drawn.
type Chart struct {
	layout *Layout
	items  []Item
}

// New pairs a layout with the items it was built from. The items keep their
// input order: row i is drawn at the layout's i-th item coordinate.
func New(l *Layout, items []Item) (*Chart, error) {
	if n := len(l.itemYCoordinates); n != len(items) {
		return nil, fmt.Errorf("layout has %d rows for %d items", n, len(items))
	}
	return &Chart{layout: l, items: items}, nil
}

func (c *Chart) Layout() *Layout { return c.layout }
func (c *Chart) Items() []Item   { return c.items }

// Frame returns the border around the plot area.
func (c *Chart) Frame() drawing.Block {
	l := c.layout
	style := l.styles.Frame
	w, h := l.xAxisLength, l.yAxisLength
	corners := []drawing.Point{drawing.XY(0, 0), drawing.XY(w, 0), drawing.XY(w, h), drawing.XY(0, h)}
	prims := make([]drawing.Primitive, 0, len(corners))
	for i, from := range corners {
		to := corners[(i+1)%len(corners)]
		prims = append(prims, drawing.Line{From: from, To: to, Style: style})
	}
	return drawing.Block{Comment: "frame", Primitives: prims}
}

// Ticks returns one block per date axis tick, in ascending date order.
func (c *Chart) Ticks() []drawing.Block {
	l := c.layout
	blocks := make([]drawing.Block, len(l.tickDates))
	for i, date := range l.tickDates {
		blocks[i] = BuildTick(l, date, l.tickXCoordinates[i])
	}
	return blocks
}

// BuildTick emits the year label under the axis and a gridline spanning the
// full height of the plot area.
func BuildTick(l *Layout, date time.Time, x float64) drawing.Block {
	s := l.settings
	year := strconv.Itoa(date.Year())
	return drawing.Block{
		Comment: year,
		Primitives: []drawing.Primitive{
			drawing.Label{At: drawing.XY(x, s.XLabelYCoordinate), Width: s.XLabelWidth, Style: l.styles.XLabel, Text: year},
			drawing.Line{From: drawing.XY(x, 0), To: drawing.XY(x, l.yAxisLength), Style: l.styles.Gridline},
		},
	}
}

// Rows returns one block per item, top row first.
func (c *Chart) Rows() ([]drawing.Block, error) {
	blocks := make([]drawing.Block, len(c.items))
	for i, item := range c.items {
		b, err := item.Build(c.layout, c.layout.itemYCoordinates[i])
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		blocks[i] = b
	}
	return blocks, nil
}

// Blocks returns everything the chart draws in emission order: the frame,
// the axis ticks from earliest to latest, then the rows in input order.
func (c *Chart) Blocks() ([]drawing.Block, error) {
	rows, err := c.Rows()
	if err != nil {
		return nil, err
	}
	ticks := c.Ticks()
	blocks := make([]drawing.Block, 0, 1+len(ticks)+len(rows))
	blocks = append(blocks, c.Frame())
	blocks = append(blocks, ticks...)
	return append(blocks, rows...), nil
}
