// Package drawing holds the primitives a laid-out chart is reduced to and the
// Canvas interface that serializes them.
//
// Coordinates are in document units with the origin at the bottom-left corner
// of the plot area and y growing upwards.
package drawing

// Point is a position in document units.
type Point struct {
	X, Y float64
}

// XY is shorthand for Point{X: x, Y: y}.
func XY(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Rect is an axis-aligned rectangle given by its lower-left and upper-right corners.
type Rect struct {
	Min, Max Point
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Canvas receives primitives in emission order and accumulates the document.
type Canvas interface {
	// Begin writes the document preamble. bounds covers everything that will be drawn.
	Begin(bounds Rect)
	Comment(text string)
	Line(from, to Point, style string)
	Label(at Point, width float64, style, text string)
	Bar(from, to Point, style string)
	// End writes the closing marker.
	End()
	// String returns the document written so far.
	String() string
}

// Primitive is an atomic drawable unit.
type Primitive interface {
	Draw(cv Canvas)
}

// Line is a straight styled segment.
type Line struct {
	From, To Point
	Style    string
}

func (l Line) Draw(cv Canvas) { cv.Line(l.From, l.To, l.Style) }

// Label is text centred at a point and wrapped to Width.
type Label struct {
	At    Point
	Width float64
	Style string
	Text  string
}

func (l Label) Draw(cv Canvas) { cv.Label(l.At, l.Width, l.Style, l.Text) }

// Bar is a horizontal filled segment from From to To. Both points share the same Y.
type Bar struct {
	From, To Point
	Style    string
}

func (b Bar) Draw(cv Canvas) { cv.Bar(b.From, b.To, b.Style) }

// Block groups the primitives drawn for one axis tick, one item or the frame.
// Comment is written ahead of the primitives; an empty comment is skipped.
type Block struct {
	Comment    string
	Primitives []Primitive
}

// Draw writes the block to cv.
func (b Block) Draw(cv Canvas) {
	if b.Comment != "" {
		cv.Comment(b.Comment)
	}
	for _, p := range b.Primitives {
		p.Draw(cv)
	}
}
