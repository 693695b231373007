package drawing

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// recorder logs every canvas call as one line.
type recorder struct {
	calls []string
}

func (r *recorder) Begin(b Rect)        { r.calls = append(r.calls, fmt.Sprintf("begin %v", b)) }
func (r *recorder) Comment(text string) { r.calls = append(r.calls, "comment "+text) }
func (r *recorder) End()                { r.calls = append(r.calls, "end") }
func (r *recorder) String() string      { return strings.Join(r.calls, "\n") }

func (r *recorder) Line(f, t Point, s string) {
	r.calls = append(r.calls, fmt.Sprintf("line %v %v %s", f, t, s))
}

func (r *recorder) Label(at Point, w float64, s, text string) {
	r.calls = append(r.calls, fmt.Sprintf("label %v %v %s %s", at, w, s, text))
}

func (r *recorder) Bar(f, t Point, s string) {
	r.calls = append(r.calls, fmt.Sprintf("bar %v %v %s", f, t, s))
}

func TestBlockDraw(t *testing.T) {
	b := Block{
		Comment: "2000",
		Primitives: []Primitive{
			Label{At: XY(0, -3), Width: 10, Style: "xlabel", Text: "2000"},
			Line{From: XY(0, 0), To: XY(0, 15), Style: "gridline"},
			Bar{From: XY(1, 5), To: XY(4, 5), Style: "bar"},
		},
	}
	rec := &recorder{}
	b.Draw(rec)

	assert.Equal(t, []string{
		"comment 2000",
		"label {0 -3} 10 xlabel 2000",
		"line {0 0} {0 15} gridline",
		"bar {1 5} {4 5} bar",
	}, rec.calls)
}

func TestBlockWithoutComment(t *testing.T) {
	rec := &recorder{}
	Block{Primitives: []Primitive{Line{From: XY(0, 0), To: XY(1, 0), Style: "frame"}}}.Draw(rec)
	assert.Equal(t, []string{"line {0 0} {1 0} frame"}, rec.calls)
}

func TestRectExtent(t *testing.T) {
	r := Rect{Min: XY(-15, -6), Max: XY(85, 20)}
	assert.Equal(t, 100.0, r.Width())
	assert.Equal(t, 26.0, r.Height())
}
