package scan

import (
	"fmt"

	"github.com/fiam/glyphhdr/grid"
)

// axis is one resolved range. Descending ranges include end.
type axis struct {
	begin, end, step int
}

func newAxis(from, to int, reverse bool) axis {
	if reverse {
		return axis{begin: to - 1, end: from, step: -1}
	}
	return axis{begin: from, end: to, step: 1}
}

func (a axis) cond(v int) bool {
	if a.step < 0 {
		return v >= a.end
	}
	return v < a.end
}

func (a axis) len() int {
	if a.step < 0 {
		return a.begin - a.end + 1
	}
	return a.end - a.begin
}

// Order walks the cells of a grid in nested loops:
//
//	for o.OuterBegin(); o.OuterCond(); o.OuterNext() {
//		for o.InnerBegin(); o.InnerCond(); o.InnerNext() {
//			g.Get(o.X(), o.Y())
//		}
//	}
type Order struct {
	dir  Direction
	xa   axis
	ya   axis
	x, y int
}

// New returns an Order covering a whole w x h grid.
func New(w, h int, d Direction) *Order {
	return &Order{
		dir: d,
		xa:  newAxis(0, w, d.Horizontal == RightToLeft),
		ya:  newAxis(0, h, d.Vertical == BottomToTop),
	}
}

// NewArea returns an Order limited to the cells a covers inside a w x h
// grid. The directions are kept: a right to left scan of an area still
// starts at the right edge of the area. Walking the area of a grid visits
// the same cells in the same order as walking the grid extracted with
// grid.Sub.
func NewArea(w, h int, d Direction, a grid.Area) (*Order, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	x0, y0, x1, y1 := a.Clip(w, h)
	if x0 >= w || y0 >= h {
		return nil, fmt.Errorf("%w: offset (%d, %d) outside %dx%d", grid.ErrInvalidArea, x0, y0, w, h)
	}
	return &Order{
		dir: d,
		xa:  newAxis(x0, x1, d.Horizontal == RightToLeft),
		ya:  newAxis(y0, y1, d.Vertical == BottomToTop),
	}, nil
}

func (o *Order) rowsAreLines() bool {
	return o.dir.Priority == HorizontalMajor
}

// OuterBegin moves to the first line.
func (o *Order) OuterBegin() {
	if o.rowsAreLines() {
		o.y = o.ya.begin
	} else {
		o.x = o.xa.begin
	}
}

// OuterCond reports whether the current line is inside the scan.
func (o *Order) OuterCond() bool {
	if o.rowsAreLines() {
		return o.ya.cond(o.y)
	}
	return o.xa.cond(o.x)
}

// OuterNext moves to the next line.
func (o *Order) OuterNext() {
	if o.rowsAreLines() {
		o.y += o.ya.step
	} else {
		o.x += o.xa.step
	}
}

// InnerBegin moves to the first cell of the current line.
func (o *Order) InnerBegin() {
	if o.rowsAreLines() {
		o.x = o.xa.begin
	} else {
		o.y = o.ya.begin
	}
}

// InnerCond reports whether the current cell is inside the line.
func (o *Order) InnerCond() bool {
	if o.rowsAreLines() {
		return o.xa.cond(o.x)
	}
	return o.ya.cond(o.y)
}

// InnerNext moves to the next cell of the current line.
func (o *Order) InnerNext() {
	if o.rowsAreLines() {
		o.x += o.xa.step
	} else {
		o.y += o.ya.step
	}
}

// X returns the column of the current cell.
func (o *Order) X() int {
	return o.x
}

// Y returns the row of the current cell.
func (o *Order) Y() int {
	return o.y
}

// Lines returns the number of outer steps.
func (o *Order) Lines() int {
	if o.rowsAreLines() {
		return o.ya.len()
	}
	return o.xa.len()
}

// LineLength returns the number of inner steps in every line.
func (o *Order) LineLength() int {
	if o.rowsAreLines() {
		return o.xa.len()
	}
	return o.ya.len()
}
