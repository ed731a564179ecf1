// Package grid implements the monochrome pixel grids glyphs are drawn on.
//
// A Grid is addressed by (x, y) with x growing to the right and y growing
// downwards. Every accessor checks its coordinates; nothing in this package
// reads or writes outside the backing storage.
package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a coordinate lies outside a grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrInvalidArea is returned for areas with negative or inverted
	// bounds, or offsets beyond the grid they are applied to.
	ErrInvalidArea = errors.New("grid: invalid area")
	// ErrInvalidRotation is returned for rotations other than
	// 0, 90, 180 and 270 degrees.
	ErrInvalidRotation = errors.New("grid: invalid rotation")
)

// Grid is a rectangular bitmap of boolean cells. The zero value is not
// usable, create grids with New.
type Grid struct {
	w, h  int
	cells []bool // row-major
}

// New returns a cleared grid with the given size. A width or height below
// 1 is normalized to 1; fonts use a width of 0 to signal variable width,
// but every grid has at least one column.
func New(w, h int) *Grid {
	g := &Grid{}
	g.Resize(w, h)
	return g
}

// Width returns the number of columns in the grid.
func (g *Grid) Width() int {
	return g.w
}

// Height returns the number of rows in the grid.
func (g *Grid) Height() int {
	return g.h
}

// Resize replaces the backing storage with a cleared grid of the given
// size. All previous cell values are lost, use Clone first to keep them.
func (g *Grid) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	g.w = w
	g.h = h
	g.cells = make([]bool, w*h)
}

func (g *Grid) index(x, y int) (int, error) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return 0, fmt.Errorf("%w: (%d, %d) outside %dx%d", ErrOutOfBounds, x, y, g.w, g.h)
	}
	return y*g.w + x, nil
}

// Get reports whether the cell at (x, y) is set.
func (g *Grid) Get(x, y int) (bool, error) {
	i, err := g.index(x, y)
	if err != nil {
		return false, err
	}
	return g.cells[i], nil
}

// Set changes the cell at (x, y) to v.
func (g *Grid) Set(x, y int, v bool) error {
	i, err := g.index(x, y)
	if err != nil {
		return err
	}
	g.cells[i] = v
	return nil
}

// Unset clears the cell at (x, y).
func (g *Grid) Unset(x, y int) error {
	return g.Set(x, y, false)
}

// Toggle flips the cell at (x, y).
func (g *Grid) Toggle(x, y int) error {
	i, err := g.index(x, y)
	if err != nil {
		return err
	}
	g.cells[i] = !g.cells[i]
	return nil
}

// Clear unsets every cell.
func (g *Grid) Clear() {
	for ii := range g.cells {
		g.cells[ii] = false
	}
}

// Fill sets every cell.
func (g *Grid) Fill() {
	for ii := range g.cells {
		g.cells[ii] = true
	}
}

// Invert flips every cell.
func (g *Grid) Invert() {
	for ii, v := range g.cells {
		g.cells[ii] = !v
	}
}

// Count returns the number of set cells.
func (g *Grid) Count() int {
	n := 0
	for _, v := range g.cells {
		if v {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)
	return &Grid{w: g.w, h: g.h, cells: cells}
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.w != other.w || g.h != other.h {
		return false
	}
	for ii, v := range g.cells {
		if other.cells[ii] != v {
			return false
		}
	}
	return true
}

// Union sets every cell that is set in other. Only the overlapping
// rectangle of both grids is considered.
func (g *Grid) Union(other *Grid) {
	g.combine(other, func(a, b bool) bool { return a || b })
}

// Intersect clears every cell that is not set in other. Only the
// overlapping rectangle of both grids is considered.
func (g *Grid) Intersect(other *Grid) {
	g.combine(other, func(a, b bool) bool { return a && b })
}

// Subtract clears every cell that is set in other. Only the overlapping
// rectangle of both grids is considered.
func (g *Grid) Subtract(other *Grid) {
	g.combine(other, func(a, b bool) bool { return a && !b })
}

func (g *Grid) combine(other *Grid, op func(a, b bool) bool) {
	w := min(g.w, other.w)
	h := min(g.h, other.h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*g.w + x
			g.cells[i] = op(g.cells[i], other.cells[y*other.w+x])
		}
	}
}
