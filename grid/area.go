package grid

import "fmt"

// Unspecified marks an Area bound that is derived from the grid the area
// is applied to.
const Unspecified = -1

// Area describes a rectangle inside a grid. Ends are absolute and
// exclusive. Any bound may be Unspecified: an unspecified offset means 0,
// an unspecified end means "as far as the destination allows".
type Area struct {
	X0, Y0 int
	X1, Y1 int
}

// Whole returns an area with every bound unspecified.
func Whole() Area {
	return Area{X0: Unspecified, Y0: Unspecified, X1: Unspecified, Y1: Unspecified}
}

// At returns an area starting at (x, y) with unspecified ends.
func At(x, y int) Area {
	return Area{X0: x, Y0: y, X1: Unspecified, Y1: Unspecified}
}

// Rect returns the area [x0, x1) x [y0, y1).
func Rect(x0, y0, x1, y1 int) Area {
	return Area{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Validate checks that every specified bound is non-negative and that no
// specified end lies at or before its offset.
func (a Area) Validate() error {
	for _, v := range [...]int{a.X0, a.Y0, a.X1, a.Y1} {
		if v < 0 && v != Unspecified {
			return fmt.Errorf("%w: negative bound in %v", ErrInvalidArea, a)
		}
	}
	x0, y0 := a.Offset()
	if a.X1 != Unspecified && a.X1 <= x0 {
		return fmt.Errorf("%w: x end %d not after offset %d", ErrInvalidArea, a.X1, x0)
	}
	if a.Y1 != Unspecified && a.Y1 <= y0 {
		return fmt.Errorf("%w: y end %d not after offset %d", ErrInvalidArea, a.Y1, y0)
	}
	return nil
}

// Offset returns the top left corner of the area, mapping unspecified
// offsets to 0.
func (a Area) Offset() (int, int) {
	x0, y0 := a.X0, a.Y0
	if x0 == Unspecified {
		x0 = 0
	}
	if y0 == Unspecified {
		y0 = 0
	}
	return x0, y0
}

// Clip returns the half-open ranges [x0, x1) and [y0, y1) the area covers
// inside a w x h grid. Unspecified ends extend to the grid edge.
func (a Area) Clip(w, h int) (x0, y0, x1, y1 int) {
	x0, y0 = a.Offset()
	x1, y1 = w, h
	if a.X1 != Unspecified && a.X1 < w {
		x1 = a.X1
	}
	if a.Y1 != Unspecified && a.Y1 < h {
		y1 = a.Y1
	}
	return x0, y0, x1, y1
}

func (a Area) String() string {
	return fmt.Sprintf("(%d, %d)-(%d, %d)", a.X0, a.Y0, a.X1, a.Y1)
}

// Extract copies the cells covered by a into dst. For each axis, a
// specified end fixes the region size, clipped to g, and dst is resized to
// hold it. An unspecified end keeps the current size of dst; only the cells
// g can supply are copied. Regions are clipped, never wrapped.
func (g *Grid) Extract(dst *Grid, a Area) error {
	if err := a.Validate(); err != nil {
		return err
	}
	x0, y0 := a.Offset()
	if x0 >= g.w || y0 >= g.h {
		return fmt.Errorf("%w: offset (%d, %d) outside %dx%d", ErrInvalidArea, x0, y0, g.w, g.h)
	}
	src := g
	if dst == g {
		src = g.Clone()
	}
	_, _, x1, y1 := a.Clip(g.w, g.h)
	rw, rh := dst.w, dst.h
	if a.X1 != Unspecified {
		rw = x1 - x0
	}
	if a.Y1 != Unspecified {
		rh = y1 - y0
	}
	if rw != dst.w || rh != dst.h {
		dst.Resize(rw, rh)
	}
	cw := min(rw, src.w-x0)
	ch := min(rh, src.h-y0)
	for y := 0; y < ch; y++ {
		for x := 0; x < cw; x++ {
			dst.cells[y*dst.w+x] = src.cells[(y+y0)*src.w+x+x0]
		}
	}
	return nil
}

// Sub returns a new grid holding the cells covered by a. Unspecified ends
// produce a single row or column.
func (g *Grid) Sub(a Area) (*Grid, error) {
	dst := New(1, 1)
	if err := g.Extract(dst, a); err != nil {
		return nil, err
	}
	return dst, nil
}

// Paste copies src into g with its top left corner at (x, y). Parts of
// src that fall outside g are dropped; g never grows.
func (g *Grid) Paste(src *Grid, x, y int) {
	if src == g {
		src = g.Clone()
	}
	for sy := 0; sy < src.h; sy++ {
		dy := sy + y
		if dy < 0 || dy >= g.h {
			continue
		}
		for sx := 0; sx < src.w; sx++ {
			dx := sx + x
			if dx < 0 || dx >= g.w {
				continue
			}
			g.cells[dy*g.w+dx] = src.cells[sy*src.w+sx]
		}
	}
}
