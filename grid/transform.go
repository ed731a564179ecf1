package grid

import (
	"fmt"
	"image"
	"strconv"
)

// Rotation is a quarter turn count. Rotate90 turns the image
// counter-clockwise, Rotate270 clockwise.
type Rotation int

const (
	Rotate0 Rotation = iota
	Rotate90
	Rotate180
	Rotate270
)

// readerRotationOffset is added to the requested rotation before the
// source reader is built. Exported fonts have always been produced with
// it and must stay byte-identical, so it stays even though a reader built
// for the plain rotation would work as well.
const readerRotationOffset = 1

// RotationFromDegrees converts a multiple of 90 degrees, negative values
// included, to a Rotation.
func RotationFromDegrees(deg int) (Rotation, error) {
	if deg%90 != 0 {
		return 0, fmt.Errorf("%w: %d degrees", ErrInvalidRotation, deg)
	}
	return Rotation(((deg/90)%4 + 4) % 4), nil
}

// Valid reports whether r is one of the four quarter turns.
func (r Rotation) Valid() bool {
	return r >= Rotate0 && r <= Rotate270
}

// Degrees returns the rotation in degrees.
func (r Rotation) Degrees() int {
	return int(r) * 90
}

func (r Rotation) String() string {
	return strconv.Itoa(r.Degrees())
}

// MarshalText encodes the rotation as degrees.
func (r Rotation) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRotation, int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText decodes a rotation given in degrees.
func (r *Rotation) UnmarshalText(text []byte) error {
	deg, err := strconv.Atoi(string(text))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidRotation, string(text))
	}
	v, err := RotationFromDegrees(deg)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// span is one axis of a reader walk. Ranges going down include end.
type span struct {
	begin, end, step int
}

func walk(n int, reverse bool) span {
	if reverse {
		return span{begin: n - 1, end: 0, step: -1}
	}
	return span{begin: 0, end: n, step: 1}
}

func (s span) cond(v int) bool {
	if s.step < 0 {
		return v >= s.end
	}
	return v < s.end
}

// reader walks a w x h source grid. The outer loop runs over x, the inner
// one over y; when swap is set the x counter addresses rows and the y
// counter columns.
type reader struct {
	x, y span
	swap bool
}

func newReader(w, h int, r Rotation, mirrorH, mirrorV bool) (reader, error) {
	switch r {
	case Rotate0:
		return reader{x: walk(w, mirrorH), y: walk(h, !mirrorV)}, nil
	case Rotate90:
		return reader{x: walk(h, mirrorV), y: walk(w, mirrorH), swap: true}, nil
	case Rotate180:
		return reader{x: walk(w, !mirrorH), y: walk(h, mirrorV)}, nil
	case Rotate270:
		return reader{x: walk(h, !mirrorV), y: walk(w, !mirrorH), swap: true}, nil
	}
	return reader{}, fmt.Errorf("%w: %d", ErrInvalidRotation, int(r))
}

// copyPlan computes the size of a w x h grid after rotating and mirroring
// it, and for every destination cell in row-major order the source cell it
// copies.
func copyPlan(w, h int, r Rotation, mirrorH, mirrorV bool) (int, int, []image.Point, error) {
	if !r.Valid() {
		return 0, 0, nil, fmt.Errorf("%w: %d", ErrInvalidRotation, int(r))
	}
	rd, err := newReader(w, h, (r+readerRotationOffset)%4, mirrorH, mirrorV)
	if err != nil {
		return 0, 0, nil, err
	}
	dw, dh := w, h
	if r == Rotate90 || r == Rotate270 {
		dw, dh = h, w
	}
	plan := make([]image.Point, 0, w*h)
	for x := rd.x.begin; rd.x.cond(x); x += rd.x.step {
		for y := rd.y.begin; rd.y.cond(y); y += rd.y.step {
			if rd.swap {
				plan = append(plan, image.Point{X: y, Y: x})
			} else {
				plan = append(plan, image.Point{X: x, Y: y})
			}
		}
	}
	return dw, dh, plan, nil
}

// Transform rotates and mirrors the grid in a single copy. The mirror
// flags refer to the axes of the unrotated grid. Rotations by 90 and 270
// degrees swap width and height. The grid is left untouched when the
// rotation is invalid.
func (g *Grid) Transform(r Rotation, mirrorH, mirrorV bool) error {
	dw, dh, plan, err := copyPlan(g.w, g.h, r, mirrorH, mirrorV)
	if err != nil {
		return err
	}
	cells := make([]bool, dw*dh)
	for ii, p := range plan {
		cells[ii] = g.cells[p.Y*g.w+p.X]
	}
	g.w, g.h, g.cells = dw, dh, cells
	return nil
}

// Rotate is a shorthand for Transform without mirroring.
func (g *Grid) Rotate(r Rotation) error {
	return g.Transform(r, false, false)
}

// Mirror flips the grid horizontally, vertically or both.
func (g *Grid) Mirror(horizontal, vertical bool) error {
	return g.Transform(Rotate0, horizontal, vertical)
}
