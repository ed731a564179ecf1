// Package font holds the glyphs of a pixel font.
package font

import (
	"errors"
	"fmt"
	"sort"

	"github.com/fiam/glyphhdr/grid"
)

var (
	// ErrDuplicate is returned when adding a character that is already
	// in the font.
	ErrDuplicate = errors.New("font: duplicate character")
	// ErrHeight is returned when a glyph does not match the font height.
	ErrHeight = errors.New("font: glyph height doesn't match font height")
	// ErrVariableWidth is returned by AddBlank on variable width fonts.
	ErrVariableWidth = errors.New("font: variable width font, glyph width required")
	// ErrNotFound is returned when a character is not in the font.
	ErrNotFound = errors.New("font: character not found")
)

// Glyph is one character of a font.
type Glyph struct {
	Char rune
	// Desc is an identifier safe name for the character, used to name
	// its array in generated headers.
	Desc string
	Grid *grid.Grid
}

// Width returns the width of the glyph in pixels.
func (g *Glyph) Width() int {
	return g.Grid.Width()
}

// Font is an ordered list of glyphs sharing the same height. Width is
// 0 for variable width fonts.
type Font struct {
	Name   string
	Width  int
	Height int
	glyphs []*Glyph
}

// New returns an empty font. A width of 0 makes the font take the width
// of the first glyph added to it.
func New(name string, width, height int) *Font {
	if width < 0 {
		width = 0
	}
	return &Font{Name: name, Width: width, Height: height}
}

// Len returns the number of glyphs.
func (f *Font) Len() int {
	return len(f.glyphs)
}

// Glyphs returns the glyphs in font order. The returned slice must not
// be modified.
func (f *Font) Glyphs() []*Glyph {
	return f.glyphs
}

// Variable reports whether glyphs have different widths.
func (f *Font) Variable() bool {
	return f.Width == 0
}

// Add appends a copy of g as the glyph for c. An empty desc is replaced
// by Describe(c). The first glyph of a font without width sets it; a
// glyph with a different width makes the font variable.
func (f *Font) Add(c rune, desc string, g *grid.Grid) (*Glyph, error) {
	if f.Index(c) >= 0 {
		return nil, fmt.Errorf("%w: %q", ErrDuplicate, c)
	}
	if g.Height() != f.Height {
		return nil, fmt.Errorf("%w: %q is %d pixels high, font is %d", ErrHeight, c, g.Height(), f.Height)
	}
	if desc == "" {
		desc = Describe(c)
	}
	switch {
	case f.Width == 0 && len(f.glyphs) == 0:
		f.Width = g.Width()
	case f.Width != 0 && f.Width != g.Width():
		f.Width = 0
	}
	glyph := &Glyph{Char: c, Desc: desc, Grid: g.Clone()}
	f.glyphs = append(f.glyphs, glyph)
	return glyph, nil
}

// AddBlank appends an empty glyph for c using the font width.
func (f *Font) AddBlank(c rune) (*Glyph, error) {
	if f.Width == 0 {
		return nil, fmt.Errorf("%w: %q", ErrVariableWidth, c)
	}
	return f.Add(c, "", grid.New(f.Width, f.Height))
}

// Index returns the position of c in the font, or -1.
func (f *Font) Index(c rune) int {
	for ii, g := range f.glyphs {
		if g.Char == c {
			return ii
		}
	}
	return -1
}

// Lookup returns the glyph for c.
func (f *Font) Lookup(c rune) (*Glyph, error) {
	if ii := f.Index(c); ii >= 0 {
		return f.glyphs[ii], nil
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, c)
}

// Remove deletes the glyph for c. The font width is recomputed.
func (f *Font) Remove(c rune) error {
	ii := f.Index(c)
	if ii < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, c)
	}
	f.glyphs = append(f.glyphs[:ii], f.glyphs[ii+1:]...)
	f.UpdateWidth()
	return nil
}

// UpdateWidth sets the font width from its glyphs: the common width
// when all of them agree, 0 otherwise. Empty fonts keep their width.
func (f *Font) UpdateWidth() {
	if len(f.glyphs) == 0 {
		return
	}
	w := f.glyphs[0].Width()
	for _, g := range f.glyphs[1:] {
		if g.Width() != w {
			w = 0
			break
		}
	}
	f.Width = w
}

// Sort orders the glyphs by character code.
func (f *Font) Sort() {
	sort.SliceStable(f.glyphs, func(i, j int) bool {
		return f.glyphs[i].Char < f.glyphs[j].Char
	})
}
