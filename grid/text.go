package grid

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"
	"unicode/utf8"
)

const (
	setRune   = 'X'
	clearRune = '.'
)

// ParseRows builds a grid from text rows, one string per row. 'X', '#'
// and '1' are set pixels; '.', ' ', '_' and '0' are clear ones. Short rows
// are padded with clear pixels up to the longest row.
func ParseRows(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, errors.New("grid: no rows")
	}
	w := 0
	for _, row := range rows {
		if n := utf8.RuneCountInString(row); n > w {
			w = n
		}
	}
	g := New(w, len(rows))
	for y, row := range rows {
		x := 0
		for _, c := range row {
			switch c {
			case 'X', 'x', '#', '1':
				g.cells[y*g.w+x] = true
			case '.', ' ', '_', '0':
			default:
				return nil, fmt.Errorf("grid: invalid pixel %q at (%d, %d)", c, x, y)
			}
			x++
		}
	}
	return g, nil
}

// Rows returns the grid as text rows, using 'X' for set pixels and '.'
// for clear ones.
func (g *Grid) Rows() []string {
	rows := make([]string, g.h)
	var sb strings.Builder
	for y := 0; y < g.h; y++ {
		sb.Reset()
		for x := 0; x < g.w; x++ {
			if g.cells[y*g.w+x] {
				sb.WriteByte(setRune)
			} else {
				sb.WriteByte(clearRune)
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

// ColorModel implements image.Image.
func (g *Grid) ColorModel() color.Model {
	return color.GrayModel
}

// Bounds implements image.Image.
func (g *Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.w, g.h)
}

// At implements image.Image. Set pixels are white.
func (g *Grid) At(x, y int) color.Color {
	if i, err := g.index(x, y); err == nil && g.cells[i] {
		return color.Gray{Y: 0xff}
	}
	return color.Gray{}
}
