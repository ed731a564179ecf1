package font

import (
	"fmt"
	"image"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/fiam/glyphhdr/grid"
)

// alphaThreshold is the minimum mask alpha of a set pixel.
const alphaThreshold = 0x8000

// FromFace rasterizes runes from a monospaced font.Face. The font height
// is the face ascent plus descent and the width is the advance of the
// first rune. Runes the face has no glyph for are skipped.
func FromFace(name string, face xfont.Face, runes []rune) (*Font, error) {
	if len(runes) == 0 {
		return nil, fmt.Errorf("font: no characters requested")
	}
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	height := ascent + m.Descent.Ceil()
	adv, ok := face.GlyphAdvance(runes[0])
	if !ok || height <= 0 {
		return nil, fmt.Errorf("font: face has no glyph for %q", runes[0])
	}
	width := adv.Ceil()
	f := New(name, width, height)
	for _, r := range runes {
		dr, mask, maskp, _, ok := face.Glyph(fixed.P(0, ascent), r)
		if !ok {
			continue
		}
		g := grid.New(width, height)
		bounds := dr.Intersect(image.Rect(0, 0, width, height))
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				_, _, _, a := mask.At(maskp.X+x-dr.Min.X, maskp.Y+y-dr.Min.Y).RGBA()
				if a >= alphaThreshold {
					g.Set(x, y, true)
				}
			}
		}
		if _, err := f.Add(r, "", g); err != nil {
			return nil, err
		}
	}
	return f, nil
}
