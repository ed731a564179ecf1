package encode

import (
	"fmt"

	"github.com/fiam/glyphhdr/grid"
	"github.com/fiam/glyphhdr/scan"
)

// Encoding is the result of encoding one grid.
type Encoding struct {
	// Chunks holds the words of every chunk, in order. Grids encoded
	// without column chunking have a single chunk.
	Chunks [][]Word
	// Declared is the array length written to headers. For chunked
	// grids it only counts the words of the last chunk, which is what
	// existing consumers of the generated headers have been built
	// against.
	Declared int
}

// Words returns the words of all chunks, concatenated.
func (e *Encoding) Words() []Word {
	var words []Word
	for _, c := range e.Chunks {
		words = append(words, c...)
	}
	return words
}

// Len returns the total number of words.
func (e *Encoding) Len() int {
	n := 0
	for _, c := range e.Chunks {
		n += len(c)
	}
	return n
}

// Chunked reports whether the grid was split into column chunks.
func (e *Encoding) Chunked() bool {
	return len(e.Chunks) > 1
}

// Text returns all the words as a comma separated list of hex literals.
func (e *Encoding) Text() string {
	return joinWords(e.Words())
}

// ChunkText returns the words of chunk i as a comma separated list.
func (e *Encoding) ChunkText(i int) string {
	return joinWords(e.Chunks[i])
}

// Encoder packs grids according to its Settings. It holds no state
// besides the settings and is safe for concurrent use.
type Encoder struct {
	settings Settings
}

// NewEncoder returns an Encoder for the given settings.
func NewEncoder(s Settings) *Encoder {
	return &Encoder{settings: s}
}

// Settings returns the settings the encoder was created with.
func (e *Encoder) Settings() Settings {
	return e.settings
}

// Prepare returns a copy of g rotated, mirrored and inverted as the
// settings request, in that order. g is never modified.
func (e *Encoder) Prepare(g *grid.Grid) (*grid.Grid, error) {
	p := g.Clone()
	if err := p.Transform(e.settings.Rotation, e.settings.MirrorHorizontal, e.settings.MirrorVertical); err != nil {
		return nil, err
	}
	if e.settings.Invert {
		p.Invert()
	}
	return p, nil
}

// Encode transforms a copy of g and packs it into words.
func (e *Encoder) Encode(g *grid.Grid) (*Encoding, error) {
	p, err := e.Prepare(g)
	if err != nil {
		return nil, err
	}
	bits := e.settings.WordBits()
	dir := e.settings.Scan
	lineLength := dir.LineLength(p.Width(), p.Height())
	if !e.settings.Columns || lineLength <= bits {
		words, err := e.pack(p, grid.Whole())
		if err != nil {
			return nil, err
		}
		return &Encoding{Chunks: [][]Word{words}, Declared: len(words)}, nil
	}
	n := (lineLength + bits - 1) / bits
	enc := &Encoding{Chunks: make([][]Word, 0, n)}
	for ii := 0; ii < n; ii++ {
		begin, end := ii*bits, min((ii+1)*bits, lineLength)
		var area grid.Area
		if dir.Priority == scan.HorizontalMajor {
			area = grid.Rect(begin, 0, end, p.Height())
		} else {
			area = grid.Rect(0, begin, p.Width(), end)
		}
		words, err := e.pack(p, area)
		if err != nil {
			return nil, fmt.Errorf("chunk %d: %w", ii, err)
		}
		enc.Chunks = append(enc.Chunks, words)
		enc.Declared = len(words)
	}
	return enc, nil
}

func (e *Encoder) pack(g *grid.Grid, area grid.Area) ([]Word, error) {
	o, err := scan.NewArea(g.Width(), g.Height(), e.settings.Scan, area)
	if err != nil {
		return nil, err
	}
	bits := e.settings.WordBits()
	acc := &accumulator{bits: bits, order: e.settings.BitOrder}
	words := make([]Word, 0, o.Lines()*((o.LineLength()+bits-1)/bits))
	emit := func(v uint64) {
		words = append(words, Word{Value: ApplyByteOrder(v, bits, e.settings.ByteOrder), Bits: bits})
	}
	for o.OuterBegin(); o.OuterCond(); o.OuterNext() {
		for o.InnerBegin(); o.InnerCond(); o.InnerNext() {
			set, err := g.Get(o.X(), o.Y())
			if err != nil {
				return nil, err
			}
			if v, ok := acc.push(set); ok {
				emit(v)
			}
		}
		if v, ok := acc.flush(e.settings.Alignment); ok {
			emit(v)
		}
	}
	return words, nil
}
