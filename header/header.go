// Package header writes fonts as C headers.
//
// Every glyph becomes an array of words named after its descriptor,
// preceded by a comment identifying the character and optionally an
// ASCII art rendering of the glyph. Glyphs that fail to encode are
// replaced by an #error directive and reported, the rest of the font is
// still written.
package header

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"

	"github.com/fiam/glyphhdr/encode"
	"github.com/fiam/glyphhdr/font"
	"github.com/fiam/glyphhdr/grid"
)

const (
	separator = "/*============================================*/"
	generator = "glyphhdr"
)

// ErrGlyph matches every *GlyphError.
var ErrGlyph = errors.New("header: glyph failed")

// GlyphError is reported for every glyph that could not be encoded.
type GlyphError struct {
	Char rune
	Desc string
	Err  error
}

func (e *GlyphError) Error() string {
	return fmt.Sprintf("glyph %q (%s): %v", e.Char, e.Desc, e.Err)
}

func (e *GlyphError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrGlyph) match any GlyphError.
func (e *GlyphError) Is(target error) bool {
	return target == ErrGlyph
}

// Options configure Write.
type Options struct {
	Settings encode.Settings
	// FileName is the name of the generated file, used to derive the
	// include guard. When empty, the font name with a .h extension is
	// used.
	FileName string
	// Logger receives a message for every glyph that fails. A nil
	// Logger discards them.
	Logger logrus.FieldLogger
}

// Report summarizes a successful Write.
type Report struct {
	Guard   string
	Glyphs  int
	Words   int
	Failed  []*GlyphError
	Written int64
}

// OK reports whether every glyph was written.
func (r *Report) OK() bool {
	return len(r.Failed) == 0
}

// Guard returns the include guard for a file name: its base name upper
// cased, with everything but letters, digits and underscores replaced
// by underscores, followed by an underscore. "font.h" becomes "FONT_H_".
func Guard(fileName string) string {
	return identifier(strings.ToUpper(filepath.Base(fileName))) + "_"
}

// MacroPrefix returns the prefix of the dimension macros of a font:
// "FONT_" followed by the upper cased font name.
func MacroPrefix(fontName string) string {
	return "FONT_" + identifier(strings.ToUpper(fontName))
}

func identifier(s string) string {
	b := []byte(s)
	for ii, c := range b {
		if !(c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_') {
			b[ii] = '_'
		}
	}
	if len(b) > 0 && b[0] >= '0' && b[0] <= '9' {
		return "F" + string(b)
	}
	return string(b)
}

// writer remembers the first error and turns every later write into a
// no-op.
type writer struct {
	w   *bufio.Writer
	n   int64
	err error
}

func (w *writer) printf(format string, args ...interface{}) {
	if w.err != nil {
		return
	}
	n, err := fmt.Fprintf(w.w, format, args...)
	w.n += int64(n)
	w.err = err
}

func (w *writer) flush() error {
	if w.err == nil {
		w.err = w.w.Flush()
	}
	return w.err
}

// Write writes f as a C header to w. The returned error is only non-nil
// when writing to w fails, in which case the output must be considered
// invalid. Glyphs that fail to encode are listed in the report.
func Write(w io.Writer, f *font.Font, opts Options) (*Report, error) {
	log := opts.Logger
	if log == nil {
		l := logrus.New()
		l.Out = io.Discard
		log = l
	}
	fileName := opts.FileName
	if fileName == "" {
		fileName = f.Name + ".h"
	}
	s := opts.Settings
	enc := encode.NewEncoder(s)
	out := &writer{w: bufio.NewWriter(w)}
	report := &Report{Guard: Guard(fileName)}

	writeMetadata(out, f, s)
	out.printf("#ifndef %s\n", report.Guard)
	out.printf("#define %s\n\n", report.Guard)
	prefix := MacroPrefix(f.Name)
	out.printf("#define %s_WIDTH %d\n", prefix, f.Width)
	out.printf("#define %s_HEIGHT %d\n\n", prefix, f.Height)

	for _, g := range f.Glyphs() {
		if out.err != nil {
			break
		}
		n, err := writeGlyph(out, enc, g)
		if err != nil {
			gerr := &GlyphError{Char: g.Char, Desc: g.Desc, Err: err}
			log.WithFields(logrus.Fields{
				"char":  string(g.Char),
				"glyph": g.Desc,
			}).WithError(err).Error("could not encode glyph")
			report.Failed = append(report.Failed, gerr)
			out.printf("#error %q\n", gerr.Error())
		} else {
			report.Glyphs++
			report.Words += n
		}
		out.printf("%s\n\n", separator)
	}
	out.printf("#endif /** %s */\n", report.Guard)
	err := out.flush()
	report.Written = out.n
	if err != nil {
		return report, fmt.Errorf("writing header: %w", err)
	}
	return report, nil
}

func writeMetadata(out *writer, f *font.Font, s encode.Settings) {
	firstBit := "MSB"
	if s.BitOrder == encode.LSBFirst {
		firstBit = "LSB"
	}
	out.printf("/**\n")
	out.printf(" * Generated by %s\n", generator)
	out.printf(" *\n")
	out.printf(" * This file represents the font %s\n", f.Name)
	out.printf(" * Character count: %d\n", f.Len())
	out.printf(" * Character height: %d\n", f.Height)
	out.printf(" * Character width (0 is variable): %d\n", f.Width)
	out.printf(" *\n")
	out.printf(" * Rotation: %d\n", s.Rotation.Degrees())
	out.printf(" * Mirrored horizontally: %t\n", s.MirrorHorizontal)
	out.printf(" * Mirrored vertically: %t\n", s.MirrorVertical)
	out.printf(" * Inverted: %t\n", s.Invert)
	out.printf(" *\n")
	out.printf(" * First bit: %s\n", firstBit)
	out.printf(" * Scan direction: %s\n", s.Scan)
	if s.WordBits() > 8 {
		order := "big endian"
		if s.ByteOrder == encode.LittleEndian {
			order = "little endian"
		}
		out.printf(" * Byte order: %s\n", order)
	}
	out.printf(" */\n")
}

// commentChar returns how a character is identified in its comment line.
// Characters that would read badly or break the comment, like a trailing
// backslash, are replaced by their descriptor.
func commentChar(g *font.Glyph) string {
	if g.Char != ' ' && g.Char != '\\' && unicode.IsPrint(g.Char) {
		return string(g.Char)
	}
	return g.Desc
}

func writeGlyph(out *writer, enc *encode.Encoder, g *font.Glyph) (int, error) {
	s := enc.Settings()
	out.printf("// %s\n", commentChar(g))
	encoding, err := enc.Encode(g.Grid)
	if err != nil {
		return 0, err
	}
	if s.Comments {
		art, err := asciiArt(g.Grid, s)
		if err != nil {
			return 0, err
		}
		for _, row := range art {
			out.printf("// %s\n", row)
		}
		out.printf("//\n")
	}
	out.printf("%s character_%s[%d] = {", s.DataType(), identifier(g.Desc), encoding.Declared)
	if encoding.Chunked() {
		out.printf("\n")
		for ii := range encoding.Chunks {
			sep := ","
			if ii == len(encoding.Chunks)-1 {
				sep = ""
			}
			out.printf("\t%s%s\n", encoding.ChunkText(ii), sep)
		}
	} else {
		out.printf("%s", encoding.Text())
	}
	out.printf("};\n")
	return encoding.Len(), nil
}

// asciiArt renders g rotated and mirrored but not inverted, in plain
// raster order, as rows of '#' and '.'.
func asciiArt(g *grid.Grid, s encode.Settings) ([]string, error) {
	p := g.Clone()
	if err := p.Transform(s.Rotation, s.MirrorHorizontal, s.MirrorVertical); err != nil {
		return nil, err
	}
	rows := p.Rows()
	for ii, row := range rows {
		rows[ii] = strings.ReplaceAll(row, "X", "#")
	}
	return rows, nil
}
