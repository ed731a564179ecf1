package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v2"

	"github.com/fiam/glyphhdr/encode"
	"github.com/fiam/glyphhdr/font"
	"github.com/fiam/glyphhdr/grid"
)

// projectGlyph is a glyph as stored in a project file. Pixels are given
// either as text rows or as the hex encoded binary form of the grid.
// A glyph with neither is blank.
type projectGlyph struct {
	Char interface{} `yaml:"char"`
	Desc string      `yaml:"desc,omitempty"`
	Rows []string    `yaml:"rows,omitempty"`
	Data string      `yaml:"data,omitempty"`
}

// project is a font together with the settings used to export it.
type project struct {
	Name     string          `yaml:"name"`
	Width    int             `yaml:"width"`
	Height   int             `yaml:"height"`
	Settings encode.Settings `yaml:"settings"`
	Glyphs   []*projectGlyph `yaml:"glyphs"`
}

// charCode converts the char field of a glyph. It accepts a single
// character, a decimal code or a 0x prefixed hex code.
func charCode(i interface{}) (rune, error) {
	switch x := i.(type) {
	case int:
		if x < 0 || x > unicode.MaxRune {
			return 0, fmt.Errorf("character code %d out of range", x)
		}
		return rune(x), nil
	case string:
		if utf8.RuneCountInString(x) == 1 {
			r, _ := utf8.DecodeRuneInString(x)
			return r, nil
		}
		base := 10
		if strings.HasPrefix(strings.ToLower(x), "0x") {
			base = 16
			x = x[2:]
		}
		v, err := strconv.ParseInt(x, base, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid character %q: %v", i, err)
		}
		if v < 0 || v > unicode.MaxRune {
			return 0, fmt.Errorf("character code %d out of range", v)
		}
		return rune(v), nil
	case bool:
		return 0, fmt.Errorf("character %v must be quoted", x)
	case nil:
		return 0, fmt.Errorf("missing character")
	default:
		return 0, fmt.Errorf("can't convert %T to a character", i)
	}
}

// charValue is the inverse of charCode, used when saving.
func charValue(r rune) interface{} {
	if r < unicode.MaxASCII && r != ' ' && unicode.IsPrint(r) {
		return string(r)
	}
	return fmt.Sprintf("0x%02x", r)
}

func newProject() *project {
	return &project{Settings: encode.DefaultSettings()}
}

func loadProject(filename string) (*project, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading project file %s: %v", filename, err)
	}
	p := newProject()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("error parsing project file %s: %v", filename, err)
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("invalid project file %s: %v", filename, err)
	}
	return p, nil
}

func (p *project) validate() error {
	if p.Name == "" {
		return fmt.Errorf("missing font name")
	}
	if p.Height < 1 {
		return fmt.Errorf("invalid height %d", p.Height)
	}
	if p.Width < 0 {
		return fmt.Errorf("invalid width %d", p.Width)
	}
	if !p.Settings.Rotation.Valid() {
		return fmt.Errorf("invalid rotation %d", int(p.Settings.Rotation))
	}
	for ii, g := range p.Glyphs {
		if g.Desc != "" && !validDesc(g.Desc) {
			return fmt.Errorf("glyph %d: invalid desc %q, only letters, digits and underscores are allowed", ii+1, g.Desc)
		}
	}
	if !p.Settings.SupportedBits() {
		logger.Warnf("%d bits per word are not supported, using %d", p.Settings.Bits, p.Settings.WordBits())
	}
	return nil
}

// validDesc reports whether desc can be used both as part of a C
// identifier and as part of a file name.
func validDesc(desc string) bool {
	for _, c := range desc {
		if !(c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_') {
			return false
		}
	}
	return desc != ""
}

func (g *projectGlyph) grid(width, height int) (*grid.Grid, error) {
	var gr *grid.Grid
	switch {
	case len(g.Rows) > 0 && g.Data != "":
		return nil, fmt.Errorf("both rows and data given")
	case len(g.Rows) > 0:
		var err error
		if gr, err = grid.ParseRows(g.Rows); err != nil {
			return nil, err
		}
	case g.Data != "":
		b, err := hex.DecodeString(g.Data)
		if err != nil {
			return nil, fmt.Errorf("invalid data: %v", err)
		}
		gr = new(grid.Grid)
		if err := gr.UnmarshalBinary(b); err != nil {
			return nil, err
		}
	default:
		if width == 0 {
			return nil, fmt.Errorf("blank glyph in a variable width font")
		}
		return grid.New(width, height), nil
	}
	// pad short text rows up to the font size
	if gr.Width() < width || gr.Height() < height {
		padded := grid.New(max(gr.Width(), width), max(gr.Height(), height))
		padded.Paste(gr, 0, 0)
		gr = padded
	}
	return gr, nil
}

// Font builds the font described by the project.
func (p *project) Font() (*font.Font, error) {
	f := font.New(p.Name, p.Width, p.Height)
	for ii, g := range p.Glyphs {
		c, err := charCode(g.Char)
		if err != nil {
			return nil, fmt.Errorf("glyph %d: %v", ii+1, err)
		}
		gr, err := g.grid(p.Width, p.Height)
		if err != nil {
			return nil, fmt.Errorf("glyph %d (%q): %v", ii+1, c, err)
		}
		if _, err := f.Add(c, g.Desc, gr); err != nil {
			return nil, fmt.Errorf("glyph %d: %w", ii+1, err)
		}
		logDebug("loaded glyph %q (%s), %dx%d", c, g.Desc, gr.Width(), gr.Height())
	}
	if p.Width != 0 && f.Width != p.Width {
		logger.Warnf("font %s declares width %d but its glyphs are variable width", p.Name, p.Width)
	}
	return f, nil
}

// projectFromFont returns a project holding f and s. When binary is
// true, glyphs are stored in their binary form instead of text rows.
func projectFromFont(f *font.Font, s encode.Settings, binary bool) (*project, error) {
	p := &project{
		Name:     f.Name,
		Width:    f.Width,
		Height:   f.Height,
		Settings: s,
	}
	for _, g := range f.Glyphs() {
		pg := &projectGlyph{Char: charValue(g.Char)}
		if g.Desc != font.Describe(g.Char) {
			pg.Desc = g.Desc
		}
		if binary {
			data, err := g.Grid.MarshalBinary()
			if err != nil {
				return nil, err
			}
			pg.Data = hex.EncodeToString(data)
		} else {
			pg.Rows = g.Grid.Rows()
		}
		p.Glyphs = append(p.Glyphs, pg)
	}
	return p, nil
}

func (p *project) Marshal() ([]byte, error) {
	return yaml.Marshal(p)
}

func (p *project) Save(filename string) error {
	return p.save(filename, writeOutputFile)
}

// Replace saves p to filename, overwriting it if it exists.
func (p *project) Replace(filename string) error {
	return p.save(filename, replaceOutputFile)
}

func (p *project) save(filename string, writer func(string, func(*os.File) error) error) error {
	data, err := p.Marshal()
	if err != nil {
		return err
	}
	return writer(filename, func(f *os.File) error {
		_, err := f.Write(data)
		return err
	})
}
