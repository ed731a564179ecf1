// Package encode packs pixel grids into fixed width words.
//
// An Encoder works on a private copy of every grid: it rotates, mirrors
// and inverts the copy, then walks it in scan order and packs every line
// into words of Settings.Bits bits. Lines that don't fill their last word
// are padded according to the alignment.
package encode

import (
	"fmt"
	"strings"

	"github.com/fiam/glyphhdr/grid"
	"github.com/fiam/glyphhdr/scan"
)

// BitOrder selects where the first pixel of a word goes.
type BitOrder int

const (
	// MSBFirst puts the first pixel in the most significant bit.
	MSBFirst BitOrder = iota
	// LSBFirst puts the first pixel in the least significant bit.
	LSBFirst
)

// ByteOrder selects the in-memory layout of multi-byte words.
type ByteOrder int

const (
	BigEndian ByteOrder = iota
	LittleEndian
)

// Alignment selects where the pixels of a partial word are placed.
type Alignment int

const (
	// AlignTop places the pixels at the high end of the word.
	AlignTop Alignment = iota
	// AlignBottom places the pixels at the low end of the word.
	AlignBottom
)

var (
	bitOrderNames  = [...]string{"msb", "lsb"}
	byteOrderNames = [...]string{"big", "little"}
	alignmentNames = [...]string{"top", "bottom"}
)

func name(names []string, v int) string {
	if v >= 0 && v < len(names) {
		return names[v]
	}
	return fmt.Sprintf("unknown(%d)", v)
}

func parseName(what string, names []string, text []byte) (int, error) {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for ii, n := range names {
		if s == n {
			return ii, nil
		}
	}
	return 0, fmt.Errorf("invalid %s %q, must be one of %s", what, s, strings.Join(names, ", "))
}

func (o BitOrder) String() string { return name(bitOrderNames[:], int(o)) }

// MarshalText implements encoding.TextMarshaler.
func (o BitOrder) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *BitOrder) UnmarshalText(text []byte) error {
	v, err := parseName("bit order", bitOrderNames[:], text)
	if err == nil {
		*o = BitOrder(v)
	}
	return err
}

func (o ByteOrder) String() string { return name(byteOrderNames[:], int(o)) }

// MarshalText implements encoding.TextMarshaler.
func (o ByteOrder) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *ByteOrder) UnmarshalText(text []byte) error {
	v, err := parseName("byte order", byteOrderNames[:], text)
	if err == nil {
		*o = ByteOrder(v)
	}
	return err
}

func (a Alignment) String() string { return name(alignmentNames[:], int(a)) }

// MarshalText implements encoding.TextMarshaler.
func (a Alignment) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Alignment) UnmarshalText(text []byte) error {
	v, err := parseName("alignment", alignmentNames[:], text)
	if err == nil {
		*a = Alignment(v)
	}
	return err
}

// Settings controls how glyphs are transformed and packed. Use
// DefaultSettings to obtain a usable value; fields missing from a
// decoded file keep whatever the target held before decoding.
type Settings struct {
	// Bits is the word size. Only 8, 16, 32 and 64 are supported, any
	// other value is treated as 8.
	Bits int `yaml:"bits"`
	// CType is the C type used for the arrays. When empty or not
	// matching Bits, the type is derived from the word size.
	CType            string         `yaml:"ctype,omitempty"`
	BitOrder         BitOrder       `yaml:"bit_order"`
	ByteOrder        ByteOrder      `yaml:"byte_order"`
	Alignment        Alignment      `yaml:"alignment"`
	Rotation         grid.Rotation  `yaml:"rotation"`
	MirrorHorizontal bool           `yaml:"mirror_horizontal"`
	MirrorVertical   bool           `yaml:"mirror_vertical"`
	Invert           bool           `yaml:"invert"`
	Scan             scan.Direction `yaml:"scan"`
	// Columns splits lines longer than a word into word sized chunks
	// that are encoded one after the other.
	Columns bool `yaml:"columns"`
	// Comments enables the ASCII art rendering of every glyph in
	// generated headers.
	Comments bool `yaml:"comments"`
}

// DefaultSettings returns the settings used when nothing else has been
// configured: 8 bit words, vertical-major scan from the top left corner,
// MSB first, big endian, top aligned, no transforms and glyph comments.
func DefaultSettings() Settings {
	return Settings{
		Bits:     8,
		Comments: true,
	}
}

var cTypes = map[int][]string{
	8:  {"uint8_t", "unsigned char"},
	16: {"uint16_t"},
	32: {"uint32_t"},
	64: {"uint64_t"},
}

// WordBits returns the effective word size. Unsupported sizes fall back
// to 8, packing and formatting every word as an 8 bit word.
func (s Settings) WordBits() int {
	switch s.Bits {
	case 8, 16, 32, 64:
		return s.Bits
	}
	return 8
}

// SupportedBits reports whether Bits is one of the supported word sizes.
func (s Settings) SupportedBits() bool {
	return s.WordBits() == s.Bits
}

// DataType returns the C type for the configured word size.
func (s Settings) DataType() string {
	types := cTypes[s.WordBits()]
	for _, t := range types {
		if t == s.CType {
			return t
		}
	}
	return types[0]
}
