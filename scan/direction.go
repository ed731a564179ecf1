// Package scan defines the order in which the cells of a grid are visited
// while packing them into words.
//
// A scan is made of lines. Each line is one step of the outer loop and is
// walked cell by cell by the inner loop. Which axis is outer and which
// directions both loops take is described by a Direction.
package scan

import (
	"fmt"
	"strconv"
	"strings"
)

// Priority selects which axis groups cells into lines.
type Priority int

const (
	// VerticalMajor makes every column a line: the outer loop walks x and
	// the inner loop walks y.
	VerticalMajor Priority = iota
	// HorizontalMajor makes every row a line: the outer loop walks y and
	// the inner loop walks x.
	HorizontalMajor
)

// Horizontal is the direction x is walked in.
type Horizontal int

const (
	LeftToRight Horizontal = iota
	RightToLeft
)

// Vertical is the direction y is walked in.
type Vertical int

const (
	TopToBottom Vertical = iota
	BottomToTop
)

// Legacy bitmask values, as stored by older project files.
const (
	UpDown                 = 0x01
	DownUp                 = 0x02
	LeftRight              = 0x10
	RightLeft              = 0x20
	VerticalOverHorizontal = 0x100
	HorizontalOverVertical = 0x200

	verticalMask   = 0x3
	horizontalMask = 0x30
	priorityMask   = 0x300
)

var (
	priorityNames   = [...]string{"vertical", "horizontal"}
	horizontalNames = [...]string{"left-right", "right-left"}
	verticalNames   = [...]string{"up-down", "down-up"}
)

func (p Priority) String() string {
	if p == HorizontalMajor {
		return priorityNames[1]
	}
	return priorityNames[0]
}

// MarshalText implements encoding.TextMarshaler.
func (p Priority) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Priority) UnmarshalText(text []byte) error {
	v, err := lookup("priority", string(text), priorityNames[:])
	*p = Priority(v)
	return err
}

func (h Horizontal) String() string {
	if h == RightToLeft {
		return horizontalNames[1]
	}
	return horizontalNames[0]
}

// Arrow returns the direction in the "left -> right" form used by header
// comments.
func (h Horizontal) Arrow() string {
	if h == RightToLeft {
		return "right -> left"
	}
	return "left -> right"
}

// MarshalText implements encoding.TextMarshaler.
func (h Horizontal) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Horizontal) UnmarshalText(text []byte) error {
	v, err := lookup("horizontal direction", string(text), horizontalNames[:])
	*h = Horizontal(v)
	return err
}

func (v Vertical) String() string {
	if v == BottomToTop {
		return verticalNames[1]
	}
	return verticalNames[0]
}

// Arrow returns the direction in the "up -> down" form used by header
// comments.
func (v Vertical) Arrow() string {
	if v == BottomToTop {
		return "down -> up"
	}
	return "up -> down"
}

// MarshalText implements encoding.TextMarshaler.
func (v Vertical) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Vertical) UnmarshalText(text []byte) error {
	n, err := lookup("vertical direction", string(text), verticalNames[:])
	*v = Vertical(n)
	return err
}

func lookup(what string, s string, names []string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for ii, name := range names {
		if s == name {
			return ii, nil
		}
	}
	return 0, fmt.Errorf("invalid %s %q, must be one of %s", what, s, strings.Join(names, ", "))
}

// Direction describes a complete scan order. The zero value is the
// default: vertical-major, left to right, top to bottom.
type Direction struct {
	Priority   Priority   `yaml:"priority"`
	Horizontal Horizontal `yaml:"horizontal"`
	Vertical   Vertical   `yaml:"vertical"`
}

// FromBits decodes a legacy bitmask. Missing or unknown fields decode to
// their defaults.
func FromBits(bits uint32) Direction {
	var d Direction
	if bits&priorityMask == HorizontalOverVertical {
		d.Priority = HorizontalMajor
	}
	if bits&horizontalMask == RightLeft {
		d.Horizontal = RightToLeft
	}
	if bits&verticalMask == DownUp {
		d.Vertical = BottomToTop
	}
	return d
}

// Bits encodes d as a legacy bitmask.
func (d Direction) Bits() uint32 {
	var bits uint32 = VerticalOverHorizontal | LeftRight | UpDown
	if d.Priority == HorizontalMajor {
		bits = bits&^priorityMask | HorizontalOverVertical
	}
	if d.Horizontal == RightToLeft {
		bits = bits&^horizontalMask | RightLeft
	}
	if d.Vertical == BottomToTop {
		bits = bits&^verticalMask | DownUp
	}
	return bits
}

// LineLength returns the number of cells in every line of a w x h grid.
func (d Direction) LineLength(w, h int) int {
	if d.Priority == HorizontalMajor {
		return w
	}
	return h
}

// Lines returns the number of lines in a w x h grid.
func (d Direction) Lines(w, h int) int {
	if d.Priority == HorizontalMajor {
		return h
	}
	return w
}

// String describes the direction as "first <inner>, then <outer>".
func (d Direction) String() string {
	inner, outer := d.Vertical.Arrow(), d.Horizontal.Arrow()
	if d.Priority == HorizontalMajor {
		inner, outer = outer, inner
	}
	return fmt.Sprintf("first %s, then %s", inner, outer)
}

// Words returns d in the form accepted by ParseDirection.
func (d Direction) Words() string {
	return d.Priority.String() + "," + d.Horizontal.String() + "," + d.Vertical.String()
}

// ParseDirection parses either a legacy bitmask ("0x211") or a list of
// words separated by commas, spaces or slashes, in any order: "vertical" or
// "horizontal" for the priority, "left-right" or "right-left" and
// "up-down" or "down-up" for the directions. Omitted words keep their
// defaults.
func ParseDirection(s string) (Direction, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return Direction{}, fmt.Errorf("invalid scan direction %q: %v", s, err)
		}
		return FromBits(uint32(v)), nil
	}
	var d Direction
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '/' })
	for _, f := range fields {
		f = strings.ToLower(f)
		switch f {
		case priorityNames[0], priorityNames[1]:
			d.Priority.UnmarshalText([]byte(f))
		case horizontalNames[0], horizontalNames[1]:
			d.Horizontal.UnmarshalText([]byte(f))
		case verticalNames[0], verticalNames[1]:
			d.Vertical.UnmarshalText([]byte(f))
		default:
			return Direction{}, fmt.Errorf("invalid scan direction word %q", f)
		}
	}
	return d, nil
}
