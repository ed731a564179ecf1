package scan

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/fiam/glyphhdr/grid"
)

func allDirections() []Direction {
	var dirs []Direction
	for _, p := range []Priority{VerticalMajor, HorizontalMajor} {
		for _, h := range []Horizontal{LeftToRight, RightToLeft} {
			for _, v := range []Vertical{TopToBottom, BottomToTop} {
				dirs = append(dirs, Direction{Priority: p, Horizontal: h, Vertical: v})
			}
		}
	}
	return dirs
}

func visit(o *Order) [][]image.Point {
	var lines [][]image.Point
	for o.OuterBegin(); o.OuterCond(); o.OuterNext() {
		var line []image.Point
		for o.InnerBegin(); o.InnerCond(); o.InnerNext() {
			line = append(line, image.Pt(o.X(), o.Y()))
		}
		lines = append(lines, line)
	}
	return lines
}

func TestOrder(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
		want [][]image.Point
	}{
		{
			name: "default",
			want: [][]image.Point{
				{{0, 0}, {0, 1}, {0, 2}},
				{{1, 0}, {1, 1}, {1, 2}},
			},
		},
		{
			name: "horizontal right-left down-up",
			dir:  Direction{Priority: HorizontalMajor, Horizontal: RightToLeft, Vertical: BottomToTop},
			want: [][]image.Point{
				{{1, 2}, {0, 2}},
				{{1, 1}, {0, 1}},
				{{1, 0}, {0, 0}},
			},
		},
		{
			name: "vertical right-left",
			dir:  Direction{Horizontal: RightToLeft},
			want: [][]image.Point{
				{{1, 0}, {1, 1}, {1, 2}},
				{{0, 0}, {0, 1}, {0, 2}},
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := New(2, 3, tc.dir)
			if diff := cmp.Diff(tc.want, visit(o)); diff != "" {
				t.Errorf("unexpected scan (-want +got):\n%s", diff)
			}
			if o.Lines() != len(tc.want) || o.LineLength() != len(tc.want[0]) {
				t.Errorf("expecting %d lines of %d cells, got %d of %d",
					len(tc.want), len(tc.want[0]), o.Lines(), o.LineLength())
			}
		})
	}
}

func TestAreaMatchesExtractedGrid(t *testing.T) {
	g, err := grid.ParseRows([]string{
		"X..X.",
		".XX.X",
		"X.XX.",
		"..X.X",
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, a := range []grid.Area{grid.Rect(1, 1, 4, 3), grid.Rect(2, 0, 9, 2), grid.At(3, 1)} {
		sub, err := g.Sub(grid.Rect(a.X0, a.Y0, clipEnd(a.X1, g.Width()), clipEnd(a.Y1, g.Height())))
		if err != nil {
			t.Fatal(err)
		}
		for _, d := range allDirections() {
			o, err := NewArea(g.Width(), g.Height(), d, a)
			if err != nil {
				t.Fatal(err)
			}
			var got, want []bool
			for o.OuterBegin(); o.OuterCond(); o.OuterNext() {
				for o.InnerBegin(); o.InnerCond(); o.InnerNext() {
					v, err := g.Get(o.X(), o.Y())
					if err != nil {
						t.Fatal(err)
					}
					got = append(got, v)
				}
			}
			so := New(sub.Width(), sub.Height(), d)
			for so.OuterBegin(); so.OuterCond(); so.OuterNext() {
				for so.InnerBegin(); so.InnerCond(); so.InnerNext() {
					v, _ := sub.Get(so.X(), so.Y())
					want = append(want, v)
				}
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("area %v, %v (-want +got):\n%s", a, d.Words(), diff)
			}
		}
	}
}

func clipEnd(end, size int) int {
	if end == grid.Unspecified || end > size {
		return size
	}
	return end
}

func TestNewAreaInvalid(t *testing.T) {
	for _, a := range []grid.Area{grid.At(5, 0), grid.Rect(2, 2, 1, 3), grid.Rect(-3, 0, 1, 1)} {
		if _, err := NewArea(5, 4, Direction{}, a); err == nil {
			t.Errorf("%v: expecting an error", a)
		}
	}
}

func TestBits(t *testing.T) {
	for _, d := range allDirections() {
		if got := FromBits(d.Bits()); got != d {
			t.Errorf("%s: bits %#x decode to %s", d.Words(), d.Bits(), got.Words())
		}
	}
	if got := (Direction{}).Bits(); got != 0x111 {
		t.Errorf("default direction encodes to %#x", got)
	}
	if got := FromBits(0); got != (Direction{}) {
		t.Errorf("zero bitmask decodes to %s", got.Words())
	}
	want := Direction{Priority: HorizontalMajor, Horizontal: RightToLeft}
	if got := FromBits(HorizontalOverVertical | RightLeft | UpDown); got != want {
		t.Errorf("expecting %s, got %s", want.Words(), got.Words())
	}
}

func TestString(t *testing.T) {
	if s := (Direction{}).String(); s != "first up -> down, then left -> right" {
		t.Errorf("unexpected default description %q", s)
	}
	d := Direction{Priority: HorizontalMajor, Horizontal: RightToLeft, Vertical: BottomToTop}
	if s := d.String(); s != "first right -> left, then down -> up" {
		t.Errorf("unexpected description %q", s)
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"", Direction{}},
		{"horizontal, down-up", Direction{Priority: HorizontalMajor, Vertical: BottomToTop}},
		{"right-left vertical", Direction{Horizontal: RightToLeft}},
		{"horizontal/left-right/up-down", Direction{Priority: HorizontalMajor}},
		{"vertical/right-left/down-up", Direction{Horizontal: RightToLeft, Vertical: BottomToTop}},
		{"0x222", Direction{Priority: HorizontalMajor, Horizontal: RightToLeft, Vertical: BottomToTop}},
		{"0x111", Direction{}},
	}
	for _, tc := range tests {
		got, err := ParseDirection(tc.in)
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%q: expecting %s, got %s", tc.in, tc.want.Words(), got.Words())
		}
	}
	for _, in := range []string{"diagonal", "0xzz"} {
		if _, err := ParseDirection(in); err == nil {
			t.Errorf("%q: expecting an error", in)
		}
	}
	for _, d := range allDirections() {
		got, err := ParseDirection(d.Words())
		if err != nil || got != d {
			t.Errorf("%q: got %s, %v", d.Words(), got.Words(), err)
		}
	}
}
