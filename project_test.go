package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/fiam/glyphhdr/encode"
	"github.com/fiam/glyphhdr/font"
	"github.com/fiam/glyphhdr/grid"
)

const tinyProject = `name: tiny
width: 3
height: 3
settings:
  bits: 16
  bit_order: lsb
  rotation: 90
  scan:
    priority: horizontal
glyphs:
  - char: A
    rows:
      - "X.."
      - "X.X"
  - char: 0x20
  - char: "0x21"
    desc: bang
    rows:
      - ".X."
      - ".X."
      - "..."
`

func writeTestFile(t *testing.T, name string, data string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

// nonInteractive replaces stdin with a file that is not a terminal for
// the duration of the test, so existing files are never overwritten.
func nonInteractive(t *testing.T) {
	t.Helper()
	f, err := os.Open(os.DevNull)
	if err != nil {
		t.Fatal(err)
	}
	stdin, force := os.Stdin, forceFlag
	os.Stdin, forceFlag = f, false
	t.Cleanup(func() {
		os.Stdin, forceFlag = stdin, force
		f.Close()
	})
}

func TestCharCode(t *testing.T) {
	valid := []struct {
		in   interface{}
		want rune
	}{
		{"A", 'A'},
		{"7", '7'},
		{65, 'A'},
		{"65", 'A'},
		{"0x41", 'A'},
		{"0X41", 'A'},
		{"é", 'é'},
	}
	for _, v := range valid {
		got, err := charCode(v.in)
		if err != nil {
			t.Errorf("charCode(%v): %v", v.in, err)
			continue
		}
		if got != v.want {
			t.Errorf("charCode(%v) = %q, want %q", v.in, got, v.want)
		}
	}
	for _, in := range []interface{}{nil, true, 1.5, "", "zz", "0xzz", -1, "0x7fffffff"} {
		if r, err := charCode(in); err == nil {
			t.Errorf("charCode(%v) = %q, expecting an error", in, r)
		}
	}
}

func TestCharValueRoundTrip(t *testing.T) {
	for _, r := range []rune{'A', ' ', '"', '\\', 0x7f, 0xb0, 0x1f600} {
		got, err := charCode(charValue(r))
		if err != nil {
			t.Fatalf("%q: %v", r, err)
		}
		if got != r {
			t.Errorf("expecting %q after round trip, got %q", r, got)
		}
	}
}

func TestLoadProject(t *testing.T) {
	p, err := loadProject(writeTestFile(t, "tiny.yaml", tinyProject))
	if err != nil {
		t.Fatal(err)
	}
	s := p.Settings
	if s.Bits != 16 || s.BitOrder != encode.LSBFirst || s.Rotation != grid.Rotate90 {
		t.Fatalf("unexpected settings %+v", s)
	}
	if !s.Comments {
		t.Fatal("missing keys must keep their default values")
	}
	if s.Scan.Priority.String() != "horizontal" || s.Scan.Horizontal.String() != "left-right" {
		t.Fatalf("unexpected scan direction %+v", s.Scan)
	}
	f, err := p.Font()
	if err != nil {
		t.Fatal(err)
	}
	if f.Len() != 3 || f.Width != 3 || f.Height != 3 {
		t.Fatalf("unexpected font %d glyphs %dx%d", f.Len(), f.Width, f.Height)
	}
	a, err := f.Lookup('A')
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"X..", "X.X", "..."}, a.Grid.Rows()); diff != "" {
		t.Errorf("short rows must be padded (-want +got):\n%s", diff)
	}
	space, err := f.Lookup(' ')
	if err != nil {
		t.Fatal(err)
	}
	if space.Grid.Count() != 0 || space.Desc != "space" {
		t.Errorf("unexpected blank glyph %q %v", space.Desc, space.Grid)
	}
	bang, err := f.Lookup('!')
	if err != nil {
		t.Fatal(err)
	}
	if bang.Desc != "bang" {
		t.Errorf("expecting desc bang, got %q", bang.Desc)
	}
}

func TestLoadProjectErrors(t *testing.T) {
	tests := map[string]string{
		"missing name": "height: 8\n",
		"bad height":   "name: x\nheight: 0\n",
		"bad rotation": "name: x\nheight: 8\nsettings:\n  rotation: 45\n",
		"bad order":    "name: x\nheight: 8\nsettings:\n  bit_order: middle\n",
		"not yaml":     "name: [x\n",
		"bad desc":     "name: x\nheight: 1\nglyphs:\n  - char: a\n    desc: ../a\n",
	}
	for name, data := range tests {
		if _, err := loadProject(writeTestFile(t, "p.yaml", data)); err == nil {
			t.Errorf("%s: expecting an error", name)
		}
	}
	if _, err := loadProject(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expecting an error for a missing file")
	}
}

func TestProjectFontErrors(t *testing.T) {
	tests := []struct {
		name    string
		project string
		want    string
	}{
		{"both", "name: x\nwidth: 2\nheight: 1\nglyphs:\n  - char: a\n    rows: [X.]\n    data: \"0201c0\"\n", "both rows and data"},
		{"pixel", "name: x\nwidth: 2\nheight: 1\nglyphs:\n  - char: a\n    rows: [X?]\n", "invalid"},
		{"blank variable", "name: x\nheight: 1\nglyphs:\n  - char: a\n", "variable width"},
		{"duplicate", "name: x\nwidth: 1\nheight: 1\nglyphs:\n  - char: a\n  - char: 97\n", "duplicate"},
		{"char", "name: x\nwidth: 1\nheight: 1\nglyphs:\n  - char: yes\n", "quoted"},
		{"data", "name: x\nwidth: 1\nheight: 1\nglyphs:\n  - char: a\n    data: zz\n", "invalid data"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := loadProject(writeTestFile(t, "p.yaml", tc.project))
			if err != nil {
				t.Fatal(err)
			}
			_, err = p.Font()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expecting error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestProjectFontDuplicate(t *testing.T) {
	p := newProject()
	p.Name = "x"
	p.Width = 1
	p.Height = 1
	p.Glyphs = []*projectGlyph{{Char: "a"}, {Char: 97}}
	if _, err := p.Font(); !errors.Is(err, font.ErrDuplicate) {
		t.Fatalf("expecting ErrDuplicate, got %v", err)
	}
}

func TestProjectSaveRoundTrip(t *testing.T) {
	src, err := loadProject(writeTestFile(t, "tiny.yaml", tinyProject))
	if err != nil {
		t.Fatal(err)
	}
	want, err := src.Font()
	if err != nil {
		t.Fatal(err)
	}
	for _, binary := range []bool{false, true} {
		p, err := projectFromFont(want, src.Settings, binary)
		if err != nil {
			t.Fatal(err)
		}
		output := filepath.Join(t.TempDir(), "out.yaml")
		if err := p.Save(output); err != nil {
			t.Fatal(err)
		}
		loaded, err := loadProject(output)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(src.Settings, loaded.Settings); diff != "" {
			t.Errorf("binary=%v: settings differ (-want +got):\n%s", binary, diff)
		}
		got, err := loaded.Font()
		if err != nil {
			t.Fatal(err)
		}
		if got.Len() != want.Len() || got.Width != want.Width || got.Height != want.Height {
			t.Fatalf("binary=%v: font changed after round trip", binary)
		}
		for ii, g := range got.Glyphs() {
			w := want.Glyphs()[ii]
			if g.Char != w.Char || g.Desc != w.Desc || !g.Grid.Equal(w.Grid) {
				t.Errorf("binary=%v: glyph %d is %q %q\n%v\nwant %q %q\n%v", binary, ii, g.Char, g.Desc, g.Grid, w.Char, w.Desc, w.Grid)
			}
		}
	}
}

func TestProjectSaveExisting(t *testing.T) {
	output := writeTestFile(t, "exists.yaml", "keep")
	p := newProject()
	p.Name = "x"
	p.Height = 1
	nonInteractive(t)
	if err := p.Save(output); err == nil {
		t.Fatal("expecting an error when overwriting without --force")
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "keep" {
		t.Fatalf("existing file was modified: %q", data)
	}
	if err := p.Replace(output); err != nil {
		t.Fatal(err)
	}
	if forceFlag {
		t.Fatal("Replace must not enable --force")
	}
	if _, err := loadProject(output); err != nil {
		t.Fatal(err)
	}
}
