package grid

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRotate(t *testing.T) {
	tests := []struct {
		rot  Rotation
		want []string
	}{
		{Rotate0, []string{"XX.", "..X"}},
		// counter-clockwise
		{Rotate90, []string{".X", "X.", "X."}},
		{Rotate180, []string{"X..", ".XX"}},
		// clockwise
		{Rotate270, []string{".X", ".X", "X."}},
	}
	for _, tc := range tests {
		t.Run(tc.rot.String(), func(t *testing.T) {
			g := mustParse(t, "XX.", "..X")
			if err := g.Rotate(tc.rot); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, g.Rows()); diff != "" {
				t.Errorf("unexpected rows (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMirror(t *testing.T) {
	g := mustParse(t, "XX.", "..X")
	if err := g.Mirror(true, false); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{".XX", "X.."}, g.Rows()); diff != "" {
		t.Errorf("horizontal (-want +got):\n%s", diff)
	}
	g = mustParse(t, "XX.", "..X")
	if err := g.Mirror(false, true); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"..X", "XX."}, g.Rows()); diff != "" {
		t.Errorf("vertical (-want +got):\n%s", diff)
	}
}

func TestTransformRoundTrip(t *testing.T) {
	orig := mustParse(t,
		"X...X",
		".XX..",
		"...X.",
	)
	g := orig.Clone()
	if err := g.Rotate(Rotate90); err != nil {
		t.Fatal(err)
	}
	if g.Width() != 3 || g.Height() != 5 {
		t.Fatalf("expecting 3x5 grid after rotating, got %dx%d", g.Width(), g.Height())
	}
	if err := g.Rotate(Rotate270); err != nil {
		t.Fatal(err)
	}
	if !g.Equal(orig) {
		t.Fatalf("rotating by 90 and 270 degrees changed the grid:\n%s", g)
	}
	for _, m := range [][2]bool{{true, false}, {false, true}, {true, true}} {
		g := orig.Clone()
		for ii := 0; ii < 2; ii++ {
			if err := g.Mirror(m[0], m[1]); err != nil {
				t.Fatal(err)
			}
		}
		if !g.Equal(orig) {
			t.Errorf("mirroring twice (%v, %v) changed the grid:\n%s", m[0], m[1], g)
		}
	}
}

func TestTransformInvalidRotation(t *testing.T) {
	g := mustParse(t, "XX.", "..X")
	for _, r := range []Rotation{-1, 4, 7} {
		if err := g.Transform(r, true, false); !errors.Is(err, ErrInvalidRotation) {
			t.Errorf("rotation %d: expecting ErrInvalidRotation, got %v", int(r), err)
		}
	}
	if diff := cmp.Diff([]string{"XX.", "..X"}, g.Rows()); diff != "" {
		t.Errorf("failed transform modified the grid (-want +got):\n%s", diff)
	}
}

func TestRotationFromDegrees(t *testing.T) {
	for deg, want := range map[int]Rotation{0: Rotate0, 90: Rotate90, 180: Rotate180, 270: Rotate270, 360: Rotate0, -90: Rotate270} {
		got, err := RotationFromDegrees(deg)
		if err != nil {
			t.Errorf("%d: %v", deg, err)
			continue
		}
		if got != want {
			t.Errorf("%d: expecting %v, got %v", deg, want, got)
		}
	}
	if _, err := RotationFromDegrees(45); !errors.Is(err, ErrInvalidRotation) {
		t.Errorf("expecting ErrInvalidRotation for 45 degrees, got %v", err)
	}
	var r Rotation
	if err := r.UnmarshalText([]byte("270")); err != nil || r != Rotate270 {
		t.Errorf("UnmarshalText(270) = %v, %v", r, err)
	}
}
