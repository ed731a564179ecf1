package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/fiam/glyphhdr/encode"
	"github.com/fiam/glyphhdr/grid"
	"github.com/fiam/glyphhdr/scan"
)

// settingsFlags override the settings stored in a project. Only flags
// given explicitly are applied.
var settingsFlags = []cli.Flag{
	&cli.IntFlag{
		Name:  "bits",
		Usage: "Bits per word (8, 16, 32 or 64)",
	},
	&cli.StringFlag{
		Name:  "ctype",
		Usage: "C type used for the arrays, derived from --bits when empty",
	},
	&cli.StringFlag{
		Name:  "bit-order",
		Usage: "Position of the first scanned pixel in a word (msb or lsb)",
	},
	&cli.StringFlag{
		Name:  "byte-order",
		Usage: "Byte order of words wider than 8 bits (big or little)",
	},
	&cli.StringFlag{
		Name:  "alignment",
		Usage: "Alignment of the bits in a partially filled word (top or bottom)",
	},
	&cli.IntFlag{
		Name:    "rotation",
		Aliases: []string{"r"},
		Usage:   "Rotation in degrees (0, 90, 180 or 270)",
	},
	&cli.BoolFlag{
		Name:  "mirror-h",
		Usage: "Mirror glyphs horizontally",
	},
	&cli.BoolFlag{
		Name:  "mirror-v",
		Usage: "Mirror glyphs vertically",
	},
	&cli.BoolFlag{
		Name:  "invert",
		Usage: "Invert every pixel",
	},
	&cli.StringFlag{
		Name:  "scan",
		Usage: "Scan direction as priority/horizontal/vertical (e.g. horizontal/left-right/up-down) or a bitmask (e.g. 0x211)",
	},
	&cli.BoolFlag{
		Name:  "columns",
		Usage: "Split each array into one line per column or row",
	},
	&cli.BoolFlag{
		Name:  "comments",
		Usage: "Add ASCII art previews of every glyph",
	},
}

func applySettingsFlags(ctx *cli.Context, s *encode.Settings) error {
	if ctx.IsSet("bits") {
		s.Bits = ctx.Int("bits")
		if !s.SupportedBits() {
			logger.Warnf("%d bits per word are not supported, using %d", s.Bits, s.WordBits())
		}
	}
	if ctx.IsSet("ctype") {
		s.CType = ctx.String("ctype")
	}
	if ctx.IsSet("bit-order") {
		if err := s.BitOrder.UnmarshalText([]byte(ctx.String("bit-order"))); err != nil {
			return err
		}
	}
	if ctx.IsSet("byte-order") {
		if err := s.ByteOrder.UnmarshalText([]byte(ctx.String("byte-order"))); err != nil {
			return err
		}
	}
	if ctx.IsSet("alignment") {
		if err := s.Alignment.UnmarshalText([]byte(ctx.String("alignment"))); err != nil {
			return err
		}
	}
	if ctx.IsSet("rotation") {
		r, err := grid.RotationFromDegrees(ctx.Int("rotation"))
		if err != nil {
			return err
		}
		s.Rotation = r
	}
	if ctx.IsSet("mirror-h") {
		s.MirrorHorizontal = ctx.Bool("mirror-h")
	}
	if ctx.IsSet("mirror-v") {
		s.MirrorVertical = ctx.Bool("mirror-v")
	}
	if ctx.IsSet("invert") {
		s.Invert = ctx.Bool("invert")
	}
	if ctx.IsSet("scan") {
		d, err := scan.ParseDirection(ctx.String("scan"))
		if err != nil {
			return fmt.Errorf("invalid scan direction: %v", err)
		}
		s.Scan = d
	}
	if ctx.IsSet("columns") {
		s.Columns = ctx.Bool("columns")
	}
	if ctx.IsSet("comments") {
		s.Comments = ctx.Bool("comments")
	}
	logDebug("settings: %+v", *s)
	return nil
}

// loadProjectWithFlags loads a project and applies the settings flags
// given in ctx on top of its settings.
func loadProjectWithFlags(ctx *cli.Context, filename string) (*project, error) {
	p, err := loadProject(filename)
	if err != nil {
		return nil, err
	}
	if err := applySettingsFlags(ctx, &p.Settings); err != nil {
		return nil, err
	}
	return p, nil
}
