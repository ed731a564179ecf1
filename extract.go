package main

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"
	"golang.org/x/image/draw"
)

func extractAction(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return errors.New("extract requires 2 arguments, see help extract")
	}
	p, err := loadProjectWithFlags(ctx, ctx.Args().Get(0))
	if err != nil {
		return err
	}
	f, err := p.Font()
	if err != nil {
		return err
	}
	dir := ctx.Args().Get(1)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	blanks := ctx.Bool("blanks")
	scale := ctx.Int("scale")
	if scale < 1 {
		scale = 1
	}
	grids, err := previewGrids(f, p.Settings, ctx.Bool("transformed"))
	if err != nil {
		return err
	}
	for ii, g := range f.Glyphs() {
		if !blanks && g.Grid.Count() == 0 {
			logDebug("skipping blank glyph %q", g.Char)
			continue
		}
		src := grids[ii]
		im := image.NewGray(image.Rect(0, 0, src.Width()*scale, src.Height()*scale))
		draw.NearestNeighbor.Scale(im, im.Bounds(), src, src.Bounds(), draw.Src, nil)
		output := filepath.Join(dir, fmt.Sprintf("%03d_%s.png", ii, g.Desc))
		logVerbose("extracting %q to %s", g.Char, output)
		if err := writeOutputFile(output, func(w *os.File) error {
			return png.Encode(w, im)
		}); err != nil {
			return err
		}
	}
	return nil
}
