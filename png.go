package main

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/urfave/cli/v2"
	"golang.org/x/image/draw"

	"github.com/fiam/glyphhdr/encode"
	"github.com/fiam/glyphhdr/font"
	"github.com/fiam/glyphhdr/grid"
)

const (
	defaultMargin  = 1
	defaultColumns = 16
	defaultScale   = 4
)

var (
	gridColor = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
)

var previewFlags = []cli.Flag{
	&cli.IntFlag{
		Name:    "margin",
		Aliases: []string{"m"},
		Value:   defaultMargin,
		Usage:   "Margin between each glyph, in output pixels",
	},
	&cli.IntFlag{
		Name:    "sheet-columns",
		Aliases: []string{"c"},
		Value:   defaultColumns,
		Usage:   "Number of glyphs per row in the output image",
	},
	&cli.IntFlag{
		Name:    "scale",
		Aliases: []string{"s"},
		Value:   defaultScale,
		Usage:   "Size of each glyph pixel in the output image",
	},
	&cli.BoolFlag{
		Name:  "transformed",
		Usage: "Draw glyphs as they are encoded, after rotation, mirroring and inversion",
	},
}

type previewOptions struct {
	Margin      int
	Columns     int
	Scale       int
	Transformed bool
}

func newPreviewOptions(ctx *cli.Context) *previewOptions {
	opts := &previewOptions{
		Margin:      defaultMargin,
		Columns:     defaultColumns,
		Scale:       defaultScale,
		Transformed: ctx.Bool("transformed"),
	}
	if ctx.IsSet("margin") {
		opts.Margin = ctx.Int("margin")
	}
	if ctx.IsSet("sheet-columns") {
		opts.Columns = ctx.Int("sheet-columns")
	}
	if ctx.IsSet("scale") {
		opts.Scale = ctx.Int("scale")
	}
	if opts.Margin < 0 {
		opts.Margin = 0
	}
	if opts.Columns < 1 {
		opts.Columns = 1
	}
	if opts.Scale < 1 {
		opts.Scale = 1
	}
	return opts
}

// previewGrids returns the grids to draw for every glyph in f.
func previewGrids(f *font.Font, s encode.Settings, transformed bool) ([]*grid.Grid, error) {
	enc := encode.NewEncoder(s)
	glyphs := f.Glyphs()
	grids := make([]*grid.Grid, len(glyphs))
	for ii, g := range glyphs {
		if !transformed {
			grids[ii] = g.Grid
			continue
		}
		p, err := enc.Prepare(g.Grid)
		if err != nil {
			return nil, err
		}
		grids[ii] = p
	}
	return grids, nil
}

// previewImage draws every grid in a cell of a sheet separated by grid
// lines. Cells are as large as the largest grid.
func previewImage(grids []*grid.Grid, opts *previewOptions) *image.RGBA {
	cellWidth, cellHeight := 1, 1
	for _, g := range grids {
		cellWidth = max(cellWidth, g.Width()*opts.Scale)
		cellHeight = max(cellHeight, g.Height()*opts.Scale)
	}
	cols := opts.Columns
	rows := (len(grids) + cols - 1) / cols
	if rows == 0 {
		rows = 1
	}
	margin := opts.Margin
	imageWidth := (cellWidth+margin)*cols + margin
	imageHeight := (cellHeight+margin)*rows + margin

	img := image.NewRGBA(image.Rect(0, 0, imageWidth, imageHeight))
	// Grid lines first, cells are drawn on top
	draw.Draw(img, img.Bounds(), &image.Uniform{C: gridColor}, image.Point{}, draw.Src)
	for ii := 0; ii < cols*rows; ii++ {
		leftX := (ii%cols)*(cellWidth+margin) + margin
		topY := (ii/cols)*(cellHeight+margin) + margin
		cell := image.Rect(leftX, topY, leftX+cellWidth, topY+cellHeight)
		draw.Draw(img, cell, image.Black, image.Point{}, draw.Src)
		if ii >= len(grids) {
			continue
		}
		g := grids[ii]
		dr := image.Rect(leftX, topY, leftX+g.Width()*opts.Scale, topY+g.Height()*opts.Scale)
		draw.NearestNeighbor.Scale(img, dr, g, g.Bounds(), draw.Src, nil)
	}
	return img
}

func writePreview(output string, f *font.Font, s encode.Settings, opts *previewOptions) error {
	grids, err := previewGrids(f, s, opts.Transformed)
	if err != nil {
		return err
	}
	img := previewImage(grids, opts)
	return writeOutputFile(output, func(w *os.File) error {
		return png.Encode(w, img)
	})
}

func previewAction(ctx *cli.Context) error {
	if ctx.NArg() < 1 || ctx.NArg() > 2 {
		return errors.New("preview requires 1 or 2 arguments, see help preview")
	}
	input := ctx.Args().Get(0)
	p, err := loadProjectWithFlags(ctx, input)
	if err != nil {
		return err
	}
	f, err := p.Font()
	if err != nil {
		return err
	}
	output := ctx.Args().Get(1)
	if output == "" {
		output = replaceExt(input, ".png")
	}
	return writePreview(output, f, p.Settings, newPreviewOptions(ctx))
}
