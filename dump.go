package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/fiam/glyphhdr/encode"
	"github.com/fiam/glyphhdr/font"
)

// dumpFont writes every row of every glyph prefixed by its character,
// as in "A  [X  X]". Glyphs without a printable character use their
// descriptor.
func dumpFont(w io.Writer, f *font.Font, s encode.Settings, transformed bool) error {
	grids, err := previewGrids(f, s, transformed)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for ii, g := range f.Glyphs() {
		label := string(g.Char)
		if g.Char <= ' ' || g.Char == 0x7f {
			label = g.Desc
		}
		for _, row := range grids[ii].Rows() {
			fmt.Fprintf(bw, "%s  [%s]\n", label, strings.ReplaceAll(row, ".", " "))
		}
	}
	return bw.Flush()
}

func dumpAction(ctx *cli.Context) error {
	if ctx.NArg() < 1 || ctx.NArg() > 2 {
		return errors.New("dump requires 1 or 2 arguments, see help dump")
	}
	p, err := loadProjectWithFlags(ctx, ctx.Args().Get(0))
	if err != nil {
		return err
	}
	f, err := p.Font()
	if err != nil {
		return err
	}
	transformed := ctx.Bool("transformed")
	if ctx.NArg() == 1 {
		return dumpFont(os.Stdout, f, p.Settings, transformed)
	}
	return writeOutputFile(ctx.Args().Get(1), func(w *os.File) error {
		return dumpFont(w, f, p.Settings, transformed)
	})
}
