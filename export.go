package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/fiam/glyphhdr/encode"
	"github.com/fiam/glyphhdr/font"
	"github.com/fiam/glyphhdr/header"
)

// exportHeader writes f as a C header to output and returns an error if
// the file could not be written or, when strict is true, if any glyph
// failed.
func exportHeader(output string, f *font.Font, s encode.Settings, strict bool) error {
	var report *header.Report
	err := writeOutputFile(output, func(w *os.File) error {
		var err error
		report, err = header.Write(w, f, header.Options{
			Settings: s,
			FileName: filepath.Base(output),
			Logger:   logger,
		})
		return err
	})
	if err != nil {
		return err
	}
	logVerbose("wrote %s: %d glyphs, %d words, %d bytes", output, report.Glyphs, report.Words, report.Written)
	if !report.OK() {
		if strict {
			return fmt.Errorf("%d glyph(s) in %s could not be encoded", len(report.Failed), output)
		}
		logger.Warnf("%d glyph(s) in %s could not be encoded and were replaced by #error directives", len(report.Failed), output)
	}
	return nil
}

func exportAction(ctx *cli.Context) error {
	if ctx.NArg() < 1 || ctx.NArg() > 2 {
		return errors.New("export requires 1 or 2 arguments, see help export")
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
		output = replaceExt(input, ".h")
	}
	return exportHeader(output, f, p.Settings, ctx.Bool("strict"))
}

func replaceExt(filename string, ext string) string {
	return filename[:len(filename)-len(filepath.Ext(filename))] + ext
}
