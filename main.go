package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

const (
	charsUsage = `Characters to include, as a comma separated list of characters or ranges.
	Each character is either the character itself, its decimal code or its
	hex code with a 0x prefix, e.g. 0x20-0x7e,0xb0.`
)

var (
	verboseFlag = false
	debugFlag   = false
	appVersion  string
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "glyphhdr"
	app.Version = appVersion
	app.Usage = "tool for encoding monochrome pixel fonts as C headers"
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:        "force",
			Aliases:     []string{"f"},
			Usage:       "Overwrite output files without asking",
			Destination: &forceFlag,
		},
		&cli.BoolFlag{
			Name:        "verbose",
			Aliases:     []string{"v"},
			Usage:       "Enable verbose output",
			Destination: &verboseFlag,
		},
		&cli.BoolFlag{
			Name:        "debug",
			Aliases:     []string{"d"},
			Usage:       "Print debug messages",
			Destination: &debugFlag,
		},
	}
	app.Before = func(ctx *cli.Context) error {
		setupLogging()
		return nil
	}
	strictFlag := &cli.BoolFlag{
		Name:  "strict",
		Usage: "Fail when any glyph can't be encoded instead of emitting #error directives",
	}
	transformedFlag := &cli.BoolFlag{
		Name:  "transformed",
		Usage: "Use glyphs as they are encoded, after rotation, mirroring and inversion",
	}
	var newFlags []cli.Flag
	newFlags = append(newFlags,
		&cli.StringFlag{
			Name:    "name",
			Aliases: []string{"n"},
			Usage:   "Font name",
		},
		&cli.IntFlag{
			Name:  "width",
			Usage: "Glyph width in pixels",
		},
		&cli.IntFlag{
			Name:  "height",
			Usage: "Glyph height in pixels",
		},
		&cli.StringFlag{
			Name:  "chars",
			Value: defaultChars,
			Usage: charsUsage,
		},
		&cli.StringFlag{
			Name:  "seed",
			Usage: "Draw the glyphs using a built in font instead of leaving them blank (basic)",
		},
	)
	newFlags = append(newFlags, settingsFlags...)
	var exportFlags []cli.Flag
	exportFlags = append(exportFlags, settingsFlags...)
	exportFlags = append(exportFlags, strictFlag)
	var fmtFlags []cli.Flag
	fmtFlags = append(fmtFlags, settingsFlags...)
	fmtFlags = append(fmtFlags,
		&cli.BoolFlag{
			Name:  "sort",
			Usage: "Sort glyphs by character code",
		},
		&cli.BoolFlag{
			Name:  "data",
			Usage: "Store glyphs in their compact binary form instead of text rows",
		},
	)
	var previewCmdFlags []cli.Flag
	previewCmdFlags = append(previewCmdFlags, settingsFlags...)
	previewCmdFlags = append(previewCmdFlags, previewFlags...)
	var generateFlags []cli.Flag
	generateFlags = append(generateFlags, previewFlags...)
	generateFlags = append(generateFlags, strictFlag)
	var extractFlags []cli.Flag
	extractFlags = append(extractFlags, settingsFlags...)
	extractFlags = append(extractFlags,
		&cli.BoolFlag{
			Name:    "blanks",
			Aliases: []string{"b"},
			Usage:   "Include blank glyphs in the extracted files",
		},
		&cli.IntFlag{
			Name:    "scale",
			Aliases: []string{"s"},
			Value:   1,
			Usage:   "Size of each glyph pixel in the output images",
		},
		transformedFlag,
	)
	var dumpFlags []cli.Flag
	dumpFlags = append(dumpFlags, settingsFlags...)
	dumpFlags = append(dumpFlags, transformedFlag)
	app.Commands = []*cli.Command{
		{
			Name:      "new",
			Usage:     "Create a new project file",
			ArgsUsage: "<project.yaml>",
			Flags:     newFlags,
			Action:    newAction,
		},
		{
			Name:      "fmt",
			Usage:     "Rewrite a project file in its canonical form",
			ArgsUsage: "<project.yaml> [output.yaml]",
			Flags:     fmtFlags,
			Action:    fmtAction,
		},
		{
			Name:      "export",
			Usage:     "Export a project as a C header",
			ArgsUsage: "<project.yaml> [output.h]",
			Flags:     exportFlags,
			Action:    exportAction,
		},
		{
			Name:      "generate",
			Usage:     "Export multiple headers from a generate.yaml file",
			ArgsUsage: "<generate.yaml>",
			Flags:     generateFlags,
			Action:    generateAction,
		},
		{
			Name:      "bin",
			Usage:     "Export the encoded glyphs of a project as raw binary data",
			ArgsUsage: "<project.yaml> [output.bin]",
			Flags:     settingsFlags,
			Action:    binAction,
		},
		{
			Name:      "preview",
			Usage:     "Generate a .png with every glyph of a project",
			ArgsUsage: "<project.yaml> [output.png]",
			Flags:     previewCmdFlags,
			Action:    previewAction,
		},
		{
			Name:      "extract",
			Usage:     "Extract all glyphs to individual images",
			ArgsUsage: "<project.yaml> <output-dir>",
			Flags:     extractFlags,
			Action:    extractAction,
		},
		{
			Name:      "dump",
			Usage:     "Print every glyph of a project as text",
			ArgsUsage: "<project.yaml> [output.txt]",
			Flags:     dumpFlags,
			Action:    dumpAction,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
