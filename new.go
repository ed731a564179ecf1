package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/fiam/glyphhdr/encode"
	"github.com/fiam/glyphhdr/font"
)

const (
	defaultChars = "0x20-0x7e"
	seedBasic    = "basic"
)

// parseChars parses a comma separated list of characters or ranges of
// characters, as in "0x20-0x7e,A,0xb0". Each end of a range accepts the
// same forms as the char field of a glyph.
func parseChars(s string) ([]rune, error) {
	var runes []rune
	seen := make(map[rune]bool)
	add := func(r rune) {
		if !seen[r] {
			seen[r] = true
			runes = append(runes, r)
		}
	}
	for _, item := range strings.Split(s, ",") {
		if item == "" {
			continue
		}
		// "-" on its own or at either end is the character itself
		first, last, isRange := strings.Cut(item, "-")
		if !isRange || first == "" || last == "" {
			r, err := charCode(item)
			if err != nil {
				return nil, err
			}
			add(r)
			continue
		}
		from, err := charCode(first)
		if err != nil {
			return nil, err
		}
		to, err := charCode(last)
		if err != nil {
			return nil, err
		}
		if to < from {
			return nil, fmt.Errorf("invalid character range %q", item)
		}
		for r := from; r <= to; r++ {
			add(r)
		}
	}
	if len(runes) == 0 {
		return nil, errors.New("no characters given")
	}
	return runes, nil
}

func newFont(ctx *cli.Context) (*font.Font, error) {
	name := ctx.String("name")
	if name == "" {
		return nil, errors.New("a font name is required, use --name")
	}
	runes, err := parseChars(ctx.String("chars"))
	if err != nil {
		return nil, err
	}
	switch seed := ctx.String("seed"); seed {
	case seedBasic:
		logVerbose("seeding font %s from the 7x13 basic face", name)
		return font.FromFace(name, basicfont.Face7x13, runes)
	case "":
	default:
		return nil, fmt.Errorf("unknown seed %q, the only available seed is %q", seed, seedBasic)
	}
	width := ctx.Int("width")
	height := ctx.Int("height")
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid font size %dx%d, use --width and --height", width, height)
	}
	f := font.New(name, width, height)
	for _, r := range runes {
		if _, err := f.AddBlank(r); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func newAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("new requires 1 argument, see help new")
	}
	f, err := newFont(ctx)
	if err != nil {
		return err
	}
	s := encode.DefaultSettings()
	if err := applySettingsFlags(ctx, &s); err != nil {
		return err
	}
	p, err := projectFromFont(f, s, false)
	if err != nil {
		return err
	}
	output := ctx.Args().Get(0)
	logVerbose("creating project %s with %d glyphs of %dx%d", output, f.Len(), f.Width, f.Height)
	return p.Save(output)
}

// fmtAction rewrites a project in its canonical form.
func fmtAction(ctx *cli.Context) error {
	if ctx.NArg() < 1 || ctx.NArg() > 2 {
		return errors.New("fmt requires 1 or 2 arguments, see help fmt")
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
	if ctx.Bool("sort") {
		f.Sort()
	}
	formatted, err := projectFromFont(f, p.Settings, ctx.Bool("data"))
	if err != nil {
		return err
	}
	output := ctx.Args().Get(1)
	if output == "" {
		// in place
		return formatted.Replace(input)
	}
	return formatted.Save(output)
}
