package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v2"

	"github.com/fiam/glyphhdr/encode"
	"github.com/fiam/glyphhdr/grid"
	"github.com/fiam/glyphhdr/scan"
)

// generateOverrides replace settings of a project for a single output.
// Unset fields keep the project value.
type generateOverrides struct {
	Bits             *int              `yaml:"bits"`
	CType            *string           `yaml:"ctype"`
	BitOrder         *encode.BitOrder  `yaml:"bit_order"`
	ByteOrder        *encode.ByteOrder `yaml:"byte_order"`
	Alignment        *encode.Alignment `yaml:"alignment"`
	Rotation         *grid.Rotation    `yaml:"rotation"`
	MirrorHorizontal *bool             `yaml:"mirror_horizontal"`
	MirrorVertical   *bool             `yaml:"mirror_vertical"`
	Invert           *bool             `yaml:"invert"`
	Scan             *scan.Direction   `yaml:"scan"`
	Columns          *bool             `yaml:"columns"`
	Comments         *bool             `yaml:"comments"`
}

func (o *generateOverrides) apply(s *encode.Settings) {
	if o == nil {
		return
	}
	if o.Bits != nil {
		s.Bits = *o.Bits
	}
	if o.CType != nil {
		s.CType = *o.CType
	}
	if o.BitOrder != nil {
		s.BitOrder = *o.BitOrder
	}
	if o.ByteOrder != nil {
		s.ByteOrder = *o.ByteOrder
	}
	if o.Alignment != nil {
		s.Alignment = *o.Alignment
	}
	if o.Rotation != nil {
		s.Rotation = *o.Rotation
	}
	if o.MirrorHorizontal != nil {
		s.MirrorHorizontal = *o.MirrorHorizontal
	}
	if o.MirrorVertical != nil {
		s.MirrorVertical = *o.MirrorVertical
	}
	if o.Invert != nil {
		s.Invert = *o.Invert
	}
	if o.Scan != nil {
		s.Scan = *o.Scan
	}
	if o.Columns != nil {
		s.Columns = *o.Columns
	}
	if o.Comments != nil {
		s.Comments = *o.Comments
	}
}

type generateOutputConfig struct {
	Project  string             `yaml:"project"`
	Output   string             `yaml:"output"`
	Settings *generateOverrides `yaml:"settings"`
}

type generateConfig struct {
	Previews bool                    `yaml:"previews"`
	Strict   bool                    `yaml:"strict"`
	Outputs  []*generateOutputConfig `yaml:"outputs"`
	Dir      string                  `yaml:"-"`
}

func (c *generateConfig) Load(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("error reading config file %s: %v", filename, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("error parsing config file %s: %v", filename, err)
	}
	// Store filename's directory for relative paths
	c.Dir = filepath.Dir(filename)
	return c.validate()
}

func (c *generateConfig) path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Dir, p)
}

func (c *generateConfig) OutputPath(o *generateOutputConfig) string {
	if o.Output != "" {
		return c.path(o.Output)
	}
	return replaceExt(c.path(o.Project), ".h")
}

func (c *generateConfig) validate() error {
	if len(c.Outputs) == 0 {
		return errors.New("no outputs defined")
	}
	seen := make(map[string]int)
	for ii, v := range c.Outputs {
		if v.Project == "" {
			return fmt.Errorf("project %d is empty", ii+1)
		}
		p := c.path(v.Project)
		st, err := os.Stat(p)
		if err != nil {
			return fmt.Errorf("project %q (%q) doesn't exist: %v", v.Project, p, err)
		}
		if st.IsDir() {
			return fmt.Errorf("project %q is a directory, not a file", v.Project)
		}
		out := c.OutputPath(v)
		if prev, found := seen[out]; found {
			return fmt.Errorf("outputs %d and %d both write to %s", prev, ii+1, strconv.Quote(out))
		}
		seen[out] = ii + 1
		if v.Settings != nil && v.Settings.Rotation != nil && !v.Settings.Rotation.Valid() {
			return fmt.Errorf("output %d has an invalid rotation", ii+1)
		}
	}
	return nil
}

func generateOutput(config *generateConfig, o *generateOutputConfig, opts *previewOptions) error {
	input := config.path(o.Project)
	logVerbose("loading project %q", input)
	p, err := loadProject(input)
	if err != nil {
		return err
	}
	o.Settings.apply(&p.Settings)
	f, err := p.Font()
	if err != nil {
		return err
	}
	output := config.OutputPath(o)
	logVerbose("generating header %q from %q", output, input)
	if err := exportHeader(output, f, p.Settings, config.Strict); err != nil {
		return err
	}
	if config.Previews {
		pngOutput := replaceExt(output, ".png")
		logVerbose("generating preview image %q from %q", pngOutput, input)
		if err := writePreview(pngOutput, f, p.Settings, opts); err != nil {
			return err
		}
	}
	return nil
}

func generateAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("generate requires 1 argument, see help generate")
	}
	configFile := ctx.Args().Get(0)
	var config generateConfig
	if err := config.Load(configFile); err != nil {
		return err
	}
	if ctx.Bool("strict") {
		config.Strict = true
	}
	opts := newPreviewOptions(ctx)
	var failed []string
	for _, v := range config.Outputs {
		if err := generateOutput(&config, v, opts); err != nil {
			logger.WithField("project", v.Project).WithError(err).Error("generating output failed")
			failed = append(failed, v.Project)
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d output(s) failed: %s", len(failed), strings.Join(failed, ", "))
	}
	return nil
}
