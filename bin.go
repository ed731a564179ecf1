package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"

	cli "github.com/urfave/cli/v2"

	"github.com/fiam/glyphhdr/encode"
	"github.com/fiam/glyphhdr/font"
)

// appendWord appends w most significant byte first, using as many bytes
// as the word has.
func appendWord(buf []byte, w encode.Word) []byte {
	switch w.Bits {
	case 8:
		return append(buf, byte(w.Value))
	case 16:
		return binary.BigEndian.AppendUint16(buf, uint16(w.Value))
	case 32:
		return binary.BigEndian.AppendUint32(buf, uint32(w.Value))
	default:
		return binary.BigEndian.AppendUint64(buf, w.Value)
	}
}

// encodeBin returns the encoded words of every glyph in f, one after
// another. Words already carry the configured byte order, so writing
// their most significant byte first lays them out as they would be in
// memory.
func encodeBin(f *font.Font, s encode.Settings) ([]byte, error) {
	enc := encode.NewEncoder(s)
	var buf bytes.Buffer
	for _, g := range f.Glyphs() {
		e, err := enc.Encode(g.Grid)
		if err != nil {
			return nil, err
		}
		var data []byte
		for _, w := range e.Words() {
			data = appendWord(data, w)
		}
		logDebug("glyph %q: %d bytes", g.Char, len(data))
		buf.Write(data)
	}
	return buf.Bytes(), nil
}

func binAction(ctx *cli.Context) error {
	if ctx.NArg() < 1 || ctx.NArg() > 2 {
		return errors.New("bin requires 1 or 2 arguments, see help bin")
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
	data, err := encodeBin(f, p.Settings)
	if err != nil {
		return err
	}
	output := ctx.Args().Get(1)
	if output == "" {
		output = replaceExt(input, ".bin")
	}
	return writeOutputFile(output, func(w *os.File) error {
		_, err := w.Write(data)
		return err
	})
}
