package grid

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/icza/bitio"
)

// maxCells bounds the size accepted by UnmarshalBinary.
const maxCells = 1 << 24

// MarshalBinary encodes the grid as its width and height (uvarints)
// followed by the cells in row-major order, one bit each, most
// significant bit first. The last byte is padded with zeros.
func (g *Grid) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	var hdr [2 * binary.MaxVarintLen64]byte
	n := binary.PutUvarint(hdr[:], uint64(g.w))
	n += binary.PutUvarint(hdr[n:], uint64(g.h))
	buf.Write(hdr[:n])
	w := bitio.NewWriter(&buf)
	for _, v := range g.cells {
		if err := w.WriteBool(v); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes data produced by MarshalBinary, replacing the
// size and contents of g.
func (g *Grid) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	w, err := binary.ReadUvarint(r)
	if err != nil {
		return fmt.Errorf("grid: reading width: %v", err)
	}
	h, err := binary.ReadUvarint(r)
	if err != nil {
		return fmt.Errorf("grid: reading height: %v", err)
	}
	if w == 0 || h == 0 {
		return errors.New("grid: empty grid data")
	}
	if w > maxCells || h > maxCells || w*h > maxCells {
		return fmt.Errorf("grid: %dx%d grid is too large", w, h)
	}
	cells := make([]bool, w*h)
	br := bitio.NewReader(r)
	for ii := range cells {
		v, err := br.ReadBool()
		if err != nil {
			return fmt.Errorf("grid: truncated data at cell %d: %v", ii, err)
		}
		cells[ii] = v
	}
	g.w, g.h, g.cells = int(w), int(h), cells
	return nil
}
