package encode

import (
	"fmt"
	"strings"
)

// Word is one packed value. Value already has the byte order applied.
type Word struct {
	Value uint64
	Bits  int
}

// String returns the word as a C hex literal, zero padded to the word
// size.
func (w Word) String() string {
	return fmt.Sprintf("0x%0*x", w.Bits/4, w.Value)
}

// ApplyByteOrder returns v as it would be laid out in memory with the
// given byte order. BigEndian leaves v untouched; LittleEndian reverses
// the bits/8 bytes of v. Applying LittleEndian twice returns v.
func ApplyByteOrder(v uint64, bits int, order ByteOrder) uint64 {
	if order != LittleEndian {
		return v
	}
	var r uint64
	n := bits / 8
	for ii := 0; ii < n; ii++ {
		b := (v >> uint(bits-(ii+1)*8)) & 0xff
		r |= b << uint(ii*8)
	}
	return r
}

func joinWords(words []Word) string {
	var sb strings.Builder
	for ii, w := range words {
		if ii > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(w.String())
	}
	return sb.String()
}
