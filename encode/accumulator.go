package encode

// accumulator collects pixels into a word. push returns the word once it
// is full; flush returns whatever is left at the end of a line, aligned.
type accumulator struct {
	bits   int
	order  BitOrder
	value  uint64
	filled int
}

func (a *accumulator) push(set bool) (uint64, bool) {
	if set {
		if a.order == LSBFirst {
			a.value |= 1 << uint(a.filled)
		} else {
			a.value |= 1 << uint(a.bits-1-a.filled)
		}
	}
	a.filled++
	if a.filled < a.bits {
		return 0, false
	}
	v := a.value
	a.value, a.filled = 0, 0
	return v, true
}

func (a *accumulator) flush(alignment Alignment) (uint64, bool) {
	if a.filled == 0 {
		return 0, false
	}
	v := a.value
	shift := uint(a.bits - a.filled)
	// MSB first fills from the top, LSB first from the bottom.
	switch {
	case a.order == MSBFirst && alignment == AlignBottom:
		v >>= shift
	case a.order == LSBFirst && alignment == AlignTop:
		v <<= shift
	}
	a.value, a.filled = 0, 0
	return v, true
}
