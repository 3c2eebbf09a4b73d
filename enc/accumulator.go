package enc

// accumulator regroups a big-endian bit stream between 8-bit bytes and w-bit symbol values. It
// only ever holds the bits that have not been emitted yet, so `pending` stays below w+8 and the
// register can't overflow.
type accumulator struct {
	bits    uint64
	pending uint
}

func lowBits(n uint) uint64 {
	return (1 << n) - 1
}

// pushByte appends eight bits to the right of the held bits.
func (a *accumulator) pushByte(b byte) {
	a.bits = a.bits<<8 | uint64(b)
	a.pending += 8
}

// drainGroups appends every complete w-bit group to dst, most significant first.
func (a *accumulator) drainGroups(w uint, dst []byte) []byte {
	for a.pending >= w {
		a.pending -= w
		dst = append(dst, byte((a.bits>>a.pending)&lowBits(w)))
	}
	a.bits &= lowBits(a.pending)
	return dst
}

// finishEncode flushes the remaining bits (if any) as one last group, zero-filled on the right.
func (a *accumulator) finishEncode(w uint, dst []byte) []byte {
	if a.pending > 0 {
		dst = append(dst, byte((a.bits<<(w-a.pending))&lowBits(w)))
	}
	a.bits, a.pending = 0, 0
	return dst
}

// pushSymbol appends the w low bits of value to the right of the held bits.
func (a *accumulator) pushSymbol(value byte, w uint) {
	a.bits = a.bits<<w | (uint64(value) & lowBits(w))
	a.pending += w
}

// drainBytes appends every complete byte to dst.
func (a *accumulator) drainBytes(dst []byte) []byte {
	for a.pending >= 8 {
		a.pending -= 8
		dst = append(dst, byte(a.bits>>a.pending))
	}
	a.bits &= lowBits(a.pending)
	return dst
}

// finishDecode drops the leftover bits. These are the zero fill added by finishEncode and never
// carry data.
func (a *accumulator) finishDecode() {
	a.bits, a.pending = 0, 0
}
