package enc

import "github.com/pkg/errors"

// SplitBits regroups data into w-bit values, most significant bits first, for codecs with a
// group width the RFC4648 encodings don't cover (e.g. 7-bit Base128). A trailing partial group
// is zero-filled on the right. w must be between 1 and 8.
func SplitBits(data []byte, w uint) ([]byte, error) {
	if w < 1 || w > 8 {
		return nil, errors.Wrapf(ErrInvalidArgument, "group width %v", w)
	}

	dst := make([]byte, 0, (len(data)*8+int(w)-1)/int(w))
	var acc accumulator
	for _, b := range data {
		acc.pushByte(b)
		dst = acc.drainGroups(w, dst)
	}
	return acc.finishEncode(w, dst), nil
}

// JoinBits is the reverse of SplitBits. Leftover bits that do not fill a byte are dropped. Every
// value must fit in w bits.
func JoinBits(values []byte, w uint) ([]byte, error) {
	if w < 1 || w > 8 {
		return nil, errors.Wrapf(ErrInvalidArgument, "group width %v", w)
	}

	dst := make([]byte, 0, len(values)*int(w)/8)
	var acc accumulator
	for i, v := range values {
		if uint64(v) > lowBits(w) {
			return nil, errors.Wrapf(ErrInvalidArgument, "value %v at offset %v does not fit in %v bits", v, i, w)
		}
		acc.pushSymbol(v, w)
		dst = acc.drainBytes(dst)
	}
	acc.finishDecode()
	return dst, nil
}
