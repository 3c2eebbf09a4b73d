package enc

import "github.com/pkg/errors"

const (
	cb16 = "0123456789ABCDEF"
)

// Base16 encodes 1 byte to 2 characters. It never needs padding.
var Base16 = NewEncoding("Base16", 'H', mustAlphabet(cb16), Options{
	Padding: true,
	PadChar: '=',
	Strict:  true,
}).withTestPatterns(
	cb16,
	"666F6F626172",
)

// encodeNibbles maps every byte to two symbols directly. Four bits divide a byte evenly, so no
// bits are ever carried from one byte to the next.
func (e *Encoding) encodeNibbles(data []byte) ([]byte, error) {
	dst := make([]byte, 0, len(data)*2)
	for _, b := range data {
		hi, err := e.alphabet.SymbolOf(b >> 4)
		if err != nil {
			return nil, err
		}
		lo, err := e.alphabet.SymbolOf(b & 0x0F)
		if err != nil {
			return nil, err
		}
		dst = append(dst, hi, lo)
	}
	return dst, nil
}

// decodeNibbles pairs symbols into bytes. A skipped character (lenient mode) does not break a
// pair: the held high nibble waits for the next valid symbol.
func (e *Encoding) decodeNibbles(text string, o Options) ([]byte, error) {
	dst := make([]byte, 0, len(text)/2)

	var high byte
	held := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == o.PadChar {
			break
		}
		v, ok := e.alphabet.ValueOf(c)
		if !ok {
			if o.Strict {
				return nil, e.illegalCharacter(c, i)
			}
			continue
		}
		if !held {
			high, held = v, true
			continue
		}
		dst = append(dst, high<<4|v)
		held = false
	}

	if held && o.Strict {
		return nil, errors.Wrapf(ErrInvalidArgument, "%v data has an odd number of characters", e.name)
	}

	return dst, nil
}
