package enc

import (
	"github.com/pkg/errors"
)

const invalidSymbol = 0xFF

// Alphabet is an immutable bijection between symbol values and printable characters. The number
// of symbols defines the group width: 16 symbols encode 4 bits, 32 encode 5 and 64 encode 6.
type Alphabet struct {
	symbols string
	width   uint
	decode  [256]byte
}

// NewAlphabet builds an alphabet from the given symbols, where the position of the symbol is its
// value. The symbols must be distinct and there must be exactly 16, 32 or 64 of them.
func NewAlphabet(symbols string) (*Alphabet, error) {
	a := &Alphabet{
		symbols: symbols,
	}

	switch len(symbols) {
	case 16:
		a.width = 4
	case 32:
		a.width = 5
	case 64:
		a.width = 6
	default:
		return nil, errors.Wrapf(ErrInvalidArgument, "alphabet must have 16, 32 or 64 symbols, got %v", len(symbols))
	}

	for i := range a.decode {
		a.decode[i] = invalidSymbol
	}
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		if a.decode[c] != invalidSymbol {
			return nil, errors.Wrapf(ErrInvalidArgument, "duplicate symbol %q in alphabet", c)
		}
		a.decode[c] = byte(i)
	}

	return a, nil
}

// mustAlphabet is used for the package-level tables, which are known to be correct.
func mustAlphabet(symbols string) *Alphabet {
	a, err := NewAlphabet(symbols)
	if err != nil {
		panic(err)
	}
	return a
}

// Width returns the number of bits a single symbol carries.
func (a *Alphabet) Width() uint {
	return a.width
}

// Size returns the number of symbols.
func (a *Alphabet) Size() int {
	return len(a.symbols)
}

func (a *Alphabet) String() string {
	return a.symbols
}

// SymbolOf returns the character representing value.
func (a *Alphabet) SymbolOf(value byte) (byte, error) {
	if int(value) >= len(a.symbols) {
		return 0, errors.Wrapf(ErrResultOutOfRange, "value %v does not fit a %v-bit alphabet", value, a.width)
	}
	return a.symbols[value], nil
}

// ValueOf returns the value of the character c. The second return value is false if c is not
// part of the alphabet.
func (a *Alphabet) ValueOf(c byte) (byte, bool) {
	v := a.decode[c]
	return v, v != invalidSymbol
}

// Contains reports whether c is one of the alphabet symbols.
func (a *Alphabet) Contains(c byte) bool {
	return a.decode[c] != invalidSymbol
}
