package enc

import (
	"fmt"
	"github.com/pkg/errors"
)

// Encoding is one member of the RFC4648 family: an alphabet plus the block geometry and padding
// policy that follow from its group width. Encodings are immutable and safe for concurrent use.
type Encoding struct {
	name     string
	code     byte
	alphabet *Alphabet
	defaults Options
	patterns []string

	// blockBytes input bytes map to exactly blockSymbols output symbols
	blockBytes   int
	blockSymbols int
	// padCounts is indexed by len(input) % blockBytes
	padCounts []int
}

// NewEncoding creates an encoding over the given alphabet. The name and code are used by the
// registry, the defaults apply to every call that does not override them.
func NewEncoding(name string, code byte, alphabet *Alphabet, defaults Options) *Encoding {
	w := int(alphabet.Width())

	// smallest bit count that is a multiple of both 8 and w
	blockBits := 8
	for blockBits%w != 0 {
		blockBits += 8
	}

	e := &Encoding{
		name:         name,
		code:         code,
		alphabet:     alphabet,
		defaults:     defaults,
		blockBytes:   blockBits / 8,
		blockSymbols: blockBits / w,
	}

	e.padCounts = make([]int, e.blockBytes)
	for r := 1; r < e.blockBytes; r++ {
		used := (r*8 + w - 1) / w
		e.padCounts[r] = e.blockSymbols - used
	}

	return e
}

// withTestPatterns sets the strings used by self tests.
func (e *Encoding) withTestPatterns(patterns ...string) *Encoding {
	e.patterns = patterns
	return e
}

func (e *Encoding) Name() string {
	return e.name
}

func (e *Encoding) String() string {
	return fmt.Sprintf("%v(%v)", e.Name(), string(e.Code()))
}

func (e *Encoding) Code() byte {
	return e.code
}

// Alphabet returns the symbol table of this encoding.
func (e *Encoding) Alphabet() *Alphabet {
	return e.alphabet
}

// Defaults returns the options used when a call does not override them.
func (e *Encoding) Defaults() Options {
	return e.defaults
}

func (e *Encoding) BlocksizeRaw() int {
	return e.blockBytes
}

func (e *Encoding) BlocksizeEncoded() int {
	return e.blockSymbols
}

func (e *Encoding) TestPatterns() []string {
	return e.patterns
}

// PadCount returns how many pad characters follow the encoding of n bytes when padding is on.
func (e *Encoding) PadCount(n int) int {
	return e.padCounts[n%e.blockBytes]
}

// EncodedLen returns the length of the encoding of n bytes.
func (e *Encoding) EncodedLen(n int, padding bool) int {
	if padding {
		return (n + e.blockBytes - 1) / e.blockBytes * e.blockSymbols
	}
	w := int(e.alphabet.Width())
	return (n*8 + w - 1) / w
}

// DecodedLen returns the maximum number of bytes n characters can decode to.
func (e *Encoding) DecodedLen(n int) int {
	return n * int(e.alphabet.Width()) / 8
}

// Encode returns the text representation of data. An error is only possible if the alphabet
// does not cover the group width, in which case the result is empty.
func (e *Encoding) Encode(data []byte, opts ...Option) (string, error) {
	o := e.defaults.apply(opts)
	if len(data) == 0 {
		return "", nil
	}

	var dst []byte
	var err error
	if e.alphabet.Width() == 4 {
		dst, err = e.encodeNibbles(data)
	} else {
		dst, err = e.encodeGroups(data, o.Padding)
	}
	if err != nil {
		return "", err
	}

	if o.Padding {
		for i := e.PadCount(len(data)); i > 0; i-- {
			dst = append(dst, o.PadChar)
		}
	}

	return string(dst), nil
}

// MustEncode is like Encode but panics on error. The canonical encodings never fail.
func (e *Encoding) MustEncode(data []byte, opts ...Option) string {
	s, err := e.Encode(data, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func (e *Encoding) encodeGroups(data []byte, padding bool) ([]byte, error) {
	w := e.alphabet.Width()
	dst := make([]byte, 0, e.EncodedLen(len(data), padding))

	var acc accumulator
	for _, b := range data {
		acc.pushByte(b)
		start := len(dst)
		dst = acc.drainGroups(w, dst)
		if err := e.toSymbols(dst[start:]); err != nil {
			return nil, err
		}
	}

	start := len(dst)
	dst = acc.finishEncode(w, dst)
	if err := e.toSymbols(dst[start:]); err != nil {
		return nil, err
	}

	return dst, nil
}

// toSymbols replaces symbol values with their characters, in place.
func (e *Encoding) toSymbols(values []byte) error {
	for i, v := range values {
		c, err := e.alphabet.SymbolOf(v)
		if err != nil {
			return err
		}
		values[i] = c
	}
	return nil
}

// Decode returns the bytes represented by text. The first pad character ends the data; anything
// after it is ignored. In strict mode a character outside the alphabet fails the whole call with
// ErrInvalidArgument. In lenient mode such characters are skipped and Decode never fails.
func (e *Encoding) Decode(text string, opts ...Option) ([]byte, error) {
	o := e.defaults.apply(opts)
	if e.alphabet.Width() == 4 {
		return e.decodeNibbles(text, o)
	}

	w := e.alphabet.Width()
	dst := make([]byte, 0, e.DecodedLen(len(text)))

	var acc accumulator
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
		acc.pushSymbol(v, w)
		dst = acc.drainBytes(dst)
	}
	acc.finishDecode()

	return dst, nil
}

func (e *Encoding) illegalCharacter(c byte, offset int) error {
	return errors.Wrapf(ErrInvalidArgument, "illegal %v character %q at offset %v", e.name, c, offset)
}

// Validate reports whether every character of text is either the pad character or a symbol of
// the alphabet. It does not check where the padding is, how long it is or how long the text is.
func (e *Encoding) Validate(text string, opts ...Option) bool {
	o := e.defaults.apply(opts)
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != o.PadChar && !e.alphabet.Contains(c) {
			return false
		}
	}
	return true
}
