package extra

import (
	"encoding/ascii85"
	"fmt"

	"github.com/bokysan/basecodec/enc"
	"github.com/pkg/errors"
)

// -------------------------------------------------------

// Base85Codec encodes 4 bytes to 5 characters (btoa / Adobe flavour, without the `<~ ~>`
// delimiters). The characters '.', '\' and '`' are replaced by 'v', 'w' and 'x' so the output is
// safe in file names and shell strings. An all-zero group encodes to a single 'z'.
type Base85Codec struct {
}

var (
	base85Escape   = map[byte]byte{'.': 'v', '\\': 'w', '`': 'x'}
	base85Unescape = map[byte]byte{'v': '.', 'w': '\\', 'x': '`'}
)

func (b *Base85Codec) Name() string {
	return "Base85"
}

func (b *Base85Codec) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base85Codec) Code() byte {
	return 'W'
}

func (b *Base85Codec) Encode(data []byte, _ ...enc.Option) (string, error) {
	dst := make([]byte, ascii85.MaxEncodedLen(len(data)))
	n := ascii85.Encode(dst, data)
	dst = dst[:n]
	for k, c := range dst {
		if r, ok := base85Escape[c]; ok {
			dst[k] = r
		}
	}
	return string(dst), nil
}

func (b *Base85Codec) Decode(data string, opts ...enc.Option) ([]byte, error) {
	o := options(opts)
	if o.Strict {
		for i := 0; i < len(data); i++ {
			if !isBase85(data[i]) {
				return nil, errors.Wrapf(enc.ErrInvalidArgument, "%v: illegal character %q at offset %v", b.Name(), data[i], i)
			}
		}
	} else {
		data = keepOnly(data, isBase85)
	}

	source := []byte(data)
	for k, c := range source {
		if r, ok := base85Unescape[c]; ok {
			source[k] = r
		}
	}

	// every 'z' expands to four bytes
	dst := make([]byte, 4*len(source))
	ndst, _, err := ascii85.Decode(dst, source, true)
	if err != nil {
		return nil, errors.Wrapf(enc.ErrInvalidArgument, "%v: %v", b.Name(), err)
	}
	return dst[:ndst], nil
}

func (b *Base85Codec) Validate(data string, _ ...enc.Option) bool {
	for i := 0; i < len(data); i++ {
		if !isBase85(data[i]) {
			return false
		}
	}
	return true
}

func (b *Base85Codec) BlocksizeRaw() int {
	return 4
}

func (b *Base85Codec) BlocksizeEncoded() int {
	return 5
}

func (b *Base85Codec) TestPatterns() []string {
	// 33 (!) through 117 (u)
	str := make([]byte, 85)
	for k := range str {
		c := byte(k + 33)
		if r, ok := base85Escape[c]; ok {
			c = r
		}
		str[k] = c
	}

	return []string{
		string(str),
		"AoDTs@<)",
	}
}

func isBase85(c byte) bool {
	if _, escaped := base85Escape[c]; escaped {
		return false
	}
	if _, ok := base85Unescape[c]; ok {
		return true
	}
	return c == 'z' || ('!' <= c && c <= 'u')
}
