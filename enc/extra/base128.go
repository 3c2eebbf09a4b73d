package extra

import (
	"fmt"
	"sync"

	"github.com/bokysan/basecodec/enc"
	"github.com/pkg/errors"
	"go.chromium.org/luci/common/data/base128"
)

const (

	/*
	 * Don't use '-' (restricted to middle of labels), prefer iso_8859-1
	 * accent chars since they might readily be entered in normal use,
	 * don't use 254-255 because of possible function overloading in DNS systems.
	 */
	cb128 = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789" +
		"\274\275\276\277" +
		"\300\301\302\303\304\305\306\307\310\311\312\313\314\315\316\317" +
		"\320\321\322\323\324\325\326\327\330\331\332\333\334\335\336\337" +
		"\340\341\342\343\344\345\346\347\350\351\352\353\354\355\356\357" +
		"\360\361\362\363\364\365\366\367\370\371\372\373\374\375"

	invalid128 = 0xFF
)

var cb128Invert [256]byte
var cbInitialized sync.Once

func setupCb128Invert() {
	cbInitialized.Do(func() {
		for i := range cb128Invert {
			cb128Invert[i] = invalid128
		}
		for i := 0; i < len(cb128); i++ {
			cb128Invert[cb128[i]] = byte(i)
		}
	})
}

// -------------------------------------------------------

// Base128Codec encodes 7 bytes to 8 characters, 7 bits per character. Characters are 8-bit, so
// the output is only usable where latin-1 text is. A length of 1 (mod 8) can never be produced.
type Base128Codec struct {
}

func (b *Base128Codec) Name() string {
	return "Base128"
}

func (b *Base128Codec) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base128Codec) Code() byte {
	return 'V'
}

func (b *Base128Codec) Encode(data []byte, _ ...enc.Option) (string, error) {
	groups, err := enc.SplitBits(data, 7)
	if err != nil {
		return "", err
	}
	return string(escape128(groups)), nil
}

func escape128(src []byte) []byte {
	res := make([]byte, len(src))
	for i, v := range src {
		res[i] = cb128[v&0x7F]
	}
	return res
}

// unescape128 maps characters back to 7-bit values. Characters outside the alphabet are dropped
// unless strict is set, in which case the first one is reported.
func unescape128(src string, strict bool) ([]byte, error) {
	setupCb128Invert()
	res := make([]byte, 0, len(src))
	for i := 0; i < len(src); i++ {
		v := cb128Invert[src[i]]
		if v == invalid128 {
			if strict {
				return nil, errors.Wrapf(enc.ErrInvalidArgument, "illegal Base128 character %q at offset %v", src[i], i)
			}
			continue
		}
		res = append(res, v)
	}
	return res, nil
}

func (b *Base128Codec) Decode(data string, opts ...enc.Option) ([]byte, error) {
	o := options(opts)
	src, err := unescape128(data, o.Strict)
	if err != nil {
		return nil, err
	}
	if o.Strict && len(src)%8 == 1 {
		return nil, errors.Wrapf(enc.ErrInvalidArgument, "%v: %v", b.Name(), base128.ErrLength)
	}
	return enc.JoinBits(src, 7)
}

func (b *Base128Codec) Validate(data string, _ ...enc.Option) bool {
	setupCb128Invert()
	for i := 0; i < len(data); i++ {
		if cb128Invert[data[i]] == invalid128 {
			return false
		}
	}
	return true
}

func (b *Base128Codec) BlocksizeRaw() int {
	return 7
}

func (b *Base128Codec) BlocksizeEncoded() int {
	return 8
}

func (b *Base128Codec) TestPatterns() []string {
	return []string{
		"ZB\353\364tf\342",
		"G\326Sw\301H\316TIC\313w\361S\330\353W\331f\324RL\332TL5m\364R\307\330\3430\332\354\304R\306",
	}
}
