package extra

import (
	"fmt"
	"strings"

	"github.com/bokysan/basecodec/enc"
	"github.com/mtraver/base91"
	"github.com/pkg/errors"
)

const (
	cb91 = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!#$%&()*+,-/:;<=>?@[]^_`{|}~\""
)

var base91Encoding = base91.NewEncoding(cb91)

// -------------------------------------------------------

// Base91Codec when encoding, each group of 13 bits is converted into 2 radix-91 digits. The
// output length depends on the data, so there is no padding.
type Base91Codec struct {
}

func (b *Base91Codec) Name() string {
	return "Base91"
}

func (b *Base91Codec) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base91Codec) Code() byte {
	return 'X'
}

func (b *Base91Codec) Encode(data []byte, _ ...enc.Option) (string, error) {
	return base91Encoding.EncodeToString(data), nil
}

func (b *Base91Codec) Decode(data string, opts ...enc.Option) ([]byte, error) {
	o := options(opts)
	if !o.Strict {
		data = keepOnly(data, func(c byte) bool { return strings.IndexByte(cb91, c) >= 0 })
	}
	res, err := base91Encoding.DecodeString(data)
	if err != nil {
		return nil, errors.Wrapf(enc.ErrInvalidArgument, "%v: %v", b.Name(), err)
	}
	return res, nil
}

func (b *Base91Codec) Validate(data string, _ ...enc.Option) bool {
	for i := 0; i < len(data); i++ {
		if strings.IndexByte(cb91, data[i]) < 0 {
			return false
		}
	}
	return true
}

func (b *Base91Codec) BlocksizeRaw() int {
	return 13
}

func (b *Base91Codec) BlocksizeEncoded() int {
	return 16
}

func (b *Base91Codec) TestPatterns() []string {
	return []string{
		base91Encoding.EncodeToString([]byte("foobar")),
	}
}
