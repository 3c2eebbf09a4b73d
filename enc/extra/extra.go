// Package extra holds codecs outside of the RFC4648 family. They share the enc.Codec interface
// so tools can offer them next to the standard ones, but they ignore padding options.
package extra

import (
	"github.com/bokysan/basecodec/enc"
)

var (
	Base85  = &Base85Codec{}
	Base91  = &Base91Codec{}
	Base128 = &Base128Codec{}
)

// Register adds the extra codecs to the enc registry.
func Register() {
	enc.Register(Base85)
	enc.Register(Base91)
	enc.Register(Base128)
}

// options resolves the per-call options with strict decoding as the default.
func options(opts []enc.Option) enc.Options {
	o := enc.Options{Strict: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func keepOnly(s string, keep func(c byte) bool) string {
	res := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if keep(s[i]) {
			res = append(res, s[i])
		}
	}
	return string(res)
}
