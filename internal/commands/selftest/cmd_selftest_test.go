package selftest

import (
	"github.com/bokysan/basecodec/enc"
	"github.com/bokysan/basecodec/enc/extra"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_SelfTestPasses(t *testing.T) {
	codecs := append(enc.Codecs(), extra.Base85, extra.Base91, extra.Base128)
	require.NoError(t, NewCommand().Run(codecs))
}

type brokenCodec struct {
	*enc.Encoding
}

func (b *brokenCodec) Name() string {
	return "Base64"
}

func (b *brokenCodec) TestPatterns() []string {
	return []string{"Zm9vYmE", "Zm9vYmFy"}
}

func Test_SelfTestCollectsAllFailures(t *testing.T) {
	// Base32 alphabet under the Base64 name: all vectors but the empty one fail
	broken := &brokenCodec{Encoding: enc.Base32}

	err := NewCommand().Run([]enc.Codec{broken, enc.Base16})
	require.Error(t, err)

	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	require.Greater(t, len(merr.Errors), 2)
	for _, e := range merr.Errors {
		require.Contains(t, e.Error(), "Base64")
	}
}

// lossyCodec sets the lowest bit of the last byte before encoding. Its test patterns still
// decode and encode back to the same text.
type lossyCodec struct {
	*enc.Encoding
}

func (l *lossyCodec) Name() string {
	return "Lossy"
}

func (l *lossyCodec) Encode(data []byte, opts ...enc.Option) (string, error) {
	changed := append([]byte{}, data...)
	if len(changed) > 0 {
		changed[len(changed)-1] |= 1
	}
	return l.Encoding.Encode(changed, opts...)
}

func (l *lossyCodec) TestPatterns() []string {
	return []string{"666F"}
}

func Test_SelfTestDetectsCorruptedBytes(t *testing.T) {
	lossy := &lossyCodec{Encoding: enc.Base16}
	require.NoError(t, roundTripText(lossy, "666F"))

	err := NewCommand().Run([]enc.Codec{lossy})
	require.Error(t, err)
	require.Contains(t, err.Error(), "Lossy: \"f\" came back as \"g\"")
}
