package decode

import (
	"bytes"
	"github.com/bokysan/basecodec/enc"
	"github.com/bokysan/basecodec/internal/args"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"testing"
)

func newCommand(codec enc.Codec) *Command {
	c := NewCommand()
	c.Codec = args.Codec{Codec: codec}
	c.PadChar = '='
	return c
}

func Test_Decode(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, newCommand(enc.Base32Hex).Run([]byte("CPNMUOJ1E8======\r\n"), buf))
	require.Equal(t, "foobar", buf.String())
}

func Test_DecodeStrict(t *testing.T) {
	buf := &bytes.Buffer{}
	err := newCommand(enc.Base64).Run([]byte("Zm9v\nYmFy\n"), buf)
	require.Error(t, err)
	require.True(t, errors.Is(err, enc.ErrInvalidArgument))
	require.Empty(t, buf.Bytes())
}

func Test_DecodeLenient(t *testing.T) {
	buf := &bytes.Buffer{}
	c := newCommand(enc.Base64)
	c.Lenient = true
	require.NoError(t, c.Run([]byte("Zm9v\nYmFy\n"), buf))
	require.Equal(t, "foobar", buf.String())
}

func Test_DecodeBase16OddLength(t *testing.T) {
	err := newCommand(enc.Base16).Run([]byte("F\n"), &bytes.Buffer{})
	require.True(t, errors.Is(err, enc.ErrInvalidArgument))
}
