package validate

import (
	"bytes"
	"github.com/bokysan/basecodec/enc"
	"github.com/bokysan/basecodec/internal/args"
	"github.com/bokysan/basecodec/internal/util"
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

func Test_ValidateValid(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, newCommand(enc.Base16).Run([]byte("666F6F626172\n"), buf))
	require.Equal(t, "valid\n", buf.String())
}

func Test_ValidateInvalid(t *testing.T) {
	buf := &bytes.Buffer{}
	err := newCommand(enc.Base16).Run([]byte("Zm9vYmFy"), buf)
	require.Error(t, err)
	require.Equal(t, "invalid\n", buf.String())

	var exitError *util.ExitError
	require.True(t, errors.As(err, &exitError))
	require.Equal(t, ExitInvalid, exitError.Code)
}

func Test_ValidateQuiet(t *testing.T) {
	buf := &bytes.Buffer{}
	c := newCommand(enc.Base32)
	c.Quiet = true
	require.Error(t, c.Run([]byte("mzxw6ytboi======"), buf))
	require.Empty(t, buf.String())
}

func Test_ValidatePadChar(t *testing.T) {
	c := newCommand(enc.Base32)
	c.PadChar = '*'
	require.NoError(t, c.Run([]byte("MY******"), &bytes.Buffer{}))
	require.Error(t, c.Run([]byte("MY======"), &bytes.Buffer{}))
}
