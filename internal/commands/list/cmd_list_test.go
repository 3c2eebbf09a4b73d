package list

import (
	"bytes"
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_List(t *testing.T) {
	buf := &bytes.Buffer{}
	c := NewCommand()
	c.NoColor = true
	require.NoError(t, c.Run(buf))

	out := buf.String()
	require.Contains(t, out, "NAME")
	require.Regexp(t, `Base16\s+H\s+1\s+2`, out)
	require.Regexp(t, `Base32\s+T\s+5\s+8`, out)
	require.Regexp(t, `Base32Hex\s+E\s+5\s+8`, out)
	require.Regexp(t, `Base64\s+S\s+3\s+4`, out)
	require.Regexp(t, `Base64Url\s+U\s+3\s+4`, out)
	require.NotContains(t, out, "\x1b[")
}
