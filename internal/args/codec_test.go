package args

import (
	"github.com/bokysan/basecodec/enc"
	"github.com/goccy/go-yaml"
	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_CodecFlag(t *testing.T) {
	var opts CodecOptions
	parser := flags.NewParser(&opts, flags.None)

	_, err := parser.ParseArgs([]string{"-e", "hex", "--pad-char", "*"})
	require.NoError(t, err)
	require.Equal(t, enc.Base16, opts.Codec.Codec)
	require.Equal(t, PadChar('*'), opts.PadChar)
	require.Equal(t, "-", opts.Input)
}

func Test_CodecFlagDefaults(t *testing.T) {
	var opts CodecOptions
	parser := flags.NewParser(&opts, flags.None)

	_, err := parser.ParseArgs([]string{})
	require.NoError(t, err)
	require.Equal(t, enc.Base64, opts.Codec.Codec)
	require.Equal(t, PadChar('='), opts.PadChar)
}

func Test_CodecFlagUnknown(t *testing.T) {
	var opts CodecOptions
	parser := flags.NewParser(&opts, flags.None)

	_, err := parser.ParseArgs([]string{"-e", "base58"})
	require.Error(t, err)
}

func Test_PadCharTooLong(t *testing.T) {
	var p PadChar
	require.Error(t, p.UnmarshalFlag("=="))
	require.Error(t, p.UnmarshalFlag(""))
	require.NoError(t, p.UnmarshalFlag("."))

	s, err := p.MarshalFlag()
	require.NoError(t, err)
	require.Equal(t, ".", s)
}

func Test_CodecOptionsYaml(t *testing.T) {
	var opts CodecOptions
	err := yaml.Unmarshal([]byte("encoding: base32hex\npad-char: '#'\ninput: data.bin\n"), &opts)
	require.NoError(t, err)
	require.Equal(t, enc.Base32Hex, opts.Codec.Codec)
	require.Equal(t, PadChar('#'), opts.PadChar)
	require.Equal(t, "data.bin", opts.Input)
}
