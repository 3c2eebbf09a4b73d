package extra

import (
	"github.com/bokysan/basecodec/enc"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"testing"
)

var encoderTests = [][]byte{
	[]byte("\000\000\000\000\377\377\377\377\125\125\125\125\252\252\252\252" +
		"\201\143\310\322\307\174\262\027\137\117\316\311\111\055\122\041" +
		"\141\251\161\040\045\263\006\163\346\330\104\060\171\120\127\277"),
	[]byte("foobar"),
	{},
}

func Test_Base85Encoder(t *testing.T) {
	for _, encoderTest := range encoderTests {
		encoded, err := Base85.Encode(encoderTest)
		require.NoError(t, err)
		require.NotContains(t, encoded, ".")
		require.NotContains(t, encoded, "`")
		require.True(t, Base85.Validate(encoded))
		decoded, err := Base85.Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, string(encoderTest), string(decoded))
	}
}

func Test_Base85ZeroGroup(t *testing.T) {
	encoded, err := Base85.Encode([]byte("\000\000\000\000f"))
	require.NoError(t, err)
	require.Equal(t, "zAc", encoded)

	decoded, err := Base85.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, []byte("\000\000\000\000f"), decoded)
}

func Test_Base85Invalid(t *testing.T) {
	require.False(t, Base85.Validate("AoDT s@<)"))
	require.False(t, Base85.Validate("AoDT.s@<)"))

	_, err := Base85.Decode("AoDT s@<)")
	require.True(t, errors.Is(err, enc.ErrInvalidArgument))

	_, err = Base85.Decode("!z")
	require.True(t, errors.Is(err, enc.ErrInvalidArgument))

	decoded, err := Base85.Decode("AoDT\ns@<)\n", enc.WithStrict(false))
	require.NoError(t, err)
	require.Equal(t, []byte("foobar"), decoded)
}

func Test_Base91Encoder(t *testing.T) {
	for _, encoderTest := range encoderTests {
		encoded, err := Base91.Encode(encoderTest)
		require.NoError(t, err)
		require.True(t, Base91.Validate(encoded))
		decoded, err := Base91.Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, string(encoderTest), string(decoded))
	}
}

func Test_Base91Invalid(t *testing.T) {
	require.False(t, Base91.Validate("abc def"))

	_, err := Base91.Decode("abc def")
	require.True(t, errors.Is(err, enc.ErrInvalidArgument))

	encoded, err := Base91.Encode([]byte("foobar"))
	require.NoError(t, err)
	decoded, err := Base91.Decode(" "+encoded+"\n", enc.WithStrict(false))
	require.NoError(t, err)
	require.Equal(t, []byte("foobar"), decoded)
}

func Test_Base128Transliterate(t *testing.T) {
	str := make([]byte, 128)
	for k := range str {
		str[k] = byte(k)
	}
	trans := escape128(str)
	require.Equal(t, len(str), len(trans))

	back, err := unescape128(string(trans), true)
	require.NoError(t, err)
	require.Equal(t, str, back)
}

func Test_Base128Encoder(t *testing.T) {
	for _, encoderTest := range encoderTests {
		encoded, err := Base128.Encode(encoderTest)
		require.NoError(t, err)
		require.True(t, Base128.Validate(encoded))
		decoded, err := Base128.Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, string(encoderTest), string(decoded))
	}
}

func Test_Base128KnownVectors(t *testing.T) {
	vectors := map[string]string{
		"":                             "",
		"f":                            "Za",
		"foobar":                       "ZB\353\364tf\342",
		"\377\377\377\377\377\377\377": "\375\375\375\375\375\375\375\375",
	}
	for input, expected := range vectors {
		encoded, err := Base128.Encode([]byte(input))
		require.NoError(t, err)
		require.Equal(t, expected, encoded, "%q", input)

		decoded, err := Base128.Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, input, string(decoded))
	}
}

func Test_Base128ImpossibleLength(t *testing.T) {
	_, err := Base128.Decode("ZaZaZaZaZ")
	require.True(t, errors.Is(err, enc.ErrInvalidArgument))

	decoded, err := Base128.Decode("ZaZaZaZaZ", enc.WithStrict(false))
	require.NoError(t, err)
	require.Len(t, decoded, 7)
}

func Test_Base128Invalid(t *testing.T) {
	require.False(t, Base128.Validate("abc-def"))

	_, err := Base128.Decode("abc-def")
	require.True(t, errors.Is(err, enc.ErrInvalidArgument))

	encoded, err := Base128.Encode([]byte("foobar"))
	require.NoError(t, err)
	decoded, err := Base128.Decode("-"+encoded+"-", enc.WithStrict(false))
	require.NoError(t, err)
	require.Equal(t, []byte("foobar"), decoded)
}

func Test_TestPatterns(t *testing.T) {
	for _, c := range []enc.Codec{Base85, Base91, Base128} {
		for _, pattern := range c.TestPatterns() {
			decoded, err := c.Decode(pattern)
			require.NoError(t, err)
			encoded, err := c.Encode(decoded)
			require.NoError(t, err)
			require.Equal(t, pattern, encoded)
		}
	}
}

func Test_Register(t *testing.T) {
	Register()

	c, err := enc.Lookup("W")
	require.NoError(t, err)
	require.Equal(t, Base85, c)

	c, err = enc.Lookup("base91")
	require.NoError(t, err)
	require.Equal(t, Base91, c)

	c, err = enc.Lookup("V")
	require.NoError(t, err)
	require.Equal(t, Base128, c)
}
