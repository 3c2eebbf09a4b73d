package args

import (
	"github.com/bokysan/basecodec/enc"
	"github.com/pkg/errors"
)

// Codec is a command line / configuration option selecting one of the registered codecs by name,
// alias or one-letter code.
type Codec struct {
	enc.Codec
}

func (c *Codec) UnmarshalFlag(value string) error {
	codec, err := enc.Lookup(value)
	if err != nil {
		return errors.WithStack(err)
	}
	c.Codec = codec
	return nil
}

func (c Codec) MarshalFlag() (string, error) {
	if c.Codec == nil {
		return "", nil
	}
	return c.Name(), nil
}

func (c *Codec) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return errors.WithStack(err)
	}
	return c.UnmarshalFlag(name)
}

// PadChar is a single character option.
type PadChar byte

func (p *PadChar) UnmarshalFlag(value string) error {
	if len(value) != 1 {
		return errors.Errorf("Pad character must be exactly one (ASCII) character, got: '%s'", value)
	}
	*p = PadChar(value[0])
	return nil
}

func (p PadChar) MarshalFlag() (string, error) {
	return string([]byte{byte(p)}), nil
}

func (p *PadChar) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var value string
	if err := unmarshal(&value); err != nil {
		return errors.WithStack(err)
	}
	return p.UnmarshalFlag(value)
}

// CodecOptions are shared by all commands working with a single codec.
type CodecOptions struct {
	Codec   Codec   `yaml:"encoding" short:"e" long:"encoding" env:"ENCODING"  default:"base64" description:"Codec to use: base16, base32, base32hex, base64, base64url (or any name shown by 'list')"`
	PadChar PadChar `yaml:"pad-char" short:"p" long:"pad-char" env:"PAD_CHAR"  default:"="      description:"Pad character"`
	Input   string  `yaml:"input"    short:"i" long:"input"    env:"INPUT"     default:"-"      description:"Input file, '-' for stdin"`
}

// Options converts the shared settings into codec call options.
func (o *CodecOptions) Options() []enc.Option {
	return []enc.Option{
		enc.WithPadChar(byte(o.PadChar)),
	}
}
