package encode

import (
	"github.com/bokysan/basecodec/enc"
	"github.com/bokysan/basecodec/internal/args"
	"github.com/bokysan/basecodec/internal/logging"
	"github.com/bokysan/basecodec/internal/util"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
)

// Command encodes raw bytes into text
type Command struct {
	args.CodecOptions

	Padding   bool   `          long:"padding"                 description:"Force padding on (default depends on the codec; Base64Url is unpadded)"`
	NoPadding bool   `short:"n" long:"no-padding"              description:"Force padding off"`
	NoNewline bool   `short:"N" long:"no-newline"              description:"Do not append a new line after the encoded text"`
	Output    string `short:"o" long:"output"     env:"OUTPUT" description:"Output file, '-' for stdout" default:"-"`
}

func NewCommand() *Command {
	return &Command{}
}

// Options returns the codec options selected on the command line.
func (c *Command) Options() ([]enc.Option, error) {
	if c.Padding && c.NoPadding {
		return nil, errors.Errorf("--padding and --no-padding are mutually exclusive")
	}

	opts := c.CodecOptions.Options()
	if c.Padding {
		opts = append(opts, enc.WithPadding(true))
	} else if c.NoPadding {
		opts = append(opts, enc.WithPadding(false))
	}
	return opts, nil
}

// Run encodes data and writes the result to out.
func (c *Command) Run(data []byte, out io.Writer) error {
	opts, err := c.Options()
	if err != nil {
		return err
	}

	encoded, err := c.Codec.Encode(data, opts...)
	if err != nil {
		return errors.Wrapf(err, "Could not encode %v bytes with %v", len(data), c.Codec.Name())
	}
	log.Debugf("Encoded %v bytes into %v characters with %v", len(data), len(encoded), c.Codec.Name())

	if !c.NoNewline {
		encoded += "\n"
	}
	_, err = io.WriteString(out, encoded)
	return errors.WithStack(err)
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	data, err := util.ReadInput(c.Input)
	if err != nil {
		return err
	}

	out, err := util.OpenOutput(c.Output)
	if err != nil {
		return err
	}
	defer func() {
		if err := out.Close(); err != nil {
			log.Errorf("Could not close %s: %v", c.Output, err)
		}
	}()

	return c.Run(data, out)
}
