package decode

import (
	"bytes"
	"github.com/bokysan/basecodec/enc"
	"github.com/bokysan/basecodec/internal/args"
	"github.com/bokysan/basecodec/internal/logging"
	"github.com/bokysan/basecodec/internal/util"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
)

// Command decodes text back into raw bytes
type Command struct {
	args.CodecOptions

	Lenient bool   `short:"L" long:"lenient" env:"LENIENT" description:"Skip characters which are not part of the alphabet instead of failing. Data may be silently lost!"`
	Output  string `short:"o" long:"output"  env:"OUTPUT"  default:"-" description:"Output file, '-' for stdout"`
}

func NewCommand() *Command {
	return &Command{}
}

// Run decodes text and writes the bytes to out. Trailing line endings are ignored.
func (c *Command) Run(text []byte, out io.Writer) error {
	text = bytes.TrimRight(text, "\r\n")

	opts := append(c.CodecOptions.Options(), enc.WithStrict(!c.Lenient))
	data, err := c.Codec.Decode(string(text), opts...)
	if err != nil {
		return errors.Wrapf(err, "Could not decode %v input", c.Codec.Name())
	}
	log.Debugf("Decoded %v characters into %v bytes with %v", len(text), len(data), c.Codec.Name())

	_, err = out.Write(data)
	return errors.WithStack(err)
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	text, err := util.ReadInput(c.Input)
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

	return c.Run(text, out)
}
