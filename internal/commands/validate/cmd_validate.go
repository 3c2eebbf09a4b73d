package validate

import (
	"bytes"
	"fmt"
	"github.com/bokysan/basecodec/internal/args"
	"github.com/bokysan/basecodec/internal/logging"
	"github.com/bokysan/basecodec/internal/util"
	"github.com/k0kubun/go-ansi"
	"io"
)

// ExitInvalid is the exit status when the input does not conform to the codec
const ExitInvalid = 1

// Command checks whether the input only holds characters of the selected codec
type Command struct {
	args.CodecOptions

	Quiet bool `short:"q" long:"quiet" description:"Do not print anything, only set the exit status"`
}

func NewCommand() *Command {
	return &Command{}
}

// Run validates text and reports the result to out. The returned error is an util.ExitError if
// the text is not valid.
//goland:noinspection GoUnhandledErrorResult
func (c *Command) Run(text []byte, out io.Writer) error {
	text = bytes.TrimRight(text, "\r\n")

	if c.Codec.Validate(string(text), c.CodecOptions.Options()...) {
		if !c.Quiet {
			fmt.Fprintln(out, "valid")
		}
		return nil
	}

	if !c.Quiet {
		fmt.Fprintln(out, "invalid")
	}
	return &util.ExitError{
		Code:    ExitInvalid,
		Message: fmt.Sprintf("input is not valid %v", c.Codec.Name()),
	}
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	text, err := util.ReadInput(c.Input)
	if err != nil {
		return err
	}
	return c.Run(text, ansi.NewAnsiStdout())
}
