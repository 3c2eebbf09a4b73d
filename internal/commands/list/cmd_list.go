package list

import (
	"fmt"
	"github.com/bokysan/basecodec/enc"
	"github.com/k0kubun/go-ansi"
	"io"
)

const (
	Bold     = "\x1b[1m"
	Reset    = "\x1b[0m"
	DarkGray = "\x1b[90m"
	White    = "\x1b[97m"
)

// Command lists all registered codecs
type Command struct {
	NoColor bool `long:"no-color" description:"Print a plain table"`
}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) Execute(args []string) error {
	return c.Run(ansi.NewAnsiStdout())
}

//goland:noinspection GoUnhandledErrorResult
func (c *Command) Run(out io.Writer) error {
	bold, reset, gray, white := Bold, Reset, DarkGray, White
	if c.NoColor {
		bold, reset, gray, white = "", "", "", ""
	}

	fmt.Fprintf(out, bold+"%-10s %-4s %-6s %-8s"+reset+"\n", "NAME", "CODE", "BYTES", "SYMBOLS")
	for _, codec := range enc.Codecs() {
		fmt.Fprintf(out, white+"%-10s "+gray+"%-4s %-6d %-8d"+reset+"\n",
			codec.Name(), string(codec.Code()), codec.BlocksizeRaw(), codec.BlocksizeEncoded())
	}
	return nil
}
