package main

import (
	"fmt"
	"github.com/bokysan/basecodec/enc/extra"
	"github.com/bokysan/basecodec/internal/args"
	"github.com/bokysan/basecodec/internal/commands/decode"
	"github.com/bokysan/basecodec/internal/commands/encode"
	"github.com/bokysan/basecodec/internal/commands/list"
	"github.com/bokysan/basecodec/internal/commands/selftest"
	"github.com/bokysan/basecodec/internal/commands/serve"
	"github.com/bokysan/basecodec/internal/commands/validate"
	"github.com/bokysan/basecodec/internal/commands/version"
	bcFlags "github.com/bokysan/basecodec/internal/flags"
	"github.com/bokysan/basecodec/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"os"
	"path"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// BaseCodec is the main executable
type BaseCodec struct {
	parser *flags.Parser
}

// NewBaseCodec will create a new instance of BaseCodec and initialize the parser
func NewBaseCodec() *BaseCodec {
	executableFilename := os.Args[0]
	executablePath := path.Base(executableFilename)

	bc := &BaseCodec{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	bc.setupGeneral()
	bc.addCommand("version", "Print the version", "Print the application version and exit", &version.Command{})
	bc.addCommand("encode", "Encode input", "Read bytes from the input and write their textual representation", encode.NewCommand())
	bc.addCommand("decode", "Decode input", "Read encoded text from the input and write the decoded bytes", decode.NewCommand())
	bc.addCommand("validate", "Validate input", "Check if the input only holds characters of the selected codec", validate.NewCommand())
	bc.addCommand("list", "List codecs", "List all registered codecs with their codes and block sizes", list.NewCommand())
	bc.addCommand("selftest", "Run the self test", "Verify the test patterns and known vectors of every registered codec", selftest.NewCommand())
	bc.addCommand("serve", "Run the HTTP service", "Expose the registered codecs over HTTP", serve.NewCommand())

	return bc
}

// setupGeneral will configure general options
func (bc *BaseCodec) setupGeneral() {
	if _, err := bc.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

func (bc *BaseCodec) addCommand(command, shortDescription, longDescription string, data interface{}) {
	_, err := bc.parser.AddCommand(command, shortDescription, longDescription, data)
	util.MustErrorNilOrExit(err)
}

// main registers the codecs, reads the configuration file and runs the selected command
func main() {
	extra.Register()

	baseCodec := NewBaseCodec()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			message := fmt.Sprintf("Configuration file %s does not exist.", file)
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: message,
			})
		}

		yamlParser := bcFlags.NewYamlParser(baseCodec.parser)

		args.General.ConfigurationFilePath = file
		return yamlParser.ParseFile(file)
	}

	_, err := baseCodec.parser.Parse()
	util.MustErrorNilOrExit(err)
}
