package version

import (
	"fmt"
	"github.com/bokysan/basecodec/internal/version"
	"github.com/k0kubun/go-ansi"
	"io"
)

const (
	Bold           = "\x1b[1m"
	Reset          = "\x1b[0m"
	LightGray      = "\x1b[37m"
	DarkGray       = "\x1b[90m"
	White          = "\x1b[97m"
	BackgroundBlue = "\x1b[44m"
)

// Command prints the version and build details.
type Command struct {
}

func (i *Command) String() string {
	return "Version details"
}

func (i *Command) Execute(args []string) error {
	return i.Run(ansi.NewAnsiStdout())
}

//goland:noinspection GoUnhandledErrorResult
func (i *Command) Run(out io.Writer) error {
	PrintVersion(out)
	fmt.Fprintf(out, DarkGray+" Author      "+White+"%+v"+Reset+"\n", "Bojan Cekrlic <github.com/bokysan>")
	if version.GitTag != "" {
		fmt.Fprintf(out, DarkGray+" Git tag     "+White+"%+v"+Reset+"\n", version.GitTag)
	}
	if version.GitBranch != "" {
		fmt.Fprintf(out, DarkGray+" Git branch  "+White+"%+v"+Reset+"\n", version.GitBranch)
	}
	if version.GitState != "" {
		fmt.Fprintf(out, DarkGray+" Git state   "+White+"%+v"+Reset+"\n", version.GitState)
	}
	if version.GoVersion != "" {
		fmt.Fprintf(out, DarkGray+" Go version  "+White+"%+v"+Reset+"\n", version.GoVersion)
	}
	return nil
}

//goland:noinspection GoUnhandledErrorResult
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, Bold+BackgroundBlue+
		LightGray+" BASECODEC - RFC4648 encoder / decoder "+White+"%s"+LightGray+" "+Reset+"\n"+
		DarkGray+" Built on    "+White+"%+v\n"+
		DarkGray+" Git version "+White+"%+v"+Reset+"\n",
		version.AppVersion(), version.BuildDate, version.GitCommit)
}
