package logging

import (
	"github.com/bokysan/basecodec/internal/args"
	"github.com/bokysan/basecodec/internal/util"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
	"strings"
)

// SetupLogging configures the standard logrus logger from the general options. Commands call it
// first thing in Execute, when all options have been parsed.
func SetupLogging() {
	SetVerbosity(args.General.Verbose)

	if args.General.LogReportCaller {
		log.AddHook(&ContextHook{})
	}

	if args.General.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{
			FieldMap: log.FieldMap{
				log.FieldKeyTime:  "timestamp",
				log.FieldKeyLevel: "@level",
				log.FieldKeyMsg:   "message",
				log.FieldKeyFunc:  "@caller",
			},
		})
	} else {
		log.SetFormatter(&log.TextFormatter{
			ForceColors:   ForceColors(),
			DisableColors: NoColors(),
			FullTimestamp: args.General.LogFullTimestamp,
		})
	}
	log.SetReportCaller(args.General.LogReportCaller)
	log.Debugf("Verbosity level: %v", VerbosityName())

	if args.General.LogFile != nil && len(*args.General.LogFile) > 0 && *args.General.LogFile != "-" {
		f, err := os.OpenFile(*args.General.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			util.MustErrorNilOrExit(errors.WithStack(err))
		}
		log.SetOutput(f)
	}
}

func logColor() string {
	return strings.TrimSpace(strings.ToLower(args.General.LogColor))
}

// ForceColors is true if the user explicitly asked for colored output.
func ForceColors() bool {
	color := logColor()
	return color == "yes" || color == "true" || color == "1"
}

// NoColors is true if the user explicitly disabled colored output.
func NoColors() bool {
	color := logColor()
	return color == "no" || color == "false" || color == "0"
}
