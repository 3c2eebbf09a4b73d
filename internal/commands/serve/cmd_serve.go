package serve

import (
	"github.com/bokysan/basecodec/internal/logging"
	"github.com/bokysan/basecodec/internal/server"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
	"os/signal"
	"syscall"
)

// Command runs the HTTP codec service until interrupted
type Command struct {
	Address     string `short:"a" long:"address"       env:"ADDRESS"       default:"127.0.0.1:8080" description:"Address to listen on"`
	MaxBodySize int64  `long:"max-body-size" env:"MAX_BODY_SIZE" default:"10485760"       description:"Maximum size of the request body in bytes"`

	server *server.CodecServer
}

func NewCommand() *Command {
	return &Command{
		Address:     "127.0.0.1:8080",
		MaxBodySize: server.DefaultMaxBodySize,
	}
}

func (s *Command) Startup() error {
	if s.MaxBodySize <= 0 {
		return errors.Errorf("Invalid max body size: %v", s.MaxBodySize)
	}

	s.server = server.NewCodecServer(s.Address)
	s.server.MaxBodySize = s.MaxBodySize
	return s.server.Startup()
}

// Url returns the base URL of the running service
func (s *Command) Url() string {
	if s.server == nil {
		return ""
	}
	return s.server.String()
}

func (s *Command) Shutdown() error {
	var errs error

	log.Infof("Graceful server shutdown...")
	if s.server != nil {
		log.Debugf("[Server] Shutting down %v", s.server)
		if err := s.server.Shutdown(); err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "Could not shutdown %v", s.server))
		}
	}

	return errs
}

func (s *Command) Execute(args []string) error {
	logging.SetupLogging()

	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	if err := s.Startup(); err != nil {
		return err
	}

	<-interrupted
	return s.Shutdown()
}
