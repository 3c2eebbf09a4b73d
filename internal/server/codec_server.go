package server

import (
	"context"
	"fmt"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"net"
	"net/http"
	"time"
)

// DefaultMaxBodySize limits the size of the request body, as the whole body is kept in memory
const DefaultMaxBodySize = 10 << 20

// CodecServer exposes the registered codecs over HTTP
type CodecServer struct {
	Address     string
	MaxBodySize int64

	server   *http.Server
	listener net.Listener
}

func NewCodecServer(address string) *CodecServer {
	return &CodecServer{
		Address:     address,
		MaxBodySize: DefaultMaxBodySize,
	}
}

func (cs *CodecServer) String() string {
	if cs.listener != nil {
		return fmt.Sprintf("http://%v", cs.listener.Addr())
	}
	return fmt.Sprintf("http://%v", cs.Address)
}

// Router creates the HTTP handler of the service. The address is only used for logging and may
// be nil.
func (cs *CodecServer) Router(address *net.TCPAddr) http.Handler {
	router := chi.NewRouter()
	router.Use(
		middleware.RequestID, // Set Request Id on all requests
		middleware.RealIP,    // Extract actual IP if running behind reverse proxy
		GetRequestLogger(address),
		middleware.RedirectSlashes, // Redirect slashes to no slash URLs
		middleware.Recoverer,       // Recover from panics without crashing the server
	)

	router.Get("/codecs", cs.listCodecs)
	router.Route("/{codec}", func(r chi.Router) {
		r.Post("/encode", cs.encode)
		r.Post("/decode", cs.decode)
		r.Post("/validate", cs.validate)
	})

	return router
}

// Startup starts listening and serves requests in the background.
func (cs *CodecServer) Startup() error {
	ln, err := net.Listen("tcp", cs.Address)
	if err != nil {
		return errors.Wrapf(err, "Could not listen on %v", cs.Address)
	}
	cs.listener = ln

	address, _ := ln.Addr().(*net.TCPAddr)
	cs.server = &http.Server{
		Addr:    cs.Address,
		Handler: cs.Router(address),
	}

	go func() {
		log.Infof("Starting HTTP server at %v", cs)
		if err := cs.server.Serve(ln); err != http.ErrServerClosed {
			err = errors.WithStack(err)
			log.WithError(err).Errorf("Could not start the server %v", err)
		}
	}()

	return nil
}

// Shutdown stops the server, waiting up to five seconds for running requests.
func (cs *CodecServer) Shutdown() error {
	if cs.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return errors.WithStack(cs.server.Shutdown(ctx))
}
