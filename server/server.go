// Package server runs a STAG game for many players at once. Commands arrive
// over a line transport and, optionally, an HTTP REST API; every resolved
// command is recorded in a command journal.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/dekarrin/stag/internal/game"
	"github.com/dekarrin/stag/internal/stagw"
	"github.com/dekarrin/stag/server/api"
	"github.com/dekarrin/stag/server/stags"
)

// ShutdownTimeout is how long ServeForever waits for in-flight requests after
// its context is cancelled.
const ShutdownTimeout = 5 * time.Second

// Server holds everything needed to serve a single game. The zero-value of a
// Server should not be used directly; call New() to get one ready for use.
type Server struct {
	cfg Config
	svc stags.Service

	line *LineListener
	http *http.Server
}

// New loads the world file named in cfg and connects to the command journal.
// Unset values in cfg are given their defaults.
func New(ctx context.Context, cfg Config) (*Server, error) {
	cfg = cfg.FillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	data, err := stagw.LoadResourceBundle(cfg.World)
	if err != nil {
		return nil, fmt.Errorf("load world: %w", err)
	}

	ip, err := game.New(data.World, data.Rules, game.Options{
		Start:         data.Start,
		SharedUnlocks: cfg.SharedUnlocks,
	})
	if err != nil {
		return nil, fmt.Errorf("start game: %w", err)
	}

	store, err := cfg.DB.Connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("connect to journal: %w", err)
	}

	return newServer(cfg, stags.Service{DB: store, Game: ip}), nil
}

func newServer(cfg Config, svc stags.Service) *Server {
	s := &Server{
		cfg:  cfg,
		svc:  svc,
		line: &LineListener{Backend: svc},
	}

	if cfg.HTTPAddr != "" {
		s.http = &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           newRouter(api.API{Backend: svc}),
			ReadHeaderTimeout: 10 * time.Second,
		}
	}

	return s
}

// ServeForever begins listening on the configured addresses and serves
// clients until ctx is cancelled or a listener fails. The command journal is
// closed before it returns.
func (s *Server) ServeForever(ctx context.Context) error {
	defer func() {
		if err := s.svc.DB.Close(); err != nil {
			log.Printf("ERROR close journal: %v", err)
		}
	}()

	lineLn, err := net.Listen("tcp", s.cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	var httpLn net.Listener
	if s.http != nil {
		httpLn, err = net.Listen("tcp", s.cfg.HTTPAddr)
		if err != nil {
			lineLn.Close()
			return fmt.Errorf("listen http: %w", err)
		}
	}

	errs := make(chan error, 2)

	go func() {
		errs <- s.line.Serve(lineLn)
	}()
	if s.http != nil {
		go func() {
			log.Printf("INFO  Listening for HTTP requests on %s", httpLn.Addr())
			errs <- s.http.Serve(httpLn)
		}()
	}

	var serveErr error
	select {
	case <-ctx.Done():
		log.Printf("INFO  Shutting down")
	case serveErr = <-errs:
	}

	shutCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := s.line.Shutdown(shutCtx); err != nil && !errors.Is(err, net.ErrClosed) {
		log.Printf("WARN  line listener shutdown: %v", err)
	}
	if s.http != nil {
		if err := s.http.Shutdown(shutCtx); err != nil {
			log.Printf("WARN  http shutdown: %v", err)
		}
	}

	if serveErr != nil && !errors.Is(serveErr, ErrListenerClosed) && !errors.Is(serveErr, http.ErrServerClosed) {
		return serveErr
	}
	return nil
}
