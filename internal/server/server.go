package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/kolliparasurya/Interactive-Bezier-Curve/internal/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Server serves a directory tree over HTTP with the cross-origin
// isolation headers attached to every response.
type Server struct {
	cfg     config.Config
	handler http.Handler
}

// New builds a Server that serves files from fsys. Paths containing
// parent-directory segments are rejected by the file server, and fsys
// is expected to be sealed at the served root, so requests cannot
// reach files outside it.
func New(cfg config.Config, fsys afero.Fs) *Server {
	files := http.FileServer(afero.NewHttpFs(fsys).Dir("/"))
	return &Server{
		cfg:     cfg,
		handler: logRequests(SecureHeaders(files)),
	}
}

// Handler returns the complete handler chain.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe binds the configured address and serves until ctx is
// canceled. A bind conflict surfaces as an immediate error. Returns
// nil after a clean shutdown.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("binding %s: %w", s.cfg.Addr(), err)
	}

	srv := &http.Server{Handler: s.handler}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutting down")
		if err := srv.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		<-errc
		return nil
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving %s: %w", s.cfg.Addr(), err)
	}
}
