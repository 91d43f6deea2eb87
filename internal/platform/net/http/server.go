package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"vibecheck/internal/platform/config"
	"vibecheck/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

const (
	// readHeaderTimeout bounds slow-header clients before any handler runs
	readHeaderTimeout = 10 * time.Second
	// drainTimeout bounds how long a stopping server waits on in-flight requests
	drainTimeout = 5 * time.Second
)

// Server owns one chi mux and the stdlib http.Server that serves it
type Server struct {
	mux *chi.Mux
	srv *http.Server
}

// NewServer reads the listen address from cfg (API_PORT, default :4000).
// Each opt receives the raw *chi.Mux before any routes are mounted.
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	m := chi.NewRouter()
	for _, o := range opts {
		o(m)
	}
	return &Server{
		mux: m,
		srv: &http.Server{
			Addr:              cfg.MayString("API_PORT", ":4000"),
			Handler:           m,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

// Router exposes the mux through the platform Router seam
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr reports the configured listen address
func (s *Server) Addr() string { return s.srv.Addr }

// Run listens and blocks. Cancelling ctx drains in-flight requests,
// bounded by drainTimeout, before Run returns. A graceful stop surfaces
// as nil, not ErrServerClosed.
func (s *Server) Run(ctx context.Context) error {
	log := logger.Named("http")
	log.Info().Str("addr", s.srv.Addr).Msg("http listening")

	errc := make(chan error, 1)
	go func() { errc <- s.srv.ListenAndServe() }()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("http draining")
	drainCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	err := s.Shutdown(drainCtx)
	<-errc
	return err
}

// Shutdown drains in-flight requests and stops the listener
func (s *Server) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
