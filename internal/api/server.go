// Package api serves the ringgraph pipeline over HTTP.
//
// Routes:
//
//	GET  /healthz      liveness and build version
//	GET  /v1/formats   supported output formats
//	POST /v1/layout    compute positions; responds with the layout JSON
//	POST /v1/render    render one format; ?format=svg|json|pdf|png|dot|graphviz
//
// Both POST routes take {"graph": {...}, "options": {...}} where options
// decodes like pipeline.Options. Add ?repair=true to accept malformed JSON.
// Errors are JSON objects carrying the error code and the request id.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/ringgraph/pkg/pipeline"
)

// Defaults for Config.
const (
	DefaultAddr         = ":8080"
	DefaultMaxBodyBytes = 10 << 20
	shutdownTimeout     = 10 * time.Second
)

// Config configures a Server.
type Config struct {
	Logger       *log.Logger
	MaxBodyBytes int64 // Request body limit (default 10 MiB)
}

// Server routes HTTP requests to a pipeline runner. It is safe for
// concurrent use.
type Server struct {
	logger  *log.Logger
	runner  *pipeline.Runner
	maxBody int64
	router  chi.Router
}

// NewServer builds a server and its routes.
func NewServer(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	s := &Server{
		logger:  cfg.Logger,
		runner:  pipeline.NewRunner(cfg.Logger),
		maxBody: cfg.MaxBodyBytes,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/formats", s.handleFormats)
		r.Post("/layout", s.handleLayout)
		r.Post("/render", s.handleRender)
	})
	return r
}

// Handler returns the server's root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
