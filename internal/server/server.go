// Package server exposes the ontology to DOT pipeline over HTTP.
//
// Routes:
//
//	GET  /health                health check
//	POST /api/dot               N-Triples body in, DOT document out
//	POST /api/render/{format}   N-Triples body in, rendered image out
//	GET  /metrics               Prometheus metrics
//
// Both API routes accept the query parameters names (local, prefixed, uri),
// synthesize (bool), rankdir and repeated prefix=p=namespace declarations.
// Each request transforms its own graph; requests share only the runner's
// artifact cache.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/ontodot/pkg/config"
	"github.com/matzehuels/ontodot/pkg/pipeline"
)

const (
	// DefaultAddr is the listen address used when none is configured.
	DefaultAddr = ":8080"

	// DefaultMaxBodyBytes limits uploaded ontologies.
	DefaultMaxBodyBytes = 32 << 20

	defaultShutdownTimeout = 10 * time.Second
)

// Options configures a Server.
type Options struct {
	Addr string

	// Base is the configuration requests start from before query overrides.
	Base config.Config

	// RenderTimeout bounds each render; zero means pipeline.DefaultRenderTimeout.
	RenderTimeout time.Duration

	// MaxBodyBytes limits request bodies; zero means DefaultMaxBodyBytes.
	MaxBodyBytes int64

	// Gatherer backs GET /metrics. Nil disables the route.
	Gatherer prometheus.Gatherer
}

// Server serves the HTTP API.
type Server struct {
	runner *pipeline.Runner
	opts   Options
	logger *log.Logger
}

// New creates a server that runs requests through runner.
func New(runner *pipeline.Runner, opts Options, logger *log.Logger) *Server {
	if opts.Addr == "" {
		opts.Addr = DefaultAddr
	}
	if opts.RenderTimeout <= 0 {
		opts.RenderTimeout = pipeline.DefaultRenderTimeout
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if logger == nil {
		logger = runner.Logger
	}
	return &Server{runner: runner, opts: opts, logger: logger}
}

// Handler returns the router with all routes and middleware mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/dot", s.Dot)
		r.Post("/render/{format}", s.Render)
	})

	if s.opts.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.opts.Gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.opts.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: s.opts.RenderTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.opts.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
