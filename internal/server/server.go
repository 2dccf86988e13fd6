// Package server provides the HTTP API for xmlsense.
package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/dshills/xmlsense/internal/completion"
	"github.com/dshills/xmlsense/internal/config"
	"github.com/dshills/xmlsense/internal/search"
)

// Server is the HTTP server for the xmlsense API.
type Server struct {
	session  *completion.Session
	searcher *search.Searcher
	opts     *search.Options
	config   *config.ServerConfig
	logger   *zap.Logger
	server   *http.Server
}

// NewServer creates a server with the given dependencies.
func NewServer(
	session *completion.Session,
	searcher *search.Searcher,
	opts *search.Options,
	cfg *config.ServerConfig,
	logger *zap.Logger,
) *Server {
	return &Server{
		session:  session,
		searcher: searcher,
		opts:     opts,
		config:   cfg,
		logger:   logger,
	}
}

// Router builds the HTTP routing table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.config.RequestTimeout()))

	r.Post("/api/v1/complete", s.handleComplete)
	r.Post("/api/v1/analyze", s.handleAnalyze)
	r.Post("/api/v1/search", s.handleSearch)
	r.Get("/health", s.handleHealth)

	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:    s.config.Addr,
		Handler: s.Router(),
	}
	s.logger.Info("starting server", zap.String("addr", s.config.Addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
