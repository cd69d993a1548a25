// Package api serves the slidekit core over HTTP.
//
// Every editing endpoint is stateless: the request carries the document,
// the response carries the result. Templates are the only state and live in
// a [store.Store].
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/slidekit/pkg/buildinfo"
	"github.com/matzehuels/slidekit/pkg/config"
	"github.com/matzehuels/slidekit/pkg/store"
)

// Server is the HTTP API server.
type Server struct {
	router chi.Router
	store  *store.Store
	cfg    *config.Config
	logger *log.Logger
}

// NewServer creates the server and its routes. A nil logger uses
// log.Default().
func NewServer(st *store.Store, cfg *config.Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if cfg == nil {
		cfg = config.Default()
	}
	s := &Server{store: st, cfg: cfg, logger: logger}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.logger))
	r.Use(maxBody(s.cfg.Server.MaxBodyBytes))

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/normalize", s.handleNormalize)
		r.Post("/edges", s.handleEdges)
		r.Post("/nearest-edge", s.handleNearestEdge)
		r.Post("/drop", s.handleDrop)
		r.Post("/columns/{op}", s.handleColumns)

		r.Get("/layouts", s.handleLayouts)
		r.Get("/layouts/{id}", s.handleLayout)
		r.Get("/presets/{count}", s.handlePresets)
		r.Get("/themes", s.handleThemes)

		r.Get("/templates", s.handleListTemplates)
		r.Get("/templates/{id}", s.handleGetTemplate)
		r.Put("/templates/{id}", s.handlePutTemplate)
		r.Delete("/templates/{id}", s.handleDeleteTemplate)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, s.logger, errNotFound(r))
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	body := map[string]string{"status": "ok", "version": buildinfo.Version}
	if s.store != nil {
		body["store"] = s.store.Backend().Name()
	}
	writeJSON(w, http.StatusOK, body)
}

// ListenAndServe serves on the configured address until ctx is cancelled,
// then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s,
		ReadTimeout:       s.cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      s.cfg.Server.WriteTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
