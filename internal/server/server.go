// Package server exposes the catalog store and template applicator over
// HTTP. It is a stateless document API: each request operates on the
// persisted catalog, so it carries no undo history and no selection.
package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"foliopress/pkg/store"
	"foliopress/pkg/templates"
)

// Server wraps the chi router and the http.Server.
type Server struct {
	httpServer *http.Server
	logger     *charmlog.Logger
}

// New constructs the server with its middleware chain and routes.
func New(cfg Config, s store.Store, t *templates.Catalog, logger *charmlog.Logger) *Server {
	h := NewHandlers(s, t, logger)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(requestLogger(logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Mount("/api/v1", h.Routes())

	return &Server{
		logger: logger,
		httpServer: &http.Server{
			Addr:              cfg.Addr,
			Handler:           r,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// ListenAndServe starts the server and blocks until it is closed.
func (s *Server) ListenAndServe() error {
	s.logger.Info("server listening", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// OpenStore builds the catalog store named by the configuration.
func OpenStore(ctx context.Context, cfg Config) (store.Store, error) {
	switch cfg.Backend {
	case "memory":
		return store.NewMemoryStore(), nil
	case "file":
		return store.NewFileStore(cfg.FileDir)
	case "mongo":
		return store.NewMongoStore(ctx, store.MongoConfig{URI: cfg.MongoURI})
	case "postgres":
		return store.NewPostgresStore(ctx, cfg.PostgresDSN)
	case "redis":
		return store.NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RedisTTL)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

// requestLogger logs one line per request with method, path, status and
// duration.
func requestLogger(logger *charmlog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
			)
		})
	}
}

// pageIndex parses the {page} URL parameter. Unparseable values map to -1,
// which every document operation treats as an out-of-range no-op.
func pageIndex(r *http.Request) int {
	n, err := strconv.Atoi(chi.URLParam(r, "page"))
	if err != nil {
		return -1
	}
	return n
}
