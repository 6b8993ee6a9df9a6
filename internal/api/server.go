package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/linkgest/internal/config"
	"github.com/dgallion1/linkgest/internal/parser"
	"github.com/dgallion1/linkgest/internal/pipeline"
	"github.com/dgallion1/linkgest/internal/stats"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP front end for linkgest.
type Server struct {
	router    chi.Router
	extractor *pipeline.Extractor
	registry  *parser.Registry
	stats     *stats.RunStats
	log       *slog.Logger
	cfg       config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(registry *parser.Registry, extractor *pipeline.Extractor, runStats *stats.RunStats, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		extractor: extractor,
		registry:  registry,
		stats:     runStats,
		log:       log,
		cfg:       cfg,
	}
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
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey, s.log))

		r.Post("/api/extract", s.handleExtract)
		r.Get("/api/formats", s.handleFormats)
		r.Get("/api/stats/runs", s.handleRunStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
