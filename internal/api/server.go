package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/preyasha/autofill/internal/config"
	"github.com/preyasha/autofill/internal/extract"
	"github.com/preyasha/autofill/internal/metrics"
	"github.com/preyasha/autofill/internal/pipeline"
)

// Server is the HTTP API server for the autofill service.
type Server struct {
	router   chi.Router
	pipeline *pipeline.Pipeline
	stats    *extract.Stats
	backend  string
	model    string
	log      *slog.Logger
	cfg      config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(pipe *pipeline.Pipeline, stats *extract.Stats, backend, model string, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		pipeline: pipe,
		stats:    stats,
		backend:  backend,
		model:    model,
		log:      log,
		cfg:      cfg,
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
	r.Use(metrics.Middleware())

	// Public endpoints.
	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey, s.log))

		r.Post("/api/extract", s.handleExtract)
		r.Post("/api/extract/file", s.handleExtractFile)
		r.Post("/api/extract/file/bulk", s.handleExtractFileBulk)
		r.Get("/api/stats/llm", s.handleLLMStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
