package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"booklayout/internal/config"
	"booklayout/internal/layout"
	"booklayout/internal/pipeline"
)

// Server is the HTTP API server for booklayout.
type Server struct {
	router       chi.Router
	orchestrator *pipeline.Orchestrator
	stats        *layout.LayoutStats
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(orch *pipeline.Orchestrator, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		orchestrator: orch,
		stats:        layout.NewLayoutStats(time.Hour),
		log:          log,
		cfg:          cfg,
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

	// Authenticated endpoints (open when no API key is configured).
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey, s.log))

		r.Post("/api/manuscripts", s.handleUpload)
		r.Post("/api/manuscripts/text", s.handleUploadText)
		r.Get("/api/manuscripts", s.handleListManuscripts)
		r.Get("/api/manuscripts/{docID}", s.handleGetManuscript)
		r.Delete("/api/manuscripts/{docID}", s.handleDeleteManuscript)
		r.Get("/api/jobs/{jobID}", s.handleJobStatus)

		r.Post("/api/preview", s.handlePreview)
		r.Post("/api/render/pdf", s.handleRenderPDF)
		r.Post("/api/render/epub", s.handleRenderEPUB)

		r.Get("/api/templates", s.handleTemplates)
		r.Get("/api/stats/layout", s.handleLayoutStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
