package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"booklayout/internal/analyzer"
	"booklayout/internal/layout"
	"booklayout/internal/manuscript"
	"booklayout/internal/render"
)

// layoutRequest selects a manuscript (stored by ID, or inline text) and
// the config overrides to lay it out with.
type layoutRequest struct {
	DocID  string         `json:"doc_id,omitempty"`
	Text   string         `json:"text,omitempty"`
	Title  string         `json:"title,omitempty"`
	Author string         `json:"author,omitempty"`
	Config map[string]any `json:"config,omitempty"`
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	doc, cfg, ok := s.resolveLayoutInputs(w, r)
	if !ok {
		return
	}

	result := s.timedLayout(doc, cfg)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"layout": result})
}

func (s *Server) handleRenderPDF(w http.ResponseWriter, r *http.Request) {
	doc, cfg, ok := s.resolveLayoutInputs(w, r)
	if !ok {
		return
	}

	result := s.timedLayout(doc, cfg)
	data, err := render.RenderPDF(result)
	if err != nil {
		s.log.Error("pdf render failed", "error", err)
		jsonError(w, "pdf render failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	title := doc.Metadata.Title
	if title == "" {
		title = "book"
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", safeName(title)+".pdf"))
	w.Write(data)
}

func (s *Server) handleRenderEPUB(w http.ResponseWriter, r *http.Request) {
	doc, cfg, ok := s.resolveLayoutInputs(w, r)
	if !ok {
		return
	}

	data, err := render.RenderEPUB(doc, cfg)
	if err != nil {
		s.log.Error("epub render failed", "error", err)
		jsonError(w, "epub render failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	title := doc.Metadata.Title
	if title == "" {
		title = "book"
	}
	w.Header().Set("Content-Type", "application/epub+zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", safeName(title)+".epub"))
	w.Write(data)
}

func (s *Server) handleLayoutStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"queue_depth": s.orchestrator.QueueDepth(),
		"stats":       s.stats.Snapshot(),
	})
}

// resolveLayoutInputs decodes the request, finds or analyzes the
// manuscript, and merges the layout config. On failure it writes the error
// response and returns ok=false.
func (s *Server) resolveLayoutInputs(w http.ResponseWriter, r *http.Request) (*manuscript.Document, layout.Config, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	var req layoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return nil, layout.Config{}, false
	}

	cfg, err := layout.ParseConfig(req.Config)
	if err != nil {
		var cfgErr *layout.ConfigError
		if errors.As(err, &cfgErr) {
			jsonError(w, cfgErr.Error(), http.StatusBadRequest)
		} else {
			jsonError(w, "invalid config: "+err.Error(), http.StatusBadRequest)
		}
		return nil, layout.Config{}, false
	}

	var doc *manuscript.Document
	switch {
	case req.DocID != "":
		doc = s.orchestrator.Documents().Get(req.DocID)
		if doc == nil {
			jsonError(w, "manuscript not found", http.StatusNotFound)
			return nil, layout.Config{}, false
		}
	case strings.TrimSpace(req.Text) != "":
		doc = analyzer.Analyze(req.Text)
	default:
		jsonError(w, "doc_id or text is required", http.StatusBadRequest)
		return nil, layout.Config{}, false
	}

	if req.Title != "" || req.Author != "" {
		// Metadata overrides apply to this request only.
		copied := *doc
		if req.Title != "" {
			copied.Metadata.Title = req.Title
		}
		if req.Author != "" {
			copied.Metadata.Author = req.Author
		}
		doc = &copied
	}

	return doc, cfg, true
}

func (s *Server) timedLayout(doc *manuscript.Document, cfg layout.Config) *layout.Result {
	start := time.Now()
	result := layout.Layout(doc, cfg)
	s.stats.Record(time.Since(start))
	return result
}

func safeName(title string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '"', '\'', ' ':
			return '_'
		}
		return r
	}, title)
}
