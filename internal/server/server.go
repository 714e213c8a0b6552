// Package server exposes the loaded catalog over HTTP so the current view
// (query, tag facets, sort mode) is shareable as a plain URL. The server is
// strictly read-only: the catalog is loaded once at startup and there are
// no mutation endpoints.
package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/promptdeck/promptdeck/internal/catalog"
	"github.com/promptdeck/promptdeck/internal/engine"
	"github.com/promptdeck/promptdeck/internal/models"
	"github.com/promptdeck/promptdeck/internal/urlstate"
)

// ViewServer serves the shareable catalog views.
type ViewServer struct {
	catalog *catalog.Catalog
	port    int
}

// New creates a view server for an already-loaded catalog.
func New(cat *catalog.Catalog, port int) *ViewServer {
	return &ViewServer{catalog: cat, port: port}
}

// Handler builds the HTTP handler. Split from Start for tests.
func (s *ViewServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/prompts", s.handlePrompts)
	mux.HandleFunc("/prompts/", s.handlePrompt)
	mux.HandleFunc("/tags", s.handleTags)
	mux.HandleFunc("/export", s.handleExport)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Start begins serving HTTP requests and blocks.
func (s *ViewServer) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("view server starting on http://localhost%s", addr)
	log.Printf("  http://localhost%s/?q=<text>&tags=<a,b>&sort=title|recency - visible prompts", addr)
	log.Printf("  http://localhost%s/prompts/{id} - one prompt", addr)
	log.Printf("  http://localhost%s/tags - tag universe", addr)
	log.Printf("  http://localhost%s/export - full catalog download", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *ViewServer) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.writeError(w, fmt.Sprintf("unknown path: %s", r.URL.Path), http.StatusNotFound)
		return
	}
	s.handlePrompts(w, r)
}

// handlePrompts returns the visible list for the request's view-state
// parameters, exactly as urlstate and engine define them.
func (s *ViewServer) handlePrompts(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	if r.Method == http.MethodOptions {
		return
	}
	if r.Method != http.MethodGet {
		s.writeError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	state := urlstate.Parse(r.URL.Query())

	var visible []models.Prompt
	if r.URL.Query().Get("fuzzy") == "1" {
		visible = engine.FuzzyVisible(s.catalog.Prompts(), state)
	} else {
		visible = engine.Visible(s.catalog.Prompts(), state)
	}

	if r.URL.Query().Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		for _, p := range visible {
			line := fmt.Sprintf("%s\t%s", p.ID, p.Title)
			if len(p.Tags) > 0 {
				line += fmt.Sprintf("\t[%s]", strings.Join(p.Tags, ", "))
			}
			fmt.Fprintln(w, line)
		}
		return
	}
	s.writeJSON(w, visible)
}

// handlePrompt returns one prompt by id, honoring the deep-link rule that
// the first occurrence wins for duplicate ids.
func (s *ViewServer) handlePrompt(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	if r.Method == http.MethodOptions {
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/prompts/")
	if id == "" {
		s.writeError(w, "prompt id required", http.StatusBadRequest)
		return
	}
	p, ok := s.catalog.Get(id)
	if !ok {
		s.writeError(w, fmt.Sprintf("prompt not found: %s", id), http.StatusNotFound)
		return
	}
	s.writeJSON(w, p)
}

func (s *ViewServer) handleTags(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	if r.Method == http.MethodOptions {
		return
	}
	s.writeJSON(w, engine.AllTags(s.catalog.Prompts()))
}

// handleExport serves the full store as a downloadable document.
func (s *ViewServer) handleExport(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	if r.Method == http.MethodOptions {
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="promptdeck-export.json"`)
	if err := s.catalog.Export(w); err != nil {
		log.Printf("export failed mid-stream: %v", err)
	}
}

func (s *ViewServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	if r.Method == http.MethodOptions {
		return
	}
	s.writeJSON(w, map[string]string{
		"status":  "ok",
		"service": "promptdeck-view-server",
	})
}

func (s *ViewServer) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func (s *ViewServer) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   message,
	})
}

func setCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}
