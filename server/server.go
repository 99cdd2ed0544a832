// ABOUTME: HTTP server exposing the configuration backend REST API over a chi router.
// ABOUTME: Serves name lists, resource content by singular path, manifests, saves, and a goldmark-rendered docs page.
package server

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"

	"github.com/classkit/classdeck/panel"
)

//go:embed docs/api.md
var apiDocMarkdown []byte

// saveRequest is the body of a save POST: the parsed resource JSON wrapped
// under a content key.
type saveRequest struct {
	Content json.RawMessage `json:"content"`
}

// Server holds the chi router and the resource store.
type Server struct {
	router chi.Router
	store  *Store
	docs   []byte // rendered HTML for the landing page
}

// NewServer creates a Server with all routes configured and the API docs
// rendered.
func NewServer(store *Store) *Server {
	s := &Server{store: store}
	s.docs = renderDocs(apiDocMarkdown)

	r := chi.NewRouter()
	r.Get("/", s.handleIndex)
	r.Get("/api/v1/panel/{category}", s.handleListNames)
	r.Get("/api/v1/client/{resource}", s.handleGetContent)
	r.Get("/api/v1/manifest/{category}", s.handleManifest)
	r.Post("/api/resources/{category}/{name}", s.handleSave)

	s.router = r
	return s
}

// ServeHTTP implements the http.Handler interface, delegating to the chi router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// handleIndex serves the rendered API documentation.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(s.docs)
}

// handleListNames returns the JSON array of resource names for a category.
func (s *Server) handleListNames(w http.ResponseWriter, r *http.Request) {
	rt, ok := panel.ResourceTypeFromKey(chi.URLParam(r, "category"))
	if !ok {
		http.Error(w, "unknown category", http.StatusNotFound)
		return
	}
	names, err := s.store.ListNames(rt.Key())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, names)
}

// handleGetContent returns the raw JSON content of one resource. The path
// segment is the category's singular form; the name arrives as a query
// parameter.
func (s *Server) handleGetContent(w http.ResponseWriter, r *http.Request) {
	rt, ok := panel.ResourceTypeFromSingular(chi.URLParam(r, "resource"))
	if !ok {
		http.Error(w, "unknown resource", http.StatusNotFound)
		return
	}
	name := r.URL.Query().Get("name")
	if name == "" {
		http.Error(w, "name query parameter is required", http.StatusBadRequest)
		return
	}

	content, _, err := s.store.Get(rt.Key(), name)
	if errors.Is(err, ErrNotFound) {
		http.Error(w, "resource not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(content)
}

// handleManifest returns every resource in a category mapped to its value
// pointer and version.
func (s *Server) handleManifest(w http.ResponseWriter, r *http.Request) {
	rt, ok := panel.ResourceTypeFromKey(chi.URLParam(r, "category"))
	if !ok {
		http.Error(w, "unknown category", http.StatusNotFound)
		return
	}
	manifest, err := s.store.Manifest(rt.Key())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, manifest)
}

// handleSave stores posted content for one resource. The body must be valid
// JSON wrapping the resource under a content key.
func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	rt, ok := panel.ResourceTypeFromKey(chi.URLParam(r, "category"))
	if !ok {
		http.Error(w, "unknown category", http.StatusNotFound)
		return
	}
	name := chi.URLParam(r, "name")

	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid save body: %v", err), http.StatusUnprocessableEntity)
		return
	}
	if len(req.Content) == 0 {
		http.Error(w, "content key is required", http.StatusUnprocessableEntity)
		return
	}

	version, err := s.store.Put(rt.Key(), name, req.Content)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"version": version})
}

// writeJSON encodes v as the JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// renderDocs converts the API doc markdown to a minimal HTML page.
func renderDocs(md []byte) []byte {
	var body bytes.Buffer
	if err := goldmark.New().Convert(md, &body); err != nil {
		return []byte("<html><body><p>documentation unavailable</p></body></html>")
	}
	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html><head><title>classdeck API</title></head><body>\n")
	page.Write(body.Bytes())
	page.WriteString("\n</body></html>\n")
	return page.Bytes()
}
