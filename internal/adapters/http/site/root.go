// Package site serves the embedded dashboard page.
package site

import (
	"context"
	"net/http"
)

const indexFile = "index.html"

// Register attaches the dashboard page and its assets to mux.
// Routes:
//
//	GET /          -> dashboard page
//	GET /static/*  -> page assets
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(FS())))
	mux.HandleFunc("/{$}", NewRootHandler().HandleRoot)
}

// RootHandler serves the dashboard page.
type RootHandler struct{}

// NewRootHandler creates a new root handler.
func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

// HandleRoot handles GET / requests.
func (h *RootHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.NotFound(w, r)
		return
	}
	http.ServeFileFS(w, r, pageFS, indexFile)
}
