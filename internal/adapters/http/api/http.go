// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/wcfinals/internal/domain/callback"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	ViewDependencies
	UpdateDependencies
}

// Server wires HTTP routes for the dashboard API.
type Server struct {
	healthHandler *HealthHandler
	statsHandler  *StatsHandler
	viewHandler   *ViewHandler
	updateHandler *UpdateHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler: NewHealthHandler(),
		statsHandler:  NewStatsHandler(statsProvider),
		viewHandler:   NewViewHandler(deps),
		updateHandler: NewUpdateHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/api/layout", MetricsMiddleware(s.viewHandler.HandleLayout, "layout"))
	mux.HandleFunc("/api/map", MetricsMiddleware(s.viewHandler.HandleMap, "map"))
	mux.HandleFunc("/api/country", MetricsMiddleware(s.viewHandler.HandleCountry, "country"))
	mux.HandleFunc("/api/year", MetricsMiddleware(s.viewHandler.HandleYear, "year"))
	mux.HandleFunc("/api/update", MetricsMiddleware(s.updateHandler.HandleUpdate, "update"))
}

// textResponse carries a rendered sentence.
type textResponse struct {
	Text string `json:"text"`
}

// updateRequest is a UI input change published by the page.
type updateRequest struct {
	Input string         `json:"input"`
	Value callback.Value `json:"value"`
}

func (u updateRequest) validate() error {
	if strings.TrimSpace(u.Input) == "" {
		return errMissingInput
	}
	return nil
}

type updateResponse struct {
	Updates []callback.Update `json:"updates"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// yearParam reads the integer "year" query parameter.
func yearParam(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("year"))
	if raw == "" {
		return 0, errMissingYear
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errInvalidYear
	}
	return year, nil
}
