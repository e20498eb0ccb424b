// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/okian/wcfinals/internal/domain/view"
)

var (
	errMissingYear    = errors.New("missing year")
	errInvalidYear    = errors.New("invalid year; must be an integer")
	errMissingCountry = errors.New("missing name")
	errMissingInput   = errors.New("missing input")
)

// ViewDependencies renders the dashboard outputs.
type ViewDependencies interface {
	Layout(ctx context.Context) view.Layout
	RenderMap(ctx context.Context, selectedYear int) view.MapFigure
	RenderCountryInfo(ctx context.Context, selectedCountry string) string
	RenderYearInfo(ctx context.Context, selectedYear int) string
}

// ViewHandler serves the read-only dashboard views.
type ViewHandler struct {
	deps ViewDependencies
}

// NewViewHandler creates a new view handler.
func NewViewHandler(deps ViewDependencies) *ViewHandler {
	return &ViewHandler{deps: deps}
}

// HandleLayout handles GET /api/layout requests.
func (h *ViewHandler) HandleLayout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Layout(r.Context()))
}

// HandleMap handles GET /api/map?year=N requests.
func (h *ViewHandler) HandleMap(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_map"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	year, err := yearParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	writeJSON(w, http.StatusOK, h.deps.RenderMap(r.Context(), year))
}

// HandleCountry handles GET /api/country?name=C requests.
func (h *ViewHandler) HandleCountry(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_country"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, errMissingCountry))
		return
	}
	writeJSON(w, http.StatusOK, textResponse{Text: h.deps.RenderCountryInfo(r.Context(), name)})
}

// HandleYear handles GET /api/year?year=N requests. A year without a final
// is not an error; the response carries the no-data text.
func (h *ViewHandler) HandleYear(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_year"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	year, err := yearParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	writeJSON(w, http.StatusOK, textResponse{Text: h.deps.RenderYearInfo(r.Context(), year)})
}
