// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	service "github.com/okian/wcfinals/internal/app"
	"github.com/okian/wcfinals/internal/domain/callback"
)

// UpdateDependencies dispatches UI input changes.
type UpdateDependencies interface {
	Dispatch(ctx context.Context, input string, v callback.Value) ([]callback.Update, error)
}

// UpdateHandler handles UI input change events.
type UpdateHandler struct {
	deps UpdateDependencies
}

// NewUpdateHandler creates a new update handler.
func NewUpdateHandler(deps UpdateDependencies) *UpdateHandler {
	return &UpdateHandler{deps: deps}
}

// HandleUpdate handles POST /api/update requests.
func (h *UpdateHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_update"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	updates, err := h.deps.Dispatch(r.Context(), req.Input, req.Value)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, updateResponse{Updates: updates})
	case errors.Is(err, callback.ErrUnknownInput):
		writeError(w, http.StatusNotFound, "not_found", WrapKind(op, ErrNotFound, err))
	case errors.Is(err, callback.ErrInvalidValue):
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
	case errors.Is(err, service.ErrNotStarted):
		writeError(w, http.StatusServiceUnavailable, "unavailable", WrapKind(op, ErrUnavailable, err))
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
	}
}
