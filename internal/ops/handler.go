// Package ops exposes the daemon's operational HTTP surface: health,
// Prometheus metrics, an audit-log dump, and layer visibility control.
// It is an unauthenticated debug surface in the same spirit as /metrics.
package ops

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"specto/pkg/domain"
	"specto/pkg/overlay"
)

// Controller is the slice of the overlay the ops surface talks to. The
// daemon implements it by marshaling calls onto the host loop, so handlers
// stay free of scene-threading concerns.
type Controller interface {
	Records(ctx context.Context) []domain.AuditRecord
	Layers(ctx context.Context) []overlay.LayerState
	ToggleLayer(ctx context.Context, name domain.LayerName, visible bool) error
}

// Handler wires the ops endpoints to the overlay controller.
type Handler struct {
	controller Controller
	logger     *slog.Logger
}

// New constructs an ops handler with its dependencies.
func New(controller Controller, logger *slog.Logger) *Handler {
	return &Handler{controller: controller, logger: logger}
}

// Register mounts the ops endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/healthz", h.handleHealth)
	r.Get("/audit", h.handleAuditDump)
	r.Get("/layers", h.handleLayers)
	r.Post("/layers/{name}", h.handleToggleLayer)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

// handleAuditDump returns the session's audit log in append order.
func (h *Handler) handleAuditDump(w http.ResponseWriter, r *http.Request) {
	records := h.controller.Records(r.Context())
	writeJSON(w, http.StatusOK, toAuditResponse(records))
}

// handleLayers returns every layer's visibility and object count.
func (h *Handler) handleLayers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toLayersResponse(h.controller.Layers(r.Context())))
}

// handleToggleLayer shows or hides one layer. An unknown layer name is the
// same no-op it is on the overlay itself; the response reports whether the
// name was recognized.
func (h *Handler) handleToggleLayer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := domain.LayerName(chi.URLParam(r, "name"))

	var req toggleLayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	if req.Visible == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing field: visible"})
		return
	}

	if err := h.controller.ToggleLayer(ctx, name, *req.Visible); err != nil {
		h.logger.ErrorContext(ctx, "layer toggle failed", "layer", name, "error", err)
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "overlay unavailable"})
		return
	}

	known := false
	for _, n := range domain.LayerNames() {
		if n == name {
			known = true
			break
		}
	}
	h.logger.InfoContext(ctx, "layer toggled", "layer", name, "visible", *req.Visible, "known", known)
	writeJSON(w, http.StatusOK, toggleLayerResponse{Layer: name.String(), Visible: *req.Visible, Known: known})
}
