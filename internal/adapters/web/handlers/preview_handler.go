package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/SanjayD11/NourishNet-sub001/internal/core/domain"
	"github.com/SanjayD11/NourishNet-sub001/internal/core/ports"
	"github.com/SanjayD11/NourishNet-sub001/internal/geo"
)

const defaultEventLimit = 50

// PreviewHandler exposes the preview widget operations over HTTP.
type PreviewHandler struct {
	Service ports.PreviewService
}

// NewPreviewHandler creates a new PreviewHandler
func NewPreviewHandler(service ports.PreviewService) *PreviewHandler {
	return &PreviewHandler{
		Service: service,
	}
}

type widgetRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Label     string   `json:"label"`
}

// HandleCreate mounts a new widget, optionally with an initial coordinate.
func (h *PreviewHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1048576)

	var req widgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var coord *geo.Coordinate
	if req.Latitude != nil && req.Longitude != nil {
		coord = &geo.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude}
	}

	snap := h.Service.CreateWidget(coord, req.Label)

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, snap)
}

// HandleList returns snapshots of all mounted widgets.
func (h *PreviewHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.ListWidgets())
}

// HandleGet returns one widget's snapshot.
func (h *PreviewHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	snap, err := h.Service.GetWidget(mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, snap)
}

// HandleSetCoordinate replaces the widget's coordinate. An unrenderable
// coordinate is not an error: the widget simply returns to its empty phase.
func (h *PreviewHandler) HandleSetCoordinate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1048576)

	var req widgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Latitude == nil || req.Longitude == nil {
		http.Error(w, "latitude and longitude are required", http.StatusBadRequest)
		return
	}

	snap, err := h.Service.SetCoordinate(mux.Vars(r)["id"], geo.Coordinate{
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, snap)
}

// HandleRetry triggers a manual retry on a degraded widget.
func (h *PreviewHandler) HandleRetry(w http.ResponseWriter, r *http.Request) {
	snap, err := h.Service.Retry(mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, snap)
}

// HandleDirective returns the widget's current rendering directive.
func (h *PreviewHandler) HandleDirective(w http.ResponseWriter, r *http.Request) {
	d, err := h.Service.Directive(mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, d)
}

// HandleEvents returns the widget's transition history.
func (h *PreviewHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	limit := defaultEventLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	events, err := h.Service.Events(mux.Vars(r)["id"], limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, events)
}

// HandleDelete tears a widget down.
func (h *PreviewHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.RemoveWidget(mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrWidgetNotFound):
		http.Error(w, "Widget not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrRetryUnavailable):
		http.Error(w, "Retry is only available while degraded", http.StatusConflict)
	default:
		http.Error(w, "Internal error: "+err.Error(), http.StatusInternalServerError)
	}
}
