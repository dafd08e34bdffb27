package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/lorenzapy/brandsite/internal/middleware"
	"github.com/lorenzapy/brandsite/internal/model"
	"github.com/lorenzapy/brandsite/internal/service"
)

// EventsHandler exposes the admin event log.
type EventsHandler struct {
	events *service.EventService
}

// NewEventsHandler creates an events handler.
func NewEventsHandler(events *service.EventService) *EventsHandler {
	return &EventsHandler{events: events}
}

// List handles GET /api/v1/admin/events?limit=N.
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := int64(100)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 || parsed > 1000 {
			writeJSONError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	items, err := h.events.ListRecent(r.Context(), limit)
	if err != nil {
		slog.Error("listing events failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to load events")
		return
	}

	writeJSONSuccess(w, map[string]any{"events": items})
}

// Prune handles DELETE /api/v1/admin/events?days=N and removes entries older
// than the given number of days (30 by default).
func (h *EventsHandler) Prune(w http.ResponseWriter, r *http.Request) {
	days := int64(30)
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			writeJSONError(w, http.StatusBadRequest, "Invalid days")
			return
		}
		days = parsed
	}

	deleted, err := h.events.DeleteOldEvents(r.Context(), time.Duration(days)*24*time.Hour)
	if err != nil {
		slog.Error("pruning events failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to prune events")
		return
	}

	_ = h.events.LogEvent(r.Context(), model.EventLevelInfo, model.EventCategorySystem,
		"event log pruned", middleware.GetUserID(r), r.RemoteAddr,
		map[string]any{"days": days, "deleted": deleted})

	writeJSONSuccess(w, map[string]any{"deleted": deleted})
}
