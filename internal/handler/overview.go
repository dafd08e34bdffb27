package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/lorenzapy/brandsite/internal/model"
	"github.com/lorenzapy/brandsite/internal/store"
)

// OverviewHandler serves the admin dashboard's initial load: every editable
// collection in one response.
type OverviewHandler struct {
	queries *store.Queries
}

// NewOverviewHandler creates an overview handler.
func NewOverviewHandler(db *sql.DB) *OverviewHandler {
	return &OverviewHandler{queries: store.New(db)}
}

// Overview handles GET /api/v1/admin/overview.
func (h *OverviewHandler) Overview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	content, err := h.queries.ListSiteContent(ctx)
	if err != nil {
		slog.Error("loading overview content failed", "category", "content", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to load dashboard data")
		return
	}

	highlights, err := h.queries.ListCareerHighlights(ctx)
	if err != nil {
		slog.Error("loading overview highlights failed", "category", "content", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to load dashboard data")
		return
	}

	team, err := h.queries.ListTeamImages(ctx)
	if err != nil {
		slog.Error("loading overview team images failed", "category", "media", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to load dashboard data")
		return
	}

	testimonials, err := h.queries.ListTestimonials(ctx)
	if err != nil {
		slog.Error("loading overview testimonials failed", "category", "content", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to load dashboard data")
		return
	}

	settings, err := h.queries.GetContactInfo(ctx)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Error("loading overview settings failed", "category", "config", "error", err)
			writeJSONError(w, http.StatusInternalServerError, "Failed to load dashboard data")
			return
		}
		settings = model.DefaultContactInfo()
	}

	writeJSONSuccess(w, map[string]any{
		"content":      content,
		"highlights":   highlights,
		"team":         team,
		"testimonials": testimonials,
		"settings":     settings,
	})
}
