package handler

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/lorenzapy/brandsite/internal/middleware"
	"github.com/lorenzapy/brandsite/internal/model"
	"github.com/lorenzapy/brandsite/internal/service"
	"github.com/lorenzapy/brandsite/internal/store"
)

// ContentHandler handles the admin content tab: editable copy rows and the
// read-only career highlights.
type ContentHandler struct {
	queries *store.Queries
	content *service.ContentService
	events  *service.EventService
}

// NewContentHandler creates a content handler.
func NewContentHandler(db *sql.DB, content *service.ContentService, events *service.EventService) *ContentHandler {
	return &ContentHandler{
		queries: store.New(db),
		content: content,
		events:  events,
	}
}

// List handles GET /api/v1/admin/content and returns every content row plus
// the career highlights for the admin dashboard.
func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.queries.ListSiteContent(r.Context())
	if err != nil {
		slog.Error("listing site content failed", "category", "content", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to load content")
		return
	}

	highlights, err := h.queries.ListCareerHighlights(r.Context())
	if err != nil {
		slog.Error("listing career highlights failed", "category", "content", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to load career highlights")
		return
	}

	writeJSONSuccess(w, map[string]any{
		"content":    items,
		"highlights": highlights,
	})
}

type contentItemRequest struct {
	Key     string `json:"key"`
	ValueES string `json:"value_es"`
	ValuePT string `json:"value_pt"`
}

type saveContentRequest struct {
	Items []contentItemRequest `json:"items"`
}

// Save handles PUT /api/v1/admin/content. Each item is upserted by key in
// sequence; the first failure stops the loop and reports which key failed,
// leaving earlier writes in place.
func (h *ContentHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveContentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.Items) == 0 {
		writeJSONError(w, http.StatusBadRequest, "No content items provided")
		return
	}

	now := time.Now().UTC()
	for _, item := range req.Items {
		key := strings.TrimSpace(item.Key)
		if key == "" {
			writeJSONError(w, http.StatusBadRequest, "Content item key is required")
			return
		}
		err := h.queries.UpsertSiteContent(r.Context(), store.UpsertSiteContentParams{
			Key:       key,
			ValueES:   item.ValueES,
			ValuePT:   item.ValuePT,
			UpdatedAt: now,
		})
		if err != nil {
			slog.Error("upserting site content failed", "category", "content", "key", key, "error", err)
			writeJSONError(w, http.StatusInternalServerError,
				fmt.Sprintf("Failed to save content item %q", key))
			return
		}
	}

	h.content.Invalidate(r.Context(), service.SectionHero, service.SectionAbout)

	_ = h.events.LogContentEvent(r.Context(), model.EventLevelInfo, "site content saved",
		middleware.GetUserID(r), r.RemoteAddr, map[string]any{"items": len(req.Items)})

	writeJSONSuccess(w, map[string]any{"saved": len(req.Items)})
}
