package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lorenzapy/brandsite/internal/middleware"
	"github.com/lorenzapy/brandsite/internal/service"
	"github.com/lorenzapy/brandsite/internal/store"
)

// FrontendHandler serves the public site sections.
type FrontendHandler struct {
	queries *store.Queries
	content *service.ContentService
}

// NewFrontendHandler creates a frontend handler.
func NewFrontendHandler(db *sql.DB, content *service.ContentService) *FrontendHandler {
	return &FrontendHandler{
		queries: store.New(db),
		content: content,
	}
}

// Section handles GET /api/v1/sections/{section}. The language comes from
// the resolved request language (?lang=, cookie, Accept-Language).
func (h *FrontendHandler) Section(w http.ResponseWriter, r *http.Request) {
	section := chi.URLParam(r, "section")
	lang := middleware.GetLanguage(r)

	data, err := h.content.Section(r.Context(), section, lang)
	if err != nil {
		if errors.Is(err, service.ErrUnknownSection) {
			writeJSONError(w, http.StatusNotFound, "Unknown section")
			return
		}
		slog.Error("building section failed", "category", "content", "section", section, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to load section")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"section": section,
		"lang":    lang,
		"data":    data,
	})
}
