package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lorenzapy/brandsite/internal/middleware"
	"github.com/lorenzapy/brandsite/internal/model"
	"github.com/lorenzapy/brandsite/internal/service"
	"github.com/lorenzapy/brandsite/internal/store"
)

// TeamHandler handles the admin team carousel: listing, adding, toggling,
// and deleting photos.
type TeamHandler struct {
	queries *store.Queries
	content *service.ContentService
	events  *service.EventService
}

// NewTeamHandler creates a team handler.
func NewTeamHandler(db *sql.DB, content *service.ContentService, events *service.EventService) *TeamHandler {
	return &TeamHandler{
		queries: store.New(db),
		content: content,
		events:  events,
	}
}

// List handles GET /api/v1/admin/team and returns every photo, active or not.
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	images, err := h.queries.ListTeamImages(r.Context())
	if err != nil {
		slog.Error("listing team images failed", "category", "media", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to load team images")
		return
	}
	writeJSONSuccess(w, map[string]any{"images": images})
}

type createTeamImageRequest struct {
	ImageURL  string `json:"image_url"`
	AltTextES string `json:"alt_text_es"`
	AltTextPT string `json:"alt_text_pt"`
}

// Create handles POST /api/v1/admin/team. The new photo is appended to the
// carousel: its order index is the current photo count.
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTeamImageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.ImageURL == "" {
		writeJSONError(w, http.StatusBadRequest, "image_url is required")
		return
	}

	count, err := h.queries.CountTeamImages(r.Context())
	if err != nil {
		slog.Error("counting team images failed", "category", "media", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to add team image")
		return
	}

	image, err := h.queries.CreateTeamImage(r.Context(), store.CreateTeamImageParams{
		ImageURL:   req.ImageURL,
		AltTextES:  req.AltTextES,
		AltTextPT:  req.AltTextPT,
		OrderIndex: count,
		Active:     true,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		slog.Error("creating team image failed", "category", "media", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to add team image")
		return
	}

	h.content.Invalidate(r.Context(), service.SectionTeam)

	_ = h.events.LogMediaEvent(r.Context(), model.EventLevelInfo, "team image added",
		middleware.GetUserID(r), r.RemoteAddr, map[string]any{"id": image.ID})

	writeJSONSuccess(w, map[string]any{"image": image})
}

type toggleRequest struct {
	Active bool `json:"active"`
}

// Toggle handles PATCH /api/v1/admin/team/{id} and flips only the active
// flag.
func (h *TeamHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid team image id")
		return
	}

	var req toggleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.queries.GetTeamImageByID(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONError(w, http.StatusNotFound, "Team image not found")
			return
		}
		slog.Error("loading team image failed", "category", "media", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to update team image")
		return
	}

	if err := h.queries.SetTeamImageActive(r.Context(), id, req.Active); err != nil {
		slog.Error("toggling team image failed", "category", "media", "id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to update team image")
		return
	}

	h.content.Invalidate(r.Context(), service.SectionTeam)
	writeJSONSuccess(w, nil)
}

// Delete handles DELETE /api/v1/admin/team/{id}.
func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid team image id")
		return
	}

	if err := h.queries.DeleteTeamImage(r.Context(), id); err != nil {
		slog.Error("deleting team image failed", "category", "media", "id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to delete team image")
		return
	}

	h.content.Invalidate(r.Context(), service.SectionTeam)

	_ = h.events.LogMediaEvent(r.Context(), model.EventLevelInfo, "team image deleted",
		middleware.GetUserID(r), r.RemoteAddr, map[string]any{"id": id})

	writeJSONSuccess(w, nil)
}

// idParam parses the {id} URL parameter.
func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
