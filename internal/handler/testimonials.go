package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/lorenzapy/brandsite/internal/middleware"
	"github.com/lorenzapy/brandsite/internal/model"
	"github.com/lorenzapy/brandsite/internal/service"
	"github.com/lorenzapy/brandsite/internal/store"
)

// TestimonialHandler handles admin testimonial management.
type TestimonialHandler struct {
	queries *store.Queries
	content *service.ContentService
	events  *service.EventService
}

// NewTestimonialHandler creates a testimonial handler.
func NewTestimonialHandler(db *sql.DB, content *service.ContentService, events *service.EventService) *TestimonialHandler {
	return &TestimonialHandler{
		queries: store.New(db),
		content: content,
		events:  events,
	}
}

// List handles GET /api/v1/admin/testimonials and returns every testimonial,
// active or not.
func (h *TestimonialHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.queries.ListTestimonials(r.Context())
	if err != nil {
		slog.Error("listing testimonials failed", "category", "content", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to load testimonials")
		return
	}
	writeJSONSuccess(w, map[string]any{"testimonials": items})
}

type saveTestimonialRequest struct {
	ID       int64  `json:"id,omitempty"` // 0 creates a new testimonial
	Name     string `json:"name"`
	RoleES   string `json:"role_es"`
	RolePT   string `json:"role_pt"`
	TextES   string `json:"text_es"`
	TextPT   string `json:"text_pt"`
	ImageURL string `json:"image_url"`
	Rating   int64  `json:"rating"`
	Active   bool   `json:"active"`
}

// Save handles POST /api/v1/admin/testimonials. A request with an id updates
// that testimonial in place; without one it appends a new testimonial whose
// order index is the current list length. Ratings are clamped to 1..5.
func (h *TestimonialHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveTestimonialRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Name == "" {
		writeJSONError(w, http.StatusBadRequest, "name is required")
		return
	}

	rating := model.ClampRating(req.Rating)
	now := time.Now().UTC()

	if req.ID != 0 {
		existing, err := h.queries.GetTestimonialByID(r.Context(), req.ID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				writeJSONError(w, http.StatusNotFound, "Testimonial not found")
				return
			}
			slog.Error("loading testimonial failed", "category", "content", "error", err)
			writeJSONError(w, http.StatusInternalServerError, "Failed to save testimonial")
			return
		}

		err = h.queries.UpdateTestimonial(r.Context(), store.UpdateTestimonialParams{
			ID:         existing.ID,
			Name:       req.Name,
			RoleES:     req.RoleES,
			RolePT:     req.RolePT,
			TextES:     req.TextES,
			TextPT:     req.TextPT,
			ImageURL:   req.ImageURL,
			Rating:     rating,
			OrderIndex: existing.OrderIndex,
			Active:     req.Active,
			UpdatedAt:  now,
		})
		if err != nil {
			slog.Error("updating testimonial failed", "category", "content", "id", existing.ID, "error", err)
			writeJSONError(w, http.StatusInternalServerError, "Failed to save testimonial")
			return
		}

		h.content.Invalidate(r.Context(), service.SectionTestimonials)

		updated, err := h.queries.GetTestimonialByID(r.Context(), existing.ID)
		if err != nil {
			writeJSONSuccess(w, nil)
			return
		}
		writeJSONSuccess(w, map[string]any{"testimonial": updated})
		return
	}

	count, err := h.queries.CountTestimonials(r.Context())
	if err != nil {
		slog.Error("counting testimonials failed", "category", "content", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to save testimonial")
		return
	}

	created, err := h.queries.CreateTestimonial(r.Context(), store.CreateTestimonialParams{
		Name:       req.Name,
		RoleES:     req.RoleES,
		RolePT:     req.RolePT,
		TextES:     req.TextES,
		TextPT:     req.TextPT,
		ImageURL:   req.ImageURL,
		Rating:     rating,
		OrderIndex: count,
		Active:     req.Active,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		slog.Error("creating testimonial failed", "category", "content", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to save testimonial")
		return
	}

	h.content.Invalidate(r.Context(), service.SectionTestimonials)

	_ = h.events.LogContentEvent(r.Context(), model.EventLevelInfo, "testimonial added",
		middleware.GetUserID(r), r.RemoteAddr, map[string]any{"id": created.ID})

	writeJSONSuccess(w, map[string]any{"testimonial": created})
}

// Toggle handles PATCH /api/v1/admin/testimonials/{id} and flips only the
// active flag.
func (h *TestimonialHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid testimonial id")
		return
	}

	var req toggleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.queries.GetTestimonialByID(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONError(w, http.StatusNotFound, "Testimonial not found")
			return
		}
		slog.Error("loading testimonial failed", "category", "content", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to update testimonial")
		return
	}

	if err := h.queries.SetTestimonialActive(r.Context(), id, req.Active); err != nil {
		slog.Error("toggling testimonial failed", "category", "content", "id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to update testimonial")
		return
	}

	h.content.Invalidate(r.Context(), service.SectionTestimonials)
	writeJSONSuccess(w, nil)
}

// Delete handles DELETE /api/v1/admin/testimonials/{id}.
func (h *TestimonialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid testimonial id")
		return
	}

	if err := h.queries.DeleteTestimonial(r.Context(), id); err != nil {
		slog.Error("deleting testimonial failed", "category", "content", "id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to delete testimonial")
		return
	}

	h.content.Invalidate(r.Context(), service.SectionTestimonials)

	_ = h.events.LogContentEvent(r.Context(), model.EventLevelInfo, "testimonial deleted",
		middleware.GetUserID(r), r.RemoteAddr, map[string]any{"id": id})

	writeJSONSuccess(w, nil)
}
