package handler

import (
	"log/slog"
	"net/http"

	"github.com/lorenzapy/brandsite/internal/middleware"
	"github.com/lorenzapy/brandsite/internal/model"
	"github.com/lorenzapy/brandsite/internal/service"
)

// UploadHandler handles admin image uploads.
type UploadHandler struct {
	media  *service.MediaService
	events *service.EventService
}

// NewUploadHandler creates an upload handler.
func NewUploadHandler(media *service.MediaService, events *service.EventService) *UploadHandler {
	return &UploadHandler{media: media, events: events}
}

// Upload handles POST /api/v1/admin/upload. The multipart form carries the
// file under "file" and an optional "bucket" field ("images" by default,
// "team" for carousel photos). Responds with the stored file's public URL.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(service.MaxUploadSize); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Missing file")
		return
	}
	defer func() { _ = file.Close() }()

	bucket := r.FormValue("bucket")
	if bucket == "" {
		bucket = service.BucketImages
	}

	url, err := h.media.Upload(file, header.Filename, bucket)
	if err != nil {
		slog.Warn("upload rejected", "category", "media", "filename", header.Filename, "error", err)
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	_ = h.events.LogMediaEvent(r.Context(), model.EventLevelInfo, "image uploaded",
		middleware.GetUserID(r), r.RemoteAddr,
		map[string]any{"bucket": bucket, "url": url})

	writeJSONSuccess(w, map[string]any{"url": url})
}
