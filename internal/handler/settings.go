package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/lorenzapy/brandsite/internal/middleware"
	"github.com/lorenzapy/brandsite/internal/model"
	"github.com/lorenzapy/brandsite/internal/service"
	"github.com/lorenzapy/brandsite/internal/store"
)

// SettingsHandler handles the admin settings tab: the site-wide contact
// singleton.
type SettingsHandler struct {
	queries *store.Queries
	content *service.ContentService
	events  *service.EventService
}

// NewSettingsHandler creates a settings handler.
func NewSettingsHandler(db *sql.DB, content *service.ContentService, events *service.EventService) *SettingsHandler {
	return &SettingsHandler{
		queries: store.New(db),
		content: content,
		events:  events,
	}
}

// Get handles GET /api/v1/admin/settings. Before the first save it returns
// the compiled-in defaults so the admin form is always populated.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	info, err := h.queries.GetContactInfo(r.Context())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONSuccess(w, map[string]any{"settings": model.DefaultContactInfo()})
			return
		}
		slog.Error("loading contact settings failed", "category", "config", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to load settings")
		return
	}
	writeJSONSuccess(w, map[string]any{"settings": info})
}

type saveSettingsRequest struct {
	WhatsappNumber string `json:"whatsapp_number"`
	USDTWallet     string `json:"usdt_wallet"`
	USDTNetwork    string `json:"usdt_network"`
	SellsUSDT      bool   `json:"sells_usdt"`
	HeroImageURL   string `json:"hero_image_url"`
}

// Save handles PUT /api/v1/admin/settings. The table holds a single row:
// the first save inserts it and every later save updates it in place.
func (h *SettingsHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveSettingsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	network := strings.ToUpper(strings.TrimSpace(req.USDTNetwork))
	if network == "" {
		network = model.NetworkTRC20
	}
	if !model.IsValidUSDTNetwork(network) {
		writeJSONError(w, http.StatusBadRequest, "Invalid USDT network")
		return
	}

	err := h.queries.SaveContactInfo(r.Context(), store.SaveContactInfoParams{
		WhatsappNumber: strings.TrimSpace(req.WhatsappNumber),
		USDTWallet:     strings.TrimSpace(req.USDTWallet),
		USDTNetwork:    network,
		SellsUSDT:      req.SellsUSDT,
		HeroImageURL:   req.HeroImageURL,
		UpdatedAt:      time.Now().UTC(),
	})
	if err != nil {
		slog.Error("saving contact settings failed", "category", "config", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to save settings")
		return
	}

	// Settings feed the hero, contact, and team sections.
	h.content.Invalidate(r.Context(),
		service.SectionHero, service.SectionContact, service.SectionTeam)

	_ = h.events.LogConfigEvent(r.Context(), model.EventLevelInfo, "contact settings saved",
		middleware.GetUserID(r), r.RemoteAddr, nil)

	info, err := h.queries.GetContactInfo(r.Context())
	if err != nil {
		writeJSONSuccess(w, nil)
		return
	}
	writeJSONSuccess(w, map[string]any{"settings": info})
}
