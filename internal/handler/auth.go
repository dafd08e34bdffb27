package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/lorenzapy/brandsite/internal/auth"
	"github.com/lorenzapy/brandsite/internal/i18n"
	"github.com/lorenzapy/brandsite/internal/middleware"
	"github.com/lorenzapy/brandsite/internal/model"
	"github.com/lorenzapy/brandsite/internal/service"
	"github.com/lorenzapy/brandsite/internal/store"
)

// AuthHandler handles admin sign-in and sign-out.
type AuthHandler struct {
	queries    *store.Queries
	sm         *scs.SessionManager
	events     *service.EventService
	protection *middleware.LoginProtection
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(db *sql.DB, sm *scs.SessionManager, events *service.EventService, protection *middleware.LoginProtection) *AuthHandler {
	return &AuthHandler{
		queries:    store.New(db),
		sm:         sm,
		events:     events,
		protection: protection,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/v1/auth/login. Failed attempts return the same
// localized invalid-credentials message regardless of whether the email
// exists.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLanguage(r)

	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		writeJSONError(w, http.StatusBadRequest, i18n.T(lang, "admin.invalid_credentials"))
		return
	}

	if h.protection != nil {
		if locked, _ := h.protection.IsAccountLocked(email); locked {
			writeJSONError(w, http.StatusTooManyRequests, i18n.T(lang, "admin.account_locked"))
			return
		}
	}

	user, err := h.queries.GetUserByEmail(r.Context(), email)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Error("login lookup failed", "category", "auth", "error", err)
		}
		h.recordFailure(w, r, lang, email)
		return
	}

	ok, err := auth.CheckPassword(req.Password, user.PasswordHash)
	if err != nil || !ok {
		h.recordFailure(w, r, lang, email)
		return
	}

	if h.protection != nil {
		h.protection.RecordSuccessfulLogin(email)
	}

	// New session token on privilege change.
	if err := h.sm.RenewToken(r.Context()); err != nil {
		slog.Error("session renew failed", "category", "auth", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}
	h.sm.Put(r.Context(), middleware.SessionKeyUserID, user.ID)

	if err := h.queries.UpdateUserLastLogin(r.Context(), user.ID, time.Now().UTC()); err != nil {
		slog.Warn("updating last login failed", "category", "auth", "error", err)
	}

	_ = h.events.LogAuthEvent(r.Context(), model.EventLevelInfo, "admin signed in",
		user.ID, r.RemoteAddr, map[string]any{"email": user.Email})

	writeJSONSuccess(w, map[string]any{"user": user})
}

func (h *AuthHandler) recordFailure(w http.ResponseWriter, r *http.Request, lang, email string) {
	if h.protection != nil {
		if locked, duration := h.protection.RecordFailedAttempt(email); locked {
			_ = h.events.LogAuthEvent(r.Context(), model.EventLevelWarning, "account locked",
				0, r.RemoteAddr, map[string]any{"email": email, "duration": duration.String()})
			writeJSONError(w, http.StatusTooManyRequests, i18n.T(lang, "admin.account_locked"))
			return
		}
	}
	writeJSONError(w, http.StatusUnauthorized, i18n.T(lang, "admin.invalid_credentials"))
}

// Logout handles POST /api/v1/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID := h.sm.GetInt64(r.Context(), middleware.SessionKeyUserID)

	if err := h.sm.Destroy(r.Context()); err != nil {
		slog.Error("session destroy failed", "category", "auth", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to end session")
		return
	}

	if userID != 0 {
		_ = h.events.LogAuthEvent(r.Context(), model.EventLevelInfo, "admin signed out",
			userID, r.RemoteAddr, nil)
	}

	writeJSONSuccess(w, nil)
}

// Me handles GET /api/v1/auth/me and returns the authenticated user.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	if user == nil {
		writeJSONError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	writeJSONSuccess(w, map[string]any{"user": user})
}
