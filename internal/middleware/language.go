package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/lorenzapy/brandsite/internal/i18n"
)

// ContextKeyLanguage is the context key for the resolved language code.
const ContextKeyLanguage ContextKey = "language"

// LanguageCookieName is the cookie name for the visitor language preference.
const LanguageCookieName = "brand_lang"

// Language creates middleware that resolves the request language.
// Priority order:
//  1. Query parameter ?lang=XX (explicit switch, updates the cookie)
//  2. Cookie preference
//  3. Accept-Language header
//  4. Default language
func Language() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := resolveLanguage(w, r)
			ctx := context.WithValue(r.Context(), ContextKeyLanguage, lang)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveLanguage(w http.ResponseWriter, r *http.Request) string {
	if queryLang := r.URL.Query().Get("lang"); queryLang != "" {
		code := strings.ToLower(queryLang)
		if i18n.IsSupported(code) {
			SetLanguageCookie(w, code)
			return code
		}
	}

	if cookie, err := r.Cookie(LanguageCookieName); err == nil {
		code := strings.ToLower(cookie.Value)
		if i18n.IsSupported(code) {
			return code
		}
	}

	if acceptLang := r.Header.Get("Accept-Language"); acceptLang != "" {
		return i18n.MatchLanguage(acceptLang)
	}

	return i18n.DefaultLanguage
}

// GetLanguage retrieves the resolved language code from the request context.
func GetLanguage(r *http.Request) string {
	lang, ok := r.Context().Value(ContextKeyLanguage).(string)
	if !ok || lang == "" {
		return i18n.DefaultLanguage
	}
	return lang
}

// SetLanguageCookie sets the language preference cookie.
func SetLanguageCookie(w http.ResponseWriter, langCode string) {
	http.SetCookie(w, &http.Cookie{
		Name:     LanguageCookieName,
		Value:    langCode,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
