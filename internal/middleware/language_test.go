package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lorenzapy/brandsite/internal/i18n"
)

func TestMain(m *testing.M) {
	if err := i18n.Init(nil); err != nil {
		panic(err)
	}
	m.Run()
}

func languageProbe(t *testing.T, setup func(r *http.Request)) (string, *httptest.ResponseRecorder) {
	t.Helper()

	var got string
	handler := Language()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetLanguage(r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	setup(req)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return got, rec
}

func TestLanguage_QueryParam(t *testing.T) {
	lang, rec := languageProbe(t, func(r *http.Request) {
		r.URL.RawQuery = "lang=pt"
	})
	if lang != "pt" {
		t.Errorf("lang = %q, want pt", lang)
	}

	// Explicit switch persists the preference
	cookies := rec.Result().Cookies()
	found := false
	for _, c := range cookies {
		if c.Name == LanguageCookieName && c.Value == "pt" {
			found = true
		}
	}
	if !found {
		t.Error("expected language cookie to be set on ?lang switch")
	}
}

func TestLanguage_QueryBeatsCookie(t *testing.T) {
	lang, _ := languageProbe(t, func(r *http.Request) {
		r.URL.RawQuery = "lang=es"
		r.AddCookie(&http.Cookie{Name: LanguageCookieName, Value: "pt"})
	})
	if lang != "es" {
		t.Errorf("lang = %q, want query to win over cookie", lang)
	}
}

func TestLanguage_Cookie(t *testing.T) {
	lang, _ := languageProbe(t, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: LanguageCookieName, Value: "pt"})
	})
	if lang != "pt" {
		t.Errorf("lang = %q, want pt from cookie", lang)
	}
}

func TestLanguage_AcceptLanguageHeader(t *testing.T) {
	lang, _ := languageProbe(t, func(r *http.Request) {
		r.Header.Set("Accept-Language", "pt-BR,pt;q=0.9,en;q=0.8")
	})
	if lang != "pt" {
		t.Errorf("lang = %q, want pt from Accept-Language", lang)
	}
}

func TestLanguage_Default(t *testing.T) {
	lang, _ := languageProbe(t, func(_ *http.Request) {})
	if lang != i18n.DefaultLanguage {
		t.Errorf("lang = %q, want default %q", lang, i18n.DefaultLanguage)
	}
}

func TestLanguage_UnsupportedQueryIgnored(t *testing.T) {
	lang, _ := languageProbe(t, func(r *http.Request) {
		r.URL.RawQuery = "lang=de"
		r.AddCookie(&http.Cookie{Name: LanguageCookieName, Value: "pt"})
	})
	if lang != "pt" {
		t.Errorf("lang = %q, want unsupported query ignored in favor of cookie", lang)
	}
}

func TestGetLanguage_NoMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if lang := GetLanguage(req); lang != i18n.DefaultLanguage {
		t.Errorf("GetLanguage without middleware = %q, want default", lang)
	}
}
