package handler

import (
	"net/http"
	"testing"

	"github.com/lorenzapy/brandsite/internal/model"
)

func TestSectionEndpoint_Hero(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/api/v1/sections/hero", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["section"] != "hero" || body["lang"] != "es" {
		t.Errorf("envelope = %v, want hero/es", body)
	}
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("missing data in response: %v", body)
	}
	if data["name"] != model.DefaultHeroName {
		t.Errorf("data.name = %v, want default hero name", data["name"])
	}
}

func TestSectionEndpoint_LanguageQuery(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/api/v1/sections/hero?lang=pt", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["lang"] != "pt" {
		t.Errorf("lang = %v, want pt", body["lang"])
	}
	data := body["data"].(map[string]any)
	if data["subtitle"] != model.DefaultHeroSubtitlePT {
		t.Errorf("subtitle = %v, want Portuguese default", data["subtitle"])
	}

	// The switch persists via cookie for the next request
	follow := env.do(t, http.MethodGet, "/api/v1/sections/hero", nil)
	followBody := decodeBody(t, follow)
	if followBody["lang"] != "pt" {
		t.Errorf("follow-up lang = %v, want pt from cookie", followBody["lang"])
	}
}

func TestSectionEndpoint_Unknown(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/api/v1/sections/pricing", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	_ = resp.Body.Close()
}

func TestSectionEndpoint_AllSections(t *testing.T) {
	env := newTestEnv(t)

	for _, section := range []string{"hero", "about", "contact", "team", "testimonials", "events", "projects"} {
		resp := env.do(t, http.MethodGet, "/api/v1/sections/"+section, nil)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("section %q status = %d, want 200", section, resp.StatusCode)
		}
		_ = resp.Body.Close()
	}
}
