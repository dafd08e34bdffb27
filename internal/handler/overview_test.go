package handler

import (
	"net/http"
	"testing"

	"github.com/lorenzapy/brandsite/internal/model"
)

func TestOverview(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	// Populate one of each collection
	resp := env.do(t, http.MethodPut, "/api/v1/admin/content", map[string]any{
		"items": []map[string]any{{"key": "hero_name", "value_es": "x", "value_pt": "x"}},
	})
	_ = resp.Body.Close()
	resp = env.do(t, http.MethodPost, "/api/v1/admin/team", map[string]any{
		"image_url": "/uploads/team/a.jpg",
	})
	_ = resp.Body.Close()
	resp = env.do(t, http.MethodPost, "/api/v1/admin/testimonials", map[string]any{
		"name": "tester", "rating": 5, "active": true,
	})
	_ = resp.Body.Close()

	overview := env.do(t, http.MethodGet, "/api/v1/admin/overview", nil)
	if overview.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", overview.StatusCode)
	}
	body := decodeBody(t, overview)

	for _, key := range []string{"content", "highlights", "team", "testimonials", "settings"} {
		if _, ok := body[key]; !ok {
			t.Errorf("overview missing %q", key)
		}
	}

	if items := body["content"].([]any); len(items) != 1 {
		t.Errorf("content = %d items, want 1", len(items))
	}
	if items := body["team"].([]any); len(items) != 1 {
		t.Errorf("team = %d items, want 1", len(items))
	}

	// Settings fall back to defaults before the first save
	settings := body["settings"].(map[string]any)
	if settings["whatsapp_number"] != model.DefaultContactInfo().WhatsappNumber {
		t.Errorf("settings.whatsapp_number = %v, want default", settings["whatsapp_number"])
	}
}

func TestEventsPrune(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	resp := env.do(t, http.MethodDelete, "/api/v1/admin/events?days=30", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["deleted"] != float64(0) {
		t.Errorf("deleted = %v, want 0 for fresh events", body["deleted"])
	}

	// The sign-in event is newer than the cutoff and survives
	list := env.do(t, http.MethodGet, "/api/v1/admin/events", nil)
	listBody := decodeBody(t, list)
	if events := listBody["events"].([]any); len(events) == 0 {
		t.Error("recent events should survive pruning")
	}
}

func TestEventsPrune_InvalidDays(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	resp := env.do(t, http.MethodDelete, "/api/v1/admin/events?days=-1", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	_ = resp.Body.Close()
}
