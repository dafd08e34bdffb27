package handler

import (
	"fmt"
	"net/http"
	"testing"
)

func TestTestimonialCreate_OrderAppends(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	for i, name := range []string{"first", "second", "third"} {
		resp := env.do(t, http.MethodPost, "/api/v1/admin/testimonials", map[string]any{
			"name":   name,
			"rating": 5,
			"active": true,
		})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("create %q status = %d, want 200", name, resp.StatusCode)
		}
		body := decodeBody(t, resp)
		created, ok := body["testimonial"].(map[string]any)
		if !ok {
			t.Fatalf("missing testimonial in response: %v", body)
		}
		if created["order_index"] != float64(i) {
			t.Errorf("%q order_index = %v, want %d", name, created["order_index"], i)
		}
	}
}

func TestTestimonialCreate_RatingClamped(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	resp := env.do(t, http.MethodPost, "/api/v1/admin/testimonials", map[string]any{
		"name":   "overexcited",
		"rating": 99,
		"active": true,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	created := body["testimonial"].(map[string]any)
	if created["rating"] != float64(5) {
		t.Errorf("rating = %v, want clamped to 5", created["rating"])
	}
}

func TestTestimonialUpdate_KeepsOrder(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	for _, name := range []string{"a", "b"} {
		resp := env.do(t, http.MethodPost, "/api/v1/admin/testimonials", map[string]any{
			"name": name, "rating": 5, "active": true,
		})
		_ = resp.Body.Close()
	}

	items, err := env.queries.ListTestimonials(t.Context())
	if err != nil {
		t.Fatalf("ListTestimonials: %v", err)
	}
	second := items[1]

	resp := env.do(t, http.MethodPost, "/api/v1/admin/testimonials", map[string]any{
		"id":     second.ID,
		"name":   "b renamed",
		"rating": 4,
		"active": true,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update status = %d, want 200", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	updated := body["testimonial"].(map[string]any)
	if updated["name"] != "b renamed" {
		t.Errorf("name = %v, want renamed", updated["name"])
	}
	if updated["order_index"] != float64(second.OrderIndex) {
		t.Errorf("order_index = %v, want unchanged %d", updated["order_index"], second.OrderIndex)
	}
}

func TestTestimonialUpdate_NotFound(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	resp := env.do(t, http.MethodPost, "/api/v1/admin/testimonials", map[string]any{
		"id": 9999, "name": "ghost", "rating": 5,
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	_ = resp.Body.Close()
}

func TestTestimonialToggleAndDelete(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	resp := env.do(t, http.MethodPost, "/api/v1/admin/testimonials", map[string]any{
		"name": "toggle me", "rating": 5, "active": true,
	})
	body := decodeBody(t, resp)
	id := int64(body["testimonial"].(map[string]any)["id"].(float64))

	toggle := env.do(t, http.MethodPatch, fmt.Sprintf("/api/v1/admin/testimonials/%d", id),
		map[string]any{"active": false})
	if toggle.StatusCode != http.StatusOK {
		t.Fatalf("toggle status = %d, want 200", toggle.StatusCode)
	}
	_ = toggle.Body.Close()

	got, err := env.queries.GetTestimonialByID(t.Context(), id)
	if err != nil {
		t.Fatalf("GetTestimonialByID: %v", err)
	}
	if got.Active {
		t.Error("testimonial should be inactive after toggle")
	}

	del := env.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/admin/testimonials/%d", id), nil)
	if del.StatusCode != http.StatusOK {
		t.Fatalf("delete status = %d, want 200", del.StatusCode)
	}
	_ = del.Body.Close()

	n, err := env.queries.CountTestimonials(t.Context())
	if err != nil {
		t.Fatalf("CountTestimonials: %v", err)
	}
	if n != 0 {
		t.Errorf("testimonials after delete = %d, want 0", n)
	}
}

func TestTestimonialToggle_NotFound(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	resp := env.do(t, http.MethodPatch, "/api/v1/admin/testimonials/424242",
		map[string]any{"active": true})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	_ = resp.Body.Close()
}

func TestTestimonialCreate_NameRequired(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	resp := env.do(t, http.MethodPost, "/api/v1/admin/testimonials", map[string]any{
		"rating": 5,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	_ = resp.Body.Close()
}
