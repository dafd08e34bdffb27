package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexedwards/scs/v2"

	"github.com/lorenzapy/brandsite/internal/model"
)

func TestAuth_Unauthenticated(t *testing.T) {
	sm := scs.New()

	handler := sm.LoadAndSave(Auth(sm)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run without a session")
	})))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuth_Authenticated(t *testing.T) {
	sm := scs.New()

	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		sm.Put(r.Context(), SessionKeyUserID, int64(42))
	})
	called := false
	mux.Handle("/protected", Auth(sm)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})))

	handler := sm.LoadAndSave(mux)

	loginRec := httptest.NewRecorder()
	handler.ServeHTTP(loginRec, httptest.NewRequest(http.MethodPost, "/login", nil))

	cookies := loginRec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("login did not set a session cookie")
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !called {
		t.Error("protected handler did not run for an authenticated session")
	}
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name     string
		user     *model.User
		wantCode int
	}{
		{"no user", nil, http.StatusUnauthorized},
		{"non-admin", &model.User{ID: 1, Role: "viewer"}, http.StatusForbidden},
		{"admin", &model.User{ID: 1, Role: model.RoleAdmin}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := RequireAdmin()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.user != nil {
				req = req.WithContext(context.WithValue(req.Context(), ContextKeyUser, *tt.user))
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
		})
	}
}

func TestGetUser(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if GetUser(req) != nil {
		t.Error("GetUser without context value should be nil")
	}
	if GetUserID(req) != 0 {
		t.Error("GetUserID without context value should be 0")
	}

	user := model.User{ID: 7, Role: model.RoleAdmin}
	req = req.WithContext(context.WithValue(req.Context(), ContextKeyUser, user))
	if got := GetUser(req); got == nil || got.ID != 7 {
		t.Errorf("GetUser = %+v, want ID 7", got)
	}
	if GetUserID(req) != 7 {
		t.Errorf("GetUserID = %d, want 7", GetUserID(req))
	}
}
