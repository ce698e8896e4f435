package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/sandeepkv93/go-service-template/internal/auth"
)

func newProtectedTestRouter(tokens []string) http.Handler {
	r := chi.NewRouter()
	r.Route("/protected", func(r chi.Router) {
		r.Use(RequireBearerToken(auth.NewBearerAuthenticator(tokens)))
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			token, _ := BearerTokenFromContext(req.Context())
			w.Header().Set("X-Seen-Token", token)
			w.WriteHeader(http.StatusOK)
		})
	})
	return r
}

func TestRequireBearerTokenMissingCredential(t *testing.T) {
	r := newProtectedTestRouter([]string{"abc123"})

	for _, header := range []string{"", "Bearer", "Bearer ", "bearer abc123", "Token abc123"} {
		req := httptest.NewRequest(http.MethodGet, "/protected/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, rr.Code)
		}
		if rr.Header().Get("WWW-Authenticate") != "Bearer" {
			t.Fatalf("header %q: expected bearer challenge, got %q", header, rr.Header().Get("WWW-Authenticate"))
		}
	}
}

func TestRequireBearerTokenInvalidCredential(t *testing.T) {
	r := newProtectedTestRouter([]string{"abc123"})
	req := httptest.NewRequest(http.MethodGet, "/protected/", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rr.Code)
	}
	if rr.Header().Get("WWW-Authenticate") != "" {
		t.Fatal("403 must not carry a bearer challenge")
	}
}

func TestRequireBearerTokenValidCredentialExposesToken(t *testing.T) {
	r := newProtectedTestRouter([]string{"abc123"})
	req := httptest.NewRequest(http.MethodGet, "/protected/", nil)
	req.Header.Set("Authorization", "Bearer abc123")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if rr.Header().Get("X-Seen-Token") != "abc123" {
		t.Fatalf("handler did not see validated token: %q", rr.Header().Get("X-Seen-Token"))
	}
}
