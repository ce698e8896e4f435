package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/sandeepkv93/go-service-template/internal/auth"
	"github.com/sandeepkv93/go-service-template/internal/http/middleware"
)

func TestProtectedDataReturnsTokenPreview(t *testing.T) {
	r := chi.NewRouter()
	r.Route("/protected", func(r chi.Router) {
		r.Use(middleware.RequireBearerToken(auth.NewBearerAuthenticator([]string{"supersecrettoken"})))
		r.Get("/data", NewProtectedHandler().Data)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected/data", nil)
	req.Header.Set("Authorization", "Bearer supersecrettoken")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var body struct {
		Message      string   `json:"message"`
		Data         []string `json:"data"`
		TokenPreview string   `json:"token_preview"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.TokenPreview != "supersec..." {
		t.Fatalf("token preview must be truncated, got %q", body.TokenPreview)
	}
	if len(body.Data) != 3 {
		t.Fatalf("unexpected data: %v", body.Data)
	}
}

func TestTokenPreviewShortToken(t *testing.T) {
	if got := tokenPreview("ab"); got != "ab..." {
		t.Fatalf("tokenPreview=%q", got)
	}
}
