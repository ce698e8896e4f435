package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestItemHandlerEchoesIDAndQuery(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/items/{id}", NewItemHandler().GetByID)

	t.Run("with query", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/items/42?q=search", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
		var body itemResponse
		if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if body.ItemID != 42 || body.Q == nil || *body.Q != "search" {
			t.Fatalf("unexpected body: %s", rr.Body.String())
		}
	})

	t.Run("query omitted is null", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/items/42", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		var body itemResponse
		if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if body.Q != nil {
			t.Fatalf("expected null q, got %q", *body.Q)
		}
	})

	t.Run("non-numeric id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/items/not-a-number", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rr.Code)
		}
	})
}
