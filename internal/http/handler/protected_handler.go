package handler

import (
	"net/http"

	"github.com/sandeepkv93/go-service-template/internal/http/middleware"
	"github.com/sandeepkv93/go-service-template/internal/http/response"
	"github.com/sandeepkv93/go-service-template/internal/observability"
)

// ProtectedHandler serves the routes registered only when bearer-token auth
// is enabled. The validated token is used for audit logging, never for
// per-route authorization decisions.
type ProtectedHandler struct{}

func NewProtectedHandler() *ProtectedHandler { return &ProtectedHandler{} }

func (h *ProtectedHandler) Root(w http.ResponseWriter, r *http.Request) {
	token, _ := middleware.BearerTokenFromContext(r.Context())
	observability.Audit(r, "protected.access", "token_preview", tokenPreview(token))
	response.JSON(w, r, http.StatusOK, map[string]string{
		"message":       "Access granted",
		"authenticated": "true",
	})
}

func (h *ProtectedHandler) Data(w http.ResponseWriter, r *http.Request) {
	token, _ := middleware.BearerTokenFromContext(r.Context())
	observability.Audit(r, "protected.data.access", "token_preview", tokenPreview(token))
	response.JSON(w, r, http.StatusOK, map[string]any{
		"message":       "This is protected data",
		"data":          []string{"item1", "item2", "item3"},
		"token_preview": tokenPreview(token),
	})
}

func tokenPreview(token string) string {
	if len(token) > 8 {
		token = token[:8]
	}
	return token + "..."
}
