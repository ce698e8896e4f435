package middleware

import (
	"context"
	"net/http"

	"github.com/sandeepkv93/go-service-template/internal/auth"
	"github.com/sandeepkv93/go-service-template/internal/http/response"
	"github.com/sandeepkv93/go-service-template/internal/observability"
)

type contextKey string

const bearerTokenContextKey contextKey = "bearer_token"

// RequireBearerToken guards a route group with the bearer validator. A
// missing or malformed credential yields 401 with a bearer challenge; a
// well-formed but unrecognized token yields 403. The validated token is
// placed on the context for audit logging only.
func RequireBearerToken(authenticator auth.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, outcome := authenticator.Authenticate(r.Header.Get("Authorization"))
			observability.RecordAuthOutcome(r.Context(), outcome.String())
			switch outcome {
			case auth.OutcomeNoCredential:
				w.Header().Set("WWW-Authenticate", "Bearer")
				response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing bearer token", nil)
			case auth.OutcomeInvalidCredential:
				response.Error(w, r, http.StatusForbidden, "FORBIDDEN", "invalid bearer token", nil)
			default:
				ctx := context.WithValue(r.Context(), bearerTokenContextKey, token)
				next.ServeHTTP(w, r.WithContext(ctx))
			}
		})
	}
}

// BearerTokenFromContext returns the token validated for this request, if any.
func BearerTokenFromContext(ctx context.Context) (string, bool) {
	t, ok := ctx.Value(bearerTokenContextKey).(string)
	return t, ok
}
