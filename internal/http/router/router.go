package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/sandeepkv93/go-service-template/internal/auth"
	"github.com/sandeepkv93/go-service-template/internal/config"
	"github.com/sandeepkv93/go-service-template/internal/health"
	"github.com/sandeepkv93/go-service-template/internal/http/handler"
	"github.com/sandeepkv93/go-service-template/internal/http/middleware"
	"github.com/sandeepkv93/go-service-template/internal/http/response"
)

// Dependencies carries everything the router needs, built once at startup.
// Feature flags decide which route groups exist at all: a disabled feature's
// paths are simply absent and respond 404, never 401 or 403.
type Dependencies struct {
	Features         config.Features
	Authenticator    auth.Authenticator
	ItemHandler      *handler.ItemHandler
	ProtectedHandler *handler.ProtectedHandler
	UserHandler      *handler.UserHandler
	CORSOrigins      []string
	Readiness        *health.ProbeRunner
	EnableOTelHTTP   bool
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.StructuredRequestLogger)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(dep.CORSOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/health/live", func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		if dep.Readiness == nil {
			response.JSON(w, r, http.StatusOK, map[string]any{"status": "ready", "checks": []any{}})
			return
		}
		ready, results := dep.Readiness.Ready(r.Context())
		if ready {
			response.JSON(w, r, http.StatusOK, map[string]any{"status": "ready", "checks": results})
			return
		}
		response.Error(w, r, http.StatusServiceUnavailable, "DEPENDENCY_UNREADY", "dependencies are not ready", map[string]any{"checks": results})
	})

	r.Route("/items", func(r chi.Router) {
		r.Get("/{id}", dep.ItemHandler.GetByID)
	})

	if dep.Features.Auth {
		r.Route("/protected", func(r chi.Router) {
			r.Use(middleware.RequireBearerToken(dep.Authenticator))
			r.Get("/", dep.ProtectedHandler.Root)
			r.Get("/data", dep.ProtectedHandler.Data)
		})
	}

	if dep.Features.Database {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", dep.UserHandler.Create)
			r.Get("/", dep.UserHandler.List)
			r.Get("/{id}", dep.UserHandler.GetByID)
		})
	}

	var h http.Handler = r
	if dep.EnableOTelHTTP {
		h = otelhttp.NewHandler(r, "http.server")
	}
	return h
}
