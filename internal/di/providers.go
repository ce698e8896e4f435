package di

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/sandeepkv93/go-service-template/internal/app"
	"github.com/sandeepkv93/go-service-template/internal/auth"
	"github.com/sandeepkv93/go-service-template/internal/config"
	"github.com/sandeepkv93/go-service-template/internal/database"
	"github.com/sandeepkv93/go-service-template/internal/health"
	"github.com/sandeepkv93/go-service-template/internal/http/handler"
	"github.com/sandeepkv93/go-service-template/internal/http/router"
	"github.com/sandeepkv93/go-service-template/internal/observability"
	"github.com/sandeepkv93/go-service-template/internal/repository"
	"github.com/sandeepkv93/go-service-template/internal/service"
)

var ConfigSet = wire.NewSet(config.Load)

var ObservabilitySet = wire.NewSet(
	provideObservabilityRuntime,
	provideAppLogger,
)

var InfraSet = wire.NewSet(
	provideRuntimeDB,
	provideReadinessProbeRunner,
)

var DomainSet = wire.NewSet(
	provideUserRepository,
	service.NewUserService,
	wire.Bind(new(service.UserService), new(*service.UserServiceImpl)),
	provideAuthenticator,
)

var HTTPSet = wire.NewSet(
	handler.NewItemHandler,
	handler.NewProtectedHandler,
	handler.NewUserHandler,
	provideRouterDependencies,
	router.NewRouter,
	provideHTTPServer,
)

var AppSet = wire.NewSet(app.New)

func provideObservabilityRuntime(cfg *config.Config) (*observability.Runtime, error) {
	bootstrapLogger := observability.NewBootstrapLogger(cfg)
	return observability.InitRuntime(context.Background(), cfg, bootstrapLogger)
}

func provideAppLogger(cfg *config.Config, runtime *observability.Runtime) *slog.Logger {
	return observability.InitLogger(cfg, runtime.LoggerProvider)
}

// provideRuntimeDB opens and migrates the database only when persistence is
// enabled; a nil *gorm.DB means the feature is off and its routes are never
// registered.
func provideRuntimeDB(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	if !cfg.Features().Database {
		logger.Info("database disabled, user routes will not be registered")
		return nil, nil
	}
	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	logger.Info("database initialized")
	return db, nil
}

func provideUserRepository(db *gorm.DB) repository.UserRepository {
	if db == nil {
		return nil
	}
	return repository.NewUserRepository(db)
}

func provideAuthenticator(cfg *config.Config) auth.Authenticator {
	return auth.NewBearerAuthenticator(cfg.APITokens)
}

func provideReadinessProbeRunner(cfg *config.Config, db *gorm.DB) *health.ProbeRunner {
	var checkers []health.Checker
	if c := health.NewDBChecker(db); c != nil {
		checkers = append(checkers, c)
	}
	return health.NewProbeRunner(cfg.ReadinessProbeTimeout, checkers...)
}

func provideRouterDependencies(
	cfg *config.Config,
	authenticator auth.Authenticator,
	itemHandler *handler.ItemHandler,
	protectedHandler *handler.ProtectedHandler,
	userHandler *handler.UserHandler,
	readiness *health.ProbeRunner,
) router.Dependencies {
	return router.Dependencies{
		Features:         cfg.Features(),
		Authenticator:    authenticator,
		ItemHandler:      itemHandler,
		ProtectedHandler: protectedHandler,
		UserHandler:      userHandler,
		CORSOrigins:      cfg.CORSAllowedOrigins,
		Readiness:        readiness,
		EnableOTelHTTP:   cfg.Features().Tracing,
	}
}

func provideHTTPServer(cfg *config.Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           h,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
