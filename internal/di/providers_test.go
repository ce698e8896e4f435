package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/sandeepkv93/go-service-template/internal/config"
)

func TestProvideHTTPServer(t *testing.T) {
	cfg := &config.Config{HTTPPort: "9999"}
	srv := provideHTTPServer(cfg, nil)
	if srv.Addr != ":9999" {
		t.Fatalf("unexpected addr: %s", srv.Addr)
	}
	if srv.ReadTimeout.Seconds() != 10 {
		t.Fatalf("unexpected read timeout: %v", srv.ReadTimeout)
	}
}

func TestProvideRuntimeDBDisabled(t *testing.T) {
	cfg := &config.Config{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := provideRuntimeDB(cfg, logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if db != nil {
		t.Fatal("expected nil db when DATABASE_URL is unset")
	}
}

func TestProvideRuntimeDBSqlite(t *testing.T) {
	cfg := &config.Config{DatabaseURL: "sqlite://file:di_providers_test?mode=memory&cache=shared"}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := provideRuntimeDB(cfg, logger)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if db == nil {
		t.Fatal("expected db handle")
	}
	if !db.Migrator().HasTable("users") {
		t.Fatal("expected users table after migration")
	}
}

func TestProvideUserRepositoryNilDB(t *testing.T) {
	if repo := provideUserRepository(nil); repo != nil {
		t.Fatal("expected nil repository without a database")
	}
}

func TestProvideReadinessProbeRunner(t *testing.T) {
	cfg := &config.Config{ReadinessProbeTimeout: time.Second}
	runner := provideReadinessProbeRunner(cfg, nil)
	if runner == nil {
		t.Fatal("expected probe runner even without a database")
	}
	ready, results := runner.Ready(context.Background())
	if !ready {
		t.Fatal("expected trivially ready without checkers")
	}
	if len(results) != 0 {
		t.Fatalf("expected no checkers without a database, got %+v", results)
	}
}

func TestProvideRouterDependencies(t *testing.T) {
	t.Setenv("API_TOKENS", "t1")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("OTEL_ENABLED", "true")
	cfg := config.Load()
	cfg.CORSAllowedOrigins = []string{"http://localhost:3000"}

	dep := provideRouterDependencies(cfg, nil, nil, nil, nil, nil)
	if !dep.Features.Auth {
		t.Fatal("expected auth feature enabled")
	}
	if dep.Features.Database {
		t.Fatal("expected database feature disabled")
	}
	if !dep.EnableOTelHTTP {
		t.Fatal("expected otel http enabled when tracing is on")
	}
	if len(dep.CORSOrigins) != 1 || dep.CORSOrigins[0] != "http://localhost:3000" {
		t.Fatalf("unexpected cors origins: %+v", dep.CORSOrigins)
	}
}
