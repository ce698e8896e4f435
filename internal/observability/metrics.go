package observability

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sandeepkv93/go-service-template/internal/config"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

type AppMetrics struct {
	authOutcomeCounter   metric.Int64Counter
	userOperationCounter metric.Int64Counter
	userOpDuration       metric.Float64Histogram
	healthCheckCounter   metric.Int64Counter
}

var (
	metricsMu  sync.RWMutex
	appMetrics *AppMetrics
)

// InitMetrics installs the global meter provider, following the same
// activation rules as tracing: disabled or endpointless configurations get a
// provider with no reader.
func InitMetrics(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sdkmetric.MeterProvider, error) {
	if !cfg.OTELEnabled {
		mp := sdkmetric.NewMeterProvider()
		otel.SetMeterProvider(mp)
		registerAppMetrics(logger)
		logger.Info("otel metrics disabled")
		return mp, nil
	}
	if cfg.OTELExporterOTLPEndpoint == "" {
		mp := sdkmetric.NewMeterProvider()
		otel.SetMeterProvider(mp)
		registerAppMetrics(logger)
		logger.Warn("OTEL_ENABLED is true but OTEL_EXPORTER_OTLP_ENDPOINT is not set, metrics will not be exported")
		return mp, nil
	}

	opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(cfg.OTELExporterOTLPEndpoint)}
	if cfg.OTELExporterOTLPInsecure {
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}
	exporter, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create otlp metric exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", cfg.OTELServiceName),
			attribute.String("deployment.environment", cfg.OTELEnvironment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create metrics resource: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(cfg.OTELMetricsExportInterval))),
	)
	otel.SetMeterProvider(mp)
	registerAppMetrics(logger)
	logger.Info("otel metrics initialized", "endpoint", cfg.OTELExporterOTLPEndpoint)
	return mp, nil
}

func registerAppMetrics(logger *slog.Logger) {
	meter := otel.Meter("go-service-template")
	m := &AppMetrics{}
	var err error
	if m.authOutcomeCounter, err = meter.Int64Counter("auth_outcome_total",
		metric.WithDescription("Bearer token authentication outcomes")); err != nil {
		logger.Warn("register auth outcome counter", "error", err)
	}
	if m.userOperationCounter, err = meter.Int64Counter("user_operation_total",
		metric.WithDescription("User CRUD operations by outcome")); err != nil {
		logger.Warn("register user operation counter", "error", err)
	}
	if m.userOpDuration, err = meter.Float64Histogram("user_operation_duration_ms",
		metric.WithDescription("User CRUD operation latency")); err != nil {
		logger.Warn("register user operation histogram", "error", err)
	}
	if m.healthCheckCounter, err = meter.Int64Counter("health_check_total",
		metric.WithDescription("Readiness check results")); err != nil {
		logger.Warn("register health check counter", "error", err)
	}
	metricsMu.Lock()
	appMetrics = m
	metricsMu.Unlock()
}

func currentMetrics() *AppMetrics {
	metricsMu.RLock()
	defer metricsMu.RUnlock()
	return appMetrics
}

func RecordAuthOutcome(ctx context.Context, outcome string) {
	m := currentMetrics()
	if m == nil || m.authOutcomeCounter == nil {
		return
	}
	m.authOutcomeCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func RecordUserOperation(ctx context.Context, operation, outcome string, elapsed time.Duration) {
	m := currentMetrics()
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("outcome", outcome),
	)
	if m.userOperationCounter != nil {
		m.userOperationCounter.Add(ctx, 1, attrs)
	}
	if m.userOpDuration != nil {
		m.userOpDuration.Record(ctx, float64(elapsed.Microseconds())/1000.0, attrs)
	}
}

func RecordHealthCheck(ctx context.Context, name string, healthy bool) {
	m := currentMetrics()
	if m == nil || m.healthCheckCounter == nil {
		return
	}
	m.healthCheckCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("check", name),
		attribute.Bool("healthy", healthy),
	))
}
