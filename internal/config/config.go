package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is read once at process start and treated as immutable afterwards.
// Every value degrades to a documented default when absent or malformed;
// Load never fails.
type Config struct {
	Env      string
	HTTPPort string

	APITokens    []string
	DatabaseURL  string
	DatabaseEcho bool

	LogLevel           string
	CORSAllowedOrigins []string

	OTELEnabled               bool
	OTELServiceName           string
	OTELEnvironment           string
	OTELExporterOTLPEndpoint  string
	OTELExporterOTLPInsecure  bool
	OTELTraceSamplingRatio    float64
	OTELMetricsExportInterval time.Duration

	ReadinessProbeTimeout        time.Duration
	ShutdownTimeout              time.Duration
	ShutdownHTTPDrainTimeout     time.Duration
	ShutdownObservabilityTimeout time.Duration
}

// Features holds the startup-computed flags gating the optional subsystems.
// A flag is true iff its designating configuration value is present and
// non-empty; disabled features leave their route groups unregistered.
type Features struct {
	Auth     bool
	Database bool
	Tracing  bool
}

func Load() *Config {
	env := GetEnv("APP_ENV", "development")
	return &Config{
		Env:      env,
		HTTPPort: GetEnv("HTTP_PORT", "8080"),

		APITokens:    GetEnvList("API_TOKENS", ","),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseEcho: GetEnvBool("DATABASE_ECHO", false),

		LogLevel:           strings.ToUpper(GetEnv("LOG_LEVEL", "INFO")),
		CORSAllowedOrigins: splitList(GetEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"), ","),

		OTELEnabled:               GetEnvBool("OTEL_ENABLED", false),
		OTELServiceName:           GetEnv("OTEL_SERVICE_NAME", "go-service-template"),
		OTELEnvironment:           GetEnv("OTEL_ENVIRONMENT", env),
		OTELExporterOTLPEndpoint:  os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		OTELExporterOTLPInsecure:  GetEnvBool("OTEL_EXPORTER_OTLP_INSECURE", true),
		OTELTraceSamplingRatio:    GetEnvFloat("OTEL_TRACE_SAMPLING_RATIO", 1.0),
		OTELMetricsExportInterval: GetEnvDuration("OTEL_METRICS_EXPORT_INTERVAL", 10*time.Second),

		ReadinessProbeTimeout:        GetEnvDuration("READINESS_PROBE_TIMEOUT", time.Second),
		ShutdownTimeout:              GetEnvDuration("SHUTDOWN_TIMEOUT", 20*time.Second),
		ShutdownHTTPDrainTimeout:     GetEnvDuration("SHUTDOWN_HTTP_DRAIN_TIMEOUT", 10*time.Second),
		ShutdownObservabilityTimeout: GetEnvDuration("SHUTDOWN_OBSERVABILITY_TIMEOUT", 8*time.Second),
	}
}

// Features derives the activation flags from the loaded configuration.
// Evaluated once at startup; the result is shared read-only state.
func (c *Config) Features() Features {
	return Features{
		Auth:     len(c.APITokens) > 0,
		Database: c.DatabaseURL != "",
		Tracing:  c.OTELEnabled,
	}
}

// GetEnv returns the raw value if set and non-empty, else def.
func GetEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

// GetEnvBool treats exactly "true" (case-insensitive) as true. Any other
// non-empty value is false; unset or empty falls back to def.
func GetEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return strings.EqualFold(v, "true")
}

// GetEnvList splits on sep, trims each element and drops empties. Order is
// preserved and duplicates are kept; unset yields an empty slice.
func GetEnvList(key, sep string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	return splitList(v, sep)
}

func splitList(v, sep string) []string {
	parts := strings.Split(v, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trim := strings.TrimSpace(p)
		if trim != "" {
			out = append(out, trim)
		}
	}
	return out
}

func GetEnvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func GetEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
