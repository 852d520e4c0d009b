// Package observability bundles the logger, tracer and metrics handed to every module.
package observability

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Config controls logger and metrics construction.
type Config struct {
	ServiceName string
	Environment string
	LogLevel    string
	Output      io.Writer
}

// Provider holds the process logger.
type Provider struct {
	Logger *slog.Logger
}

// Registry holds the tracer and metric sinks.
type Registry struct {
	Tracer     trace.Tracer
	Metrics    OperationMetrics
	Prometheus *prometheus.Registry
}

// Observability is passed by value into module constructors.
type Observability struct {
	Provider Provider
	Registry Registry
}

// New builds JSON logging, the global otel tracer and a fresh Prometheus registry.
func New(cfg Config) Observability {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	name := cfg.ServiceName
	if name == "" {
		name = "matchday"
	}

	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	})).With(
		slog.String("service", name),
		slog.String("environment", cfg.Environment),
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return Observability{
		Provider: Provider{Logger: logger},
		Registry: Registry{
			Tracer:     otel.Tracer(name),
			Metrics:    NewPrometheusMetrics(reg, name),
			Prometheus: reg,
		},
	}
}

// NewNoop returns observability that discards logs, spans and metrics.
func NewNoop() Observability {
	return Observability{
		Provider: Provider{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))},
		Registry: Registry{
			Tracer:  noop.NewTracerProvider().Tracer("noop"),
			Metrics: NewNoopMetrics(),
		},
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
