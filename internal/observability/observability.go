package observability

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel"

	"github.com/KasumiMercury/primind-medication-helper/internal/observability/logging"
	"github.com/KasumiMercury/primind-medication-helper/internal/observability/metrics"
	"github.com/KasumiMercury/primind-medication-helper/internal/observability/tracing"
)

type Config struct {
	ServiceInfo    logging.ServiceInfo
	Environment    logging.Environment
	LogLevel       slog.Level
	LogOutput      io.Writer
	DefaultModule  logging.Module
	GCPProjectID   string
	OTLPEndpoint   string
	SamplingRate   float64
	MetricsEnabled bool
}

// Resources holds the process-wide telemetry set up by Init.
type Resources struct {
	Tracing         *tracing.Provider
	Metrics         *metrics.Provider
	HTTPMetrics     *metrics.HTTPMetrics
	ReminderMetrics *metrics.ReminderMetrics
}

// Init installs the slog default handler and the global otel providers.
func Init(ctx context.Context, cfg Config) (*Resources, error) {
	slog.SetDefault(slog.New(logging.NewHandler(cfg.LogOutput, logging.HandlerConfig{
		Level:         cfg.LogLevel,
		Service:       cfg.ServiceInfo,
		Environment:   cfg.Environment,
		DefaultModule: cfg.DefaultModule,
		GCPProjectID:  cfg.GCPProjectID,
	})))

	tracing.SetupPropagator()

	tp, err := tracing.NewProvider(ctx, tracing.Config{
		ServiceName:    cfg.ServiceInfo.Name,
		ServiceVersion: cfg.ServiceInfo.Version,
		Environment:    string(cfg.Environment),
		OTLPEndpoint:   cfg.OTLPEndpoint,
		SamplingRate:   cfg.SamplingRate,
		GCPProjectID:   cfg.GCPProjectID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init tracing: %w", err)
	}

	otel.SetTracerProvider(tp.TracerProvider())

	mp, err := metrics.NewProvider(ctx, metrics.Config{
		ServiceName:    cfg.ServiceInfo.Name,
		ServiceVersion: cfg.ServiceInfo.Version,
		Environment:    string(cfg.Environment),
		Enabled:        cfg.MetricsEnabled,
		GCPProjectID:   cfg.GCPProjectID,
	})
	if err != nil {
		_ = tp.Shutdown(ctx)

		return nil, fmt.Errorf("failed to init metrics: %w", err)
	}

	otel.SetMeterProvider(mp.MeterProvider())

	httpMetrics, err := metrics.NewHTTPMetrics(mp.Meter())
	if err != nil {
		return nil, errors.Join(err, tp.Shutdown(ctx), mp.Shutdown(ctx))
	}

	reminderMetrics, err := metrics.NewReminderMetrics(mp.Meter())
	if err != nil {
		return nil, errors.Join(err, tp.Shutdown(ctx), mp.Shutdown(ctx))
	}

	slog.DebugContext(ctx, "observability initialized",
		slog.String("otlp_endpoint", cfg.OTLPEndpoint),
		slog.Bool("metrics_enabled", cfg.MetricsEnabled),
	)

	return &Resources{
		Tracing:         tp,
		Metrics:         mp,
		HTTPMetrics:     httpMetrics,
		ReminderMetrics: reminderMetrics,
	}, nil
}

// Shutdown flushes pending spans and metrics.
func (r *Resources) Shutdown(ctx context.Context) error {
	return errors.Join(
		r.Tracing.Shutdown(ctx),
		r.Metrics.Shutdown(ctx),
	)
}
