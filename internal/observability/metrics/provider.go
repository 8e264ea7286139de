package metrics

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.38.0"
)

const meterName = "github.com/KasumiMercury/primind-medication-helper"

type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	Enabled        bool
	GCPProjectID   string
}

type Provider struct {
	mp *sdkmetric.MeterProvider
	// handler serves the scrape endpoint; nil when metrics are pushed.
	handler http.Handler
}

func (p *Provider) MeterProvider() metric.MeterProvider {
	return p.mp
}

func (p *Provider) Meter() metric.Meter {
	return p.mp.Meter(meterName)
}

func (p *Provider) Handler() http.Handler {
	return p.handler
}

func (p *Provider) Shutdown(ctx context.Context) error {
	return p.mp.Shutdown(ctx)
}

func newResource(cfg Config) *resource.Resource {
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(cfg.ServiceVersion),
		semconv.DeploymentEnvironmentName(cfg.Environment),
	)
}

// MeterProvider without any reader does not export metrics
func newNoopProvider(cfg Config) *Provider {
	return &Provider{mp: sdkmetric.NewMeterProvider(sdkmetric.WithResource(newResource(cfg)))}
}
