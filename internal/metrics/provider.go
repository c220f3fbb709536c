// Package metrics provides OpenTelemetry metrics instrumentation with Prometheus export.
// It covers business operations, lock protocol events and HTTP requests.
package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

// Provider owns the OpenTelemetry meter provider and the Prometheus registry it exports to.
type Provider struct {
	meterProvider *metric.MeterProvider
	exporter      *promexporter.Exporter
	registry      *prometheus.Registry
}

// ProviderOption customizes a Provider.
type ProviderOption func(*prometheus.Registry) error

// WithRuntimeCollectors registers the Go runtime and process collectors on the registry.
func WithRuntimeCollectors() ProviderOption {
	return func(r *prometheus.Registry) error {
		if err := r.Register(collectors.NewGoCollector()); err != nil {
			return err
		}
		return r.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}
}

// NewProvider creates a metrics provider backed by a private Prometheus registry.
// namespace prefixes every metric name (e.g., "custody").
func NewProvider(namespace string, opts ...ProviderOption) (*Provider, error) {
	registry := prometheus.NewRegistry()
	for _, opt := range opts {
		if err := opt(registry); err != nil {
			return nil, fmt.Errorf("failed to configure metrics registry: %w", err)
		}
	}

	exporter, err := promexporter.New(
		promexporter.WithRegisterer(registry),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	return &Provider{
		meterProvider: metric.NewMeterProvider(
			metric.WithReader(exporter),
			metric.WithResource(resource.NewSchemaless(attribute.String("service.name", namespace))),
		),
		exporter: exporter,
		registry: registry,
	}, nil
}

// Handler serves the registry in Prometheus exposition format.
func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// MeterProvider returns the OpenTelemetry meter provider.
func (p *Provider) MeterProvider() *metric.MeterProvider {
	return p.meterProvider
}

// Shutdown flushes pending metrics and releases the meter provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.meterProvider == nil {
		return nil
	}
	return p.meterProvider.Shutdown(ctx)
}
