// Package internal provides internal implementation for the obsx package.
package internal

import (
	"context"
	"fmt"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

// ProviderOptions holds configuration for the metrics provider.
type ProviderOptions struct {
	ServiceName    string
	ServiceVersion string
	ResourceAttrs  map[string]string
}

// Provider owns a meter provider whose only reader is a Prometheus exporter
// registered on a private registry.
type Provider struct {
	MeterProvider *metric.MeterProvider
	Registry      *promclient.Registry
}

// NewProvider creates a new metrics provider with Prometheus export.
func NewProvider(ctx context.Context, opts ProviderOptions) (*Provider, error) {
	if opts.ServiceName == "" {
		return nil, fmt.Errorf("service name is required")
	}

	res, err := createResource(ctx, opts)
	if err != nil {
		return nil, err
	}

	mp, registry, err := createMeterProvider(res)
	if err != nil {
		return nil, err
	}

	return &Provider{
		MeterProvider: mp,
		Registry:      registry,
	}, nil
}

// createResource creates an OpenTelemetry resource with service attributes.
func createResource(ctx context.Context, opts ProviderOptions) (*resource.Resource, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(opts.ServiceName),
			semconv.ServiceVersion(opts.ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	if len(opts.ResourceAttrs) > 0 {
		var attrs []attribute.KeyValue
		for k, v := range opts.ResourceAttrs {
			attrs = append(attrs, attribute.String(k, v))
		}
		res, err = resource.Merge(res, resource.NewWithAttributes(semconv.SchemaURL, attrs...))
		if err != nil {
			return nil, fmt.Errorf("failed to add resource attributes: %w", err)
		}
	}

	return res, nil
}

func createMeterProvider(res *resource.Resource) (*metric.MeterProvider, *promclient.Registry, error) {
	registry := promclient.NewRegistry()
	exporter, err := prometheus.New(
		prometheus.WithRegisterer(registry),
		prometheus.WithoutUnits(),
		prometheus.WithoutScopeInfo(),
		prometheus.WithoutCounterSuffixes(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	mp := metric.NewMeterProvider(
		metric.WithResource(res),
		metric.WithReader(exporter),
	)
	return mp, registry, nil
}

// WriteTextfile gathers the registry and writes it to path through a
// temporary file and a rename.
func (p *Provider) WriteTextfile(path string) error {
	if err := promclient.WriteToTextfile(path, p.Registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}

// Shutdown gracefully shuts down the metrics provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if p.MeterProvider != nil {
		if err := p.MeterProvider.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown meter provider: %w", err)
		}
	}
	return nil
}
