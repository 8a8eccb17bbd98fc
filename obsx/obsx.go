package obsx

import (
	"context"
	"time"

	"go.eggybyte.com/netgen/obsx/internal"
)

// Options holds configuration for the metrics provider.
type Options struct {
	ServiceName    string            // Service name for the target_info metric
	ServiceVersion string            // Service version
	ResourceAttrs  map[string]string // Extra target_info labels, e.g. the network file
}

// Generation summarizes one generator run.
type Generation struct {
	Species    int
	AuxVars    int
	Properties int
	Duration   time.Duration
	// Code is the error code of a failed run; empty for success.
	Code string
}

// Provider manages the meter provider and its Prometheus registry.
// The provider must be shut down when no longer needed.
type Provider struct {
	impl    *internal.Provider
	metrics *internal.GenerationMetrics
}

// NewProvider creates a metrics provider with the generation instruments
// registered.
//
// Parameters:
//   - ctx: context for provider initialization
//   - opts: provider configuration options
//
// Returns:
//   - *Provider: initialized provider instance
//   - error: initialization error if any
func NewProvider(ctx context.Context, opts Options) (*Provider, error) {
	impl, err := internal.NewProvider(ctx, internal.ProviderOptions{
		ServiceName:    opts.ServiceName,
		ServiceVersion: opts.ServiceVersion,
		ResourceAttrs:  opts.ResourceAttrs,
	})
	if err != nil {
		return nil, err
	}

	metrics, err := internal.NewGenerationMetrics(impl.MeterProvider)
	if err != nil {
		return nil, err
	}

	return &Provider{impl: impl, metrics: metrics}, nil
}

// RecordGeneration records the outcome of one run.
func (p *Provider) RecordGeneration(ctx context.Context, g Generation) {
	p.metrics.Record(ctx, internal.Generation{
		Species:    g.Species,
		AuxVars:    g.AuxVars,
		Properties: g.Properties,
		Duration:   g.Duration,
		Code:       g.Code,
	})
}

// WriteTextfile writes every collected metric to path in Prometheus text
// format. The file is replaced atomically.
func (p *Provider) WriteTextfile(path string) error {
	return p.impl.WriteTextfile(path)
}

// Shutdown flushes and stops the provider.
//
// Concurrency:
//   - Blocks until shutdown completes or the 5s timeout expires
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.impl.Shutdown(ctx)
}
