package internal

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// Generation is the outcome of one generator run.
type Generation struct {
	Species    int
	AuxVars    int
	Properties int
	Duration   time.Duration
	Code       string
}

// GenerationMetrics holds the instruments describing generator runs.
//
// Metrics collected:
//   - netgen_runs_total: Runs by outcome (code="OK" on success)
//   - netgen_species: Species in the last network
//   - netgen_aux_vars: Active aux variables in the last network
//   - netgen_properties: Properties in the last network
//   - netgen_run_duration_seconds: Wall time of a run
type GenerationMetrics struct {
	runs       metric.Int64Counter
	species    metric.Int64Gauge
	auxVars    metric.Int64Gauge
	properties metric.Int64Gauge
	duration   metric.Float64Histogram
}

// NewGenerationMetrics registers the generation instruments on meterProvider.
func NewGenerationMetrics(meterProvider *sdkmetric.MeterProvider) (*GenerationMetrics, error) {
	meter := meterProvider.Meter("go.eggybyte.com/netgen/generator")

	runs, err := meter.Int64Counter(
		"netgen_runs_total",
		metric.WithDescription("Generator runs by outcome"),
		metric.WithUnit("{run}"),
	)
	if err != nil {
		return nil, err
	}

	species, err := meter.Int64Gauge(
		"netgen_species",
		metric.WithDescription("Number of species in the network"),
		metric.WithUnit("{species}"),
	)
	if err != nil {
		return nil, err
	}

	auxVars, err := meter.Int64Gauge(
		"netgen_aux_vars",
		metric.WithDescription("Number of active auxiliary variables in the network"),
		metric.WithUnit("{variable}"),
	)
	if err != nil {
		return nil, err
	}

	properties, err := meter.Int64Gauge(
		"netgen_properties",
		metric.WithDescription("Number of network properties"),
		metric.WithUnit("{property}"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram(
		"netgen_run_duration_seconds",
		metric.WithDescription("Wall time of a generator run"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &GenerationMetrics{
		runs:       runs,
		species:    species,
		auxVars:    auxVars,
		properties: properties,
		duration:   duration,
	}, nil
}

// Record adds one run. Network sizes are only recorded for successful runs.
func (m *GenerationMetrics) Record(ctx context.Context, g Generation) {
	code := g.Code
	if code == "" {
		code = "OK"
	}
	outcome := metric.WithAttributes(attribute.String("code", code))

	m.runs.Add(ctx, 1, outcome)
	m.duration.Record(ctx, g.Duration.Seconds(), outcome)

	if g.Code != "" {
		return
	}
	m.species.Record(ctx, int64(g.Species))
	m.auxVars.Record(ctx, int64(g.AuxVars))
	m.properties.Record(ctx, int64(g.Properties))
}
