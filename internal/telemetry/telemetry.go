// Package telemetry wires a run of the driver into OpenTelemetry metrics,
// exported over Prometheus, adapted from the provider pattern used across
// the example pack's OpenTelemetry integrations.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "gid"

// Provider holds the metric instruments a driver run updates.
type Provider struct {
	meterProvider *sdkmetric.MeterProvider
	meter         metric.Meter
	tracer        trace.Tracer

	updatesProcessed metric.Int64Counter
	updateDuration   metric.Float64Histogram
	statusTransition metric.Int64Counter
	snapshotSize     metric.Int64Histogram
}

// Config selects which telemetry signals a Provider records.
type Config struct {
	Algorithm     string
	EnableMetrics bool
}

// DefaultConfig enables metrics under the "gid" service name.
func DefaultConfig(algorithm string) Config {
	return Config{Algorithm: algorithm, EnableMetrics: true}
}

// NewProvider creates a Provider backed by a Prometheus exporter. The
// exporter's registry is reachable through promhttp in cmd/gid; Shutdown
// must be called once the run completes.
func NewProvider(ctx context.Context, cfg Config) (*Provider, error) {
	p := &Provider{}
	if !cfg.EnableMetrics {
		return p, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("gid.algorithm", cfg.Algorithm),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("telemetry: building resource: %w", err)
	}

	exporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("telemetry: creating prometheus exporter: %w", err)
	}

	p.meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(p.meterProvider)
	p.meter = p.meterProvider.Meter(serviceName)
	p.tracer = otel.GetTracerProvider().Tracer(serviceName)

	if err := p.createInstruments(); err != nil {
		return nil, fmt.Errorf("telemetry: creating instruments: %w", err)
	}
	return p, nil
}

// Tracer returns the run's tracer. Spans use whatever TracerProvider is
// globally registered; this package sets up metrics only, so absent an
// external SDK registration, spans are recorded by the no-op provider.
func (p *Provider) Tracer() trace.Tracer {
	if p.tracer == nil {
		return otel.GetTracerProvider().Tracer(serviceName)
	}
	return p.tracer
}

// StartRun opens a span covering one detector run.
func (p *Provider) StartRun(ctx context.Context, algorithm string) (context.Context, trace.Span) {
	return p.Tracer().Start(ctx, "gid.run", trace.WithAttributes(attribute.String("gid.algorithm", algorithm)))
}

func (p *Provider) createInstruments() error {
	var err error
	p.updatesProcessed, err = p.meter.Int64Counter(
		"gid.updates.processed.total",
		metric.WithDescription("Total number of stream updates applied"),
	)
	if err != nil {
		return err
	}
	p.updateDuration, err = p.meter.Float64Histogram(
		"gid.update.duration",
		metric.WithDescription("Per-update processing duration"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return err
	}
	p.statusTransition, err = p.meter.Int64Counter(
		"gid.status.transitions.total",
		metric.WithDescription("Total number of vertex status transitions, by resulting status"),
	)
	if err != nil {
		return err
	}
	p.snapshotSize, err = p.meter.Int64Histogram(
		"gid.snapshot.vertex_count",
		metric.WithDescription("Vertex count of each polled snapshot"),
	)
	return err
}

// RecordUpdate records that one stream update was applied in durationMs.
func (p *Provider) RecordUpdate(ctx context.Context, durationMs float64) {
	if p.updatesProcessed == nil {
		return
	}
	p.updatesProcessed.Add(ctx, 1)
	p.updateDuration.Record(ctx, durationMs)
}

// RecordTransition records a vertex newly reaching status.
func (p *Provider) RecordTransition(ctx context.Context, status string) {
	if p.statusTransition == nil {
		return
	}
	p.statusTransition.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
}

// RecordSnapshot records the size of a polled snapshot.
func (p *Provider) RecordSnapshot(ctx context.Context, vertexCount int) {
	if p.snapshotSize == nil {
		return
	}
	p.snapshotSize.Record(ctx, int64(vertexCount))
}

// Shutdown flushes and releases the underlying meter provider, if any.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.meterProvider == nil {
		return nil
	}
	return p.meterProvider.Shutdown(ctx)
}
