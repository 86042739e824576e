// Package telemetry provides OpenTelemetry instrumentation for the descriptor registry.
package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	// RegistryMetricsMeterName is the name used for the registry operation metrics meter
	RegistryMetricsMeterName = "github.com/stacklok/descriptor-registry-server/registry"

	// OutcomeSuccess is the outcome label of an operation that returned no error
	OutcomeSuccess = "success"
)

// RegistryMetrics holds the OpenTelemetry instruments for registry operations
type RegistryMetrics struct {
	operationsTotal   metric.Int64Counter
	operationDuration metric.Float64Histogram
}

// NewRegistryMetrics creates a new RegistryMetrics instance with the given meter provider.
// If provider is nil, it returns nil (no-op metrics).
func NewRegistryMetrics(provider metric.MeterProvider) (*RegistryMetrics, error) {
	if provider == nil {
		return nil, nil
	}

	meter := provider.Meter(RegistryMetricsMeterName)

	operationsTotal, err := meter.Int64Counter(
		"descriptor_registry_operations_total",
		metric.WithDescription("Number of registry operations by operation and outcome"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, err
	}

	operationDuration, err := meter.Float64Histogram(
		"descriptor_registry_operation_duration_seconds",
		metric.WithDescription("Duration of registry operations in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1),
	)
	if err != nil {
		return nil, err
	}

	return &RegistryMetrics{
		operationsTotal:   operationsTotal,
		operationDuration: operationDuration,
	}, nil
}

// RecordOperation records one completed registry operation. The outcome is
// OutcomeSuccess or the kind of the returned error.
func (m *RegistryMetrics) RecordOperation(ctx context.Context, operation, outcome string, duration time.Duration) {
	if m == nil || m.operationsTotal == nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("outcome", outcome),
	)

	m.operationsTotal.Add(ctx, 1, attrs)
	m.operationDuration.Record(ctx, duration.Seconds(), attrs)
}
