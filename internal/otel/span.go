// Package otel provides OpenTelemetry instrumentation utilities for the descriptor registry.
package otel

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Common attribute keys for business context used across the application.
const (
	AttrOperation   = attribute.Key("registry.operation")
	AttrShellID     = attribute.Key("shell.id")
	AttrSubmodelID  = attribute.Key("submodel.id")
	AttrAssetType   = attribute.Key("shell.asset_type")
	AttrAssetKind   = attribute.Key("shell.asset_kind")
	AttrPageSize    = attribute.Key("pagination.limit")
	AttrHasCursor   = attribute.Key("pagination.has_cursor")
	AttrResultCount = attribute.Key("result.count")
	AttrErrorKind   = attribute.Key("error.kind")
)

// StartSpan starts a new span if the tracer is non-nil, otherwise returns a no-op span.
func StartSpan(
	ctx context.Context,
	tracer trace.Tracer,
	name string,
	opts ...trace.SpanStartOption,
) (context.Context, trace.Span) {
	if tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return tracer.Start(ctx, name, opts...)
}

// RecordError records an error on a span and sets the span status to error.
// It safely handles nil spans and nil errors.
// The status description stays generic so that identifiers and SQL never end up in the
// span status; the full error is still attached as a span event.
func RecordError(span trace.Span, err error) {
	if err != nil && span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "operation failed")
	}
}
