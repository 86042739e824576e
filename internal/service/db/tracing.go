package database

import (
	"context"

	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/stacklok/descriptor-registry-server/internal/service"
)

const (
	// StoreTracerName is the name used for the database store tracer
	StoreTracerName = "github.com/stacklok/descriptor-registry-server/service/db"
)

// Database semantic convention attributes
var (
	// DBSystemPostgres is the database system attribute for PostgreSQL
	DBSystemPostgres = semconv.DBSystemPostgreSQL
)

// startSpan starts a new span for database operations.
// If the tracer is nil, it returns a no-op span from the context.
// All database spans carry the db.system attribute.
func (s *dbStore) startSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	if s.tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	opts = append([]trace.SpanStartOption{trace.WithAttributes(DBSystemPostgres)}, opts...)
	return s.tracer.Start(ctx, name, opts...)
}

// recordError records an error on a span and sets the span status to error.
// Missing records and rejected input are expected outcomes and leave the status unset;
// only storage failures mark the span as failed. The status description stays generic
// so SQL and connection strings never reach it.
func recordError(span trace.Span, err error) {
	if err == nil || span == nil {
		return
	}
	span.RecordError(err)
	if service.KindOf(err) == service.KindStorage || service.KindOf(err) == service.KindUnknown {
		span.SetStatus(codes.Error, "operation failed")
	}
}
