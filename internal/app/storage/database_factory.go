package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/trace"

	"github.com/stacklok/descriptor-registry-server/internal/config"
	"github.com/stacklok/descriptor-registry-server/internal/db"
	"github.com/stacklok/descriptor-registry-server/internal/service"
	database "github.com/stacklok/descriptor-registry-server/internal/service/db"
)

// DatabaseFactory creates the PostgreSQL-backed repository
type DatabaseFactory struct {
	pool     *pgxpool.Pool
	tracer   trace.Tracer
	poolOpts []db.PoolOption
}

var _ Factory = (*DatabaseFactory)(nil)

// DatabaseFactoryOption is a functional option for configuring the DatabaseFactory
type DatabaseFactoryOption func(*DatabaseFactory)

// WithTracer sets the OpenTelemetry tracer for the database store.
// If not set, tracing will be disabled (no-op).
func WithTracer(tracer trace.Tracer) DatabaseFactoryOption {
	return func(f *DatabaseFactory) {
		f.tracer = tracer
	}
}

// WithPoolOptions passes options to the connection pool builder
func WithPoolOptions(opts ...db.PoolOption) DatabaseFactoryOption {
	return func(f *DatabaseFactory) {
		f.poolOpts = append(f.poolOpts, opts...)
	}
}

// NewDatabaseFactory creates a new database-backed storage factory.
// It establishes a connection pool to the configured PostgreSQL database.
func NewDatabaseFactory(ctx context.Context, cfg *config.Config, opts ...DatabaseFactoryOption) (*DatabaseFactory, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if cfg.Database == nil {
		return nil, fmt.Errorf("database configuration is required for database storage type")
	}

	factory := &DatabaseFactory{}
	for _, opt := range opts {
		opt(factory)
	}

	slog.Info("Creating database-backed storage factory", "database", cfg.Database.String())

	pool, err := db.NewPool(ctx, cfg.Database, factory.poolOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection pool: %w", err)
	}
	factory.pool = pool

	return factory, nil
}

// CreateRepository creates the durable repository on the factory's pool
func (d *DatabaseFactory) CreateRepository(_ context.Context) (service.Repository, error) {
	slog.Debug("Creating database-backed repository")

	opts := []database.Option{
		database.WithConnectionPool(d.pool),
	}
	if d.tracer != nil {
		opts = append(opts, database.WithTracer(d.tracer))
	}

	return database.New(opts...)
}

// Cleanup closes the connection pool
func (d *DatabaseFactory) Cleanup() {
	if d.pool != nil {
		slog.Info("Closing database connection pool")
		d.pool.Close()
	}
}
