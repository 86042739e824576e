// Package db builds the PostgreSQL connection pool used by the durable descriptor store.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stacklok/descriptor-registry-server/internal/config"
)

const (
	defaultMaxConns        = 25
	defaultMinConns        = 2
	defaultConnMaxLifetime = 5 * time.Minute
	defaultConnectTimeout  = 10 * time.Second
	defaultConnectTries    = 5
)

// PoolOption configures NewPool
type PoolOption func(*poolOptions)

type poolOptions struct {
	backOff  backoff.BackOff
	maxTries uint
}

// WithConnectBackOff sets the schedule of connection attempts at startup and how many
// are made before giving up
func WithConnectBackOff(b backoff.BackOff, maxTries uint) PoolOption {
	return func(o *poolOptions) {
		o.backOff = b
		o.maxTries = maxTries
	}
}

// NewPool creates a connection pool for cfg and waits until the database answers a
// ping. Attempts are retried with exponential backoff; the pool is closed when every
// attempt fails.
func NewPool(ctx context.Context, cfg *config.DatabaseConfig, opts ...PoolOption) (*pgxpool.Pool, error) {
	if cfg == nil {
		return nil, fmt.Errorf("database configuration is required")
	}

	o := &poolOptions{
		backOff:  backoff.NewExponentialBackOff(),
		maxTries: defaultConnectTries,
	}
	for _, opt := range opts {
		opt(o)
	}

	poolConfig, err := buildPoolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection pool: %w", err)
	}

	ping := func() (struct{}, error) {
		return struct{}{}, pool.Ping(ctx)
	}
	notify := func(err error, wait time.Duration) {
		slog.WarnContext(ctx, "Database not reachable, retrying",
			"database", cfg.String(),
			"retry_in", wait,
			"error", err)
	}

	if _, err := backoff.Retry(ctx, ping,
		backoff.WithBackOff(o.backOff),
		backoff.WithMaxTries(o.maxTries),
		backoff.WithNotify(notify),
	); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.InfoContext(ctx, "Database connection pool established",
		"database", cfg.String(),
		"max_conns", poolConfig.MaxConns,
		"min_conns", poolConfig.MinConns)

	return pool, nil
}

func buildPoolConfig(cfg *config.DatabaseConfig) (*pgxpool.Config, error) {
	connString, err := cfg.GetConnectionString()
	if err != nil {
		return nil, fmt.Errorf("failed to build connection string: %w", err)
	}

	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database connection string: %w", err)
	}

	poolConfig.MaxConns = defaultMaxConns
	if cfg.MaxOpenConns > 0 {
		poolConfig.MaxConns = cfg.MaxOpenConns
	}

	poolConfig.MinConns = min(defaultMinConns, poolConfig.MaxConns)
	if cfg.MaxIdleConns > 0 {
		poolConfig.MinConns = cfg.MaxIdleConns
	}

	poolConfig.MaxConnLifetime = defaultConnMaxLifetime
	lifetime, err := cfg.GetConnMaxLifetime()
	if err != nil {
		return nil, err
	}
	if lifetime > 0 {
		poolConfig.MaxConnLifetime = lifetime
	}

	poolConfig.ConnConfig.ConnectTimeout = defaultConnectTimeout

	return poolConfig, nil
}
