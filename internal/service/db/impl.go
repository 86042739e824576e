// Package database provides a PostgreSQL-backed implementation of the descriptor Repository
package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/trace"

	"github.com/stacklok/descriptor-registry-server/internal/db/sqlc"
	"github.com/stacklok/descriptor-registry-server/internal/service"
)

// uniqueViolation is the SQLSTATE raised when a primary key is already taken
const uniqueViolation = "23505"

// options holds configuration options for the database store
type options struct {
	pool   *pgxpool.Pool
	tracer trace.Tracer
}

// Option is a functional option for configuring the database store
type Option func(*options) error

// WithConnectionPool sets the pgx pool used by the store. The caller is
// responsible for closing the pool when it is done.
func WithConnectionPool(pool *pgxpool.Pool) Option {
	return func(o *options) error {
		if pool == nil {
			return fmt.Errorf("pgx pool is required")
		}
		o.pool = pool
		return nil
	}
}

// WithTracer sets the OpenTelemetry tracer for the database store.
// If not set, tracing will be disabled (no-op).
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) error {
		o.tracer = tracer
		return nil
	}
}

// dbStore implements the Repository interface using a PostgreSQL backend.
// Every write runs in its own transaction; nested writes lock the parent shell row.
type dbStore struct {
	pool   *pgxpool.Pool
	tracer trace.Tracer
}

var _ service.Repository = (*dbStore)(nil)

// New creates a new database-backed repository with the given options
func New(opts ...Option) (service.Repository, error) {
	o := &options{}

	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	if o.pool == nil {
		return nil, fmt.Errorf("pgx pool is required")
	}

	return &dbStore{
		pool:   o.pool,
		tracer: o.tracer,
	}, nil
}

// CheckReadiness checks if the database can serve requests
func (s *dbStore) CheckReadiness(ctx context.Context) error {
	ctx, span := s.startSpan(ctx, "dbStore.CheckReadiness")
	defer span.End()

	if err := s.pool.Ping(ctx); err != nil {
		recordError(span, err)
		return service.NewStorageError("ping database", err)
	}
	return nil
}

// inTx runs fn in a read-write transaction. Read committed isolation lets two
// concurrent inserts of the same key resolve to a unique violation rather than a
// serialization failure.
func (s *dbStore) inTx(ctx context.Context, fn func(querier *sqlc.Queries) error) error {
	return s.runTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.ReadCommitted,
		AccessMode: pgx.ReadWrite,
	}, fn)
}

// inReadTx runs fn in a read-only transaction that sees a single snapshot.
func (s *dbStore) inReadTx(ctx context.Context, fn func(querier *sqlc.Queries) error) error {
	return s.runTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	}, fn)
}

func (s *dbStore) runTx(ctx context.Context, txOpts pgx.TxOptions, fn func(querier *sqlc.Queries) error) error {
	tx, err := s.pool.BeginTx(ctx, txOpts)
	if err != nil {
		return service.NewStorageError("begin transaction", err)
	}
	defer func() {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.WarnContext(ctx, "Failed to roll back transaction", "error", err)
		}
	}()

	if err := fn(sqlc.New(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return service.NewStorageError("commit transaction", err)
	}
	return nil
}

// lockShell takes a row lock on the shell so that nested writes to the same shell
// are serialized. It reports a missing shell as not found.
func lockShell(ctx context.Context, querier *sqlc.Queries, shellID string) error {
	if _, err := querier.LockShell(ctx, shellID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return service.NewShellNotFoundError(shellID)
		}
		return service.NewStorageError("lock shell", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func ensurePair(shellID, submodelID string) error {
	if err := service.EnsureIdentifier("shell", shellID); err != nil {
		return err
	}
	return service.EnsureIdentifier("submodel", submodelID)
}
