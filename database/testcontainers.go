package database

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	tclog "github.com/testcontainers/testcontainers-go/log"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

type nopLogger struct{}

func (*nopLogger) Printf(_ string, _ ...any) {}

var _ tclog.Logger = (*nopLogger)(nil)

var (
	dbName = "testdb"
	dbUser = "testuser"
	dbPass = "testpass"
)

// SetupTestDBContainer starts an empty Postgres container and connects to it.
// The test is skipped when no container provider is available.
func SetupTestDBContainer(t *testing.T, ctx context.Context) (*pgx.Conn, func()) {
	t.Helper()
	tc.SkipIfProviderIsNotHealthy(t)

	postgresContainer, err := postgres.Run(
		ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPass),
		postgres.BasicWaitStrategies(),
		tc.WithLogger(&nopLogger{}),
	)
	require.NoError(t, err)

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := pgx.Connect(ctx, connStr)
	require.NoError(t, err)

	cleanupFunc := func() {
		//nolint:gosec
		_ = db.Close(ctx)
		tc.CleanupContainer(t, postgresContainer)
	}

	return db, cleanupFunc
}

// SetupTestDB starts a Postgres container, applies every migration, rolls them back
// and applies them again, and returns a pool connected to the migrated database.
func SetupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	t.Helper()

	ctx := context.Background()
	conn, cleanupContainer := SetupTestDBContainer(t, ctx)
	connStr := conn.Config().ConnString()

	require.NoError(t, MigrateUp(ctx, connStr))
	require.NoError(t, MigrateDown(ctx, connStr, 0))
	require.NoError(t, MigrateUp(ctx, connStr))

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	return pool, func() {
		pool.Close()
		cleanupContainer()
	}
}

// Execer is satisfied by *pgx.Conn, *pgxpool.Pool and pgx.Tx.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// TruncateAll empties every registry table. Tests sharing one container call it
// between cases.
func TruncateAll(ctx context.Context, db Execer) error {
	_, err := db.Exec(ctx,
		"TRUNCATE shell_submodel_descriptor, shell_descriptor, submodel_descriptor")
	return err
}
