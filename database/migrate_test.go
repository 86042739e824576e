package database

import (
	"context"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db, cleanupFunc := SetupTestDBContainer(t, ctx)
	t.Cleanup(cleanupFunc)

	connString := db.Config().ConnString()

	m, err := GetMigrate(connString)
	require.NoError(t, err)
	defer m.Close()

	// Count the number of logical migrations
	fnames, err := fs.Glob(migrationsFS, "migrations/*.up.sql")
	require.NoError(t, err)
	require.NotEmpty(t, fnames)

	for i := 1; i <= len(fnames); i++ {
		// step up
		err = m.Steps(i)
		assert.NoError(t, err)

		// step down
		err = m.Steps(-i)
		assert.NoError(t, err)

		// step up again
		err = m.Steps(i)
		assert.NoError(t, err)

		// leave the schema empty for the next round
		err = m.Steps(-i)
		assert.NoError(t, err)
	}
}

func TestMigrateHelpers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db, cleanupFunc := SetupTestDBContainer(t, ctx)
	t.Cleanup(cleanupFunc)

	connString := db.Config().ConnString()

	version, dirty, err := GetVersion(ctx, connString)
	require.NoError(t, err)
	assert.Zero(t, version)
	assert.False(t, dirty)

	require.NoError(t, MigrateUp(ctx, connString))
	require.NoError(t, MigrateUp(ctx, connString), "migrating a current schema is a no-op")

	version, dirty, err = GetVersion(ctx, connString)
	require.NoError(t, err)
	assert.EqualValues(t, 1, version)
	assert.False(t, dirty)

	var tables int
	err = db.QueryRow(ctx, `
		SELECT count(*) FROM information_schema.tables
		WHERE table_name IN ('shell_descriptor', 'shell_submodel_descriptor', 'submodel_descriptor')
	`).Scan(&tables)
	require.NoError(t, err)
	assert.Equal(t, 3, tables)

	require.NoError(t, MigrateDown(ctx, connString, 0))
	version, _, err = GetVersion(ctx, connString)
	require.NoError(t, err)
	assert.Zero(t, version)
}

func TestToMigrateURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "postgres://u:p@localhost:5432/db?sslmode=disable", want: "pgx5://u:p@localhost:5432/db?sslmode=disable"},
		{in: "postgresql://localhost/db", want: "pgx5://localhost/db"},
		{in: "pgx5://localhost/db", want: "pgx5://localhost/db"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, toMigrateURL(tt.in))
		})
	}
}
