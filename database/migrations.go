// Package database provides the schema migrations of the descriptor registry and the
// helpers used to apply them.
package database

import (
	"embed"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // Registers the pgx5 scheme
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// migrationScheme is the URL scheme the golang-migrate pgx/v5 driver registers
const migrationScheme = "pgx5"

// GetMigrate returns a migrate instance reading the embedded migrations and applying
// them to the database behind connString. Both URL and keyword/value connection
// strings are accepted.
func GetMigrate(connString string) (*migrate.Migrate, error) {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, toMigrateURL(connString))
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return m, nil
}

// toMigrateURL rewrites a postgres:// or postgresql:// URL to the pgx5 scheme
func toMigrateURL(connString string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if rest, ok := strings.CutPrefix(connString, prefix); ok {
			return migrationScheme + "://" + rest
		}
	}
	return connString
}
