package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
)

// MigrateUp applies all pending migrations. It is a no-op when the schema is current.
func MigrateUp(ctx context.Context, connString string) error {
	return withMigrate(ctx, connString, func(m *migrate.Migrate) error {
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
		return nil
	})
}

// MigrateDown reverts the given number of migrations. A non-positive steps value
// reverts every migration.
func MigrateDown(ctx context.Context, connString string, steps int) error {
	return withMigrate(ctx, connString, func(m *migrate.Migrate) error {
		var err error
		if steps <= 0 {
			err = m.Down()
		} else {
			err = m.Steps(-steps)
		}
		if err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("failed to revert migrations: %w", err)
		}
		return nil
	})
}

// GetVersion returns the current schema version and whether the last migration left
// the schema dirty. A database without any applied migration reports version 0.
func GetVersion(ctx context.Context, connString string) (version uint, dirty bool, err error) {
	err = withMigrate(ctx, connString, func(m *migrate.Migrate) error {
		version, dirty, err = m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			return nil
		}
		return err
	})
	return version, dirty, err
}

func withMigrate(ctx context.Context, connString string, fn func(*migrate.Migrate) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m, err := GetMigrate(connString)
	if err != nil {
		return err
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			slog.WarnContext(ctx, "Failed to close migrate instance",
				"source_error", srcErr,
				"database_error", dbErr)
		}
	}()

	finished := make(chan struct{})
	defer close(finished)
	go func() {
		select {
		case <-ctx.Done():
			m.GracefulStop <- true
		case <-finished:
		}
	}()

	return fn(m)
}
