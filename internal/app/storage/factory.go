// Package storage selects and builds the descriptor repository backend from the
// configuration and owns the resources the backend holds.
package storage

import (
	"context"
	"fmt"

	"github.com/stacklok/descriptor-registry-server/internal/config"
	"github.com/stacklok/descriptor-registry-server/internal/service"
)

// Factory creates the repository of one storage backend and releases its resources
type Factory interface {
	// CreateRepository creates the repository served by the registry
	CreateRepository(ctx context.Context) (service.Repository, error)

	// Cleanup releases any resources held by this factory.
	// For database factories, this closes the connection pool.
	// For memory factories, this is a no-op.
	Cleanup()
}

// NewStorageFactory creates a storage factory based on the configured storage type.
// Returns a MemoryFactory for memory storage or a DatabaseFactory for database storage.
func NewStorageFactory(ctx context.Context, cfg *config.Config, opts ...DatabaseFactoryOption) (Factory, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	switch cfg.GetStorageType() {
	case config.StorageTypeDatabase:
		return NewDatabaseFactory(ctx, cfg, opts...)
	case config.StorageTypeMemory:
		return NewMemoryFactory(cfg)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.GetStorageType())
	}
}
