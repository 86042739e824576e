package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/stacklok/descriptor-registry-server/internal/config"
	"github.com/stacklok/descriptor-registry-server/internal/service"
	"github.com/stacklok/descriptor-registry-server/internal/service/inmemory"
)

// MemoryFactory creates the volatile in-process repository, optionally seeded from a file
type MemoryFactory struct {
	seed *inmemory.Seed
}

var _ Factory = (*MemoryFactory)(nil)

// NewMemoryFactory creates a memory storage factory. A configured seed file is read
// and validated here so that a broken file fails startup.
func NewMemoryFactory(cfg *config.Config) (*MemoryFactory, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	factory := &MemoryFactory{}
	if cfg.Memory != nil && cfg.Memory.SeedFile != "" {
		seed, err := inmemory.LoadSeedFile(cfg.Memory.SeedFile)
		if err != nil {
			return nil, err
		}
		factory.seed = seed
	}

	return factory, nil
}

// CreateRepository creates a new memory store holding the seed descriptors.
// Every call returns an independent store.
func (m *MemoryFactory) CreateRepository(_ context.Context) (service.Repository, error) {
	slog.Warn("Using in-memory storage, descriptors are lost on restart")
	return inmemory.New(inmemory.WithSeed(m.seed))
}

// Cleanup is a no-op
func (*MemoryFactory) Cleanup() {}
