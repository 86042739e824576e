package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklok/descriptor-registry-server/internal/config"
	"github.com/stacklok/descriptor-registry-server/internal/service"
)

const seedYAML = `
shells:
  - id: urn:example:shell:1
    idShort: pump
    submodelDescriptors:
      - id: urn:example:submodel:nameplate
submodels:
  - id: urn:example:submodel:standalone
`

func TestNewMemoryFactory(t *testing.T) {
	t.Parallel()

	seedPath := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(seedPath, []byte(seedYAML), 0600))

	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr string
		shells  int
	}{
		{name: "nil config", cfg: nil, wantErr: "config cannot be nil"},
		{name: "no memory section", cfg: &config.Config{}},
		{name: "empty seed file", cfg: &config.Config{Memory: &config.MemoryConfig{}}},
		{name: "seed file", cfg: &config.Config{Memory: &config.MemoryConfig{SeedFile: seedPath}}, shells: 1},
		{
			name:    "missing seed file",
			cfg:     &config.Config{Memory: &config.MemoryConfig{SeedFile: filepath.Join(t.TempDir(), "nope.yaml")}},
			wantErr: "nope.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()

			factory, err := NewMemoryFactory(tt.cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			t.Cleanup(factory.Cleanup)

			repo, err := factory.CreateRepository(ctx)
			require.NoError(t, err)
			require.NoError(t, repo.CheckReadiness(ctx))

			shells, err := repo.ListShells(ctx, service.ShellFilter{})
			require.NoError(t, err)
			assert.Len(t, shells, tt.shells)
		})
	}
}

func TestMemoryFactory_IndependentRepositories(t *testing.T) {
	t.Parallel()

	seedPath := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(seedPath, []byte(seedYAML), 0600))

	ctx := context.Background()
	factory, err := NewMemoryFactory(&config.Config{Memory: &config.MemoryConfig{SeedFile: seedPath}})
	require.NoError(t, err)

	first, err := factory.CreateRepository(ctx)
	require.NoError(t, err)
	second, err := factory.CreateRepository(ctx)
	require.NoError(t, err)

	require.NoError(t, first.DeleteShell(ctx, "urn:example:shell:1"))

	_, err = first.GetShell(ctx, "urn:example:shell:1")
	require.ErrorIs(t, err, service.ErrShellNotFound)

	shell, err := second.GetShell(ctx, "urn:example:shell:1")
	require.NoError(t, err)
	require.Len(t, shell.SubmodelDescriptors, 1)
	assert.Equal(t, "urn:example:submodel:nameplate", shell.SubmodelDescriptors[0].ID)
}

func TestNewStorageFactory(t *testing.T) {
	t.Parallel()

	_, err := NewStorageFactory(context.Background(), nil)
	require.ErrorContains(t, err, "config cannot be nil")

	factory, err := NewStorageFactory(context.Background(), &config.Config{})
	require.NoError(t, err)
	assert.IsType(t, &MemoryFactory{}, factory)
}
