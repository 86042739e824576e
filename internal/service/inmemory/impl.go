// Package inmemory provides a volatile, in-process implementation of the descriptor Repository
package inmemory

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/stacklok/descriptor-registry-server/internal/descriptor"
	"github.com/stacklok/descriptor-registry-server/internal/service"
)

// memStore implements the Repository interface with two id-keyed maps. Nested
// submodels live in the slice of their shell.
type memStore struct {
	mu        sync.RWMutex // Protects shells and submodels
	shells    map[string]*descriptor.Shell
	submodels map[string]*descriptor.Submodel
}

var _ service.Repository = (*memStore)(nil)

// Option is a functional option for configuring the memStore
type Option func(*memStore) error

// WithShells seeds the store with the given shells
func WithShells(shells ...*descriptor.Shell) Option {
	return func(s *memStore) error {
		for _, shell := range shells {
			if err := s.insertShell(shell); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithSubmodels seeds the store with the given standalone submodels
func WithSubmodels(submodels ...*descriptor.Submodel) Option {
	return func(s *memStore) error {
		for _, submodel := range submodels {
			if err := s.insertSubmodel(submodel); err != nil {
				return err
			}
		}
		return nil
	}
}

// New creates an empty in-memory repository. Its contents are lost when the process exits.
func New(opts ...Option) (service.Repository, error) {
	s := &memStore{
		shells:    make(map[string]*descriptor.Shell),
		submodels: make(map[string]*descriptor.Submodel),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	slog.Debug("Created in-memory descriptor store",
		"shells", len(s.shells),
		"submodels", len(s.submodels))

	return s, nil
}

// CheckReadiness always succeeds
func (*memStore) CheckReadiness(_ context.Context) error {
	return nil
}

// ListShells implements Repository.ListShells
func (s *memStore) ListShells(_ context.Context, filter service.ShellFilter) ([]*descriptor.Shell, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*descriptor.Shell, 0, len(s.shells))
	for _, id := range sortedKeys(s.shells) {
		shell := s.shells[id]
		if filter.Matches(shell) {
			result = append(result, shell.Clone())
		}
	}
	return result, nil
}

// GetShell implements Repository.GetShell
func (s *memStore) GetShell(_ context.Context, id string) (*descriptor.Shell, error) {
	if err := service.EnsureIdentifier("shell", id); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	shell, ok := s.shells[id]
	if !ok {
		return nil, service.NewShellNotFoundError(id)
	}
	return shell.Clone(), nil
}

// CreateShell implements Repository.CreateShell
func (s *memStore) CreateShell(_ context.Context, shell *descriptor.Shell) (*descriptor.Shell, error) {
	if err := service.EnsureShell(shell); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.insertShell(shell); err != nil {
		return nil, err
	}
	return shell.Clone(), nil
}

// UpdateShell implements Repository.UpdateShell
func (s *memStore) UpdateShell(_ context.Context, id string, shell *descriptor.Shell) (*descriptor.Shell, error) {
	if err := service.EnsureIdentifier("shell", id); err != nil {
		return nil, err
	}
	if err := service.EnsureShell(shell); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.shells[id]; !ok {
		return nil, service.NewShellNotFoundError(id)
	}
	if shell.ID != id {
		if _, taken := s.shells[shell.ID]; taken {
			return nil, service.NewShellAlreadyExistsError(shell.ID)
		}
	}

	delete(s.shells, id)
	s.shells[shell.ID] = shell.Clone()
	return shell.Clone(), nil
}

// DeleteShell implements Repository.DeleteShell. Nested submodels go with the shell.
func (s *memStore) DeleteShell(_ context.Context, id string) error {
	if err := service.EnsureIdentifier("shell", id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.shells[id]; !ok {
		return service.NewShellNotFoundError(id)
	}
	delete(s.shells, id)
	return nil
}

// ListShellSubmodels implements Repository.ListShellSubmodels
func (s *memStore) ListShellSubmodels(_ context.Context, shellID string) ([]*descriptor.Submodel, error) {
	if err := service.EnsureIdentifier("shell", shellID); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	shell, ok := s.shells[shellID]
	if !ok {
		return nil, service.NewShellNotFoundError(shellID)
	}

	result := make([]*descriptor.Submodel, 0, len(shell.SubmodelDescriptors))
	for i := range shell.SubmodelDescriptors {
		result = append(result, shell.SubmodelDescriptors[i].Clone())
	}
	return result, nil
}

// GetShellSubmodel implements Repository.GetShellSubmodel
func (s *memStore) GetShellSubmodel(_ context.Context, shellID, submodelID string) (*descriptor.Submodel, error) {
	if err := ensurePair(shellID, submodelID); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	shell, idx, err := s.locateLocked(shellID, submodelID)
	if err != nil {
		return nil, err
	}
	return shell.SubmodelDescriptors[idx].Clone(), nil
}

// AddShellSubmodel implements Repository.AddShellSubmodel
func (s *memStore) AddShellSubmodel(
	_ context.Context,
	shellID string,
	submodel *descriptor.Submodel,
) (*descriptor.Submodel, error) {
	if err := service.EnsureIdentifier("shell", shellID); err != nil {
		return nil, err
	}
	if err := service.EnsureSubmodel(submodel); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	shell, ok := s.shells[shellID]
	if !ok {
		return nil, service.NewShellNotFoundError(shellID)
	}
	if shell.FindSubmodel(submodel.ID) >= 0 {
		return nil, service.NewSubmodelAlreadyExistsInShellError(shellID, submodel.ID)
	}

	shell.SubmodelDescriptors = append(shell.SubmodelDescriptors, *submodel.Clone())
	return submodel.Clone(), nil
}

// ReplaceShellSubmodel implements Repository.ReplaceShellSubmodel
func (s *memStore) ReplaceShellSubmodel(
	_ context.Context,
	shellID, submodelID string,
	submodel *descriptor.Submodel,
) (*descriptor.Submodel, error) {
	if err := ensurePair(shellID, submodelID); err != nil {
		return nil, err
	}
	if err := service.EnsureSubmodel(submodel); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	shell, idx, err := s.locateLocked(shellID, submodelID)
	if err != nil {
		return nil, err
	}
	if submodel.ID != submodelID && shell.FindSubmodel(submodel.ID) >= 0 {
		return nil, service.NewSubmodelAlreadyExistsInShellError(shellID, submodel.ID)
	}

	shell.SubmodelDescriptors[idx] = *submodel.Clone()
	return submodel.Clone(), nil
}

// DeleteShellSubmodel implements Repository.DeleteShellSubmodel
func (s *memStore) DeleteShellSubmodel(_ context.Context, shellID, submodelID string) error {
	if err := ensurePair(shellID, submodelID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	shell, idx, err := s.locateLocked(shellID, submodelID)
	if err != nil {
		return err
	}
	shell.SubmodelDescriptors = slices.Delete(shell.SubmodelDescriptors, idx, idx+1)
	return nil
}

// ListSubmodels implements Repository.ListSubmodels
func (s *memStore) ListSubmodels(_ context.Context) ([]*descriptor.Submodel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*descriptor.Submodel, 0, len(s.submodels))
	for _, id := range sortedKeys(s.submodels) {
		result = append(result, s.submodels[id].Clone())
	}
	return result, nil
}

// GetSubmodel implements Repository.GetSubmodel
func (s *memStore) GetSubmodel(_ context.Context, id string) (*descriptor.Submodel, error) {
	if err := service.EnsureIdentifier("submodel", id); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	submodel, ok := s.submodels[id]
	if !ok {
		return nil, service.NewSubmodelNotFoundError(id)
	}
	return submodel.Clone(), nil
}

// AddSubmodel implements Repository.AddSubmodel
func (s *memStore) AddSubmodel(_ context.Context, submodel *descriptor.Submodel) (*descriptor.Submodel, error) {
	if err := service.EnsureSubmodel(submodel); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.insertSubmodel(submodel); err != nil {
		return nil, err
	}
	return submodel.Clone(), nil
}

// ReplaceSubmodel implements Repository.ReplaceSubmodel
func (s *memStore) ReplaceSubmodel(
	_ context.Context,
	id string,
	submodel *descriptor.Submodel,
) (*descriptor.Submodel, error) {
	if err := service.EnsureIdentifier("submodel", id); err != nil {
		return nil, err
	}
	if err := service.EnsureSubmodel(submodel); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.submodels[id]; !ok {
		return nil, service.NewSubmodelNotFoundError(id)
	}
	if submodel.ID != id {
		if _, taken := s.submodels[submodel.ID]; taken {
			return nil, service.NewSubmodelAlreadyExistsError(submodel.ID)
		}
	}

	delete(s.submodels, id)
	s.submodels[submodel.ID] = submodel.Clone()
	return submodel.Clone(), nil
}

// DeleteSubmodel implements Repository.DeleteSubmodel
func (s *memStore) DeleteSubmodel(_ context.Context, id string) error {
	if err := service.EnsureIdentifier("submodel", id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.submodels[id]; !ok {
		return service.NewSubmodelNotFoundError(id)
	}
	delete(s.submodels, id)
	return nil
}

// insertShell stores a copy of shell. Caller must hold s.mu write lock.
func (s *memStore) insertShell(shell *descriptor.Shell) error {
	if err := service.EnsureShell(shell); err != nil {
		return err
	}
	if _, exists := s.shells[shell.ID]; exists {
		return service.NewShellAlreadyExistsError(shell.ID)
	}
	s.shells[shell.ID] = shell.Clone()
	return nil
}

// insertSubmodel stores a copy of submodel. Caller must hold s.mu write lock.
func (s *memStore) insertSubmodel(submodel *descriptor.Submodel) error {
	if err := service.EnsureSubmodel(submodel); err != nil {
		return err
	}
	if _, exists := s.submodels[submodel.ID]; exists {
		return service.NewSubmodelAlreadyExistsError(submodel.ID)
	}
	s.submodels[submodel.ID] = submodel.Clone()
	return nil
}

// locateLocked finds a nested submodel. A missing shell is reported before a missing
// submodel. Caller must hold s.mu.
func (s *memStore) locateLocked(shellID, submodelID string) (*descriptor.Shell, int, error) {
	shell, ok := s.shells[shellID]
	if !ok {
		return nil, -1, service.NewShellNotFoundError(shellID)
	}
	idx := shell.FindSubmodel(submodelID)
	if idx < 0 {
		return nil, -1, service.NewSubmodelNotFoundInShellError(shellID, submodelID)
	}
	return shell, idx, nil
}

func ensurePair(shellID, submodelID string) error {
	if err := service.EnsureIdentifier("shell", shellID); err != nil {
		return err
	}
	return service.EnsureIdentifier("submodel", submodelID)
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
