package service

import (
	"context"

	"github.com/stacklok/descriptor-registry-server/internal/descriptor"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks -source=repository.go Repository

// ShellFilter restricts ListShells. Zero-valued fields do not filter; set fields are
// combined with AND.
type ShellFilter struct {
	AssetType string
	AssetKind descriptor.AssetKind
}

// Matches reports whether the shell passes the filter.
func (f ShellFilter) Matches(shell *descriptor.Shell) bool {
	if f.AssetType != "" && shell.AssetType != f.AssetType {
		return false
	}
	if f.AssetKind != "" && shell.AssetKind != f.AssetKind {
		return false
	}
	return true
}

// Repository is the storage contract shared by every descriptor store.
//
// Shells, the submodels nested in each shell, and standalone submodels form independent
// keyspaces. Every operation validates its identifiers before touching storage and fails
// with an error wrapping ErrInvalidArgument, ErrNotFound, ErrAlreadyExists or ErrStorage.
// Returned descriptors are copies; mutating them never affects stored state.
type Repository interface {
	// CheckReadiness reports whether the underlying storage can serve requests
	CheckReadiness(ctx context.Context) error

	// ListShells returns all shells matching the filter, ordered by id
	ListShells(ctx context.Context, filter ShellFilter) ([]*descriptor.Shell, error)
	// GetShell returns the shell with the given id
	GetShell(ctx context.Context, id string) (*descriptor.Shell, error)
	// CreateShell stores a new shell together with its nested submodels
	CreateShell(ctx context.Context, shell *descriptor.Shell) (*descriptor.Shell, error)
	// UpdateShell replaces the shell stored under id. The replacement may carry a different
	// id, in which case the shell is re-keyed.
	UpdateShell(ctx context.Context, id string, shell *descriptor.Shell) (*descriptor.Shell, error)
	// DeleteShell removes a shell and every submodel nested in it
	DeleteShell(ctx context.Context, id string) error

	// ListShellSubmodels returns the submodels nested in a shell in insertion order
	ListShellSubmodels(ctx context.Context, shellID string) ([]*descriptor.Submodel, error)
	// GetShellSubmodel returns a single nested submodel
	GetShellSubmodel(ctx context.Context, shellID, submodelID string) (*descriptor.Submodel, error)
	// AddShellSubmodel appends a submodel to a shell's nested list
	AddShellSubmodel(ctx context.Context, shellID string, submodel *descriptor.Submodel) (*descriptor.Submodel, error)
	// ReplaceShellSubmodel atomically replaces a nested submodel, keeping its position
	ReplaceShellSubmodel(
		ctx context.Context, shellID, submodelID string, submodel *descriptor.Submodel,
	) (*descriptor.Submodel, error)
	// DeleteShellSubmodel removes a nested submodel
	DeleteShellSubmodel(ctx context.Context, shellID, submodelID string) error

	// ListSubmodels returns all standalone submodels ordered by id
	ListSubmodels(ctx context.Context) ([]*descriptor.Submodel, error)
	// GetSubmodel returns a standalone submodel
	GetSubmodel(ctx context.Context, id string) (*descriptor.Submodel, error)
	// AddSubmodel stores a new standalone submodel
	AddSubmodel(ctx context.Context, submodel *descriptor.Submodel) (*descriptor.Submodel, error)
	// ReplaceSubmodel atomically replaces a standalone submodel
	ReplaceSubmodel(ctx context.Context, id string, submodel *descriptor.Submodel) (*descriptor.Submodel, error)
	// DeleteSubmodel removes a standalone submodel
	DeleteSubmodel(ctx context.Context, id string) error
}
