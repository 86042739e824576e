// Package service provides the business logic of the descriptor registry: the storage
// contract shared by all backends, the pager and the registry service facade.
package service

import (
	"context"
	"fmt"

	"github.com/stacklok/descriptor-registry-server/internal/descriptor"
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks -source=service.go RegistryService

// RegistryService defines the interface for registry operations. Identifiers passed to
// it are in transport form and are decoded before they reach the repository.
type RegistryService interface {
	// CheckReadiness checks if the service is ready to serve requests
	CheckReadiness(ctx context.Context) error

	// Description returns the service profiles supported by the registry
	Description(ctx context.Context) *ServiceDescription

	// ListShells returns a page of shells
	ListShells(ctx context.Context, opts ...Option[ListShellsOptions]) (*Page[*descriptor.Shell], error)
	// GetShell returns a shell
	GetShell(ctx context.Context, shellID string) (*descriptor.Shell, error)
	// CreateShell registers a new shell
	CreateShell(ctx context.Context, shell *descriptor.Shell) (*descriptor.Shell, error)
	// UpdateShell replaces a shell
	UpdateShell(ctx context.Context, shellID string, shell *descriptor.Shell) (*descriptor.Shell, error)
	// DeleteShell removes a shell and its nested submodels
	DeleteShell(ctx context.Context, shellID string) error

	// ListShellSubmodels returns a page of the submodels nested in a shell
	ListShellSubmodels(
		ctx context.Context, shellID string, opts ...Option[ListSubmodelsOptions],
	) (*Page[*descriptor.Submodel], error)
	// GetShellSubmodel returns a nested submodel
	GetShellSubmodel(ctx context.Context, shellID, submodelID string) (*descriptor.Submodel, error)
	// CreateShellSubmodel adds a submodel to a shell
	CreateShellSubmodel(ctx context.Context, shellID string, submodel *descriptor.Submodel) (*descriptor.Submodel, error)
	// UpdateShellSubmodel replaces a nested submodel
	UpdateShellSubmodel(
		ctx context.Context, shellID, submodelID string, submodel *descriptor.Submodel,
	) (*descriptor.Submodel, error)
	// DeleteShellSubmodel removes a nested submodel
	DeleteShellSubmodel(ctx context.Context, shellID, submodelID string) error

	// ListSubmodels returns a page of standalone submodels
	ListSubmodels(ctx context.Context, opts ...Option[ListSubmodelsOptions]) (*Page[*descriptor.Submodel], error)
	// GetSubmodel returns a standalone submodel
	GetSubmodel(ctx context.Context, submodelID string) (*descriptor.Submodel, error)
	// CreateSubmodel registers a standalone submodel
	CreateSubmodel(ctx context.Context, submodel *descriptor.Submodel) (*descriptor.Submodel, error)
	// UpdateSubmodel replaces a standalone submodel
	UpdateSubmodel(ctx context.Context, submodelID string, submodel *descriptor.Submodel) (*descriptor.Submodel, error)
	// DeleteSubmodel removes a standalone submodel
	DeleteSubmodel(ctx context.Context, submodelID string) error
}

// Option is a function that sets an option for the ListShells or ListSubmodels operations
type Option[T ListShellsOptions | ListSubmodelsOptions] func(*T) error

// ListShellsOptions is the options for the ListShells operation
type ListShellsOptions struct {
	Page      PageRequest
	AssetType *string
	AssetKind descriptor.AssetKind
}

// ListSubmodelsOptions is the options for the ListShellSubmodels and ListSubmodels operations
type ListSubmodelsOptions struct {
	Page PageRequest
}

// WithCursor sets the cursor of a list operation. The value is checked by the pager.
func WithCursor[T ListShellsOptions | ListSubmodelsOptions](cursor string) Option[T] {
	return func(o *T) error {
		switch o := any(o).(type) {
		case *ListShellsOptions:
			o.Page.Cursor = &cursor
		case *ListSubmodelsOptions:
			o.Page.Cursor = &cursor
		default:
			return fmt.Errorf("invalid option type: %T", o)
		}
		return nil
	}
}

// WithLimit sets the page size of a list operation. The value is checked by the pager.
func WithLimit[T ListShellsOptions | ListSubmodelsOptions](limit int) Option[T] {
	return func(o *T) error {
		switch o := any(o).(type) {
		case *ListShellsOptions:
			o.Page.Limit = &limit
		case *ListSubmodelsOptions:
			o.Page.Limit = &limit
		default:
			return fmt.Errorf("invalid option type: %T", o)
		}
		return nil
	}
}

// WithAssetType restricts ListShells to shells of the given asset type.
// The asset type is passed in transport form.
func WithAssetType(assetType string) Option[ListShellsOptions] {
	return func(o *ListShellsOptions) error {
		if assetType == "" {
			return NewInvalidArgumentError("asset type must not be empty")
		}
		o.AssetType = &assetType
		return nil
	}
}

// WithAssetKind restricts ListShells to shells of the given asset kind.
func WithAssetKind(kind descriptor.AssetKind) Option[ListShellsOptions] {
	return func(o *ListShellsOptions) error {
		if !kind.IsValid() {
			return NewInvalidArgumentError("invalid asset kind: %s", kind)
		}
		o.AssetKind = kind
		return nil
	}
}

const (
	// ProfileAASRegistryFull is the full asset administration shell registry profile
	ProfileAASRegistryFull = "https://admin-shell.io/aas/API/3/0/AssetAdministrationShellRegistryServiceSpecification/SSP-001"
	// ProfileSubmodelRegistryFull is the full submodel registry profile
	ProfileSubmodelRegistryFull = "https://admin-shell.io/aas/API/3/0/SubmodelRegistryServiceSpecification/SSP-001"
)

// ServiceDescription lists the service profiles implemented by the registry.
//
//nolint:revive // Named after the description object it is served as
type ServiceDescription struct {
	Profiles []string `json:"profiles"`
}
