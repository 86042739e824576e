package app

import (
	"github.com/stacklok/descriptor-registry-server/internal/service"
)

// AppComponents groups all application components
//
//nolint:revive // This name is fine
type AppComponents struct {
	// Repository stores the descriptors
	Repository service.Repository

	// RegistryService provides registry business logic
	RegistryService service.RegistryService
}
