// Package v3 provides the descriptor registry API v3.0 endpoints for shell and
// submodel descriptors.
package v3

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stacklok/descriptor-registry-server/internal/api/common"
	"github.com/stacklok/descriptor-registry-server/internal/descriptor"
	"github.com/stacklok/descriptor-registry-server/internal/service"
)

const (
	shellIDParam    = "aasIdentifier"
	submodelIDParam = "submodelIdentifier"
)

// Routes handles HTTP requests for the registry API v3.0 endpoints.
type Routes struct {
	service service.RegistryService
	codec   service.IdentifierCodec
}

// NewRoutes creates a new Routes instance. The codec encodes identifiers in the
// Location header of created resources and must match the codec of the service.
func NewRoutes(svc service.RegistryService, codec service.IdentifierCodec) *Routes {
	if codec == nil {
		codec = service.Base64URLCodec{}
	}
	return &Routes{
		service: svc,
		codec:   codec,
	}
}

// Router creates and configures the HTTP router for registry API v3.0 endpoints.
func Router(svc service.RegistryService, codec service.IdentifierCodec) http.Handler {
	routes := NewRoutes(svc, codec)

	r := chi.NewRouter()

	r.Get("/description", routes.getDescription)

	r.Route("/shell-descriptors", func(r chi.Router) {
		r.Get("/", routes.listShells)
		r.Post("/", routes.createShell)
		r.Route("/{aasIdentifier}", func(r chi.Router) {
			r.Get("/", routes.getShell)
			r.Put("/", routes.updateShell)
			r.Delete("/", routes.deleteShell)

			r.Get("/submodel-descriptors", routes.listShellSubmodels)
			r.Post("/submodel-descriptors", routes.createShellSubmodel)
			r.Route("/submodel-descriptors/{submodelIdentifier}", func(r chi.Router) {
				r.Get("/", routes.getShellSubmodel)
				r.Put("/", routes.updateShellSubmodel)
				r.Delete("/", routes.deleteShellSubmodel)
			})
		})
	})

	r.Route("/submodel-descriptors", func(r chi.Router) {
		r.Get("/", routes.listSubmodels)
		r.Post("/", routes.createSubmodel)
		r.Route("/{submodelIdentifier}", func(r chi.Router) {
			r.Get("/", routes.getSubmodel)
			r.Put("/", routes.updateSubmodel)
			r.Delete("/", routes.deleteSubmodel)
		})
	})

	return r
}

// getDescription handles GET /description
func (routes *Routes) getDescription(w http.ResponseWriter, r *http.Request) {
	common.WriteJSONResponse(w, routes.service.Description(r.Context()), http.StatusOK)
}

// created writes a 201 response whose Location points at the new resource
func (routes *Routes) created(w http.ResponseWriter, r *http.Request, id string, body any) {
	w.Header().Set("Location", common.Location(r, routes.codec.Encode(id)))
	common.WriteJSONResponse(w, body, http.StatusCreated)
}

// decodeShell reads a shell descriptor from the request body
func decodeShell(w http.ResponseWriter, r *http.Request) (*descriptor.Shell, error) {
	var shell descriptor.Shell
	if err := common.DecodeJSONBody(w, r, &shell); err != nil {
		return nil, err
	}
	return &shell, nil
}

// decodeSubmodel reads a submodel descriptor from the request body
func decodeSubmodel(w http.ResponseWriter, r *http.Request) (*descriptor.Submodel, error) {
	var submodel descriptor.Submodel
	if err := common.DecodeJSONBody(w, r, &submodel); err != nil {
		return nil, err
	}
	return &submodel, nil
}
