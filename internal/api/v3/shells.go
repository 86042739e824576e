package v3

import (
	"net/http"

	"github.com/stacklok/descriptor-registry-server/internal/api/common"
	"github.com/stacklok/descriptor-registry-server/internal/descriptor"
	"github.com/stacklok/descriptor-registry-server/internal/service"
)

// listShells handles GET /shell-descriptors
//
// Query parameters: assetType (encoded like identifiers), assetKind, limit, cursor.
func (routes *Routes) listShells(w http.ResponseWriter, r *http.Request) {
	params, err := common.ParsePageParams(r)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	opts := common.ListOptions[service.ListShellsOptions](params)

	query := r.URL.Query()
	if query.Has("assetType") {
		opts = append(opts, service.WithAssetType(query.Get("assetType")))
	}
	if kindStr := query.Get("assetKind"); kindStr != "" {
		kind, err := descriptor.ParseAssetKind(kindStr)
		if err != nil {
			common.WriteServiceError(w, r, service.NewInvalidArgumentError("%v", err))
			return
		}
		opts = append(opts, service.WithAssetKind(kind))
	}

	page, err := routes.service.ListShells(r.Context(), opts...)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	common.WriteJSONResponse(w, common.NewPagedResult(page), http.StatusOK)
}

// getShell handles GET /shell-descriptors/{aasIdentifier}
func (routes *Routes) getShell(w http.ResponseWriter, r *http.Request) {
	shellID, err := common.GetAndValidateURLParam(r, shellIDParam)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	shell, err := routes.service.GetShell(r.Context(), shellID)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	common.WriteJSONResponse(w, shell, http.StatusOK)
}

// createShell handles POST /shell-descriptors
func (routes *Routes) createShell(w http.ResponseWriter, r *http.Request) {
	shell, err := decodeShell(w, r)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	created, err := routes.service.CreateShell(r.Context(), shell)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	routes.created(w, r, created.ID, created)
}

// updateShell handles PUT /shell-descriptors/{aasIdentifier}
func (routes *Routes) updateShell(w http.ResponseWriter, r *http.Request) {
	shellID, err := common.GetAndValidateURLParam(r, shellIDParam)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	shell, err := decodeShell(w, r)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	if _, err := routes.service.UpdateShell(r.Context(), shellID, shell); err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// deleteShell handles DELETE /shell-descriptors/{aasIdentifier}
func (routes *Routes) deleteShell(w http.ResponseWriter, r *http.Request) {
	shellID, err := common.GetAndValidateURLParam(r, shellIDParam)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	if err := routes.service.DeleteShell(r.Context(), shellID); err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// listShellSubmodels handles GET /shell-descriptors/{aasIdentifier}/submodel-descriptors
func (routes *Routes) listShellSubmodels(w http.ResponseWriter, r *http.Request) {
	shellID, err := common.GetAndValidateURLParam(r, shellIDParam)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	params, err := common.ParsePageParams(r)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	page, err := routes.service.ListShellSubmodels(r.Context(), shellID,
		common.ListOptions[service.ListSubmodelsOptions](params)...)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	common.WriteJSONResponse(w, common.NewPagedResult(page), http.StatusOK)
}

// getShellSubmodel handles GET /shell-descriptors/{aasIdentifier}/submodel-descriptors/{submodelIdentifier}
func (routes *Routes) getShellSubmodel(w http.ResponseWriter, r *http.Request) {
	shellID, submodelID, ok := routes.pathPair(w, r)
	if !ok {
		return
	}

	submodel, err := routes.service.GetShellSubmodel(r.Context(), shellID, submodelID)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	common.WriteJSONResponse(w, submodel, http.StatusOK)
}

// createShellSubmodel handles POST /shell-descriptors/{aasIdentifier}/submodel-descriptors
func (routes *Routes) createShellSubmodel(w http.ResponseWriter, r *http.Request) {
	shellID, err := common.GetAndValidateURLParam(r, shellIDParam)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	submodel, err := decodeSubmodel(w, r)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	created, err := routes.service.CreateShellSubmodel(r.Context(), shellID, submodel)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	routes.created(w, r, created.ID, created)
}

// updateShellSubmodel handles PUT /shell-descriptors/{aasIdentifier}/submodel-descriptors/{submodelIdentifier}
func (routes *Routes) updateShellSubmodel(w http.ResponseWriter, r *http.Request) {
	shellID, submodelID, ok := routes.pathPair(w, r)
	if !ok {
		return
	}

	submodel, err := decodeSubmodel(w, r)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	if _, err := routes.service.UpdateShellSubmodel(r.Context(), shellID, submodelID, submodel); err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// deleteShellSubmodel handles DELETE /shell-descriptors/{aasIdentifier}/submodel-descriptors/{submodelIdentifier}
func (routes *Routes) deleteShellSubmodel(w http.ResponseWriter, r *http.Request) {
	shellID, submodelID, ok := routes.pathPair(w, r)
	if !ok {
		return
	}

	if err := routes.service.DeleteShellSubmodel(r.Context(), shellID, submodelID); err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathPair reads the shell and submodel identifiers of a nested route.
// It writes the error response and returns false when either is invalid.
func (*Routes) pathPair(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	shellID, err := common.GetAndValidateURLParam(r, shellIDParam)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return "", "", false
	}
	submodelID, err := common.GetAndValidateURLParam(r, submodelIDParam)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return "", "", false
	}
	return shellID, submodelID, true
}
