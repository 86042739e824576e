package v3

import (
	"net/http"

	"github.com/stacklok/descriptor-registry-server/internal/api/common"
	"github.com/stacklok/descriptor-registry-server/internal/service"
)

// listSubmodels handles GET /submodel-descriptors
func (routes *Routes) listSubmodels(w http.ResponseWriter, r *http.Request) {
	params, err := common.ParsePageParams(r)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	page, err := routes.service.ListSubmodels(r.Context(), common.ListOptions[service.ListSubmodelsOptions](params)...)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	common.WriteJSONResponse(w, common.NewPagedResult(page), http.StatusOK)
}

// getSubmodel handles GET /submodel-descriptors/{submodelIdentifier}
func (routes *Routes) getSubmodel(w http.ResponseWriter, r *http.Request) {
	submodelID, err := common.GetAndValidateURLParam(r, submodelIDParam)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	submodel, err := routes.service.GetSubmodel(r.Context(), submodelID)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	common.WriteJSONResponse(w, submodel, http.StatusOK)
}

// createSubmodel handles POST /submodel-descriptors
func (routes *Routes) createSubmodel(w http.ResponseWriter, r *http.Request) {
	submodel, err := decodeSubmodel(w, r)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	created, err := routes.service.CreateSubmodel(r.Context(), submodel)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	routes.created(w, r, created.ID, created)
}

// updateSubmodel handles PUT /submodel-descriptors/{submodelIdentifier}
func (routes *Routes) updateSubmodel(w http.ResponseWriter, r *http.Request) {
	submodelID, err := common.GetAndValidateURLParam(r, submodelIDParam)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	submodel, err := decodeSubmodel(w, r)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	if _, err := routes.service.UpdateSubmodel(r.Context(), submodelID, submodel); err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// deleteSubmodel handles DELETE /submodel-descriptors/{submodelIdentifier}
func (routes *Routes) deleteSubmodel(w http.ResponseWriter, r *http.Request) {
	submodelID, err := common.GetAndValidateURLParam(r, submodelIDParam)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	if err := routes.service.DeleteSubmodel(r.Context(), submodelID); err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
