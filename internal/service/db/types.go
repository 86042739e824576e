package database

import (
	"encoding/json"

	"github.com/stacklok/descriptor-registry-server/internal/db/sqlc"
	"github.com/stacklok/descriptor-registry-server/internal/descriptor"
	"github.com/stacklok/descriptor-registry-server/internal/service"
)

// Shell rows store the descriptor without its nested submodels, which live in
// shell_submodel_descriptor rows of their own. The helpers below move descriptors
// between both representations.

func marshalShell(shell *descriptor.Shell) ([]byte, error) {
	stripped := *shell
	stripped.SubmodelDescriptors = nil
	payload, err := json.Marshal(&stripped)
	if err != nil {
		return nil, service.NewStorageError("encode shell", err)
	}
	return payload, nil
}

func marshalSubmodel(submodel *descriptor.Submodel) ([]byte, error) {
	payload, err := json.Marshal(submodel)
	if err != nil {
		return nil, service.NewStorageError("encode submodel", err)
	}
	return payload, nil
}

func shellFromRow(row sqlc.ShellDescriptor, nested []sqlc.ShellSubmodelDescriptor) (*descriptor.Shell, error) {
	shell := &descriptor.Shell{}
	if err := json.Unmarshal(row.Payload, shell); err != nil {
		return nil, service.NewStorageError("decode shell", err)
	}
	shell.ID = row.ID
	shell.SubmodelDescriptors = nil

	for _, n := range nested {
		submodel, err := nestedFromRow(n)
		if err != nil {
			return nil, err
		}
		shell.SubmodelDescriptors = append(shell.SubmodelDescriptors, *submodel)
	}
	return shell, nil
}

func nestedFromRow(row sqlc.ShellSubmodelDescriptor) (*descriptor.Submodel, error) {
	return decodeSubmodel(row.ID, row.Payload)
}

func submodelFromRow(row sqlc.SubmodelDescriptor) (*descriptor.Submodel, error) {
	return decodeSubmodel(row.ID, row.Payload)
}

func decodeSubmodel(id string, payload []byte) (*descriptor.Submodel, error) {
	submodel := &descriptor.Submodel{}
	if err := json.Unmarshal(payload, submodel); err != nil {
		return nil, service.NewStorageError("decode submodel", err)
	}
	submodel.ID = id
	return submodel, nil
}

// optional maps the empty string to SQL NULL
func optional[T ~string](v T) *string {
	if v == "" {
		return nil
	}
	s := string(v)
	return &s
}
