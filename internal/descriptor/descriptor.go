// Package descriptor defines the shell and submodel descriptor records held by the registry.
//
// The types mirror the Asset Administration Shell descriptor JSON representation. Beyond
// the identifier the registry treats descriptor contents as opaque: callers are expected
// to have validated the individual fields before a descriptor is submitted.
package descriptor

// Shell describes an asset administration shell and owns an ordered list of nested
// submodel descriptors.
type Shell struct {
	ID                  string                     `json:"id"`
	IDShort             string                     `json:"idShort,omitempty"`
	AssetType           string                     `json:"assetType,omitempty"`
	AssetKind           AssetKind                  `json:"assetKind,omitempty"`
	GlobalAssetID       string                     `json:"globalAssetId,omitempty"`
	Description         []LangString               `json:"description,omitempty"`
	DisplayName         []LangString               `json:"displayName,omitempty"`
	Administration      *AdministrativeInformation `json:"administration,omitempty"`
	Endpoints           []Endpoint                 `json:"endpoints,omitempty"`
	SpecificAssetIDs    []SpecificAssetID          `json:"specificAssetIds,omitempty"`
	Extensions          []Extension                `json:"extensions,omitempty"`
	SubmodelDescriptors []Submodel                 `json:"submodelDescriptors,omitempty"`
}

// Submodel describes a submodel. A submodel descriptor is either nested inside exactly
// one shell or registered standalone; the two are never linked.
type Submodel struct {
	ID                      string                     `json:"id"`
	IDShort                 string                     `json:"idShort,omitempty"`
	SemanticID              *Reference                 `json:"semanticId,omitempty"`
	SupplementalSemanticIDs []Reference                `json:"supplementalSemanticIds,omitempty"`
	Description             []LangString               `json:"description,omitempty"`
	DisplayName             []LangString               `json:"displayName,omitempty"`
	Administration          *AdministrativeInformation `json:"administration,omitempty"`
	Endpoints               []Endpoint                 `json:"endpoints,omitempty"`
	Extensions              []Extension                `json:"extensions,omitempty"`
}

// LangString is a text tagged with its language.
type LangString struct {
	Language string `json:"language"`
	Text     string `json:"text"`
}

// Key is a single element of a reference chain.
type Key struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Reference points to a model element, either externally or within the model.
type Reference struct {
	Type               string     `json:"type"`
	ReferredSemanticID *Reference `json:"referredSemanticId,omitempty"`
	Keys               []Key      `json:"keys"`
}

// AdministrativeInformation carries versioning details of an element.
type AdministrativeInformation struct {
	Version    string     `json:"version,omitempty"`
	Revision   string     `json:"revision,omitempty"`
	Creator    *Reference `json:"creator,omitempty"`
	TemplateID string     `json:"templateId,omitempty"`
}

// Endpoint tells a client where and how an interface can be reached.
type Endpoint struct {
	Interface           string              `json:"interface"`
	ProtocolInformation ProtocolInformation `json:"protocolInformation"`
}

// ProtocolInformation describes the transport of an endpoint.
type ProtocolInformation struct {
	Href                    string              `json:"href"`
	EndpointProtocol        string              `json:"endpointProtocol,omitempty"`
	EndpointProtocolVersion []string            `json:"endpointProtocolVersion,omitempty"`
	Subprotocol             string              `json:"subprotocol,omitempty"`
	SubprotocolBody         string              `json:"subprotocolBody,omitempty"`
	SubprotocolBodyEncoding string              `json:"subprotocolBodyEncoding,omitempty"`
	SecurityAttributes      []SecurityAttribute `json:"securityAttributes,omitempty"`
}

// SecurityAttribute is a single security requirement of an endpoint.
type SecurityAttribute struct {
	Type  string `json:"type"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

// SpecificAssetID is a domain specific identifier of the asset.
type SpecificAssetID struct {
	Name              string     `json:"name"`
	Value             string     `json:"value"`
	SemanticID        *Reference `json:"semanticId,omitempty"`
	ExternalSubjectID *Reference `json:"externalSubjectId,omitempty"`
}

// Extension attaches additional name/value information to an element.
type Extension struct {
	Name       string      `json:"name"`
	ValueType  string      `json:"valueType,omitempty"`
	Value      string      `json:"value,omitempty"`
	SemanticID *Reference  `json:"semanticId,omitempty"`
	RefersTo   []Reference `json:"refersTo,omitempty"`
}

// SubmodelIDs returns the ids of the nested submodel descriptors in list order.
func (s *Shell) SubmodelIDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.SubmodelDescriptors))
	for i := range s.SubmodelDescriptors {
		ids = append(ids, s.SubmodelDescriptors[i].ID)
	}
	return ids
}

// FindSubmodel returns the index of the nested submodel with the given id, or -1.
func (s *Shell) FindSubmodel(id string) int {
	if s == nil {
		return -1
	}
	for i := range s.SubmodelDescriptors {
		if s.SubmodelDescriptors[i].ID == id {
			return i
		}
	}
	return -1
}
