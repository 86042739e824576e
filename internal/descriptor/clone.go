package descriptor

import "slices"

// Clone returns a deep copy of the shell, including its nested submodel descriptors.
func (s *Shell) Clone() *Shell {
	if s == nil {
		return nil
	}
	out := *s
	out.Description = slices.Clone(s.Description)
	out.DisplayName = slices.Clone(s.DisplayName)
	out.Administration = s.Administration.clone()
	out.Endpoints = cloneEndpoints(s.Endpoints)
	out.Extensions = cloneExtensions(s.Extensions)
	if s.SpecificAssetIDs != nil {
		out.SpecificAssetIDs = make([]SpecificAssetID, len(s.SpecificAssetIDs))
		for i, id := range s.SpecificAssetIDs {
			id.SemanticID = id.SemanticID.Clone()
			id.ExternalSubjectID = id.ExternalSubjectID.Clone()
			out.SpecificAssetIDs[i] = id
		}
	}
	if s.SubmodelDescriptors != nil {
		out.SubmodelDescriptors = make([]Submodel, len(s.SubmodelDescriptors))
		for i := range s.SubmodelDescriptors {
			out.SubmodelDescriptors[i] = *s.SubmodelDescriptors[i].Clone()
		}
	}
	return &out
}

// Clone returns a deep copy of the submodel descriptor.
func (s *Submodel) Clone() *Submodel {
	if s == nil {
		return nil
	}
	out := *s
	out.SemanticID = s.SemanticID.Clone()
	out.SupplementalSemanticIDs = cloneReferences(s.SupplementalSemanticIDs)
	out.Description = slices.Clone(s.Description)
	out.DisplayName = slices.Clone(s.DisplayName)
	out.Administration = s.Administration.clone()
	out.Endpoints = cloneEndpoints(s.Endpoints)
	out.Extensions = cloneExtensions(s.Extensions)
	return &out
}

// Clone returns a deep copy of the reference.
func (r *Reference) Clone() *Reference {
	if r == nil {
		return nil
	}
	out := *r
	out.Keys = slices.Clone(r.Keys)
	out.ReferredSemanticID = r.ReferredSemanticID.Clone()
	return &out
}

func (a *AdministrativeInformation) clone() *AdministrativeInformation {
	if a == nil {
		return nil
	}
	out := *a
	out.Creator = a.Creator.Clone()
	return &out
}

func cloneReferences(refs []Reference) []Reference {
	if refs == nil {
		return nil
	}
	out := make([]Reference, len(refs))
	for i := range refs {
		out[i] = *refs[i].Clone()
	}
	return out
}

func cloneEndpoints(endpoints []Endpoint) []Endpoint {
	if endpoints == nil {
		return nil
	}
	out := make([]Endpoint, len(endpoints))
	for i, e := range endpoints {
		e.ProtocolInformation.EndpointProtocolVersion = slices.Clone(e.ProtocolInformation.EndpointProtocolVersion)
		e.ProtocolInformation.SecurityAttributes = slices.Clone(e.ProtocolInformation.SecurityAttributes)
		out[i] = e
	}
	return out
}

func cloneExtensions(extensions []Extension) []Extension {
	if extensions == nil {
		return nil
	}
	out := make([]Extension, len(extensions))
	for i, e := range extensions {
		e.SemanticID = e.SemanticID.Clone()
		e.RefersTo = cloneReferences(e.RefersTo)
		out[i] = e
	}
	return out
}
