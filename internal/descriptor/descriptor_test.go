package descriptor

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullShell() *Shell {
	return &Shell{
		ID:            "https://example.com/aas/1",
		IDShort:       "aas1",
		AssetType:     "https://example.com/types/pump",
		AssetKind:     AssetKindInstance,
		GlobalAssetID: "https://example.com/assets/1",
		Description:   []LangString{{Language: "en", Text: "a pump"}},
		DisplayName:   []LangString{{Language: "de", Text: "Pumpe"}},
		Administration: &AdministrativeInformation{
			Version: "1",
			Creator: &Reference{Type: "ExternalReference", Keys: []Key{{Type: "GlobalReference", Value: "me"}}},
		},
		Endpoints: []Endpoint{{
			Interface: "AAS-3.0",
			ProtocolInformation: ProtocolInformation{
				Href:                    "http://localhost/aas",
				EndpointProtocolVersion: []string{"1.1"},
				SecurityAttributes:      []SecurityAttribute{{Type: "NONE", Key: "k", Value: "v"}},
			},
		}},
		SpecificAssetIDs: []SpecificAssetID{{
			Name:       "serial",
			Value:      "123",
			SemanticID: &Reference{Type: "ExternalReference", Keys: []Key{{Type: "GlobalReference", Value: "s"}}},
		}},
		Extensions: []Extension{{Name: "x", Value: "y"}},
		SubmodelDescriptors: []Submodel{{
			ID:         "https://example.com/sm/1",
			SemanticID: &Reference{Type: "ExternalReference", Keys: []Key{{Type: "GlobalReference", Value: "sem"}}},
		}},
	}
}

func TestShellClone(t *testing.T) {
	t.Parallel()

	original := fullShell()
	clone := original.Clone()
	require.Equal(t, original, clone)

	clone.Description[0].Text = "changed"
	clone.Administration.Creator.Keys[0].Value = "changed"
	clone.Endpoints[0].ProtocolInformation.EndpointProtocolVersion[0] = "changed"
	clone.Endpoints[0].ProtocolInformation.SecurityAttributes[0].Value = "changed"
	clone.SpecificAssetIDs[0].SemanticID.Keys[0].Value = "changed"
	clone.SubmodelDescriptors[0].SemanticID.Keys[0].Value = "changed"
	clone.SubmodelDescriptors = append(clone.SubmodelDescriptors, Submodel{ID: "other"})

	assert.Equal(t, fullShell(), original)
}

func TestCloneNil(t *testing.T) {
	t.Parallel()

	var shell *Shell
	var submodel *Submodel
	var ref *Reference
	assert.Nil(t, shell.Clone())
	assert.Nil(t, submodel.Clone())
	assert.Nil(t, ref.Clone())
}

func TestShellFindSubmodel(t *testing.T) {
	t.Parallel()

	shell := &Shell{ID: "s", SubmodelDescriptors: []Submodel{{ID: "a"}, {ID: "b"}}}
	assert.Equal(t, 1, shell.FindSubmodel("b"))
	assert.Equal(t, -1, shell.FindSubmodel("c"))
	assert.Equal(t, []string{"a", "b"}, shell.SubmodelIDs())

	var nilShell *Shell
	assert.Equal(t, -1, nilShell.FindSubmodel("a"))
	assert.Nil(t, nilShell.SubmodelIDs())
}

func TestParseAssetKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    AssetKind
		wantErr bool
	}{
		{name: "canonical instance", input: "Instance", want: AssetKindInstance},
		{name: "lower case type", input: "type", want: AssetKindType},
		{name: "upper case not applicable", input: "NOTAPPLICABLE", want: AssetKindNotApplicable},
		{name: "surrounding whitespace", input: " Instance ", want: AssetKindInstance},
		{name: "unknown", input: "Template", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseAssetKind(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.False(t, got.IsValid())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestShellJSONFieldNames(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(&Shell{
		ID:                  "s",
		AssetKind:           AssetKindType,
		GlobalAssetID:       "g",
		SpecificAssetIDs:    []SpecificAssetID{{Name: "n", Value: "v"}},
		SubmodelDescriptors: []Submodel{{ID: "m"}},
	})
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "s", raw["id"])
	assert.Equal(t, "Type", raw["assetKind"])
	assert.Equal(t, "g", raw["globalAssetId"])
	assert.Contains(t, raw, "specificAssetIds")
	assert.Contains(t, raw, "submodelDescriptors")
	assert.NotContains(t, raw, "idShort")
}
