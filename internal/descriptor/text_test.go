package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsNUL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    any
		want bool
	}{
		{name: "nil", v: nil, want: false},
		{name: "clean shell", v: &Shell{ID: "s", IDShort: "pump", AssetKind: AssetKindType}, want: false},
		{name: "id short", v: &Shell{ID: "s", IDShort: "a\x00"}, want: true},
		{name: "asset kind", v: &Shell{ID: "s", AssetKind: AssetKind("\x00")}, want: true},
		{
			name: "description text",
			v:    &Submodel{ID: "m", Description: []LangString{{Language: "en", Text: "x\x00y"}}},
			want: true,
		},
		{
			name: "nested semantic id key",
			v: &Shell{ID: "s", SubmodelDescriptors: []Submodel{{
				ID:         "m",
				SemanticID: &Reference{Type: "ExternalReference", Keys: []Key{{Type: "GlobalReference", Value: "\x00"}}},
			}}},
			want: true,
		},
		{
			name: "endpoint protocol version",
			v: &Submodel{ID: "m", Endpoints: []Endpoint{{
				Interface:           "SUBMODEL-3.0",
				ProtocolInformation: ProtocolInformation{Href: "http://x", EndpointProtocolVersion: []string{"1.1", "\x00"}},
			}}},
			want: true,
		},
		{name: "literal backslash escape", v: &Shell{ID: "s", IDShort: `\u0000`}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ContainsNUL(tt.v))
		})
	}
}
