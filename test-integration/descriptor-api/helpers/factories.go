package helpers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/onsi/gomega"
	"sigs.k8s.io/yaml"

	"github.com/stacklok/descriptor-registry-server/internal/descriptor"
)

// NewShell creates a shell descriptor with one endpoint and the given nested submodels
func NewShell(id, assetType string, kind descriptor.AssetKind, submodels ...descriptor.Submodel) *descriptor.Shell {
	return &descriptor.Shell{
		ID:        id,
		IDShort:   "shell",
		AssetType: assetType,
		AssetKind: kind,
		Endpoints: []descriptor.Endpoint{{
			Interface: "AAS-3.0",
			ProtocolInformation: descriptor.ProtocolInformation{
				Href: "https://aas.example.com/shells/" + Encode(id),
			},
		}},
		SubmodelDescriptors: submodels,
	}
}

// NewSubmodel creates a submodel descriptor with one endpoint
func NewSubmodel(id string) descriptor.Submodel {
	return descriptor.Submodel{
		ID:      id,
		IDShort: "submodel",
		Endpoints: []descriptor.Endpoint{{
			Interface: "SUBMODEL-3.0",
			ProtocolInformation: descriptor.ProtocolInformation{
				Href: "https://aas.example.com/submodels/" + Encode(id),
			},
		}},
	}
}

// NumberedShells creates n shells with ids urn:it:shell:0 ... urn:it:shell:n-1
func NumberedShells(n int) []*descriptor.Shell {
	shells := make([]*descriptor.Shell, 0, n)
	for i := range n {
		shells = append(shells, NewShell(fmt.Sprintf("urn:it:shell:%d", i), "pump", descriptor.AssetKindInstance))
	}
	return shells
}

// WriteSeedYAML writes a seed document with the given descriptors and returns its path
func WriteSeedYAML(dir string, shells []*descriptor.Shell, submodels []*descriptor.Submodel) string {
	doc := map[string]any{}
	if len(shells) > 0 {
		doc["shells"] = shells
	}
	if len(submodels) > 0 {
		doc["submodels"] = submodels
	}
	data, err := yaml.Marshal(doc)
	gomega.Expect(err).NotTo(gomega.HaveOccurred())

	path := filepath.Join(dir, "seed.yaml")
	gomega.Expect(os.WriteFile(path, data, 0600)).To(gomega.Succeed())
	return path
}
