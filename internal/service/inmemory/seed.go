package inmemory

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/tailscale/hujson"
	"sigs.k8s.io/yaml"

	"github.com/stacklok/descriptor-registry-server/internal/descriptor"
)

//go:embed schema/seed.schema.json
var seedSchemaJSON []byte

const seedSchemaURL = "https://github.com/stacklok/descriptor-registry-server/seed.schema.json"

var (
	seedSchemaOnce sync.Once
	seedSchema     *jsonschema.Schema
	seedSchemaErr  error
)

// Seed is a document of descriptors a memory store is started with
type Seed struct {
	Shells    []*descriptor.Shell    `json:"shells,omitempty"`
	Submodels []*descriptor.Submodel `json:"submodels,omitempty"`
}

// LoadSeedFile reads a seed document. Files ending in .yaml or .yml are parsed as
// YAML; anything else as JSON, which may contain comments and trailing commas.
func LoadSeedFile(path string) (*Seed, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed *Seed
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		seed, err = ParseSeedYAML(data)
	default:
		seed, err = ParseSeedJSON(data)
	}
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}

	slog.Info("Loaded seed file",
		"path", path,
		"shells", len(seed.Shells),
		"submodels", len(seed.Submodels))
	return seed, nil
}

// ParseSeedYAML parses a YAML seed document
func ParseSeedYAML(data []byte) (*Seed, error) {
	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return decodeSeed(jsonData)
}

// ParseSeedJSON parses a JSON seed document. Comments and trailing commas are accepted.
func ParseSeedJSON(data []byte) (*Seed, error) {
	standard, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return decodeSeed(standard)
}

// WithSeed seeds the store with every descriptor in seed
func WithSeed(seed *Seed) Option {
	return func(s *memStore) error {
		if seed == nil {
			return nil
		}
		if err := WithShells(seed.Shells...)(s); err != nil {
			return err
		}
		return WithSubmodels(seed.Submodels...)(s)
	}
}

func decodeSeed(jsonData []byte) (*Seed, error) {
	schema, err := compiledSeedSchema()
	if err != nil {
		return nil, err
	}

	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(instance); err != nil {
		return nil, fmt.Errorf("does not match the seed schema: %w", err)
	}

	var seed Seed
	if err := json.Unmarshal(jsonData, &seed); err != nil {
		return nil, fmt.Errorf("failed to decode descriptors: %w", err)
	}
	return &seed, nil
}

func compiledSeedSchema() (*jsonschema.Schema, error) {
	seedSchemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(seedSchemaJSON))
		if err != nil {
			seedSchemaErr = fmt.Errorf("failed to parse seed schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(seedSchemaURL, doc); err != nil {
			seedSchemaErr = fmt.Errorf("failed to load seed schema: %w", err)
			return
		}
		seedSchema, seedSchemaErr = compiler.Compile(seedSchemaURL)
	})
	return seedSchema, seedSchemaErr
}
