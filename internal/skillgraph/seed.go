package skillgraph

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

//go:embed seed.yaml
var seedYAML []byte

// g is the package-level graph singleton built from the embedded seed catalog.
var g *Graph

func init() {
	gr, err := Load(seedYAML)
	if err != nil {
		panic(fmt.Sprintf("skillgraph: embedded seed catalog is invalid: %v", err))
	}
	g = gr
}

// Default returns the graph built from the embedded seed catalog.
func Default() *Graph {
	return g
}

// Load decodes a YAML catalog and builds a validated Graph from it.
// Unknown fields are rejected so that typos in hand-edited catalogs surface early.
func Load(data []byte) (*Graph, error) {
	var c Catalog
	if err := yaml.UnmarshalWithOptions(data, &c, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(c)
}

// LoadFile reads and builds a catalog from a YAML file on disk.
func LoadFile(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	gr, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return gr, nil
}
