package catalog

import (
	_ "embed"
	"fmt"

	"github.com/dom/wardle/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed snapshot.yaml
var bundledYAML []byte

// Bundled returns the catalog compiled into the binary.
func Bundled() (*domain.Catalog, error) {
	return parseSnapshot(bundledYAML)
}

func parseSnapshot(data []byte) (*domain.Catalog, error) {
	var cat domain.Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse bundled catalog: %w", err)
	}
	return &cat, nil
}
