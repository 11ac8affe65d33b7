package content

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed fallback.yaml
var fallbackYAML []byte

var (
	fallbackOnce sync.Once
	fallback     *Catalog
	fallbackErr  error
)

// ParseCatalog decodes a catalog from YAML.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return &c, nil
}

// Fallback returns a fresh copy of the bundled catalog. The bundled file is
// part of the binary, so a parse failure is a build defect and panics.
func Fallback() *Catalog {
	fallbackOnce.Do(func() {
		fallback, fallbackErr = ParseCatalog(fallbackYAML)
	})
	if fallbackErr != nil {
		panic(fallbackErr)
	}
	return fallback.Clone()
}
