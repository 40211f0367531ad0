// Package catalog loads the demo catalog from YAML.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KQAR/expandable/internal/domain"
)

//go:embed default.yaml
var defaultCatalog []byte

// Load reads a catalog from the given YAML file, or from the embedded
// default when path is empty.
func Load(path string) (*domain.Catalog, error) {
	data := defaultCatalog
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
	}

	var c domain.Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(c.Sections) == 0 {
		return nil, errors.New("catalog has no sections")
	}
	return &c, nil
}
