package templates

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
)

// Catalog declares extra templates derived from registered ones
type Catalog struct {
	Templates []CatalogEntry `yaml:"templates"`
}

// CatalogEntry derives template ID from Base with Overrides applied
type CatalogEntry struct {
	ID        string         `yaml:"id"`
	Base      string         `yaml:"base"`
	Default   bool           `yaml:"default"`
	Overrides map[string]any `yaml:"overrides"`
}

// LoadCatalog parses a YAML catalog
func LoadCatalog(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	seen := make(map[string]bool, len(c.Templates))
	for i, t := range c.Templates {
		if t.ID == "" {
			return nil, fmt.Errorf("catalog entry %d: id is required", i)
		}
		if t.Base == "" {
			return nil, fmt.Errorf("catalog entry %q: base is required", t.ID)
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("catalog entry %q: duplicate id", t.ID)
		}
		seen[t.ID] = true
	}
	return &c, nil
}

// LoadCatalogFile parses a YAML catalog file
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return LoadCatalog(f)
}

// Apply registers every catalog entry in order, so entries may build on earlier ones
func (c *Catalog) Apply(r *Registry) error {
	for _, t := range c.Templates {
		if err := r.Derive(t.ID, t.Base, t.Overrides, t.Default); err != nil {
			return fmt.Errorf("catalog entry %q: %w", t.ID, err)
		}
	}
	return nil
}
