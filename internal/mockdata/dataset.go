// Package mockdata holds the canned type and design lists served by the
// mock routes.
package mockdata

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"dms/internal/domain/models"
)

//go:embed data/*.yaml
var dataFiles embed.FS

// Dataset is the loaded, read-only mock data
type Dataset struct {
	types   []models.DocumentType
	designs map[string][]models.DocumentDesignData
}

// Load reads the embedded YAML files
func Load() (*Dataset, error) {
	ds := &Dataset{}

	if err := readYAML("data/document_types.yaml", &ds.types); err != nil {
		return nil, err
	}
	if err := readYAML("data/document_designs.yaml", &ds.designs); err != nil {
		return nil, err
	}

	if len(ds.types) == 0 || !ds.types[0].IsUnselected() {
		return nil, fmt.Errorf("document_types.yaml must start with the unselected option")
	}
	return ds, nil
}

func readYAML(filename string, dest interface{}) error {
	data, err := dataFiles.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", filename, err)
	}
	return nil
}

// DocumentTypes returns a copy of the type list, unselected option first
func (d *Dataset) DocumentTypes() []models.DocumentType {
	out := make([]models.DocumentType, len(d.types))
	copy(out, d.types)
	return out
}

// DocumentDesigns returns a copy of the designs for a type. Unknown types
// yield an empty, non-nil slice.
func (d *Dataset) DocumentDesigns(docType string) []models.DocumentDesignData {
	src := d.designs[docType]
	out := make([]models.DocumentDesignData, len(src))
	copy(out, src)
	return out
}
