package formdesign

import (
	"embed"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

//go:embed adapters/*.yaml
var adapterFiles embed.FS

// Required output fields per shape
var (
	documentTypeFields = []string{"value", "label", "description"}
	designFields       = []string{"id", "name", "description", "createdDate", "status", "version"}
)

// Adapter describes one known provider payload shape: where the endpoints
// live, which wrapper keys may hold the item array, and for every output
// field the ordered member names to try.
type Adapter struct {
	Name          string    `yaml:"name"`
	Description   string    `yaml:"description"`
	Endpoints     Endpoints `yaml:"endpoints"`
	DocumentTypes ShapeSpec `yaml:"document_types"`
	Designs       ShapeSpec `yaml:"designs"`
}

// Endpoints are paths relative to the API base. {docTypeId} and
// {formDesignId} are substituted (path-escaped) at call time.
type Endpoints struct {
	DocumentTypes  string `yaml:"document_types"`
	DesignsByType  string `yaml:"designs_by_type"`
	DesignVersions string `yaml:"design_versions"`
}

// ShapeSpec is the field mapping for one list payload
type ShapeSpec struct {
	Wrappers []string            `yaml:"wrappers"`
	Fields   map[string][]string `yaml:"fields"`
}

// Candidates returns the member names to try for an output field
func (s ShapeSpec) Candidates(field string) []string {
	return s.Fields[field]
}

// Validate checks that every endpoint is set and every output field has
// at least one candidate member
func (a *Adapter) Validate() error {
	if err := validation.ValidateStruct(a,
		validation.Field(&a.Name, validation.Required),
	); err != nil {
		return err
	}
	if err := validation.ValidateStruct(&a.Endpoints,
		validation.Field(&a.Endpoints.DocumentTypes, validation.Required),
		validation.Field(&a.Endpoints.DesignsByType, validation.Required,
			validation.By(containsPlaceholder("{docTypeId}"))),
		validation.Field(&a.Endpoints.DesignVersions, validation.Required,
			validation.By(containsPlaceholder("{formDesignId}"))),
	); err != nil {
		return fmt.Errorf("endpoints: %w", err)
	}
	if err := a.DocumentTypes.validate(documentTypeFields); err != nil {
		return fmt.Errorf("document_types: %w", err)
	}
	if err := a.Designs.validate(designFields); err != nil {
		return fmt.Errorf("designs: %w", err)
	}
	return nil
}

func (s ShapeSpec) validate(required []string) error {
	for _, field := range required {
		candidates := s.Fields[field]
		if len(candidates) == 0 {
			return fmt.Errorf("field %q has no candidate members", field)
		}
		for _, c := range candidates {
			if strings.TrimSpace(c) == "" {
				return fmt.Errorf("field %q has an empty candidate member", field)
			}
		}
	}
	return nil
}

func containsPlaceholder(placeholder string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if !strings.Contains(s, placeholder) {
			return fmt.Errorf("must contain %s", placeholder)
		}
		return nil
	}
}

// Registry holds the known adapters by name
type Registry struct {
	adapters map[string]*Adapter
	mu       sync.RWMutex
}

// NewRegistry creates a registry preloaded with the embedded adapters
func NewRegistry() (*Registry, error) {
	r := &Registry{
		adapters: make(map[string]*Adapter),
	}

	entries, err := adapterFiles.ReadDir("adapters")
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded adapters: %w", err)
	}
	for _, entry := range entries {
		filename := path.Join("adapters", entry.Name())
		data, err := adapterFiles.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", filename, err)
		}
		if _, err := r.add(filename, data); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// LoadFile adds (or replaces) an adapter declared in a YAML file on disk
func (r *Registry) LoadFile(filename string) (*Adapter, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return r.add(filename, data)
}

func (r *Registry) add(filename string, data []byte) (*Adapter, error) {
	var adapter Adapter
	if err := yaml.Unmarshal(data, &adapter); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", filename, err)
	}
	if err := adapter.Validate(); err != nil {
		return nil, fmt.Errorf("invalid adapter %s: %w", filename, err)
	}

	r.mu.Lock()
	r.adapters[adapter.Name] = &adapter
	r.mu.Unlock()
	return &adapter, nil
}

// Get returns the adapter registered under name
func (r *Registry) Get(name string) (*Adapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	adapter, ok := r.adapters[name]
	if !ok {
		return nil, fmt.Errorf("unknown adapter: %s", name)
	}
	return adapter, nil
}

// Names returns the registered adapter names, sorted
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.adapters))
	for name := range r.adapters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
