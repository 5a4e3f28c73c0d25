// Package fields maintains the set of known metadata field names offered to
// the model as filter targets. The set is loaded from a YAML file and can be
// hot-reloaded while the assistant is running.
package fields

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultNames are the metadata fields a fresh deployment knows about.
func DefaultNames() []string {
	return []string{
		"filename", "filepath", "file_size", "last_modified",
		"department", "document_type", "status", "owner",
		"access_level", "created_date",
	}
}

// Registry holds the current field names. Safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	path  string
	names []string
}

// NewRegistry returns a registry seeded with the default names.
func NewRegistry() *Registry {
	return &Registry{names: DefaultNames()}
}

// Load reads the registry from a YAML file. The file may be either a plain
// sequence of names or a mapping with a "fields" key.
func Load(path string) (*Registry, error) {
	r := &Registry{path: path}
	if err := r.reload(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Registry) reload() error {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return fmt.Errorf("failed to read fields file: %w", err)
	}

	var doc struct {
		Fields []string `yaml:"fields"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil || len(doc.Fields) == 0 {
		var plain []string
		if err2 := yaml.Unmarshal(data, &plain); err2 != nil {
			return fmt.Errorf("failed to parse fields file %s: %w", r.path, err2)
		}
		doc.Fields = plain
	}
	if len(doc.Fields) == 0 {
		return fmt.Errorf("fields file %s contains no field names", r.path)
	}

	r.mu.Lock()
	r.names = doc.Fields
	r.mu.Unlock()
	return nil
}

// Names returns a copy of the current field names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Path returns the backing file path, empty for a default registry.
func (r *Registry) Path() string {
	return r.path
}
