package schema

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Overlay is an optional schema.yaml that adds resource types (or re-declares
// built-ins, which must match exactly). It lets a deployment index extra
// fields without recompiling.
//
//	types:
//	  Specimen:
//	    references: [subject]
//	    index: [accessionIdentifier.value]
type Overlay struct {
	Types map[string]TypeSpec `yaml:"types"`
}

// LoadOverlay parses a schema overlay file.
func LoadOverlay(path string) (*Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema overlay: %w", err)
	}

	var o Overlay
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("failed to parse schema overlay: %w", err)
	}
	return &o, nil
}

// Apply registers every overlay type on the registry. Re-declaring a
// built-in with a different spec surfaces as ErrSchemaConflict, same as
// conflicting code registration.
func (o *Overlay) Apply(r *Registry) error {
	for _, name := range sortedKeys(o.Types) {
		if err := r.RegisterType(name, o.Types[name]); err != nil {
			return err
		}
	}
	return nil
}

// sortedKeys gives a deterministic registration order so conflict errors
// are stable.
func sortedKeys(m map[string]TypeSpec) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
