// Package schema declares resource types: which raw fields become record
// attributes, which fields hold references to other resources, and which
// dotted paths feed the search index.
package schema

import (
	"fmt"
	"sort"
)

// TypeSpec is the static declaration for one resource type. Paths use dot
// notation and may traverse repeated elements, e.g. "name.given" or
// "participant.individual".
type TypeSpec struct {
	// Attributes are the raw fields copied onto a record. Fields not
	// listed here are dropped at materialization.
	Attributes []string `yaml:"attributes"`

	// References are paths to FHIR reference objects
	// ({"reference": "Type/id"}) that become forward links.
	References []string `yaml:"references"`

	// Index are the paths whose values feed the free-text index. The
	// record id is always indexed and does not need to be listed.
	Index []string `yaml:"index"`
}

// Equal reports whether two specs declare the same fields.
func (s TypeSpec) Equal(other TypeSpec) bool {
	return equalStrings(s.Attributes, other.Attributes) &&
		equalStrings(s.References, other.References) &&
		equalStrings(s.Index, other.Index)
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Registry holds all registered type specs. Registration happens once,
// during startup; the registry is read-only afterwards.
type Registry struct {
	types map[string]TypeSpec
}

// NewRegistry returns an empty type registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]TypeSpec)}
}

// RegisterType declares a resource type. Registering the same name again
// with an identical spec is a no-op; a different spec is a configuration
// error and fails with ErrSchemaConflict.
func (r *Registry) RegisterType(name string, spec TypeSpec) error {
	if existing, ok := r.types[name]; ok {
		if existing.Equal(spec) {
			return nil
		}
		return fmt.Errorf("%w: type %q registered twice with different specs", ErrSchemaConflict, name)
	}
	r.types[name] = spec
	return nil
}

// Lookup returns the spec for a type name.
func (r *Registry) Lookup(name string) (TypeSpec, bool) {
	spec, ok := r.types[name]
	return spec, ok
}

// Types returns all registered type names, sorted.
func (r *Registry) Types() []string {
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
