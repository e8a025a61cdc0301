// Package extract implements dotted-path extraction over a record's
// attribute tree.
//
// A path like "name.given" is resolved segment by segment against nested
// maps. When a segment lands on a list, the remaining path is applied to
// every element (fan-out), so "name.given" collects the given names of
// every repeated name entry. Missing segments are not an error; they
// simply contribute nothing.
package extract

import (
	"fmt"
	"strings"
)

// Values walks fields along the dot-separated path and returns the raw
// leaf values, in document order. The result is deterministic for an
// unchanged input: calling it again yields the same values in the same
// order.
func Values(fields map[string]any, path string) []any {
	segments := strings.Split(path, ".")
	return walk(fields, segments)
}

// Strings is Values with every leaf rendered as a string. Non-scalar
// leaves (maps, lists that survived the walk) are skipped.
func Strings(fields map[string]any, path string) []string {
	var out []string
	for _, v := range Values(fields, path) {
		if s, ok := stringify(v); ok {
			out = append(out, s)
		}
	}
	return out
}

func walk(node any, segments []string) []any {
	if len(segments) == 0 {
		switch n := node.(type) {
		case nil:
			return nil
		case []any:
			// A list at the leaf fans out into its elements.
			var out []any
			for _, elem := range n {
				out = append(out, walk(elem, nil)...)
			}
			return out
		default:
			return []any{node}
		}
	}

	switch n := node.(type) {
	case map[string]any:
		child, ok := n[segments[0]]
		if !ok || child == nil {
			return nil
		}
		return walk(child, segments[1:])
	case []any:
		// Fan out: apply the current path to every element.
		var out []any
		for _, elem := range n {
			out = append(out, walk(elem, segments)...)
		}
		return out
	default:
		// Scalar reached with path segments remaining.
		return nil
	}
}

func stringify(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case bool:
		return fmt.Sprintf("%t", s), true
	case float64:
		// JSON numbers decode as float64; render integers without the
		// trailing ".0" so ids and counts read naturally.
		if s == float64(int64(s)) {
			return fmt.Sprintf("%d", int64(s)), true
		}
		return fmt.Sprintf("%g", s), true
	case int:
		return fmt.Sprintf("%d", s), true
	case int64:
		return fmt.Sprintf("%d", s), true
	default:
		return "", false
	}
}
