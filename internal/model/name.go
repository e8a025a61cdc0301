package model

import "strings"

// FullName renders a human name for person-shaped records (Patient,
// Practitioner). FHIR names repeat; the entry with use "official" wins,
// otherwise the first entry is used. Records without a name field return
// the empty string.
func (r *Record) FullName() string {
	names, ok := r.Fields["name"].([]any)
	if !ok || len(names) == 0 {
		return ""
	}

	entry := pickName(names)
	if entry == nil {
		return ""
	}

	var parts []string
	if given, ok := entry["given"].([]any); ok {
		for _, g := range given {
			if s, ok := g.(string); ok {
				parts = append(parts, s)
			}
		}
	}
	if family, ok := entry["family"].(string); ok {
		parts = append(parts, family)
	}
	return strings.Join(parts, " ")
}

func pickName(names []any) map[string]any {
	var first map[string]any
	for _, n := range names {
		entry, ok := n.(map[string]any)
		if !ok {
			continue
		}
		if first == nil {
			first = entry
		}
		if use, _ := entry["use"].(string); use == "official" {
			return entry
		}
	}
	return first
}
