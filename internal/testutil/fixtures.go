// Package testutil provides raw-resource fixtures shared by tests.
package testutil

// Patient builds a raw Patient resource with one official name.
func Patient(id string, given []string, family string) map[string]any {
	names := make([]any, 0, len(given))
	givenAny := make([]any, 0, len(given))
	for _, g := range given {
		givenAny = append(givenAny, g)
	}
	names = append(names, map[string]any{
		"use":    "official",
		"given":  givenAny,
		"family": family,
	})

	return map[string]any{
		"resourceType": "Patient",
		"id":           id,
		"gender":       "unknown",
		"name":         names,
	}
}

// Practitioner builds a raw Practitioner resource.
func Practitioner(id string, given []string, family string) map[string]any {
	raw := Patient(id, given, family)
	raw["resourceType"] = "Practitioner"
	return raw
}

// Encounter builds a raw Encounter referencing a patient and, optionally,
// a practitioner participant.
func Encounter(id, patientID, practitionerID string) map[string]any {
	raw := map[string]any{
		"resourceType": "Encounter",
		"id":           id,
		"status":       "finished",
		"subject":      Reference("Patient/" + patientID),
	}
	if practitionerID != "" {
		raw["participant"] = []any{
			map[string]any{"individual": Reference("Practitioner/" + practitionerID)},
		}
	}
	return raw
}

// Observation builds a raw Observation referencing a patient and an
// encounter.
func Observation(id, patientID, encounterID string) map[string]any {
	return map[string]any{
		"resourceType": "Observation",
		"id":           id,
		"status":       "final",
		"subject":      Reference("Patient/" + patientID),
		"encounter":    Reference("Encounter/" + encounterID),
	}
}

// Reference builds a FHIR reference object for "Type/id".
func Reference(ref string) map[string]any {
	return map[string]any{"reference": ref}
}
