package schema

// Builtin returns a registry pre-loaded with the FHIR resource types the
// tool understands out of the box. Reference paths point at FHIR
// reference objects ({"reference": "Type/id"}); index paths feed the
// per-type search index.
//
// Patient and Practitioner are the searchable types. The rest exist so
// their records join the graph and show up in connection summaries.
func Builtin() *Registry {
	r := NewRegistry()

	for name, spec := range builtinTypes {
		// Specs are static; registration cannot conflict here.
		_ = r.RegisterType(name, spec)
	}

	return r
}

// demographic fields shared by the person-shaped resources.
var personAttributes = []string{
	"name", "gender", "birthDate", "address", "telecom", "identifier",
}

// clinicalAttributes are the fields most event-shaped resources carry.
var clinicalAttributes = []string{
	"status", "code", "category", "type", "period",
}

var builtinTypes = map[string]TypeSpec{
	"Patient": {
		Attributes: append([]string{"deceasedDateTime", "maritalStatus"}, personAttributes...),
		Index:      []string{"name.given", "name.family"},
	},
	"Practitioner": {
		Attributes: personAttributes,
		Index:      []string{"name.given", "name.family"},
	},
	"Encounter": {
		Attributes: clinicalAttributes,
		References: []string{"subject", "participant.individual", "serviceProvider", "location.location"},
	},
	// Group references a one-to-many (member.entity) and is referenced by
	// nothing else; it joins the graph without links, matching the
	// original dataset's treatment.
	"Group": {
		Attributes: []string{"type", "actual", "name"},
	},
	"Organization": {
		Attributes: []string{"name", "address", "telecom", "type"},
	},
	"AllergyIntolerance": {
		Attributes: clinicalAttributes,
		References: []string{"patient"},
	},
	"CarePlan": {
		Attributes: clinicalAttributes,
		References: []string{"encounter", "subject", "careTeam", "addresses", "activity.detail.location"},
	},
	"CareTeam": {
		Attributes: clinicalAttributes,
		References: []string{"encounter", "subject", "participant.role.member", "managingOrganization"},
	},
	"Claim": {
		Attributes: clinicalAttributes,
		References: []string{"patient", "provider", "prescription", "item.encounter"},
	},
	"Condition": {
		Attributes: clinicalAttributes,
		References: []string{"encounter", "subject"},
	},
	"Device": {
		Attributes: []string{"status", "type", "manufactureDate", "expirationDate"},
		References: []string{"patient"},
	},
	"DiagnosticReport": {
		Attributes: clinicalAttributes,
		References: []string{"encounter", "subject", "performer"},
	},
	"DocumentReference": {
		Attributes: clinicalAttributes,
		References: []string{"subject", "custodian", "author", "content.context"},
	},
	"ExplanationOfBenefit": {
		Attributes: clinicalAttributes,
		References: []string{
			"patient", "provider", "facility", "careTeam.provider", "claim",
			"item.encounter", "contained.subject", "contained.requester",
			"contained.performer", "contained.beneficiary",
		},
	},
	"ImagingStudy": {
		Attributes: clinicalAttributes,
		References: []string{"encounter", "subject", "location"},
	},
	"Immunization": {
		Attributes: clinicalAttributes,
		References: []string{"encounter", "patient", "location"},
	},
	"Location": {
		Attributes: []string{"name", "address", "telecom", "status"},
		References: []string{"managingOrganization"},
	},
	"Medication": {
		Attributes: []string{"code", "status"},
	},
	"MedicationAdministration": {
		Attributes: clinicalAttributes,
		References: []string{"subject", "context"},
	},
	"MedicationRequest": {
		Attributes: clinicalAttributes,
		References: []string{"encounter", "subject", "requester", "reasonReference"},
	},
	"Observation": {
		Attributes: clinicalAttributes,
		References: []string{"encounter", "subject"},
	},
	"PractitionerRole": {
		Attributes: clinicalAttributes,
		References: []string{"organization", "practitioner", "location"},
	},
	"Procedure": {
		Attributes: clinicalAttributes,
		References: []string{"encounter", "subject", "location"},
	},
	"Provenance": {
		Attributes: []string{"recorded", "activity"},
		References: []string{"target", "agent.who", "agent.onBehalfOf"},
	},
	"SupplyDelivery": {
		Attributes: clinicalAttributes,
		References: []string{"patient"},
	},
}
