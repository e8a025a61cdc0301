package cli

import (
	"errors"
	"testing"

	"github.com/lrhache/fhirsearch/internal/registry"
	"github.com/lrhache/fhirsearch/internal/schema"
)

func TestCanonicalType(t *testing.T) {
	types := schema.Builtin()

	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"patient", "Patient", true},
		{"Patient", "Patient", true},
		{"PRACTITIONER", "Practitioner", true},
		{"explanationofbenefit", "ExplanationOfBenefit", true},
		{"starship", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := canonicalType(types, tt.in)
			if got != tt.want || ok != tt.ok {
				t.Errorf("canonicalType(%q) = (%q, %t), want (%q, %t)", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestReportWarnings(t *testing.T) {
	report := &registry.LoadReport{
		Loaded: 10,
		Skipped: []registry.Problem{
			{Type: "Patient", ID: "dup", Err: errors.New("duplicate record")},
		},
		Dangling: []registry.DanglingRef{
			{SourceType: "Encounter", SourceID: "e1", Slot: "subject", TargetType: "Patient", TargetID: "gone"},
		},
	}

	warnings := reportWarnings(report)
	if len(warnings) != 2 {
		t.Fatalf("got %d warnings, want 2", len(warnings))
	}
	if warnings[0].Code != WarnSkippedRecord {
		t.Errorf("warnings[0].Code = %s, want %s", warnings[0].Code, WarnSkippedRecord)
	}
	if warnings[1].Code != WarnDanglingRef {
		t.Errorf("warnings[1].Code = %s, want %s", warnings[1].Code, WarnDanglingRef)
	}
}

func TestReportWarningsEmpty(t *testing.T) {
	if got := reportWarnings(&registry.LoadReport{Loaded: 3}); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}
