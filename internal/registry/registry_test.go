package registry

import (
	"errors"
	"testing"

	"github.com/lrhache/fhirsearch/internal/schema"
	"github.com/lrhache/fhirsearch/internal/testutil"
)

func newRegistry(t *testing.T) *Registry {
	t.Helper()
	return New(schema.Builtin())
}

func TestMaterialize(t *testing.T) {
	t.Run("materialize then get", func(t *testing.T) {
		reg := newRegistry(t)

		raw := testutil.Patient("aaa01", []string{"Zoe", "Zebra"}, "Aberi")
		rec, err := reg.Materialize(raw)
		if err != nil {
			t.Fatalf("Materialize failed: %v", err)
		}

		got := reg.Get("Patient", "aaa01")
		if got != rec {
			t.Fatal("Get did not return the materialized record")
		}
		if got.ID != "aaa01" || got.Type != "Patient" {
			t.Errorf("got (%s, %s), want (aaa01, Patient)", got.ID, got.Type)
		}
		if got.Fields["gender"] != "unknown" {
			t.Errorf("declared field not copied: %v", got.Fields)
		}
	})

	t.Run("get is case-insensitive", func(t *testing.T) {
		reg := newRegistry(t)
		if _, err := reg.Materialize(testutil.Patient("AAI03", []string{"Yoe"}, "Aber")); err != nil {
			t.Fatal(err)
		}
		if reg.Get("Patient", "aai03") == nil {
			t.Error("lowercased lookup missed")
		}
		if reg.Get("Patient", "AAI03") == nil {
			t.Error("original-case lookup missed")
		}
	})

	t.Run("undeclared fields are dropped", func(t *testing.T) {
		reg := newRegistry(t)
		raw := testutil.Patient("p1", []string{"A"}, "B")
		raw["somethingUnexpected"] = "value"

		rec, err := reg.Materialize(raw)
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := rec.Fields["somethingUnexpected"]; ok {
			t.Error("undeclared field was copied")
		}
	})

	t.Run("numeric id", func(t *testing.T) {
		reg := newRegistry(t)
		raw := testutil.Patient("", nil, "")
		raw["id"] = float64(4)

		rec, err := reg.Materialize(raw)
		if err != nil {
			t.Fatal(err)
		}
		if rec.ID != "4" {
			t.Errorf("got id %q, want %q", rec.ID, "4")
		}
		if reg.Get("Patient", "4") == nil {
			t.Error("numeric id not retrievable")
		}
	})

	t.Run("missing id", func(t *testing.T) {
		reg := newRegistry(t)
		_, err := reg.Materialize(map[string]any{"resourceType": "Patient"})
		if !errors.Is(err, ErrMissingID) {
			t.Errorf("got %v, want ErrMissingID", err)
		}
	})

	t.Run("missing resourceType", func(t *testing.T) {
		reg := newRegistry(t)
		_, err := reg.Materialize(map[string]any{"id": "x"})
		if !errors.Is(err, ErrMissingType) {
			t.Errorf("got %v, want ErrMissingType", err)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		reg := newRegistry(t)
		_, err := reg.Materialize(map[string]any{"resourceType": "Starship", "id": "x"})
		if !errors.Is(err, ErrUnknownType) {
			t.Errorf("got %v, want ErrUnknownType", err)
		}
	})

	t.Run("duplicate id keeps first record", func(t *testing.T) {
		reg := newRegistry(t)
		first, err := reg.Materialize(testutil.Patient("dup", []string{"First"}, "One"))
		if err != nil {
			t.Fatal(err)
		}

		_, err = reg.Materialize(testutil.Patient("dup", []string{"Second"}, "Two"))
		if !errors.Is(err, ErrDuplicate) {
			t.Fatalf("got %v, want ErrDuplicate", err)
		}
		if reg.Get("Patient", "dup") != first {
			t.Error("duplicate overwrote the first record")
		}
	})
}

func TestRecordsOf(t *testing.T) {
	reg := newRegistry(t)
	for _, id := range []string{"ccc", "aaa", "bbb"} {
		if _, err := reg.Materialize(testutil.Patient(id, []string{"X"}, "Y")); err != nil {
			t.Fatal(err)
		}
	}

	recs := reg.RecordsOf("Patient")
	if len(recs) != 3 {
		t.Fatalf("got %d records, want 3", len(recs))
	}
	for i, want := range []string{"aaa", "bbb", "ccc"} {
		if recs[i].ID != want {
			t.Errorf("recs[%d].ID = %q, want %q", i, recs[i].ID, want)
		}
	}
}
