package search

import (
	"testing"

	"github.com/lrhache/fhirsearch/internal/index"
	"github.com/lrhache/fhirsearch/internal/registry"
	"github.com/lrhache/fhirsearch/internal/schema"
	"github.com/lrhache/fhirsearch/internal/testutil"
)

func newEngine(t *testing.T, limit int, batch ...map[string]any) *Engine {
	t.Helper()
	reg := registry.New(schema.Builtin())
	report := reg.LoadBatch(batch)
	if len(report.Skipped) != 0 {
		t.Fatalf("unexpected skips: %v", report.Skipped)
	}
	return NewEngine(reg, index.Build(reg), limit)
}

func TestSearch(t *testing.T) {
	engine := newEngine(t, 0,
		testutil.Patient("aaa01", []string{"Zoe", "Zebra"}, "Aberi"),
		testutil.Patient("aaa02", []string{"Zoe", "Zebra"}, "Aber"),
		testutil.Patient("aai03", []string{"Yoe", "Yebra"}, "Aber"),
		testutil.Patient("b004", []string{"Louis"}, "Hache"),
	)

	t.Run("full id is a single match", func(t *testing.T) {
		outcome := engine.Search("Patient", "aaa01")
		if outcome.Match == nil || outcome.Match.ID != "aaa01" {
			t.Fatalf("got %+v, want match aaa01", outcome)
		}
	})

	t.Run("full id any case", func(t *testing.T) {
		outcome := engine.Search("Patient", "AAI03")
		if outcome.Match == nil || outcome.Match.ID != "aai03" {
			t.Fatalf("got %+v, want match aai03", outcome)
		}
	})

	t.Run("unique name is a single match", func(t *testing.T) {
		outcome := engine.Search("Patient", "hache")
		if outcome.Match == nil || outcome.Match.ID != "b004" {
			t.Fatalf("got %+v, want match b004", outcome)
		}
	})

	t.Run("shared prefix yields ranked suggestions", func(t *testing.T) {
		// "aa" is a substring of all three aaa/aai ids.
		outcome := engine.Search("Patient", "aa")
		if len(outcome.Suggestions) != 3 {
			t.Fatalf("got %d suggestions, want 3: %+v", len(outcome.Suggestions), outcome)
		}
		for i, want := range []string{"aaa01", "aaa02", "aai03"} {
			if got := outcome.Suggestions[i].Record.ID; got != want {
				t.Errorf("suggestion[%d] = %s, want %s", i, got, want)
			}
		}
	})

	t.Run("suggestions are deterministic", func(t *testing.T) {
		first := engine.Search("Patient", "zebra")
		second := engine.Search("Patient", "zebra")
		if len(first.Suggestions) != len(second.Suggestions) {
			t.Fatal("suggestion counts differ between runs")
		}
		for i := range first.Suggestions {
			if first.Suggestions[i].Record != second.Suggestions[i].Record {
				t.Errorf("suggestion order unstable at %d", i)
			}
		}
	})

	t.Run("exact token outranks substring", func(t *testing.T) {
		// "aber" is an exact token for aaa02 and aai03 but only a
		// substring of aaa01's "aberi".
		outcome := engine.Search("Patient", "aber")
		if len(outcome.Suggestions) != 3 {
			t.Fatalf("got %d suggestions, want 3", len(outcome.Suggestions))
		}
		for i, want := range []string{"aaa02", "aai03", "aaa01"} {
			if got := outcome.Suggestions[i].Record.ID; got != want {
				t.Errorf("suggestion[%d] = %s, want %s", i, got, want)
			}
		}
		if outcome.Suggestions[0].Score <= outcome.Suggestions[2].Score {
			t.Errorf("exact hit did not outrank substring: %d <= %d",
				outcome.Suggestions[0].Score, outcome.Suggestions[2].Score)
		}
	})

	t.Run("multiple tokens narrow the match", func(t *testing.T) {
		// Both aaa01 and aaa02 have "zoe"; only aaa01 has "aberi".
		outcome := engine.Search("Patient", "zoe aberi")
		if len(outcome.Suggestions) != 2 {
			t.Fatalf("got %d suggestions, want 2", len(outcome.Suggestions))
		}
		if outcome.Suggestions[0].Record.ID != "aaa01" {
			t.Errorf("top = %s, want aaa01", outcome.Suggestions[0].Record.ID)
		}
		if outcome.Suggestions[0].Score <= outcome.Suggestions[1].Score {
			t.Errorf("scores not ordered: %d <= %d",
				outcome.Suggestions[0].Score, outcome.Suggestions[1].Score)
		}
	})

	t.Run("no match", func(t *testing.T) {
		outcome := engine.Search("Patient", "nothing matches this")
		if !outcome.NoMatch() {
			t.Fatalf("got %+v, want no match", outcome)
		}
	})

	t.Run("empty query", func(t *testing.T) {
		if outcome := engine.Search("Patient", "  !!  "); !outcome.NoMatch() {
			t.Fatalf("got %+v, want no match", outcome)
		}
	})

	t.Run("type filters candidates", func(t *testing.T) {
		if outcome := engine.Search("Practitioner", "zoe"); !outcome.NoMatch() {
			t.Fatalf("patient matched under practitioner: %+v", outcome)
		}
	})
}

func TestSearchLimit(t *testing.T) {
	batch := []map[string]any{
		testutil.Patient("pa01", []string{"Ann"}, "Shared"),
		testutil.Patient("pa02", []string{"Bob"}, "Shared"),
		testutil.Patient("pa03", []string{"Cam"}, "Shared"),
	}
	engine := newEngine(t, 2, batch...)

	outcome := engine.Search("Patient", "shared")
	if len(outcome.Suggestions) != 2 {
		t.Fatalf("got %d suggestions, want limit 2", len(outcome.Suggestions))
	}
	// Capped by score then id: pa01, pa02.
	if outcome.Suggestions[0].Record.ID != "pa01" || outcome.Suggestions[1].Record.ID != "pa02" {
		t.Errorf("unexpected capped order: %s, %s",
			outcome.Suggestions[0].Record.ID, outcome.Suggestions[1].Record.ID)
	}
}
