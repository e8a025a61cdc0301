package ui

import (
	"strings"
	"testing"
)

func TestTable(t *testing.T) {
	table := NewTable(2)
	table.AddHeader("RESOURCE TYPE", "COUNT")
	table.AddRow("Encounter", "12")
	table.AddRow("Observation", "113")

	out := table.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "RESOURCE TYPE") {
		t.Errorf("header missing: %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "Observation") {
		t.Errorf("row misaligned: %q", lines[2])
	}

	// Columns align: both data rows start their second column at the
	// same offset.
	idx1 := strings.Index(lines[1], "12")
	idx2 := strings.Index(lines[2], "113")
	if idx1 != idx2 {
		t.Errorf("columns misaligned: %d vs %d\n%s", idx1, idx2, out)
	}
}

func TestTableEmpty(t *testing.T) {
	if out := NewTable(2).String(); out != "" {
		t.Errorf("empty table rendered %q", out)
	}
}
