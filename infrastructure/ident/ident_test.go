package ident

import "testing"

func TestUUIDGeneratorIssuesUniqueIDs(t *testing.T) {
	g := UUIDGenerator{}
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := g.NewID()
		if id == "" {
			t.Fatalf("expected non-empty id")
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestSequenceGeneratorIsDeterministic(t *testing.T) {
	g := NewSequenceGenerator("ship")
	if got := g.NewID(); got != "ship-1" {
		t.Fatalf("expected ship-1, got %q", got)
	}
	if got := g.NewID(); got != "ship-2" {
		t.Fatalf("expected ship-2, got %q", got)
	}
}
