package gantry

import (
	"sort"
	"testing"
)

func graphFixture() *DependencyGraph {
	// a <- b <- c, a <- d; e isolated.
	return newDependencyGraph([]*Task{
		{ID: "a"},
		{ID: "b", Dependencies: []string{"a"}},
		{ID: "c", Dependencies: []string{"b"}},
		{ID: "d", Dependencies: []string{"a"}},
		{ID: "e"},
	})
}

func sortedCopy(s []string) []string {
	out := append([]string(nil), s...)
	sort.Strings(out)
	return out
}

// --- Dependents ---

func TestGraphDependents(t *testing.T) {
	g := graphFixture()
	tests := []struct {
		id   string
		want []string
	}{
		{"a", []string{"b", "d"}},
		{"b", []string{"c"}},
		{"c", nil},
		{"e", nil},
		{"unknown", nil},
	}
	for _, tt := range tests {
		got := sortedCopy(g.Dependents(tt.id))
		if len(got) != len(tt.want) {
			t.Errorf("Dependents(%q) = %v, want %v", tt.id, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Dependents(%q) = %v, want %v", tt.id, got, tt.want)
				break
			}
		}
	}
}

// --- AllDependents ---

func TestGraphAllDependentsTransitive(t *testing.T) {
	g := graphFixture()
	got := sortedCopy(g.AllDependents("a"))
	want := []string{"b", "c", "d"}
	if len(got) != len(want) {
		t.Fatalf("AllDependents(a) = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("AllDependents(a) = %v, want %v", got, want)
		}
	}
}

func TestGraphAllDependentsExcludesSelf(t *testing.T) {
	g := graphFixture()
	for _, id := range g.AllDependents("a") {
		if id == "a" {
			t.Error("AllDependents includes the queried id")
		}
	}
}

func TestGraphAllDependentsCycleSafe(t *testing.T) {
	// a <-> b cycle plus a tail c.
	g := newDependencyGraph([]*Task{
		{ID: "a", Dependencies: []string{"b"}},
		{ID: "b", Dependencies: []string{"a"}},
		{ID: "c", Dependencies: []string{"b"}},
	})
	got := sortedCopy(g.AllDependents("a"))
	want := []string{"b", "c"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("AllDependents(a) in cycle = %v, want %v", got, want)
	}
	// Each node appears exactly once despite the cycle.
	seen := map[string]int{}
	for _, id := range g.AllDependents("b") {
		seen[id]++
		if seen[id] > 1 {
			t.Fatalf("AllDependents(b) repeats %q", id)
		}
	}
}
