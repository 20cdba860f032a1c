package graph

import (
	"testing"

	"github.com/thaumic/aspectpath/pkg/aspect"
)

func TestNewComposition_RuleEdges(t *testing.T) {
	g := NewComposition()
	for _, r := range Rules() {
		if !g.HasEdge(r.Composite, r.PrimalA) || !g.HasEdge(r.PrimalA, r.Composite) {
			t.Errorf("missing edge %s <-> %s", r.Composite, r.PrimalA)
		}
		if !g.HasEdge(r.Composite, r.PrimalB) || !g.HasEdge(r.PrimalB, r.Composite) {
			t.Errorf("missing edge %s <-> %s", r.Composite, r.PrimalB)
		}
	}
}

func TestNewComposition_Symmetry(t *testing.T) {
	g := NewComposition()
	for _, a := range aspect.All() {
		for _, n := range g.Neighbors(a) {
			if !g.HasEdge(n, a) {
				t.Errorf("asymmetric edge: %s -> %s has no reverse", a, n)
			}
		}
	}
}

func TestNeighbors_IsolatedAspect(t *testing.T) {
	g := NewComposition()
	// The addon aspects appear in no composition rule.
	for _, a := range []aspect.Aspect{aspect.Gloria, aspect.Primordium} {
		if got := g.Neighbors(a); len(got) != 0 {
			t.Errorf("Neighbors(%s) = %v, want empty", a, got)
		}
		if got := g.Degree(a); got != 0 {
			t.Errorf("Degree(%s) = %d, want 0", a, got)
		}
	}
}

func TestNeighbors_Sorted(t *testing.T) {
	g := NewComposition()
	ns := g.Neighbors(aspect.Aqua)
	if len(ns) == 0 {
		t.Fatal("aqua has no neighbors")
	}
	for i := 1; i < len(ns); i++ {
		if ns[i-1] >= ns[i] {
			t.Fatalf("Neighbors(aqua) not sorted: %v", ns)
		}
	}
}

func TestRules_ReturnsCopy(t *testing.T) {
	rules := Rules()
	if len(rules) != len(compositionRules) {
		t.Fatalf("Rules() has %d entries, want %d", len(rules), len(compositionRules))
	}
	rules[0].Composite = aspect.Aer
	if compositionRules[0].Composite == aspect.Aer {
		t.Fatal("mutating the returned rules mutated the table")
	}
}
