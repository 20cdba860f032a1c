// Package graph holds the aspect composition graph: an undirected graph
// connecting every compound aspect to its two constituents, derived once
// from the static rule table and read-only afterward.
package graph

import (
	"sort"

	"github.com/thaumic/aspectpath/pkg/aspect"
)

// Graph is the symmetric adjacency structure over the aspect vocabulary.
// It is built once by NewComposition and never mutated; it is safe to
// share across concurrent readers.
type Graph struct {
	adjacency map[aspect.Aspect]map[aspect.Aspect]struct{}
}

// NewComposition folds the composition rule table into a symmetric
// adjacency map: each rule (R, A, B) contributes edges R-A and R-B in
// both directions. Duplicate edges collapse.
func NewComposition() *Graph {
	g := &Graph{adjacency: make(map[aspect.Aspect]map[aspect.Aspect]struct{}, len(compositionRules))}
	for _, r := range compositionRules {
		g.addEdge(r.Composite, r.PrimalA)
		g.addEdge(r.Composite, r.PrimalB)
	}
	return g
}

func (g *Graph) addEdge(a, b aspect.Aspect) {
	g.link(a, b)
	g.link(b, a)
}

func (g *Graph) link(from, to aspect.Aspect) {
	set, ok := g.adjacency[from]
	if !ok {
		set = make(map[aspect.Aspect]struct{}, 4)
		g.adjacency[from] = set
	}
	set[to] = struct{}{}
}

// Neighbors returns the aspects directly reachable from a, sorted by
// declaration order for determinism. The result is empty (nil) for
// aspects with no recorded edges and is owned by the caller.
func (g *Graph) Neighbors(a aspect.Aspect) []aspect.Aspect {
	set := g.adjacency[a]
	if len(set) == 0 {
		return nil
	}
	out := make([]aspect.Aspect, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// HasEdge reports whether a and b are directly connected.
func (g *Graph) HasEdge(a, b aspect.Aspect) bool {
	_, ok := g.adjacency[a][b]
	return ok
}

// Degree returns the number of neighbors of a.
func (g *Graph) Degree(a aspect.Aspect) int {
	return len(g.adjacency[a])
}
