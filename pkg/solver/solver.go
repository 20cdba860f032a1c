// Package solver enumerates minimum-cost fixed-length walks over the
// aspect composition graph, priced by the player's inventory.
//
// The search is cost-ordered: frontier items are expanded in
// non-decreasing accumulated cost via a min-heap, so the first completed
// walk establishes the true minimum and every later completion either
// ties it or is cut. This is a deliberate departure from the classic
// breadth-order enumeration with a late-tightening bound, which can in
// principle prune a walk before a cheaper completion tightens the bound;
// the cost-ordered form returns a provably exact minimum and terminates
// as soon as the cheapest open item exceeds the best completed cost.
//
// Walks may revisit nodes and edges. A walk's cost is the sum of the
// prices of every node after the first; prices are non-negative, and
// accumulation in int64 leaves no realistic overflow headroom concern
// (the per-node price ceiling is 65535).
package solver

import (
	"container/heap"
	"context"
	"errors"
	"math"
	"sort"

	"github.com/thaumic/aspectpath/pkg/aspect"
	"github.com/thaumic/aspectpath/pkg/graph"
	"github.com/thaumic/aspectpath/pkg/inventory"
)

// CostUnreachable is the cost reported when no walk of the requested
// length exists between the endpoints.
const CostUnreachable = int64(math.MaxInt64)

var (
	// ErrLength is returned for a requested walk of fewer than 2 nodes.
	ErrLength = errors.New("solver: length must be at least 2")

	// ErrBudgetExceeded is returned when a query expands more frontier
	// items than its configured budget allows.
	ErrBudgetExceeded = errors.New("solver: expansion budget exceeded")
)

// Result holds every minimum-cost walk found at one exact length, and
// that minimum. An empty Paths slice carries CostUnreachable.
type Result struct {
	Paths [][]aspect.Aspect
	Cost  int64
}

// Found reports whether any walk was found.
func (r Result) Found() bool { return len(r.Paths) > 0 }

// Solver answers repeated independent path queries against one
// composition graph and one inventory snapshot. Both are read-only after
// construction, so a Solver is safe for concurrent queries; each query
// owns its frontier. Swapping in a fresh snapshot means building a new
// Solver.
type Solver struct {
	graph         *graph.Graph
	inv           *inventory.Inventory
	maxExpansions int
}

// Option configures a Solver.
type Option func(*Solver)

// WithMaxExpansions bounds the number of frontier expansions per query.
// Zero or negative means unbounded. Cyclic graphs with permissive prices
// can grow the frontier combinatorially with length; a budget turns a
// pathological query into ErrBudgetExceeded instead of a hang.
func WithMaxExpansions(n int) Option {
	return func(s *Solver) { s.maxExpansions = n }
}

// New builds a Solver over g priced by inv.
func New(g *graph.Graph, inv *inventory.Inventory, opts ...Option) *Solver {
	s := &Solver{graph: g, inv: inv}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// item is one frontier entry: the walk so far, its final node, its
// accumulated cost, and its node count.
type item struct {
	node  aspect.Aspect
	cost  int64
	steps int
	path  []aspect.Aspect
}

// frontier is a min-heap over accumulated cost.
type frontier []item

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(i, j int) bool { return f[i].cost < f[j].cost }
func (f frontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x any)        { *f = append(*f, x.(item)) }
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	it := old[n-1]
	*f = old[:n-1]
	return it
}

// FindExact returns every minimum-cost walk of exactly length nodes from
// start to end, with the minimum cost. No walk yields an empty Result
// with CostUnreachable; that is an ordinary outcome, not an error. The
// context is checked once per pop, so a deadline or cancellation aborts
// a long search promptly.
func (s *Solver) FindExact(ctx context.Context, start, end aspect.Aspect, length int) (Result, error) {
	if length < 2 {
		return Result{Cost: CostUnreachable}, ErrLength
	}

	best := CostUnreachable
	var found [][]aspect.Aspect

	f := &frontier{{node: start, cost: 0, steps: 1, path: []aspect.Aspect{start}}}
	expansions := 0

	for f.Len() > 0 {
		select {
		case <-ctx.Done():
			return Result{Cost: CostUnreachable}, ctx.Err()
		default:
		}

		it := heap.Pop(f).(item)
		if it.cost > best {
			// Cost-ordered: everything still open costs at least this much.
			break
		}

		if it.steps == length {
			if it.node == end {
				if it.cost < best {
					best = it.cost
					found = found[:0]
				}
				found = append(found, it.path)
			}
			continue
		}

		expansions++
		if s.maxExpansions > 0 && expansions > s.maxExpansions {
			return Result{Cost: CostUnreachable}, ErrBudgetExceeded
		}

		for _, n := range s.graph.Neighbors(it.node) {
			cost := it.cost + int64(s.inv.PriceOf(n))
			if cost > best {
				continue
			}
			path := make([]aspect.Aspect, len(it.path)+1)
			copy(path, it.path)
			path[len(it.path)] = n
			heap.Push(f, item{node: n, cost: cost, steps: it.steps + 1, path: path})
		}
	}

	sortPaths(found)
	return Result{Paths: found, Cost: best}, nil
}

// FindWindow runs FindExact independently for every length in
// [length, length+slack) and keys each Result by its offset from length.
// No pruning crosses lengths. The first query error aborts the window.
func (s *Solver) FindWindow(ctx context.Context, start, end aspect.Aspect, length, slack int) (map[int]Result, error) {
	if slack < 1 {
		slack = 1
	}
	window := make(map[int]Result, slack)
	for offset := 0; offset < slack; offset++ {
		res, err := s.FindExact(ctx, start, end, length+offset)
		if err != nil {
			return nil, err
		}
		window[offset] = res
	}
	return window, nil
}

// sortPaths orders walks lexicographically so equal-cost result sets come
// back in a stable order regardless of heap internals.
func sortPaths(paths [][]aspect.Aspect) {
	sort.Slice(paths, func(i, j int) bool {
		a, b := paths[i], paths[j]
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return len(a) < len(b)
	})
}
