// Package layout implements the hierarchical layout pipeline that turns an
// arbitrary directed graph into ordered horizontal levels: cycle breaking,
// transitive reduction, and budgeted level assignment.
//
// The package operates on dense integer node indices rather than the
// caller's opaque IDs. Indices are stable per render (assigned from the
// sorted ID order by the caller), which keeps every tie-break deterministic
// and lets identity comparisons work by value instead of by pointer.
package layout

import "slices"

// Graph is a dense-index adjacency view over the caller's graph.
// Succ holds the sorted successor indices for every node. Graphs are
// treated as immutable; every transformation returns a fresh view.
type Graph struct {
	N    int
	Succ [][]int
}

// Clone returns a deep copy of the adjacency.
func (g Graph) Clone() Graph {
	succ := make([][]int, g.N)
	for i, s := range g.Succ {
		succ[i] = slices.Clone(s)
	}
	return Graph{N: g.N, Succ: succ}
}

// preds builds the reverse adjacency (sorted, since sources are visited
// in ascending order).
func (g Graph) preds() [][]int {
	in := make([][]int, g.N)
	for u, targets := range g.Succ {
		for _, v := range targets {
			in[v] = append(in[v], u)
		}
	}
	return in
}
