// Package graph holds the input model for the renderer: a directed
// graph over ordered node IDs with arbitrary payload values, the
// pluggable node formatters, and a JSON serialization for feeding
// graphs in from files or pipes.
package graph

import (
	"cmp"
	"slices"
)

// Node pairs an identifier with its payload value.
type Node[ID cmp.Ordered, T any] struct {
	ID    ID
	Value T
}

// Edge is a directed connection between two node IDs.
type Edge[ID cmp.Ordered] struct {
	From ID
	To   ID
}

// Graph is an adjacency-list directed graph. It is the input representation
// for rendering: in most cases a caller converts their own graph structure
// into a Graph for display purposes only.
//
// The graph may contain cycles and self-loops; rendering deals with both.
// The zero value is not usable - use New to create a valid instance.
// Graph is not safe for concurrent use without external synchronization.
type Graph[ID cmp.Ordered, T any] struct {
	nodes map[ID]T
	edges map[ID]map[ID]struct{}
}

// New creates an empty directed graph.
func New[ID cmp.Ordered, T any]() *Graph[ID, T] {
	return &Graph[ID, T]{
		nodes: make(map[ID]T),
		edges: make(map[ID]map[ID]struct{}),
	}
}

// AddNodes adds the given nodes to the graph.
// Re-adding an existing ID replaces its value (last write wins).
func (g *Graph[ID, T]) AddNodes(nodes ...Node[ID, T]) {
	for _, n := range nodes {
		g.nodes[n.ID] = n.Value
	}
}

// AddEdges adds the given directed edges to the graph.
// Duplicate edges collapse silently (set semantics per source);
// self-loops are accepted.
func (g *Graph[ID, T]) AddEdges(edges ...Edge[ID]) {
	for _, e := range edges {
		targets, ok := g.edges[e.From]
		if !ok {
			targets = make(map[ID]struct{})
			g.edges[e.From] = targets
		}
		targets[e.To] = struct{}{}
	}
}

// IsEmpty reports whether the graph has no nodes.
func (g *Graph[ID, T]) IsEmpty() bool { return len(g.nodes) == 0 }

// NodeCount returns the number of nodes in the graph.
func (g *Graph[ID, T]) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of distinct edges in the graph.
func (g *Graph[ID, T]) EdgeCount() int {
	count := 0
	for _, targets := range g.edges {
		count += len(targets)
	}
	return count
}

// IDs returns all node IDs in sorted order. Sorting makes every
// downstream computation deterministic, so rendering the same graph
// twice produces byte-identical output.
func (g *Graph[ID, T]) IDs() []ID {
	ids := make([]ID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Value returns the payload stored for the given node ID.
func (g *Graph[ID, T]) Value(id ID) (T, bool) {
	v, ok := g.nodes[id]
	return v, ok
}

// Edges returns every edge in the graph, sorted by source then target.
// Edges may reference IDs that were never added as nodes; consumers
// decide how strict to be about those.
func (g *Graph[ID, T]) Edges() []Edge[ID] {
	froms := make([]ID, 0, len(g.edges))
	for from := range g.edges {
		froms = append(froms, from)
	}
	slices.Sort(froms)
	var out []Edge[ID]
	for _, from := range froms {
		for _, to := range g.Successors(from) {
			out = append(out, Edge[ID]{From: from, To: to})
		}
	}
	return out
}

// HasEdge reports whether the edge from→to exists.
func (g *Graph[ID, T]) HasEdge(from, to ID) bool {
	_, ok := g.edges[from][to]
	return ok
}

// Successors returns the targets of all edges leaving the given node,
// in sorted order. The returned slice is a copy.
func (g *Graph[ID, T]) Successors(id ID) []ID {
	targets := g.edges[id]
	if len(targets) == 0 {
		return nil
	}
	out := make([]ID, 0, len(targets))
	for t := range targets {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}
