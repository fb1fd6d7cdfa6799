// Package render draws directed graphs as text for terminals.
//
// A drawing is produced in stages: cycles are eliminated by reversing a
// small set of edges, transitively implied edges are dropped, nodes are
// bucketed into horizontal levels, edges are routed through the gaps
// between levels and the result is composited onto a character grid.
// The output is deterministic: the same graph and configuration always
// produce the same bytes.
//
// # Usage
//
//	g := graph.New[int, string]()
//	g.AddNodes(graph.Node[int, string]{ID: 0, Value: "first"}, ...)
//	g.AddEdges(graph.Edge[int]{From: 0, To: 1})
//	render.Display(g, render.NewConfig[int, string](graph.IDFormatter[int, string]{}, 3))
package render

import (
	"cmp"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/termgrid/internal/grid"
	"github.com/matzehuels/termgrid/internal/layout"
	"github.com/matzehuels/termgrid/internal/route"
	"github.com/matzehuels/termgrid/pkg/graph"
)

// Display draws g to standard output. Write errors are ignored; use
// FDisplay when they matter.
func Display[ID cmp.Ordered, T any](g *graph.Graph[ID, T], cfg Config[ID, T]) {
	_ = FDisplay(g, cfg, os.Stdout)
}

// FDisplay draws g to w. An empty graph writes nothing. The drawing
// ends with one blank line.
func FDisplay[ID cmp.Ordered, T any](g *graph.Graph[ID, T], cfg Config[ID, T], w io.Writer) error {
	if g.IsEmpty() {
		return nil
	}

	ids := g.IDs()
	index := make(map[ID]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	names := make([]string, len(ids))
	widths := make([]int, len(ids))
	for i, id := range ids {
		value, _ := g.Value(id)
		names[i] = cfg.formatter.FormatNode(id, value)
		widths[i] = len([]rune(names[i]))
	}

	succ := make([][]int, len(ids))
	for _, e := range g.Edges() {
		u, ok := index[e.From]
		if !ok {
			panic(fmt.Sprintf("render: edge %v->%v leaves unknown node %v", e.From, e.To, e.From))
		}
		v, ok := index[e.To]
		if !ok {
			panic(fmt.Sprintf("render: edge %v->%v enters unknown node %v", e.From, e.To, e.To))
		}
		succ[u] = append(succ[u], v)
	}

	// The transitive reduction drives level assignment only; the drawing
	// routes every edge of the acyclic graph, so none disappear.
	broken, reversed := layout.BreakCycles(layout.Graph{N: len(ids), Succ: succ})
	reduced := layout.Reduce(broken)
	levels := layout.Assign(reduced, widths, cfg.maxPerLevel, cfg.maxGlyphWidth)
	forward := forwardEdges(g, ids, broken, reversed)

	maxX := 0
	if cfg.maxGlyphWidth > 0 {
		maxX = cfg.maxGlyphWidth - 1
	}
	plan := route.Build(forward, reversed, levels, widths, maxX, cfg.reorder)
	canvas := grid.Compose(plan, names, cfg.spacing)

	palette := make([]int, len(cfg.palette))
	for i, c := range cfg.palette {
		palette[i] = int(c)
	}
	glyphs := grid.Glyphs{
		Vertical:   cfg.glyphs.Vertical,
		Horizontal: cfg.glyphs.Horizontal,
		Crossing:   cfg.glyphs.Crossing,
		ArrowDown:  cfg.glyphs.ArrowDown,
	}
	if err := canvas.WriteTo(w, glyphs, palette); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

// forwardEdges strips the artifacts of cycle breaking out of the
// acyclic adjacency: a flipped edge is only drawn top-down when the
// graph genuinely contains its forward counterpart too. The reversed
// originals are drawn separately as back edges.
func forwardEdges[ID cmp.Ordered, T any](g *graph.Graph[ID, T], ids []ID, acyclic layout.Graph, reversed [][2]int) [][]int {
	artificial := make(map[[2]int]bool, len(reversed))
	for _, e := range reversed {
		u, v := e[0], e[1]
		if u != v && !g.HasEdge(ids[v], ids[u]) {
			artificial[[2]int{v, u}] = true
		}
	}
	if len(artificial) == 0 {
		return acyclic.Succ
	}
	forward := make([][]int, acyclic.N)
	for u, targets := range acyclic.Succ {
		kept := make([]int, 0, len(targets))
		for _, v := range targets {
			if !artificial[[2]int{u, v}] {
				kept = append(kept, v)
			}
		}
		forward[u] = kept
	}
	return forward
}
