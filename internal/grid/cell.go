package grid

import "fmt"

type cellKind int

const (
	kindEmpty cellKind = iota
	kindHorizontal
	kindVertical
	kindCross
	kindArrow
	kindNode
)

// cell is one character position. Line cells carry the index of the
// node their edge originates from; node cells carry the node index and
// the label rune. An index of -1 marks a cell shared by several edges
// or nodes, which renders uncolored (and, for nodes, as a crossing).
type cell struct {
	kind cellKind
	edge int
	node int
	ch   rune
}

var empty = cell{kind: kindEmpty, edge: -1, node: -1}

// merge overlays b onto a and returns the combined cell. The operation
// is total over every overlap the compositor can produce; any other
// pairing is a compositing bug and panics.
func merge(a, b cell) cell {
	if a.kind == kindEmpty {
		return b
	}
	if b.kind == kindEmpty {
		return a
	}

	switch {
	case a.kind == kindHorizontal && b.kind == kindHorizontal:
		if a.edge != b.edge {
			panic("grid: overlapping horizontal runs from different edges")
		}
		return a

	case a.kind == kindHorizontal && b.kind == kindVertical,
		a.kind == kindVertical && b.kind == kindHorizontal:
		return cell{kind: kindCross, edge: sharedEdge(a, b), node: -1}

	case a.kind == kindVertical && b.kind == kindVertical:
		return cell{kind: kindVertical, edge: sharedEdge(a, b), node: -1}

	case a.kind == kindArrow && b.kind == kindArrow,
		a.kind == kindArrow && b.kind == kindVertical,
		a.kind == kindVertical && b.kind == kindArrow:
		return cell{kind: kindArrow, edge: sharedEdge(a, b), node: -1}

	case a.kind == kindCross && (b.kind == kindHorizontal || b.kind == kindVertical):
		return cell{kind: kindCross, edge: sharedEdge(a, b), node: -1}
	case b.kind == kindCross && (a.kind == kindHorizontal || a.kind == kindVertical):
		return cell{kind: kindCross, edge: sharedEdge(a, b), node: -1}
	case a.kind == kindCross && b.kind == kindCross:
		return cell{kind: kindCross, edge: sharedEdge(a, b), node: -1}

	case a.kind == kindNode && b.kind == kindNode:
		if a.node == b.node {
			return a
		}
		return cell{kind: kindNode, edge: -1, node: -1, ch: 0}

	// Clamped plans can slide a label over a line column; the label
	// stays legible and the line cell is lost.
	case a.kind == kindNode:
		return a
	case b.kind == kindNode:
		return b
	}

	panic(fmt.Sprintf("grid: cannot overlay cell kind %d onto %d", b.kind, a.kind))
}

func sharedEdge(a, b cell) int {
	if a.edge == b.edge {
		return a.edge
	}
	return -1
}
