// Package route turns a leveled graph into a drawing plan: rows of
// positioned entries (real nodes plus the dummy waypoints long and
// reversed edges travel through) and, for every gap between adjacent
// rows, the connectors that must be drawn there.
//
// Columns are assigned in fixed character units so that the plan can be
// composited onto a grid without further measurement. Every choice made
// here is deterministic: entries keep level order, dummies append in
// discovery order, and connector sorting breaks ties on source column.
package route

import "sort"

// EntryKind discriminates the occupants of a row.
type EntryKind int

const (
	// User is a real graph node.
	User EntryKind = iota
	// Dummy is a waypoint of a forward edge spanning several rows.
	Dummy
	// ReverseDummy is a waypoint of a reversed edge travelling upward.
	ReverseDummy
)

// Entry is one occupant of a row. User entries carry the node index;
// dummies carry the edge endpoints they stand in for, and reverse
// dummies additionally a per-plan ID tying the pieces of one back-edge
// chain together.
type Entry struct {
	Kind   EntryKind
	Node   int // User only
	ID     int // ReverseDummy only
	Src    int // Dummy, ReverseDummy
	Target int // Dummy, ReverseDummy
	X      int // column of the entry's anchor
}

// ConnKind names the four ways a connector can attach to the two rows
// bounding its gap.
type ConnKind int

const (
	// TopBottom runs from an anchor on the upper row down to targets on
	// the lower row. Every forward edge segment is of this kind.
	TopBottom ConnKind = iota
	// BottomTop passes a back-edge chain straight through the gap,
	// from the chain's column on the lower row up to the upper row.
	BottomTop
	// TopTop attaches both ends to the upper row: the back edge leaves
	// the bottom of its source node and turns up into the chain column.
	TopTop
	// BottomBottom attaches both ends to the lower row: the chain turns
	// at the top and re-enters its target node with an arrowhead.
	BottomBottom
)

// Target is one endpoint a connector reaches. Continues marks endpoints
// that hit a dummy rather than a real node; those are drawn as
// pass-through lines instead of arrowheads.
type Target struct {
	X         int
	Continues bool
}

// Connector is one drawable edge piece inside a gap. Src is the
// originating graph node of the whole edge and keys the edge's color.
type Connector struct {
	Kind    ConnKind
	Src     int
	SrcX    int
	Targets []Target
	MinX    int
	MaxX    int
}

// Degenerate reports whether the connector spans a single column and
// therefore needs no horizontal run.
func (c Connector) Degenerate() bool { return c.MinX == c.MaxX }

// Plan is the full drawing plan: Rows[i] holds the entries of row i and
// Gaps[i] the connectors between rows i and i+1 (len(Gaps) = len(Rows)-1).
type Plan struct {
	Rows [][]Entry
	Gaps [][]Connector
}

// Build computes the drawing plan for a leveled graph.
//
// forward is the adjacency of the edges drawn top-down (already
// cycle-free, with reversed edges stripped), reversed lists
// the flipped edges in their original (from, to) orientation, levels is
// the top-to-bottom level assignment and widths the label width per
// node. maxX, when positive, clamps every column. When reorder is set,
// connectors within each gap are sorted by mean target column to
// shorten horizontal runs; otherwise they keep discovery order.
func Build(forward [][]int, reversed [][2]int, levels [][]int, widths []int, maxX int, reorder bool) Plan {
	rowOf := make([]int, len(forward))
	for i, lvl := range levels {
		for _, v := range lvl {
			rowOf[v] = i
		}
	}

	// A back-edge chain turns in the gap above its target's row and the
	// gap below its source's row; chains touching an outermost level
	// need an empty boundary row for that turn.
	needTop, needBottom := false, false
	for _, e := range reversed {
		if rowOf[e[1]] == 0 {
			needTop = true
		}
		if rowOf[e[0]] == len(levels)-1 {
			needBottom = true
		}
	}

	rows := make([][]Entry, 0, len(levels)+2)
	if needTop {
		rows = append(rows, nil)
		for i := range rowOf {
			rowOf[i]++
		}
	}
	for _, lvl := range levels {
		row := make([]Entry, 0, len(lvl))
		for _, v := range lvl {
			row = append(row, Entry{Kind: User, Node: v})
		}
		rows = append(rows, row)
	}
	if needBottom {
		rows = append(rows, nil)
	}

	// One reverse-dummy chain per reversed edge, occupying every row
	// from the target's down to the source's. A removed self-loop
	// collapses to a single chain row.
	for id, e := range reversed {
		src, target := e[0], e[1]
		for r := rowOf[target]; r <= rowOf[src]; r++ {
			rows[r] = append(rows[r], Entry{Kind: ReverseDummy, ID: id, Src: src, Target: target})
		}
	}

	// Forward edges spanning more than one gap get dummy waypoints in
	// every intermediate row.
	for r := 0; r < len(rows)-1; r++ {
		for _, e := range rows[r] {
			switch e.Kind {
			case User:
				for _, v := range forward[e.Node] {
					if rowOf[v] > r+1 {
						addDummy(&rows[r+1], e.Node, v)
					}
				}
			case Dummy:
				if rowOf[e.Target] > r+1 {
					addDummy(&rows[r+1], e.Src, e.Target)
				}
			}
		}
	}

	for r := range rows {
		assignColumns(rows[r], widths, maxX)
	}

	gaps := make([][]Connector, len(rows)-1)
	for r := 0; r < len(rows)-1; r++ {
		gaps[r] = buildGap(rows[r], rows[r+1], forward, reorder)
	}

	return Plan{Rows: rows, Gaps: gaps}
}

func addDummy(row *[]Entry, src, target int) {
	for _, e := range *row {
		if e.Kind == Dummy && e.Src == src && e.Target == target {
			return
		}
	}
	*row = append(*row, Entry{Kind: Dummy, Src: src, Target: target})
}

// assignColumns positions each entry: user nodes anchor at their label
// center, dummies occupy a single column. Entries are separated by two
// columns of padding.
func assignColumns(row []Entry, widths []int, maxX int) {
	offset := 0
	for i := range row {
		e := &row[i]
		x := 2*i + offset + 1
		if e.Kind == User {
			x += widths[e.Node] / 2
			offset += widths[e.Node]
		} else {
			offset++
		}
		if maxX > 0 && x > maxX {
			x = maxX
		}
		e.X = x
	}
}

// buildGap derives the connectors between two adjacent rows. Re-entry
// connectors always draw after the pass-through and exit pieces so that
// arrowheads land on top of any horizontal runs crossing them.
func buildGap(upper, lower []Entry, forward [][]int, reorder bool) []Connector {
	var mains []Connector
	var reentries []Connector

	for _, e := range upper {
		switch e.Kind {
		case User:
			var targets []Target
			for _, v := range forward[e.Node] {
				targets = append(targets, findContinuation(lower, e.Node, v))
			}
			if len(targets) > 0 {
				mains = append(mains, connector(TopBottom, e.Node, e.X, targets))
			}
		case Dummy:
			t := findContinuation(lower, e.Src, e.Target)
			mains = append(mains, connector(TopBottom, e.Src, e.X, []Target{t}))
		case ReverseDummy:
			if next, ok := findReverseDummy(lower, e.ID); ok {
				mains = append(mains, connector(BottomTop, e.Src, e.X, []Target{{X: next.X, Continues: true}}))
			} else if src, ok := findUser(upper, e.Src); ok {
				// Lowest chain row shares the source's row: the edge
				// exits the node downward and turns into the chain.
				mains = append(mains, connector(TopTop, e.Src, src.X, []Target{{X: e.X, Continues: true}}))
			}
		}
	}

	for _, e := range lower {
		if e.Kind != ReverseDummy {
			continue
		}
		// Highest chain row shares the target's row: the chain turns
		// and re-enters the node from above.
		if target, ok := findUser(lower, e.Target); ok {
			reentries = append(reentries, connector(BottomBottom, e.Src, e.X, []Target{{X: target.X, Continues: false}}))
		}
	}

	if reorder {
		sort.SliceStable(mains, func(i, j int) bool {
			mi, mj := meanTargetX(mains[i]), meanTargetX(mains[j])
			if mi != mj {
				return mi < mj
			}
			return mains[i].SrcX < mains[j].SrcX
		})
	}
	return append(mains, reentries...)
}

func connector(kind ConnKind, src, srcX int, targets []Target) Connector {
	min, max := srcX, srcX
	for _, t := range targets {
		if t.X < min {
			min = t.X
		}
		if t.X > max {
			max = t.X
		}
	}
	return Connector{Kind: kind, Src: src, SrcX: srcX, Targets: targets, MinX: min, MaxX: max}
}

func meanTargetX(c Connector) float64 {
	if len(c.Targets) == 0 {
		return float64(c.SrcX)
	}
	sum := 0
	for _, t := range c.Targets {
		sum += t.X
	}
	return float64(sum) / float64(len(c.Targets))
}

// findContinuation locates the lower-row entry edge (src, target)
// continues into: the target node itself when it lives on the lower
// row, otherwise the edge's dummy waypoint. A missing continuation is
// a planner bug, not a recoverable state.
func findContinuation(lower []Entry, src, target int) Target {
	for _, e := range lower {
		if e.Kind == User && e.Node == target {
			return Target{X: e.X, Continues: false}
		}
		if e.Kind == Dummy && e.Src == src && e.Target == target {
			return Target{X: e.X, Continues: true}
		}
	}
	panic("route: edge continuation missing from next row")
}

func findUser(row []Entry, node int) (Entry, bool) {
	for _, e := range row {
		if e.Kind == User && e.Node == node {
			return e, true
		}
	}
	return Entry{}, false
}

func findReverseDummy(row []Entry, id int) (Entry, bool) {
	for _, e := range row {
		if e.Kind == ReverseDummy && e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}
