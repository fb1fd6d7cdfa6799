// Package grid composites a routed drawing plan onto a character grid
// and serializes it as text, optionally with one ANSI color per edge.
//
// The grid is sparse at the edges: rows grow only when a cell is set,
// and trailing blanks are trimmed per line on output. Overlapping cells
// are combined with a merge operator that turns a horizontal meeting a
// vertical into a crossing, lets arrowheads win over plain verticals,
// and marks cells shared by different edges as uncolorable.
package grid

import "github.com/matzehuels/termgrid/internal/route"

// Grid is the composited drawing.
type Grid struct {
	cells [][]cell
}

func (g *Grid) set(y, x int, c cell) {
	for len(g.cells) <= y {
		g.cells = append(g.cells, nil)
	}
	row := g.cells[y]
	for len(row) <= x {
		row = append(row, empty)
	}
	row[x] = merge(row[x], c)
	g.cells[y] = row
}

func line(edge int, k cellKind) cell { return cell{kind: k, edge: edge, node: -1} }

// Compose draws the plan onto a fresh grid. names holds the rendered
// label per node index; spacing is the number of extra blank lines
// between connector lanes within one gap.
func Compose(plan route.Plan, names []string, spacing int) *Grid {
	g := &Grid{}
	y := 0
	for r, row := range plan.Rows {
		g.drawRow(y, row, names)
		if r == len(plan.Rows)-1 {
			break
		}
		conns := plan.Gaps[r]
		if len(conns) == 0 {
			y += 2
			continue
		}
		ys, next := determineYs(conns, y, spacing)
		for k, c := range conns {
			g.drawConnector(c, y, ys[k], next)
		}
		y = next
	}
	return g
}

// drawRow renders one node row: labels for user nodes, a single
// vertical for each dummy column the row's edges pass through.
// Positions come from the planned entry columns so that clamped plans
// keep nodes aligned with their connectors; clipped labels may overlap.
func (g *Grid) drawRow(y int, row []route.Entry, names []string) {
	for _, e := range row {
		if e.Kind != route.User {
			g.set(y, e.X, line(e.Src, kindVertical))
			continue
		}
		runes := []rune(names[e.Node])
		start := e.X - len(runes)/2
		if start < 0 {
			start = 0
		}
		for i, ch := range runes {
			g.set(y, start+i, cell{kind: kindNode, edge: -1, node: e.Node, ch: ch})
		}
	}
}

// determineYs assigns each connector its horizontal lane within the gap
// below node row y and returns the lanes plus the y of the next node
// row. Degenerate connectors need no lane of their own and stack onto
// the current one; the last lane is followed by a single arrow row.
func determineYs(conns []route.Connector, y, spacing int) ([]int, int) {
	ys := make([]int, len(conns))
	yy := y + 2
	for k, c := range conns {
		ys[k] = yy
		if c.Degenerate() {
			continue
		}
		if k == len(conns)-1 {
			yy++
		} else {
			yy += 1 + spacing
		}
	}
	return ys, yy + 1
}

// drawConnector renders one connector: its horizontal run on lane, plus
// the verticals that tie it to the rows above (y) and below (next).
func (g *Grid) drawConnector(c route.Connector, y, lane, next int) {
	if !c.Degenerate() {
		for x := c.MinX; x <= c.MaxX; x++ {
			g.set(lane, x, line(c.Src, kindHorizontal))
		}
	}
	vert := func(x, from, to int) {
		for yy := from; yy <= to; yy++ {
			g.set(yy, x, line(c.Src, kindVertical))
		}
	}
	switch c.Kind {
	case route.TopBottom:
		vert(c.SrcX, y+1, lane)
		for _, t := range c.Targets {
			vert(t.X, lane, next-2)
			if t.Continues {
				g.set(next-1, t.X, line(c.Src, kindVertical))
			} else {
				g.set(next-1, t.X, line(c.Src, kindArrow))
			}
		}
	case route.TopTop:
		vert(c.SrcX, y+1, lane)
		vert(c.Targets[0].X, y+1, lane)
	case route.BottomTop:
		vert(c.SrcX, y+1, lane)
		vert(c.Targets[0].X, lane, next-1)
	case route.BottomBottom:
		vert(c.SrcX, lane, next-1)
		t := c.Targets[0]
		vert(t.X, lane, next-2)
		g.set(next-1, t.X, line(c.Src, kindArrow))
	}
}
