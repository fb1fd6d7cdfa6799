package layout

// Assign buckets the nodes of the acyclic graph g into horizontal levels,
// top to bottom, so that every edge points to a strictly lower level.
//
// Nodes are placed sink-first: each node lands on the lowest level below
// all of its successors that still has room. A level has room when it
// holds fewer than maxPerLevel nodes and, if maxGlyph is positive, adding
// the node keeps the level's rendered width (labels plus two columns of
// padding each) within maxGlyph. A level always accepts its first node
// regardless of width, so a single oversized label cannot stall placement.
// widths holds the rendered label width of every node.
func Assign(g Graph, widths []int, maxPerLevel, maxGlyph int) [][]int {
	order := topoOrder(g)

	// Levels are built bottom-up: index 0 is the sink level here and the
	// result is flipped before returning.
	var levels [][]int
	var lwidth []int
	depth := make([]int, g.N)

	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		cand := 0
		for _, w := range g.Succ[v] {
			if depth[w]+1 > cand {
				cand = depth[w] + 1
			}
		}
		lvl := cand
		for {
			if lvl == len(levels) {
				levels = append(levels, nil)
				lwidth = append(lwidth, 0)
			}
			if len(levels[lvl]) < maxPerLevel &&
				(maxGlyph <= 0 || len(levels[lvl]) == 0 || lwidth[lvl]+widths[v]+2 <= maxGlyph) {
				break
			}
			lvl++
		}
		levels[lvl] = append(levels[lvl], v)
		lwidth[lvl] += widths[v] + 2
		depth[v] = lvl
	}

	for i, j := 0, len(levels)-1; i < j; i, j = i+1, j-1 {
		levels[i], levels[j] = levels[j], levels[i]
	}
	return levels
}

// topoOrder returns a topological order of g. Among the nodes whose
// predecessors are all placed, the one whose earliest-placed predecessor
// comes first is chosen next (sources count as earliest of all); remaining
// ties break on the lowest node index. This keeps siblings adjacent and is
// fully deterministic.
func topoOrder(g Graph) []int {
	preds := g.preds()
	placed := make([]int, g.N)
	for i := range placed {
		placed[i] = -1
	}

	order := make([]int, 0, g.N)
	for len(order) < g.N {
		best, bestKey := -1, 0
		for v := 0; v < g.N; v++ {
			if placed[v] >= 0 {
				continue
			}
			ready := true
			key := -1
			for _, u := range preds[v] {
				if placed[u] < 0 {
					ready = false
					break
				}
				if key == -1 || placed[u] < key {
					key = placed[u]
				}
			}
			if !ready {
				continue
			}
			if best == -1 || key < bestKey {
				best, bestKey = v, key
			}
		}
		placed[best] = len(order)
		order = append(order, best)
	}
	return order
}
