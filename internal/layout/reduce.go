package layout

import "slices"

// Reduce removes every edge of the acyclic graph g that is implied by a
// longer path, yielding its transitive reduction. An edge (u, v) survives
// only when v is unreachable from u through any other successor of u.
//
// Reachability sets are built with an explicit worklist instead of
// recursion: a node is resolved once all of its successors are, otherwise
// it is pushed back behind them.
func Reduce(g Graph) Graph {
	reach := make([]map[int]struct{}, g.N)

	var work []int
	for v := 0; v < g.N; v++ {
		work = append(work, v)
	}
	for len(work) > 0 {
		v := work[len(work)-1]
		work = work[:len(work)-1]
		if reach[v] != nil {
			continue
		}
		ready := true
		for _, w := range g.Succ[v] {
			if reach[w] == nil {
				if ready {
					ready = false
					work = append(work, v)
				}
				work = append(work, w)
			}
		}
		if !ready {
			continue
		}
		set := make(map[int]struct{})
		for _, w := range g.Succ[v] {
			set[w] = struct{}{}
			for x := range reach[w] {
				set[x] = struct{}{}
			}
		}
		reach[v] = set
	}

	succ := make([][]int, g.N)
	for u, targets := range g.Succ {
		kept := make([]int, 0, len(targets))
		for _, v := range targets {
			implied := false
			for _, w := range targets {
				if w == v {
					continue
				}
				if _, ok := reach[w][v]; ok {
					implied = true
					break
				}
			}
			if !implied {
				kept = append(kept, v)
			}
		}
		slices.Sort(kept)
		succ[u] = kept
	}
	return Graph{N: g.N, Succ: succ}
}
