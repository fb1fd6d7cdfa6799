package layout

import "slices"

// BreakCycles returns an acyclic view of g plus the list of edges that were
// reversed to get there, in their original (from, to) orientation.
//
// Cyclicity is detected with Tarjan's strongly-connected-components
// algorithm. If every component is a singleton and no self-loop exists the
// input is returned unchanged with a nil reversal list. Otherwise a feedback
// arc set is computed with a greedy vertex-sequencing heuristic and every
// backward edge is flipped in the returned adjacency. Self-loops are
// recorded as reversed but not re-inserted (a flipped self-loop would be
// the same edge again); the router draws them as back-edges.
func BreakCycles(g Graph) (Graph, [][2]int) {
	cyclic := false
	for _, scc := range tarjanSCCs(g) {
		if len(scc) > 1 {
			cyclic = true
			break
		}
	}
	if !cyclic {
	selfloop:
		for u, targets := range g.Succ {
			for _, v := range targets {
				if u == v {
					cyclic = true
					break selfloop
				}
			}
		}
	}
	if !cyclic {
		return g, nil
	}

	pos := feedbackOrder(g)

	var reversed [][2]int
	sets := make([]map[int]struct{}, g.N)
	for i := range sets {
		sets[i] = make(map[int]struct{})
	}
	for u, targets := range g.Succ {
		for _, v := range targets {
			if pos[u] < pos[v] {
				sets[u][v] = struct{}{}
				continue
			}
			reversed = append(reversed, [2]int{u, v})
			if u != v {
				sets[v][u] = struct{}{}
			}
		}
	}

	succ := make([][]int, g.N)
	for i, set := range sets {
		s := make([]int, 0, len(set))
		for v := range set {
			s = append(s, v)
		}
		slices.Sort(s)
		succ[i] = s
	}
	return Graph{N: g.N, Succ: succ}, reversed
}

// tarjanSCCs computes the strongly connected components of g. The usual
// recursive formulation is replaced by an explicit frame stack so deep
// graphs cannot overflow the goroutine stack; the index/lowlink bookkeeping
// is unchanged.
func tarjanSCCs(g Graph) [][]int {
	const unvisited = -1

	index := make([]int, g.N)
	lowlink := make([]int, g.N)
	onstack := make([]bool, g.N)
	for i := range index {
		index[i] = unvisited
	}

	var (
		sccs  [][]int
		stack []int
		next  int
	)

	type frame struct {
		v int
		i int // next successor to inspect
	}

	visit := func(root int) {
		index[root] = next
		lowlink[root] = next
		next++
		stack = append(stack, root)
		onstack[root] = true

		frames := []frame{{v: root}}
		for len(frames) > 0 {
			f := &frames[len(frames)-1]
			if f.i < len(g.Succ[f.v]) {
				w := g.Succ[f.v][f.i]
				f.i++
				if index[w] == unvisited {
					index[w] = next
					lowlink[w] = next
					next++
					stack = append(stack, w)
					onstack[w] = true
					frames = append(frames, frame{v: w})
				} else if onstack[w] && index[w] < lowlink[f.v] {
					lowlink[f.v] = index[w]
				}
				continue
			}

			v := f.v
			frames = frames[:len(frames)-1]
			if len(frames) > 0 {
				p := &frames[len(frames)-1]
				if lowlink[v] < lowlink[p.v] {
					lowlink[p.v] = lowlink[v]
				}
			}
			if lowlink[v] == index[v] {
				var scc []int
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onstack[w] = false
					scc = append(scc, w)
					if w == v {
						break
					}
				}
				sccs = append(sccs, scc)
			}
		}
	}

	for v := 0; v < g.N; v++ {
		if index[v] == unvisited {
			visit(v)
		}
	}
	return sccs
}

// feedbackOrder computes a total vertex order whose backward edges form a
// small feedback arc set (Eades/Lin/Smyth greedy sequencing): sinks go to
// the back of the sequence, sources to the front, and when neither exists
// the vertex maximizing out-degree minus in-degree goes to the front.
// All ties break on the lowest node index. Self-loops are ignored for
// degree bookkeeping. Returns the position of every node in the sequence.
func feedbackOrder(g Graph) []int {
	out := make([]int, g.N)
	in := make([]int, g.N)
	preds := g.preds()
	for u, targets := range g.Succ {
		for _, v := range targets {
			if u == v {
				continue
			}
			out[u]++
			in[v]++
		}
	}

	removed := make([]bool, g.N)
	alive := g.N

	remove := func(v int) {
		removed[v] = true
		alive--
		for _, w := range g.Succ[v] {
			if w != v && !removed[w] {
				in[w]--
			}
		}
		for _, u := range preds[v] {
			if u != v && !removed[u] {
				out[u]--
			}
		}
	}

	find := func(pred func(int) bool) int {
		for v := 0; v < g.N; v++ {
			if !removed[v] && pred(v) {
				return v
			}
		}
		return -1
	}

	var front []int
	var backRev []int
	for alive > 0 {
		for {
			sink := find(func(v int) bool { return out[v] == 0 })
			if sink == -1 {
				break
			}
			backRev = append(backRev, sink)
			remove(sink)
		}
		for {
			source := find(func(v int) bool { return in[v] == 0 })
			if source == -1 {
				break
			}
			front = append(front, source)
			remove(source)
		}
		if alive > 0 {
			best := -1
			for v := 0; v < g.N; v++ {
				if removed[v] {
					continue
				}
				if best == -1 || out[v]-in[v] > out[best]-in[best] {
					best = v
				}
			}
			front = append(front, best)
			remove(best)
		}
	}

	pos := make([]int, g.N)
	for i, v := range front {
		pos[v] = i
	}
	// Sinks were collected in removal order; the sequence wants the
	// last-removed sink first, directly after the front section.
	for i, v := range backRev {
		pos[v] = len(front) + (len(backRev) - 1 - i)
	}
	return pos
}
