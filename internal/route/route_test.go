package route

import (
	"reflect"
	"testing"
)

func TestBuildChain(t *testing.T) {
	forward := [][]int{{1}, {2}, {}}
	levels := [][]int{{0}, {1}, {2}}
	plan := Build(forward, nil, levels, []int{3, 3, 3}, 0, true)

	if len(plan.Rows) != 3 || len(plan.Gaps) != 2 {
		t.Fatalf("rows/gaps = %d/%d", len(plan.Rows), len(plan.Gaps))
	}
	for r, row := range plan.Rows {
		if len(row) != 1 || row[0].Kind != User || row[0].Node != r {
			t.Fatalf("row %d = %+v", r, row)
		}
		if row[0].X != 2 {
			t.Errorf("row %d anchor = %d, want 2", r, row[0].X)
		}
	}
	for g, gap := range plan.Gaps {
		if len(gap) != 1 {
			t.Fatalf("gap %d = %+v", g, gap)
		}
		c := gap[0]
		if c.Kind != TopBottom || c.Src != g || !c.Degenerate() {
			t.Errorf("gap %d connector = %+v", g, c)
		}
		if c.Targets[0].Continues {
			t.Errorf("gap %d target should end in an arrow", g)
		}
	}
}

func TestBuildDummyWaypoints(t *testing.T) {
	// Node 2 spilled a level below its sibling, so edge (0,2) crosses
	// the middle row through a dummy.
	forward := [][]int{{1, 2}, {}, {}}
	levels := [][]int{{0}, {1}, {2}}
	plan := Build(forward, nil, levels, []int{3, 3, 3}, 0, true)

	mid := plan.Rows[1]
	if len(mid) != 2 || mid[0].Kind != User || mid[1].Kind != Dummy {
		t.Fatalf("middle row = %+v", mid)
	}
	if mid[1].Src != 0 || mid[1].Target != 2 {
		t.Errorf("dummy endpoints = (%d,%d)", mid[1].Src, mid[1].Target)
	}
	if mid[0].X != 2 || mid[1].X != 6 {
		t.Errorf("columns = %d, %d", mid[0].X, mid[1].X)
	}

	top := plan.Gaps[0]
	if len(top) != 1 || len(top[0].Targets) != 2 {
		t.Fatalf("top gap = %+v", top)
	}
	want := []Target{{X: 2, Continues: false}, {X: 6, Continues: true}}
	if !reflect.DeepEqual(top[0].Targets, want) {
		t.Errorf("targets = %+v, want %+v", top[0].Targets, want)
	}

	bottom := plan.Gaps[1]
	if len(bottom) != 1 || bottom[0].Kind != TopBottom || bottom[0].SrcX != 6 {
		t.Fatalf("bottom gap = %+v", bottom)
	}
	if bottom[0].Targets[0].Continues {
		t.Error("final segment should end in an arrow")
	}
}

func TestBuildBackEdge(t *testing.T) {
	// 0 -> 1 -> 2 with the closing edge (2,0) reversed: the chain runs
	// beside all three rows and turns inside boundary rows.
	forward := [][]int{{1}, {2}, {}}
	reversed := [][2]int{{2, 0}}
	levels := [][]int{{0}, {1}, {2}}
	plan := Build(forward, reversed, levels, []int{3, 3, 3}, 0, true)

	if len(plan.Rows) != 5 {
		t.Fatalf("rows = %d, want 5 (boundary rows added)", len(plan.Rows))
	}
	if len(plan.Rows[0]) != 0 || len(plan.Rows[4]) != 0 {
		t.Fatalf("boundary rows not empty: %+v / %+v", plan.Rows[0], plan.Rows[4])
	}
	for r := 1; r <= 3; r++ {
		row := plan.Rows[r]
		if len(row) != 2 || row[1].Kind != ReverseDummy || row[1].X != 6 {
			t.Fatalf("row %d = %+v", r, row)
		}
	}

	if c := plan.Gaps[0]; len(c) != 1 || c[0].Kind != BottomBottom {
		t.Fatalf("top gap = %+v", c)
	} else if c[0].SrcX != 6 || c[0].Targets[0].X != 2 || c[0].Targets[0].Continues {
		t.Fatalf("re-entry = %+v", c[0])
	}
	for g := 1; g <= 2; g++ {
		gap := plan.Gaps[g]
		if len(gap) != 2 {
			t.Fatalf("gap %d = %+v", g, gap)
		}
		if gap[0].Kind != TopBottom || gap[1].Kind != BottomTop {
			t.Errorf("gap %d kinds = %v, %v", g, gap[0].Kind, gap[1].Kind)
		}
	}
	if c := plan.Gaps[3]; len(c) != 1 || c[0].Kind != TopTop {
		t.Fatalf("bottom gap = %+v", c)
	} else if c[0].SrcX != 2 || c[0].Targets[0].X != 6 || c[0].Src != 2 {
		t.Fatalf("exit = %+v", c[0])
	}
}

func TestBuildSelfLoop(t *testing.T) {
	forward := [][]int{{1}, {}}
	reversed := [][2]int{{0, 0}}
	levels := [][]int{{0}, {1}}
	plan := Build(forward, reversed, levels, []int{3, 3}, 0, true)

	if len(plan.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(plan.Rows))
	}
	row := plan.Rows[1]
	if len(row) != 2 || row[1].Kind != ReverseDummy || row[1].Src != 0 || row[1].Target != 0 {
		t.Fatalf("loop row = %+v", row)
	}
	if c := plan.Gaps[0]; len(c) != 1 || c[0].Kind != BottomBottom {
		t.Fatalf("top gap = %+v", c)
	}
	gap := plan.Gaps[1]
	if len(gap) != 2 || gap[0].Kind != TopBottom || gap[1].Kind != TopTop {
		t.Fatalf("bottom gap = %+v", gap)
	}
}

func TestBuildReorder(t *testing.T) {
	// Two edges crossing in the gap; reorder lanes them by mean target
	// column so the left-reaching connector draws first.
	forward := [][]int{{3}, {2}, {}, {}}
	levels := [][]int{{0, 1}, {2, 3}}
	widths := []int{3, 3, 3, 3}

	ordered := Build(forward, nil, levels, widths, 0, true)
	gap := ordered.Gaps[0]
	if len(gap) != 2 {
		t.Fatalf("gap = %+v", gap)
	}
	if gap[0].Src != 1 || gap[1].Src != 0 {
		t.Errorf("reordered sources = %d, %d, want 1, 0", gap[0].Src, gap[1].Src)
	}

	asis := Build(forward, nil, levels, widths, 0, false)
	gap = asis.Gaps[0]
	if gap[0].Src != 0 || gap[1].Src != 1 {
		t.Errorf("discovery-order sources = %d, %d, want 0, 1", gap[0].Src, gap[1].Src)
	}
}

func TestBuildClampsColumns(t *testing.T) {
	forward := [][]int{{}, {}, {}}
	levels := [][]int{{0, 1, 2}}
	plan := Build(forward, nil, levels, []int{3, 3, 3}, 8, true)
	for _, e := range plan.Rows[0] {
		if e.X > 8 {
			t.Errorf("column %d exceeds clamp", e.X)
		}
	}
}
