package grid

import (
	"strings"
	"testing"

	"github.com/matzehuels/termgrid/internal/route"
)

var ascii = Glyphs{Vertical: '|', Horizontal: '-', Crossing: '+', ArrowDown: 'V'}

func render(t *testing.T, forward [][]int, reversed [][2]int, levels [][]int, names []string) string {
	t.Helper()
	widths := make([]int, len(names))
	for i, n := range names {
		widths[i] = len([]rune(n))
	}
	plan := route.Build(forward, reversed, levels, widths, 0, true)
	return Compose(plan, names, 1).String(ascii)
}

func TestComposeChain(t *testing.T) {
	got := render(t,
		[][]int{{1}, {2}, {}},
		nil,
		[][]int{{0}, {1}, {2}},
		[]string{"(0)", "(1)", "(2)"},
	)
	want := strings.Join([]string{
		" (0)",
		"  |",
		"  V",
		" (1)",
		"  |",
		"  V",
		" (2)",
		"",
	}, "\n")
	if got != want {
		t.Errorf("chain:\n%s\nwant:\n%s", got, want)
	}
}

func TestComposeDiamond(t *testing.T) {
	got := render(t,
		[][]int{{1, 2}, {3}, {3}, {}},
		nil,
		[][]int{{0}, {2, 1}, {3}},
		[]string{"(0)", "(1)", "(2)", "(3)"},
	)
	want := strings.Join([]string{
		" (0)",
		"  |",
		"  +----+",
		"  V    V",
		" (2)  (1)",
		"  |    |",
		"  +----+",
		"  V",
		" (3)",
		"",
	}, "\n")
	if got != want {
		t.Errorf("diamond:\n%s\nwant:\n%s", got, want)
	}
}

func TestComposeDummyPassThrough(t *testing.T) {
	got := render(t,
		[][]int{{1, 2}, {}, {}},
		nil,
		[][]int{{0}, {1}, {2}},
		[]string{"(0)", "(1)", "(2)"},
	)
	want := strings.Join([]string{
		" (0)",
		"  |",
		"  +---+",
		"  V   |",
		" (1)  |",
		"      |",
		"  +---+",
		"  V",
		" (2)",
		"",
	}, "\n")
	if got != want {
		t.Errorf("pass-through:\n%s\nwant:\n%s", got, want)
	}
}

func TestComposeBackEdge(t *testing.T) {
	got := render(t,
		[][]int{{1}, {2}, {}},
		[][2]int{{2, 0}},
		[][]int{{0}, {1}, {2}},
		[]string{"(0)", "(1)", "(2)"},
	)
	want := strings.Join([]string{
		"",
		"",
		"  +---+",
		"  V   |",
		" (0)  |",
		"  |   |",
		"  V   |",
		" (1)  |",
		"  |   |",
		"  V   |",
		" (2)  |",
		"  |   |",
		"  +---+",
		"",
	}, "\n")
	if got != want {
		t.Errorf("back edge:\n%s\nwant:\n%s", got, want)
	}
}

func TestComposeClampedColumns(t *testing.T) {
	// With a column limit the second node's planned column is clamped
	// from 7 to 5; its label and its connector must stay aligned.
	plan := route.Build(
		[][]int{{2}, {2}, {}},
		nil,
		[][]int{{0, 1}, {2}},
		[]int{3, 3, 3},
		5, true,
	)
	got := Compose(plan, []string{"(0)", "(1)", "(2)"}, 1).String(ascii)
	want := strings.Join([]string{
		" (0)(1)",
		"  |  |",
		"  +--+",
		"  V",
		" (2)",
		"",
	}, "\n")
	if got != want {
		t.Errorf("clamped:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteToColors(t *testing.T) {
	plan := route.Build([][]int{{1}, {}}, nil, [][]int{{0}, {1}}, []int{3, 3}, 0, true)
	g := Compose(plan, []string{"(0)", "(1)"}, 1)

	var b strings.Builder
	if err := g.WriteTo(&b, ascii, []int{31, 32}); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if !strings.Contains(out, "\x1b[31m|\x1b[0m") {
		t.Errorf("edge not colored: %q", out)
	}
	if !strings.Contains(out, "\x1b[31mV\x1b[0m") {
		t.Errorf("arrowhead not colored: %q", out)
	}
	if strings.Contains(out, "\x1b[31m(") || strings.Contains(out, "\x1b[31m0") {
		t.Errorf("label colored: %q", out)
	}
}

func TestWriteToColorWrapAround(t *testing.T) {
	// Three sources, two palette entries: the third edge reuses the
	// first color.
	plan := route.Build(
		[][]int{{3}, {3}, {3}, {}},
		nil,
		[][]int{{0, 1, 2}, {3}},
		[]int{3, 3, 3, 3},
		0, true,
	)
	g := Compose(plan, []string{"(0)", "(1)", "(2)", "(3)"}, 1)

	var b strings.Builder
	if err := g.WriteTo(&b, ascii, []int{31, 32}); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if strings.Count(out, "\x1b[31m") == 0 || strings.Count(out, "\x1b[32m") == 0 {
		t.Fatalf("expected both palette entries in use: %q", out)
	}
}

func TestMergeTable(t *testing.T) {
	h := line(1, kindHorizontal)
	v := line(1, kindVertical)
	v2 := line(2, kindVertical)
	a := line(1, kindArrow)

	if got := merge(empty, v); got != v {
		t.Errorf("empty+vertical = %+v", got)
	}
	if got := merge(h, v); got.kind != kindCross || got.edge != 1 {
		t.Errorf("horizontal+vertical = %+v", got)
	}
	if got := merge(v, v2); got.kind != kindVertical || got.edge != -1 {
		t.Errorf("verticals of two edges = %+v", got)
	}
	if got := merge(v, a); got.kind != kindArrow || got.edge != 1 {
		t.Errorf("vertical+arrow = %+v", got)
	}
	if got := merge(merge(h, v), v2); got.kind != kindCross || got.edge != -1 {
		t.Errorf("cross+foreign vertical = %+v", got)
	}

	n1 := cell{kind: kindNode, edge: -1, node: 1, ch: 'a'}
	n2 := cell{kind: kindNode, edge: -1, node: 2, ch: 'b'}
	if got := merge(n1, n2); got.node != -1 {
		t.Errorf("node overlap = %+v", got)
	}
	if got := merge(n1, v); got != n1 {
		t.Errorf("node over line = %+v", got)
	}
	if got := merge(v, n1); got != n1 {
		t.Errorf("line under node = %+v", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("horizontal runs of different edges should panic")
		}
	}()
	merge(h, line(2, kindHorizontal))
}
