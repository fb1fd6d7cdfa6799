package graph

import (
	"reflect"
	"testing"
)

func TestAddNodesUpsert(t *testing.T) {
	g := New[int, string]()
	g.AddNodes(
		Node[int, string]{ID: 1, Value: "one"},
		Node[int, string]{ID: 2, Value: "two"},
	)
	g.AddNodes(Node[int, string]{ID: 1, Value: "uno"})

	if g.NodeCount() != 2 {
		t.Fatalf("NodeCount() = %d, want 2", g.NodeCount())
	}
	if v, ok := g.Value(1); !ok || v != "uno" {
		t.Errorf("Value(1) = %q, %v; want uno, true", v, ok)
	}
}

func TestAddEdgesSetSemantics(t *testing.T) {
	g := New[int, string]()
	g.AddNodes(
		Node[int, string]{ID: 0, Value: "a"},
		Node[int, string]{ID: 1, Value: "b"},
	)
	g.AddEdges(
		Edge[int]{From: 0, To: 1},
		Edge[int]{From: 0, To: 1},
		Edge[int]{From: 0, To: 0},
	)

	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount() = %d, want 2 (duplicate absorbed, self-loop kept)", g.EdgeCount())
	}
	if !g.HasEdge(0, 1) || !g.HasEdge(0, 0) {
		t.Error("expected edges (0,1) and (0,0)")
	}
	if g.HasEdge(1, 0) {
		t.Error("unexpected edge (1,0)")
	}
}

func TestIDsSorted(t *testing.T) {
	g := New[string, int]()
	for _, id := range []string{"delta", "alpha", "charlie", "bravo"} {
		g.AddNodes(Node[string, int]{ID: id})
	}
	want := []string{"alpha", "bravo", "charlie", "delta"}
	if got := g.IDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("IDs() = %v, want %v", got, want)
	}
}

func TestSuccessorsSorted(t *testing.T) {
	g := New[int, struct{}]()
	for i := 0; i < 5; i++ {
		g.AddNodes(Node[int, struct{}]{ID: i})
	}
	g.AddEdges(
		Edge[int]{From: 0, To: 4},
		Edge[int]{From: 0, To: 1},
		Edge[int]{From: 0, To: 3},
	)
	want := []int{1, 3, 4}
	if got := g.Successors(0); !reflect.DeepEqual(got, want) {
		t.Errorf("Successors(0) = %v, want %v", got, want)
	}
	if got := g.Successors(2); got != nil {
		t.Errorf("Successors(2) = %v, want nil", got)
	}
}

func TestIsEmpty(t *testing.T) {
	g := New[int, string]()
	if !g.IsEmpty() {
		t.Error("new graph should be empty")
	}
	g.AddNodes(Node[int, string]{ID: 0})
	if g.IsEmpty() {
		t.Error("graph with a node should not be empty")
	}
}

func TestEdges(t *testing.T) {
	g := New[int, string]()
	g.AddNodes(Node[int, string]{ID: 0}, Node[int, string]{ID: 1})
	g.AddEdges(
		Edge[int]{From: 1, To: 0},
		Edge[int]{From: 0, To: 1},
		Edge[int]{From: 1, To: 99},
	)

	want := []Edge[int]{{From: 0, To: 1}, {From: 1, To: 0}, {From: 1, To: 99}}
	if got := g.Edges(); !reflect.DeepEqual(got, want) {
		t.Errorf("Edges() = %v, want %v", got, want)
	}
}

func TestFormatters(t *testing.T) {
	idf := IDFormatter[int, string]{}
	if got := idf.FormatNode(7, "seven"); got != "(7)" {
		t.Errorf("IDFormatter = %q, want (7)", got)
	}

	vf := ValueFormatter[int, string]{}
	if got := vf.FormatNode(7, "seven"); got != "(seven)" {
		t.Errorf("ValueFormatter = %q, want (seven)", got)
	}

	ff := FormatterFunc[int, string](func(id int, v string) string { return v })
	if got := ff.FormatNode(7, "seven"); got != "seven" {
		t.Errorf("FormatterFunc = %q, want seven", got)
	}
}
