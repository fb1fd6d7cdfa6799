package graph

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/termgrid/pkg/errors"
)

// GraphJSON is the canonical serialization format for graphs fed to the
// renderer from files or pipes. The format is human-editable and stable:
// node labels default to the node ID when omitted.
type GraphJSON struct {
	Nodes []NodeJSON `json:"nodes"`
	Edges []EdgeJSON `json:"edges"`
}

// NodeJSON is the serialized form of a single node.
type NodeJSON struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
}

// EdgeJSON is the serialized form of a directed edge.
type EdgeJSON struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// ReadGraph decodes a JSON graph from r into a Graph keyed by node ID,
// with the display label as the node value.
func ReadGraph(r io.Reader) (*Graph[string, string], error) {
	var data GraphJSON
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decoding graph JSON")
	}
	g := New[string, string]()
	for _, n := range data.Nodes {
		if err := errors.ValidateNodeID(n.ID); err != nil {
			return nil, err
		}
		if err := errors.ValidateLabel(n.Label); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "node %q", n.ID)
		}
		label := n.Label
		if label == "" {
			label = n.ID
		}
		g.AddNodes(Node[string, string]{ID: n.ID, Value: label})
	}
	for _, e := range data.Edges {
		if _, ok := g.Value(e.From); !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput, "edge %s->%s: unknown source node", e.From, e.To)
		}
		if _, ok := g.Value(e.To); !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput, "edge %s->%s: unknown target node", e.From, e.To)
		}
		g.AddEdges(Edge[string]{From: e.From, To: e.To})
	}
	return g, nil
}

// ReadGraphFile reads a JSON file and returns the decoded graph.
func ReadGraphFile(path string) (*Graph[string, string], error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "graph file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "opening %s", path)
	}
	defer f.Close()
	return ReadGraph(f)
}

// WriteGraph writes a graph as indented JSON to w.
// Nodes and edges are sorted for deterministic output.
func WriteGraph(g *Graph[string, string], w io.Writer) error {
	out := GraphJSON{}
	for _, id := range g.IDs() {
		label, _ := g.Value(id)
		if label == id {
			label = ""
		}
		out.Nodes = append(out.Nodes, NodeJSON{ID: id, Label: label})
	}
	for _, id := range g.IDs() {
		for _, to := range g.Successors(id) {
			out.Edges = append(out.Edges, EdgeJSON{From: id, To: to})
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encoding graph JSON")
	}
	return nil
}

// MarshalGraph converts a graph to JSON bytes. See WriteGraph.
func MarshalGraph(g *Graph[string, string]) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteGraph(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
