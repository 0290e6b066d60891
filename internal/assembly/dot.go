package assembly

import (
	"fmt"
	"os"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
)

// dotNode labels a graph node with its vertex id and sequence
type dotNode struct {
	id  int64
	seq string
}

func (n dotNode) ID() int64 {
	return n.id
}

func (n dotNode) Attributes() []encoding.Attribute {
	return []encoding.Attribute{
		{Key: "label", Value: fmt.Sprintf("%d: %s", n.id, n.seq)},
	}
}

// dotEdge labels a graph edge with its overlap weight and match
type dotEdge struct {
	from, to graph.Node
	weight   int
	match    string
}

func (e dotEdge) From() graph.Node {
	return e.from
}

func (e dotEdge) To() graph.Node {
	return e.to
}

func (e dotEdge) ReversedEdge() graph.Edge {
	return dotEdge{from: e.to, to: e.from, weight: e.weight, match: e.match}
}

func (e dotEdge) Attributes() []encoding.Attribute {
	return []encoding.Attribute{
		{Key: "label", Value: fmt.Sprintf("%d: %s", e.weight, e.match)},
	}
}

// MarshalDOT renders a graph snapshot to Graphviz DOT, for inspecting
// the overlap graph between merges
func MarshalDOT(s Snapshot, name string) ([]byte, error) {
	dg := simple.NewDirectedGraph()

	nodes := make(map[int]dotNode)
	for _, v := range s.Vertices {
		n := dotNode{id: int64(v.ID), seq: v.Seq}
		nodes[v.ID] = n
		dg.AddNode(n)
	}

	for _, e := range s.Edges {
		dg.SetEdge(dotEdge{
			from:   nodes[e.Source],
			to:     nodes[e.Sink],
			weight: e.Weight,
			match:  e.Match,
		})
	}

	return dot.Marshal(dg, name, "", "  ")
}

// WriteDOT renders a snapshot and writes it to path
func WriteDOT(s Snapshot, name, path string) error {
	b, err := MarshalDOT(s, name)
	if err != nil {
		return fmt.Errorf("failed to render %s: %v", name, err)
	}

	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %v", path, err)
	}
	return nil
}
