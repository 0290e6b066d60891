// Package assembly reconstructs a DNA sequence from overlapping reads.
//
// Reads become vertices of a directed overlap graph whose edges carry the
// length of the best suffix/prefix alignment between their endpoints. The
// graph is then collapsed one merge at a time, either greedily along the
// heaviest edge or along a maximum-weight Hamiltonian path, until a single
// sequence remains or no further merge is possible.
package assembly

import (
	"log"
	"os"
	"sort"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// Vertex is one node of the overlap graph. Its sequence is an input
// fragment, or the concatenation of merged fragments after contractions.
// Vertex ids are unique within a graph and never reused.
type Vertex struct {
	ID  int
	Seq string
}

// Edge records that the longest suffix of the source vertex's sequence
// equals a prefix of the sink's. Weight is that overlap's length and is
// always > 0: a zero-weight overlap is encoded by the edge's absence.
// MatchStart and MatchEnd bound the matched prefix within the sink's
// sequence. Endpoints are referenced by id, never by pointer, so nothing
// dangles when a vertex is removed.
type Edge struct {
	ID         int
	Source     int
	Sink       int
	Weight     int
	Match      string
	MatchStart int
	MatchEnd   int
}

// pair is an ordered (source, sink) vertex id pair. The graph holds at
// most one edge per pair.
type pair struct {
	source int
	sink   int
}

// OverlapGraph owns the live vertices and edges, addressed by stable
// integer ids. All mutation goes through its methods so the model's
// invariants hold after every operation: no self-loops, one edge per
// ordered pair, endpoints always present, weights never stale.
type OverlapGraph struct {
	vertices map[int]*Vertex
	edges    map[int]*Edge

	// byPair indexes edge ids by their ordered endpoint pair
	byPair map[pair]int

	nextVertex int
	nextEdge   int
}

// NewOverlapGraph builds the all-pairs overlap graph for a fragment
// list: one vertex per fragment, ids 1..n in input order, and a directed
// edge for every ordered pair of distinct vertices with a nonzero
// overlap.
func NewOverlapGraph(fragments []string) *OverlapGraph {
	g := &OverlapGraph{
		vertices:   make(map[int]*Vertex),
		edges:      make(map[int]*Edge),
		byPair:     make(map[pair]int),
		nextVertex: 1,
		nextEdge:   1,
	}

	for _, frag := range fragments {
		g.addVertex(frag)
	}

	for _, source := range g.vertexIDs() {
		for _, sink := range g.vertexIDs() {
			if source == sink {
				continue
			}
			g.addEdge(source, sink)
		}
	}

	return g
}

// addVertex creates a vertex holding seq with the next monotonic id
func (g *OverlapGraph) addVertex(seq string) *Vertex {
	v := &Vertex{
		ID:  g.nextVertex,
		Seq: seq,
	}
	g.nextVertex++
	g.vertices[v.ID] = v
	return v
}

// addEdge scores source against sink and stores an edge when the overlap
// is nonzero. Both endpoints must be live vertices.
func (g *OverlapGraph) addEdge(source, sink int) *Edge {
	if source == sink {
		stderr.Fatalf("assembly: self-loop on vertex %d", source)
	}

	src, ok := g.vertices[source]
	if !ok {
		stderr.Fatalf("assembly: edge references missing source vertex %d", source)
	}
	snk, ok := g.vertices[sink]
	if !ok {
		stderr.Fatalf("assembly: edge references missing sink vertex %d", sink)
	}

	ov := overlap(src.Seq, snk.Seq)
	if ov.Weight == 0 {
		return nil
	}

	if prev, ok := g.byPair[pair{source, sink}]; ok {
		g.removeEdge(prev)
	}

	e := &Edge{
		ID:         g.nextEdge,
		Source:     source,
		Sink:       sink,
		Weight:     ov.Weight,
		Match:      ov.Match,
		MatchStart: ov.PrefixStart,
		MatchEnd:   ov.PrefixEnd,
	}
	g.nextEdge++
	g.edges[e.ID] = e
	g.byPair[pair{source, sink}] = e.ID
	return e
}

// removeEdge drops an edge from the arena and the pair index
func (g *OverlapGraph) removeEdge(id int) {
	e, ok := g.edges[id]
	if !ok {
		return
	}
	delete(g.byPair, pair{e.Source, e.Sink})
	delete(g.edges, id)
}

// removeVertex drops a vertex. Callers must have removed or redirected
// every edge touching it first.
func (g *OverlapGraph) removeVertex(id int) {
	delete(g.vertices, id)
}

// edgeBetween returns the edge from source to sink, or nil
func (g *OverlapGraph) edgeBetween(source, sink int) *Edge {
	if id, ok := g.byPair[pair{source, sink}]; ok {
		return g.edges[id]
	}
	return nil
}

// VertexCount is the number of live vertices
func (g *OverlapGraph) VertexCount() int {
	return len(g.vertices)
}

// EdgeCount is the number of live edges
func (g *OverlapGraph) EdgeCount() int {
	return len(g.edges)
}

// vertexIDs returns the live vertex ids in ascending order. Sorting
// keeps every scan over the arena deterministic despite map iteration.
func (g *OverlapGraph) vertexIDs() []int {
	ids := make([]int, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// edgeIDs returns the live edge ids in ascending order
func (g *OverlapGraph) edgeIDs() []int {
	ids := make([]int, 0, len(g.edges))
	for id := range g.edges {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// successors returns the sinks of all outgoing edges of a vertex,
// ascending
func (g *OverlapGraph) successors(id int) []int {
	var sinks []int
	for p := range g.byPair {
		if p.source == id {
			sinks = append(sinks, p.sink)
		}
	}
	sort.Ints(sinks)
	return sinks
}

// VertexSnapshot is a read-only copy of a vertex for callers outside the
// package: the output writer, the DOT renderer, tracing.
type VertexSnapshot struct {
	ID  int    `json:"id"`
	Seq string `json:"seq"`
}

// EdgeSnapshot is a read-only copy of an edge
type EdgeSnapshot struct {
	ID     int    `json:"id"`
	Source int    `json:"source"`
	Sink   int    `json:"sink"`
	Weight int    `json:"weight"`
	Match  string `json:"match"`
}

// Snapshot is the full read-only state of the graph at one point in the
// assembly, vertices and edges sorted by id
type Snapshot struct {
	Vertices []VertexSnapshot `json:"vertices"`
	Edges    []EdgeSnapshot   `json:"edges"`
}

// Snapshot copies the current vertices and edges so callers can render
// or log the graph without touching the live arenas
func (g *OverlapGraph) Snapshot() Snapshot {
	var s Snapshot
	for _, id := range g.vertexIDs() {
		v := g.vertices[id]
		s.Vertices = append(s.Vertices, VertexSnapshot{ID: v.ID, Seq: v.Seq})
	}
	for _, id := range g.edgeIDs() {
		e := g.edges[id]
		s.Edges = append(s.Edges, EdgeSnapshot{
			ID:     e.ID,
			Source: e.Source,
			Sink:   e.Sink,
			Weight: e.Weight,
			Match:  e.Match,
		})
	}
	return s
}
