package assembly

import (
	"math/rand"
)

// Options configures a single assembly run. It is passed in by the
// caller rather than stored on the graph so two runs over the same input
// can't leak settings into one another.
type Options struct {
	// Random breaks max-weight ties uniformly at random instead of by
	// lowest edge id. Random runs aren't reproducible; deterministic
	// runs are.
	Random bool

	// Rand is the source for random tie-breaks. Required when Random
	// is set.
	Rand *rand.Rand

	// Budget caps vertex visits during the Hamiltonian path search.
	// Ignored by the greedy assembler. Zero means no cap.
	Budget int

	// Trace, when non-nil, receives a snapshot of the graph after
	// every contraction
	Trace func(Snapshot)
}

// Result is the outcome of an assembly run: either a single assembled
// sequence, or the unmergeable vertices left when the edges ran out
// before the graph collapsed to one vertex.
type Result struct {
	// Seq is the assembled sequence. Set only when assembly completed.
	Seq string

	// Remainder holds the leftover (id, sequence) pairs of a partial
	// assembly
	Remainder []VertexSnapshot
}

// Assembled reports whether the run merged every fragment into one
// sequence
func (r Result) Assembled() bool {
	return len(r.Remainder) == 0
}

// Greedy collapses the graph by repeatedly contracting the maximum-weight
// edge until no edges remain. One vertex left means a complete assembly;
// more than one is a partial result the caller must handle.
func (g *OverlapGraph) Greedy(opt Options) Result {
	for g.EdgeCount() > 0 {
		g.contract(g.maxEdge(opt))

		if opt.Trace != nil {
			opt.Trace(g.Snapshot())
		}
	}

	return g.result()
}

// result reads the terminal state of the graph into a Result
func (g *OverlapGraph) result() Result {
	if g.VertexCount() == 0 {
		stderr.Fatal("assembly: graph has no vertices left, which should never happen")
	}

	if g.VertexCount() == 1 {
		for _, v := range g.vertices {
			return Result{Seq: v.Seq}
		}
	}

	var left []VertexSnapshot
	for _, id := range g.vertexIDs() {
		left = append(left, VertexSnapshot{ID: id, Seq: g.vertices[id].Seq})
	}
	return Result{Remainder: left}
}

// maxEdge picks the edge to contract next. Deterministic mode takes the
// lowest-id edge among those tied for maximum weight; random mode picks
// uniformly among the tied edges.
func (g *OverlapGraph) maxEdge(opt Options) *Edge {
	var tied []*Edge
	maxWeight := 0
	for _, id := range g.edgeIDs() {
		e := g.edges[id]
		if e.Weight > maxWeight {
			maxWeight = e.Weight
			tied = tied[:0]
		}
		if e.Weight == maxWeight {
			tied = append(tied, e)
		}
	}

	if len(tied) == 0 {
		stderr.Fatal("assembly: no max edge in a graph with edges, which should never happen")
	}

	if opt.Random {
		return tied[opt.Rand.Intn(len(tied))]
	}
	return tied[0]
}

// contract merges the edge's endpoints into one new vertex whose
// sequence is the source's extended by the non-overlapping remainder of
// the sink. Edges touching the old pair are dropped or recomputed:
//
//   - every outgoing edge of the old source is dropped (the source is
//     fully consumed into the merged prefix)
//   - the reverse sink->source edge is dropped if present
//   - every incoming edge of the old sink is dropped
//   - every remaining edge touching either old vertex is redirected to
//     the new one, with its overlap rescored against the merged
//     sequence, never copied
//
// Weights therefore stay consistent with the live sequences after every
// merge.
func (g *OverlapGraph) contract(e *Edge) *Vertex {
	src, ok := g.vertices[e.Source]
	if !ok {
		stderr.Fatalf("assembly: edge %d references missing source vertex %d", e.ID, e.Source)
	}
	snk, ok := g.vertices[e.Sink]
	if !ok {
		stderr.Fatalf("assembly: edge %d references missing sink vertex %d", e.ID, e.Sink)
	}

	merged := src.Seq + snk.Seq[e.MatchEnd:]

	for _, id := range g.edgeIDs() {
		ed := g.edges[id]
		switch {
		case ed.Source == src.ID: // outgoing from source
			g.removeEdge(id)
		case ed.Source == snk.ID && ed.Sink == src.ID: // reverse edge
			g.removeEdge(id)
		case ed.Sink == snk.ID: // incoming to sink
			g.removeEdge(id)
		}
	}

	v := g.addVertex(merged)

	// redirect survivors: incoming edges of the old source and outgoing
	// edges of the old sink, rescored against the merged sequence
	for _, id := range g.edgeIDs() {
		ed, ok := g.edges[id]
		if !ok {
			continue
		}
		if ed.Sink == src.ID || ed.Sink == snk.ID {
			source := ed.Source
			g.removeEdge(id)
			g.addEdge(source, v.ID)
		} else if ed.Source == src.ID || ed.Source == snk.ID {
			sink := ed.Sink
			g.removeEdge(id)
			g.addEdge(v.ID, sink)
		}
	}

	g.removeVertex(src.ID)
	g.removeVertex(snk.ID)

	if g.VertexCount() == 0 {
		stderr.Fatal("assembly: contraction emptied the graph, which should never happen")
	}

	return v
}
