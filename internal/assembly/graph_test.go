package assembly

import (
	"testing"
)

func TestNewOverlapGraph(t *testing.T) {
	g := NewOverlapGraph([]string{"ATCG", "CGTA", "TAGG"})

	if g.VertexCount() != 3 {
		t.Errorf("VertexCount() = %d, want 3", g.VertexCount())
	}

	// expected edges: 1->2 ("CG", 2), 2->1 ("A", 1), 2->3 ("TA", 2)
	if g.EdgeCount() != 3 {
		t.Errorf("EdgeCount() = %d, want 3", g.EdgeCount())
	}

	tests := []struct {
		name       string
		source     int
		sink       int
		wantWeight int
		wantMatch  string
	}{
		{
			"CG overlap",
			1, 2,
			2, "CG",
		},
		{
			"single base back edge",
			2, 1,
			1, "A",
		},
		{
			"TA overlap",
			2, 3,
			2, "TA",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := g.edgeBetween(tt.source, tt.sink)
			if e == nil {
				t.Fatalf("edgeBetween(%d, %d) = nil", tt.source, tt.sink)
			}
			if e.Weight != tt.wantWeight {
				t.Errorf("edge %d->%d Weight = %d, want %d", tt.source, tt.sink, e.Weight, tt.wantWeight)
			}
			if e.Match != tt.wantMatch {
				t.Errorf("edge %d->%d Match = %q, want %q", tt.source, tt.sink, e.Match, tt.wantMatch)
			}
		})
	}
}

func TestNewOverlapGraph_noSelfLoops(t *testing.T) {
	// identical reads overlap fully, but never with themselves
	g := NewOverlapGraph([]string{"ATCG", "ATCG"})

	for _, e := range g.edges {
		if e.Source == e.Sink {
			t.Errorf("self-loop on vertex %d", e.Source)
		}
	}
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount() = %d, want 2", g.EdgeCount())
	}
}

func TestNewOverlapGraph_zeroOverlapsMeanNoEdges(t *testing.T) {
	g := NewOverlapGraph([]string{"AAA", "CCC", "GGG"})

	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount() = %d, want 0", g.EdgeCount())
	}
}

func TestOverlapGraph_Snapshot(t *testing.T) {
	g := NewOverlapGraph([]string{"ATCG", "CGTA"})

	s := g.Snapshot()

	if len(s.Vertices) != 2 {
		t.Fatalf("Snapshot() has %d vertices, want 2", len(s.Vertices))
	}
	if s.Vertices[0].ID != 1 || s.Vertices[1].ID != 2 {
		t.Errorf("Snapshot() vertex ids = %d, %d, want 1, 2", s.Vertices[0].ID, s.Vertices[1].ID)
	}
	if len(s.Edges) != g.EdgeCount() {
		t.Errorf("Snapshot() has %d edges, want %d", len(s.Edges), g.EdgeCount())
	}

	// the snapshot is a copy, not a view into the arena
	s.Vertices[0].Seq = "mutated"
	if g.vertices[1].Seq != "ATCG" {
		t.Error("mutating a snapshot changed the live graph")
	}
}

func TestOverlapGraph_successors(t *testing.T) {
	g := NewOverlapGraph([]string{"ATCG", "CGTA", "TAGG"})

	tests := []struct {
		name string
		id   int
		want []int
	}{
		{
			"both directions",
			2,
			[]int{1, 3},
		},
		{
			"single successor",
			1,
			[]int{2},
		},
		{
			"sink only",
			3,
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.successors(tt.id)
			if len(got) != len(tt.want) {
				t.Fatalf("successors(%d) = %v, want %v", tt.id, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("successors(%d) = %v, want %v", tt.id, got, tt.want)
				}
			}
		})
	}
}
