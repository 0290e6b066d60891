package assembly

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMarshalDOT(t *testing.T) {
	g := NewOverlapGraph([]string{"ATCG", "CGTA"})

	b, err := MarshalDOT(g.Snapshot(), "overlap_graph")
	if err != nil {
		t.Fatalf("MarshalDOT() error = %v", err)
	}

	out := string(b)
	for _, want := range []string{
		"digraph overlap_graph",
		`label="1: ATCG"`,
		`label="2: CGTA"`,
		`label="2: CG"`, // 1 -> 2, weight 2, match CG
	} {
		if !strings.Contains(out, want) {
			t.Errorf("MarshalDOT() output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteDOT(t *testing.T) {
	g := NewOverlapGraph([]string{"ATCG", "CGTA"})
	path := filepath.Join(t.TempDir(), "graph.gv")

	if err := WriteDOT(g.Snapshot(), "overlap_graph", path); err != nil {
		t.Fatalf("WriteDOT() error = %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "digraph") {
		t.Errorf("WriteDOT() file doesn't look like DOT:\n%s", b)
	}
}
