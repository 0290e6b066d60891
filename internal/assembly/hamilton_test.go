package assembly

import (
	"errors"
	"testing"
)

func TestOverlapGraph_Hamiltonian(t *testing.T) {
	g := NewOverlapGraph([]string{"ATCG", "CGTA", "TAGG"})

	res, err := g.Hamiltonian(Options{})
	if err != nil {
		t.Fatalf("Hamiltonian() error = %v", err)
	}

	if !res.Assembled() {
		t.Fatalf("Hamiltonian() left a remainder: %v", res.Remainder)
	}
	if res.Seq != "ATCGTAGG" {
		t.Errorf("Hamiltonian() = %q, want %q", res.Seq, "ATCGTAGG")
	}
}

func TestOverlapGraph_Hamiltonian_picksHeaviestPath(t *testing.T) {
	// every permutation of these reads is a complete path. The
	// heaviest is TTT -> TTA -> TAT with total weight 4
	g := NewOverlapGraph([]string{"TTT", "TTA", "TAT"})

	res, err := g.Hamiltonian(Options{})
	if err != nil {
		t.Fatalf("Hamiltonian() error = %v", err)
	}

	if res.Seq != "TTTAT" {
		t.Errorf("Hamiltonian() = %q, want %q", res.Seq, "TTTAT")
	}
}

func TestOverlapGraph_Hamiltonian_noPath(t *testing.T) {
	// disconnected reads have no path through every vertex
	g := NewOverlapGraph([]string{"AAA", "CCC", "GGG"})

	_, err := g.Hamiltonian(Options{})
	if !errors.Is(err, ErrNoAssembly) {
		t.Errorf("Hamiltonian() error = %v, want ErrNoAssembly", err)
	}
}

func TestOverlapGraph_Hamiltonian_budgetFailsClosed(t *testing.T) {
	g := NewOverlapGraph([]string{"ATCG", "CGTA", "TAGG"})

	_, err := g.Hamiltonian(Options{Budget: 1})
	if !errors.Is(err, ErrNoAssembly) {
		t.Errorf("Hamiltonian() error = %v, want a budget error wrapping ErrNoAssembly", err)
	}
}

func TestOverlapGraph_Hamiltonian_singleFragment(t *testing.T) {
	g := NewOverlapGraph([]string{"GATTACA"})

	res, err := g.Hamiltonian(Options{})
	if err != nil {
		t.Fatalf("Hamiltonian() error = %v", err)
	}
	if res.Seq != "GATTACA" {
		t.Errorf("Hamiltonian() = %q, want the lone input back", res.Seq)
	}
}
