package assembly

import (
	"errors"
	"fmt"
)

// ErrNoAssembly means the Hamiltonian strategy found no path visiting
// every vertex, so no exact assembly exists for the fragment set. It is
// a first-class outcome, distinct from a partial greedy assembly.
var ErrNoAssembly = errors.New("no hamiltonian path through the overlap graph")

// Hamiltonian assembles by exhaustive path search instead of greedy
// contraction: enumerate the simple paths that visit every vertex once,
// keep the one with the maximum total edge weight, then merge the
// vertices in path order with the same contraction rule the greedy
// assembler uses.
//
// The search is a backtracking DFS from every start vertex, pruned as
// soon as a partial path has no unvisited successor. It is exponential,
// so Options.Budget caps the number of vertex visits; an exhausted
// budget fails closed with ErrNoAssembly rather than running unbounded.
func (g *OverlapGraph) Hamiltonian(opt Options) (Result, error) {
	if g.VertexCount() == 1 {
		return g.result(), nil
	}

	s := &hamSearch{
		succ:   make(map[int][]int),
		target: g.VertexCount(),
		budget: opt.Budget,
	}
	for _, id := range g.vertexIDs() {
		s.succ[id] = g.successors(id)
	}

	// weights by ordered pair, so scoring a path doesn't touch the arena
	s.weight = func(source, sink int) int {
		return g.edgeBetween(source, sink).Weight
	}

	for _, start := range g.vertexIDs() {
		s.extend(start, []int{start}, map[int]bool{start: true}, 0)
	}

	if s.exhausted {
		return Result{}, fmt.Errorf("search budget of %d visits spent: %w", opt.Budget, ErrNoAssembly)
	}
	if s.best == nil {
		return Result{}, ErrNoAssembly
	}

	// merge along the path. Each contraction rescores the merged
	// vertex's edges, and the merged sequence always keeps an overlap
	// with the next path vertex, so the chain edge is always present.
	cur := s.best[0]
	for _, next := range s.best[1:] {
		e := g.edgeBetween(cur, next)
		if e == nil {
			stderr.Fatalf("assembly: no edge from merged vertex %d to path vertex %d, which should never happen", cur, next)
		}
		cur = g.contract(e).ID

		if opt.Trace != nil {
			opt.Trace(g.Snapshot())
		}
	}

	return g.result(), nil
}

// hamSearch carries the state of one Hamiltonian path search. Path and
// visited sets are owned by the recursion and unwound on backtrack;
// nothing is shared between the per-start searches except the best path
// found so far.
type hamSearch struct {
	succ   map[int][]int
	weight func(source, sink int) int
	target int

	budget    int
	visits    int
	exhausted bool

	best       []int
	bestWeight int
}

// extend grows a partial path ending at v, recording it as the best
// complete path when it spans every vertex with a higher total weight
// than any seen before
func (s *hamSearch) extend(v int, path []int, visited map[int]bool, weight int) {
	if s.exhausted {
		return
	}
	s.visits++
	if s.budget > 0 && s.visits > s.budget {
		s.exhausted = true
		return
	}

	if len(path) == s.target {
		if s.best == nil || weight > s.bestWeight {
			s.best = append([]int(nil), path...)
			s.bestWeight = weight
		}
		return
	}

	for _, next := range s.succ[v] {
		if visited[next] {
			continue
		}

		visited[next] = true
		s.extend(next, append(path, next), visited, weight+s.weight(v, next))
		delete(visited, next)
	}
}
