package analysis

import (
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/domain"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/graph"
)

type cycleSearch struct {
	adj      *graph.Adjacency
	visited  map[string]bool
	onStack  map[string]bool
	recorded map[domain.CircularPair]bool
	pairs    []domain.CircularPair
}

// DetectCircularPairs walks the directed edge set depth-first and returns
// every consecutive pair of nodes found on a cycle. Start points follow node
// order and edges follow link order, so the result is stable for a given graph.
func DetectCircularPairs(g *domain.ProjectGraph) []domain.CircularPair {
	s := &cycleSearch{
		adj:      graph.NewAdjacency(g),
		visited:  map[string]bool{},
		onStack:  map[string]bool{},
		recorded: map[domain.CircularPair]bool{},
		pairs:    []domain.CircularPair{},
	}
	for _, id := range s.adj.Order {
		if !s.visited[id] {
			s.dfs(id, nil)
		}
	}
	return s.pairs
}

func (s *cycleSearch) dfs(v string, path []string) {
	s.visited[v] = true
	s.onStack[v] = true
	path = append(path, v)

	for _, w := range s.adj.Out[v] {
		if !s.visited[w] {
			s.dfs(w, path)
			continue
		}
		if s.onStack[w] {
			s.recordCycle(path, w)
		}
	}
	s.onStack[v] = false
}

// recordCycle emits the segment of path starting at target, closed back onto
// target.
func (s *cycleSearch) recordCycle(path []string, target string) {
	start := -1
	for i, id := range path {
		if id == target {
			start = i
			break
		}
	}
	if start < 0 {
		return
	}
	for i := start; i < len(path); i++ {
		next := target
		if i+1 < len(path) {
			next = path[i+1]
		}
		s.add(path[i], next)
	}
}

func (s *cycleSearch) add(a, b string) {
	p := domain.CircularPair{A: a, B: b}
	if s.recorded[p] || s.recorded[domain.CircularPair{A: b, B: a}] {
		return
	}
	s.recorded[p] = true
	s.pairs = append(s.pairs, p)
}

// CircularNodes returns the distinct node ids appearing in pairs, in order of
// first appearance.
func CircularNodes(pairs []domain.CircularPair) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, p := range pairs {
		for _, id := range []string{p.A, p.B} {
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}
	return out
}
