package analysis

import (
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/domain"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/graph"
)

type leveler struct {
	adj        *graph.Adjacency
	levels     map[string]int
	inProgress map[string]bool
}

// ComputeLevels assigns each node a layout rank: 0 for nodes without
// outgoing edges, otherwise one more than the highest-ranked dependency.
// Revisiting a node still in progress ranks that visit at 0.
func ComputeLevels(g *domain.ProjectGraph) map[string]int {
	l := &leveler{
		adj:        graph.NewAdjacency(g),
		levels:     map[string]int{},
		inProgress: map[string]bool{},
	}
	for _, id := range l.adj.Order {
		l.level(id)
	}
	return l.levels
}

func (l *leveler) level(id string) int {
	if lv, ok := l.levels[id]; ok {
		return lv
	}
	if l.inProgress[id] {
		return 0
	}
	l.inProgress[id] = true
	defer delete(l.inProgress, id)

	lv := 0
	for _, dep := range l.adj.Out[id] {
		if dep == id {
			continue
		}
		if next := l.level(dep) + 1; next > lv {
			lv = next
		}
	}
	l.levels[id] = lv
	return lv
}

// GroupByLevel buckets node ids by level, keeping node order within a bucket.
func GroupByLevel(g *domain.ProjectGraph, levels map[string]int) [][]string {
	maxLevel := -1
	for _, lv := range levels {
		if lv > maxLevel {
			maxLevel = lv
		}
	}
	out := make([][]string, maxLevel+1)
	seen := map[string]bool{}
	for _, n := range g.Nodes {
		lv, ok := levels[n.ID]
		if !ok || seen[n.ID] {
			continue
		}
		seen[n.ID] = true
		out[lv] = append(out[lv], n.ID)
	}
	return out
}
