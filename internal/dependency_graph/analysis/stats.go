package analysis

import (
	"math"

	"github.com/knitviz/di-graph-backend/internal/dependency_graph/domain"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/graph"
)

// ComputeStatistics derives the aggregate metrics shown for a graph.
// A nil graph yields all-zero statistics. Links are always counted, even
// when no node is left to carry them.
func ComputeStatistics(g *domain.ProjectGraph) domain.Statistics {
	if g == nil {
		return domain.Statistics{}
	}
	if len(g.Nodes) == 0 {
		return domain.Statistics{
			TotalDependencies: len(g.Links),
			CircularDeps:      len(DetectCircularPairs(g)),
		}
	}
	st := domain.Statistics{
		TotalModules:      len(g.Nodes),
		TotalDependencies: len(g.Links),
		CircularDeps:      len(DetectCircularPairs(g)),
		MaxDepth:          maxDepth(g),
	}
	st.AvgDeps = roundTenth(float64(st.TotalDependencies) / float64(st.TotalModules))
	return st
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// maxDepth is the longest dependency chain counted in nodes. A node met again
// on the active path counts as 0, which undercounts through cycles instead of
// looping.
func maxDepth(g *domain.ProjectGraph) int {
	adj := graph.NewAdjacency(g)
	memo := map[string]int{}
	onPath := map[string]bool{}

	var depth func(id string) int
	depth = func(id string) int {
		if onPath[id] {
			return 0
		}
		if d, ok := memo[id]; ok {
			return d
		}
		onPath[id] = true
		deepest := 0
		for _, child := range adj.Out[id] {
			if child == id {
				continue
			}
			if d := depth(child); d > deepest {
				deepest = d
			}
		}
		onPath[id] = false
		memo[id] = 1 + deepest
		return memo[id]
	}

	best := 0
	for _, id := range adj.Order {
		if d := depth(id); d > best {
			best = d
		}
	}
	return best
}
