package rules

import (
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/analysis"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/detection"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/domain"
)

type cycles struct{}

func (c cycles) Name() string { return "circular_dependency" }

// Detect groups the circular pairs into connected clusters and reports one
// finding per cluster.
func (c cycles) Detect(g *domain.ProjectGraph) ([]domain.Finding, error) {
	pairs := analysis.DetectCircularPairs(g)
	if len(pairs) == 0 {
		return nil, nil
	}

	parent := map[string]string{}
	var find func(x string) string
	find = func(x string) string {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}
	for _, id := range analysis.CircularNodes(pairs) {
		parent[id] = id
	}
	for _, p := range pairs {
		ra, rb := find(p.A), find(p.B)
		if ra != rb {
			parent[rb] = ra
		}
	}

	var order []string
	members := map[string][]string{}
	groupPairs := map[string][]domain.CircularPair{}
	for _, id := range analysis.CircularNodes(pairs) {
		r := find(id)
		if _, ok := members[r]; !ok {
			order = append(order, r)
		}
		members[r] = append(members[r], id)
	}
	for _, p := range pairs {
		r := find(p.A)
		groupPairs[r] = append(groupPairs[r], p)
	}

	out := make([]domain.Finding, 0, len(order))
	for _, r := range order {
		summary := "Classes depend on each other in a loop"
		if len(members[r]) == 1 {
			summary = "Class depends on itself"
		}
		out = append(out, domain.Finding{
			Kind:     domain.FindingCircularDependency,
			Severity: domain.SeverityHigh,
			Title:    "Circular dependency",
			Summary:  summary,
			Nodes:    members[r],
			Evidence: domain.Attrs{"pairs": groupPairs[r]},
		})
	}
	return out, nil
}

func init() { detection.Register(cycles{}) }
