package rules

import (
	"fmt"

	"github.com/knitviz/di-graph-backend/internal/dependency_graph/detection"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/domain"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/graph"
)

type dangling struct{}

func (d dangling) Name() string { return "dangling_reference" }

func (d dangling) Detect(g *domain.ProjectGraph) ([]domain.Finding, error) {
	ids := g.NodeIDs()
	var out []domain.Finding
	for _, l := range graph.Dangling(g) {
		var missing []string
		if !ids[l.Source] {
			missing = append(missing, l.Source)
		}
		if !ids[l.Target] {
			missing = append(missing, l.Target)
		}
		out = append(out, domain.Finding{
			Kind:     domain.FindingDanglingReference,
			Severity: domain.SeverityLow,
			Title:    "Dangling reference",
			Summary:  fmt.Sprintf("%s link points at a class that is not in the graph", l.Type),
			Nodes:    []string{l.Source, l.Target},
			Evidence: domain.Attrs{"link_type": string(l.Type), "missing": missing},
		})
	}
	return out, nil
}

func init() { detection.Register(dangling{}) }
