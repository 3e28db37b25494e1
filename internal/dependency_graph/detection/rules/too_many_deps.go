package rules

import (
	"os"
	"strconv"

	"github.com/knitviz/di-graph-backend/internal/dependency_graph/detection"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/domain"
)

const DefaultMaxDependencies = 5

type tooManyDeps struct{}

func (t tooManyDeps) Name() string { return "too_many_dependencies" }

// MaxDependencies is the out-degree a class may have before it is flagged.
func MaxDependencies() int {
	if v := os.Getenv("DETECT_MAX_DEPENDENCIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return DefaultMaxDependencies
}

// Detect counts distinct non-inheritance targets per source node.
func (t tooManyDeps) Detect(g *domain.ProjectGraph) ([]domain.Finding, error) {
	thr := MaxDependencies()

	targets := map[string]map[string]bool{}
	for _, l := range g.Links {
		if l.Type == domain.LinkExtends || l.Source == l.Target {
			continue
		}
		if targets[l.Source] == nil {
			targets[l.Source] = map[string]bool{}
		}
		targets[l.Source][l.Target] = true
	}

	var out []domain.Finding
	for _, n := range g.Nodes {
		d := len(targets[n.ID])
		if d <= thr {
			continue
		}
		out = append(out, domain.Finding{
			Kind:     domain.FindingTooManyDependencies,
			Severity: domain.SeverityMedium,
			Title:    "Too many dependencies",
			Summary:  "Class depends on more classes than the configured threshold",
			Nodes:    []string{n.ID},
			Evidence: domain.Attrs{"dependencies": d, "threshold": thr},
		})
	}
	return out, nil
}

func init() { detection.Register(tooManyDeps{}) }
