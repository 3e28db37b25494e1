package detection

import "github.com/knitviz/di-graph-backend/internal/dependency_graph/domain"

type Detector interface {
	Name() string
	Detect(g *domain.ProjectGraph) ([]domain.Finding, error)
}
