package analysis

import "github.com/knitviz/di-graph-backend/internal/dependency_graph/domain"

// Report bundles the derived views of one graph snapshot.
type Report struct {
	Statistics    domain.Statistics     `json:"statistics" yaml:"statistics"`
	CircularPairs []domain.CircularPair `json:"circular_pairs" yaml:"circular_pairs"`
	Levels        map[string]int        `json:"levels" yaml:"levels"`
}

func Analyze(g *domain.ProjectGraph) Report {
	return Report{
		Statistics:    ComputeStatistics(g),
		CircularPairs: DetectCircularPairs(g),
		Levels:        ComputeLevels(g),
	}
}
