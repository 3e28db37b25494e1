package service

import (
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/analysis"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/detection"
	_ "github.com/knitviz/di-graph-backend/internal/dependency_graph/detection/rules"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/domain"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/scoring"
)

// Analyze derives statistics, cycles, levels and prioritized findings from an
// immutable graph snapshot.
func Analyze(g *domain.ProjectGraph) (*AnalysisResult, error) {
	if g == nil {
		g = &domain.ProjectGraph{Nodes: []domain.Node{}, Links: []domain.Link{}}
	}
	report := analysis.Analyze(g)

	findings, err := detection.RunAll(g)
	if err != nil {
		return nil, err
	}
	for i := range findings {
		if findings[i].Nodes == nil {
			findings[i].Nodes = []string{}
		}
	}
	if report.CircularPairs == nil {
		report.CircularPairs = []domain.CircularPair{}
	}

	return &AnalysisResult{
		Report:      report,
		LevelGroups: analysis.GroupByLevel(g, report.Levels),
		Findings:    scoring.PrioritizeFindings(findings),
	}, nil
}
