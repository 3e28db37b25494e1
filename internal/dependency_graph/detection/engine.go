package detection

import (
	"fmt"

	"github.com/knitviz/di-graph-backend/internal/dependency_graph/domain"
)

func RunAll(g *domain.ProjectGraph) ([]domain.Finding, error) {
	return Run(g, All())
}

func Run(g *domain.ProjectGraph, detectors []Detector) ([]domain.Finding, error) {
	if g == nil {
		return nil, fmt.Errorf("detection: graph is nil")
	}

	out := []domain.Finding{}
	for _, det := range detectors {
		fs, err := det.Detect(g)
		if err != nil {
			return nil, fmt.Errorf("detector %q failed: %w", det.Name(), err)
		}
		out = append(out, fs...)
	}
	return out, nil
}
