package scoring

import "github.com/knitviz/di-graph-backend/internal/dependency_graph/domain"

func ScoreFinding(f domain.Finding) int {
	base := severityWeight(f.Severity)
	kind := kindWeight(f.Kind)
	size := 0
	if len(f.Nodes) > 0 {
		size = min(5, len(f.Nodes)-1)
	}
	return base + kind + size
}

func severityWeight(s domain.Severity) int {
	switch s {
	case domain.SeverityHigh:
		return 60
	case domain.SeverityMedium:
		return 35
	case domain.SeverityLow:
		return 15
	default:
		return 20
	}
}

func kindWeight(k domain.FindingKind) int {
	switch k {
	case domain.FindingCircularDependency:
		return 25
	case domain.FindingTooManyDependencies:
		return 20
	case domain.FindingDanglingReference:
		return 5
	default:
		return 10
	}
}
