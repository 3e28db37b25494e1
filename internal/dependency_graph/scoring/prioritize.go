package scoring

import (
	"sort"

	"github.com/knitviz/di-graph-backend/internal/dependency_graph/domain"
)

// PrioritizeFindings sorts in place, highest score first. Ties keep their
// detection order.
func PrioritizeFindings(fs []domain.Finding) []domain.Finding {
	sort.SliceStable(fs, func(i, j int) bool {
		si := ScoreFinding(fs[i])
		sj := ScoreFinding(fs[j])
		if si != sj {
			return si > sj
		}
		return severityWeight(fs[i].Severity) > severityWeight(fs[j].Severity)
	})
	return fs
}
