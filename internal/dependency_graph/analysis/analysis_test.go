package analysis

import (
	"testing"

	"github.com/knitviz/di-graph-backend/internal/dependency_graph/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nodes(ids ...string) []domain.Node {
	out := make([]domain.Node, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.Node{ID: id, Type: domain.NodeClass, FullName: id})
	}
	return out
}

func dep(from, to string) domain.Link {
	return domain.Link{Source: from, Target: to, Type: domain.LinkDepends}
}

func triangle() *domain.ProjectGraph {
	return &domain.ProjectGraph{
		Nodes: nodes("A", "B", "C"),
		Links: []domain.Link{dep("A", "B"), dep("B", "C"), dep("C", "A")},
	}
}

func TestDetectCircularPairs_Triangle(t *testing.T) {
	pairs := DetectCircularPairs(triangle())
	assert.Equal(t, []domain.CircularPair{
		{A: "A", B: "B"},
		{A: "B", B: "C"},
		{A: "C", B: "A"},
	}, pairs)
}

func TestDetectCircularPairs_Acyclic(t *testing.T) {
	g := &domain.ProjectGraph{
		Nodes: nodes("A", "B", "C", "D"),
		Links: []domain.Link{dep("A", "B"), dep("A", "C"), dep("B", "D"), dep("C", "D")},
	}
	assert.Empty(t, DetectCircularPairs(g))
}

func TestDetectCircularPairs_MutualPairNotDuplicated(t *testing.T) {
	g := &domain.ProjectGraph{
		Nodes: nodes("A", "B"),
		Links: []domain.Link{
			dep("A", "B"),
			dep("B", "A"),
			{Source: "B", Target: "A", Type: domain.LinkInjects},
		},
	}
	pairs := DetectCircularPairs(g)
	require.Len(t, pairs, 1)
	assert.Equal(t, domain.CircularPair{A: "A", B: "B"}, pairs[0])
}

func TestDetectCircularPairs_SelfLoop(t *testing.T) {
	g := &domain.ProjectGraph{
		Nodes: nodes("A"),
		Links: []domain.Link{dep("A", "A")},
	}
	assert.Equal(t, []domain.CircularPair{{A: "A", B: "A"}}, DetectCircularPairs(g))
}

func TestDetectCircularPairs_OnlyCyclicSegment(t *testing.T) {
	// X -> A -> B -> A : X is on the path but not on the cycle
	g := &domain.ProjectGraph{
		Nodes: nodes("X", "A", "B"),
		Links: []domain.Link{dep("X", "A"), dep("A", "B"), dep("B", "A")},
	}
	pairs := DetectCircularPairs(g)
	assert.Equal(t, []domain.CircularPair{{A: "A", B: "B"}}, pairs)
	assert.Equal(t, []string{"A", "B"}, CircularNodes(pairs))
}

func TestDetectCircularPairs_DanglingLinksIgnored(t *testing.T) {
	g := &domain.ProjectGraph{
		Nodes: nodes("A"),
		Links: []domain.Link{dep("A", "ghost"), dep("ghost", "A")},
	}
	assert.Empty(t, DetectCircularPairs(g))
}

func TestDetectCircularPairs_Deterministic(t *testing.T) {
	g := &domain.ProjectGraph{
		Nodes: nodes("A", "B", "C", "D", "E"),
		Links: []domain.Link{
			dep("A", "B"), dep("B", "C"), dep("C", "A"),
			dep("C", "D"), dep("D", "E"), dep("E", "C"),
		},
	}
	first := DetectCircularPairs(g)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, DetectCircularPairs(g))
	}
	assert.Len(t, first, 6)
}

func TestComputeStatistics_Empty(t *testing.T) {
	assert.Equal(t, domain.Statistics{}, ComputeStatistics(nil))
	assert.Equal(t, domain.Statistics{}, ComputeStatistics(&domain.ProjectGraph{}))
}

func TestComputeStatistics_LinksWithoutNodes(t *testing.T) {
	st := ComputeStatistics(&domain.ProjectGraph{Links: []domain.Link{dep("a", "b"), dep("b", "a")}})
	assert.Equal(t, 0, st.TotalModules)
	assert.Equal(t, 2, st.TotalDependencies)
	assert.Equal(t, 0.0, st.AvgDeps)
	assert.Equal(t, 0, st.MaxDepth)
}

func TestComputeStatistics_Triangle(t *testing.T) {
	st := ComputeStatistics(triangle())
	assert.Equal(t, 3, st.TotalModules)
	assert.Equal(t, 3, st.TotalDependencies)
	assert.Equal(t, 3, st.CircularDeps)
	assert.Equal(t, 3, st.MaxDepth)
	assert.Equal(t, 1.0, st.AvgDeps)
}

func TestComputeStatistics_Counts(t *testing.T) {
	g := &domain.ProjectGraph{
		Nodes: nodes("A", "B", "C"),
		Links: []domain.Link{dep("A", "B"), dep("A", "C"), dep("B", "C"), dep("A", "ghost")},
	}
	st := ComputeStatistics(g)
	assert.Equal(t, len(g.Nodes), st.TotalModules)
	assert.Equal(t, len(g.Links), st.TotalDependencies)
	assert.Equal(t, 1.3, st.AvgDeps)
	assert.Equal(t, 3, st.MaxDepth)
	assert.Zero(t, st.CircularDeps)
}

func TestComputeStatistics_IsolatedNodeDepthOne(t *testing.T) {
	st := ComputeStatistics(&domain.ProjectGraph{Nodes: nodes("solo")})
	assert.Equal(t, 1, st.MaxDepth)
	assert.Equal(t, 0.0, st.AvgDeps)
}

func TestComputeStatistics_SelfLoopIgnoredForDepth(t *testing.T) {
	g := &domain.ProjectGraph{Nodes: nodes("A"), Links: []domain.Link{dep("A", "A")}}
	st := ComputeStatistics(g)
	assert.Equal(t, 1, st.MaxDepth)
	assert.Equal(t, 1, st.CircularDeps)
}

func TestComputeLevels(t *testing.T) {
	g := &domain.ProjectGraph{
		Nodes: nodes("app", "repo", "db", "logger"),
		Links: []domain.Link{dep("app", "repo"), dep("repo", "db"), dep("app", "logger")},
	}
	levels := ComputeLevels(g)
	assert.Equal(t, map[string]int{"app": 2, "repo": 1, "db": 0, "logger": 0}, levels)
	assert.Equal(t, [][]string{{"db", "logger"}, {"repo"}, {"app"}}, GroupByLevel(g, levels))
}

func TestComputeLevels_CycleTerminates(t *testing.T) {
	levels := ComputeLevels(triangle())
	assert.Equal(t, map[string]int{"A": 3, "B": 2, "C": 1}, levels)
}

func TestComputeLevels_Idempotent(t *testing.T) {
	g := triangle()
	g.Links = append(g.Links, dep("A", "C"), dep("A", "A"))
	assert.Equal(t, ComputeLevels(g), ComputeLevels(g))
}

func TestAnalyze(t *testing.T) {
	r := Analyze(triangle())
	assert.Equal(t, 3, r.Statistics.TotalModules)
	assert.Len(t, r.CircularPairs, 3)
	assert.Len(t, r.Levels, 3)
}
