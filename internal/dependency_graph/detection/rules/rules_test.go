package rules

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knitviz/di-graph-backend/internal/dependency_graph/detection"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/domain"
)

func node(id string) domain.Node { return domain.Node{ID: id, Type: domain.NodeClass} }

func link(src, dst string, typ domain.LinkType) domain.Link {
	return domain.Link{Source: src, Target: dst, Type: typ}
}

func byKind(fs []domain.Finding, kind domain.FindingKind) []domain.Finding {
	var out []domain.Finding
	for _, f := range fs {
		if f.Kind == kind {
			out = append(out, f)
		}
	}
	return out
}

func TestRegistry_RulesRegistered(t *testing.T) {
	names := []string{}
	for _, d := range detection.All() {
		names = append(names, d.Name())
	}
	assert.Subset(t, names, []string{"circular_dependency", "dangling_reference", "too_many_dependencies"})
}

func TestCycles_GroupsConnectedPairs(t *testing.T) {
	g := &domain.ProjectGraph{
		Nodes: []domain.Node{node("A"), node("B"), node("C"), node("X"), node("Y")},
		Links: []domain.Link{
			link("A", "B", domain.LinkDepends),
			link("B", "C", domain.LinkDepends),
			link("C", "A", domain.LinkDepends),
			link("X", "Y", domain.LinkDepends),
			link("Y", "X", domain.LinkInjects),
		},
	}
	fs, err := cycles{}.Detect(g)
	require.NoError(t, err)
	require.Len(t, fs, 2)
	assert.Equal(t, []string{"A", "B", "C"}, fs[0].Nodes)
	assert.Equal(t, []string{"X", "Y"}, fs[1].Nodes)
	assert.Equal(t, domain.SeverityHigh, fs[0].Severity)
	assert.Len(t, fs[0].Evidence["pairs"], 3)
}

func TestCycles_NoneOnDag(t *testing.T) {
	g := &domain.ProjectGraph{
		Nodes: []domain.Node{node("A"), node("B")},
		Links: []domain.Link{link("A", "B", domain.LinkDepends)},
	}
	fs, err := cycles{}.Detect(g)
	require.NoError(t, err)
	assert.Empty(t, fs)
}

func fanOut(n int) *domain.ProjectGraph {
	g := &domain.ProjectGraph{Nodes: []domain.Node{node("hub")}}
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("dep%d", i)
		g.Nodes = append(g.Nodes, node(id))
		g.Links = append(g.Links, link("hub", id, domain.LinkDepends))
	}
	g.Nodes = append(g.Nodes, node("base"))
	g.Links = append(g.Links, link("hub", "base", domain.LinkExtends))
	return g
}

func TestTooManyDeps_Threshold(t *testing.T) {
	t.Setenv("DETECT_MAX_DEPENDENCIES", "")

	fs, err := tooManyDeps{}.Detect(fanOut(5))
	require.NoError(t, err)
	assert.Empty(t, fs)

	fs, err = tooManyDeps{}.Detect(fanOut(6))
	require.NoError(t, err)
	require.Len(t, fs, 1)
	assert.Equal(t, []string{"hub"}, fs[0].Nodes)
	assert.Equal(t, 6, fs[0].Evidence["dependencies"])
	assert.Equal(t, 5, fs[0].Evidence["threshold"])
}

func TestTooManyDeps_EnvOverride(t *testing.T) {
	t.Setenv("DETECT_MAX_DEPENDENCIES", "2")
	assert.Equal(t, 2, MaxDependencies())

	fs, err := tooManyDeps{}.Detect(fanOut(3))
	require.NoError(t, err)
	assert.Len(t, fs, 1)

	t.Setenv("DETECT_MAX_DEPENDENCIES", "nope")
	assert.Equal(t, DefaultMaxDependencies, MaxDependencies())
}

func TestDangling(t *testing.T) {
	g := &domain.ProjectGraph{
		Nodes: []domain.Node{node("A")},
		Links: []domain.Link{link("A", "Ghost", domain.LinkDepends)},
	}
	fs, err := dangling{}.Detect(g)
	require.NoError(t, err)
	require.Len(t, fs, 1)
	assert.Equal(t, domain.SeverityLow, fs[0].Severity)
	assert.Equal(t, []string{"Ghost"}, fs[0].Evidence["missing"])
}

func TestRunAll(t *testing.T) {
	t.Setenv("DETECT_MAX_DEPENDENCIES", "")
	g := fanOut(6)
	g.Links = append(g.Links, link("dep0", "hub", domain.LinkDepends), link("hub", "missing", domain.LinkProvides))

	fs, err := detection.RunAll(g)
	require.NoError(t, err)
	assert.Len(t, byKind(fs, domain.FindingCircularDependency), 1)
	assert.Len(t, byKind(fs, domain.FindingTooManyDependencies), 1)
	assert.Len(t, byKind(fs, domain.FindingDanglingReference), 1)

	_, err = detection.RunAll(nil)
	assert.Error(t, err)
}
