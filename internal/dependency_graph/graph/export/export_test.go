package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/knitviz/di-graph-backend/internal/dependency_graph/domain"
)

func sample() *domain.ProjectGraph {
	return &domain.ProjectGraph{
		Nodes: []domain.Node{
			{ID: "app/UserService", Type: domain.NodeService, FullName: "app.UserService"},
			{ID: "app/UserRepo", Type: domain.NodeRepository, FullName: "app.UserRepo", Scope: "SINGLETON"},
		},
		Links: []domain.Link{
			{Source: "app/UserService", Target: "app/UserRepo", Type: domain.LinkDepends},
			{Source: "app/UserRepo", Target: "app/UserService", Type: domain.LinkInjects},
		},
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(sample(), `knit "demo"`, []domain.CircularPair{{A: "app/UserService", B: "app/UserRepo"}})

	assert.True(t, strings.HasPrefix(dot, "digraph G {"))
	assert.Contains(t, dot, `label="knit \"demo\""`)
	assert.Contains(t, dot, `"app/UserRepo" [label="UserRepo\n(SINGLETON)"`)
	assert.Contains(t, dot, "shape=cylinder")
	assert.Equal(t, 2, strings.Count(dot, `color="#d9534f"`))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
}

func TestToDOT_NoCycles(t *testing.T) {
	dot := ToDOT(sample(), "", nil)
	assert.NotContains(t, dot, "#d9534f")
	assert.NotContains(t, dot, "labelloc")
}

func TestWriteJSONAndYAML(t *testing.T) {
	dir := t.TempDir()
	g := sample()

	jp := filepath.Join(dir, "graph.json")
	require.NoError(t, WriteJSON(jp, g))
	b, err := os.ReadFile(jp)
	require.NoError(t, err)
	var back domain.ProjectGraph
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, *g, back)

	yp := filepath.Join(dir, "graph.yaml")
	require.NoError(t, WriteYAML(yp, g))
	b, err = os.ReadFile(yp)
	require.NoError(t, err)
	var y map[string]any
	require.NoError(t, yaml.Unmarshal(b, &y))
	assert.Len(t, y["nodes"], 2)
	assert.Contains(t, string(b), "full_name: app.UserService")
}
