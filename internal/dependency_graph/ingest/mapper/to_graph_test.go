package mapper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knitviz/di-graph-backend/internal/dependency_graph/domain"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/ingest/parser"
)

func TestBaseClassesToGraph_SingleGroup(t *testing.T) {
	var bc domain.BaseClasses
	require.NoError(t, json.Unmarshal([]byte(`{"BaseService":[{"name":"UserService","is_provider":true}],"BaseService_count":1}`), &bc))

	g := BaseClassesToGraph(bc)
	require.Len(t, g.Nodes, 2)
	require.Len(t, g.Links, 1)

	assert.Equal(t, "BaseService", g.Nodes[0].ID)
	assert.Equal(t, "UserService", g.Nodes[1].ID)
	assert.True(t, g.Nodes[1].IsProvider)
	assert.Equal(t, domain.NodeProvider, g.Nodes[1].Type)
	assert.Equal(t, domain.Link{Source: "UserService", Target: "BaseService", Type: domain.LinkExtends}, g.Links[0])
}

func TestBaseClassesToGraph_NormalizesAndDedupes(t *testing.T) {
	bc := domain.BaseClasses{
		"java.lang.Object": {{Name: "knit/demo/EventBus"}, {Name: "knit.demo.EventBus"}},
		"knit.demo.GitCommand": {{Name: "knit/demo/AddCommand"}},
	}
	g := BaseClassesToGraph(bc)

	assert.Len(t, g.Nodes, 4)
	assert.Len(t, g.Links, 2)
	assert.Equal(t, "java/lang/Object", g.Nodes[0].ID)
	assert.Equal(t, "knit/demo/EventBus", g.Nodes[1].FullName)
}

const overallDoc = `{
  "app/Logger": {"providers": [{"provider": "app.Logger.<init> -> app.Logger"}]},
  "app/Store": {"providers": [{"provider": "app.Store.<init> -> app.Store"}]},
  "app/Handler": {
    "composite": {"getStore": "app.Store", "getCache": "app.Cache"},
    "injections": {
      "log": {"methodId": "app.Logger.<init> -> app.Logger (SINGLETON)", "parameters": [
        {"methodId": "app.Clock.<init> -> app.Clock (FACTORY)"}, "ignored"
      ]}
    }
  },
  "app/Plain": {}
}`

func TestToOverallGraph(t *testing.T) {
	doc, err := parser.ParseJSONString(overallDoc)
	require.NoError(t, err)

	og := ToOverallGraph(doc)
	assert.Len(t, og.Graph.Nodes, 4)
	assert.ElementsMatch(t, []domain.Link{
		{Source: "app/Handler", Target: "app/Logger", Type: domain.LinkDepends},
		{Source: "app/Handler", Target: "app/Store", Type: domain.LinkProvides},
	}, og.Graph.Links)
	assert.ElementsMatch(t, []Unresolved{
		{From: "app/Handler", Type: "app.Clock"},
		{From: "app/Handler", Type: "app.Cache"},
	}, og.Unresolved)

	assert.Equal(t, []string{RoleConsumer, RoleComposite}, og.Roles["app/Handler"])
	assert.Equal(t, []string{RoleProvider}, og.Roles["app/Logger"])
	assert.Equal(t, []string{RoleNeutral}, og.Roles["app/Plain"])
}
