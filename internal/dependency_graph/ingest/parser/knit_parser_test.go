package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_DemoDocument(t *testing.T) {
	doc, err := ParseJSON("../../../../data/knit.json")
	require.NoError(t, err)

	logger, ok := doc["knit/demo/AuditLogger"]
	require.True(t, ok)
	assert.Equal(t, []string{"java.lang.Object"}, logger.Parent)
	assert.True(t, logger.HasProviders())
	assert.Equal(t, "knit.demo.AuditLogger", logger.Providers[0].ProvidedType())
	assert.Equal(t, []string{"knit.demo.EventBus"}, logger.Providers[0].Parameters)

	basic := doc["knit/demo/BasicCommand"]
	inj := basic.Injections["getLogger"]
	require.Len(t, inj.Parameters, 1)
	name, status, ok := inj.Parameters[0].Target()
	assert.True(t, ok)
	assert.Equal(t, "knit.demo.EventBus", name)
	assert.Equal(t, "GLOBAL", status)
}

func TestInjection_TolerantShapes(t *testing.T) {
	doc, err := ParseJSONString(`{
	  "a/A": {"injections": {
	    "list": [{"methodId": "x -> b.B (SINGLETON)"}, "skip", 3],
	    "obj": {"methodId": "x -> c.C", "parameters": ["skip", {"methodId": "y -> d.D (GLOBAL)"}]},
	    "scalarParams": {"methodId": "x -> e.E (FACTORY)", "parameters": "oops"}
	  }}
	}`)
	require.NoError(t, err)

	inj := doc["a/A"].Injections
	require.Len(t, inj["list"].Parameters, 1)
	assert.Equal(t, "x -> b.B (SINGLETON)", inj["list"].Parameters[0].MethodID)

	name, status, ok := inj["obj"].Target()
	assert.True(t, ok)
	assert.Equal(t, "c.C", name)
	assert.Equal(t, "", status)
	require.Len(t, inj["obj"].Parameters, 1)

	assert.Empty(t, inj["scalarParams"].Parameters)
}

func TestInjection_TargetWithoutArrow(t *testing.T) {
	_, _, ok := Injection{MethodID: "nothing here"}.Target()
	assert.False(t, ok)
}

func TestParseJSON_Invalid(t *testing.T) {
	_, err := ParseJSONString(`{"a": [}`)
	assert.Error(t, err)

	_, err = ParseJSON("does-not-exist.json")
	assert.Error(t, err)
}

func TestDocument_Names(t *testing.T) {
	d := Document{"b": {}, "a": {}, "c": {}}
	assert.Equal(t, []string{"a", "b", "c"}, d.Names())
}
