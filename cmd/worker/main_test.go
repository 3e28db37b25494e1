package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demoPath = "../../data/knit.json"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestAnalyzeCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "analyze", demoPath, "--out", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "Wrote: "+filepath.Join(dir, "graph.dot"))
	assert.Contains(t, out, "knit.demo.ObjectStore")
	for _, name := range []string{"graph.dot", "analysis.json", "analysis.yaml"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestExploreCommand(t *testing.T) {
	out, err := run(t, "explore", demoPath, "knit.demo.AuditLogger")
	require.NoError(t, err)

	var res exploreOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "knit/demo/AuditLogger", res.Root)
	assert.Equal(t, len(res.Graph.Nodes), res.Statistics.TotalModules)
	assert.GreaterOrEqual(t, res.Stats.Lookups, 2)
}

func TestDotCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.dot")
	out, err := run(t, "dot", demoPath, path)
	require.NoError(t, err)
	assert.Contains(t, out, "7 nodes")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "digraph G {")
}

func TestExploreCommand_UnknownClass(t *testing.T) {
	_, err := run(t, "explore", demoPath, "knit.demo.Nope")
	assert.Error(t, err)
}
