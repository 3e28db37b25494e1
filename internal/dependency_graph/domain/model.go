package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

type Attrs map[string]any

type Node struct {
	ID         string   `json:"id" yaml:"id"`
	Type       NodeType `json:"type" yaml:"type"`
	Scope      string   `json:"scope,omitempty" yaml:"scope,omitempty"`
	IsProvider bool     `json:"is_provider" yaml:"is_provider"`
	FullName   string   `json:"full_name" yaml:"full_name"`
}

type Link struct {
	Source string   `json:"source" yaml:"source"`
	Target string   `json:"target" yaml:"target"`
	Type   LinkType `json:"type" yaml:"type"`
}

// UnmarshalJSON accepts endpoints either as bare ids or as node objects
// carrying an "id", which force-layout clients write back after mutating
// links in place.
func (l *Link) UnmarshalJSON(data []byte) error {
	var raw struct {
		Source json.RawMessage `json:"source"`
		Target json.RawMessage `json:"target"`
		Type   LinkType        `json:"type"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	src, err := endpointID(raw.Source)
	if err != nil {
		return fmt.Errorf("link source: %w", err)
	}
	dst, err := endpointID(raw.Target)
	if err != nil {
		return fmt.Errorf("link target: %w", err)
	}
	*l = Link{Source: src, Target: dst, Type: raw.Type}
	return nil
}

func endpointID(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	var id string
	if err := json.Unmarshal(raw, &id); err == nil {
		return id, nil
	}
	var obj struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", err
	}
	return obj.ID, nil
}

// Key identifies a link by its (source,type,target) triple.
func (l Link) Key() string {
	return l.Source + "\x00" + string(l.Type) + "\x00" + l.Target
}

type ProjectGraph struct {
	Nodes []Node `json:"nodes" yaml:"nodes"`
	Links []Link `json:"links" yaml:"links"`
}

// Clone returns a deep copy so snapshots never alias a live graph.
func (g *ProjectGraph) Clone() *ProjectGraph {
	if g == nil {
		return &ProjectGraph{Nodes: []Node{}, Links: []Link{}}
	}
	out := &ProjectGraph{
		Nodes: make([]Node, len(g.Nodes)),
		Links: make([]Link, len(g.Links)),
	}
	copy(out.Nodes, g.Nodes)
	copy(out.Links, g.Links)
	return out
}

// NodeIDs returns the set of ids present in the graph.
func (g *ProjectGraph) NodeIDs() map[string]bool {
	ids := map[string]bool{}
	if g == nil {
		return ids
	}
	for _, n := range g.Nodes {
		ids[n.ID] = true
	}
	return ids
}

// NormalizeID maps a JVM class name onto the slash form used for node ids,
// e.g. "knit.demo.EventBus" -> "knit/demo/EventBus".
func NormalizeID(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), ".", "/")
}

// CircularPair is unordered: (a,b) and (b,a) describe the same pair.
type CircularPair struct {
	A string `json:"a" yaml:"a"`
	B string `json:"b" yaml:"b"`
}

type Statistics struct {
	TotalModules      int     `json:"total_modules" yaml:"total_modules"`
	TotalDependencies int     `json:"total_dependencies" yaml:"total_dependencies"`
	CircularDeps      int     `json:"circular_deps" yaml:"circular_deps"`
	MaxDepth          int     `json:"max_depth" yaml:"max_depth"`
	AvgDeps           float64 `json:"avg_deps" yaml:"avg_deps"`
}

type Finding struct {
	Kind     FindingKind `json:"kind" yaml:"kind"`
	Severity Severity    `json:"severity" yaml:"severity"`
	Title    string      `json:"title" yaml:"title"`
	Summary  string      `json:"summary" yaml:"summary"`
	Nodes    []string    `json:"nodes" yaml:"nodes"`
	Evidence Attrs       `json:"evidence,omitempty" yaml:"evidence,omitempty"`
}

// HistoryFrame is a snapshot of the visible graph taken before a focus or
// explore transition replaces it.
type HistoryFrame struct {
	Nodes       []Node `json:"nodes"`
	Links       []Link `json:"links"`
	FocusedNode string `json:"focused_node,omitempty"`
}

func (f HistoryFrame) Graph() *ProjectGraph {
	g := &ProjectGraph{Nodes: f.Nodes, Links: f.Links}
	return g.Clone()
}
