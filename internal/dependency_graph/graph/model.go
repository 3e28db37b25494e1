package graph

import "github.com/knitviz/di-graph-backend/internal/dependency_graph/domain"

// Model accumulates nodes and links while a graph is being built.
// Nodes are keyed by id (last write wins); links are keyed by their
// (source,type,target) triple when added through AddLinkIfAbsent.
type Model struct {
	nodes map[string]domain.Node
	order []string
	links []domain.Link
	seen  map[string]bool
}

func NewModel() *Model {
	return &Model{
		nodes: map[string]domain.Node{},
		order: []string{},
		links: []domain.Link{},
		seen:  map[string]bool{},
	}
}

// FromGraph seeds a model with an existing graph so later additions extend it.
func FromGraph(g *domain.ProjectGraph) *Model {
	m := NewModel()
	if g == nil {
		return m
	}
	for _, n := range g.Nodes {
		m.UpsertNode(n)
	}
	for _, l := range g.Links {
		m.AddLinkIfAbsent(l)
	}
	return m
}

func (m *Model) UpsertNode(n domain.Node) {
	if _, ok := m.nodes[n.ID]; !ok {
		m.order = append(m.order, n.ID)
	}
	m.nodes[n.ID] = n
}

func (m *Model) Node(id string) (domain.Node, bool) {
	n, ok := m.nodes[id]
	return n, ok
}

func (m *Model) HasNode(id string) bool {
	_, ok := m.nodes[id]
	return ok
}

// AddLink appends unconditionally; endpoints do not need to exist yet.
func (m *Model) AddLink(l domain.Link) {
	m.links = append(m.links, l)
	m.seen[l.Key()] = true
}

// AddLinkIfAbsent reports whether the link was added.
func (m *Model) AddLinkIfAbsent(l domain.Link) bool {
	if m.seen[l.Key()] {
		return false
	}
	m.AddLink(l)
	return true
}

func (m *Model) NodeCount() int { return len(m.order) }
func (m *Model) LinkCount() int { return len(m.links) }

func (m *Model) ToGraph() *domain.ProjectGraph {
	g := &domain.ProjectGraph{
		Nodes: make([]domain.Node, 0, len(m.order)),
		Links: make([]domain.Link, len(m.links)),
	}
	for _, id := range m.order {
		g.Nodes = append(g.Nodes, m.nodes[id])
	}
	copy(g.Links, m.links)
	return g
}
