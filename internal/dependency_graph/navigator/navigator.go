// Package navigator narrows a graph to the neighbourhood of one node and keeps
// an undo stack of the graphs it replaced.
package navigator

import (
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/domain"
)

// Navigator is not safe for concurrent use; callers serialize access.
type Navigator struct {
	history []domain.HistoryFrame
	focused string
}

func New() *Navigator {
	return &Navigator{}
}

func (n *Navigator) Focused() string { return n.focused }

func (n *Navigator) Depth() int { return len(n.history) }

// SetFocus changes the focus without recording history. Callers that replace
// the visible graph Push the old one first.
func (n *Navigator) SetFocus(nodeID string) { n.focused = nodeID }

// Push records graph and the given focus as a frame without changing the
// current focus.
func (n *Navigator) Push(g *domain.ProjectGraph, focused string) {
	c := g.Clone()
	n.history = append(n.history, domain.HistoryFrame{
		Nodes:       c.Nodes,
		Links:       c.Links,
		FocusedNode: focused,
	})
}

// Focus returns the subgraph induced by nodeID and its direct neighbours.
// The unfocused graph and the previous focus are pushed first so GoBack can
// restore them.
func (n *Navigator) Focus(nodeID string, g *domain.ProjectGraph) (*domain.ProjectGraph, error) {
	if g == nil || !g.NodeIDs()[nodeID] {
		return nil, domain.ErrNodeNotFound
	}

	n.Push(g, n.focused)
	n.focused = nodeID
	return Neighbourhood(nodeID, g), nil
}

// GoBack pops the most recent frame. It reports false and leaves state alone
// when there is nothing to go back to.
func (n *Navigator) GoBack() (*domain.HistoryFrame, bool) {
	if len(n.history) == 0 {
		return nil, false
	}
	last := n.history[len(n.history)-1]
	n.history = n.history[:len(n.history)-1]
	n.focused = last.FocusedNode
	return &last, true
}

func (n *Navigator) ClearHistory() {
	n.history = nil
	n.focused = ""
}

// Neighbourhood keeps nodeID, every node one link away in either direction,
// and the links among them.
func Neighbourhood(nodeID string, g *domain.ProjectGraph) *domain.ProjectGraph {
	keep := map[string]bool{nodeID: true}
	for _, l := range g.Links {
		switch nodeID {
		case l.Source:
			keep[l.Target] = true
		case l.Target:
			keep[l.Source] = true
		}
	}

	out := &domain.ProjectGraph{Nodes: []domain.Node{}, Links: []domain.Link{}}
	for _, node := range g.Nodes {
		if keep[node.ID] {
			out.Nodes = append(out.Nodes, node)
		}
	}
	present := out.NodeIDs()
	for _, l := range g.Links {
		if present[l.Source] && present[l.Target] {
			out.Links = append(out.Links, l)
		}
	}
	return out
}
