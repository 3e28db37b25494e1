package graph

import "github.com/knitviz/di-graph-backend/internal/dependency_graph/domain"

// Adjacency is an index over a ProjectGraph for the traversal algorithms.
// Links whose endpoints are not nodes of the graph are dropped.
type Adjacency struct {
	Order []string
	Out   map[string][]string
	In    map[string][]string
}

func NewAdjacency(g *domain.ProjectGraph) *Adjacency {
	a := &Adjacency{
		Order: []string{},
		Out:   map[string][]string{},
		In:    map[string][]string{},
	}
	if g == nil {
		return a
	}
	ids := map[string]bool{}
	for _, n := range g.Nodes {
		if ids[n.ID] {
			continue
		}
		ids[n.ID] = true
		a.Order = append(a.Order, n.ID)
	}
	for _, l := range g.Links {
		if !ids[l.Source] || !ids[l.Target] {
			continue
		}
		a.Out[l.Source] = append(a.Out[l.Source], l.Target)
		a.In[l.Target] = append(a.In[l.Target], l.Source)
	}
	return a
}

// Dangling returns the links that reference a missing node.
func Dangling(g *domain.ProjectGraph) []domain.Link {
	if g == nil {
		return nil
	}
	ids := g.NodeIDs()
	var out []domain.Link
	for _, l := range g.Links {
		if !ids[l.Source] || !ids[l.Target] {
			out = append(out, l)
		}
	}
	return out
}
