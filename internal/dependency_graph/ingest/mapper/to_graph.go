package mapper

import (
	"sort"

	"github.com/knitviz/di-graph-backend/internal/dependency_graph/domain"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/graph"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/ingest/parser"
)

func ensureNode(m *graph.Model, name string, isProvider bool) string {
	id := domain.NormalizeID(name)
	if _, ok := m.Node(id); !ok {
		m.UpsertNode(domain.Node{
			ID:         id,
			Type:       domain.ClassifyNode(name, isProvider, ""),
			IsProvider: isProvider,
			FullName:   name,
		})
	}
	return id
}

// BaseClassesToGraph turns each parent key into a node and each listed child
// into a node with an extends link to that parent.
func BaseClassesToGraph(bc domain.BaseClasses) *domain.ProjectGraph {
	m := graph.NewModel()
	for _, parent := range bc.Parents() {
		pid := ensureNode(m, parent, false)
		for _, child := range bc[parent] {
			cid := ensureNode(m, child.Name, child.IsProvider)
			m.AddLinkIfAbsent(domain.Link{Source: cid, Target: pid, Type: domain.LinkExtends})
		}
	}
	return m.ToGraph()
}

const (
	RoleProvider  = "provider"
	RoleConsumer  = "consumer"
	RoleComposite = "composite"
	RoleNeutral   = "neutral"
)

// Unresolved is a consumed or composite type that no class provides.
type Unresolved struct {
	From string `json:"from" yaml:"from"`
	Type string `json:"type" yaml:"type"`
}

type OverallGraph struct {
	Graph      *domain.ProjectGraph `json:"graph" yaml:"graph"`
	Roles      map[string][]string  `json:"roles" yaml:"roles"`
	Unresolved []Unresolved         `json:"unresolved" yaml:"unresolved"`
}

type classRoles struct {
	provides   []string
	consumes   []string
	composites []string
}

// ToOverallGraph links every consumer to the class providing each type it
// consumes (depends) and every composite owner to the provider of the
// component type (provides).
func ToOverallGraph(d parser.Document) *OverallGraph {
	m := graph.NewModel()
	out := &OverallGraph{Roles: map[string][]string{}, Unresolved: []Unresolved{}}

	providerOf := map[string]string{}
	roles := map[string]*classRoles{}
	names := d.Names()

	for _, name := range names {
		entry := d[name]
		ensureNode(m, name, entry.HasProviders())

		r := &classRoles{}
		for _, p := range entry.Providers {
			t := p.ProvidedType()
			if t == "" {
				continue
			}
			r.provides = append(r.provides, t)
			providerOf[domain.NormalizeID(t)] = name
		}
		for _, key := range sortedKeys(entry.Injections) {
			collectConsumed(entry.Injections[key], &r.consumes)
		}
		for _, key := range sortedKeys(entry.Composite) {
			r.composites = append(r.composites, entry.Composite[key])
		}
		roles[name] = r
	}

	for _, name := range names {
		r := roles[name]
		from := domain.NormalizeID(name)

		for _, t := range dedupe(r.consumes) {
			p, ok := providerOf[domain.NormalizeID(t)]
			if !ok {
				out.Unresolved = append(out.Unresolved, Unresolved{From: from, Type: t})
				continue
			}
			m.AddLinkIfAbsent(domain.Link{Source: from, Target: domain.NormalizeID(p), Type: domain.LinkDepends})
		}
		for _, t := range r.composites {
			p, ok := providerOf[domain.NormalizeID(t)]
			if !ok {
				out.Unresolved = append(out.Unresolved, Unresolved{From: from, Type: t})
				continue
			}
			m.AddLinkIfAbsent(domain.Link{Source: from, Target: domain.NormalizeID(p), Type: domain.LinkProvides})
		}

		out.Roles[from] = r.roleNames()
	}

	out.Graph = m.ToGraph()
	return out
}

func collectConsumed(in parser.Injection, acc *[]string) {
	if t, _, ok := in.Target(); ok {
		*acc = append(*acc, t)
	}
	for _, p := range in.Parameters {
		collectConsumed(p, acc)
	}
}

func (r *classRoles) roleNames() []string {
	var out []string
	if len(r.provides) > 0 {
		out = append(out, RoleProvider)
	}
	if len(r.consumes) > 0 {
		out = append(out, RoleConsumer)
	}
	if len(r.composites) > 0 {
		out = append(out, RoleComposite)
	}
	if len(out) == 0 {
		out = append(out, RoleNeutral)
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func dedupe(in []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
