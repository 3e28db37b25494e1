// Package explorer grows a ProjectGraph outward from one class by querying a
// class-info provider. Traversal is sequential and bounded by Limits; every
// lookup failure below the root only prunes that branch.
package explorer

import (
	"context"
	"fmt"
	"strings"

	"github.com/knitviz/di-graph-backend/internal/dependency_graph/domain"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/graph"
	"github.com/knitviz/di-graph-backend/internal/logger"
)

type Options struct {
	// Seed is extended rather than replaced unless Isolated is set.
	Seed     *domain.ProjectGraph
	Isolated bool
}

type Stats struct {
	Visited  int `json:"visited"`
	Lookups  int `json:"lookups"`
	Failures int `json:"failures"`
	Filtered int `json:"filtered"`
}

type Result struct {
	Graph *domain.ProjectGraph `json:"graph"`
	Root  string               `json:"root"`
	Stats Stats                `json:"stats"`
}

type Explorer struct {
	provider domain.ClassInfoProvider
	limits   Limits
}

func New(provider domain.ClassInfoProvider, limits Limits) *Explorer {
	return &Explorer{provider: provider, limits: limits.withDefaults()}
}

func (e *Explorer) Limits() Limits { return e.limits }

func (e *Explorer) Explore(ctx context.Context, rootID string, opts Options) (*domain.ProjectGraph, error) {
	res, err := e.ExploreDetailed(ctx, rootID, opts)
	if err != nil {
		return nil, err
	}
	return res.Graph, nil
}

// ExploreDetailed is Explore plus traversal counters.
func (e *Explorer) ExploreDetailed(ctx context.Context, rootID string, opts Options) (*Result, error) {
	log := logger.New(ctx)
	root := strings.TrimSpace(rootID)
	if root == "" {
		log.LogWarn("explore", "rejected empty root class name")
		return nil, domain.ErrInvalidClassName
	}

	t := &traversal{
		ctx:      ctx,
		provider: e.provider,
		limits:   e.limits,
		log:      log,
		visited:  map[string]bool{},
	}
	if opts.Isolated || opts.Seed == nil {
		t.model = graph.NewModel()
	} else {
		t.model = graph.FromGraph(opts.Seed)
	}

	id := domain.NormalizeID(root)
	t.visited[id] = true
	info, err := t.lookup(id)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		log.LogWarnf("explore", "root lookup failed for %s: %v", root, err)
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrRootLookupFailed, root, err)
	}
	t.expand(id, root, info, 0)
	if t.err != nil {
		return nil, t.err
	}

	t.stats.Visited = len(t.visited)
	log.LogDebugf("explore", "explored %s: visited=%d lookups=%d failures=%d filtered=%d",
		root, t.stats.Visited, t.stats.Lookups, t.stats.Failures, t.stats.Filtered)

	return &Result{Graph: t.model.ToGraph(), Root: id, Stats: t.stats}, nil
}

// traversal is the state shared by one exploration's recursive calls.
type traversal struct {
	ctx      context.Context
	provider domain.ClassInfoProvider
	limits   Limits
	log      *logger.Logger

	model   *graph.Model
	visited map[string]bool
	stats   Stats
	err     error
}

func (t *traversal) lookup(id string) (*domain.ClassInfo, error) {
	if err := t.ctx.Err(); err != nil {
		return nil, err
	}
	t.stats.Lookups++
	info, err := t.provider.ClassInfo(t.ctx, id)
	if err == nil && info == nil {
		err = domain.ErrClassNotFound
	}
	if err != nil {
		t.stats.Failures++
		return nil, err
	}
	return info, nil
}

func (t *traversal) visit(name string, depth int) {
	if t.err != nil {
		return
	}
	id := domain.NormalizeID(name)
	if t.visited[id] {
		return
	}
	t.visited[id] = true
	if depth > t.limits.MaxDepth {
		return
	}

	info, err := t.lookup(id)
	if err != nil {
		if ctxErr := t.ctx.Err(); ctxErr != nil {
			t.err = ctxErr
			return
		}
		t.log.LogWarnf("explore", "skipping %s: %v", name, err)
		return
	}
	t.expand(id, name, info, depth)
}

func (t *traversal) interesting(name string) bool {
	if IsInterestingClassName(name) {
		return true
	}
	t.stats.Filtered++
	return false
}

func (t *traversal) expand(id, name string, info *domain.ClassInfo, depth int) {
	fullName := info.Name
	if fullName == "" {
		fullName = name
	}
	t.upsert(domain.Node{
		ID:         id,
		Type:       domain.ClassifyNode(fullName, info.IsProvider, ""),
		IsProvider: info.IsProvider,
		FullName:   fullName,
	})

	if info.ParentClass != nil && strings.TrimSpace(*info.ParentClass) != "" {
		parent := *info.ParentClass
		pid := domain.NormalizeID(parent)
		t.ensure(pid, parent, false, "")
		t.model.AddLinkIfAbsent(domain.Link{Source: id, Target: pid, Type: domain.LinkExtends})
	}

	recurse := depth < t.limits.AttributeDepth

	for _, p := range capSlice(info.Parameters, t.limits.MaxParameters) {
		if !t.interesting(p.Name) {
			continue
		}
		pid := domain.NormalizeID(p.Name)
		t.ensure(pid, p.Name, p.IsProvider, "")
		t.model.AddLinkIfAbsent(domain.Link{Source: id, Target: pid, Type: domain.LinkDepends})
		if recurse {
			t.visit(p.Name, depth+1)
		}
	}

	for _, c := range capSlice(info.Components, t.limits.MaxComponents) {
		if !t.interesting(c) {
			continue
		}
		cid := domain.NormalizeID(c)
		t.ensure(cid, c, false, "")
		t.model.AddLinkIfAbsent(domain.Link{Source: id, Target: cid, Type: domain.LinkProvides})
		if recurse {
			t.visit(c, depth+1)
		}
	}

	for _, inj := range capSlice(info.Injections, t.limits.MaxInjections) {
		if !t.interesting(inj.Name) {
			continue
		}
		iid := domain.NormalizeID(inj.Name)
		scope := ""
		if inj.Status != nil {
			scope = *inj.Status
		}
		t.ensure(iid, inj.Name, false, scope)
		t.model.AddLinkIfAbsent(domain.Link{Source: iid, Target: id, Type: domain.LinkInjects})
		if recurse {
			t.visit(inj.Name, depth+1)
		}
	}

	t.expandChildren(id, depth)
}

func (t *traversal) expandChildren(id string, depth int) {
	if t.err != nil {
		return
	}
	if err := t.ctx.Err(); err != nil {
		t.err = err
		return
	}
	cc, err := t.provider.ChildClasses(t.ctx, id)
	if err != nil || cc == nil {
		if ctxErr := t.ctx.Err(); ctxErr != nil {
			t.err = ctxErr
			return
		}
		if err != nil {
			t.log.LogDebugf("explore", "no child classes for %s: %v", id, err)
		}
		return
	}

	for _, child := range capSlice(cc.ChildClasses, t.limits.MaxChildren) {
		if !t.interesting(child.Name) {
			continue
		}
		cid := domain.NormalizeID(child.Name)
		if cid == id {
			continue
		}
		t.ensure(cid, child.Name, child.IsProvider, "")
		t.model.AddLinkIfAbsent(domain.Link{Source: cid, Target: id, Type: domain.LinkExtends})
		if depth < t.limits.ChildDepth {
			t.visit(child.Name, depth+1)
		}
	}
}

// upsert replaces a node with explored data but keeps an earlier scope and
// spelling when the new record has none.
func (t *traversal) upsert(n domain.Node) {
	if prev, ok := t.model.Node(n.ID); ok {
		if n.Scope == "" {
			n.Scope = prev.Scope
		}
		if prev.FullName != "" {
			n.FullName = prev.FullName
		}
		if n.Scope != "" && n.Type == domain.NodeClass {
			n.Type = domain.ClassifyNode(n.FullName, n.IsProvider, n.Scope)
		}
	}
	t.model.UpsertNode(n)
}

// ensure adds a node discovered as a neighbour without overwriting what an
// exploration already recorded for it.
func (t *traversal) ensure(id, name string, isProvider bool, scope string) {
	prev, ok := t.model.Node(id)
	if !ok {
		t.model.UpsertNode(domain.Node{
			ID:         id,
			Type:       domain.ClassifyNode(name, isProvider, scope),
			Scope:      scope,
			IsProvider: isProvider,
			FullName:   name,
		})
		return
	}
	changed := false
	if isProvider && !prev.IsProvider {
		prev.IsProvider = true
		changed = true
	}
	if scope != "" && prev.Scope == "" {
		prev.Scope = scope
		changed = true
	}
	if changed {
		prev.Type = domain.ClassifyNode(prev.FullName, prev.IsProvider, prev.Scope)
		t.model.UpsertNode(prev)
	}
}

func capSlice[T any](s []T, n int) []T {
	if n >= 0 && len(s) > n {
		return s[:n]
	}
	return s
}
