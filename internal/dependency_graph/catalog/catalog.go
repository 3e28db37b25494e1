// Package catalog answers class-info queries directly from a parsed knit
// document. It is the in-process counterpart of the upstream HTTP provider.
package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/knitviz/di-graph-backend/internal/dependency_graph/domain"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/ingest/parser"
)

type Catalog struct {
	doc   parser.Document
	index map[string]string // normalized id -> document key
	names []string
}

var _ domain.Provider = (*Catalog)(nil)

func New(doc parser.Document) *Catalog {
	c := &Catalog{
		doc:   doc,
		index: make(map[string]string, len(doc)),
		names: doc.Names(),
	}
	for _, name := range c.names {
		id := domain.NormalizeID(name)
		if _, dup := c.index[id]; !dup {
			c.index[id] = name
		}
	}
	return c
}

func (c *Catalog) Document() parser.Document { return c.doc }

func (c *Catalog) Len() int { return len(c.doc) }

func (c *Catalog) lookup(name string) (string, parser.ClassEntry, bool) {
	key, ok := c.index[domain.NormalizeID(name)]
	if !ok {
		return "", parser.ClassEntry{}, false
	}
	return key, c.doc[key], true
}

// BaseClasses groups every class under the first entry of its parent list.
func (c *Catalog) BaseClasses(ctx context.Context) (domain.BaseClasses, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := domain.BaseClasses{}
	for _, name := range c.names {
		entry := c.doc[name]
		if len(entry.Parent) == 0 {
			continue
		}
		parent := entry.Parent[0]
		out[parent] = append(out[parent], domain.ClassRef{Name: name, IsProvider: entry.HasProviders()})
	}
	return out, nil
}

func (c *Catalog) ClassInfo(ctx context.Context, name string) (*domain.ClassInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrInvalidClassName
	}
	key, entry, ok := c.lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrClassNotFound, name)
	}

	info := &domain.ClassInfo{
		Name:       key,
		Parameters: []domain.ParameterInfo{},
		Components: []string{},
		Injections: []domain.InjectionInfo{},
	}
	if len(entry.Parent) > 0 {
		p := entry.Parent[0]
		info.ParentClass = &p
	}

	// Only the first provider entry describes the class itself.
	if len(entry.Providers) > 0 {
		first := entry.Providers[0]
		info.IsProvider = true
		if strings.Contains(first.Provider, " -> ") {
			pc := first.ProvidedType()
			info.ProviderClass = &pc
		}
		for _, param := range first.Parameters {
			info.Parameters = append(info.Parameters, domain.ParameterInfo{
				Name:       param,
				IsProvider: c.isParameterProvider(param),
			})
		}
	}

	accessors := make([]string, 0, len(entry.Composite))
	for k := range entry.Composite {
		accessors = append(accessors, k)
	}
	sort.Strings(accessors)
	for _, k := range accessors {
		info.Components = append(info.Components, entry.Composite[k])
	}

	keys := make([]string, 0, len(entry.Injections))
	for k := range entry.Injections {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		target, status, ok := entry.Injections[k].Target()
		if !ok {
			continue
		}
		inj := domain.InjectionInfo{Name: target}
		if status != "" {
			s := status
			inj.Status = &s
		}
		info.Injections = append(info.Injections, inj)
	}

	return info, nil
}

// isParameterProvider reports whether any class provides param, either through
// a provider signature ending in it or by being a provider class of that name.
func (c *Catalog) isParameterProvider(param string) bool {
	needle := "-> " + param
	for _, name := range c.names {
		entry := c.doc[name]
		if !entry.HasProviders() {
			continue
		}
		if name == param {
			return true
		}
		for _, p := range entry.Providers {
			if strings.Contains(p.Provider, needle) {
				return true
			}
		}
	}
	return false
}

// ChildClasses lists every class whose parent list names the given class.
func (c *Catalog) ChildClasses(ctx context.Context, name string) (*domain.ChildClasses, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrInvalidClassName
	}
	want := domain.NormalizeID(name)

	children := []domain.ClassRef{}
	for _, child := range c.names {
		entry := c.doc[child]
		for _, p := range entry.Parent {
			if domain.NormalizeID(p) == want {
				children = append(children, domain.ClassRef{Name: child, IsProvider: entry.HasProviders()})
				break
			}
		}
	}
	return &domain.ChildClasses{ParentClass: name, ChildClasses: children, Count: len(children)}, nil
}
