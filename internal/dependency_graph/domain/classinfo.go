package domain

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
)

type ClassRef struct {
	Name       string `json:"name"`
	IsProvider bool   `json:"is_provider"`
}

type ParameterInfo struct {
	Name       string `json:"name"`
	IsProvider bool   `json:"is_provider"`
}

type InjectionInfo struct {
	Name   string  `json:"name"`
	Status *string `json:"status"`
}

type ClassInfo struct {
	Name          string          `json:"name"`
	ParentClass   *string         `json:"parent_class"`
	IsProvider    bool            `json:"is_provider"`
	ProviderClass *string         `json:"provider_class"`
	Parameters    []ParameterInfo `json:"parameters"`
	Components    []string        `json:"components"`
	Injections    []InjectionInfo `json:"injections"`
}

type ChildClasses struct {
	ParentClass  string     `json:"parent_class"`
	ChildClasses []ClassRef `json:"child_classes"`
	Count        int        `json:"count"`
}

// BaseClasses maps a parent class name to the classes extending it.
// On the wire each group is accompanied by a "<parent>_count" key.
type BaseClasses map[string][]ClassRef

func (b BaseClasses) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(b)*2)
	for parent, children := range b {
		if children == nil {
			children = []ClassRef{}
		}
		out[parent] = children
		out[parent+"_count"] = len(children)
	}
	return json.Marshal(out)
}

func (b *BaseClasses) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := BaseClasses{}
	for key, val := range raw {
		if strings.HasSuffix(key, "_count") {
			continue
		}
		var refs []ClassRef
		if err := json.Unmarshal(val, &refs); err != nil {
			// non-array values are metadata, not groups
			continue
		}
		out[key] = refs
	}
	*b = out
	return nil
}

// Parents returns the parent names in a stable order.
func (b BaseClasses) Parents() []string {
	keys := make([]string, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type BaseClassProvider interface {
	BaseClasses(ctx context.Context) (BaseClasses, error)
}

type ClassInfoProvider interface {
	ClassInfo(ctx context.Context, name string) (*ClassInfo, error)
	ChildClasses(ctx context.Context, name string) (*ChildClasses, error)
}

// Provider is the full set of lookups the graph layer consumes.
type Provider interface {
	BaseClassProvider
	ClassInfoProvider
}
