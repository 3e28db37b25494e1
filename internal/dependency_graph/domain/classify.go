package domain

import "strings"

// ClassifyNode picks a display type from what is known about a class.
func ClassifyNode(name string, isProvider bool, scope string) NodeType {
	if isProvider {
		return NodeProvider
	}
	simple := SimpleName(name)
	switch {
	case strings.HasSuffix(simple, "Module"):
		return NodeModule
	case strings.HasSuffix(simple, "Service"):
		return NodeService
	case strings.HasSuffix(simple, "Repository"), strings.HasSuffix(simple, "Repo"):
		return NodeRepository
	case strings.HasSuffix(simple, "Singleton"), strings.EqualFold(scope, "singleton"):
		return NodeSingleton
	}
	return NodeClass
}

// SimpleName returns the last segment of a dotted or slashed class name.
func SimpleName(name string) string {
	if i := strings.LastIndexAny(name, "./"); i >= 0 {
		return name[i+1:]
	}
	return name
}
