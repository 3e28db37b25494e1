package explorer

// Limits bound how far one exploration may grow the graph.
type Limits struct {
	MaxDepth       int
	AttributeDepth int // parameters, components, injections recurse while depth < AttributeDepth
	ChildDepth     int // child classes recurse while depth < ChildDepth
	MaxParameters  int
	MaxComponents  int
	MaxInjections  int
	MaxChildren    int
}

const (
	DefaultMaxDepth       = 5
	DefaultAttributeDepth = 2
	DefaultChildDepth     = 1
	DefaultMaxParameters  = 10
	DefaultMaxComponents  = 10
	DefaultMaxInjections  = 10
	DefaultMaxChildren    = 5
)

func DefaultLimits() Limits {
	return Limits{
		MaxDepth:       DefaultMaxDepth,
		AttributeDepth: DefaultAttributeDepth,
		ChildDepth:     DefaultChildDepth,
		MaxParameters:  DefaultMaxParameters,
		MaxComponents:  DefaultMaxComponents,
		MaxInjections:  DefaultMaxInjections,
		MaxChildren:    DefaultMaxChildren,
	}
}

// withDefaults fills zero or negative caps and MaxDepth from DefaultLimits.
// AttributeDepth and ChildDepth are only defaulted when negative: zero turns
// that kind of recursion off.
func (l Limits) withDefaults() Limits {
	d := DefaultLimits()
	if l.MaxDepth <= 0 {
		l.MaxDepth = d.MaxDepth
	}
	if l.AttributeDepth < 0 {
		l.AttributeDepth = d.AttributeDepth
	}
	if l.ChildDepth < 0 {
		l.ChildDepth = d.ChildDepth
	}
	if l.MaxParameters <= 0 {
		l.MaxParameters = d.MaxParameters
	}
	if l.MaxComponents <= 0 {
		l.MaxComponents = d.MaxComponents
	}
	if l.MaxInjections <= 0 {
		l.MaxInjections = d.MaxInjections
	}
	if l.MaxChildren <= 0 {
		l.MaxChildren = d.MaxChildren
	}
	return l
}
