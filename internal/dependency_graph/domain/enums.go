package domain

type NodeType string

const (
	NodeClass      NodeType = "class"
	NodeProvider   NodeType = "provider"
	NodeModule     NodeType = "module"
	NodeService    NodeType = "service"
	NodeRepository NodeType = "repository"
	NodeSingleton  NodeType = "singleton"
)

type LinkType string

const (
	LinkExtends  LinkType = "extends"
	LinkDepends  LinkType = "depends"
	LinkProvides LinkType = "provides"
	LinkInjects  LinkType = "injects"
)

type FindingKind string

const (
	FindingCircularDependency  FindingKind = "circular_dependency"
	FindingTooManyDependencies FindingKind = "too_many_dependencies"
	FindingDanglingReference   FindingKind = "dangling_reference"
)

type Severity string

const (
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
)
