package explorer

import (
	"regexp"
	"strings"

	"github.com/knitviz/di-graph-backend/internal/dependency_graph/domain"
)

var primitiveNames = map[string]bool{
	"int": true, "long": true, "short": true, "byte": true, "char": true,
	"boolean": true, "float": true, "double": true, "void": true,
	"Integer": true, "Long": true, "Short": true, "Byte": true, "Character": true,
	"Boolean": true, "Float": true, "Double": true, "Void": true,
	"String": true, "Object": true, "Number": true,
	"Unit": true, "Any": true, "Nothing": true,
}

var stdlibPrefixes = []string{
	"java.", "javax.", "kotlin.", "kotlinx.", "android.", "androidx.",
	"sun.", "jdk.", "com.sun.", "scala.", "dagger.",
}

var (
	validClassName = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*([./][A-Za-z_$][A-Za-z0-9_$]*)*$`)
	functionName   = regexp.MustCompile(`^Function\d*$`)
)

// RejectReason explains why a class name is not worth a node, or returns ""
// when the name should be explored.
func RejectReason(name string) string {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return "empty"
	case primitiveNames[name]:
		return "primitive"
	case strings.Contains(name, "[]") || strings.HasPrefix(name, "["):
		return "array"
	case strings.Contains(name, "->") || strings.Contains(name, "=>") || strings.Contains(name, "("):
		return "function"
	case strings.ContainsAny(name, "<>"):
		return "generic"
	}

	dotted := strings.ReplaceAll(name, "/", ".")
	for _, p := range stdlibPrefixes {
		if strings.HasPrefix(dotted, p) {
			return "stdlib"
		}
	}

	simple := domain.SimpleName(name)
	if functionName.MatchString(simple) || strings.Contains(strings.ToLower(simple), "lambda") {
		return "function"
	}
	if !validClassName.MatchString(name) {
		return "special_characters"
	}
	return ""
}

func IsInterestingClassName(name string) bool {
	return RejectReason(name) == ""
}
