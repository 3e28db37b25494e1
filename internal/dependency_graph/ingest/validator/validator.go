package validator

import (
	"fmt"
	"strings"

	"github.com/knitviz/di-graph-backend/internal/dependency_graph/ingest/parser"
)

func Validate(d parser.Document) error {
	if d == nil {
		return fmt.Errorf("document is nil")
	}
	if len(d) == 0 {
		return fmt.Errorf("document has no classes")
	}

	for _, name := range d.Names() {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("class name is empty")
		}
		entry := d[name]
		for _, p := range entry.Parent {
			if strings.TrimSpace(p) == "" {
				return fmt.Errorf("class %q has an empty parent", name)
			}
		}
		for i, p := range entry.Providers {
			if strings.TrimSpace(p.Provider) == "" {
				return fmt.Errorf("class %q: provider %d has no signature", name, i)
			}
		}
		for accessor, typ := range entry.Composite {
			if strings.TrimSpace(typ) == "" {
				return fmt.Errorf("class %q: composite %q has no type", name, accessor)
			}
		}
	}
	return nil
}
