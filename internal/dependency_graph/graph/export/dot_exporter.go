package export

import (
	"fmt"
	"strings"

	"github.com/knitviz/di-graph-backend/internal/dependency_graph/domain"
)

var nodeStyles = map[domain.NodeType]string{
	domain.NodeClass:      `shape=box,style="rounded,filled",fillcolor="#eef6ff"`,
	domain.NodeProvider:   `shape=box,style="rounded,filled",fillcolor="#d4edda"`,
	domain.NodeModule:     `shape=folder,style="filled",fillcolor="#e2e3e5"`,
	domain.NodeService:    `shape=box,style="rounded,filled",fillcolor="#cce5ff"`,
	domain.NodeRepository: `shape=cylinder,style="filled",fillcolor="#fff3cd"`,
	domain.NodeSingleton:  `shape=doubleoctagon,style="filled",fillcolor="#f8d7da"`,
}

var edgeStyles = map[domain.LinkType]string{
	domain.LinkExtends:  `style=dashed,arrowhead=empty`,
	domain.LinkDepends:  `style=solid`,
	domain.LinkProvides: `style=solid,arrowhead=diamond`,
	domain.LinkInjects:  `style=dotted`,
}

// ToDOT renders g for graphviz. Links between members of a circular pair are
// drawn in red.
func ToDOT(g *domain.ProjectGraph, title string, circular []domain.CircularPair) string {
	var b strings.Builder
	b.WriteString("digraph G {\n  rankdir=LR;\n  node [shape=box, style=rounded, fontname=\"Helvetica\"];\n")
	if title != "" {
		b.WriteString(fmt.Sprintf(`  labelloc="t"; label="%s"; fontname="Helvetica";`, esc(title)))
		b.WriteString("\n")
	}
	if g == nil {
		b.WriteString("}\n")
		return b.String()
	}

	hot := map[[2]string]bool{}
	for _, p := range circular {
		hot[[2]string{p.A, p.B}] = true
		hot[[2]string{p.B, p.A}] = true
	}

	for _, n := range g.Nodes {
		style, ok := nodeStyles[n.Type]
		if !ok {
			style = nodeStyles[domain.NodeClass]
		}
		label := domain.SimpleName(n.ID)
		if n.Scope != "" {
			label = fmt.Sprintf(`%s\n(%s)`, label, n.Scope)
		}
		b.WriteString(fmt.Sprintf(`  "%s" [label="%s", tooltip="%s", %s];`+"\n",
			esc(n.ID), esc(label), esc(n.FullName), style))
	}

	for i, l := range g.Links {
		attrs := edgeStyles[l.Type]
		if hot[[2]string{l.Source, l.Target}] {
			attrs += `,color="#d9534f",penwidth=2`
		}
		b.WriteString(fmt.Sprintf(`  "%s" -> "%s" [label="%s", tooltip="edge#%d", %s];`+"\n",
			esc(l.Source), esc(l.Target), l.Type, i, attrs))
	}

	b.WriteString("}\n")
	return b.String()
}

func esc(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
