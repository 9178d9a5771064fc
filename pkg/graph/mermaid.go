package graph

import (
	"fmt"
	"strings"
)

// Mermaid renders the graph as a Mermaid flowchart (graph TD). Leaves are
// drawn as circles and derived nodes as rectangles; edges point in data-feed
// direction. Node identifiers follow discovery order, same as DOT.
func Mermaid(g *Graph) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for i, node := range g.Nodes {
		// Mermaid reserves double quotes for the label delimiter.
		label := strings.ReplaceAll(node.Label(), "\"", "'")

		opener, closer := "[", "]"
		if _, derived := node.Operands(); !derived {
			opener, closer = "((", "))"
		}
		fmt.Fprintf(&sb, "    op%d%s\"%s\"%s\n", i, opener, label, closer)
	}

	for _, e := range g.Edges {
		fmt.Fprintf(&sb, "    op%d --> op%d\n", e.From, e.To)
	}

	return sb.String()
}
