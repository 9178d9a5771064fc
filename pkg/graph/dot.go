package graph

import (
	"fmt"
	"net/url"
	"strings"
)

// viewerBase renders DOT text in the browser without a local Graphviz
// install.
const viewerBase = "https://dreampuf.github.io/GraphvizOnline/#"

// DOT renders the graph as Graphviz digraph text. Node identifiers are
// assigned by discovery order (op0 is the extraction root), labels follow
// Operation.Label, and edges are unlabeled, pointing in data-feed direction
// from operand to consumer.
func DOT(g *Graph) string {
	var sb strings.Builder
	sb.WriteString("digraph derivation {\n")
	for i, node := range g.Nodes {
		fmt.Fprintf(&sb, "    op%d[label=\"%s\"];\n", i, escapeDOT(node.Label()))
	}
	for _, e := range g.Edges {
		fmt.Fprintf(&sb, "    op%d -> op%d;\n", e.From, e.To)
	}
	sb.WriteString("}\n")
	return sb.String()
}

// ViewerURL wraps DOT text into a shareable online-viewer link.
func ViewerURL(dot string) string {
	return viewerBase + url.PathEscape(dot)
}

func escapeDOT(label string) string {
	s := strings.ReplaceAll(label, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
