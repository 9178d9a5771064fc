package graph

import (
	"cmp"
	"errors"
	"slices"

	"github.com/aretw0/tally/pkg/trace"
)

// ErrNilRoot is returned when extraction is asked to walk from no node.
var ErrNilRoot = errors.New("graph: nil root operation")

// Edge is a directed data-feed edge: the operand at From flows into the
// consumer at To. Indices point into Graph.Nodes.
type Edge struct {
	From int
	To   int
}

// Graph is the flattened view of one derivation: every node reachable from
// the root by history edges, in discovery order, plus the deduplicated edge
// set. Node 0 is always the root.
type Graph struct {
	Nodes []*trace.Operation
	Edges []Edge
}

// Extract walks history edges transitively from root. Each node is
// discovered exactly once (identity dedup), then its operands are visited in
// history order; leaves contribute no outgoing discovery. Edges are sorted
// and deduplicated afterwards, so repeated operands (x + x) produce a single
// edge.
func Extract(root *trace.Operation) (*Graph, error) {
	if root == nil {
		return nil, ErrNilRoot
	}

	hint := root.Session().Len()
	nodes := make([]*trace.Operation, 0, hint)
	index := make(map[*trace.Operation]int, hint)
	edges := make([]Edge, 0, hint)

	nodes = append(nodes, root)
	index[root] = 0

	for consumer := 0; consumer < len(nodes); consumer++ {
		operands, ok := nodes[consumer].Operands()
		if !ok {
			continue // leaves are terminal
		}
		for _, operand := range operands {
			pos, seen := index[operand]
			if !seen {
				pos = len(nodes)
				nodes = append(nodes, operand)
				index[operand] = pos
			}
			edges = append(edges, Edge{From: pos, To: consumer})
		}
	}

	slices.SortFunc(edges, func(a, b Edge) int {
		if c := cmp.Compare(a.From, b.From); c != 0 {
			return c
		}
		return cmp.Compare(a.To, b.To)
	})
	edges = slices.Compact(edges)

	return &Graph{Nodes: nodes, Edges: edges}, nil
}
