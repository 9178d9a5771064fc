package graph_test

import (
	"testing"

	"github.com/aretw0/tally/pkg/graph"
	"github.com/aretw0/tally/pkg/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractNilRoot(t *testing.T) {
	_, err := graph.Extract(nil)
	require.ErrorIs(t, err, graph.ErrNilRoot)
}

func TestExtractSingleLeaf(t *testing.T) {
	s := trace.NewSession()
	leaf := s.Source(1.0)

	g, err := graph.Extract(leaf)
	require.NoError(t, err)
	assert.Equal(t, []*trace.Operation{leaf}, g.Nodes)
	assert.Empty(t, g.Edges)
}

// A node consumed twice must appear once, with a single edge.
func TestExtractDeduplicatesRepeatedOperand(t *testing.T) {
	s := trace.NewSession()
	leaf := s.Source(2.0)
	doubled := leaf.Add(leaf)

	g, err := graph.Extract(doubled)
	require.NoError(t, err)

	require.Equal(t, []*trace.Operation{doubled, leaf}, g.Nodes)
	assert.Equal(t, []graph.Edge{{From: 1, To: 0}}, g.Edges)
}

func TestExtractDiscoveryOrder(t *testing.T) {
	s := trace.NewSession()
	a := s.SourceWithReason(1.0, "a")
	b := s.Source(2.0)
	c := s.SourceWithReason(3.0, "c")
	root := a.AddWithReason(b, "b").Add(a).Add(c) // history [a, b, a, c]

	g, err := graph.Extract(root)
	require.NoError(t, err)

	require.Equal(t, []*trace.Operation{root, a, b, c}, g.Nodes,
		"root first, then operands in history order, deduplicated")
	assert.Equal(t, []graph.Edge{
		{From: 1, To: 0},
		{From: 2, To: 0},
		{From: 3, To: 0},
	}, g.Edges)
}

func TestExtractNestedStructure(t *testing.T) {
	s := trace.NewSession()
	left := s.Source(1.0).AddWithReason(s.Source(2.0), "left")
	right := s.Source(3.0).AddWithReason(s.Source(4.0), "right")
	root := left.Add(right) // preserved as two children

	g, err := graph.Extract(root)
	require.NoError(t, err)

	require.Len(t, g.Nodes, 7)
	assert.Same(t, root, g.Nodes[0])
	assert.Same(t, left, g.Nodes[1])
	assert.Same(t, right, g.Nodes[2])
	// left's and right's own operands are discovered after both children.
	assert.Len(t, g.Edges, 6)
}

// Extraction from the same construction sequence is fully deterministic.
func TestExtractDeterminism(t *testing.T) {
	build := func() *trace.Operation {
		s := trace.NewSession()
		a := s.SourceWithReason(1.0, "a")
		b := s.Source(2.0)
		return a.AddWithReason(b, "b").Add(a).Mul(b)
	}

	g1, err := graph.Extract(build())
	require.NoError(t, err)
	g2, err := graph.Extract(build())
	require.NoError(t, err)

	assert.Equal(t, g1.Edges, g2.Edges)
	require.Equal(t, len(g1.Nodes), len(g2.Nodes))
	for i := range g1.Nodes {
		assert.Equal(t, g1.Nodes[i].Label(), g2.Nodes[i].Label())
	}
}
