package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/tally/pkg/graph"
	"github.com/aretw0/tally/pkg/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDOT(t *testing.T) {
	s := trace.NewSession()
	a := s.SourceWithReason(1.0, "a")
	b := s.Source(2.0)
	root := a.AddWithReason(b, "b")

	g, err := graph.Extract(root)
	require.NoError(t, err)

	want := `digraph derivation {
    op0[label="3 (+) \"b\""];
    op1[label="1 \"a\""];
    op2[label="2"];
    op1 -> op0;
    op2 -> op0;
}
`
	assert.Equal(t, want, graph.DOT(g))
}

func TestDOTEscapesReasons(t *testing.T) {
	s := trace.NewSession()
	root := s.Source(1.0).AddWithReason(s.Source(2.0), `say "hi"`)

	g, err := graph.Extract(root)
	require.NoError(t, err)

	out := graph.DOT(g)
	assert.Contains(t, out, `\"say \\\"hi\\\"\"`)
}

// Exporting twice from the same construction sequence must be identical byte
// for byte.
func TestDOTDeterminism(t *testing.T) {
	build := func() string {
		s := trace.NewSession()
		a := s.SourceWithReason(1.0, "a")
		b := s.Source(2.0)
		c := s.SourceWithReason(3.0, "c")
		root := a.AddWithReason(b, "b").Add(a).Add(c).Div(b)
		g, err := graph.Extract(root)
		require.NoError(t, err)
		return graph.DOT(g)
	}

	assert.Equal(t, build(), build())
}

func TestViewerURL(t *testing.T) {
	url := graph.ViewerURL("digraph derivation {\n}\n")
	assert.True(t, strings.HasPrefix(url, "https://dreampuf.github.io/GraphvizOnline/#"))
	assert.NotContains(t, url[len("https://"):], " ", "DOT text must be escaped")
	assert.NotContains(t, url, "\n")
}
