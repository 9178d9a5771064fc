package compiler_test

import (
	"testing"

	"github.com/aretw0/tally/internal/compiler"
	"github.com/aretw0/tally/pkg/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, src string) *trace.Operation {
	t.Helper()
	expr, err := compiler.Parse(src)
	require.NoError(t, err, "parse %q", src)
	return expr.Build(trace.NewSession())
}

func TestParseArithmetic(t *testing.T) {
	tests := []struct {
		src  string
		want float64
	}{
		{"1", 1},
		{"-2.5", -2.5},
		{"1 + 2", 3},
		{"1 + 2 * 3", 7},
		{"(1 + 2) * 3", 9},
		{"6 / 3 / 3", 6.0 / 3 / 3},
		{"10 - 4 - 3", 3},
		{"1.5e2 + 1", 151},
		{"2 * -3", -6},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got := build(t, tt.src)
			assert.InDelta(t, tt.want, got.Value(), 1e-12)
		})
	}
}

func TestParseAnnotations(t *testing.T) {
	root := build(t, `1@"a" + 2`)
	require.Equal(t, trace.KindSum, root.Kind())
	history := root.History()
	require.Len(t, history, 2)
	assert.Equal(t, "a", history[0].Reason())
	assert.Empty(t, history[1].Reason())

	root = build(t, `(1 + 2)@"subtotal" * 3`)
	require.Equal(t, trace.KindProduct, root.Kind())
	assert.InDelta(t, 9.0, root.Value(), 1e-12)
	assert.Equal(t, "subtotal", root.History()[0].Reason())

	root = build(t, `1 + 2@"escaped \"quote\""`)
	assert.Equal(t, `escaped "quote"`, root.History()[1].Reason())
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"",
		"1 +",
		"(1 + 2",
		"1 + 2)",
		"1 @ 2",
		`1@"unterminated`,
		"abc",
		"1..2",
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			_, err := compiler.Parse(src)
			assert.Error(t, err)
		})
	}
}
