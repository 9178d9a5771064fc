package observability_test

import (
	"testing"

	"github.com/aretw0/tally/internal/observability"
	"github.com/aretw0/tally/pkg/trace"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsHooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.New(reg)

	s := trace.NewSession(trace.WithHooks(m.Hooks()))
	a := s.SourceWithReason(1.0, "a")
	b := s.Source(2.0)
	a.AddWithReason(b, "b").Add(a)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.NodesTotal.WithLabelValues(trace.KindSource)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.NodesTotal.WithLabelValues(trace.KindSum)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MergesTotal.WithLabelValues(string(trace.MergeLeaves))))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MergesTotal.WithLabelValues(string(trace.MergeAbsorb))))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 2)
}
