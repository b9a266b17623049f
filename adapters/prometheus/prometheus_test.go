package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDispatchMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewDispatchMetrics(reg)

	require.NotNil(t, m)

	timer := m.DispatchDuration("Transfer")
	assert.NotNil(t, timer)
	timer.ObserveDuration()

	m.DispatchCompleted("Transfer", true)
	m.DispatchCompleted("Transfer", false)
	m.DispatchMiss()

	// Verify metrics were registered
	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, mfs)

	names := make(map[string]bool)
	for _, mf := range mfs {
		names[mf.GetName()] = true
	}

	assert.True(t, names["fil_dispatch_duration_seconds"])
	assert.True(t, names["fil_dispatch_total"])
	assert.True(t, names["fil_dispatch_misses_total"])
}

func TestNewNodeMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewNodeMetrics(reg)

	require.NotNil(t, m)

	timer := m.RequestDuration("Transfer")
	assert.NotNil(t, timer)
	timer.ObserveDuration()

	m.RequestCompleted("Transfer", true)
	m.RequestCompleted("Transfer", false)
	m.TransportError("no_subscriber")
	m.ActorsHosted(3)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, mfs)

	names := make(map[string]bool)
	for _, mf := range mfs {
		names[mf.GetName()] = true
	}

	assert.True(t, names["fil_node_request_duration_seconds"])
	assert.True(t, names["fil_node_requests_total"])
	assert.True(t, names["fil_node_actors_hosted"])
}

func TestNewAllMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewAllMetrics(reg)

	require.NotNil(t, m)
	require.NotNil(t, m.Dispatch)
	require.NotNil(t, m.Node)

	m.Dispatch.DispatchCompleted("Transfer", true)
	m.Node.RequestCompleted("Transfer", true)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, mfs)
}

func TestBoolToStr(t *testing.T) {
	assert.Equal(t, "true", boolToStr(true))
	assert.Equal(t, "false", boolToStr(false))
}
