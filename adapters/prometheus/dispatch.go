package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/helix-onchain/filecoin/core/dispatch"
	"github.com/helix-onchain/filecoin/core/metrics"
)

// dispatchMetrics implements dispatch.DispatchMetrics using Prometheus.
type dispatchMetrics struct {
	dispatchDuration *prometheus.HistogramVec
	dispatchesTotal  *prometheus.CounterVec
	missesTotal      prometheus.Counter
}

// NewDispatchMetrics creates a new Prometheus implementation of
// DispatchMetrics.
func NewDispatchMetrics(reg prometheus.Registerer) dispatch.DispatchMetrics {
	m := &dispatchMetrics{
		dispatchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fil_dispatch_duration_seconds",
			Help:    "Handler invocation time in seconds",
			Buckets: defaultBuckets,
		}, []string{"method"}),

		dispatchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fil_dispatch_total",
			Help: "Total number of dispatched invocations",
		}, []string{"method", "success"}),

		missesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fil_dispatch_misses_total",
			Help: "Total number of selectors with no table entry",
		}),
	}

	reg.MustRegister(
		m.dispatchDuration,
		m.dispatchesTotal,
		m.missesTotal,
	)

	return m
}

func (m *dispatchMetrics) DispatchDuration(methodName string) metrics.Timer {
	return newTimer(m.dispatchDuration.WithLabelValues(methodName))
}

func (m *dispatchMetrics) DispatchCompleted(methodName string, success bool) {
	m.dispatchesTotal.WithLabelValues(methodName, boolToStr(success)).Inc()
}

func (m *dispatchMetrics) DispatchMiss() {
	m.missesTotal.Inc()
}

var _ dispatch.DispatchMetrics = (*dispatchMetrics)(nil)
