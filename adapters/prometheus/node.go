package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/helix-onchain/filecoin/core/metrics"
	"github.com/helix-onchain/filecoin/core/node"
)

// nodeMetrics implements node.NodeMetrics using Prometheus.
type nodeMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
	transportErrors *prometheus.CounterVec
	actorsHosted    prometheus.Gauge
}

// NewNodeMetrics creates a new Prometheus implementation of NodeMetrics.
func NewNodeMetrics(reg prometheus.Registerer) node.NodeMetrics {
	m := &nodeMetrics{
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fil_node_request_duration_seconds",
			Help:    "Messenger request round-trip time in seconds",
			Buckets: defaultBuckets,
		}, []string{"method"}),

		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fil_node_requests_total",
			Help: "Total number of messenger requests",
		}, []string{"method", "success"}),

		transportErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fil_node_transport_errors_total",
			Help: "Total number of transport errors by kind",
		}, []string{"kind"}),

		actorsHosted: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fil_node_actors_hosted",
			Help: "Number of actors currently hosted",
		}),
	}

	reg.MustRegister(
		m.requestDuration,
		m.requestsTotal,
		m.transportErrors,
		m.actorsHosted,
	)

	return m
}

func (m *nodeMetrics) RequestDuration(methodName string) metrics.Timer {
	return newTimer(m.requestDuration.WithLabelValues(methodName))
}

func (m *nodeMetrics) RequestCompleted(methodName string, success bool) {
	m.requestsTotal.WithLabelValues(methodName, boolToStr(success)).Inc()
}

func (m *nodeMetrics) TransportError(kind string) {
	m.transportErrors.WithLabelValues(kind).Inc()
}

func (m *nodeMetrics) ActorsHosted(count int) {
	m.actorsHosted.Set(float64(count))
}

var _ node.NodeMetrics = (*nodeMetrics)(nil)
