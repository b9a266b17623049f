package node

import "github.com/helix-onchain/filecoin/core/metrics"

// NodeMetrics is the metrics interface for the node pillar.
// All methods are thread-safe.
type NodeMetrics interface {
	// Messenger side
	RequestDuration(methodName string) metrics.Timer
	RequestCompleted(methodName string, success bool)
	TransportError(kind string)

	// Node side
	ActorsHosted(count int)
}

type nopNodeMetrics struct{}

func (nopNodeMetrics) RequestDuration(string) metrics.Timer { return metrics.NopTimer() }
func (nopNodeMetrics) RequestCompleted(string, bool)        {}
func (nopNodeMetrics) TransportError(string)                {}
func (nopNodeMetrics) ActorsHosted(int)                     {}

// NopNodeMetrics returns a no-op NodeMetrics implementation.
func NopNodeMetrics() NodeMetrics { return nopNodeMetrics{} }
