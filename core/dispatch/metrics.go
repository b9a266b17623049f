package dispatch

import "github.com/helix-onchain/filecoin/core/metrics"

// DispatchMetrics is the metrics interface for the dispatch pillar.
// All methods are thread-safe.
type DispatchMetrics interface {
	// DispatchDuration times one handler invocation.
	DispatchDuration(methodName string) metrics.Timer
	// DispatchCompleted counts one completed invocation.
	DispatchCompleted(methodName string, success bool)
	// DispatchMiss counts one unroutable selector.
	DispatchMiss()
}

type nopDispatchMetrics struct{}

func (nopDispatchMetrics) DispatchDuration(string) metrics.Timer { return metrics.NopTimer() }
func (nopDispatchMetrics) DispatchCompleted(string, bool)        {}
func (nopDispatchMetrics) DispatchMiss()                         {}

// NopDispatchMetrics returns a no-op DispatchMetrics implementation.
func NopDispatchMetrics() DispatchMetrics { return nopDispatchMetrics{} }
