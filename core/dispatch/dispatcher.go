package dispatch

import (
	"context"
	"log/slog"

	"github.com/helix-onchain/filecoin/core/method"
)

// Dispatch routes one incoming call against tbl. On a miss it returns a
// [MethodNotFoundError] without invoking anything. On a hit it invokes the
// bound handler with the raw parameter bytes and returns its outcome
// verbatim: no retries, no transformation, no suppression.
//
// Dispatch holds no state; it is safe to call concurrently with the same
// table.
func Dispatch(ctx context.Context, tbl *Table, selector method.Number, params []byte) ([]byte, error) {
	e, ok := tbl.Lookup(selector)
	if !ok {
		return nil, &MethodNotFoundError{Selector: selector}
	}
	return e.Handler(ctx, params)
}

// DispatcherOptions configures a [Dispatcher].
type DispatcherOptions struct {
	Log     *slog.Logger    // optional, defaults to slog.Default()
	Metrics DispatchMetrics // optional, defaults to no-op
}

// Dispatcher wraps [Dispatch] with logging and metrics for one table. It is
// stateless across calls and safe for concurrent use.
type Dispatcher struct {
	tbl     *Table
	log     *slog.Logger
	metrics DispatchMetrics
}

// NewDispatcher returns a dispatcher serving tbl.
func NewDispatcher(tbl *Table, opts DispatcherOptions) *Dispatcher {
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}
	m := opts.Metrics
	if m == nil {
		m = NopDispatchMetrics()
	}
	return &Dispatcher{tbl: tbl, log: log, metrics: m}
}

// Table returns the table this dispatcher serves.
func (d *Dispatcher) Table() *Table { return d.tbl }

// Dispatch routes one incoming call. Semantics are those of the package
// level [Dispatch] function.
func (d *Dispatcher) Dispatch(ctx context.Context, selector method.Number, params []byte) ([]byte, error) {
	e, ok := d.tbl.Lookup(selector)
	if !ok {
		d.metrics.DispatchMiss()
		d.log.Debug("method not found", slog.Uint64("selector", uint64(selector)))
		return nil, &MethodNotFoundError{Selector: selector}
	}

	defer d.metrics.DispatchDuration(e.Name).ObserveDuration()
	out, err := e.Handler(ctx, params)
	d.metrics.DispatchCompleted(e.Name, err == nil)
	return out, err
}
