package dispatch

import (
	"context"
	"slices"

	"github.com/helix-onchain/filecoin/core/method"
)

// Handler is the callable bound to one selector. Parameters and result are
// opaque byte sequences; encoding is the concern of the handler and its
// caller, never of the dispatch path.
type Handler func(ctx context.Context, params []byte) ([]byte, error)

// Entry binds one selector to its handler. Name is kept for diagnostics
// only; routing is by Number alone.
type Entry struct {
	Name    string
	Number  method.Number
	Handler Handler
}

// Table is an immutable selector-to-handler mapping for one actor. Build one
// via [Builder]; share it freely, it is never mutated after construction.
type Table struct {
	entries map[method.Number]Entry
}

// Lookup returns the entry bound to n, if any.
func (t *Table) Lookup(n method.Number) (Entry, bool) {
	e, ok := t.entries[n]
	return e, ok
}

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.entries) }

// Numbers returns all bound selectors in ascending order.
func (t *Table) Numbers() []method.Number {
	out := make([]method.Number, 0, len(t.entries))
	for n := range t.entries {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}
