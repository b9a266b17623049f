package node

import (
	"context"
	"errors"
	"fmt"

	"github.com/helix-onchain/filecoin/core/cache"
	"github.com/helix-onchain/filecoin/core/method"
)

type MessengerOptions struct {
	Transport       ClientTransport
	Resolver        *method.Resolver // optional, defaults to the standard resolver
	CacheSize       int              // optional, resolution cache size
	EnvelopeOptions []EnvelopeOption
	Metrics         NodeMetrics
}

// Messenger invokes methods on remote actors by name. Names resolve to
// selectors through the resolver, with resolutions memoized, and the call
// travels as an [Envelope] over the transport.
type Messenger struct {
	t        ClientTransport
	resolver *method.Resolver
	resolved cache.Cache[method.Number]
	opts     []EnvelopeOption
	metrics  NodeMetrics
}

func NewMessenger(opts MessengerOptions) (*Messenger, error) {
	if opts.Transport == nil {
		return nil, fmt.Errorf("node: MessengerOptions.Transport is required")
	}
	resolver := opts.Resolver
	if resolver == nil {
		resolver = method.NewResolver()
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = NopNodeMetrics()
	}
	return &Messenger{
		t:        opts.Transport,
		resolver: resolver,
		resolved: cache.NewLRU[method.Number](opts.CacheSize),
		opts:     opts.EnvelopeOptions,
		metrics:  metrics,
	}, nil
}

// MethodNumber resolves a method name to its selector, memoizing the
// result. Resolution is pure, so the cache can never go stale.
func (m *Messenger) MethodNumber(name string) (method.Number, error) {
	if n, ok := m.resolved.Get(name); ok {
		return n, nil
	}
	n, err := m.resolver.MethodNumber(name)
	if err != nil {
		return 0, err
	}
	m.resolved.Put(name, n)
	return n, nil
}

// Call invokes the named method on the target actor and waits for the
// outcome.
func (m *Messenger) Call(ctx context.Context, actorID, methodName string, params []byte, opts ...EnvelopeOption) ([]byte, error) {
	n, err := m.MethodNumber(methodName)
	if err != nil {
		return nil, err
	}
	return m.call(ctx, actorID, n, methodName, params, opts...)
}

// CallNumber invokes an explicit selector on the target actor.
func (m *Messenger) CallNumber(ctx context.Context, actorID string, n method.Number, params []byte, opts ...EnvelopeOption) ([]byte, error) {
	return m.call(ctx, actorID, n, fmt.Sprintf("#%d", n), params, opts...)
}

// Send performs a bare send (selector 0, no parameters).
func (m *Messenger) Send(ctx context.Context, actorID string, opts ...EnvelopeOption) error {
	_, err := m.call(ctx, actorID, method.MethodSend, "Send", nil, opts...)
	return err
}

func (m *Messenger) call(ctx context.Context, actorID string, n method.Number, label string, params []byte, opts ...EnvelopeOption) ([]byte, error) {
	env := Envelope{
		Actor:  actorID,
		Method: uint64(n),
		Params: params,
	}
	for _, opt := range m.opts {
		opt(&env)
	}
	for _, opt := range opts {
		opt(&env)
	}
	if err := env.Validate(); err != nil {
		return nil, err
	}

	defer m.metrics.RequestDuration(label).ObserveDuration()

	out, err := m.t.Request(ctx, env)
	m.metrics.RequestCompleted(label, err == nil)
	if err != nil {
		m.recordTransportError(err)
	}
	return out, err
}

// recordTransportError maps known transport errors to metric labels.
func (m *Messenger) recordTransportError(err error) {
	switch {
	case errors.Is(err, ErrNoActorSubscriber):
		m.metrics.TransportError("no_subscriber")
	case errors.Is(err, ErrTransportClosed):
		m.metrics.TransportError("closed")
	}
}
