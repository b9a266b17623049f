package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	natsgo "github.com/nats-io/nats.go"

	"github.com/helix-onchain/filecoin/core/node"
	"github.com/helix-onchain/filecoin/internal/codec"
)

type TransportConfig struct {
	Connect       Connector    // Connect is used to create the underlying NATS connection. If nil, ConnectDefault() is used.
	Log           *slog.Logger // Log for diagnostics (optional)
	SubjectPrefix string       // SubjectPrefix for actor subjects, e.g. "fil" -> fil.actor.<id>
}

// Transport carries invocation envelopes over NATS, one subject per hosted
// actor.
type Transport struct {
	nc      *natsgo.Conn
	closeNc closeFunc
	log     *slog.Logger
	prefix  string

	mu   sync.Mutex
	subs map[*natsgo.Subscription]struct{}

	closed atomic.Bool
}

func NewTransport(cfg TransportConfig) (*Transport, error) {
	connFn := cfg.Connect
	if connFn == nil {
		connFn = ConnectDefault()
	}

	log := cfg.Log
	if log == nil {
		log = slog.Default()
	}

	nc, closeNc, err := connFn()
	if err != nil {
		return nil, err
	}

	t := &Transport{
		nc:      nc,
		closeNc: closeNc,
		log:     log.With(slog.String("transport", "nats")),
		prefix:  cfg.SubjectPrefix,
		subs:    make(map[*natsgo.Subscription]struct{}),
	}

	return t, nil
}

// subjectActor returns the subject used for an actor.
func (t *Transport) subjectActor(actorID string) string {
	p := t.prefix
	if p == "" {
		p = "fil"
	}
	return p + ".actor." + actorID
}

func (t *Transport) Request(ctx context.Context, env node.Envelope) ([]byte, error) {
	if t.closed.Load() {
		return nil, node.ErrTransportClosed
	}

	// Create a reply inbox and subscription
	inbox := natsgo.NewInbox()
	ch := make(chan *natsgo.Msg, 1)
	sub, err := t.nc.ChanSubscribe(inbox, ch)
	if err != nil {
		return nil, fmt.Errorf("nats: subscribe inbox: %w", err)
	}
	defer func() {
		_ = sub.Unsubscribe()
		close(ch)
	}()

	env.ReplyTo = inbox

	// Encode envelope
	payload, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("encode envelope: %w", err)
	}

	// Publish to actor subject
	subj := t.subjectActor(env.Actor)
	if err := t.nc.Publish(subj, payload); err != nil {
		return nil, fmt.Errorf("nats: publish: %w", err)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case msg, ok := <-ch:
		if !ok {
			return nil, node.ErrTransportClosed
		}
		return codec.DecodeResponse(msg.Data)
	}
}

func (t *Transport) Close() error {
	if t.closed.Swap(true) {
		return node.ErrTransportClosed
	}
	t.mu.Lock()
	for s := range t.subs {
		_ = s.Unsubscribe()
	}
	t.subs = map[*natsgo.Subscription]struct{}{}
	t.mu.Unlock()
	if t.nc != nil {
		t.nc.Drain()
		t.closeNc()
	}
	return nil
}

// SubscribeActor subscribes to invocations addressed to a specific actor.
func (t *Transport) SubscribeActor(ctx context.Context, actorID string, h node.ServerHandlerFunc) (node.Subscription, error) {
	if t.closed.Load() {
		return nil, node.ErrTransportClosed
	}
	subj := t.subjectActor(actorID)

	sub, err := t.nc.Subscribe(subj, func(msg *natsgo.Msg) {
		// Decode envelope
		var env node.Envelope
		if err := json.Unmarshal(msg.Data, &env); err != nil {
			t.log.Error("failed to decode envelope", slog.Any("error", err))
			return
		}

		// Invoke handler
		data, err := h(ctx, env)
		b := codec.EncodeResponse(data, err)

		// Publish reply if requested
		if env.ReplyTo != "" {
			if err := t.nc.Publish(env.ReplyTo, b); err != nil {
				t.log.Error("failed to publish reply", slog.Any("error", err))
			}
		}
	})
	if err != nil {
		return nil, fmt.Errorf("nats: subscribe actor: %w", err)
	}

	t.mu.Lock()
	t.subs[sub] = struct{}{}
	t.mu.Unlock()

	// Handle context cancellation by auto-unsubscribing
	go func() {
		<-ctx.Done()
		_ = sub.Unsubscribe()
		t.mu.Lock()
		delete(t.subs, sub)
		t.mu.Unlock()
	}()

	return &subscription{sub: sub, t: t}, nil
}

type subscription struct {
	sub *natsgo.Subscription
	t   *Transport
}

func (s *subscription) Unsubscribe() error {
	if s.sub == nil {
		return nil
	}
	err := s.sub.Unsubscribe()
	s.t.mu.Lock()
	delete(s.t.subs, s.sub)
	s.t.mu.Unlock()
	return err
}

var _ node.Transport = &Transport{}
