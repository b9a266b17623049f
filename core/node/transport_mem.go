package node

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/helix-onchain/filecoin/internal/codec"
)

type handlerFn func(context.Context, Envelope) ([]byte, error)

// MemoryTransport delivers envelopes between actors in the same process.
// It mirrors the request/reply contract of the NATS adapter so examples and
// tests can run without a broker.
type MemoryTransport struct {
	mu  sync.RWMutex
	log *slog.Logger

	closed bool

	// actorID -> subID -> handler
	actorSubs map[string]map[string]handlerFn

	// replyTo -> chan response bytes
	inboxes map[string]chan []byte

	seq uint64
}

func NewInMemoryTransport() *MemoryTransport {
	return &MemoryTransport{
		log:       slog.New(slog.DiscardHandler),
		actorSubs: make(map[string]map[string]handlerFn),
		inboxes:   make(map[string]chan []byte),
	}
}

func (t *MemoryTransport) WithLog(log *slog.Logger) *MemoryTransport {
	t.log = log.With(slog.String("transport", "mem"))
	return t
}

func (t *MemoryTransport) doPublish(ctx context.Context, env Envelope) error {
	t.mu.RLock()
	if t.closed {
		t.mu.RUnlock()
		return ErrTransportClosed
	}

	// Copy handlers to avoid holding the lock while invoking user code.
	subs := t.actorSubs[env.Actor]
	handlers := make([]handlerFn, 0, len(subs))
	for _, h := range subs {
		handlers = append(handlers, h)
	}
	t.mu.RUnlock()

	if len(handlers) == 0 {
		return ErrNoActorSubscriber
	}

	for _, h := range handlers {
		h := h
		go t.invokeHandler(ctx, h, env)
	}

	return nil
}

func (t *MemoryTransport) Request(ctx context.Context, env Envelope) ([]byte, error) {
	// Create a per-request inbox
	replyTo := t.newInboxID()
	replyCh, err := t.registerInbox(replyTo)
	if err != nil {
		return nil, err
	}
	defer t.unregisterInbox(replyTo)

	env.ReplyTo = replyTo

	// Publish request (async delivery)
	if err := t.doPublish(ctx, env); err != nil {
		return nil, err
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case b, ok := <-replyCh:
		if !ok {
			return nil, ErrTransportClosed
		}
		return codec.DecodeResponse(b)
	}
}

func (t *MemoryTransport) SubscribeActor(
	ctx context.Context,
	actorID string,
	h func(context.Context, Envelope) ([]byte, error),
) (Subscription, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.log.Debug("subscribe", slog.String("actor", actorID))

	if t.closed {
		return nil, ErrTransportClosed
	}
	if t.actorSubs[actorID] == nil {
		t.actorSubs[actorID] = make(map[string]handlerFn)
	}

	subID := t.newSubID(actorID)
	t.actorSubs[actorID][subID] = h

	s := &subscription{
		t:       t,
		log:     t.log.With(slog.String("subscription", subID), slog.String("actor", actorID)),
		actorID: actorID,
		subID:   subID,
	}

	context.AfterFunc(ctx, func() {
		_ = s.Unsubscribe()
	})

	return s, nil
}

func (t *MemoryTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	t.closed = true

	// Close all inbox channels so waiters unblock.
	for k, ch := range t.inboxes {
		close(ch)
		delete(t.inboxes, k)
	}

	for id := range t.actorSubs {
		delete(t.actorSubs, id)
	}

	t.log.Debug("closed")

	return nil
}

/* ---------------------- internals ---------------------- */

type subscription struct {
	t       *MemoryTransport
	log     *slog.Logger
	actorID string
	subID   string
	once    sync.Once
}

func (s *subscription) Unsubscribe() error {
	s.once.Do(func() {
		s.t.mu.Lock()
		defer s.t.mu.Unlock()
		if subs := s.t.actorSubs[s.actorID]; subs != nil {
			delete(subs, s.subID)
			if len(subs) == 0 {
				delete(s.t.actorSubs, s.actorID)
			}
		}
		s.log.Debug("unsubscribed")
	})
	return nil
}

func (t *MemoryTransport) invokeHandler(ctx context.Context, h handlerFn, env Envelope) {
	resp, err := h(ctx, env)

	// Fire-and-forget: nothing to deliver.
	if env.ReplyTo == "" {
		if err != nil {
			t.log.Error("non-reply handler failed", slog.Any("envelope", env), slog.Any("error", err))
		}
		return
	}

	b := codec.EncodeResponse(resp, err)

	// Deliver response if inbox still exists
	t.mu.RLock()
	ch := t.inboxes[env.ReplyTo]
	t.mu.RUnlock()
	if ch == nil {
		t.log.Warn("dropping response", slog.String("replyTo", env.ReplyTo))
		return // requester timed out/canceled; drop
	}

	// Non-blocking send: if requester is gone or buffer full, drop.
	select {
	case ch <- b:
	default:
	}
}

func (t *MemoryTransport) newInboxID() string {
	n := atomic.AddUint64(&t.seq, 1)
	return fmt.Sprintf("inbox.%d", n)
}

func (t *MemoryTransport) newSubID(actorID string) string {
	n := atomic.AddUint64(&t.seq, 1)
	return fmt.Sprintf("sub.%s.%d", actorID, n)
}

func (t *MemoryTransport) registerInbox(replyTo string) (<-chan []byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil, ErrTransportClosed
	}
	// Buffered 1 so the handler can respond even if the requester is just
	// about to select().
	ch := make(chan []byte, 1)
	t.inboxes[replyTo] = ch
	return ch, nil
}

func (t *MemoryTransport) unregisterInbox(replyTo string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ch := t.inboxes[replyTo]
	if ch != nil {
		close(ch)
		delete(t.inboxes, replyTo)
	}
}
