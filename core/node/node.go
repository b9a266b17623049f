package node

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/helix-onchain/filecoin/core/actor"
	"github.com/helix-onchain/filecoin/core/method"
)

type (
	NodeOptions struct {
		Log       *slog.Logger
		NodeID    string
		Transport ServerTransport
		Metrics   NodeMetrics
	}

	// Node hosts actors and serves their invocations from a transport.
	Node struct {
		log     *slog.Logger
		nodeID  string
		t       ServerTransport
		metrics NodeMetrics

		mu     sync.Mutex
		actors map[string]*actor.Actor
		subs   map[string]Subscription
	}
)

func NewNode(opts NodeOptions) *Node {
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}

	nodeID := opts.NodeID
	if nodeID == "" {
		nodeID = fmt.Sprintf("node-%s", gonanoid.Must(6))
	}

	m := opts.Metrics
	if m == nil {
		m = NopNodeMetrics()
	}

	return &Node{
		log:     log.With(slog.String("node", nodeID)),
		nodeID:  nodeID,
		t:       opts.Transport,
		metrics: m,
		actors:  make(map[string]*actor.Actor),
		subs:    make(map[string]Subscription),
	}
}

func (n *Node) ID() string { return n.nodeID }

// AddActor hosts a and subscribes its subject on the transport. Incoming
// envelopes for a's ID route through a's dispatch table.
func (n *Node) AddActor(ctx context.Context, a *actor.Actor) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := n.actors[a.ID()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateActor, a.ID())
	}

	sub, err := n.t.SubscribeActor(ctx, a.ID(), n.handlerFor(a))
	if err != nil {
		return fmt.Errorf("failed to subscribe actor %s: %w", a.ID(), err)
	}

	n.actors[a.ID()] = a
	n.subs[a.ID()] = sub
	n.metrics.ActorsHosted(len(n.actors))

	n.log.Info("actor hosted", slog.String("actor", a.ID()), slog.Int("methods", a.Table().Len()))
	return nil
}

// RemoveActor unsubscribes and stops the hosted actor.
func (n *Node) RemoveActor(actorID string) error {
	n.mu.Lock()
	a, ok := n.actors[actorID]
	sub := n.subs[actorID]
	delete(n.actors, actorID)
	delete(n.subs, actorID)
	count := len(n.actors)
	n.mu.Unlock()

	if !ok {
		return nil
	}
	n.metrics.ActorsHosted(count)

	if sub != nil {
		if err := sub.Unsubscribe(); err != nil {
			return err
		}
	}
	a.Stop()
	return nil
}

func (n *Node) handlerFor(a *actor.Actor) ServerHandlerFunc {
	return func(ctx context.Context, env Envelope) ([]byte, error) {
		n.log.Debug(
			"handle",
			slog.Group(
				"envelope",
				slog.String("actor", env.Actor),
				slog.Uint64("method", env.Method),
				slog.Any("headers", env.Headers),
			),
		)

		selector := method.Number(env.Method)

		// A bare send to an actor that binds no send handler is accepted
		// and invokes nothing.
		if selector == method.MethodSend {
			if _, bound := a.Table().Lookup(selector); !bound {
				return nil, nil
			}
		}

		data, err := a.Call(ctx, selector, env.Params)
		if err != nil {
			n.log.Error(
				"failed to handle invocation",
				slog.Uint64("method", env.Method),
				slog.String("actor", env.Actor),
				slog.Any("error", err),
			)
		}
		return data, err
	}
}
