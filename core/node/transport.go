package node

import (
	"context"
)

type Subscription interface {
	Unsubscribe() error
}

type ServerHandlerFunc = func(ctx context.Context, env Envelope) ([]byte, error)

type ClientTransport interface {
	// Request sends an envelope and waits for the reply.
	Request(ctx context.Context, env Envelope) ([]byte, error)

	Close() error
}

type ServerTransport interface {
	// SubscribeActor delivers envelopes addressed to the actor.
	SubscribeActor(ctx context.Context, actorID string, h ServerHandlerFunc) (Subscription, error)

	Close() error
}

// Transport sends invocations and lets you subscribe for actors you host.
type Transport interface {
	ClientTransport
	ServerTransport
}
