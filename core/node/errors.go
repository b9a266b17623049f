package node

import "errors"

var (
	// Transport errors
	ErrTransportClosed   = errors.New("transport closed")
	ErrNoActorSubscriber = errors.New("no subscriber for actor")

	// Envelope errors
	ErrActorIDRequired = errors.New("actor id is required")

	// Node errors
	ErrDuplicateActor = errors.New("actor already hosted")
)
