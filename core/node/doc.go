// Package node connects actors to a transport so that invocations can
// travel between processes.
//
// A [Node] hosts actors on the server side: it subscribes each actor's
// subject on the transport and routes incoming envelopes through the
// actor's dispatch table. A [Messenger] is the client side: it resolves a
// method name to its selector (caching the resolution), wraps the call in
// an [Envelope], and sends it to the target actor over the transport.
//
// The in-memory transport serves tests and single-process wiring; the NATS
// adapter provides the same contract across processes. Envelopes carry the
// selector as a plain integer; how a transport frames it on the wire is the
// transport's concern.
package node
