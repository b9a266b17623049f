// Package actor hosts one built dispatch table behind a mailbox.
//
// An actor processes invocations sequentially: each message carries a
// selector and raw parameter bytes, the actor routes it through its
// dispatcher, and the handler's outcome travels back on the invocation's
// reply channel. Handler panics are contained; the actor keeps running and
// the caller receives an error.
//
//	tbl, _ := dispatch.NewBuilder().Handle("Transfer", handleTransfer).Build()
//	a := actor.New(tbl, actor.Options{})
//	out, err := a.Call(ctx, selector, params)
//
// The table is supplied once at construction and never changes; an actor
// needing different methods is a new actor.
package actor
