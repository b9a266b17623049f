// Package dispatch builds and serves an actor's selector-to-handler table.
//
// A table is assembled exactly once, at actor-definition time, from an
// ordered list of registrations:
//
//	tbl, err := dispatch.NewBuilder().
//	    Constructor(handleConstructor).
//	    Handle("Transfer", handleTransfer).
//	    Handle("Mint", handleMint).
//	    Build()
//
// Named registrations resolve to their selector via [method.Resolver];
// explicit low-range selectors are restricted to the standardized set.
// Build fails on the first duplicate selector, reporting every name bound to
// it. A collision is a build-time defect and must be fixed by renaming a
// method; it is never resolved automatically, as that would break the
// cross-implementation "same name, same selector" guarantee.
//
// A built [Table] is immutable. [Dispatch] routes an incoming
// (selector, params) call to its handler and reports a structured
// [MethodNotFoundError] on a miss; the handler's own outcome, success or
// failure, passes through untouched. Any number of dispatch calls may run
// concurrently against the same table.
package dispatch
