// Package method computes the numeric selector for a named actor method.
//
// Actor methods are invoked by number, not by name. The number for a named
// method is derived by hashing the name, so that independent implementations
// agree on it without coordination:
//
//	blake2b-512(name) -> first 4 digest bytes, big-endian -> candidate
//
// Candidates below [FirstAvailable] are shifted up into the open range so
// that hashed selectors can never land on a reserved number. The hash
// function, prefix width, and shift rule are part of the wire contract and
// must never be configured per deployment.
//
// Numbers 0 (bare send) and 1 (constructor) are standardized; the name
// "Constructor" resolves to 1 directly, without hashing.
package method
