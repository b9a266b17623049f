package method

// Number identifies a callable actor method. It is the only artifact the
// runtime dispatch path retains; the originating name is not kept.
type Number uint64

const (
	// FirstAvailable is the lowest selector a hashed method name may resolve
	// to. Everything below it is reserved for standardized methods.
	FirstAvailable Number = 1 << 24

	// MethodSend is the reserved no-op/send selector.
	MethodSend Number = 0

	// MethodConstructor is the reserved constructor selector.
	MethodConstructor Number = 1
)

// Reserved reports whether n lies in the reserved range below
// [FirstAvailable].
func Reserved(n Number) bool { return n < FirstAvailable }

// ExplicitAllowed reports whether n may be registered explicitly even though
// it lies in the reserved range. Exactly {0, 1} are permitted.
func ExplicitAllowed(n Number) bool {
	return n == MethodSend || n == MethodConstructor
}
