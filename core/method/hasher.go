package method

import "golang.org/x/crypto/blake2b"

// Hasher digests a method name. Implementations must be pure and
// deterministic and must return at least 4 bytes.
//
// Production code uses [Blake2bHasher]; tests substitute stub hashers to
// force selector collisions.
type Hasher interface {
	Sum(name []byte) []byte
}

// Blake2bHasher is the standard hasher: blake2b with a 512-bit digest.
type Blake2bHasher struct{}

func (Blake2bHasher) Sum(name []byte) []byte {
	digest := blake2b.Sum512(name)
	return digest[:]
}
