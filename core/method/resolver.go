package method

import (
	"encoding/binary"
	"fmt"
)

// constructorName resolves to [MethodConstructor] without hashing.
const constructorName = "Constructor"

// Resolver maps method names to selector numbers.
type Resolver struct {
	hasher Hasher
}

// NewResolver returns a resolver using the standard blake2b hasher.
func NewResolver() *Resolver {
	return NewResolverWith(Blake2bHasher{})
}

// NewResolverWith returns a resolver using the given hasher.
func NewResolverWith(h Hasher) *Resolver {
	return &Resolver{hasher: h}
}

// MethodNumber resolves name to its selector. The same name always resolves
// to the same number, in this process or any other conforming one.
func (r *Resolver) MethodNumber(name string) (Number, error) {
	if err := ValidateName(name); err != nil {
		return 0, err
	}
	if name == constructorName {
		return MethodConstructor, nil
	}
	digest := r.hasher.Sum([]byte(name))
	candidate := Number(binary.BigEndian.Uint32(digest[:4]))
	return normalize(candidate), nil
}

// normalize shifts candidates out of the reserved range. Part of the wire
// contract; see the package doc.
func normalize(candidate Number) Number {
	if candidate >= FirstAvailable {
		return candidate
	}
	return candidate + FirstAvailable
}

// ValidateName checks name against the method naming rules.
func ValidateName(name string) error {
	if name == "" {
		return ErrEmptyMethodName
	}
	for i, c := range name {
		if i == 0 {
			if c < 'A' || c > 'Z' {
				return fmt.Errorf("%w: %q must start with an uppercase letter", ErrIllegalMethodName, name)
			}
			continue
		}
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_':
		default:
			return fmt.Errorf("%w: %q contains %q", ErrIllegalMethodName, name, c)
		}
	}
	return nil
}
