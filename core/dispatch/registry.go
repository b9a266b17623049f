package dispatch

import (
	"github.com/helix-onchain/filecoin/core/method"
)

type registration struct {
	name     string
	number   method.Number
	explicit bool
	handler  Handler
}

// Builder assembles a [Table] from an ordered list of registrations.
// Registration records the intent only; all resolution and validation
// happens in [Builder.Build].
type Builder struct {
	resolver      *method.Resolver
	registrations []registration
}

// NewBuilder returns a builder using the standard resolver.
func NewBuilder() *Builder {
	return NewBuilderWith(method.NewResolver())
}

// NewBuilderWith returns a builder using the given resolver.
func NewBuilderWith(r *method.Resolver) *Builder {
	return &Builder{resolver: r}
}

// Handle registers a named method. Its selector is derived from the name at
// build time.
func (b *Builder) Handle(name string, h Handler) *Builder {
	b.registrations = append(b.registrations, registration{name: name, handler: h})
	return b
}

// HandleNumber registers a method at an explicit selector, bypassing
// hashing. name is kept for diagnostics. Explicit selectors below
// [method.FirstAvailable] are restricted to the standardized set.
func (b *Builder) HandleNumber(name string, n method.Number, h Handler) *Builder {
	b.registrations = append(b.registrations, registration{name: name, number: n, explicit: true, handler: h})
	return b
}

// Constructor registers h at the reserved constructor selector.
func (b *Builder) Constructor(h Handler) *Builder {
	return b.HandleNumber("Constructor", method.MethodConstructor, h)
}

// Build resolves every registration and assembles the table. It fails on
// the first defect: an invalid name, a disallowed reserved selector, or a
// selector collision. On collision the error names every registration bound
// to the shared selector, in registration order, and no table is produced.
func (b *Builder) Build() (*Table, error) {
	entries := make(map[method.Number]Entry, len(b.registrations))

	for i, reg := range b.registrations {
		n := reg.number
		if reg.explicit {
			if method.Reserved(n) && !method.ExplicitAllowed(n) {
				return nil, &ReservedNumberError{Attempted: n}
			}
		} else {
			var err error
			n, err = b.resolver.MethodNumber(reg.name)
			if err != nil {
				return nil, err
			}
		}

		if _, exists := entries[n]; exists {
			return nil, &DuplicateSelectorError{
				Names:    b.namesFor(n, i),
				Selector: n,
			}
		}

		entries[n] = Entry{Name: reg.name, Number: n, Handler: reg.handler}
	}

	return &Table{entries: entries}, nil
}

// namesFor re-resolves the registrations before index upto to list every
// name colliding on n. Only reached on the failure path, so the extra
// hashing is irrelevant.
func (b *Builder) namesFor(n method.Number, upto int) []string {
	var names []string
	for _, reg := range b.registrations[:upto] {
		rn := reg.number
		if !reg.explicit {
			var err error
			rn, err = b.resolver.MethodNumber(reg.name)
			if err != nil {
				continue
			}
		}
		if rn == n {
			names = append(names, reg.name)
		}
	}
	return append(names, b.registrations[upto].name)
}
