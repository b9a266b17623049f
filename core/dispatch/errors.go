package dispatch

import (
	"fmt"
	"strings"

	"github.com/helix-onchain/filecoin/core/method"
)

// ReservedNumberError reports an explicit registration of a reserved
// selector outside the permitted set.
type ReservedNumberError struct {
	Attempted method.Number
}

func (e *ReservedNumberError) Error() string {
	return fmt.Sprintf("dispatch: selector %d is reserved and not registrable", e.Attempted)
}

// DuplicateSelectorError reports two or more registrations resolving to the
// same selector. Names lists every colliding registration in registration
// order.
type DuplicateSelectorError struct {
	Names    []string
	Selector method.Number
}

func (e *DuplicateSelectorError) Error() string {
	return fmt.Sprintf("dispatch: methods [%s] collide on selector %d", strings.Join(e.Names, ", "), e.Selector)
}

// MethodNotFoundError reports an incoming selector with no table entry. It
// is an ordinary, expected outcome, not a defect.
type MethodNotFoundError struct {
	Selector method.Number
}

func (e *MethodNotFoundError) Error() string {
	return fmt.Sprintf("dispatch: no method bound to selector %d", e.Selector)
}
