package method

import "errors"

var (
	// ErrEmptyMethodName is returned when an empty name is submitted for
	// resolution.
	ErrEmptyMethodName = errors.New("method name is empty")

	// ErrIllegalMethodName is returned when a name violates the naming
	// rules: first character an uppercase ASCII letter, remainder ASCII
	// letters, digits, or underscore.
	ErrIllegalMethodName = errors.New("illegal method name")
)
