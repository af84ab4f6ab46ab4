package pass

import (
	"errors"
	"fmt"

	"github.com/dhamidi/feast/input"
)

// Kind distinguishes wrong input from insufficient input.
type Kind int

const (
	KindUnexpected Kind = iota + 1
	KindIncomplete
)

func (k Kind) String() string {
	switch k {
	case KindUnexpected:
		return "Unexpected"
	case KindIncomplete:
		return "Incomplete"
	default:
		return "Unknown"
	}
}

// Error is a parse failure at a position. Exactly one of Unexpected and
// Requirement is meaningful, selected by Kind.
type Error[T input.Token] struct {
	Kind        Kind
	Offset      int
	Unexpected  input.Unexpected[T]
	Requirement input.Requirement

	// Err is the input-level error an Incomplete error was converted from.
	Err error
}

func (e *Error[T]) Error() string {
	switch e.Kind {
	case KindUnexpected:
		return fmt.Sprintf("unexpected %s at offset %d, expecting %s",
			e.Unexpected.Unexpected, e.Offset, e.Unexpected.Expecting)
	case KindIncomplete:
		return fmt.Sprintf("incomplete input at offset %d: need %s", e.Offset, e.Requirement)
	default:
		return fmt.Sprintf("parse error at offset %d", e.Offset)
	}
}

func (e *Error[T]) Unwrap() error {
	return e.Err
}

// ErrorKind returns the kind of the error.
func (e *Error[T]) ErrorKind() Kind {
	return e.Kind
}

// ErrorOffset returns the position the error was raised at.
func (e *Error[T]) ErrorOffset() int {
	return e.Offset
}

// Need returns the requirement of an Incomplete error.
func (e *Error[T]) Need() input.Requirement {
	return e.Requirement
}

// classified is satisfied by *Error for every token type, so errors can be
// inspected without naming T.
type classified interface {
	error
	ErrorKind() Kind
	ErrorOffset() int
	Need() input.Requirement
}

// KindOf returns the kind of a parse error, or 0 if err is not one.
func KindOf(err error) Kind {
	var c classified
	if errors.As(err, &c) {
		return c.ErrorKind()
	}
	return 0
}

// OffsetOf returns the offset a parse error was raised at.
func OffsetOf(err error) (int, bool) {
	var c classified
	if errors.As(err, &c) {
		return c.ErrorOffset(), true
	}
	return 0, false
}

// IsUnexpected reports whether err is an Unexpected parse error.
func IsUnexpected(err error) bool {
	return KindOf(err) == KindUnexpected
}

// IsIncomplete reports whether err is an Incomplete parse error.
func IsIncomplete(err error) bool {
	return KindOf(err) == KindIncomplete
}

// RequirementOf returns the requirement carried by an Incomplete error.
func RequirementOf(err error) (input.Requirement, bool) {
	var c classified
	if errors.As(err, &c) && c.ErrorKind() == KindIncomplete {
		return c.Need(), true
	}
	return input.Requirement{}, false
}

// UnexpectedOf returns the diagnostic carried by an Unexpected error.
func UnexpectedOf[T input.Token](err error) (input.Unexpected[T], bool) {
	var e *Error[T]
	if errors.As(err, &e) && e.Kind == KindUnexpected {
		return e.Unexpected, true
	}
	return input.Unexpected[T]{}, false
}

// requirer is implemented by input errors that know how much is missing.
type requirer interface {
	Requirement() input.Requirement
}

func requirementFor(err error) input.Requirement {
	var r requirer
	if errors.As(err, &r) {
		return r.Requirement()
	}
	return input.NeedUnknown()
}
