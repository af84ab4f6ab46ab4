// Package pass defines the parsing cursor threaded through every combinator.
//
// A Pass owns the remaining input and the context needed to build errors tied
// to the current position. Passes are values: every method either inspects
// the pass or returns a new one, so independent parses never share mutable
// state.
package pass

import "github.com/dhamidi/feast/input"

// Pass is the cursor contract. P is the concrete pass type, so that Commit
// hands back the same type the combinators were instantiated with.
type Pass[P any, T input.Token] interface {
	// Input returns the remaining input without consuming it.
	Input() input.Input[T]
	// Offset returns the position of the remaining input within the source.
	Offset() int
	// Commit returns a pass positioned at remaining, which must be a suffix
	// of the same source.
	Commit(remaining input.Input[T]) P
	// InputError converts a failed input-level operation into an Incomplete
	// error at the current position.
	InputError(err error) error
	// Unexpected returns an Unexpected error at the current position, offset
	// by u.At.
	Unexpected(u input.Unexpected[T]) error
	// Incomplete returns an Incomplete error at the current position.
	Incomplete(r input.Requirement) error
}

// WithInputResult runs op against the remaining input of p. On success the
// produced value is returned with p unchanged; the caller commits explicitly.
// On failure the error is converted with p.InputError.
func WithInputResult[P Pass[P, T], T input.Token, V any](p P, op func(input.Input[T]) (V, error)) (V, P, error) {
	v, err := op(p.Input())
	if err != nil {
		var zero V
		return zero, p, p.InputError(err)
	}
	return v, p, nil
}

// Split is the result of SplitAt.
type Split[T input.Token] struct {
	Taken input.Input[T]
	Rest  input.Input[T]
}

// SplitAt returns an input operation splitting n tokens off the front, for
// use with WithInputResult.
func SplitAt[T input.Token](n int) func(input.Input[T]) (Split[T], error) {
	return func(in input.Input[T]) (Split[T], error) {
		taken, rest, err := in.SplitAt(n)
		if err != nil {
			return Split[T]{}, err
		}
		return Split[T]{Taken: taken, Rest: rest}, nil
	}
}

// Positioned is the part of a Pass that reports where it is.
type Positioned interface {
	Offset() int
}
