package combinator

import (
	"github.com/dhamidi/feast/input"
	"github.com/dhamidi/feast/pass"
)

// Or tries a, and if a fails tries b from the pass a's failure returned.
// When both fail the result is b's failure; a's diagnostic is dropped.
func Or[P, O any](a, b Parser[P, O]) Parser[P, O] {
	return func(p P) (O, P, error) {
		out, p, err := a(p)
		if err == nil {
			return out, p, nil
		}
		// TODO: merge the expectations of both branches into one diagnostic
		// instead of reporting only b's.
		return b(p)
	}
}

// Peek runs sub and on success returns its value without consuming any
// input. Failures are returned unchanged.
func Peek[P pass.Pass[P, T], T input.Token, O any](sub Parser[P, O]) Parser[P, O] {
	return func(p P) (O, P, error) {
		start := p.Input()
		out, p, err := sub(p)
		if err != nil {
			return out, p, err
		}
		return out, p.Commit(start), nil
	}
}
