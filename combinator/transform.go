package combinator

import (
	"github.com/dhamidi/feast/input"
	"github.com/dhamidi/feast/pass"
)

// Map applies f to the value produced by sub.
func Map[P, I, O any](sub Parser[P, I], f func(I) O) Parser[P, O] {
	return func(p P) (O, P, error) {
		v, p, err := sub(p)
		if err != nil {
			var zero O
			return zero, p, err
		}
		return f(v), p, nil
	}
}

// AndThen passes the value produced by sub and the advanced pass to then,
// whose outcome becomes the result. It lets the next step depend on what was
// parsed so far.
func AndThen[P, I, O any](sub Parser[P, I], then func(I, P) (O, P, error)) Parser[P, O] {
	return func(p P) (O, P, error) {
		v, p, err := sub(p)
		if err != nil {
			var zero O
			return zero, p, err
		}
		return then(v, p)
	}
}

// Complete unwraps the capture produced by sub. An incomplete capture fails
// with an Incomplete error of unknown amount at the pass sub returned.
func Complete[P pass.Pass[P, T], T input.Token, V any](sub Parser[P, input.Capture[V]]) Parser[P, V] {
	return func(p P) (V, P, error) {
		var zero V
		c, p, err := sub(p)
		if err != nil {
			return zero, p, err
		}
		if !c.IsComplete() {
			return zero, p, p.Incomplete(input.NeedUnknown())
		}
		return c.Value(), p, nil
	}
}
