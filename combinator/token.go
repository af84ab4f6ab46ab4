package combinator

import (
	"fmt"

	"github.com/dhamidi/feast/input"
	"github.com/dhamidi/feast/pass"
)

// Tag matches the token sequence tag at the front of the input and returns
// the matched view.
//
// Input shorter than tag fails with Incomplete, never Unexpected. A mismatch
// fails with Unexpected naming the first differing token. Neither failure
// consumes input.
func Tag[P pass.Pass[P, T], T input.Token](tag []T) Parser[P, input.Input[T]] {
	return func(p P) (input.Input[T], P, error) {
		split, p, err := pass.WithInputResult(p, pass.SplitAt[T](len(tag)))
		if err != nil {
			return nil, p, err
		}
		for i, want := range tag {
			if got := split.Taken.At(i); got != want {
				return nil, p, p.Unexpected(input.Unexpected[T]{
					Unexpected: input.TokenOf(got),
					Expecting:  input.ExpectTag(tag),
					At:         i,
				})
			}
		}
		return split.Taken, p.Commit(split.Rest), nil
	}
}

// TakeTokenIf matches a single token accepted by pred. hint describes pred in
// the Unexpected error reported when it rejects the token.
func TakeTokenIf[P pass.Pass[P, T], T input.Token](hint input.ExpectedHint[T], pred func(T) bool) Parser[P, T] {
	return func(p P) (T, P, error) {
		var zero T
		split, p, err := pass.WithInputResult(p, pass.SplitAt[T](1))
		if err != nil {
			return zero, p, err
		}
		tok := split.Taken.At(0)
		if !pred(tok) {
			return zero, p, p.Unexpected(input.Unexpected[T]{
				Unexpected: input.TokenOf(tok),
				Expecting:  hint,
			})
		}
		return tok, p.Commit(split.Rest), nil
	}
}

// Satisfy matches a single token accepted by the predicate called name.
func Satisfy[P pass.Pass[P, T], T input.Token](name string, pred func(T) bool) Parser[P, T] {
	return TakeTokenIf[P](input.ExpectNamed[T](name), pred)
}

// InRange matches a single token t with low <= t <= high.
func InRange[P pass.Pass[P, T], T input.Ordered](low, high T) Parser[P, T] {
	if high < low {
		panic(fmt.Sprintf("combinator: empty range %s..%s", input.FormatToken(low), input.FormatToken(high)))
	}
	return TakeTokenIf[P](input.ExpectRange(low, high), func(t T) bool {
		return low <= t && t <= high
	})
}
