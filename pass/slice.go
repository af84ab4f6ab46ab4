package pass

import (
	"fmt"

	"github.com/dhamidi/feast/input"
)

// Slice is a Pass over a complete in-memory token sequence, for one-shot
// parsing.
type Slice[T input.Token] struct {
	rest input.Slice[T]
}

var _ Pass[Slice[byte], byte] = Slice[byte]{}

// FromSlice starts a pass at the beginning of data.
func FromSlice[T input.Token](data []T) Slice[T] {
	return Slice[T]{rest: input.FromSlice(data)}
}

// FromInput starts a pass at the given view.
func FromInput[T input.Token](in input.Slice[T]) Slice[T] {
	return Slice[T]{rest: in}
}

// FromBytes starts a pass at the beginning of data.
func FromBytes(data []byte) Slice[byte] {
	return FromSlice(data)
}

// FromString starts a byte pass over s.
func FromString(s string) Slice[byte] {
	return FromSlice([]byte(s))
}

func (p Slice[T]) Input() input.Input[T] {
	return p.rest
}

func (p Slice[T]) Offset() int {
	return p.rest.Offset()
}

// Remaining returns the remaining input as a concrete view.
func (p Slice[T]) Remaining() input.Slice[T] {
	return p.rest
}

// Source returns the whole input this pass was started on.
func (p Slice[T]) Source() input.Slice[T] {
	return p.rest.Source()
}

// Commit panics if remaining is not a view of the same source ending at the
// end of the source.
func (p Slice[T]) Commit(remaining input.Input[T]) Slice[T] {
	rest, ok := remaining.(input.Slice[T])
	if !ok {
		panic(fmt.Sprintf("pass: commit of foreign input %T", remaining))
	}
	if !rest.SameSource(p.rest) || rest.End() != p.rest.End() {
		panic(fmt.Sprintf("pass: commit of %v is not a suffix of the source", rest))
	}
	return Slice[T]{rest: rest}
}

func (p Slice[T]) InputError(err error) error {
	return &Error[T]{
		Kind:        KindIncomplete,
		Offset:      p.Offset(),
		Requirement: requirementFor(err),
		Err:         err,
	}
}

func (p Slice[T]) Unexpected(u input.Unexpected[T]) error {
	return &Error[T]{
		Kind:       KindUnexpected,
		Offset:     p.Offset() + u.At,
		Unexpected: u,
	}
}

func (p Slice[T]) Incomplete(r input.Requirement) error {
	return &Error[T]{
		Kind:        KindIncomplete,
		Offset:      p.Offset(),
		Requirement: r,
	}
}

// Equal reports whether both passes are at the same position of the same
// source.
func (p Slice[T]) Equal(other Slice[T]) bool {
	return p.rest.SameSource(other.rest) && p.Offset() == other.Offset() && p.rest.End() == other.rest.End()
}

func (p Slice[T]) String() string {
	return fmt.Sprintf("pass at %d, %d remaining", p.Offset(), p.rest.Len())
}
