package input

import "fmt"

// Input is an ordered, splittable sequence of tokens. Implementations are
// read-only views into shared storage; splitting narrows the view and never
// copies.
type Input[T Token] interface {
	// Len returns the number of tokens in the view.
	Len() int
	// At returns the i-th token of the view.
	At(i int) T
	// Tokens returns the view as a slice sharing the backing storage.
	// Callers must not modify it.
	Tokens() []T
	// Offset returns the position of the first token of the view within
	// its source.
	Offset() int
	// SplitAt returns the first n tokens and the remainder. When fewer than
	// n tokens are available it returns an *InsufficientError instead of
	// truncating.
	SplitAt(n int) (taken, rest Input[T], err error)
}

// Slice is an Input over an in-memory token slice.
type Slice[T Token] struct {
	data       []T
	start, end int
}

// FromSlice returns a view of the whole of data. The slice must not be
// modified while views of it are in use.
func FromSlice[T Token](data []T) Slice[T] {
	return Slice[T]{data: data, end: len(data)}
}

// FromBytes is FromSlice for byte input.
func FromBytes(data []byte) Slice[byte] {
	return FromSlice(data)
}

// FromString returns a byte view of s.
func FromString(s string) Slice[byte] {
	return FromSlice([]byte(s))
}

// FromRunes returns a rune view of s.
func FromRunes(s string) Slice[rune] {
	return FromSlice([]rune(s))
}

func (s Slice[T]) Len() int {
	return s.end - s.start
}

func (s Slice[T]) At(i int) T {
	if i < 0 || i >= s.Len() {
		panic(fmt.Sprintf("input: index %d out of range [0:%d]", i, s.Len()))
	}
	return s.data[s.start+i]
}

func (s Slice[T]) Tokens() []T {
	return s.data[s.start:s.end:s.end]
}

func (s Slice[T]) Offset() int {
	return s.start
}

// End returns the position just past the last token of the view.
func (s Slice[T]) End() int {
	return s.end
}

func (s Slice[T]) SplitAt(n int) (Input[T], Input[T], error) {
	if n < 0 {
		panic(fmt.Sprintf("input: negative split %d", n))
	}
	if n > s.Len() {
		return nil, nil, &InsufficientError{Requested: n, Available: s.Len()}
	}
	mid := s.start + n
	return Slice[T]{data: s.data, start: s.start, end: mid},
		Slice[T]{data: s.data, start: mid, end: s.end},
		nil
}

// Source returns a view of the entire backing storage.
func (s Slice[T]) Source() Slice[T] {
	return FromSlice(s.data)
}

// SameSource reports whether both views share the same backing storage.
func (s Slice[T]) SameSource(other Slice[T]) bool {
	if len(s.data) != len(other.data) {
		return false
	}
	if len(s.data) == 0 {
		return true
	}
	return &s.data[0] == &other.data[0]
}

// IsComplete always reports true: an in-memory view is final.
func (s Slice[T]) IsComplete() bool {
	return true
}

// Value returns the tokens of the view, making Slice a Capture.
func (s Slice[T]) Value() []T {
	return s.Tokens()
}

func (s Slice[T]) String() string {
	return fmt.Sprintf("%s@%d", FormatTokens(s.Tokens()), s.start)
}
