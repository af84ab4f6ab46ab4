package input

// Capture wraps a produced value with a completeness flag. Value may only be
// called once IsComplete reports true.
type Capture[V any] interface {
	IsComplete() bool
	Value() V
}

// Captured is the plain value implementation of Capture.
type Captured[V any] struct {
	value    V
	complete bool
}

// Done captures a final value.
func Done[V any](v V) Captured[V] {
	return Captured[V]{value: v, complete: true}
}

// Partial captures a value that more input could still change.
func Partial[V any](v V) Captured[V] {
	return Captured[V]{value: v}
}

func (c Captured[V]) IsComplete() bool {
	return c.complete
}

// Value returns the captured value. It panics if the capture is incomplete.
func (c Captured[V]) Value() V {
	if !c.complete {
		panic("input: Value called on incomplete capture")
	}
	return c.value
}
