package input

import "fmt"

// HintKind enumerates the shapes an ExpectedHint can take.
type HintKind int

const (
	HintTag HintKind = iota
	HintNamed
	HintRange
)

func (k HintKind) String() string {
	switch k {
	case HintTag:
		return "Tag"
	case HintNamed:
		return "Named"
	case HintRange:
		return "Range"
	default:
		return "Unknown"
	}
}

// ExpectedHint describes what would have satisfied a match at a failure point.
// It is diagnostic only and never drives control flow.
type ExpectedHint[T Token] struct {
	Kind HintKind
	Tag  []T    // HintTag: the full literal sequence
	Name string // HintNamed: the predicate name
	Low  T      // HintRange: inclusive lower bound
	High T      // HintRange: inclusive upper bound
}

// ExpectTag hints at a literal token sequence.
func ExpectTag[T Token](tag []T) ExpectedHint[T] {
	return ExpectedHint[T]{Kind: HintTag, Tag: tag}
}

// ExpectNamed hints at a named predicate such as "ascii digit".
func ExpectNamed[T Token](name string) ExpectedHint[T] {
	return ExpectedHint[T]{Kind: HintNamed, Name: name}
}

// ExpectRange hints at an inclusive token range.
func ExpectRange[T Token](low, high T) ExpectedHint[T] {
	return ExpectedHint[T]{Kind: HintRange, Low: low, High: high}
}

func (h ExpectedHint[T]) String() string {
	switch h.Kind {
	case HintTag:
		return FormatTokens(h.Tag)
	case HintNamed:
		return h.Name
	case HintRange:
		return fmt.Sprintf("%s..%s", FormatToken(h.Low), FormatToken(h.High))
	default:
		return "?"
	}
}

// Unexpected pairs the observed token with what was expected instead.
type Unexpected[T Token] struct {
	Unexpected TokenTag[T]
	Expecting  ExpectedHint[T]
	// At is the index of the observed token relative to the position the
	// match started at.
	At int
}

func (u Unexpected[T]) String() string {
	return fmt.Sprintf("unexpected %s, expecting %s", u.Unexpected, u.Expecting)
}
