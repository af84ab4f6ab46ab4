// Package input defines the token and input contracts the combinators run over,
// the diagnostic payloads describing why a match failed, and an in-memory
// Input implementation backed by a plain slice.
package input

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Token is the atomic unit of input. Tokens only need to support equality.
type Token interface {
	comparable
}

// Ordered is a Token with a total order, as required for range matching.
type Ordered interface {
	constraints.Ordered
}

// TokenTag identifies either a concrete observed token or the end of input.
type TokenTag[T Token] struct {
	token T
	eoi   bool
}

// TokenOf tags a concrete token.
func TokenOf[T Token](t T) TokenTag[T] {
	return TokenTag[T]{token: t}
}

// EndOfInput tags the end of input.
func EndOfInput[T Token]() TokenTag[T] {
	return TokenTag[T]{eoi: true}
}

// IsEndOfInput reports whether the tag marks the end of input.
func (t TokenTag[T]) IsEndOfInput() bool {
	return t.eoi
}

// Token returns the tagged token and whether there is one.
func (t TokenTag[T]) Token() (T, bool) {
	return t.token, !t.eoi
}

func (t TokenTag[T]) String() string {
	if t.eoi {
		return "end of input"
	}
	return FormatToken(t.token)
}

// FormatToken renders a single token for diagnostics. Bytes and runes are
// quoted as characters, everything else uses its default format.
func FormatToken[T Token](t T) string {
	switch v := any(t).(type) {
	case byte:
		return fmt.Sprintf("%q", rune(v))
	case rune:
		return fmt.Sprintf("%q", v)
	case string:
		return fmt.Sprintf("%q", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// FormatTokens renders a token sequence for diagnostics. Byte and rune
// sequences are shown as a quoted string.
func FormatTokens[T Token](ts []T) string {
	switch v := any(ts).(type) {
	case []byte:
		return fmt.Sprintf("%q", string(v))
	case []rune:
		return fmt.Sprintf("%q", string(v))
	default:
		return fmt.Sprintf("%v", v)
	}
}
