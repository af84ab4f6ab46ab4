package input

import "fmt"

// RequirementKind enumerates how precisely a Requirement knows the missing amount.
type RequirementKind int

const (
	// Unknown is the zero value: more input is needed but the amount is unknown.
	Unknown RequirementKind = iota
	Exact
	AtLeast
)

// Requirement describes how much more input would resolve an undetermined match.
type Requirement struct {
	Kind RequirementKind
	N    int
}

// NeedUnknown returns a Requirement for an unknown amount of input.
func NeedUnknown() Requirement {
	return Requirement{Kind: Unknown}
}

// NeedExact returns a Requirement for exactly n more tokens.
func NeedExact(n int) Requirement {
	return Requirement{Kind: Exact, N: n}
}

// NeedAtLeast returns a Requirement for n or more tokens.
func NeedAtLeast(n int) Requirement {
	return Requirement{Kind: AtLeast, N: n}
}

func (r Requirement) String() string {
	switch r.Kind {
	case Exact:
		return fmt.Sprintf("exactly %d more %s", r.N, plural(r.N))
	case AtLeast:
		return fmt.Sprintf("at least %d more %s", r.N, plural(r.N))
	default:
		return "an unknown amount of input"
	}
}

func plural(n int) string {
	if n == 1 {
		return "token"
	}
	return "tokens"
}

// InsufficientError is returned by Input.SplitAt when fewer tokens remain
// than were requested.
type InsufficientError struct {
	Requested int
	Available int
}

func (e *InsufficientError) Error() string {
	return fmt.Sprintf("insufficient input: requested %d tokens, %d available", e.Requested, e.Available)
}

// Requirement reports the exact number of tokens still missing.
func (e *InsufficientError) Requirement() Requirement {
	return NeedExact(e.Requested - e.Available)
}
