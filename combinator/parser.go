// Package combinator builds parsers out of smaller parsers.
//
// A Parser is a plain function from a pass to an outcome. On success it
// returns the produced value, the advanced pass and a nil error. On failure it
// returns the zero value, the pass at the failure point and either an
// Unexpected or an Incomplete error (see package pass). Failures are never
// rewound implicitly; Or and Peek resume from the pass a failure carries.
//
// Combinators over the token stream are parameterized by the concrete pass
// type P and its token type T. The token type usually cannot be inferred and
// is given explicitly:
//
//	type bytePass = pass.Slice[byte]
//
//	digit := combinator.InRange[bytePass](byte('0'), byte('9'))
//	hello := combinator.Peek[bytePass, byte](combinator.Tag[bytePass]([]byte("hello")))
//	value, next, err := hello(pass.FromString("hello, world"))
package combinator

// Parser parses a value of type O from a pass of type P.
type Parser[P, O any] func(P) (O, P, error)
