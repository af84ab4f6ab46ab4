// Package ascii provides byte classification predicates and single-byte
// parsers built on them.
package ascii

import (
	"github.com/dhamidi/feast/combinator"
	"github.com/dhamidi/feast/pass"
)

func IsDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

func IsHexDigit(b byte) bool {
	return IsDigit(b) || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}

func IsUpper(b byte) bool {
	return 'A' <= b && b <= 'Z'
}

func IsLower(b byte) bool {
	return 'a' <= b && b <= 'z'
}

func IsAlpha(b byte) bool {
	return IsUpper(b) || IsLower(b)
}

func IsAlphanumeric(b byte) bool {
	return IsAlpha(b) || IsDigit(b)
}

// IsSpace reports whether b is a space, tab, newline, carriage return,
// vertical tab or form feed.
func IsSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// Digit matches a single ASCII digit.
func Digit[P pass.Pass[P, byte]]() combinator.Parser[P, byte] {
	return combinator.InRange[P](byte('0'), byte('9'))
}

// HexDigit matches a single hexadecimal digit in either case.
func HexDigit[P pass.Pass[P, byte]]() combinator.Parser[P, byte] {
	return combinator.Satisfy[P]("ascii hex digit", IsHexDigit)
}

// Alpha matches a single ASCII letter.
func Alpha[P pass.Pass[P, byte]]() combinator.Parser[P, byte] {
	return combinator.Or(
		combinator.InRange[P](byte('a'), byte('z')),
		combinator.InRange[P](byte('A'), byte('Z')),
	)
}

// Alphanumeric matches a single ASCII letter or digit.
func Alphanumeric[P pass.Pass[P, byte]]() combinator.Parser[P, byte] {
	return combinator.Satisfy[P]("ascii alphanumeric", IsAlphanumeric)
}

// Space matches a single ASCII whitespace byte.
func Space[P pass.Pass[P, byte]]() combinator.Parser[P, byte] {
	return combinator.Satisfy[P]("ascii whitespace", IsSpace)
}

// DigitValue returns the numeric value of an ASCII digit.
func DigitValue(b byte) int {
	return int(b - '0')
}

// HexValue returns the numeric value of a hexadecimal digit.
func HexValue(b byte) int {
	switch {
	case IsDigit(b):
		return int(b - '0')
	case 'a' <= b && b <= 'f':
		return int(b-'a') + 10
	default:
		return int(b-'A') + 10
	}
}
