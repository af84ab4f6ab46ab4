package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/dhamidi/feast/ascii"
	"github.com/dhamidi/feast/combinator"
	"github.com/spf13/cobra"
)

func newDigitsCmd() *cobra.Command {
	var opts matchOptions

	cmd := &cobra.Command{
		Use:           "digits [file]",
		Short:         "Match a leading run of decimal digits and print its value",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			filename, data, err := readSource(cmd, args)
			if err != nil {
				return err
			}

			parse := wrap("digits", opts, number())
			return runMatch(cmd, filename, data, parse, strconv.Itoa)
		},
	}

	opts.bind(cmd)

	return cmd
}

var errNumberOverflow = errors.New("number overflows int")

// number parses one or more decimal digits into their value. A run whose
// value does not fit in an int fails at the digit that overflows.
func number() combinator.Parser[bytePass, int] {
	digit := combinator.Map(ascii.Digit[bytePass](), ascii.DigitValue)

	var more func(acc int) combinator.Parser[bytePass, int]
	more = func(acc int) combinator.Parser[bytePass, int] {
		return func(p bytePass) (int, bytePass, error) {
			d, next, err := digit(p)
			if err != nil {
				return acc, p, nil
			}
			if acc > (math.MaxInt-d)/10 {
				return 0, p, fmt.Errorf("%w at offset %d", errNumberOverflow, p.Offset())
			}
			return more(acc*10+d)(next)
		}
	}

	return combinator.AndThen(digit, func(d int, p bytePass) (int, bytePass, error) {
		return more(d)(p)
	})
}
