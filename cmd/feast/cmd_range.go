package main

import (
	"fmt"

	"github.com/dhamidi/feast/combinator"
	"github.com/dhamidi/feast/input"
	"github.com/spf13/cobra"
)

func newRangeCmd() *cobra.Command {
	var opts matchOptions

	cmd := &cobra.Command{
		Use:           "range <low> <high> [file]",
		Short:         "Match a single byte within an inclusive range",
		Args:          cobra.RangeArgs(2, 3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			low, high := args[0], args[1]
			if len(low) != 1 || len(high) != 1 {
				return fmt.Errorf("range bounds must be single bytes, got %q and %q", low, high)
			}
			if high[0] < low[0] {
				return fmt.Errorf("empty range %q..%q", low, high)
			}

			filename, data, err := readSource(cmd, args[2:])
			if err != nil {
				return err
			}

			parse := wrap("range", opts, combinator.InRange[bytePass](low[0], high[0]))
			return runMatch(cmd, filename, data, parse, input.FormatToken[byte])
		},
	}

	opts.bind(cmd)

	return cmd
}
