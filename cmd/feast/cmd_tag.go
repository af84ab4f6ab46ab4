package main

import (
	"github.com/dhamidi/feast/combinator"
	"github.com/dhamidi/feast/input"
	"github.com/spf13/cobra"
)

func newTagCmd() *cobra.Command {
	var opts matchOptions

	cmd := &cobra.Command{
		Use:           "tag <literal> [file]",
		Short:         "Match a literal at the start of the input",
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			literal := []byte(args[0])

			filename, data, err := readSource(cmd, args[1:])
			if err != nil {
				return err
			}

			parse := wrap("tag", opts, combinator.Tag[bytePass](literal))
			return runMatch(cmd, filename, data, parse, func(in input.Input[byte]) string {
				return input.FormatTokens(in.Tokens())
			})
		},
	}

	opts.bind(cmd)

	return cmd
}
