package main

import (
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

func newRootCmd() *cobra.Command {
	var verbose int

	rootCmd := &cobra.Command{
		Use:   "feast",
		Short: "Run parser combinators against input",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbose, nil)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity (-vv traces combinators)")

	rootCmd.AddCommand(newTagCmd())
	rootCmd.AddCommand(newRangeCmd())
	rootCmd.AddCommand(newDigitsCmd())

	return rootCmd
}
