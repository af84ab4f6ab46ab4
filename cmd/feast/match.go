package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/feast/combinator"
	"github.com/dhamidi/feast/input"
	"github.com/dhamidi/feast/pass"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

type bytePass = pass.Slice[byte]

func logger() commonlog.Logger {
	return commonlog.GetLogger("feast.cmd")
}

// matchOptions are the flags shared by every matching command.
type matchOptions struct {
	peek  bool
	trace bool
}

func (o *matchOptions) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.peek, "peek", false, "match without consuming input")
	cmd.Flags().BoolVar(&o.trace, "trace", false, "log combinator attempts at debug level")
}

func wrap[O any](name string, opts matchOptions, p combinator.Parser[bytePass, O]) combinator.Parser[bytePass, O] {
	if opts.peek {
		p = combinator.Peek[bytePass, byte](p)
	}
	if opts.trace {
		p = combinator.Trace(name, p)
	}
	return p
}

// readSource reads the file named by the optional argument, or stdin when it
// is absent or "-".
func readSource(cmd *cobra.Command, args []string) (string, []byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", nil, fmt.Errorf("read stdin: %w", err)
		}
		return "<stdin>", data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", nil, fmt.Errorf("read input: %w", err)
	}
	return args[0], data, nil
}

// runMatch runs parse over data and reports the outcome. Parse errors are
// printed with their source position before being returned.
func runMatch[O any](cmd *cobra.Command, filename string, data []byte, parse combinator.Parser[bytePass, O], describe func(O) string) error {
	start := pass.FromBytes(data)
	logger().Infof("matching %d bytes from %s", len(data), filename)

	out, next, err := parse(start)
	if err != nil {
		offset, _ := pass.OffsetOf(err)
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", input.Locate(filename, data, offset), err)
		if pass.IsIncomplete(err) {
			return fmt.Errorf("match %s: input ended early: %w", filename, err)
		}
		return fmt.Errorf("match %s: %w", filename, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "matched %s ending at %s, %d tokens remaining\n",
		describe(out), input.Locate(filename, data, next.Offset()), next.Input().Len())
	return nil
}
