package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"safecalc"
)

// newEvalCommand evaluates expressions given as arguments and prints one
// result per line, for use from scripts without the shell.
func newEvalCommand() *cobra.Command {
	var (
		format string
		echo   bool
	)
	cmd := &cobra.Command{
		Use:   "eval EXPR...",
		Short: "Evaluate expressions and print the results",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				expr, err := safecalc.Parse(strings.NewReader(arg))
				if err != nil {
					return evalError(err)
				}
				if echo {
					fmt.Fprintf(out, "%v = ", expr)
				}
				r, err := expr.Eval()
				if err != nil {
					return evalError(err)
				}
				if r.IsInt() {
					fmt.Fprintln(out, r)
				} else {
					fmt.Fprintf(out, format+"\n", r.Float64())
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "fmt", "%g", "printf verb used for non-integer results")
	cmd.Flags().BoolVar(&echo, "echo", false, "print the parsed expression before each result")
	return cmd
}

// evalError prefixes a failure with the same category the shell's dialogs
// use, so scripted and interactive output agree on what went wrong.
func evalError(err error) error {
	switch {
	case errors.Is(err, safecalc.ErrDivisionByZero):
		return fmt.Errorf("math error: %w", err)
	case errors.Is(err, safecalc.ErrInvalidExpression):
		return fmt.Errorf("input error: %w", err)
	default:
		return err
	}
}
