// Command fpcalc evaluates an arithmetic expression with the
// deterministic soft-float core and reports the result, the accumulated
// error bound, and the exception trace.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/zerfoo/softfloat"
	"github.com/zerfoo/softfloat/eval"
)

var (
	roundFlag    int
	tininessFlag int
)

var rootCmd = &cobra.Command{
	Use:   "fpcalc [flags] expression",
	Short: "Evaluate an expression with deterministic IEEE 754 soft-float arithmetic",
	Long: `fpcalc parses an arithmetic expression and evaluates it through a
software IEEE 754 implementation, so results, rounding decisions and
exception flags are identical on every platform.

Functions: floor ceil trunc sqrt abs cosd min max copysign
Constants: e pi phi fmin fmax`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().IntVarP(&roundFlag, "round", "r", 0,
		"rounding mode: 0 nearest even, 1 to zero, 2 down, 3 up")
	rootCmd.Flags().IntVarP(&tininessFlag, "tininess", "t", 0,
		"tininess detection: 0 before rounding, 1 after rounding")
}

func run(cmd *cobra.Command, args []string) error {
	if roundFlag < 0 || roundFlag > 3 {
		return fmt.Errorf("invalid rounding mode %d", roundFlag)
	}
	if tininessFlag < 0 || tininessFlag > 1 {
		return fmt.Errorf("invalid tininess mode %d", tininessFlag)
	}

	expr, err := eval.Parse(args[0])
	if err != nil {
		return err
	}

	ctx := softfloat.NewContext(
		softfloat.RoundingMode(roundFlag),
		softfloat.Tininess(tininessFlag),
	)
	result := eval.Eval(ctx, expr)

	// Host floating point appears here for display only.
	fmt.Printf("%s\n\t= %.14f\n", expr, math.Float32frombits(result.Value.Bits()))
	if !result.Eps.IsZero() {
		fmt.Printf("\t± %g\n", math.Float32frombits(result.Eps.Bits()))
	}

	reportTrace(ctx, expr)
	return nil
}

func reportTrace(ctx *softfloat.Context, expr *eval.Expr) {
	for i, exc := range ctx.Exceptions {
		fmt.Fprintf(os.Stderr, "Exception: %d (%d roundings) %s %s\n",
			i, ctx.Roundings, exc, expr)
	}
	if len(ctx.Operations) == 0 || len(ctx.Exceptions) == 0 {
		return
	}
	fmt.Fprintf(os.Stderr, "  Trace (%d operations)", len(ctx.Operations))
	for _, op := range ctx.Operations {
		fmt.Fprintf(os.Stderr, " %s", op)
	}
	fmt.Fprintln(os.Stderr)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
