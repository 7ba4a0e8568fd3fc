package main

import (
	"fmt"
	"io"
	"runtime"
	"strconv"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/born-ml/logistic/internal/autodiff"
	"github.com/born-ml/logistic/internal/dual"
	"github.com/born-ml/logistic/internal/logistic"
	"github.com/born-ml/logistic/internal/parallel"
)

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "invlogit",
		Short:         "Overflow-safe logistic (inverse-logit) transform",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.AddCommand(
		newEvalCmd(),
		newGradCmd(),
		newBenchCmd(),
		newInfoCmd(),
		newVersionCmd(),
	)
	return root
}

// parseInputs parses every argument as a float64. Inf, -Inf and NaN are accepted.
func parseInputs(args []string) ([]float64, error) {
	xs := make([]float64, len(args))
	for i, a := range args {
		x, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", a, err)
		}
		xs[i] = x
	}
	return xs, nil
}

// helpRequested reports whether args ask for help. eval and grad disable flag
// parsing so negative inputs survive, which leaves -h and --help in args.
func helpRequested(args []string) bool {
	return lo.ContainsBy(args, func(a string) bool {
		return a == "-h" || a == "--help"
	})
}

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval X...",
		Short: "Print sigmoid(x) and its derivative for each input",
		Args:  cobra.MinimumNArgs(1),
		// Negative inputs such as -2 must not be taken for shorthand flags.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if helpRequested(args) {
				return cmd.Help()
			}
			xs, err := parseInputs(args)
			if err != nil {
				return err
			}
			lines := lo.Map(xs, func(x float64, _ int) string {
				return fmt.Sprintf("%-12g %-22.17g %.17g", x, logistic.Of(x), logistic.Derivative(x))
			})
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-12s %-22s %s\n", "x", "sigmoid", "derivative")
			for _, l := range lines {
				fmt.Fprintln(w, l)
			}
			return nil
		},
	}
}

// gradients evaluates the first derivative through forward and reverse mode
// and the second derivative through hyper-dual numbers.
type gradients struct {
	x       float64
	forward float64
	reverse float64
	second  float64
}

func computeGradients(tape *autodiff.GradientTape, x float64) gradients {
	h := logistic.Sigmoid(dual.HyperVariable(x), dual.HyperExp, nil)

	tape.Clear()
	v := tape.Variable(x)
	y := logistic.Sigmoid(v, autodiff.Exp, nil)

	return gradients{
		x:       x,
		forward: h.First(),
		reverse: tape.Backward(y).Of(v),
		second:  h.Second(),
	}
}

func newGradCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "grad X...",
		Short:              "Compare forward-mode, reverse-mode and second derivatives",
		Args:               cobra.MinimumNArgs(1),
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if helpRequested(args) {
				return cmd.Help()
			}
			xs, err := parseInputs(args)
			if err != nil {
				return err
			}
			tape := autodiff.NewGradientTape()
			tape.StartRecording()

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-12s %-22s %-22s %s\n", "x", "forward", "reverse", "second")
			for _, g := range lo.Map(xs, func(x float64, _ int) gradients { return computeGradients(tape, x) }) {
				fmt.Fprintf(w, "%-12g %-22.17g %-22.17g %.17g\n", g.x, g.forward, g.reverse, g.second)
			}
			return nil
		},
	}
}

func newBenchCmd() *cobra.Command {
	cfg := parallel.DefaultConfig()
	var (
		n          int
		sequential bool
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time slice evaluation over inputs spread across [-50, 50]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if n < 2 {
				return fmt.Errorf("bench: count must be at least 2, got %d", n)
			}
			if sequential {
				cfg.Enabled = false
			}

			src := make([]float64, n)
			parallel.For(n, func(i int) {
				src[i] = -50 + 100*float64(i)/float64(n-1)
			}, cfg)
			dst := make([]float64, n)

			start := time.Now()
			if err := logistic.Apply(dst, src, cfg); err != nil {
				return err
			}
			elapsed := time.Since(start)

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "inputs:     %d\n", n)
			fmt.Fprintf(w, "parallel:   %v (workers=%d, min-chunk=%d)\n", cfg.Enabled, cfg.NumWorkers, cfg.MinChunkSize)
			fmt.Fprintf(w, "elapsed:    %v\n", elapsed)
			fmt.Fprintf(w, "ns/element: %.2f\n", float64(elapsed.Nanoseconds())/float64(n))
			fmt.Fprintf(w, "range:      [%g, %g]\n", lo.Min(dst), lo.Max(dst))
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "count", "n", 1_000_000, "number of inputs")
	cmd.Flags().IntVarP(&cfg.NumWorkers, "workers", "w", cfg.NumWorkers, "worker goroutines")
	cmd.Flags().IntVar(&cfg.MinChunkSize, "min-chunk", cfg.MinChunkSize, "minimum inputs per goroutine")
	cmd.Flags().BoolVar(&sequential, "sequential", false, "evaluate on the calling goroutine only")
	return cmd
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print platform, parallel defaults and CPU features",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			cfg := parallel.DefaultConfig()

			fmt.Fprintf(w, "GOOS: %s\n", runtime.GOOS)
			fmt.Fprintf(w, "GOARCH: %s\n", runtime.GOARCH)
			fmt.Fprintf(w, "NumCPU: %d\n", runtime.NumCPU())
			fmt.Fprintln(w)
			fmt.Fprintf(w, "parallel: enabled=%v workers=%d min-chunk=%d\n", cfg.Enabled, cfg.NumWorkers, cfg.MinChunkSize)
			fmt.Fprintln(w)
			printFeatures(w, runtime.GOARCH)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "invlogit %s\n", version)
		},
	}
}
