package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/caryden/optim"
	"github.com/caryden/optim/internal/bench"
	"github.com/spf13/cobra"
)

func (c *CLI) newSolveCommand() *cobra.Command {
	var (
		method     string
		lineSearch string
		maxIter    int
		gradTol    float64
		progress   int
	)

	cmd := &cobra.Command{
		Use:   "solve <problem>",
		Short: "Solve one of the built-in test objectives and print the result",
		Args:  cobra.ExactArgs(1),
		Example: `  # BFGS on the Rosenbrock valley
  optimize solve rosenbrock --method bfgs

  # Conjugate gradient with strong-Wolfe line search, quiet output
  optimize solve booth --method cg -s

  # Trust region on the four-variable diagonal quadratic
  optimize solve quadratic --method trust-region`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, grad, x0, ok := bench.Named(args[0])
			if !ok {
				return fmt.Errorf("unknown problem %q; run %q to list the built-ins", args[0], "optimize list")
			}

			m, err := parseMethod(method)
			if err != nil {
				return err
			}
			ls, err := parseLineSearch(lineSearch)
			if err != nil {
				return err
			}

			cfg := optim.DefaultConfig(m)
			if lineSearch != "" {
				cfg.LineSearch = ls
			}
			if maxIter > 0 {
				cfg.MaxIter = maxIter
			}
			if gradTol > 0 {
				cfg.GradTol = gradTol
			}
			cfg.Progress = progress

			problem, err := optim.NewProblem(optim.NewObjective(f, grad), x0, cfg)
			if err != nil {
				return fmt.Errorf("solve: %w", err)
			}

			result, err := optim.Optimize(problem, nil)
			if err != nil {
				return fmt.Errorf("solve: %w", err)
			}

			output, _ := json.MarshalIndent(summarize(result), "", "  ")
			fmt.Println(string(output))
			return nil
		},
	}

	cmd.Flags().StringVar(&method, "method", "gd", "direction oracle: gd, cg, bfgs, trust-region")
	cmd.Flags().StringVar(&lineSearch, "line-search", "", "line search: armijo, strong-wolfe (default: the method's own default)")
	cmd.Flags().IntVar(&maxIter, "max-iter", 0, "maximum iterations (0: method default)")
	cmd.Flags().Float64Var(&gradTol, "grad-tol", 0, "gradient-norm stopping tolerance (0: method default)")
	cmd.Flags().IntVar(&progress, "progress", 1, "print a progress row every N iterations (0: silent)")
	return cmd
}

func (c *CLI) newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in test objectives",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range bench.Names() {
				fmt.Println(name)
			}
			return nil
		},
	}
}

func parseMethod(s string) (optim.Method, error) {
	switch strings.ToLower(s) {
	case "gd", "gradient-descent":
		return optim.GradientDescent, nil
	case "cg", "conjugate-gradient":
		return optim.ConjugateGradient, nil
	case "bfgs":
		return optim.BFGS, nil
	case "trust-region", "tr":
		return optim.TrustRegion, nil
	}
	return 0, fmt.Errorf("unknown method %q", s)
}

func parseLineSearch(s string) (optim.LineSearchKind, error) {
	switch strings.ToLower(s) {
	case "":
		return optim.Armijo, nil
	case "armijo":
		return optim.Armijo, nil
	case "strong-wolfe", "wolfe":
		return optim.StrongWolfe, nil
	}
	return 0, fmt.Errorf("unknown line search %q", s)
}

// solveSummary is the JSON-friendly projection of optim.Result printed by
// the solve command; the full per-iteration History is omitted by default
// to keep terminal output readable.
type solveSummary struct {
	Converged  bool      `json:"converged"`
	Cause      string    `json:"cause"`
	X          []float64 `json:"x"`
	F          float64   `json:"f"`
	GradNorm   float64   `json:"grad_norm"`
	Iterations int       `json:"iterations"`
	FuncEvals  int       `json:"func_evals"`
	GradEvals  int       `json:"grad_evals"`
}

func summarize(r optim.Result) solveSummary {
	return solveSummary{
		Converged:  r.Converged,
		Cause:      r.Cause,
		X:          r.X,
		F:          r.F,
		GradNorm:   r.GradNorm,
		Iterations: r.Iterations,
		FuncEvals:  r.FuncEvals,
		GradEvals:  r.GradEvals,
	}
}
